package model

import "github.com/google/uuid"

type BookmarkedRecipe struct {
	UserID    uuid.UUID `db:"user_id"`
	RecipeID  uuid.UUID `db:"recipe_id"`
	DateAdded float64   `db:"date_added"`
}
