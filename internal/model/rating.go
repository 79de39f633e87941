package model

import "github.com/google/uuid"

// RatedRecipe holds one user's score for one recipe. The (user, recipe)
// pair is the primary key: re-rating replaces the row.
type RatedRecipe struct {
	UserID   uuid.UUID `db:"user_id"`
	RecipeID uuid.UUID `db:"recipe_id"`
	Score    float64   `db:"score"`
}

type RatingRequest struct {
	Score float64 `json:"score"`
}

type RatingValue struct {
	Rating float64 `json:"rating"`
}
