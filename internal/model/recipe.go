package model

import "github.com/google/uuid"

type Recipe struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Source      string    `json:"source" db:"source"`
	AuthorID    uuid.UUID `json:"author_id" db:"author_id"`
	DateCreated float64   `json:"date_created" db:"date_created"`
	DateEdited  float64   `json:"date_edited" db:"date_edited"`
	Rating      float64   `json:"rating" db:"rating"`
	Status      Status    `json:"status" db:"status"`
}

type Tag struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Text string    `json:"text" db:"text"`
}

// RecipeData is the per-caller projection of a recipe: the stored row
// plus whether the caller bookmarked it and the caller's own score.
type RecipeData struct {
	ID          uuid.UUID `json:"id"`
	Source      string    `json:"source"`
	AuthorID    uuid.UUID `json:"author_id"`
	DateCreated float64   `json:"date_created"`
	DateEdited  float64   `json:"date_edited"`
	Rating      float64   `json:"rating"`
	Status      Status    `json:"status"`
	Bookmarked  bool      `json:"bookmarked"`
	UserScore   *float64  `json:"user_score"`
}

type CreateRecipeRequest struct {
	Source string   `json:"source"`
	Tags   []string `json:"tags"`
}

type ChangeStatusRequest struct {
	Status Status `json:"status"`
}
