package api

import (
	"encoding/json"
	"net/http"

	"github.com/recipe-share/internal/apperr"
	"github.com/recipe-share/internal/model"
)

// GetRating godoc
// @Summary Get the aggregate rating of a recipe
// @Tags Ratings
// @Produce json
// @Param id path string true "Recipe id (UUID)"
// @Success 200 {object} model.Response
// @Failure 401 {object} model.Response
// @Failure 404 {object} model.Response
// @Security BearerAuth
// @Router /recipe/{id}/rating [get]
func (h *Handler) GetRating(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	recipe, err := h.recipeRepo.FindByID(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}
	if recipe == nil {
		h.fail(w, apperr.New(apperr.NotFound, "There is no recipe with such id."))
		return
	}

	respondValue(w, http.StatusOK, model.RatingValue{Rating: recipe.Rating})
}

// RateRecipe godoc
// @Summary Rate a recipe
// @Description Score must be within [1, 5]. Rating a recipe again replaces the caller's previous score.
// @Tags Ratings
// @Accept json
// @Produce json
// @Param id path string true "Recipe id (UUID)"
// @Param request body model.RatingRequest true "Score"
// @Success 201 {object} model.Response
// @Failure 400 {object} model.Response "Score out of range"
// @Failure 401 {object} model.Response
// @Failure 404 {object} model.Response
// @Security BearerAuth
// @Router /recipe/{id}/rating [post]
func (h *Handler) RateRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req model.RatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, apperr.New(apperr.Validation, "The request body is not valid JSON."))
		return
	}
	if req.Score < 1 || req.Score > 5 {
		h.fail(w, apperr.New(apperr.Validation, "The `score` field must be between 1 and 5."))
		return
	}

	recipe, err := h.recipeRepo.FindByID(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}
	if recipe == nil {
		h.fail(w, apperr.New(apperr.NotFound, "There is no recipe with such id."))
		return
	}

	claims := claimsFrom(r)
	if err := h.ratingRepo.Rate(r.Context(), id, claims.UserID, req.Score); err != nil {
		h.fail(w, err)
		return
	}

	respondValue(w, http.StatusCreated, nil)
}
