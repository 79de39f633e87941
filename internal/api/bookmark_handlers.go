package api

import (
	"net/http"

	"github.com/recipe-share/internal/apperr"
	"github.com/recipe-share/internal/model"
)

// ListBookmarks godoc
// @Summary List the caller's bookmarked recipes
// @Description Most recently bookmarked first.
// @Tags Bookmarks
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param elements query int false "Page size" default(20)
// @Success 200 {object} model.Response
// @Failure 400 {object} model.Response "Pagination error"
// @Failure 401 {object} model.Response
// @Security BearerAuth
// @Router /bookmark [get]
func (h *Handler) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	params, err := parsePagination(r.URL.Query(), h.cfg.Pagination)
	if err != nil {
		h.fail(w, err)
		return
	}
	claims := claimsFrom(r)

	bookmarks, err := h.bookmarkRepo.ListByUser(r.Context(), claims.UserID, params.Limit(), params.Offset())
	if err != nil {
		h.fail(w, err)
		return
	}

	data := make([]model.RecipeData, 0, len(bookmarks))
	for _, b := range bookmarks {
		recipe, err := h.recipeRepo.FindByID(r.Context(), b.RecipeID)
		if err != nil {
			h.fail(w, err)
			return
		}
		if recipe == nil {
			continue
		}

		score, err := h.ratingRepo.UserScore(r.Context(), claims.UserID, recipe.ID)
		if err != nil {
			h.fail(w, err)
			return
		}

		data = append(data, model.RecipeData{
			ID:          recipe.ID,
			Source:      recipe.Source,
			AuthorID:    recipe.AuthorID,
			DateCreated: recipe.DateCreated,
			DateEdited:  recipe.DateEdited,
			Rating:      recipe.Rating,
			Status:      recipe.Status,
			Bookmarked:  true,
			UserScore:   score,
		})
	}

	total, err := h.bookmarkRepo.CountByUser(r.Context(), claims.UserID)
	if err != nil {
		h.fail(w, err)
		return
	}

	respondValue(w, http.StatusOK, model.PageValue{
		TotalPages: params.TotalPages(total),
		Data:       data,
	})
}

// AddBookmark godoc
// @Summary Bookmark an approved recipe
// @Description Bookmarking is only allowed on approved recipes. A duplicate bookmark is a soft failure: 200 with an error message.
// @Tags Bookmarks
// @Produce json
// @Param id path string true "Recipe id (UUID)"
// @Success 201 {object} model.Response
// @Success 200 {object} model.Response "Bookmark already added"
// @Failure 401 {object} model.Response
// @Failure 404 {object} model.Response "Recipe missing or not approved"
// @Security BearerAuth
// @Router /recipe/{id}/bookmark [post]
func (h *Handler) AddBookmark(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	claims := claimsFrom(r)

	recipe, err := h.recipeRepo.FindByID(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}
	if recipe == nil || recipe.Status != model.StatusApproved {
		h.fail(w, apperr.New(apperr.NotFound,
			"There is no recipe with such id. Probably, the recipe hasn't been approved by the moderators yet."))
		return
	}

	exists, err := h.bookmarkRepo.Exists(r.Context(), claims.UserID, id)
	if err != nil {
		h.fail(w, err)
		return
	}
	if exists {
		h.fail(w, apperr.New(apperr.Conflict, "The bookmark is already added."))
		return
	}

	if err := h.bookmarkRepo.Add(r.Context(), claims.UserID, id); err != nil {
		h.fail(w, err)
		return
	}

	respondValue(w, http.StatusCreated, nil)
}

// DeleteBookmark godoc
// @Summary Remove a bookmark
// @Tags Bookmarks
// @Produce json
// @Param id path string true "Recipe id (UUID)"
// @Success 200 {object} model.Response
// @Failure 401 {object} model.Response
// @Failure 404 {object} model.Response "No such bookmark"
// @Security BearerAuth
// @Router /recipe/{id}/bookmark [delete]
func (h *Handler) DeleteBookmark(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	claims := claimsFrom(r)

	deleted, err := h.bookmarkRepo.Delete(r.Context(), claims.UserID, id)
	if err != nil {
		h.fail(w, err)
		return
	}
	if !deleted {
		h.fail(w, apperr.New(apperr.NotFound, "Attempted to delete a non-existent bookmark."))
		return
	}

	respondValue(w, http.StatusOK, nil)
}
