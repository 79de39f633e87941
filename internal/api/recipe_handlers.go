package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/recipe-share/internal/apperr"
	"github.com/recipe-share/internal/model"
)

// projectRecipe builds the per-caller view of a recipe: the stored row
// plus the caller's bookmark flag and own score. These are computed per
// request, never cached on the recipe.
func (h *Handler) projectRecipe(ctx context.Context, recipe *model.Recipe, callerID uuid.UUID) (*model.RecipeData, error) {
	bookmarked, err := h.bookmarkRepo.Exists(ctx, callerID, recipe.ID)
	if err != nil {
		return nil, err
	}
	score, err := h.ratingRepo.UserScore(ctx, callerID, recipe.ID)
	if err != nil {
		return nil, err
	}

	return &model.RecipeData{
		ID:          recipe.ID,
		Source:      recipe.Source,
		AuthorID:    recipe.AuthorID,
		DateCreated: recipe.DateCreated,
		DateEdited:  recipe.DateEdited,
		Rating:      recipe.Rating,
		Status:      recipe.Status,
		Bookmarked:  bookmarked,
		UserScore:   score,
	}, nil
}

func (h *Handler) projectRecipes(ctx context.Context, recipes []model.Recipe, callerID uuid.UUID) ([]model.RecipeData, error) {
	data := make([]model.RecipeData, 0, len(recipes))
	for i := range recipes {
		d, err := h.projectRecipe(ctx, &recipes[i], callerID)
		if err != nil {
			return nil, err
		}
		data = append(data, *d)
	}
	return data, nil
}

// ListRecipes godoc
// @Summary List approved recipes
// @Description Public listing: approved recipes only, best rated first.
// @Tags Recipes
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param elements query int false "Page size" default(20)
// @Success 200 {object} model.Response
// @Failure 400 {object} model.Response "Pagination error"
// @Failure 401 {object} model.Response
// @Security BearerAuth
// @Router /recipe [get]
func (h *Handler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	params, err := parsePagination(r.URL.Query(), h.cfg.Pagination)
	if err != nil {
		h.fail(w, err)
		return
	}
	claims := claimsFrom(r)

	recipes, err := h.recipeRepo.ListApproved(r.Context(), params.Limit(), params.Offset())
	if err != nil {
		h.fail(w, err)
		return
	}

	data, err := h.projectRecipes(r.Context(), recipes, claims.UserID)
	if err != nil {
		h.fail(w, err)
		return
	}

	total, err := h.recipeRepo.CountByStatus(r.Context(), model.StatusApproved)
	if err != nil {
		h.fail(w, err)
		return
	}

	respondValue(w, http.StatusOK, model.PageValue{
		TotalPages: params.TotalPages(total),
		Data:       data,
	})
}

// CreateRecipe godoc
// @Summary Submit a recipe
// @Description Create a Markdown recipe in pending status; tags are attached, created on the way when missing.
// @Tags Recipes
// @Accept json
// @Produce json
// @Param request body model.CreateRecipeRequest true "Recipe source and tags"
// @Success 201 {object} model.Response
// @Failure 400 {object} model.Response "Missing source"
// @Failure 401 {object} model.Response
// @Security BearerAuth
// @Router /recipe [post]
func (h *Handler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	var req model.CreateRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, apperr.New(apperr.Validation, "The request body is not valid JSON."))
		return
	}

	if req.Source == "" {
		h.fail(w, apperr.New(apperr.Validation, "The following fields are required: `source`."))
		return
	}

	claims := claimsFrom(r)
	recipe, err := h.recipeRepo.Create(r.Context(), claims.UserID, req.Source, req.Tags)
	if err != nil {
		h.fail(w, err)
		return
	}

	w.Header().Set("Location", "/recipe/"+recipe.ID.String())
	respondValue(w, http.StatusCreated, nil)
}

// GetRecipe godoc
// @Summary Get a recipe by id
// @Tags Recipes
// @Produce json
// @Param id path string true "Recipe id (UUID)"
// @Success 200 {object} model.Response
// @Failure 401 {object} model.Response
// @Failure 404 {object} model.Response
// @Security BearerAuth
// @Router /recipe/{id} [get]
func (h *Handler) GetRecipe(w http.ResponseWriter, r *http.Request) {
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
	if recipe == nil {
		h.fail(w, apperr.New(apperr.NotFound, "No recipe with such id was found."))
		return
	}

	data, err := h.projectRecipe(r.Context(), recipe, claims.UserID)
	if err != nil {
		h.fail(w, err)
		return
	}

	respondValue(w, http.StatusOK, data)
}

// ChangeRecipeStatus godoc
// @Summary Change the moderation status of a recipe
// @Description Moderators and admins may set any of the three states at any time.
// @Tags Recipes
// @Accept json
// @Produce json
// @Param id path string true "Recipe id (UUID)"
// @Param request body model.ChangeStatusRequest true "New status: 0 denied, 1 pending, 2 approved"
// @Success 200 {object} model.Response
// @Failure 400 {object} model.Response "Invalid status"
// @Failure 401 {object} model.Response
// @Failure 403 {object} model.Response "Not a moderator"
// @Failure 404 {object} model.Response
// @Security BearerAuth
// @Router /recipe/{id} [patch]
func (h *Handler) ChangeRecipeStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req model.ChangeStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, apperr.New(apperr.Validation, "The request body is not valid JSON."))
		return
	}
	if !model.ValidStatus(req.Status) {
		h.fail(w, apperr.New(apperr.Validation, "The `status` field must be 0 (denied), 1 (pending) or 2 (approved)."))
		return
	}

	recipe, err := h.recipeRepo.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		h.fail(w, err)
		return
	}
	if recipe == nil {
		h.fail(w, apperr.New(apperr.NotFound, "No recipe with such id was found."))
		return
	}

	claims := claimsFrom(r)
	data, err := h.projectRecipe(r.Context(), recipe, claims.UserID)
	if err != nil {
		h.fail(w, err)
		return
	}

	respondValue(w, http.StatusOK, data)
}

// SearchRecipes godoc
// @Summary Search approved recipes by tags
// @Description Whitespace-separated tags in `q`; matches recipes tagged with any of them.
// @Tags Recipes
// @Produce json
// @Param q query string true "Tags to search for"
// @Param page query int false "Page number" default(1)
// @Param elements query int false "Page size" default(20)
// @Success 200 {object} model.Response
// @Failure 400 {object} model.Response
// @Failure 401 {object} model.Response
// @Security BearerAuth
// @Router /recipe/search [get]
func (h *Handler) SearchRecipes(w http.ResponseWriter, r *http.Request) {
	params, err := parsePagination(r.URL.Query(), h.cfg.Pagination)
	if err != nil {
		h.fail(w, err)
		return
	}

	tags := strings.Fields(r.URL.Query().Get("q"))
	if len(tags) == 0 {
		h.fail(w, apperr.New(apperr.Validation, "The `q` parameter must contain at least one tag."))
		return
	}

	claims := claimsFrom(r)
	recipes, err := h.recipeRepo.SearchByTags(r.Context(), tags, params.Limit(), params.Offset())
	if err != nil {
		h.fail(w, err)
		return
	}

	data, err := h.projectRecipes(r.Context(), recipes, claims.UserID)
	if err != nil {
		h.fail(w, err)
		return
	}

	total, err := h.recipeRepo.CountByTags(r.Context(), tags)
	if err != nil {
		h.fail(w, err)
		return
	}

	respondValue(w, http.StatusOK, model.PageValue{
		TotalPages: params.TotalPages(total),
		Data:       data,
	})
}

// ListMyRecipes godoc
// @Summary List the caller's own recipes
// @Description Returns all of the caller's recipes regardless of moderation status.
// @Tags Recipes
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param elements query int false "Page size" default(20)
// @Success 200 {object} model.Response
// @Failure 400 {object} model.Response "Pagination error"
// @Failure 401 {object} model.Response
// @Security BearerAuth
// @Router /recipe/my [get]
func (h *Handler) ListMyRecipes(w http.ResponseWriter, r *http.Request) {
	params, err := parsePagination(r.URL.Query(), h.cfg.Pagination)
	if err != nil {
		h.fail(w, err)
		return
	}
	claims := claimsFrom(r)

	recipes, err := h.recipeRepo.ListByAuthor(r.Context(), claims.UserID, params.Limit(), params.Offset())
	if err != nil {
		h.fail(w, err)
		return
	}

	data, err := h.projectRecipes(r.Context(), recipes, claims.UserID)
	if err != nil {
		h.fail(w, err)
		return
	}

	total, err := h.recipeRepo.CountByAuthor(r.Context(), claims.UserID)
	if err != nil {
		h.fail(w, err)
		return
	}

	respondValue(w, http.StatusOK, model.PageValue{
		TotalPages: params.TotalPages(total),
		Data:       data,
	})
}

// ListPendingRecipes godoc
// @Summary List recipes awaiting moderation
// @Tags Moderation
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param elements query int false "Page size" default(20)
// @Success 200 {object} model.Response
// @Failure 400 {object} model.Response "Pagination error"
// @Failure 401 {object} model.Response
// @Failure 403 {object} model.Response "Not a moderator"
// @Security BearerAuth
// @Router /recipe/pending [get]
func (h *Handler) ListPendingRecipes(w http.ResponseWriter, r *http.Request) {
	h.listByStatus(w, r, model.StatusPending)
}

// ListDeniedRecipes godoc
// @Summary List denied recipes
// @Tags Moderation
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param elements query int false "Page size" default(20)
// @Success 200 {object} model.Response
// @Failure 400 {object} model.Response "Pagination error"
// @Failure 401 {object} model.Response
// @Failure 403 {object} model.Response "Not a moderator"
// @Security BearerAuth
// @Router /recipe/denied [get]
func (h *Handler) ListDeniedRecipes(w http.ResponseWriter, r *http.Request) {
	h.listByStatus(w, r, model.StatusDenied)
}

func (h *Handler) listByStatus(w http.ResponseWriter, r *http.Request, status model.Status) {
	params, err := parsePagination(r.URL.Query(), h.cfg.Pagination)
	if err != nil {
		h.fail(w, err)
		return
	}
	claims := claimsFrom(r)

	recipes, err := h.recipeRepo.ListByStatus(r.Context(), status, params.Limit(), params.Offset())
	if err != nil {
		h.fail(w, err)
		return
	}

	data, err := h.projectRecipes(r.Context(), recipes, claims.UserID)
	if err != nil {
		h.fail(w, err)
		return
	}

	// totalPages counts records of this listing's own status.
	total, err := h.recipeRepo.CountByStatus(r.Context(), status)
	if err != nil {
		h.fail(w, err)
		return
	}

	respondValue(w, http.StatusOK, model.PageValue{
		TotalPages: params.TotalPages(total),
		Data:       data,
	})
}
