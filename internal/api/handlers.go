package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/recipe-share/internal/apperr"
	"github.com/recipe-share/internal/config"
	"github.com/recipe-share/internal/middleware"
	"github.com/recipe-share/internal/model"
	"github.com/recipe-share/internal/storage"
	"github.com/recipe-share/internal/token"
)

// Handler contains all API handlers
type Handler struct {
	cfg          *config.Config
	logger       *zap.Logger
	userRepo     *storage.UserRepository
	recipeRepo   *storage.RecipeRepository
	ratingRepo   *storage.RatingRepository
	bookmarkRepo *storage.BookmarkRepository
	tokens       *token.Service
}

// NewHandler creates a new API handler
func NewHandler(
	cfg *config.Config,
	logger *zap.Logger,
	userRepo *storage.UserRepository,
	recipeRepo *storage.RecipeRepository,
	ratingRepo *storage.RatingRepository,
	bookmarkRepo *storage.BookmarkRepository,
	tokens *token.Service,
) *Handler {
	return &Handler{
		cfg:          cfg,
		logger:       logger,
		userRepo:     userRepo,
		recipeRepo:   recipeRepo,
		ratingRepo:   ratingRepo,
		bookmarkRepo: bookmarkRepo,
		tokens:       tokens,
	}
}

// Health godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} model.Response
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondValue(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Register godoc
// @Summary Register a new user
// @Description Create a user account. A taken username is a soft failure: 200 with an error message.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Registration details"
// @Success 201 {object} model.Response
// @Failure 400 {object} model.Response "Missing fields"
// @Failure 500 {object} model.Response "Server error"
// @Router /auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, apperr.New(apperr.Validation, "The request body is not valid JSON."))
		return
	}

	if req.Username == "" || req.Password == "" || req.FirstName == "" || req.LastName == "" {
		h.fail(w, apperr.New(apperr.Validation,
			"The following fields are required: `username`, `password`, `first_name`, `last_name`."))
		return
	}

	existing, err := h.userRepo.FindByUsername(r.Context(), req.Username)
	if err != nil {
		h.fail(w, err)
		return
	}
	if existing != nil {
		h.fail(w, apperr.New(apperr.Conflict, "This username is already taken."))
		return
	}

	if _, err := h.userRepo.Create(r.Context(), &req); err != nil {
		h.fail(w, err)
		return
	}

	respondValue(w, http.StatusCreated, nil)
}

// Login godoc
// @Summary Log in
// @Description Verify credentials and issue a signed bearer token.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login credentials"
// @Success 200 {object} model.Response
// @Failure 400 {object} model.Response "Missing fields"
// @Failure 403 {object} model.Response "Wrong password"
// @Failure 404 {object} model.Response "Unknown username"
// @Router /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, apperr.New(apperr.Validation, "The request body is not valid JSON."))
		return
	}

	if req.Username == "" || req.Password == "" {
		h.fail(w, apperr.New(apperr.Validation,
			"The following fields are required: `username`, `password`."))
		return
	}

	user, err := h.userRepo.FindByUsername(r.Context(), req.Username)
	if err != nil {
		h.fail(w, err)
		return
	}
	if user == nil {
		h.fail(w, apperr.New(apperr.NotFound, "No user with such username was found."))
		return
	}

	ok, err := h.userRepo.ValidatePassword(r.Context(), user.ID, req.Password)
	if err != nil {
		h.fail(w, err)
		return
	}
	if !ok {
		h.fail(w, apperr.New(apperr.AccessDenied, "The password is incorrect."))
		return
	}

	signed, err := h.tokens.Issue(user.ID, user.Role)
	if err != nil {
		h.fail(w, err)
		return
	}

	respondValue(w, http.StatusOK, model.TokenValue{Token: signed})
}

// ListUsers godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param elements query int false "Page size" default(20)
// @Success 200 {object} model.Response
// @Failure 400 {object} model.Response "Pagination error"
// @Failure 401 {object} model.Response
// @Security BearerAuth
// @Router /user [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	params, err := parsePagination(r.URL.Query(), h.cfg.Pagination)
	if err != nil {
		h.fail(w, err)
		return
	}

	users, err := h.userRepo.List(r.Context(), params.Limit(), params.Offset())
	if err != nil {
		h.fail(w, err)
		return
	}

	total, err := h.userRepo.Count(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}

	if users == nil {
		users = []model.User{}
	}
	respondValue(w, http.StatusOK, model.PageValue{
		TotalPages: params.TotalPages(total),
		Data:       users,
	})
}

// GetUser godoc
// @Summary Get a user by id
// @Tags Users
// @Produce json
// @Param id path string true "User id (UUID)"
// @Success 200 {object} model.Response
// @Failure 401 {object} model.Response
// @Failure 404 {object} model.Response
// @Security BearerAuth
// @Router /user/{id} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.userRepo.FindByID(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}
	if user == nil {
		h.fail(w, apperr.New(apperr.NotFound, "No user with such id was found."))
		return
	}

	respondValue(w, http.StatusOK, user)
}

func claimsFrom(r *http.Request) *token.Claims {
	return middleware.GetClaims(r.Context())
}
