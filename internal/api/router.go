package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/recipe-share/internal/middleware"
	"github.com/recipe-share/internal/model"
)

// NewRouter creates a new HTTP router with all routes
func NewRouter(h *Handler, auth *middleware.Auth, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	// Swagger documentation
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// Public routes
	mux.HandleFunc("POST /auth/register", h.Register)
	mux.HandleFunc("POST /auth/login", h.Login)
	mux.HandleFunc("GET /health", h.Health)

	// Users
	mux.HandleFunc("GET /user", auth.Require(model.RoleAny, h.ListUsers))
	mux.HandleFunc("GET /user/{id}", auth.Require(model.RoleAny, h.GetUser))

	// Recipes
	mux.HandleFunc("GET /recipe", auth.Require(model.RoleAny, h.ListRecipes))
	mux.HandleFunc("POST /recipe", auth.Require(model.RoleAny, h.CreateRecipe))
	mux.HandleFunc("GET /recipe/search", auth.Require(model.RoleAny, h.SearchRecipes))
	mux.HandleFunc("GET /recipe/my", auth.Require(model.RoleAny, h.ListMyRecipes))
	mux.HandleFunc("GET /recipe/pending", auth.Require(model.RoleModerator|model.RoleAdmin, h.ListPendingRecipes))
	mux.HandleFunc("GET /recipe/denied", auth.Require(model.RoleModerator|model.RoleAdmin, h.ListDeniedRecipes))
	mux.HandleFunc("GET /recipe/{id}", auth.Require(model.RoleAny, h.GetRecipe))
	mux.HandleFunc("PATCH /recipe/{id}", auth.Require(model.RoleModerator|model.RoleAdmin, h.ChangeRecipeStatus))

	// Ratings
	mux.HandleFunc("GET /recipe/{id}/rating", auth.Require(model.RoleAny, h.GetRating))
	mux.HandleFunc("POST /recipe/{id}/rating", auth.Require(model.RoleAny, h.RateRecipe))

	// Bookmarks
	mux.HandleFunc("POST /recipe/{id}/bookmark", auth.Require(model.RoleAny, h.AddBookmark))
	mux.HandleFunc("DELETE /recipe/{id}/bookmark", auth.Require(model.RoleAny, h.DeleteBookmark))
	mux.HandleFunc("GET /bookmark", auth.Require(model.RoleAny, h.ListBookmarks))

	// Apply global middleware
	return middleware.CORS(middleware.JSON(middleware.Logger(logger, mux)))
}
