package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/recipe-share/internal/api"
	"github.com/recipe-share/internal/config"
	"github.com/recipe-share/internal/middleware"
	"github.com/recipe-share/internal/scheduler"
	"github.com/recipe-share/internal/storage"
	"github.com/recipe-share/internal/token"

	_ "github.com/recipe-share/docs" // swagger docs
)

// @title Recipe Sharing Platform API
// @version 1.0
// @description A backend application for writing recipes in Markdown, saving and rating them.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your JWT token with the `Bearer ` prefix, e.g. "Bearer eyJhbGci..."

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Load configuration; the signing secret is mandatory.
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	// Connect to database
	logger.Info("connecting to database")
	db, err := storage.NewDatabase(&cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	logger.Info("running migrations")
	if err := db.RunMigrations(); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	userRepo := storage.NewUserRepository(db)
	recipeRepo := storage.NewRecipeRepository(db)
	ratingRepo := storage.NewRatingRepository(db)
	bookmarkRepo := storage.NewBookmarkRepository(db)

	tokens := token.NewService(cfg.Auth)

	// A signed token for a synthetic identity with every authority;
	// not a database user. Logged for bootstrap and ops access.
	adminToken, err := tokens.IssueAdmin()
	if err != nil {
		logger.Fatal("failed to issue admin token", zap.Error(err))
	}
	logger.Debug("virtual admin token for this session", zap.String("token", adminToken))

	// Rating reconcile sweep
	ctx := context.Background()
	reconciler := scheduler.NewReconciler(cfg.Reconcile, ratingRepo, logger)
	if err := reconciler.Start(ctx); err != nil {
		logger.Fatal("failed to start reconciler", zap.Error(err))
	}

	// API
	auth := middleware.NewAuth(tokens)
	handler := api.NewHandler(cfg, logger, userRepo, recipeRepo, ratingRepo, bookmarkRepo, tokens)
	router := api.NewRouter(handler, auth, logger)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("server starting", zap.String("host", cfg.Server.Host), zap.Int("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	reconciler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}
