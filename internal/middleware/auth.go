package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/recipe-share/internal/model"
	"github.com/recipe-share/internal/token"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// Auth extracts and verifies the bearer token on protected routes and
// enforces a required role bitmask.
type Auth struct {
	tokens *token.Service
}

func NewAuth(tokens *token.Service) *Auth {
	return &Auth{tokens: tokens}
}

// Require wraps next so that only callers holding at least one of the
// authorities in mask get through. Missing or unverifiable credentials
// are a 401; a verified caller without the required authority is a 403.
func (a *Auth) Require(mask model.Role, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			unauthenticated(w, "use the `Authorization` header to pass the bearer token")
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthenticated(w, "the format of the `Authorization` header is invalid")
			return
		}

		claims, err := a.tokens.Verify(parts[1])
		if err != nil {
			if errors.Is(err, token.ErrTokenExpired) {
				unauthenticated(w, "the authorization token has expired. Please, authorize again")
			} else {
				unauthenticated(w, "there was an error verifying the authorization token")
			}
			return
		}

		if !claims.Role.Has(mask) {
			forbidden(w, "you are not allowed to perform this operation")
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next(w, r.WithContext(ctx))
	}
}

// GetClaims extracts the verified claims placed in the context by
// Require. Nil when the request never passed the guard.
func GetClaims(ctx context.Context) *token.Claims {
	claims, ok := ctx.Value(claimsContextKey).(*token.Claims)
	if !ok {
		return nil
	}
	return claims
}

func unauthenticated(w http.ResponseWriter, reason string) {
	writeAuthFailure(w, http.StatusUnauthorized, reason)
}

func forbidden(w http.ResponseWriter, reason string) {
	writeAuthFailure(w, http.StatusForbidden, reason)
}

func writeAuthFailure(w http.ResponseWriter, status int, reason string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.Response{
		Value:  nil,
		Errors: []string{"Authorization failed. Reason: " + reason + "."},
	})
}

// CORS middleware
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// JSON middleware sets the JSON content type
func JSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// Logger logs every request with its outcome.
func Logger(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
