package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/recipe-share/internal/config"
	"github.com/recipe-share/internal/model"
	"github.com/recipe-share/internal/token"
)

func newTestAuth() (*Auth, *token.Service) {
	svc := token.NewService(config.AuthConfig{Secret: "test-secret", TokenTTL: time.Hour})
	return NewAuth(svc), svc
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) model.Response {
	t.Helper()
	var resp model.Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func TestRequire_MissingHeader(t *testing.T) {
	auth, _ := newTestAuth()

	handler := auth.Require(model.RoleAny, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	})

	req := httptest.NewRequest(http.MethodGet, "/recipe", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if resp := decodeResponse(t, rec); len(resp.Errors) == 0 {
		t.Error("expected an error message")
	}
}

func TestRequire_MalformedHeader(t *testing.T) {
	auth, svc := newTestAuth()
	signed, _ := svc.Issue(uuid.New(), model.RoleUser)

	cases := []string{
		signed,                      // missing scheme
		"Basic " + signed,           // wrong scheme
		"Bearer " + signed + " abc", // extra segment
		"Bearer",                    // missing token
	}

	for _, header := range cases {
		handler := auth.Require(model.RoleAny, func(w http.ResponseWriter, r *http.Request) {
			t.Fatalf("handler must not be reached for header %q", header)
		})

		req := httptest.NewRequest(http.MethodGet, "/recipe", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		handler(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected 401, got %d", header, rec.Code)
		}
	}
}

func TestRequire_ExpiredToken(t *testing.T) {
	expired := token.NewService(config.AuthConfig{Secret: "test-secret", TokenTTL: -time.Minute})
	signed, _ := expired.Issue(uuid.New(), model.RoleUser)

	auth, _ := newTestAuth()
	handler := auth.Require(model.RoleAny, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	})

	req := httptest.NewRequest(http.MethodGet, "/recipe", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestRequire_InsufficientRole(t *testing.T) {
	auth, svc := newTestAuth()
	signed, _ := svc.Issue(uuid.New(), model.RoleUser)

	handler := auth.Require(model.RoleModerator|model.RoleAdmin, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	})

	req := httptest.NewRequest(http.MethodGet, "/recipe/pending", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	handler(rec, req)

	// Authenticated but not privileged: 403, not 401.
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestRequire_RoleMaskIntersection(t *testing.T) {
	auth, svc := newTestAuth()

	cases := []struct {
		role model.Role
		mask model.Role
		pass bool
	}{
		{model.RoleUser, model.RoleAny, true},
		{model.RoleModerator, model.RoleModerator | model.RoleAdmin, true},
		{model.RoleModerator, model.RoleAdmin, false},
		{model.RoleAdmin | model.RoleModerator | model.RoleUser, model.RoleAdmin, true},
		{model.RoleUser, model.RoleModerator | model.RoleAdmin, false},
	}

	for _, tc := range cases {
		signed, _ := svc.Issue(uuid.New(), tc.role)

		reached := false
		handler := auth.Require(tc.mask, func(w http.ResponseWriter, r *http.Request) {
			reached = true
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/recipe", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		rec := httptest.NewRecorder()
		handler(rec, req)

		if reached != tc.pass {
			t.Errorf("role %d against mask %d: reached=%v, want %v", tc.role, tc.mask, reached, tc.pass)
		}
	}
}

func TestRequire_ClaimsInContext(t *testing.T) {
	auth, svc := newTestAuth()
	userID := uuid.New()
	signed, _ := svc.Issue(userID, model.RoleUser)

	var got *token.Claims
	handler := auth.Require(model.RoleAny, func(w http.ResponseWriter, r *http.Request) {
		got = GetClaims(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/recipe", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if got == nil {
		t.Fatal("expected claims in context")
	}
	if got.UserID != userID {
		t.Errorf("expected user %s, got %s", userID, got.UserID)
	}
	if got.Role != model.RoleUser {
		t.Errorf("expected role %d, got %d", model.RoleUser, got.Role)
	}
}

func TestGetClaims_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/recipe", nil)
	if GetClaims(req.Context()) != nil {
		t.Error("expected nil claims on an unguarded request")
	}
}
