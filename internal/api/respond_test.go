package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/recipe-share/internal/apperr"
	"github.com/recipe-share/internal/model"
)

func decodeWrapper(t *testing.T, rec *httptest.ResponseRecorder) model.Response {
	t.Helper()
	var resp model.Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func TestFail_DomainError(t *testing.T) {
	h := &Handler{logger: zap.NewNop()}

	rec := httptest.NewRecorder()
	h.fail(rec, apperr.New(apperr.NotFound, "No recipe with such id was found."))

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	resp := decodeWrapper(t, rec)
	if resp.Value != nil {
		t.Error("expected null value on failure")
	}
	if len(resp.Errors) != 1 || resp.Errors[0] != "No recipe with such id was found." {
		t.Errorf("unexpected errors: %v", resp.Errors)
	}
}

func TestFail_SoftConflictIs200(t *testing.T) {
	h := &Handler{logger: zap.NewNop()}

	rec := httptest.NewRecorder()
	h.fail(rec, apperr.New(apperr.Conflict, "The bookmark is already added."))

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if resp := decodeWrapper(t, rec); len(resp.Errors) == 0 {
		t.Error("expected a non-null errors array")
	}
}

func TestFail_UnexpectedErrorIsGeneric500(t *testing.T) {
	h := &Handler{logger: zap.NewNop()}

	rec := httptest.NewRecorder()
	h.fail(rec, errors.New("pq: relation does not exist"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	resp := decodeWrapper(t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0] != "Something really bad just happened..." {
		t.Errorf("internal detail must not leak, got %v", resp.Errors)
	}
}

func TestRespondValue_WrapperShape(t *testing.T) {
	rec := httptest.NewRecorder()
	respondValue(rec, http.StatusOK, model.PageValue{TotalPages: 2, Data: []model.RecipeData{}})

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(rec.Body).Decode(&raw); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if _, ok := raw["value"]; !ok {
		t.Error(`expected a "value" field`)
	}
	if string(raw["errors"]) != "null" {
		t.Errorf(`expected "errors": null, got %s`, raw["errors"])
	}
}

func TestPathUUID_Invalid(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/recipe/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	rec := httptest.NewRecorder()

	if _, ok := pathUUID(rec, req, "id"); ok {
		t.Fatal("expected parse failure")
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
