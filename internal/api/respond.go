package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/recipe-share/internal/apperr"
	"github.com/recipe-share/internal/model"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// respondValue writes the uniform success wrapper.
func respondValue(w http.ResponseWriter, status int, value any) {
	respondJSON(w, status, model.Response{Value: value, Errors: nil})
}

// respondErrors writes the uniform failure wrapper.
func respondErrors(w http.ResponseWriter, status int, msgs ...string) {
	respondJSON(w, status, model.Response{Value: nil, Errors: msgs})
}

// pathUUID parses a UUID path segment; on failure it writes a 404 and
// reports false, matching how a typed route converter would behave.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		respondErrors(w, http.StatusNotFound, "The `"+name+"` path parameter is not a valid UUID.")
		return uuid.Nil, false
	}
	return id, true
}

// fail is the single boundary translator: domain errors become their
// wrapper shape and status, everything else is logged and surfaced as
// a generic 500.
func (h *Handler) fail(w http.ResponseWriter, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.Internal {
		h.logger.Error("internal error", zap.Error(err))
	}
	respondErrors(w, kind.HTTPStatus(), apperr.MessagesOf(err)...)
}
