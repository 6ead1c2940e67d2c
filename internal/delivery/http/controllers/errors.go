package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventcollection/internal/delivery/http/helpers"
	"eventcollection/internal/domain"
)

// writeDomainError maps a service error to its HTTP status and envelope.
// Conflicts cover duplicate keys, missing foreign keys, and delete-blocking
// dependents; an unreachable store is reported as 503 so callers can tell it
// apart from an empty result.
func writeDomainError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, err.Error())
	case errors.Is(err, domain.ErrDuplicateKey),
		errors.Is(err, domain.ErrForeignKeyMissing),
		errors.Is(err, domain.ErrHasDependents):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
	case errors.Is(err, domain.ErrUnavailable):
		logger.ErrorContext(r.Context(), "store unavailable", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeUnavailable, "database unavailable")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}

// MessageResponse is the data payload for write operations that return no entity.
type MessageResponse struct {
	Message string `json:"message"`
}
