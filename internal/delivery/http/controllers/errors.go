package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventbook/internal/delivery/http/helpers"
	"eventbook/internal/domain"
)

// respondError maps a service error onto the API error envelope. Validation
// kinds become 400, ErrNotFound 404, ErrConflict 409, everything else 500.
// Server failures are logged; client errors are not.
func respondError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case domain.IsValidation(err):
		helpers.WriteJSONError(w, http.StatusBadRequest, "Validation failed", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, "Not found", err.Error())
	case errors.Is(err, domain.ErrConflict):
		helpers.WriteJSONError(w, http.StatusConflict, "Already exists", err.Error())
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Internal server error", err.Error())
	}
}
