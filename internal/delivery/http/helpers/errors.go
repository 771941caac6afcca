package helpers

import (
	"errors"
	"log/slog"
	"net/http"

	"thecommons/internal/domain"
)

// WriteServiceError maps a service error to a status code and error code.
// Only unexpected failures are logged; their message is not exposed to clients.
func WriteServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, ErrCodeNotFound, "not found")
	case errors.Is(err, domain.ErrTownInactive):
		WriteJSONError(w, http.StatusConflict, ErrCodeConflict, "town is not active yet")
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidTimeWindow):
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, "internal error")
	}
}
