package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"hallbooking/internal/delivery/http/helpers"
	"hallbooking/internal/domain"
)

// writeServiceError maps domain sentinel errors onto HTTP statuses and writes
// the JSON error envelope. Unrecognized errors become 500 and are logged.
func writeServiceError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, err.Error())
	case errors.Is(err, domain.ErrSlotConflict),
		errors.Is(err, domain.ErrBookingNotPending),
		errors.Is(err, domain.ErrDuplicateEmail):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
	case errors.Is(err, domain.ErrOutsideOpeningHours), errors.Is(err, domain.ErrBookingLeadTime):
		helpers.WriteJSONError(w, http.StatusUnprocessableEntity, helpers.ErrCodeBadRequest, err.Error())
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}
