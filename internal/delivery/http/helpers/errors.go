package helpers

import (
	"errors"
	"log/slog"
	"net/http"

	"churchattendance/internal/domain"
	"churchattendance/internal/observability"
)

// WriteServiceError maps a service error to its status and envelope.
// Validation messages are returned verbatim. Unexpected errors are logged and reported to Sentry;
// a GatewayError keeps its user-facing message, anything else gets a generic one.
func WriteServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var verr *domain.ValidationError
	var gerr *domain.GatewayError
	switch {
	case errors.As(err, &verr):
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, verr.Message)
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrUnknownField), errors.Is(err, domain.ErrChildIndex):
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		WriteJSONError(w, http.StatusUnauthorized, ErrCodeUnauthorized, "invalid credentials")
	case errors.Is(err, domain.ErrForbidden):
		WriteJSONError(w, http.StatusForbidden, ErrCodeForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, ErrCodeNotFound, "not found")
	case errors.Is(err, domain.ErrDuplicateEmail), errors.Is(err, domain.ErrAlreadyApproved),
		errors.Is(err, domain.ErrDraftBusy), errors.Is(err, domain.ErrDraftConflict):
		WriteJSONError(w, http.StatusConflict, ErrCodeConflict, err.Error())
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		observability.CaptureErr(err)
		message := "internal server error"
		if errors.As(err, &gerr) {
			message = gerr.Message
		}
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, message)
	}
}
