package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"churchattendance/internal/delivery/http/helpers"
	"churchattendance/internal/delivery/http/middleware"
	"churchattendance/internal/domain"
)

// pathUUID reads a UUID path value. On a missing or malformed value it writes 400 and returns false.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	raw := r.PathValue(name)
	if raw == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing "+name)
		return "", false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid "+name)
		return "", false
	}
	return id.String(), true
}

// requireIdentity returns the caller set by RequireAuth, writing 401 when absent.
func requireIdentity(w http.ResponseWriter, r *http.Request) (*domain.Identity, bool) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return nil, false
	}
	return identity, true
}
