package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"churchattendance/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthController_SignIn(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		fakeErr    error
		wantStatus int
		wantCode   string
	}{
		{name: "admin", body: `{"email":"pastor@church.org","password":"secret123"}`, wantStatus: http.StatusOK},
		{name: "missing password", body: `{"email":"pastor@church.org"}`, wantStatus: http.StatusBadRequest, wantCode: "bad_request"},
		{name: "wrong password", body: `{"email":"pastor@church.org","password":"x"}`, fakeErr: domain.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantCode: "unauthorized"},
		{name: "no user row", body: `{"email":"pastor@church.org","password":"x"}`, fakeErr: domain.ErrForbidden, wantStatus: http.StatusForbidden, wantCode: "forbidden"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeAuthService{
				token:   "jwt-token",
				session: &domain.Session{Authenticated: true, Landing: "/admin", Identity: &domain.Identity{Role: domain.RoleAdmin}},
				err:     tt.fakeErr,
			}
			ctrl := NewAuthController(testLogger, svc)
			req := httptest.NewRequest(http.MethodPost, "/auth/sign-in", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			ctrl.SignIn(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			var got SignInResponse
			envelope := decodeEnvelope(t, rr, &got)
			if tt.wantCode != "" {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantCode, envelope.Error.Code)
				return
			}
			assert.Equal(t, "jwt-token", got.Token)
			assert.Equal(t, "Bearer", got.TokenType)
			assert.Equal(t, "/admin", got.Session.Landing)
		})
	}
}

func TestAuthController_SignOut(t *testing.T) {
	t.Run("revokes bearer token", func(t *testing.T) {
		svc := &fakeAuthService{}
		ctrl := NewAuthController(testLogger, svc)
		req := httptest.NewRequest(http.MethodPost, "/auth/sign-out", nil)
		req.Header.Set("Authorization", "Bearer abc")
		rr := httptest.NewRecorder()

		ctrl.SignOut(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, "abc", svc.lastToken)
		assert.True(t, svc.signedOut)
	})
	t.Run("no token", func(t *testing.T) {
		svc := &fakeAuthService{}
		ctrl := NewAuthController(testLogger, svc)
		req := httptest.NewRequest(http.MethodPost, "/auth/sign-out", nil)
		rr := httptest.NewRecorder()

		ctrl.SignOut(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.False(t, svc.signedOut)
	})
}

func TestAuthController_Session(t *testing.T) {
	svc := &fakeAuthService{session: &domain.Session{Authenticated: false, Landing: "/login"}}
	ctrl := NewAuthController(testLogger, svc)
	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	rr := httptest.NewRecorder()

	ctrl.Session(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var got domain.Session
	decodeEnvelope(t, rr, &got)
	assert.False(t, got.Authenticated)
	assert.Equal(t, "/login", got.Landing)
	assert.Empty(t, svc.lastToken)
}
