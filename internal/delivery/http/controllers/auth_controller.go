package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	h "churchattendance/internal/delivery/http/helpers"
	"churchattendance/internal/delivery/http/middleware"
	"churchattendance/internal/domain"
)

// SignInRequest is the request body for POST /auth/sign-in.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (l SignInRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(l.Email) == "" {
		errs = append(errs, "email is required")
	}
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// SignInResponse is the response body for POST /auth/sign-in.
// Landing is the view the client should navigate to for the caller's role.
type SignInResponse struct {
	Token     string          `json:"token"`
	TokenType string          `json:"token_type"`
	Session   *domain.Session `json:"session"`
}

// SignInSuccessResponse is the success response envelope for POST /auth/sign-in.
type SignInSuccessResponse struct {
	Data  SignInResponse `json:"data"`
	Error *h.APIError    `json:"error"`
}

// SessionSuccessResponse is the success response envelope for GET /auth/session.
type SessionSuccessResponse struct {
	Data  *domain.Session `json:"data"`
	Error *h.APIError     `json:"error"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// SignIn godoc
// @Summary Sign in
// @Description Authenticate with email and password. The session's landing is /admin for admins and /family for users.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body SignInRequest true "Credentials"
// @Success 200 {object} controllers.SignInSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /auth/sign-in [post]
func (c *AuthController) SignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	token, session, err := c.Service.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, SignInResponse{Token: token, TokenType: "Bearer", Session: session})
}

// SignOut godoc
// @Summary Sign out
// @Description Revokes the bearer token. Succeeds when the token is missing or already invalid.
// @Tags auth
// @Security BearerAuth
// @Success 204
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/sign-out [post]
func (c *AuthController) SignOut(w http.ResponseWriter, r *http.Request) {
	if token := middleware.BearerToken(r); token != "" {
		if err := c.Service.SignOut(r.Context(), token); err != nil {
			h.WriteServiceError(w, r, c.Logger, err)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// Session godoc
// @Summary Resolve the current session
// @Description Always 200. An anonymous caller gets authenticated=false and landing /login.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.SessionSuccessResponse
// @Router /auth/session [get]
func (c *AuthController) Session(w http.ResponseWriter, r *http.Request) {
	session, err := c.Service.ResolveIdentity(r.Context(), middleware.BearerToken(r))
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, session)
}
