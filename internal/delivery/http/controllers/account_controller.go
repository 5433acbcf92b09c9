package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"churchattendance/internal/delivery/http/helpers"
	"churchattendance/internal/domain"
)

// AccountRequest is the request body for POST /accounts/requests.
type AccountRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	ContactNumber string `json:"contact_number"`
}

// Validate implements Validator. Email format and password length are checked by the service.
func (a AccountRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(a.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(a.Email) == "" {
		errs = append(errs, "email is required")
	}
	if a.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// PendingAccountSuccessResponse is the success response envelope for POST /accounts/requests (201).
type PendingAccountSuccessResponse struct {
	Data  *domain.PendingAccount `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// PendingAccountPageSuccessResponse is the success response envelope for GET /admin/accounts/pending.
type PendingAccountPageSuccessResponse struct {
	Data  helpers.Page[*domain.PendingAccount] `json:"data"`
	Error *helpers.APIError                    `json:"error"`
}

// UserPageSuccessResponse is the success response envelope for GET /admin/users.
type UserPageSuccessResponse struct {
	Data  helpers.Page[*domain.UserAccount] `json:"data"`
	Error *helpers.APIError                 `json:"error"`
}

type AccountController struct {
	Logger  *slog.Logger
	Service domain.AccountService
	Actions domain.RowActionDispatcher
}

func NewAccountController(logger *slog.Logger, svc domain.AccountService, actions domain.RowActionDispatcher) *AccountController {
	return &AccountController{
		Logger:  logger,
		Service: svc,
		Actions: actions,
	}
}

// RequestAccount godoc
// @Summary Request an account
// @Description Stores a pending signup with a hashed password. An admin must approve it before sign-in works.
// @Tags accounts
// @Accept json
// @Produce json
// @Param body body AccountRequest true "Signup data"
// @Success 201 {object} controllers.PendingAccountSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /accounts/requests [post]
func (c *AccountController) RequestAccount(w http.ResponseWriter, r *http.Request) {
	var req AccountRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	acc, err := c.Service.RequestAccount(r.Context(), req.Name, req.Email, req.Password, req.ContactNumber)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, acc)
}

// ListPending godoc
// @Summary List pending account requests
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (1-based)"
// @Success 200 {object} controllers.PendingAccountPageSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /admin/accounts/pending [get]
func (c *AccountController) ListPending(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePage(r, domain.DefaultPageSize)
	accounts, total, err := c.Service.ListPending(r.Context(), params)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, helpers.NewPage(accounts, params, total))
}

// Approve godoc
// @Summary Approve an account request
// @Description Creates the sign-in identity and user_list row, marks the request registered, and emails the applicant.
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param accountID path string true "Pending account ID (UUID)"
// @Success 200 {object} controllers.CommandSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /admin/accounts/pending/{accountID}/approve [post]
func (c *AccountController) Approve(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "accountID")
	if !ok {
		return
	}
	res, err := c.Actions.Dispatch(r.Context(), domain.RowCommand{
		Kind:     domain.CmdApproveAccount,
		RecordID: id,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, res)
}

// ListUsers godoc
// @Summary List users
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (1-based)"
// @Success 200 {object} controllers.UserPageSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /admin/users [get]
func (c *AccountController) ListUsers(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePage(r, domain.DefaultPageSize)
	users, total, err := c.Service.ListUsers(r.Context(), params)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, helpers.NewPage(users, params, total))
}
