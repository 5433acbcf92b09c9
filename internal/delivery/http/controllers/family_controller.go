package controllers

import (
	"log/slog"
	"net/http"

	"churchattendance/internal/delivery/http/helpers"
	"churchattendance/internal/domain"
)

// CreateFamilyMemberRequest is the request body for POST /family.
type CreateFamilyMemberRequest struct {
	FirstName string                  `json:"first_name"`
	LastName  string                  `json:"last_name"`
	Contact   string                  `json:"contact"`
	Type      domain.FamilyMemberType `json:"type"`
}

// Validate implements Validator. Blank fields are reported by the service with the form message.
func (c CreateFamilyMemberRequest) Validate() []string {
	if c.Type != "" && !c.Type.Valid() {
		return []string{"type must be Adult or Child"}
	}
	return nil
}

// UpdateFamilyMemberRequest is the request body for PATCH /family/{memberID}. Omitted fields are unchanged.
type UpdateFamilyMemberRequest struct {
	FirstName *string                  `json:"first_name"`
	LastName  *string                  `json:"last_name"`
	Contact   *string                  `json:"contact"`
	Type      *domain.FamilyMemberType `json:"type"`
}

// Validate implements Validator.
func (u UpdateFamilyMemberRequest) Validate() []string {
	if u.FirstName == nil && u.LastName == nil && u.Contact == nil && u.Type == nil {
		return []string{"at least one field is required"}
	}
	return nil
}

// FamilyMemberSuccessResponse is the success response envelope for POST /family (201).
type FamilyMemberSuccessResponse struct {
	Data  *domain.FamilyMember `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// FamilyPageSuccessResponse is the success response envelope for GET /family.
type FamilyPageSuccessResponse struct {
	Data  helpers.Page[*domain.FamilyMember] `json:"data"`
	Error *helpers.APIError                  `json:"error"`
}

// FamilyController serves the signed-in guardian's family list. Every call is scoped to the caller.
type FamilyController struct {
	Logger  *slog.Logger
	Service domain.FamilyService
	Actions domain.RowActionDispatcher
}

func NewFamilyController(logger *slog.Logger, svc domain.FamilyService, actions domain.RowActionDispatcher) *FamilyController {
	return &FamilyController{
		Logger:  logger,
		Service: svc,
		Actions: actions,
	}
}

// List godoc
// @Summary List my family
// @Description 7 per page.
// @Tags family
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (1-based)"
// @Success 200 {object} controllers.FamilyPageSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /family [get]
func (c *FamilyController) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	params := helpers.ParsePage(r, domain.FamilyPageSize)
	members, total, err := c.Service.List(r.Context(), identity.UserID, params)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, helpers.NewPage(members, params, total))
}

// Create godoc
// @Summary Add a family member
// @Tags family
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateFamilyMemberRequest true "Member data"
// @Success 201 {object} controllers.FamilyMemberSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /family [post]
func (c *FamilyController) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	var req CreateFamilyMemberRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	member, err := c.Service.Add(r.Context(), &domain.FamilyMember{
		GuardianID: identity.UserID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Contact:    req.Contact,
		Type:       req.Type,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, member)
}

// Update godoc
// @Summary Edit a family member
// @Tags family
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param memberID path string true "Family member ID (UUID)"
// @Param body body UpdateFamilyMemberRequest true "Fields to change"
// @Success 200 {object} controllers.CommandSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /family/{memberID} [patch]
func (c *FamilyController) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "memberID")
	if !ok {
		return
	}
	var req UpdateFamilyMemberRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	res, err := c.Actions.Dispatch(r.Context(), domain.RowCommand{
		Kind:     domain.CmdUpdateFamilyMember,
		RecordID: id,
		ActorID:  identity.UserID,
		FamilyPatch: domain.FamilyMemberPatch{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Contact:   req.Contact,
			Type:      req.Type,
		},
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, res)
}

// Delete godoc
// @Summary Remove a family member
// @Tags family
// @Produce json
// @Security BearerAuth
// @Param memberID path string true "Family member ID (UUID)"
// @Success 200 {object} controllers.CommandSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /family/{memberID} [delete]
func (c *FamilyController) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "memberID")
	if !ok {
		return
	}
	res, err := c.Actions.Dispatch(r.Context(), domain.RowCommand{
		Kind:     domain.CmdDeleteFamilyMember,
		RecordID: id,
		ActorID:  identity.UserID,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, res)
}
