package controllers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"churchattendance/internal/adapters/qrcode"
	"churchattendance/internal/delivery/http/helpers"
	"churchattendance/internal/domain"
)

// DraftResponse is a stored draft with its id.
// swagger:model DraftResponse
type DraftResponse struct {
	ID    string                   `json:"id"`
	Draft domain.RegistrationDraft `json:"draft"`
}

// DraftSuccessResponse is the success response envelope for draft endpoints.
type DraftSuccessResponse struct {
	Data  DraftResponse     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ConfirmationSuccessResponse is the success response envelope for submissions (201).
type ConfirmationSuccessResponse struct {
	Data  *domain.Confirmation `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// ConfirmedChild is the public view of one registered child.
// swagger:model ConfirmedChild
type ConfirmedChild struct {
	FirstName     string `json:"child_first_name"`
	PreferredTime string `json:"preferred_time"`
	ScheduleDay   string `json:"schedule_day"`
	HasAttended   bool   `json:"has_attended"`
}

// CodeLookupResponse is what GET /registrations/{code} reveals about a registration.
// swagger:model CodeLookupResponse
type CodeLookupResponse struct {
	Code     int              `json:"code"`
	Children []ConfirmedChild `json:"children"`
}

// CodeLookupSuccessResponse is the success response envelope for GET /registrations/{code}.
type CodeLookupSuccessResponse struct {
	Data  CodeLookupResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// UpdateGuardianRequest is the request body for PATCH /registration/drafts/{draftID}/guardian.
// Omitted fields are unchanged.
type UpdateGuardianRequest struct {
	FirstName *string `json:"guardian_first_name"`
	LastName  *string `json:"guardian_last_name"`
	Telephone *string `json:"guardian_telephone"`
}

// SelectEventRequest is the request body for PUT /registration/drafts/{draftID}/event.
type SelectEventRequest struct {
	EventID       string `json:"event_id"`
	PreferredTime string `json:"preferred_time"`
}

// UpdateChildRequest is the request body for PATCH /registration/drafts/{draftID}/children/{index}.
type UpdateChildRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Age       *string `json:"age"`
}

// RegistrationController serves the registration wizard.
type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
	QR      *qrcode.Encoder
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService, qr *qrcode.Encoder) *RegistrationController {
	return &RegistrationController{Logger: logger, Service: svc, QR: qr}
}

func (c *RegistrationController) writeDraft(w http.ResponseWriter, status int, id string, d domain.RegistrationDraft) {
	helpers.WriteJSONSuccess(w, status, DraftResponse{ID: id, Draft: d})
}

// StartDraft godoc
// @Summary Start a registration
// @Description Creates an empty draft with one blank child.
// @Tags registration
// @Produce json
// @Success 201 {object} controllers.DraftSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registration/drafts [post]
func (c *RegistrationController) StartDraft(w http.ResponseWriter, r *http.Request) {
	id, draft, err := c.Service.StartDraft(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	c.writeDraft(w, http.StatusCreated, id, draft)
}

// GetDraft godoc
// @Summary Get a registration draft
// @Tags registration
// @Produce json
// @Param draftID path string true "Draft ID (UUID)"
// @Success 200 {object} controllers.DraftSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /registration/drafts/{draftID} [get]
func (c *RegistrationController) GetDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "draftID")
	if !ok {
		return
	}
	draft, err := c.Service.GetDraft(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	c.writeDraft(w, http.StatusOK, id, draft)
}

// UpdateGuardian godoc
// @Summary Set guardian fields
// @Tags registration
// @Accept json
// @Produce json
// @Param draftID path string true "Draft ID (UUID)"
// @Param body body UpdateGuardianRequest true "Guardian fields"
// @Success 200 {object} controllers.DraftSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /registration/drafts/{draftID}/guardian [patch]
func (c *RegistrationController) UpdateGuardian(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "draftID")
	if !ok {
		return
	}
	var req UpdateGuardianRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	draft, err := c.Service.UpdateGuardian(r.Context(), id, domain.GuardianPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Telephone: req.Telephone,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	c.writeDraft(w, http.StatusOK, id, draft)
}

// SelectEvent godoc
// @Summary Choose event and time slot
// @Description The time must be one of the event's slots, or a configured slot when no event is chosen.
// @Tags registration
// @Accept json
// @Produce json
// @Param draftID path string true "Draft ID (UUID)"
// @Param body body SelectEventRequest true "Event and time"
// @Success 200 {object} controllers.DraftSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /registration/drafts/{draftID}/event [put]
func (c *RegistrationController) SelectEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "draftID")
	if !ok {
		return
	}
	var req SelectEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	draft, err := c.Service.SelectEvent(r.Context(), id, req.EventID, req.PreferredTime)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	c.writeDraft(w, http.StatusOK, id, draft)
}

// AddChild godoc
// @Summary Add a blank child
// @Tags registration
// @Produce json
// @Param draftID path string true "Draft ID (UUID)"
// @Success 200 {object} controllers.DraftSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /registration/drafts/{draftID}/children [post]
func (c *RegistrationController) AddChild(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "draftID")
	if !ok {
		return
	}
	draft, err := c.Service.AddChild(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	c.writeDraft(w, http.StatusOK, id, draft)
}

func childIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil || index < 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid child index")
		return 0, false
	}
	return index, true
}

// UpdateChild godoc
// @Summary Set child fields
// @Tags registration
// @Accept json
// @Produce json
// @Param draftID path string true "Draft ID (UUID)"
// @Param index path int true "Child index (0-based)"
// @Param body body UpdateChildRequest true "Child fields"
// @Success 200 {object} controllers.DraftSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /registration/drafts/{draftID}/children/{index} [patch]
func (c *RegistrationController) UpdateChild(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "draftID")
	if !ok {
		return
	}
	index, ok := childIndex(w, r)
	if !ok {
		return
	}
	var req UpdateChildRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	draft, err := c.Service.UpdateChild(r.Context(), id, index, domain.ChildPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Age:       req.Age,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	c.writeDraft(w, http.StatusOK, id, draft)
}

// RemoveChild godoc
// @Summary Remove a child
// @Description Removing the only child leaves the draft unchanged.
// @Tags registration
// @Produce json
// @Param draftID path string true "Draft ID (UUID)"
// @Param index path int true "Child index (0-based)"
// @Success 200 {object} controllers.DraftSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /registration/drafts/{draftID}/children/{index} [delete]
func (c *RegistrationController) RemoveChild(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "draftID")
	if !ok {
		return
	}
	index, ok := childIndex(w, r)
	if !ok {
		return
	}
	draft, err := c.Service.RemoveChild(r.Context(), id, index)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	c.writeDraft(w, http.StatusOK, id, draft)
}

// Advance godoc
// @Summary Check the guardian step
// @Description 204 when the draft may move to the children step, 400 with "Please fill out all required fields." otherwise.
// @Tags registration
// @Param draftID path string true "Draft ID (UUID)"
// @Success 204
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /registration/drafts/{draftID}/advance [post]
func (c *RegistrationController) Advance(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "draftID")
	if !ok {
		return
	}
	if err := c.Service.Advance(r.Context(), id); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SubmitDraft godoc
// @Summary Submit a registration
// @Description Inserts one attendance row per child sharing a 6-digit confirmation code, then resets the draft.
// @Tags registration
// @Produce json
// @Param draftID path string true "Draft ID (UUID)"
// @Success 201 {object} controllers.ConfirmationSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registration/drafts/{draftID}/submit [post]
func (c *RegistrationController) SubmitDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "draftID")
	if !ok {
		return
	}
	conf, err := c.Service.SubmitDraft(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, conf)
}

// CancelDraft godoc
// @Summary Cancel a registration
// @Tags registration
// @Param draftID path string true "Draft ID (UUID)"
// @Success 204
// @Router /registration/drafts/{draftID} [delete]
func (c *RegistrationController) CancelDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "draftID")
	if !ok {
		return
	}
	if err := c.Service.CancelDraft(r.Context(), id); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func confirmationCode(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := strings.TrimSpace(r.PathValue("code"))
	code, err := strconv.Atoi(raw)
	if err != nil || len(raw) != 6 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "code must be 6 digits")
		return 0, false
	}
	return code, true
}

// LookupCode godoc
// @Summary Look up a confirmation code
// @Description Returns the children registered under the code by the guardian with the given telephone.
// @Tags registration
// @Produce json
// @Param code path string true "6-digit confirmation code"
// @Param telephone query string true "Guardian telephone used at registration"
// @Success 200 {object} controllers.CodeLookupSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /registrations/{code} [get]
func (c *RegistrationController) LookupCode(w http.ResponseWriter, r *http.Request) {
	code, ok := confirmationCode(w, r)
	if !ok {
		return
	}
	records, err := c.Service.LookupCode(r.Context(), code, r.URL.Query().Get("telephone"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	out := CodeLookupResponse{Code: code, Children: make([]ConfirmedChild, len(records))}
	for i, rec := range records {
		out.Children[i] = ConfirmedChild{
			FirstName:     rec.ChildFirstName,
			PreferredTime: rec.PreferredTime,
			ScheduleDay:   rec.ScheduleDay,
			HasAttended:   rec.HasAttended,
		}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, out)
}

// CodeQR godoc
// @Summary QR code for a confirmation code
// @Tags registration
// @Produce png
// @Param code path string true "6-digit confirmation code"
// @Param telephone query string true "Guardian telephone used at registration"
// @Success 200 {file} binary
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /registrations/{code}/qr.png [get]
func (c *RegistrationController) CodeQR(w http.ResponseWriter, r *http.Request) {
	code, ok := confirmationCode(w, r)
	if !ok {
		return
	}
	if _, err := c.Service.LookupCode(r.Context(), code, r.URL.Query().Get("telephone")); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	png, err := c.QR.PNG(strconv.Itoa(code))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
