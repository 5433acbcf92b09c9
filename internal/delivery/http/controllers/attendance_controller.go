package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"churchattendance/internal/delivery/http/helpers"
	"churchattendance/internal/domain"
)

// AttendancePageSuccessResponse is the success response envelope for GET /admin/attendance.
type AttendancePageSuccessResponse struct {
	Data  helpers.Page[*domain.AttendanceRecord] `json:"data"`
	Error *helpers.APIError                      `json:"error"`
}

// CommandSuccessResponse is the success response envelope for row actions.
type CommandSuccessResponse struct {
	Data  *domain.CommandResult `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// SummarySuccessResponse is the success response envelope for GET /admin/dashboard/summary.
type SummarySuccessResponse struct {
	Data  []*domain.SlotSummary `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// SetAttendedRequest is the request body for PATCH /admin/attendance/{recordID}.
type SetAttendedRequest struct {
	HasAttended *bool `json:"has_attended"`
}

// Validate implements Validator.
func (s SetAttendedRequest) Validate() []string {
	if s.HasAttended == nil {
		return []string{"has_attended is required"}
	}
	return nil
}

// WalkInRequest is the request body for POST /admin/attendance/walk-in.
// Field rules are applied by the submission pipeline so messages match the wizard.
type WalkInRequest struct {
	GuardianFirstName string              `json:"guardian_first_name"`
	GuardianLastName  string              `json:"guardian_last_name"`
	GuardianTelephone string              `json:"guardian_telephone"`
	SelectedEventID   string              `json:"selected_event_id"`
	PreferredTime     string              `json:"preferred_time"`
	Children          []domain.ChildDraft `json:"children"`
}

// Validate implements Validator.
func (w WalkInRequest) Validate() []string {
	if len(w.Children) == 0 {
		return []string{"children must have at least one entry"}
	}
	return nil
}

func (w WalkInRequest) draft() domain.RegistrationDraft {
	return domain.RegistrationDraft{
		GuardianFirstName: w.GuardianFirstName,
		GuardianLastName:  w.GuardianLastName,
		GuardianTelephone: w.GuardianTelephone,
		SelectedEventID:   w.SelectedEventID,
		PreferredTime:     w.PreferredTime,
		Children:          w.Children,
	}
}

// AttendanceController serves the admin attendance table and dashboard.
type AttendanceController struct {
	Logger       *slog.Logger
	Service      domain.AttendanceService
	Registration domain.RegistrationService
	Actions      domain.RowActionDispatcher
	Location     *time.Location
}

func NewAttendanceController(
	logger *slog.Logger,
	svc domain.AttendanceService,
	registration domain.RegistrationService,
	actions domain.RowActionDispatcher,
	location *time.Location,
) *AttendanceController {
	if location == nil {
		location = time.Local
	}
	return &AttendanceController{
		Logger:       logger,
		Service:      svc,
		Registration: registration,
		Actions:      actions,
		Location:     location,
	}
}

// parseFilter reads date, time and status. A date selects that whole day in the service location.
func (c *AttendanceController) parseFilter(r *http.Request) (domain.AttendanceFilter, error) {
	q := r.URL.Query()
	filter := domain.AttendanceFilter{
		Time:   q.Get("time"),
		Status: domain.AttendanceStatus(q.Get("status")),
	}
	if filter.Status == "" {
		filter.Status = domain.AttendanceAll
	}
	if day := q.Get("date"); day != "" {
		from, err := time.ParseInLocation(domain.DateLayout, day, c.Location)
		if err != nil {
			return filter, fmt.Errorf("date must be YYYY-MM-DD: %w", domain.ErrInvalidInput)
		}
		filter.From = from
		filter.To = from.AddDate(0, 0, 1)
	}
	return filter, nil
}

// List godoc
// @Summary List attendance rows
// @Description Newest first, 10 per page. date selects one day, time an exact slot, status all|attended|pending.
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (1-based)"
// @Param date query string false "Day (YYYY-MM-DD)"
// @Param time query string false "Time slot"
// @Param status query string false "all, attended or pending"
// @Success 200 {object} controllers.AttendancePageSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /admin/attendance [get]
func (c *AttendanceController) List(w http.ResponseWriter, r *http.Request) {
	filter, err := c.parseFilter(r)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	params := helpers.ParsePage(r, domain.DefaultPageSize)
	records, total, err := c.Service.List(r.Context(), filter, params)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, helpers.NewPage(records, params, total))
}

// SetAttended godoc
// @Summary Check a child in or out
// @Description Returns the updated row so the table can patch it in place.
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param recordID path string true "Attendance row ID (UUID)"
// @Param body body SetAttendedRequest true "New state"
// @Success 200 {object} controllers.CommandSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/attendance/{recordID} [patch]
func (c *AttendanceController) SetAttended(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "recordID")
	if !ok {
		return
	}
	var req SetAttendedRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	res, err := c.Actions.Dispatch(r.Context(), domain.RowCommand{
		Kind:     domain.CmdToggleAttendance,
		RecordID: id,
		Attended: *req.HasAttended,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, res)
}

// Export godoc
// @Summary Export attendance as a spreadsheet
// @Description Applies the same filters as the list, without pagination.
// @Tags attendance
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param date query string false "Day (YYYY-MM-DD)"
// @Param time query string false "Time slot"
// @Param status query string false "all, attended or pending"
// @Success 200 {file} binary
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /admin/attendance/export.xlsx [get]
func (c *AttendanceController) Export(w http.ResponseWriter, r *http.Request) {
	filter, err := c.parseFilter(r)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="attendance.xlsx"`)
	if err := c.Service.Export(r.Context(), filter, w); err != nil {
		w.Header().Del("Content-Disposition")
		helpers.WriteServiceError(w, r, c.Logger, err)
	}
}

// Summary godoc
// @Summary Per-slot registration counts
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param date query string false "Day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} controllers.SummarySuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /admin/dashboard/summary [get]
func (c *AttendanceController) Summary(w http.ResponseWriter, r *http.Request) {
	slots, err := c.Service.Summary(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if slots == nil {
		slots = []*domain.SlotSummary{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, slots)
}

// WalkIn godoc
// @Summary Register a walk-in family
// @Description Runs the full submission pipeline on a complete form without a stored draft.
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body WalkInRequest true "Guardian, event and children"
// @Success 201 {object} controllers.ConfirmationSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/attendance/walk-in [post]
func (c *AttendanceController) WalkIn(w http.ResponseWriter, r *http.Request) {
	var req WalkInRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	conf, err := c.Registration.Submit(r.Context(), req.draft())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, conf)
}
