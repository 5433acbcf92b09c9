package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"churchattendance/internal/delivery/http/helpers"
	"churchattendance/internal/domain"
)

// CreateScheduleRequest is the request body for POST /admin/schedule.
type CreateScheduleRequest struct {
	Name      string   `json:"name"`
	Date      string   `json:"date"`
	TimeSlots []string `json:"time_slots"`
}

// Validate implements Validator. Date format and slot cleanup are checked by the service.
func (c CreateScheduleRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(c.Date) == "" {
		errs = append(errs, "date is required")
	}
	if len(c.TimeSlots) == 0 {
		errs = append(errs, "time_slots must have at least one entry")
	}
	return errs
}

// ScheduleSuccessResponse is the success response envelope for a single schedule event.
// data is null from GET /schedule/latest when nothing is scheduled.
type ScheduleSuccessResponse struct {
	Data  *domain.ScheduleEvent `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// SchedulePageSuccessResponse is the success response envelope for GET /schedule.
type SchedulePageSuccessResponse struct {
	Data  helpers.Page[*domain.ScheduleEvent] `json:"data"`
	Error *helpers.APIError                   `json:"error"`
}

type ScheduleController struct {
	Logger  *slog.Logger
	Service domain.ScheduleService
}

func NewScheduleController(logger *slog.Logger, svc domain.ScheduleService) *ScheduleController {
	return &ScheduleController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Create a service day
// @Description Slots are trimmed and de-duplicated; at least one must remain.
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateScheduleRequest true "Name, date (YYYY-MM-DD) and time slots"
// @Success 201 {object} controllers.ScheduleSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /admin/schedule [post]
func (c *ScheduleController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateScheduleRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.Create(r.Context(), req.Name, req.Date, req.TimeSlots)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// List godoc
// @Summary List service days
// @Tags schedule
// @Produce json
// @Param page query int false "Page (1-based)"
// @Success 200 {object} controllers.SchedulePageSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /schedule [get]
func (c *ScheduleController) List(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePage(r, domain.DefaultPageSize)
	events, total, err := c.Service.List(r.Context(), params)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, helpers.NewPage(events, params, total))
}

// Latest godoc
// @Summary Most recently created service day
// @Description Feeds the registration form's event picker. data is null when nothing is scheduled.
// @Tags schedule
// @Produce json
// @Success 200 {object} controllers.ScheduleSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /schedule/latest [get]
func (c *ScheduleController) Latest(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.Latest(r.Context())
	if errors.Is(err, domain.ErrNotFound) {
		helpers.WriteJSONSuccess(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// GetByID godoc
// @Summary Get a service day
// @Tags schedule
// @Produce json
// @Param eventID path string true "Schedule event ID (UUID)"
// @Success 200 {object} controllers.ScheduleSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /schedule/{eventID} [get]
func (c *ScheduleController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	event, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}
