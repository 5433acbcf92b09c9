package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"churchattendance/internal/domain"
	"churchattendance/internal/metrics"
)

// RegistrationOptions configures the registration wizard.
type RegistrationOptions struct {
	RequireEvent bool
	TimeSlots    []string
	Location     *time.Location
	Timeout      time.Duration
}

type registrationService struct {
	drafts         domain.DraftStore
	attendanceRepo domain.AttendanceRepository
	scheduleRepo   domain.ScheduleRepository
	codes          domain.CodeGenerator
	requireEvent   bool
	timeSlots      []string
	location       *time.Location
	contextTimeout time.Duration
	now            func() time.Time
	logger         *slog.Logger
}

func NewRegistrationService(
	drafts domain.DraftStore,
	attendanceRepo domain.AttendanceRepository,
	scheduleRepo domain.ScheduleRepository,
	codes domain.CodeGenerator,
	opts RegistrationOptions,
	logger *slog.Logger,
) domain.RegistrationService {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	if codes == nil {
		codes = NewCodeGenerator()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &registrationService{
		drafts:         drafts,
		attendanceRepo: attendanceRepo,
		scheduleRepo:   scheduleRepo,
		codes:          codes,
		requireEvent:   opts.RequireEvent,
		timeSlots:      opts.TimeSlots,
		location:       loc,
		contextTimeout: opts.Timeout,
		now:            time.Now,
		logger:         logger,
	}
}

func (s *registrationService) StartDraft(ctx context.Context) (string, domain.RegistrationDraft, error) {
	draft := domain.NewRegistrationDraft()
	id, err := s.drafts.Create(ctx, draft)
	if err != nil {
		return "", domain.RegistrationDraft{}, fmt.Errorf("create draft: %w", err)
	}
	return id, draft, nil
}

func (s *registrationService) GetDraft(ctx context.Context, draftID string) (domain.RegistrationDraft, error) {
	return s.drafts.Get(ctx, draftID)
}

// mutate applies fn to the stored draft atomically.
func (s *registrationService) mutate(ctx context.Context, draftID string, fn domain.DraftUpdate) (domain.RegistrationDraft, error) {
	return s.drafts.Update(ctx, draftID, fn)
}

func (s *registrationService) UpdateGuardian(ctx context.Context, draftID string, patch domain.GuardianPatch) (domain.RegistrationDraft, error) {
	return s.mutate(ctx, draftID, func(d domain.RegistrationDraft) (domain.RegistrationDraft, error) {
		var err error
		if patch.FirstName != nil {
			if d, err = d.SetGuardianField(domain.FieldGuardianFirstName, *patch.FirstName); err != nil {
				return d, err
			}
		}
		if patch.LastName != nil {
			if d, err = d.SetGuardianField(domain.FieldGuardianLastName, *patch.LastName); err != nil {
				return d, err
			}
		}
		if patch.Telephone != nil {
			if d, err = d.SetGuardianField(domain.FieldGuardianTelephone, *patch.Telephone); err != nil {
				return d, err
			}
		}
		return d, nil
	})
}

// SelectEvent binds the draft to an event and time slot. Either may be empty to clear it.
func (s *registrationService) SelectEvent(ctx context.Context, draftID, eventID, preferredTime string) (domain.RegistrationDraft, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	eventID = strings.TrimSpace(eventID)
	preferredTime = strings.TrimSpace(preferredTime)
	slots := s.timeSlots
	if eventID != "" {
		event, err := s.loadEvent(ctx, eventID)
		if err != nil {
			return domain.RegistrationDraft{}, err
		}
		slots = event.TimeSlots
	}
	if preferredTime != "" && !slices.Contains(slots, preferredTime) {
		return domain.RegistrationDraft{}, s.reject(domain.MsgUnavailableTime)
	}
	return s.mutate(ctx, draftID, func(d domain.RegistrationDraft) (domain.RegistrationDraft, error) {
		return d.SetSelectedEvent(eventID).SetPreferredTime(preferredTime), nil
	})
}

func (s *registrationService) AddChild(ctx context.Context, draftID string) (domain.RegistrationDraft, error) {
	return s.mutate(ctx, draftID, func(d domain.RegistrationDraft) (domain.RegistrationDraft, error) {
		return d.AddChild(), nil
	})
}

func (s *registrationService) UpdateChild(ctx context.Context, draftID string, index int, patch domain.ChildPatch) (domain.RegistrationDraft, error) {
	return s.mutate(ctx, draftID, func(d domain.RegistrationDraft) (domain.RegistrationDraft, error) {
		fields := []struct {
			name  string
			value *string
		}{
			{domain.FieldChildFirstName, patch.FirstName},
			{domain.FieldChildLastName, patch.LastName},
			{domain.FieldChildAge, patch.Age},
		}
		if index < 0 || index >= len(d.Children) {
			return d, domain.ErrChildIndex
		}
		var err error
		for _, f := range fields {
			if f.value == nil {
				continue
			}
			if d, err = d.SetChildField(index, f.name, *f.value); err != nil {
				return d, err
			}
		}
		return d, nil
	})
}

func (s *registrationService) RemoveChild(ctx context.Context, draftID string, index int) (domain.RegistrationDraft, error) {
	return s.mutate(ctx, draftID, func(d domain.RegistrationDraft) (domain.RegistrationDraft, error) {
		return d.RemoveChild(index), nil
	})
}

// Advance checks the guardian step of a stored draft.
func (s *registrationService) Advance(ctx context.Context, draftID string) error {
	draft, err := s.drafts.Get(ctx, draftID)
	if err != nil {
		return err
	}
	if err := domain.AdvanceError(draft, s.requireEvent); err != nil {
		metrics.ValidationFailures.WithLabelValues(domain.MsgRequiredFields).Inc()
		return err
	}
	return nil
}

func (s *registrationService) CancelDraft(ctx context.Context, draftID string) error {
	return s.drafts.Delete(ctx, draftID)
}

// SubmitDraft submits a stored draft. The draft is claimed for the duration, so a second
// submit of the same draft fails with ErrDraftBusy instead of inserting the rows twice.
// On success the stored draft is reset to an empty one; on failure it is left as it was
// so the guardian can retry.
func (s *registrationService) SubmitDraft(ctx context.Context, draftID string) (*domain.Confirmation, error) {
	token, err := s.drafts.Claim(ctx, draftID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := s.drafts.Release(context.WithoutCancel(ctx), draftID, token); err != nil {
			s.logger.WarnContext(ctx, "release draft claim", "draft_id", draftID, "err", err)
		}
	}()

	draft, err := s.drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if err := domain.AdvanceError(draft, s.requireEvent); err != nil {
		metrics.ValidationFailures.WithLabelValues(domain.MsgRequiredFields).Inc()
		return nil, err
	}
	conf, err := s.Submit(ctx, draft)
	if err != nil {
		return nil, err
	}
	if err := s.drafts.Save(ctx, draftID, domain.NewRegistrationDraft()); err != nil {
		s.logger.WarnContext(ctx, "reset draft after submit", "draft_id", draftID, "err", err)
	}
	return conf, nil
}

// Submit validates draft and inserts one attendance row per child, all sharing a new
// confirmation code. Nothing is written unless every row can be.
func (s *registrationService) Submit(ctx context.Context, draft domain.RegistrationDraft) (*domain.Confirmation, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !complete(draft, s.requireEvent) {
		return nil, s.reject(domain.MsgCompleteAllFields)
	}
	ages := make([]int, len(draft.Children))
	for i, c := range draft.Children {
		age, err := strconv.Atoi(strings.TrimSpace(c.Age))
		if err != nil || age < 0 {
			return nil, s.reject(domain.MsgAgeNotNumber)
		}
		ages[i] = age
	}

	eventID := strings.TrimSpace(draft.SelectedEventID)
	preferredTime := strings.TrimSpace(draft.PreferredTime)
	scheduleDay := s.now().In(s.location).Format(domain.DateLayout)
	slots := s.timeSlots
	if eventID != "" {
		event, err := s.loadEvent(ctx, eventID)
		if err != nil {
			return nil, err
		}
		scheduleDay = event.Date
		slots = event.TimeSlots
	}
	if !slices.Contains(slots, preferredTime) {
		return nil, s.reject(domain.MsgUnavailableTime)
	}

	code, err := s.codes.Generate()
	if err != nil {
		return nil, domain.NewGatewayError("generate confirmation code", domain.MsgSubmitFailed, err)
	}

	now := s.now()
	records := make([]*domain.AttendanceRecord, len(draft.Children))
	for i, c := range draft.Children {
		records[i] = &domain.AttendanceRecord{
			GuardianFirstName: strings.TrimSpace(draft.GuardianFirstName),
			GuardianLastName:  strings.TrimSpace(draft.GuardianLastName),
			GuardianTelephone: strings.TrimSpace(draft.GuardianTelephone),
			ChildFirstName:    strings.TrimSpace(c.FirstName),
			ChildLastName:     strings.TrimSpace(c.LastName),
			ChildAge:          ages[i],
			HasAttended:       false,
			PreferredTime:     preferredTime,
			ScheduleID:        eventID,
			ScheduleDay:       scheduleDay,
			AttendanceCode:    code,
			CreatedAt:         now,
		}
	}
	if err := s.attendanceRepo.CreateBatch(ctx, records); err != nil {
		return nil, domain.NewGatewayError("insert attendance_pending", domain.MsgSubmitFailed, err)
	}

	metrics.ObserveSubmission(len(records))
	return &domain.Confirmation{Code: code, Records: records}, nil
}

// LookupCode returns the rows registered under a confirmation code by the guardian
// with the given telephone. Rows of other guardians sharing the code are never returned.
func (s *registrationService) LookupCode(ctx context.Context, code int, telephone string) ([]*domain.AttendanceRecord, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	if code < MinConfirmationCode || code > MaxConfirmationCode {
		return nil, fmt.Errorf("confirmation code must be 6 digits: %w", domain.ErrInvalidInput)
	}
	telephone = strings.TrimSpace(telephone)
	if telephone == "" {
		return nil, fmt.Errorf("telephone is required: %w", domain.ErrInvalidInput)
	}
	records, err := s.attendanceRepo.ListByCode(ctx, code, telephone)
	if err != nil {
		return nil, fmt.Errorf("list by code: %w", err)
	}
	if len(records) == 0 {
		return nil, domain.ErrNotFound
	}
	return records, nil
}

func (s *registrationService) loadEvent(ctx context.Context, eventID string) (*domain.ScheduleEvent, error) {
	if _, err := uuid.Parse(eventID); err != nil {
		return nil, s.reject(domain.MsgEventUnavailable)
	}
	event, err := s.scheduleRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, s.reject(domain.MsgEventUnavailable)
		}
		return nil, domain.NewGatewayError("query schedule", domain.MsgSubmitFailed, err)
	}
	return event, nil
}

func (s *registrationService) reject(message string) error {
	metrics.ValidationFailures.WithLabelValues(message).Inc()
	return domain.NewValidationError(message)
}

// complete reports whether every field needed for submission is filled in.
func complete(d domain.RegistrationDraft, requireEvent bool) bool {
	required := []string{d.GuardianFirstName, d.GuardianLastName, d.GuardianTelephone, d.PreferredTime}
	if requireEvent {
		required = append(required, d.SelectedEventID)
	}
	if len(d.Children) == 0 {
		return false
	}
	for _, c := range d.Children {
		required = append(required, c.FirstName, c.LastName, c.Age)
	}
	for _, v := range required {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}
