package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"churchattendance/internal/domain"
)

type scheduleService struct {
	scheduleRepo   domain.ScheduleRepository
	contextTimeout time.Duration
	now            func() time.Time
}

func NewScheduleService(scheduleRepo domain.ScheduleRepository, timeout time.Duration) domain.ScheduleService {
	return &scheduleService{scheduleRepo: scheduleRepo, contextTimeout: timeout, now: time.Now}
}

// Create stores a new event. Slots are trimmed and deduplicated in order.
func (s *scheduleService) Create(ctx context.Context, name, date string, slots []string) (*domain.ScheduleEvent, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required: %w", domain.ErrInvalidInput)
	}
	day, err := time.Parse(domain.DateLayout, strings.TrimSpace(date))
	if err != nil {
		return nil, fmt.Errorf("date must be YYYY-MM-DD: %w", domain.ErrInvalidInput)
	}
	var clean []string
	seen := make(map[string]struct{})
	for _, slot := range slots {
		slot = strings.TrimSpace(slot)
		if slot == "" {
			continue
		}
		if _, ok := seen[slot]; ok {
			continue
		}
		seen[slot] = struct{}{}
		clean = append(clean, slot)
	}
	if len(clean) == 0 {
		return nil, fmt.Errorf("at least one time slot is required: %w", domain.ErrInvalidInput)
	}

	event := domain.NewScheduleEvent(name, day.Format(domain.DateLayout), clean, s.now())
	if err := s.scheduleRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create schedule: %w", err)
	}
	return event, nil
}

func (s *scheduleService) GetByID(ctx context.Context, id string) (*domain.ScheduleEvent, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.scheduleRepo.GetByID(ctx, id)
}

// Latest returns the newest event, or ErrNotFound when none exists yet.
func (s *scheduleService) Latest(ctx context.Context) (*domain.ScheduleEvent, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.scheduleRepo.Latest(ctx)
}

func (s *scheduleService) List(ctx context.Context, params domain.PaginationParams) ([]*domain.ScheduleEvent, int, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	list, total, err := s.scheduleRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list schedule: %w", err)
	}
	return list, total, nil
}
