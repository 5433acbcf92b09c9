package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"churchattendance/internal/domain"
	"churchattendance/internal/metrics"
)

type attendanceService struct {
	attendanceRepo domain.AttendanceRepository
	exporter       domain.AttendanceExporter
	location       *time.Location
	contextTimeout time.Duration
	now            func() time.Time
}

func NewAttendanceService(attendanceRepo domain.AttendanceRepository, exporter domain.AttendanceExporter, location *time.Location, timeout time.Duration) domain.AttendanceService {
	if location == nil {
		location = time.UTC
	}
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		exporter:       exporter,
		location:       location,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *attendanceService) List(ctx context.Context, filter domain.AttendanceFilter, params domain.PaginationParams) ([]*domain.AttendanceRecord, int, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateFilter(filter); err != nil {
		return nil, 0, err
	}
	list, total, err := s.attendanceRepo.List(ctx, filter, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list attendance: %w", err)
	}
	return list, total, nil
}

// SetAttended writes the given value; repeating the same value issues the same update.
func (s *attendanceService) SetAttended(ctx context.Context, id string, attended bool) (*domain.AttendanceRecord, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	rec, err := s.attendanceRepo.SetAttended(ctx, id, attended)
	if err != nil {
		return nil, err
	}
	metrics.ObserveToggle(attended)
	return rec, nil
}

// Export writes every row matching filter as a workbook.
func (s *attendanceService) Export(ctx context.Context, filter domain.AttendanceFilter, w io.Writer) error {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateFilter(filter); err != nil {
		return err
	}
	records, err := s.attendanceRepo.ListAll(ctx, filter)
	if err != nil {
		return fmt.Errorf("list attendance: %w", err)
	}
	if err := s.exporter.Write(w, records); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// Summary counts registrations per slot for day, today in the configured location when day is empty.
func (s *attendanceService) Summary(ctx context.Context, day string) ([]*domain.SlotSummary, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	if day == "" {
		day = s.now().In(s.location).Format(domain.DateLayout)
	}
	if _, err := time.Parse(domain.DateLayout, day); err != nil {
		return nil, fmt.Errorf("date must be YYYY-MM-DD: %w", domain.ErrInvalidInput)
	}
	summary, err := s.attendanceRepo.Summary(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("summarize attendance: %w", err)
	}
	return summary, nil
}

func validateFilter(f domain.AttendanceFilter) error {
	if f.Status != "" && !f.Status.Valid() {
		return fmt.Errorf("status must be all, attended or pending: %w", domain.ErrInvalidInput)
	}
	if !f.From.IsZero() && !f.To.IsZero() && !f.From.Before(f.To) {
		return fmt.Errorf("empty date range: %w", domain.ErrInvalidInput)
	}
	return nil
}
