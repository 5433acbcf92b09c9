package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"churchattendance/internal/domain"
)

type familyService struct {
	familyRepo     domain.FamilyRepository
	contextTimeout time.Duration
	now            func() time.Time
}

func NewFamilyService(familyRepo domain.FamilyRepository, timeout time.Duration) domain.FamilyService {
	return &familyService{familyRepo: familyRepo, contextTimeout: timeout, now: time.Now}
}

func (s *familyService) List(ctx context.Context, guardianID string, params domain.PaginationParams) ([]*domain.FamilyMember, int, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	list, total, err := s.familyRepo.List(ctx, guardianID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list family: %w", err)
	}
	return list, total, nil
}

func (s *familyService) Add(ctx context.Context, m *domain.FamilyMember) (*domain.FamilyMember, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	if m.GuardianID == "" {
		return nil, domain.ErrForbidden
	}
	normalizeMember(m)
	if err := validateMember(m); err != nil {
		return nil, err
	}
	now := s.now()
	m.CreatedAt = now
	m.UpdatedAt = now
	if err := s.familyRepo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("create family member: %w", err)
	}
	return m, nil
}

// Update applies patch to a member owned by guardianID.
func (s *familyService) Update(ctx context.Context, guardianID, id string, patch domain.FamilyMemberPatch) (*domain.FamilyMember, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	m, err := s.familyRepo.GetByID(ctx, guardianID, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(m)
	normalizeMember(m)
	if err := validateMember(m); err != nil {
		return nil, err
	}
	m.UpdatedAt = s.now()
	if err := s.familyRepo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *familyService) Delete(ctx context.Context, guardianID, id string) error {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.familyRepo.Delete(ctx, guardianID, id)
}

func normalizeMember(m *domain.FamilyMember) {
	m.FirstName = strings.TrimSpace(m.FirstName)
	m.LastName = strings.TrimSpace(m.LastName)
	m.Contact = strings.TrimSpace(m.Contact)
}

func validateMember(m *domain.FamilyMember) error {
	if m.FirstName == "" || m.LastName == "" || m.Contact == "" {
		return domain.NewValidationError(domain.MsgCompleteAllFields)
	}
	if !m.Type.Valid() {
		return fmt.Errorf("type must be Adult or Child: %w", domain.ErrInvalidInput)
	}
	return nil
}
