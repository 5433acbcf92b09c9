package domain

import (
	"context"
	"time"
)

// FamilyMemberType is Adult or Child.
type FamilyMemberType string

const (
	FamilyAdult FamilyMemberType = "Adult"
	FamilyChild FamilyMemberType = "Child"
)

// Valid reports whether t is Adult or Child.
func (t FamilyMemberType) Valid() bool {
	return t == FamilyAdult || t == FamilyChild
}

// FamilyMember belongs to exactly one guardian (a user_list row).
// swagger:model FamilyMember
type FamilyMember struct {
	ID         string           `json:"id"`
	GuardianID string           `json:"guardian_id"`
	FirstName  string           `json:"first_name"`
	LastName   string           `json:"last_name"`
	Contact    string           `json:"contact"`
	Type       FamilyMemberType `json:"type"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// FamilyMemberPatch carries optional field updates for a family member.
type FamilyMemberPatch struct {
	FirstName *string           `json:"first_name,omitempty"`
	LastName  *string           `json:"last_name,omitempty"`
	Contact   *string           `json:"contact,omitempty"`
	Type      *FamilyMemberType `json:"type,omitempty"`
}

// Apply copies the set fields of p onto m.
func (p FamilyMemberPatch) Apply(m *FamilyMember) {
	if p.FirstName != nil {
		m.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		m.LastName = *p.LastName
	}
	if p.Contact != nil {
		m.Contact = *p.Contact
	}
	if p.Type != nil {
		m.Type = *p.Type
	}
}

// FamilyRepository stores family members. Every lookup is scoped to a guardian.
type FamilyRepository interface {
	Create(ctx context.Context, m *FamilyMember) error
	GetByID(ctx context.Context, guardianID, id string) (*FamilyMember, error)
	Update(ctx context.Context, m *FamilyMember) error
	Delete(ctx context.Context, guardianID, id string) error
	List(ctx context.Context, guardianID string, params PaginationParams) ([]*FamilyMember, int, error)
}

// FamilyService manages a guardian's family list.
type FamilyService interface {
	List(ctx context.Context, guardianID string, params PaginationParams) ([]*FamilyMember, int, error)
	Add(ctx context.Context, m *FamilyMember) (*FamilyMember, error)
	Update(ctx context.Context, guardianID, id string, patch FamilyMemberPatch) (*FamilyMember, error)
	Delete(ctx context.Context, guardianID, id string) error
}
