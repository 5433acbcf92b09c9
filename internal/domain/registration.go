package domain

import (
	"context"
	"strings"
	"time"
)

// Guardian field names accepted by SetGuardianField.
const (
	FieldGuardianFirstName = "guardian_first_name"
	FieldGuardianLastName  = "guardian_last_name"
	FieldGuardianTelephone = "guardian_telephone"
)

// Child field names accepted by SetChildField.
const (
	FieldChildFirstName = "first_name"
	FieldChildLastName  = "last_name"
	FieldChildAge       = "age"
)

// ChildDraft is one child on a registration draft. Age is kept raw until submission.
// swagger:model ChildDraft
type ChildDraft struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       string `json:"age"`
}

// RegistrationDraft is the unsaved state of the registration wizard.
// Mutating methods return a new draft and leave the receiver untouched.
// swagger:model RegistrationDraft
type RegistrationDraft struct {
	GuardianFirstName string       `json:"guardian_first_name"`
	GuardianLastName  string       `json:"guardian_last_name"`
	GuardianTelephone string       `json:"guardian_telephone"`
	SelectedEventID   string       `json:"selected_event_id,omitempty"`
	PreferredTime     string       `json:"preferred_time,omitempty"`
	Children          []ChildDraft `json:"children"`
}

// NewRegistrationDraft returns an empty draft with a single blank child.
func NewRegistrationDraft() RegistrationDraft {
	return RegistrationDraft{Children: []ChildDraft{{}}}
}

func (d RegistrationDraft) clone() RegistrationDraft {
	out := d
	out.Children = make([]ChildDraft, len(d.Children))
	copy(out.Children, d.Children)
	return out
}

// SetGuardianField returns a copy of d with the named guardian field set.
func (d RegistrationDraft) SetGuardianField(name, value string) (RegistrationDraft, error) {
	out := d.clone()
	switch name {
	case FieldGuardianFirstName:
		out.GuardianFirstName = value
	case FieldGuardianLastName:
		out.GuardianLastName = value
	case FieldGuardianTelephone:
		out.GuardianTelephone = value
	default:
		return d, ErrUnknownField
	}
	return out, nil
}

// AddChild returns a copy of d with a blank child appended.
func (d RegistrationDraft) AddChild() RegistrationDraft {
	out := d.clone()
	out.Children = append(out.Children, ChildDraft{})
	return out
}

// RemoveChild returns a copy of d without the child at index.
// The last remaining child is never removed; an out of range index is ignored.
func (d RegistrationDraft) RemoveChild(index int) RegistrationDraft {
	if len(d.Children) <= 1 || index < 0 || index >= len(d.Children) {
		return d.clone()
	}
	out := d.clone()
	out.Children = append(out.Children[:index], out.Children[index+1:]...)
	return out
}

// SetChildField returns a copy of d with the named field of child index set.
func (d RegistrationDraft) SetChildField(index int, name, value string) (RegistrationDraft, error) {
	if index < 0 || index >= len(d.Children) {
		return d, ErrChildIndex
	}
	out := d.clone()
	child := &out.Children[index]
	switch name {
	case FieldChildFirstName:
		child.FirstName = value
	case FieldChildLastName:
		child.LastName = value
	case FieldChildAge:
		child.Age = value
	default:
		return d, ErrUnknownField
	}
	return out, nil
}

// SetSelectedEvent returns a copy of d bound to the given schedule event.
func (d RegistrationDraft) SetSelectedEvent(eventID string) RegistrationDraft {
	out := d.clone()
	out.SelectedEventID = eventID
	return out
}

// SetPreferredTime returns a copy of d with the preferred time slot set.
func (d RegistrationDraft) SetPreferredTime(slot string) RegistrationDraft {
	out := d.clone()
	out.PreferredTime = slot
	return out
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// CanAdvance reports whether the guardian step is complete: first name, last name
// and preferred time, plus the selected event when requireEvent is set.
func CanAdvance(d RegistrationDraft, requireEvent bool) bool {
	if blank(d.GuardianFirstName) || blank(d.GuardianLastName) || blank(d.PreferredTime) {
		return false
	}
	if requireEvent && blank(d.SelectedEventID) {
		return false
	}
	return true
}

// AdvanceError returns a ValidationError when CanAdvance is false, nil otherwise.
func AdvanceError(d RegistrationDraft, requireEvent bool) error {
	if !CanAdvance(d, requireEvent) {
		return NewValidationError(MsgRequiredFields)
	}
	return nil
}

// Confirmation is the result of a successful submission.
// swagger:model Confirmation
type Confirmation struct {
	Code    int                 `json:"code"`
	Records []*AttendanceRecord `json:"records"`
}

// CodeGenerator draws confirmation codes.
type CodeGenerator interface {
	Generate() (int, error)
}

// DraftUpdate derives the next draft from the stored one.
type DraftUpdate func(RegistrationDraft) (RegistrationDraft, error)

// DraftStore keeps registration drafts between wizard requests.
//
// Claim marks a draft as being submitted and returns a token for Release. While a
// draft is claimed, Claim, Update and Delete fail with ErrDraftBusy; Save does not.
// Update applies fn atomically and fails with ErrDraftConflict when the draft keeps
// changing underneath it.
type DraftStore interface {
	Create(ctx context.Context, draft RegistrationDraft) (id string, err error)
	Get(ctx context.Context, id string) (RegistrationDraft, error)
	Save(ctx context.Context, id string, draft RegistrationDraft) error
	Update(ctx context.Context, id string, fn DraftUpdate) (RegistrationDraft, error)
	Delete(ctx context.Context, id string) error
	Claim(ctx context.Context, id string) (token string, err error)
	Release(ctx context.Context, id, token string) error
}

// ChildPatch carries optional child field updates.
type ChildPatch struct {
	FirstName *string
	LastName  *string
	Age       *string
}

// GuardianPatch carries optional guardian field updates.
type GuardianPatch struct {
	FirstName *string
	LastName  *string
	Telephone *string
}

// RegistrationService drives the registration wizard and its submission.
type RegistrationService interface {
	StartDraft(ctx context.Context) (string, RegistrationDraft, error)
	GetDraft(ctx context.Context, draftID string) (RegistrationDraft, error)
	UpdateGuardian(ctx context.Context, draftID string, patch GuardianPatch) (RegistrationDraft, error)
	SelectEvent(ctx context.Context, draftID, eventID, preferredTime string) (RegistrationDraft, error)
	AddChild(ctx context.Context, draftID string) (RegistrationDraft, error)
	UpdateChild(ctx context.Context, draftID string, index int, patch ChildPatch) (RegistrationDraft, error)
	RemoveChild(ctx context.Context, draftID string, index int) (RegistrationDraft, error)
	Advance(ctx context.Context, draftID string) error
	CancelDraft(ctx context.Context, draftID string) error
	SubmitDraft(ctx context.Context, draftID string) (*Confirmation, error)
	Submit(ctx context.Context, draft RegistrationDraft) (*Confirmation, error)
	LookupCode(ctx context.Context, code int, telephone string) ([]*AttendanceRecord, error)
}

// DraftTTL is the default lifetime of an idle draft.
const DraftTTL = 2 * time.Hour
