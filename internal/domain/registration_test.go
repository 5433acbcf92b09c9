package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistrationDraft(t *testing.T) {
	d := NewRegistrationDraft()
	require.Len(t, d.Children, 1)
	assert.Equal(t, ChildDraft{}, d.Children[0])
	assert.Empty(t, d.GuardianFirstName)
}

func TestRegistrationDraft_SetGuardianField(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		check   func(t *testing.T, d RegistrationDraft)
		wantErr error
	}{
		{
			name:  "first name",
			field: FieldGuardianFirstName,
			value: "Jane",
			check: func(t *testing.T, d RegistrationDraft) { assert.Equal(t, "Jane", d.GuardianFirstName) },
		},
		{
			name:  "last name",
			field: FieldGuardianLastName,
			value: "Doe",
			check: func(t *testing.T, d RegistrationDraft) { assert.Equal(t, "Doe", d.GuardianLastName) },
		},
		{
			name:  "telephone",
			field: FieldGuardianTelephone,
			value: "5551234",
			check: func(t *testing.T, d RegistrationDraft) { assert.Equal(t, "5551234", d.GuardianTelephone) },
		},
		{
			name:    "unknown field",
			field:   "email",
			value:   "x",
			wantErr: ErrUnknownField,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := NewRegistrationDraft()
			got, err := orig.SetGuardianField(tt.field, tt.value)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
			assert.Equal(t, NewRegistrationDraft(), orig, "receiver must not change")
		})
	}
}

func TestRegistrationDraft_ChildrenSnapshots(t *testing.T) {
	d0 := NewRegistrationDraft()
	d1 := d0.AddChild()
	require.Len(t, d0.Children, 1)
	require.Len(t, d1.Children, 2)

	d2, err := d1.SetChildField(1, FieldChildFirstName, "Sam")
	require.NoError(t, err)
	assert.Equal(t, "Sam", d2.Children[1].FirstName)
	assert.Empty(t, d1.Children[1].FirstName, "previous snapshot must not change")

	d3, err := d2.SetChildField(1, FieldChildAge, "8")
	require.NoError(t, err)
	d3, err = d3.SetChildField(1, FieldChildLastName, "Doe")
	require.NoError(t, err)
	assert.Equal(t, ChildDraft{FirstName: "Sam", LastName: "Doe", Age: "8"}, d3.Children[1])

	_, err = d3.SetChildField(5, FieldChildAge, "8")
	require.ErrorIs(t, err, ErrChildIndex)
	_, err = d3.SetChildField(0, "shoe_size", "3")
	require.ErrorIs(t, err, ErrUnknownField)

	d4 := d3.RemoveChild(0)
	require.Len(t, d4.Children, 1)
	assert.Equal(t, "Sam", d4.Children[0].FirstName)
	require.Len(t, d3.Children, 2, "previous snapshot must not change")
	assert.Empty(t, d3.Children[0].FirstName)
}

func TestRegistrationDraft_RemoveLastChildIsNoop(t *testing.T) {
	d := NewRegistrationDraft()
	d, _ = d.SetChildField(0, FieldChildFirstName, "Sam")

	got := d.RemoveChild(0)
	require.Len(t, got.Children, 1)
	assert.Equal(t, "Sam", got.Children[0].FirstName)

	got = d.AddChild().RemoveChild(7)
	assert.Len(t, got.Children, 2)
	got = got.RemoveChild(-1)
	assert.Len(t, got.Children, 2)
}

func TestRegistrationDraft_EventAndTime(t *testing.T) {
	d := NewRegistrationDraft().SetSelectedEvent("ev-1").SetPreferredTime("9:00am")
	assert.Equal(t, "ev-1", d.SelectedEventID)
	assert.Equal(t, "9:00am", d.PreferredTime)
}

func TestCanAdvance(t *testing.T) {
	full := RegistrationDraft{
		GuardianFirstName: "Jane",
		GuardianLastName:  "Doe",
		PreferredTime:     "9:00am",
		Children:          []ChildDraft{{}},
	}
	tests := []struct {
		name         string
		mutate       func(d *RegistrationDraft)
		requireEvent bool
		want         bool
	}{
		{name: "complete", want: true},
		{name: "missing first name", mutate: func(d *RegistrationDraft) { d.GuardianFirstName = "" }},
		{name: "whitespace last name", mutate: func(d *RegistrationDraft) { d.GuardianLastName = "  " }},
		{name: "missing preferred time", mutate: func(d *RegistrationDraft) { d.PreferredTime = "" }},
		{name: "telephone not required", mutate: func(d *RegistrationDraft) { d.GuardianTelephone = "" }, want: true},
		{name: "event required but missing", requireEvent: true},
		{name: "event required and set", requireEvent: true, mutate: func(d *RegistrationDraft) { d.SelectedEventID = "ev-1" }, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := full
			if tt.mutate != nil {
				tt.mutate(&d)
			}
			assert.Equal(t, tt.want, CanAdvance(d, tt.requireEvent))
			err := AdvanceError(d, tt.requireEvent)
			if tt.want {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, MsgRequiredFields, verr.Message)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestPaginationParams(t *testing.T) {
	p := NewPaginationParams(0, FamilyPageSize)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 0, p.Offset())

	p = NewPaginationParams(3, DefaultPageSize)
	assert.Equal(t, 20, p.Offset())

	tests := []struct {
		total, size, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{15, 7, 3},
		{14, 7, 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PaginationParams{Page: 1, PageSize: tt.size}.TotalPages(tt.total))
	}
}
