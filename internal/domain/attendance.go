package domain

import (
	"context"
	"io"
	"time"
)

// AttendanceStatus filters attendance rows by check-in state.
type AttendanceStatus string

const (
	AttendanceAll      AttendanceStatus = "all"
	AttendanceAttended AttendanceStatus = "attended"
	AttendancePending  AttendanceStatus = "pending"
)

// Valid reports whether s is a known status.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceAll, AttendanceAttended, AttendancePending:
		return true
	}
	return false
}

// AttendanceRecord is one child registered for a service, stored in attendance_pending.
// swagger:model AttendanceRecord
type AttendanceRecord struct {
	ID                string    `json:"id"`
	GuardianFirstName string    `json:"guardian_first_name"`
	GuardianLastName  string    `json:"guardian_last_name"`
	GuardianTelephone string    `json:"guardian_telephone"`
	ChildFirstName    string    `json:"child_first_name"`
	ChildLastName     string    `json:"child_last_name"`
	ChildAge          int       `json:"child_age"`
	HasAttended       bool      `json:"has_attended"`
	PreferredTime     string    `json:"preferred_time"`
	ScheduleID        string    `json:"schedule_id,omitempty"`
	ScheduleDay       string    `json:"schedule_day"`
	AttendanceCode    int       `json:"attendance_code"`
	CreatedAt         time.Time `json:"created_at"`
}

// AttendanceFilter narrows an attendance listing. Zero values mean no filter.
type AttendanceFilter struct {
	From   time.Time
	To     time.Time
	Time   string
	Status AttendanceStatus
}

// SlotSummary counts registrations and check-ins for one time slot.
// swagger:model SlotSummary
type SlotSummary struct {
	PreferredTime string `json:"preferred_time"`
	Registered    int    `json:"registered"`
	Attended      int    `json:"attended"`
}

// AttendanceRepository stores attendance rows.
type AttendanceRepository interface {
	CreateBatch(ctx context.Context, records []*AttendanceRecord) error
	List(ctx context.Context, filter AttendanceFilter, params PaginationParams) ([]*AttendanceRecord, int, error)
	ListAll(ctx context.Context, filter AttendanceFilter) ([]*AttendanceRecord, error)
	ListByCode(ctx context.Context, code int, telephone string) ([]*AttendanceRecord, error)
	SetAttended(ctx context.Context, id string, attended bool) (*AttendanceRecord, error)
	Summary(ctx context.Context, day string) ([]*SlotSummary, error)
}

// AttendanceExporter writes attendance rows as a spreadsheet.
type AttendanceExporter interface {
	Write(w io.Writer, records []*AttendanceRecord) error
}

// AttendanceService covers the admin attendance table.
type AttendanceService interface {
	List(ctx context.Context, filter AttendanceFilter, params PaginationParams) ([]*AttendanceRecord, int, error)
	SetAttended(ctx context.Context, id string, attended bool) (*AttendanceRecord, error)
	Export(ctx context.Context, filter AttendanceFilter, w io.Writer) error
	Summary(ctx context.Context, day string) ([]*SlotSummary, error)
}
