package domain

import (
	"context"
	"time"
)

// DateLayout is the wire and storage layout for calendar days.
const DateLayout = "2006-01-02"

// ScheduleEvent is a service day with its bookable time slots.
// swagger:model ScheduleEvent
type ScheduleEvent struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Date      string    `json:"date"`
	TimeSlots []string  `json:"time_slots"`
	CreatedAt time.Time `json:"created_at"`
}

// NewScheduleEvent returns a ScheduleEvent. ID is set by the repository on create.
func NewScheduleEvent(name, date string, slots []string, createdAt time.Time) *ScheduleEvent {
	return &ScheduleEvent{
		Name:      name,
		Date:      date,
		TimeSlots: slots,
		CreatedAt: createdAt,
	}
}

// HasSlot reports whether slot is one of the event's time slots.
func (e *ScheduleEvent) HasSlot(slot string) bool {
	for _, s := range e.TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// ScheduleRepository stores schedule events.
type ScheduleRepository interface {
	Create(ctx context.Context, event *ScheduleEvent) error
	GetByID(ctx context.Context, id string) (*ScheduleEvent, error)
	Latest(ctx context.Context) (*ScheduleEvent, error)
	List(ctx context.Context, params PaginationParams) ([]*ScheduleEvent, int, error)
}

// ScheduleService manages the service schedule.
type ScheduleService interface {
	Create(ctx context.Context, name, date string, slots []string) (*ScheduleEvent, error)
	GetByID(ctx context.Context, id string) (*ScheduleEvent, error)
	Latest(ctx context.Context) (*ScheduleEvent, error)
	List(ctx context.Context, params PaginationParams) ([]*ScheduleEvent, int, error)
}
