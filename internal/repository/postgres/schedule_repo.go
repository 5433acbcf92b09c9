package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"churchattendance/internal/domain"
)

const scheduleColumns = `id, name, to_char(schedule, 'YYYY-MM-DD'), time, created_at`

type scheduleRepository struct {
	DB *sql.DB
}

func NewScheduleRepository(db *sql.DB) domain.ScheduleRepository {
	return &scheduleRepository{DB: db}
}

func (r *scheduleRepository) Create(ctx context.Context, e *domain.ScheduleEvent) error {
	query := `
		INSERT INTO schedule (name, schedule, time, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, e.Name, e.Date, pq.Array(e.TimeSlots), e.CreatedAt).Scan(&e.ID)
}

func (r *scheduleRepository) GetByID(ctx context.Context, id string) (*domain.ScheduleEvent, error) {
	return r.one(ctx, `SELECT `+scheduleColumns+` FROM schedule WHERE id = $1`, id)
}

// Latest returns the most recently created event.
func (r *scheduleRepository) Latest(ctx context.Context) (*domain.ScheduleEvent, error) {
	return r.one(ctx, `SELECT `+scheduleColumns+` FROM schedule ORDER BY created_at DESC, id DESC LIMIT 1`)
}

func (r *scheduleRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.ScheduleEvent, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM schedule`).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []*domain.ScheduleEvent{}, 0, nil
	}
	query := `SELECT ` + scheduleColumns + ` FROM schedule ORDER BY schedule DESC, created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := []*domain.ScheduleEvent{}
	for rows.Next() {
		e, err := scanSchedule(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *scheduleRepository) one(ctx context.Context, query string, args ...any) (*domain.ScheduleEvent, error) {
	e, err := scanSchedule(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidText(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func scanSchedule(s rowScanner) (*domain.ScheduleEvent, error) {
	e := &domain.ScheduleEvent{}
	if err := s.Scan(&e.ID, &e.Name, &e.Date, pq.Array(&e.TimeSlots), &e.CreatedAt); err != nil {
		return nil, err
	}
	return e, nil
}
