package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"churchattendance/internal/domain"
)

const attendanceColumns = `id, guardian_first_name, guardian_last_name, guardian_telephone,
		children_first_name, children_last_name, children_age, has_attended, preferred_time,
		schedule_id, to_char(schedule_day, 'YYYY-MM-DD'), attendance_code, created_at`

type attendanceRepository struct {
	DB *sql.DB
}

func NewAttendanceRepository(db *sql.DB) domain.AttendanceRepository {
	return &attendanceRepository{DB: db}
}

// CreateBatch inserts every record in one transaction; either all rows are stored or none.
func (r *attendanceRepository) CreateBatch(ctx context.Context, records []*domain.AttendanceRecord) (err error) {
	if len(records) == 0 {
		return nil
	}
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO attendance_pending (guardian_first_name, guardian_last_name, guardian_telephone,
			children_first_name, children_last_name, children_age, has_attended, preferred_time,
			schedule_id, schedule_day, attendance_code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		err = stmt.QueryRowContext(ctx,
			rec.GuardianFirstName, rec.GuardianLastName, rec.GuardianTelephone,
			rec.ChildFirstName, rec.ChildLastName, rec.ChildAge, rec.HasAttended, rec.PreferredTime,
			nullString(rec.ScheduleID), rec.ScheduleDay, rec.AttendanceCode, rec.CreatedAt,
		).Scan(&rec.ID)
		if err != nil {
			return fmt.Errorf("insert attendance row: %w", err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *attendanceRepository) List(ctx context.Context, filter domain.AttendanceFilter, params domain.PaginationParams) ([]*domain.AttendanceRecord, int, error) {
	where, args := attendanceWhere(filter)

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM attendance_pending`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []*domain.AttendanceRecord{}, 0, nil
	}

	n := len(args)
	query := `SELECT ` + attendanceColumns + ` FROM attendance_pending` + where +
		fmt.Sprintf(` ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d`, n+1, n+2)
	args = append(args, params.PageSize, params.Offset())
	list, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *attendanceRepository) ListAll(ctx context.Context, filter domain.AttendanceFilter) ([]*domain.AttendanceRecord, error) {
	where, args := attendanceWhere(filter)
	return r.query(ctx, `SELECT `+attendanceColumns+` FROM attendance_pending`+where+` ORDER BY created_at DESC, id`, args...)
}

func (r *attendanceRepository) ListByCode(ctx context.Context, code int, telephone string) ([]*domain.AttendanceRecord, error) {
	return r.query(ctx, `SELECT `+attendanceColumns+` FROM attendance_pending
		WHERE attendance_code = $1 AND guardian_telephone = $2 ORDER BY created_at, id`, code, telephone)
}

// SetAttended writes the given value unconditionally, so repeating it is harmless.
func (r *attendanceRepository) SetAttended(ctx context.Context, id string, attended bool) (*domain.AttendanceRecord, error) {
	query := `UPDATE attendance_pending SET has_attended = $2 WHERE id = $1 RETURNING ` + attendanceColumns
	rec, err := scanAttendance(r.DB.QueryRowContext(ctx, query, id, attended))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (r *attendanceRepository) Summary(ctx context.Context, day string) ([]*domain.SlotSummary, error) {
	query := `
		SELECT preferred_time, COUNT(*), COUNT(*) FILTER (WHERE has_attended)
		FROM attendance_pending
		WHERE schedule_day = $1
		GROUP BY preferred_time
		ORDER BY preferred_time
	`
	rows, err := r.DB.QueryContext(ctx, query, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.SlotSummary{}
	for rows.Next() {
		s := &domain.SlotSummary{}
		if err := rows.Scan(&s.PreferredTime, &s.Registered, &s.Attended); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *attendanceRepository) query(ctx context.Context, query string, args ...any) ([]*domain.AttendanceRecord, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []*domain.AttendanceRecord{}
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAttendance(s rowScanner) (*domain.AttendanceRecord, error) {
	rec := &domain.AttendanceRecord{}
	var scheduleID sql.NullString
	err := s.Scan(&rec.ID, &rec.GuardianFirstName, &rec.GuardianLastName, &rec.GuardianTelephone,
		&rec.ChildFirstName, &rec.ChildLastName, &rec.ChildAge, &rec.HasAttended, &rec.PreferredTime,
		&scheduleID, &rec.ScheduleDay, &rec.AttendanceCode, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	rec.ScheduleID = scheduleID.String
	return rec, nil
}

// attendanceWhere builds the WHERE clause for f, numbering placeholders from $1.
func attendanceWhere(f domain.AttendanceFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if !f.From.IsZero() {
		add("created_at >= $%d", f.From)
	}
	if !f.To.IsZero() {
		add("created_at < $%d", f.To)
	}
	if f.Time != "" {
		add("preferred_time = $%d", f.Time)
	}
	switch f.Status {
	case domain.AttendanceAttended:
		conds = append(conds, "has_attended = true")
	case domain.AttendancePending:
		conds = append(conds, "has_attended = false")
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
