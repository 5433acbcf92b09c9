package postgres

import (
	"context"
	"database/sql"
	"errors"

	"churchattendance/internal/domain"
)

const familyColumns = `family_member_id, guardian_id, family_first_name, family_last_name, family_contact, family_type, created_at, updated_at`

type familyRepository struct {
	DB *sql.DB
}

func NewFamilyRepository(db *sql.DB) domain.FamilyRepository {
	return &familyRepository{DB: db}
}

func (r *familyRepository) Create(ctx context.Context, m *domain.FamilyMember) error {
	query := `
		INSERT INTO family_list (guardian_id, family_first_name, family_last_name, family_contact, family_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING family_member_id
	`
	return r.DB.QueryRowContext(ctx, query, m.GuardianID, m.FirstName, m.LastName, m.Contact, string(m.Type), m.CreatedAt, m.UpdatedAt).
		Scan(&m.ID)
}

func (r *familyRepository) GetByID(ctx context.Context, guardianID, id string) (*domain.FamilyMember, error) {
	query := `SELECT ` + familyColumns + ` FROM family_list WHERE family_member_id = $1 AND guardian_id = $2`
	m, err := scanFamily(r.DB.QueryRowContext(ctx, query, id, guardianID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

// Update writes all editable fields. A member owned by another guardian is reported as not found.
func (r *familyRepository) Update(ctx context.Context, m *domain.FamilyMember) error {
	query := `
		UPDATE family_list
		SET family_first_name = $1, family_last_name = $2, family_contact = $3, family_type = $4, updated_at = $5
		WHERE family_member_id = $6 AND guardian_id = $7
	`
	result, err := r.DB.ExecContext(ctx, query, m.FirstName, m.LastName, m.Contact, string(m.Type), m.UpdatedAt, m.ID, m.GuardianID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *familyRepository) Delete(ctx context.Context, guardianID, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM family_list WHERE family_member_id = $1 AND guardian_id = $2`, id, guardianID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *familyRepository) List(ctx context.Context, guardianID string, params domain.PaginationParams) ([]*domain.FamilyMember, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM family_list WHERE guardian_id = $1`, guardianID).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []*domain.FamilyMember{}, 0, nil
	}
	query := `SELECT ` + familyColumns + ` FROM family_list WHERE guardian_id = $1
		ORDER BY family_type, family_last_name, family_first_name, family_member_id LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, guardianID, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := []*domain.FamilyMember{}
	for rows.Next() {
		m, err := scanFamily(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func scanFamily(s rowScanner) (*domain.FamilyMember, error) {
	m := &domain.FamilyMember{}
	var typ string
	if err := s.Scan(&m.ID, &m.GuardianID, &m.FirstName, &m.LastName, &m.Contact, &typ, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	m.Type = domain.FamilyMemberType(typ)
	return m, nil
}
