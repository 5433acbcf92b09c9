package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"churchattendance/internal/domain"
)

const userColumns = `u.user_id, u.auth_id, u.name, i.email, u.contact, u.role, u.created_at`

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) GetIdentityByEmail(ctx context.Context, email string) (*domain.AuthIdentity, error) {
	query := `
		SELECT id, email, password_hash, salt, created_at
		FROM auth_identities
		WHERE email = $1
	`
	i := &domain.AuthIdentity{}
	err := r.DB.QueryRowContext(ctx, query, email).Scan(&i.ID, &i.Email, &i.PasswordHash, &i.Salt, &i.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return i, nil
}

func (r *userRepository) GetByAuthID(ctx context.Context, authID string) (*domain.UserAccount, error) {
	query := `SELECT ` + userColumns + `
		FROM user_list u
		JOIN auth_identities i ON i.id = u.auth_id
		WHERE u.auth_id = $1`
	u, err := scanUser(r.DB.QueryRowContext(ctx, query, authID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// CreateWithIdentity inserts the identity and its user_list row in one transaction.
func (r *userRepository) CreateWithIdentity(ctx context.Context, identity *domain.AuthIdentity, user *domain.UserAccount) (err error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = insertIdentity(ctx, tx, identity); err != nil {
		return err
	}
	user.AuthID = identity.ID
	user.Email = identity.Email
	if err = insertUser(ctx, tx, user); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *userRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.UserAccount, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM user_list`).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []*domain.UserAccount{}, 0, nil
	}
	query := `SELECT ` + userColumns + `
		FROM user_list u
		JOIN auth_identities i ON i.id = u.auth_id
		ORDER BY u.created_at DESC, u.user_id
		LIMIT $1 OFFSET $2`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := []*domain.UserAccount{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func insertIdentity(ctx context.Context, tx *sql.Tx, i *domain.AuthIdentity) error {
	query := `
		INSERT INTO auth_identities (email, password_hash, salt, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	if err := tx.QueryRowContext(ctx, query, i.Email, i.PasswordHash, i.Salt, i.CreatedAt).Scan(&i.ID); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("insert identity: %w", err)
	}
	return nil
}

func insertUser(ctx context.Context, tx *sql.Tx, u *domain.UserAccount) error {
	query := `
		INSERT INTO user_list (auth_id, name, contact, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING user_id
	`
	if err := tx.QueryRowContext(ctx, query, u.AuthID, u.Name, u.Contact, u.Role, u.CreatedAt).Scan(&u.UserID); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func scanUser(s rowScanner) (*domain.UserAccount, error) {
	u := &domain.UserAccount{}
	if err := s.Scan(&u.UserID, &u.AuthID, &u.Name, &u.Email, &u.Contact, &u.Role, &u.CreatedAt); err != nil {
		return nil, err
	}
	return u, nil
}
