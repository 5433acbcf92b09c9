package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"churchattendance/internal/domain"
)

const accountColumns = `id, name, email, password_hash, salt, contact_number, registered, created_at`

type accountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) domain.AccountRepository {
	return &accountRepository{DB: db}
}

func (r *accountRepository) Create(ctx context.Context, a *domain.PendingAccount) error {
	query := `
		INSERT INTO account_pending (name, email, password_hash, salt, contact_number, registered, created_at)
		VALUES ($1, $2, $3, $4, $5, false, $6)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, a.Name, a.Email, a.PasswordHash, a.Salt, a.ContactNumber, a.CreatedAt).Scan(&a.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (*domain.PendingAccount, error) {
	a, err := scanAccount(r.DB.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM account_pending WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *accountRepository) ListPending(ctx context.Context, params domain.PaginationParams) ([]*domain.PendingAccount, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM account_pending WHERE registered = false`).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []*domain.PendingAccount{}, 0, nil
	}
	query := `SELECT ` + accountColumns + ` FROM account_pending WHERE registered = false
		ORDER BY created_at, id LIMIT $1 OFFSET $2`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := []*domain.PendingAccount{}
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Approve locks the request row, creates the identity and user_list row from the stored
// hash, and marks the request registered, all in one transaction.
func (r *accountRepository) Approve(ctx context.Context, id, role string, now time.Time) (_ *domain.UserAccount, err error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	acc, err := scanAccount(tx.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM account_pending WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if acc.Registered {
		return nil, domain.ErrAlreadyApproved
	}

	identity := &domain.AuthIdentity{Email: acc.Email, PasswordHash: acc.PasswordHash, Salt: acc.Salt, CreatedAt: now}
	if err = insertIdentity(ctx, tx, identity); err != nil {
		return nil, err
	}
	user := &domain.UserAccount{
		AuthID:    identity.ID,
		Name:      acc.Name,
		Email:     acc.Email,
		Contact:   acc.ContactNumber,
		Role:      role,
		CreatedAt: now,
	}
	if err = insertUser(ctx, tx, user); err != nil {
		return nil, err
	}
	if _, err = tx.ExecContext(ctx, `UPDATE account_pending SET registered = true WHERE id = $1`, id); err != nil {
		return nil, fmt.Errorf("mark registered: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return user, nil
}

func scanAccount(s rowScanner) (*domain.PendingAccount, error) {
	a := &domain.PendingAccount{}
	if err := s.Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Salt, &a.ContactNumber, &a.Registered, &a.CreatedAt); err != nil {
		return nil, err
	}
	return a, nil
}
