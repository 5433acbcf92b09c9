package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"churchattendance/internal/domain"
)

var accountCols = []string{"id", "name", "email", "password_hash", "salt", "contact_number", "registered", "created_at"}

func TestAccountRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO account_pending`).
			WithArgs("Jane Doe", "jane@example.com", "hash", "salt", "5551234", now).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("acc-1"))

		a := &domain.PendingAccount{Name: "Jane Doe", Email: "jane@example.com", PasswordHash: "hash", Salt: "salt", ContactNumber: "5551234", CreatedAt: now}
		require.NoError(t, NewAccountRepository(db).Create(ctx, a))
		assert.Equal(t, "acc-1", a.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO account_pending`).WillReturnError(&pq.Error{Code: "23505"})

		err = NewAccountRepository(db).Create(ctx, &domain.PendingAccount{Email: "jane@example.com", CreatedAt: now})
		require.ErrorIs(t, err, domain.ErrDuplicateEmail)
	})
}

func TestAccountRepository_ListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM account_pending WHERE registered = false`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`WHERE registered = false\s+ORDER BY created_at, id LIMIT \$1 OFFSET \$2`).
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows(accountCols).AddRow("acc-1", "Jane Doe", "jane@example.com", "hash", "salt", "5551234", false, created))

	list, total, err := NewAccountRepository(db).ListPending(context.Background(), domain.NewPaginationParams(1, domain.DefaultPageSize))
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, list, 1)
	assert.False(t, list[0].Registered)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Approve(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	now := created.Add(48 * time.Hour)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "approves pending request",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`FROM account_pending WHERE id = \$1 FOR UPDATE`).
					WithArgs("acc-1").
					WillReturnRows(sqlmock.NewRows(accountCols).AddRow("acc-1", "Jane Doe", "jane@example.com", "hash", "salt", "5551234", false, created))
				mock.ExpectQuery(`INSERT INTO auth_identities`).
					WithArgs("jane@example.com", "hash", "salt", now).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("auth-1"))
				mock.ExpectQuery(`INSERT INTO user_list`).
					WithArgs("auth-1", "Jane Doe", "5551234", domain.RoleUser, now).
					WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("user-1"))
				mock.ExpectExec(`UPDATE account_pending SET registered = true WHERE id = \$1`).
					WithArgs("acc-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "unknown request",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`FOR UPDATE`).WillReturnError(sql.ErrNoRows)
				mock.ExpectRollback()
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "already approved",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`FOR UPDATE`).
					WillReturnRows(sqlmock.NewRows(accountCols).AddRow("acc-1", "Jane Doe", "jane@example.com", "hash", "salt", "5551234", true, created))
				mock.ExpectRollback()
			},
			wantErr: domain.ErrAlreadyApproved,
		},
		{
			name: "email already has an identity",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`FOR UPDATE`).
					WillReturnRows(sqlmock.NewRows(accountCols).AddRow("acc-1", "Jane Doe", "jane@example.com", "hash", "salt", "5551234", false, created))
				mock.ExpectQuery(`INSERT INTO auth_identities`).WillReturnError(&pq.Error{Code: "23505"})
				mock.ExpectRollback()
			},
			wantErr: domain.ErrDuplicateEmail,
		},
		{
			name: "mark registered fails",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`FOR UPDATE`).
					WillReturnRows(sqlmock.NewRows(accountCols).AddRow("acc-1", "Jane Doe", "jane@example.com", "hash", "salt", "5551234", false, created))
				mock.ExpectQuery(`INSERT INTO auth_identities`).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("auth-1"))
				mock.ExpectQuery(`INSERT INTO user_list`).WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("user-1"))
				mock.ExpectExec(`UPDATE account_pending`).WillReturnError(errors.New("deadlock"))
				mock.ExpectRollback()
			},
			wantErr: errors.New("mark registered: deadlock"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.mock(mock)

			user, err := NewAccountRepository(db).Approve(ctx, "acc-1", domain.RoleUser, now)
			switch {
			case tt.wantErr == nil:
				require.NoError(t, err)
				assert.Equal(t, "user-1", user.UserID)
				assert.Equal(t, "auth-1", user.AuthID)
				assert.Equal(t, "jane@example.com", user.Email)
				assert.Equal(t, domain.RoleUser, user.Role)
			case errors.Is(tt.wantErr, domain.ErrNotFound), errors.Is(tt.wantErr, domain.ErrAlreadyApproved), errors.Is(tt.wantErr, domain.ErrDuplicateEmail):
				require.ErrorIs(t, err, tt.wantErr)
			default:
				require.EqualError(t, err, tt.wantErr.Error())
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
