package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"churchattendance/internal/domain"
)

type accountFixture struct {
	svc      domain.AccountService
	accounts *fakeAccountRepo
	users    *fakeUserRepo
	emails   *fakeEmailService
}

func newAccountFixture() *accountFixture {
	f := &accountFixture{
		accounts: newFakeAccountRepo(),
		users:    newFakeUserRepo(),
		emails:   &fakeEmailService{},
	}
	f.svc = NewAccountService(f.accounts, f.users, fakePasswordHasher{}, f.emails, "https://church.example/login", time.Second, nil)
	return f
}

func TestAccountService_RequestAccount(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		contact  string
		setup    func(f *accountFixture)
		wantErr  error
	}{
		{name: "valid", email: " Jane@Example.com ", password: "longenough", contact: "5551234"},
		{name: "bad email", email: "jane", password: "longenough", contact: "5551234", wantErr: domain.ErrInvalidInput},
		{name: "short password", email: "jane@example.com", password: "short", contact: "5551234", wantErr: domain.ErrInvalidInput},
		{name: "missing contact", email: "jane@example.com", password: "longenough", contact: " ", wantErr: domain.ErrInvalidInput},
		{
			name: "email already has an identity", email: "jane@example.com", password: "longenough", contact: "5551234",
			setup: func(f *accountFixture) {
				f.users.add(&domain.AuthIdentity{ID: "auth-9", Email: "jane@example.com"}, nil)
			},
			wantErr: domain.ErrDuplicateEmail,
		},
		{
			name: "email already requested", email: "jane@example.com", password: "longenough", contact: "5551234",
			setup: func(f *accountFixture) {
				f.accounts.byID["acc-0"] = &domain.PendingAccount{ID: "acc-0", Email: "jane@example.com"}
			},
			wantErr: domain.ErrDuplicateEmail,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAccountFixture()
			if tt.setup != nil {
				tt.setup(f)
			}
			acc, err := f.svc.RequestAccount(ctx, "Jane Doe", tt.email, tt.password, tt.contact)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, f.emails.requested)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "jane@example.com", acc.Email)
			assert.Equal(t, "salt", acc.Salt)
			assert.NotEqual(t, tt.password, acc.PasswordHash, "plaintext must never be stored")
			assert.Equal(t, "hash-salt-"+tt.password, acc.PasswordHash)
			require.Len(t, f.emails.requested, 1)
		})
	}
}

func TestAccountService_RequestAccount_emailFailureIsNotFatal(t *testing.T) {
	f := newAccountFixture()
	f.emails.err = errors.New("smtp down")

	acc, err := f.svc.RequestAccount(context.Background(), "Jane", "jane@example.com", "longenough", "5551234")
	require.NoError(t, err)
	assert.NotEmpty(t, acc.ID)
}

func TestAccountService_Approve(t *testing.T) {
	ctx := context.Background()
	f := newAccountFixture()
	acc, err := f.svc.RequestAccount(ctx, "Jane Doe", "jane@example.com", "longenough", "5551234")
	require.NoError(t, err)

	pending, total, err := f.svc.ListPending(ctx, domain.NewPaginationParams(1, domain.DefaultPageSize))
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, pending, 1)

	user, err := f.svc.Approve(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.Equal(t, domain.RoleUser, f.accounts.lastRole)
	require.Len(t, f.emails.approved, 1)
	assert.Equal(t, "https://church.example/login", f.emails.approved[0].LoginURL)

	_, err = f.svc.Approve(ctx, acc.ID)
	require.ErrorIs(t, err, domain.ErrAlreadyApproved)
	_, err = f.svc.Approve(ctx, "acc-404")
	require.ErrorIs(t, err, domain.ErrNotFound)

	f.accounts.approveErr = errors.New("deadlock")
	_, err = f.svc.Approve(ctx, acc.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "approve account")
}

func TestAccountService_Users(t *testing.T) {
	ctx := context.Background()
	f := newAccountFixture()
	f.users.add(&domain.AuthIdentity{ID: "auth-1", Email: "a@example.com"}, &domain.UserAccount{UserID: "user-1", Role: domain.RoleAdmin})

	users, total, err := f.svc.ListUsers(ctx, domain.NewPaginationParams(1, domain.DefaultPageSize))
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, users, 1)

	u, err := f.svc.GetByAuthID(ctx, "auth-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", u.UserID)
}
