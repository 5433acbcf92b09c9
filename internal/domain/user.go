package domain

import (
	"context"
	"time"
)

// Role codes stored in user_list.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// AuthIdentity is a sign-in identity (email + password hash).
type AuthIdentity struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserAccount is a role-bearing user record linked to an identity.
// swagger:model UserAccount
type UserAccount struct {
	UserID    string    `json:"user_id"`
	AuthID    string    `json:"auth_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Contact   string    `json:"contact"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// PendingAccount is a self-service signup awaiting admin approval.
// The password is only ever held as a salted hash.
// swagger:model PendingAccount
type PendingAccount struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Salt          string    `json:"-"`
	ContactNumber string    `json:"contact_number"`
	Registered    bool      `json:"registered"`
	CreatedAt     time.Time `json:"created_at"`
}

// Identity is the authenticated caller carried through a request.
// swagger:model Identity
type Identity struct {
	AuthID  string `json:"auth_id"`
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	TokenID string `json:"-"`
}

// IsAdmin reports whether the identity holds the admin role.
func (i *Identity) IsAdmin() bool { return i != nil && i.Role == RoleAdmin }

// Session is the resolved sign-in state for a request.
// swagger:model Session
type Session struct {
	Authenticated bool      `json:"authenticated"`
	Identity      *Identity `json:"identity,omitempty"`
	Landing       string    `json:"landing"`
}

// TokenClaims are the verified contents of a session token.
type TokenClaims struct {
	TokenID   string
	AuthID    string
	UserID    string
	Email     string
	Role      string
	ExpiresAt time.Time
}

// PasswordHasher handles salt generation, hashing, and verification.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues session tokens for an identity.
type TokenIssuer interface {
	Issue(identity *Identity, expiry time.Duration) (token string, claims *TokenClaims, err error)
}

// TokenVerifier verifies a token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*TokenClaims, error)
}

// RevocationStore remembers signed-out token ids until they expire.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// UserRepository stores identities and user_list rows.
type UserRepository interface {
	GetIdentityByEmail(ctx context.Context, email string) (*AuthIdentity, error)
	GetByAuthID(ctx context.Context, authID string) (*UserAccount, error)
	CreateWithIdentity(ctx context.Context, identity *AuthIdentity, user *UserAccount) error
	List(ctx context.Context, params PaginationParams) ([]*UserAccount, int, error)
}

// AccountRepository stores pending account requests.
type AccountRepository interface {
	Create(ctx context.Context, acc *PendingAccount) error
	GetByID(ctx context.Context, id string) (*PendingAccount, error)
	ListPending(ctx context.Context, params PaginationParams) ([]*PendingAccount, int, error)
	// Approve marks the request registered and creates its identity and user_list row in one transaction.
	Approve(ctx context.Context, id string, role string, now time.Time) (*UserAccount, error)
}

// AuthService signs identities in and out and resolves sessions.
type AuthService interface {
	SignIn(ctx context.Context, email, password string) (token string, session *Session, err error)
	SignOut(ctx context.Context, token string) error
	ResolveIdentity(ctx context.Context, token string) (*Session, error)
	EnsureAdmin(ctx context.Context, name, email, password string) error
}

// AccountService handles account requests, approval and the user list.
type AccountService interface {
	RequestAccount(ctx context.Context, name, email, password, contact string) (*PendingAccount, error)
	ListPending(ctx context.Context, params PaginationParams) ([]*PendingAccount, int, error)
	Approve(ctx context.Context, id string) (*UserAccount, error)
	ListUsers(ctx context.Context, params PaginationParams) ([]*UserAccount, int, error)
	GetByAuthID(ctx context.Context, authID string) (*UserAccount, error)
}
