package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"churchattendance/internal/domain"
)

// Landing views returned with a session.
const (
	LandingAdmin  = "/admin"
	LandingFamily = "/family"
	LandingLogin  = "/login"
)

type authService struct {
	userRepo   domain.UserRepository
	hasher     domain.PasswordHasher
	issuer     domain.TokenIssuer
	verifier   domain.TokenVerifier
	revocation domain.RevocationStore
	jwtExpiry  time.Duration
	now        func() time.Time
	logger     *slog.Logger
}

// NewAuthService creates an AuthService with the given repository, token handling and expiry.
func NewAuthService(
	userRepo domain.UserRepository,
	hasher domain.PasswordHasher,
	issuer domain.TokenIssuer,
	verifier domain.TokenVerifier,
	revocation domain.RevocationStore,
	jwtExpiry time.Duration,
	logger *slog.Logger,
) domain.AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &authService{
		userRepo:   userRepo,
		hasher:     hasher,
		issuer:     issuer,
		verifier:   verifier,
		revocation: revocation,
		jwtExpiry:  jwtExpiry,
		now:        time.Now,
		logger:     logger,
	}
}

func landingFor(role string) string {
	if role == domain.RoleAdmin {
		return LandingAdmin
	}
	return LandingFamily
}

func (s *authService) SignIn(ctx context.Context, email, password string) (string, *domain.Session, error) {
	identity, err := s.userRepo.GetIdentityByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("load identity: %w", err)
	}
	if err := s.hasher.Compare(identity.PasswordHash, identity.Salt, password); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByAuthID(ctx, identity.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrForbidden
		}
		return "", nil, fmt.Errorf("load role: %w", err)
	}

	id := &domain.Identity{AuthID: identity.ID, UserID: user.UserID, Email: identity.Email, Role: user.Role}
	token, claims, err := s.issuer.Issue(id, s.jwtExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	id.TokenID = claims.TokenID
	return token, &domain.Session{Authenticated: true, Identity: id, Landing: landingFor(id.Role)}, nil
}

// SignOut revokes the token until it would have expired. Invalid tokens are already signed out.
func (s *authService) SignOut(ctx context.Context, token string) error {
	claims, err := s.verifier.Verify(token)
	if err != nil {
		return nil
	}
	if err := s.revocation.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// ResolveIdentity never fails for a bad token; it returns an unauthenticated session instead.
// A revocation store outage also yields an unauthenticated session.
func (s *authService) ResolveIdentity(ctx context.Context, token string) (*domain.Session, error) {
	anonymous := &domain.Session{Landing: LandingLogin}
	token = strings.TrimSpace(token)
	if token == "" {
		return anonymous, nil
	}
	claims, err := s.verifier.Verify(token)
	if err != nil {
		return anonymous, nil
	}
	revoked, err := s.revocation.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		s.logger.ErrorContext(ctx, "check token revocation", "err", err)
		return anonymous, nil
	}
	if revoked {
		return anonymous, nil
	}
	id := &domain.Identity{
		AuthID:  claims.AuthID,
		UserID:  claims.UserID,
		Email:   claims.Email,
		Role:    claims.Role,
		TokenID: claims.TokenID,
	}
	return &domain.Session{Authenticated: true, Identity: id, Landing: landingFor(id.Role)}, nil
}

// EnsureAdmin creates an admin identity for email unless one already exists.
// An empty email disables seeding.
func (s *authService) EnsureAdmin(ctx context.Context, name, email, password string) error {
	email = normalizeEmail(email)
	if email == "" {
		return nil
	}
	if _, err := s.userRepo.GetIdentityByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("check admin identity: %w", err)
	}
	if len(password) < minPasswordLen {
		return fmt.Errorf("admin password must be at least %d characters: %w", minPasswordLen, domain.ErrInvalidInput)
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}
	hash, err := s.hasher.Hash(salt, password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	now := s.now()
	identity := &domain.AuthIdentity{Email: email, PasswordHash: hash, Salt: salt, CreatedAt: now}
	user := &domain.UserAccount{Name: strings.TrimSpace(name), Role: domain.RoleAdmin, CreatedAt: now}
	if err := s.userRepo.CreateWithIdentity(ctx, identity, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil
		}
		return fmt.Errorf("create admin: %w", err)
	}
	s.logger.InfoContext(ctx, "admin account created", "email", email)
	return nil
}
