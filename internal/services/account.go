package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"churchattendance/internal/domain"
)

const minPasswordLen = 8

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type accountService struct {
	accountRepo    domain.AccountRepository
	userRepo       domain.UserRepository
	hasher         domain.PasswordHasher
	emailService   domain.EmailService
	loginURL       string
	contextTimeout time.Duration
	now            func() time.Time
	logger         *slog.Logger
}

func NewAccountService(
	accountRepo domain.AccountRepository,
	userRepo domain.UserRepository,
	hasher domain.PasswordHasher,
	emailService domain.EmailService,
	loginURL string,
	timeout time.Duration,
	logger *slog.Logger,
) domain.AccountService {
	if logger == nil {
		logger = slog.Default()
	}
	return &accountService{
		accountRepo:    accountRepo,
		userRepo:       userRepo,
		hasher:         hasher,
		emailService:   emailService,
		loginURL:       loginURL,
		contextTimeout: timeout,
		now:            time.Now,
		logger:         logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RequestAccount stores a signup request with a salted password hash.
func (s *accountService) RequestAccount(ctx context.Context, name, email, password, contact string) (*domain.PendingAccount, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	contact = strings.TrimSpace(contact)
	if name == "" || contact == "" {
		return nil, domain.NewValidationError(domain.MsgCompleteAllFields)
	}
	if !emailRegexp.MatchString(email) {
		return nil, fmt.Errorf("invalid email format: %w", domain.ErrInvalidInput)
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("password must be at least %d characters: %w", minPasswordLen, domain.ErrInvalidInput)
	}

	if _, err := s.userRepo.GetIdentityByEmail(ctx, email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check identity: %w", err)
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	hash, err := s.hasher.Hash(salt, password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	acc := &domain.PendingAccount{
		Name:          name,
		Email:         email,
		PasswordHash:  hash,
		Salt:          salt,
		ContactNumber: contact,
		CreatedAt:     s.now(),
	}
	if err := s.accountRepo.Create(ctx, acc); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("create account request: %w", err)
	}

	if err := s.emailService.SendAccountRequested(ctx, &domain.AccountEmailData{Email: acc.Email, Name: acc.Name}); err != nil {
		s.logger.WarnContext(ctx, "account requested email", "account_id", acc.ID, "err", err)
	}
	return acc, nil
}

func (s *accountService) ListPending(ctx context.Context, params domain.PaginationParams) ([]*domain.PendingAccount, int, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	list, total, err := s.accountRepo.ListPending(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list pending accounts: %w", err)
	}
	return list, total, nil
}

// Approve promotes a pending request to a user account with the user role.
func (s *accountService) Approve(ctx context.Context, id string) (*domain.UserAccount, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	user, err := s.accountRepo.Approve(ctx, id, domain.RoleUser, s.now())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrAlreadyApproved), errors.Is(err, domain.ErrDuplicateEmail):
			return nil, err
		}
		return nil, fmt.Errorf("approve account: %w", err)
	}

	data := &domain.AccountEmailData{Email: user.Email, Name: user.Name, LoginURL: s.loginURL}
	if err := s.emailService.SendAccountApproved(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "account approved email", "account_id", id, "err", err)
	}
	return user, nil
}

func (s *accountService) ListUsers(ctx context.Context, params domain.PaginationParams) ([]*domain.UserAccount, int, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	list, total, err := s.userRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return list, total, nil
}

func (s *accountService) GetByAuthID(ctx context.Context, authID string) (*domain.UserAccount, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.userRepo.GetByAuthID(ctx, authID)
}
