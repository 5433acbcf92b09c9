package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"churchattendance/internal/domain"
)

type memoryDraft struct {
	draft     domain.RegistrationDraft
	expiresAt time.Time
	claim     string
}

// MemoryDraftStore keeps drafts in process memory. Suitable for a single instance.
type MemoryDraftStore struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	drafts map[string]memoryDraft
}

// NewMemoryDraftStore returns an empty in-memory DraftStore with the given idle TTL.
func NewMemoryDraftStore(ttl time.Duration) *MemoryDraftStore {
	return &MemoryDraftStore{ttl: ttl, now: time.Now, drafts: make(map[string]memoryDraft)}
}

var _ domain.DraftStore = (*MemoryDraftStore)(nil)

func (s *MemoryDraftStore) Create(_ context.Context, draft domain.RegistrationDraft) (string, error) {
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.drafts[id] = memoryDraft{draft: draft, expiresAt: s.now().Add(s.ttl)}
	return id, nil
}

// liveLocked returns the unexpired entry for id, dropping it if it has expired.
func (s *MemoryDraftStore) liveLocked(id string) (memoryDraft, bool) {
	d, ok := s.drafts[id]
	if !ok || !s.now().Before(d.expiresAt) {
		delete(s.drafts, id)
		return memoryDraft{}, false
	}
	return d, true
}

func (s *MemoryDraftStore) Get(_ context.Context, id string) (domain.RegistrationDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.liveLocked(id)
	if !ok {
		return domain.RegistrationDraft{}, domain.ErrNotFound
	}
	return d.draft, nil
}

func (s *MemoryDraftStore) Save(_ context.Context, id string, draft domain.RegistrationDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.liveLocked(id)
	if !ok {
		return domain.ErrNotFound
	}
	s.drafts[id] = memoryDraft{draft: draft, expiresAt: s.now().Add(s.ttl), claim: d.claim}
	return nil
}

func (s *MemoryDraftStore) Update(_ context.Context, id string, fn domain.DraftUpdate) (domain.RegistrationDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.liveLocked(id)
	if !ok {
		return domain.RegistrationDraft{}, domain.ErrNotFound
	}
	if d.claim != "" {
		return domain.RegistrationDraft{}, domain.ErrDraftBusy
	}
	next, err := fn(d.draft)
	if err != nil {
		return domain.RegistrationDraft{}, err
	}
	s.drafts[id] = memoryDraft{draft: next, expiresAt: s.now().Add(s.ttl)}
	return next, nil
}

func (s *MemoryDraftStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.drafts[id]; ok && d.claim != "" {
		return domain.ErrDraftBusy
	}
	delete(s.drafts, id)
	return nil
}

func (s *MemoryDraftStore) Claim(_ context.Context, id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.liveLocked(id)
	if !ok {
		return "", domain.ErrNotFound
	}
	if d.claim != "" {
		return "", domain.ErrDraftBusy
	}
	d.claim = uuid.NewString()
	s.drafts[id] = d
	return d.claim, nil
}

// Release drops the claim if token still holds it.
func (s *MemoryDraftStore) Release(_ context.Context, id, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.drafts[id]; ok && d.claim == token {
		d.claim = ""
		s.drafts[id] = d
	}
	return nil
}

func (s *MemoryDraftStore) sweepLocked() {
	now := s.now()
	for id, d := range s.drafts {
		if !now.Before(d.expiresAt) {
			delete(s.drafts, id)
		}
	}
}

// MemoryRevocationStore remembers revoked token ids in process memory.
type MemoryRevocationStore struct {
	mu      sync.Mutex
	now     func() time.Time
	revoked map[string]time.Time
}

// NewMemoryRevocationStore returns an empty in-memory RevocationStore.
func NewMemoryRevocationStore() *MemoryRevocationStore {
	return &MemoryRevocationStore{now: time.Now, revoked: make(map[string]time.Time)}
}

var _ domain.RevocationStore = (*MemoryRevocationStore)(nil)

func (s *MemoryRevocationStore) Revoke(_ context.Context, tokenID string, until time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for id, exp := range s.revoked {
		if !now.Before(exp) {
			delete(s.revoked, id)
		}
	}
	if now.Before(until) {
		s.revoked[tokenID] = until
	}
	return nil
}

func (s *MemoryRevocationStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp, ok := s.revoked[tokenID]
	return ok && s.now().Before(exp), nil
}
