package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"churchattendance/internal/domain"
)

const (
	draftKeyPrefix   = "registration:draft:"
	claimKeySuffix   = ":lock"
	revokedKeyPrefix = "auth:revoked:"

	// claimTTL bounds how long a crashed submission can hold a draft.
	claimTTL = time.Minute
	// updateRetries is how many times Update retries after a concurrent write.
	updateRetries = 5
)

// releaseScript deletes a claim only if it still holds the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func claimKey(id string) string { return draftKeyPrefix + id + claimKeySuffix }

// draftReader is satisfied by both *redis.Client and *redis.Tx.
type draftReader interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}

// NewRedisClient creates a Redis client and verifies connectivity.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// RedisDraftStore keeps drafts as JSON values with a sliding TTL, so any API
// instance can continue a wizard.
type RedisDraftStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisDraftStore returns a DraftStore backed by rdb.
func NewRedisDraftStore(rdb *redis.Client, ttl time.Duration) *RedisDraftStore {
	return &RedisDraftStore{rdb: rdb, ttl: ttl}
}

var _ domain.DraftStore = (*RedisDraftStore)(nil)

func (s *RedisDraftStore) Create(ctx context.Context, draft domain.RegistrationDraft) (string, error) {
	id := uuid.NewString()
	raw, err := json.Marshal(draft)
	if err != nil {
		return "", fmt.Errorf("encode draft: %w", err)
	}
	if err := s.rdb.Set(ctx, draftKeyPrefix+id, raw, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store draft: %w", err)
	}
	return id, nil
}

func (s *RedisDraftStore) Get(ctx context.Context, id string) (domain.RegistrationDraft, error) {
	return loadDraft(ctx, s.rdb, id)
}

func loadDraft(ctx context.Context, c draftReader, id string) (domain.RegistrationDraft, error) {
	raw, err := c.Get(ctx, draftKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.RegistrationDraft{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.RegistrationDraft{}, fmt.Errorf("load draft: %w", err)
	}
	var draft domain.RegistrationDraft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return domain.RegistrationDraft{}, fmt.Errorf("decode draft: %w", err)
	}
	return draft, nil
}

// claimed reports whether a submission currently holds draft id.
func claimed(ctx context.Context, c draftReader, id string) (bool, error) {
	n, err := c.Exists(ctx, claimKey(id)).Result()
	if err != nil {
		return false, fmt.Errorf("check draft claim: %w", err)
	}
	return n > 0, nil
}

// Save overwrites an existing draft and refreshes its TTL. Missing drafts are not recreated.
func (s *RedisDraftStore) Save(ctx context.Context, id string, draft domain.RegistrationDraft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	ok, err := s.rdb.SetXX(ctx, draftKeyPrefix+id, raw, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("store draft: %w", err)
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// Update runs fn inside WATCH/MULTI on the draft and its claim key, retrying when
// another request wrote in between.
func (s *RedisDraftStore) Update(ctx context.Context, id string, fn domain.DraftUpdate) (domain.RegistrationDraft, error) {
	var next domain.RegistrationDraft
	txf := func(tx *redis.Tx) error {
		busy, err := claimed(ctx, tx, id)
		if err != nil {
			return err
		}
		if busy {
			return domain.ErrDraftBusy
		}
		draft, err := loadDraft(ctx, tx, id)
		if err != nil {
			return err
		}
		if next, err = fn(draft); err != nil {
			return err
		}
		raw, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("encode draft: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, draftKeyPrefix+id, raw, s.ttl)
			return nil
		})
		return err
	}
	for range updateRetries {
		err := s.rdb.Watch(ctx, txf, draftKeyPrefix+id, claimKey(id))
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return domain.RegistrationDraft{}, err
		}
		return next, nil
	}
	return domain.RegistrationDraft{}, domain.ErrDraftConflict
}

func (s *RedisDraftStore) Delete(ctx context.Context, id string) error {
	err := s.rdb.Watch(ctx, func(tx *redis.Tx) error {
		busy, err := claimed(ctx, tx, id)
		if err != nil {
			return err
		}
		if busy {
			return domain.ErrDraftBusy
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, draftKeyPrefix+id)
			return nil
		})
		return err
	}, claimKey(id))
	switch {
	case errors.Is(err, redis.TxFailedErr):
		return domain.ErrDraftBusy
	case errors.Is(err, domain.ErrDraftBusy):
		return err
	case err != nil:
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

// Claim takes the draft's lock key with SET NX. The key expires after claimTTL.
func (s *RedisDraftStore) Claim(ctx context.Context, id string) (string, error) {
	n, err := s.rdb.Exists(ctx, draftKeyPrefix+id).Result()
	if err != nil {
		return "", fmt.Errorf("check draft: %w", err)
	}
	if n == 0 {
		return "", domain.ErrNotFound
	}
	token := uuid.NewString()
	ok, err := s.rdb.SetNX(ctx, claimKey(id), token, claimTTL).Result()
	if err != nil {
		return "", fmt.Errorf("claim draft: %w", err)
	}
	if !ok {
		return "", domain.ErrDraftBusy
	}
	return token, nil
}

func (s *RedisDraftStore) Release(ctx context.Context, id, token string) error {
	if err := releaseScript.Run(ctx, s.rdb, []string{claimKey(id)}, token).Err(); err != nil {
		return fmt.Errorf("release draft: %w", err)
	}
	return nil
}

// RedisRevocationStore keeps revoked token ids until the token would have expired.
type RedisRevocationStore struct {
	rdb *redis.Client
	now func() time.Time
}

// NewRedisRevocationStore returns a RevocationStore backed by rdb.
func NewRedisRevocationStore(rdb *redis.Client) *RedisRevocationStore {
	return &RedisRevocationStore{rdb: rdb, now: time.Now}
}

var _ domain.RevocationStore = (*RedisRevocationStore)(nil)

func (s *RedisRevocationStore) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := until.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.rdb.Set(ctx, revokedKeyPrefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (s *RedisRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.rdb.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return n > 0, nil
}
