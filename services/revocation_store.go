package services

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis"
)

const revokedKeyPrefix = "blogicum:revoked:"

// RevocationStore remembers logged-out token IDs until they expire.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type redisRevocationStore struct {
	client *redis.Client
}

func NewRedisRevocationStore(client *redis.Client) RevocationStore {
	return &redisRevocationStore{client: client}
}

func (s *redisRevocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return s.client.WithContext(ctx).Set(revokedKeyPrefix+tokenID, "1", ttl).Err()
}

func (s *redisRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.WithContext(ctx).Exists(revokedKeyPrefix + tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

type memoryRevocationStore struct {
	mu      sync.Mutex
	expires map[string]time.Time
	now     func() time.Time
}

// NewMemoryRevocationStore is used when no Redis address is configured.
// Revocations do not survive a restart or span several instances.
func NewMemoryRevocationStore() RevocationStore {
	return &memoryRevocationStore{expires: map[string]time.Time{}, now: time.Now}
}

func (s *memoryRevocationStore) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, at := range s.expires {
		if !at.After(now) {
			delete(s.expires, id)
		}
	}
	s.expires[tokenID] = now.Add(ttl)
	return nil
}

func (s *memoryRevocationStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	at, ok := s.expires[tokenID]
	return ok && at.After(s.now()), nil
}
