package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/learnaray/learnaray/internal/domain/contract"
	"github.com/learnaray/learnaray/internal/domain/entity"
	"github.com/learnaray/learnaray/internal/infrastructure/metrics"
)

// SessionStore keeps sanitized user snapshots in redis, keyed by user id.
// Entries back refresh-token validation, so every write resets the TTL.
type SessionStore struct {
	rdb        *redis.Client
	sessionTTL time.Duration
}

func NewSessionStore(rdb *redis.Client) *SessionStore {
	return &SessionStore{
		rdb:        rdb,
		sessionTTL: 7 * 24 * time.Hour, // 604800s
	}
}

var _ contract.ISessionCache = (*SessionStore)(nil)

func sessionKey(userID string) string { return fmt.Sprintf("user:session:%s", userID) }

func (s *SessionStore) GetSession(ctx context.Context, userID string) (*entity.User, bool, error) {
	b, err := s.rdb.Get(ctx, sessionKey(userID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			metrics.CacheMisses.WithLabelValues("session").Inc()
			return nil, false, nil
		}
		return nil, false, err
	}
	var user entity.User
	if err := json.Unmarshal(b, &user); err != nil {
		// treat a corrupt entry as a miss so the caller falls through
		metrics.CacheMisses.WithLabelValues("session").Inc()
		return nil, false, nil
	}
	metrics.CacheHits.WithLabelValues("session").Inc()
	return &user, true, nil
}

func (s *SessionStore) SetSession(ctx context.Context, user *entity.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, sessionKey(user.ID), data, s.sessionTTL).Err()
}

func (s *SessionStore) DeleteSession(ctx context.Context, userID string) error {
	return s.rdb.Del(ctx, sessionKey(userID)).Err()
}
