package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/freeboard/board-client/internal/core/domain"
)

const defaultSessionTTL = 24 * time.Hour

// SessionStore keeps session records in Redis as JSON.
// Key format: session:<sid>. Every Save refreshes the TTL, so a session
// expires only after ttl of inactivity.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

// Save implements ports.SessionStore.
func (s *SessionStore) Save(ctx context.Context, sess *domain.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}
	if err := s.client.Set(ctx, s.key(sess.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	return nil
}

// Get implements ports.SessionStore.
func (s *SessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("session load: %w", err)
	}

	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("session decode: %w", err)
	}
	return &sess, nil
}

// Delete implements ports.SessionStore.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

func (s *SessionStore) key(id string) string {
	return "session:" + id
}
