package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionStore keeps the set of active sessions in Redis. A bearer
// token is only honored while its session id is still present here,
// which makes logout an actual revocation rather than a client-side
// token discard.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a session store with the given lifetime.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

// Create registers a new session for the user and returns its id.
func (s *SessionStore) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	id := uuid.NewString()
	if err := s.client.Set(ctx, sessionKey(id), userID.String(), s.ttl).Err(); err != nil {
		return "", err
	}
	return id, nil
}

// Get returns the user owning the session, or ErrSessionExpired when
// the session was revoked or aged out.
func (s *SessionStore) Get(ctx context.Context, id string) (uuid.UUID, error) {
	value, err := s.client.Get(ctx, sessionKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, ErrSessionExpired
	}
	if err != nil {
		return uuid.Nil, err
	}
	userID, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, ErrSessionExpired
	}
	return userID, nil
}

// Delete revokes a session.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}
