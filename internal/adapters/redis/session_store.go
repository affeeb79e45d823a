package redis

// Package redis provides Redis-based adapters: the client session store, the
// auth event bus, and the sign-up rate limiter.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	domainauth "github.com/goldengigs/goldengigs/internal/domain/auth"
	apperrors "github.com/goldengigs/goldengigs/internal/errors"
	"github.com/goldengigs/goldengigs/internal/ports"
)

// SessionStore is a Redis-based client session store. TTLs follow each
// session's ExpiresAt, and a per-principal index supports sign-out of every
// session a user holds.
type SessionStore struct {
	client redis.UniversalClient
	prefix string
}

var _ ports.SessionStore = (*SessionStore)(nil)

// NewSessionStore creates a session store with the default key prefix.
func NewSessionStore(client redis.UniversalClient) *SessionStore {
	return &SessionStore{client: client, prefix: "session:"}
}

// NewSessionStoreWithPrefix creates a session store with a custom key prefix.
func NewSessionStoreWithPrefix(client redis.UniversalClient, prefix string) *SessionStore {
	return &SessionStore{client: client, prefix: prefix}
}

func (s *SessionStore) key(id string) string {
	return s.prefix + id
}

func (s *SessionStore) principalKey(principalID string) string {
	return s.prefix + "principal:" + principalID
}

// Save stores the session and records it in the principal index.
func (s *SessionStore) Save(ctx context.Context, sess domainauth.ClientSession) error {
	if sess.ID == "" {
		return apperrors.Validation("session ID cannot be empty")
	}
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return apperrors.Validation("session is already expired")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.key(sess.ID), data, ttl)
	pipe.SAdd(ctx, s.principalKey(sess.PrincipalID), sess.ID)
	// The index outlives its longest member by a margin; stale ids are pruned
	// on DeleteByPrincipal.
	pipe.Expire(ctx, s.principalKey(sess.PrincipalID), ttl+time.Hour)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Get retrieves a live session. Returns a NotFound error for unknown or
// expired ids.
func (s *SessionStore) Get(ctx context.Context, id string) (domainauth.ClientSession, error) {
	if id == "" {
		return domainauth.ClientSession{}, apperrors.NotFound("session not found")
	}

	data, err := s.client.Get(ctx, s.key(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return domainauth.ClientSession{}, apperrors.NotFound("session not found")
		}
		return domainauth.ClientSession{}, fmt.Errorf("redis get: %w", err)
	}

	var sess domainauth.ClientSession
	if unmarshalErr := json.Unmarshal([]byte(data), &sess); unmarshalErr != nil {
		return domainauth.ClientSession{}, fmt.Errorf("unmarshal session: %w", unmarshalErr)
	}

	// Redis TTL should have removed it already; double-check the timestamp.
	if sess.Expired() {
		if deleteErr := s.Delete(ctx, id); deleteErr != nil {
			return domainauth.ClientSession{}, fmt.Errorf("cleanup expired session: %w", deleteErr)
		}
		return domainauth.ClientSession{}, apperrors.NotFound("session not found")
	}
	return sess, nil
}

// Delete removes one session by id.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return s.client.Del(ctx, s.key(id)).Err()
}

// DeleteByPrincipal removes every session the principal holds.
func (s *SessionStore) DeleteByPrincipal(ctx context.Context, principalID string) error {
	idxKey := s.principalKey(principalID)
	ids, err := s.client.SMembers(ctx, idxKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil
		}
		return fmt.Errorf("read principal sessions: %w", err)
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, s.key(id))
	}
	keys = append(keys, idxKey)
	return s.client.Del(ctx, keys...).Err()
}
