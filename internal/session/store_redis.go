package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"sabha/pkg/sentinel"
)

const sessionKeyPrefix = "sess:"

// RedisSessionStore is a Redis-backed session store for deployments running
// more than one portal instance. Expiry is enforced by key TTL; an expired
// session simply disappears and reads report sentinel.ErrNotFound.
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisStore builds a session store on an existing redis client; the
// client lifecycle is managed externally.
func NewRedisStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) Create(ctx context.Context, sess *Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return sentinel.ErrExpired
	}

	ok, err := s.client.SetNX(ctx, sessionKeyPrefix+sess.ID, payload, ttl).Result()
	if err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	if !ok {
		return sentinel.ErrConflict
	}
	return nil
}

func (s *RedisSessionStore) Find(ctx context.Context, id string) (*Session, error) {
	raw, err := s.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if sess.Expired(time.Now()) {
		return nil, sentinel.ErrExpired
	}
	return &sess, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKeyPrefix+id).Err()
}
