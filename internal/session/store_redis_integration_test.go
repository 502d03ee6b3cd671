//go:build integration

package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"sabha/internal/session"
	"sabha/pkg/sentinel"
	"sabha/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *session.RedisSessionStore
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	s.store = session.NewRedisStore(s.redis.Client)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func makeSession(ttl time.Duration) *session.Session {
	now := time.Now()
	return &session.Session{
		ID:          uuid.NewString(),
		UserID:      uuid.NewString(),
		Email:       "member@example.com",
		Role:        "admin",
		AccessToken: "at-1",
		CreatedAt:   now,
		ExpiresAt:   now.Add(ttl),
	}
}

func (s *RedisStoreSuite) TestCreateAndFind() {
	ctx := context.Background()
	sess := makeSession(time.Hour)

	s.Require().NoError(s.store.Create(ctx, sess))

	found, err := s.store.Find(ctx, sess.ID)
	s.Require().NoError(err)
	s.Equal(sess.ID, found.ID)
	s.Equal(sess.AccessToken, found.AccessToken)
	s.Equal(sess.Role, found.Role)
	s.WithinDuration(sess.ExpiresAt, found.ExpiresAt, time.Second)
}

func (s *RedisStoreSuite) TestFindMissing() {
	_, err := s.store.Find(context.Background(), uuid.NewString())
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *RedisStoreSuite) TestDuplicateCreateConflicts() {
	ctx := context.Background()
	sess := makeSession(time.Hour)

	s.Require().NoError(s.store.Create(ctx, sess))
	s.Require().ErrorIs(s.store.Create(ctx, sess), sentinel.ErrConflict)
}

func (s *RedisStoreSuite) TestCreateAlreadyExpired() {
	s.Require().ErrorIs(s.store.Create(context.Background(), makeSession(-time.Minute)), sentinel.ErrExpired)
}

func (s *RedisStoreSuite) TestKeyTTLFollowsExpiry() {
	ctx := context.Background()
	sess := makeSession(2 * time.Second)
	s.Require().NoError(s.store.Create(ctx, sess))

	ttl, err := s.redis.Client.TTL(ctx, "sess:"+sess.ID).Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))
	s.LessOrEqual(ttl, 2*time.Second)
}

func (s *RedisStoreSuite) TestDelete() {
	ctx := context.Background()
	sess := makeSession(time.Hour)

	s.Require().NoError(s.store.Create(ctx, sess))
	s.Require().NoError(s.store.Delete(ctx, sess.ID))

	_, err := s.store.Find(ctx, sess.ID)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}
