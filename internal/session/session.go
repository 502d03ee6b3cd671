package session

import (
	"context"
	"time"
)

// Session is one gateway login. It carries the provider tokens so handlers
// can forward the access token to the community backend; the tokens are
// treated as opaque credentials throughout.
type Session struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Expired reports whether the session has passed its expiry.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// Store persists gateway sessions. Implementations return
// sentinel.ErrNotFound for missing sessions and sentinel.ErrExpired for
// sessions past their expiry.
type Store interface {
	Create(ctx context.Context, sess *Session) error
	Find(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}
