// Package httptransport wires the gateway's HTTP surface: auth endpoints backed by
// the auth provider, and /api routes proxied to the community backend with
// the caller's upstream token taken from the gateway session.
package httptransport

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"sabha/internal/announce"
	"sabha/internal/authn"
	"sabha/internal/details"
	"sabha/internal/platform/metrics"
	"sabha/internal/roster"
	rostermetrics "sabha/internal/roster/metrics"
	"sabha/internal/session"
)

//go:generate mockgen -source=handler.go -destination=mocks/handler_mocks.go -package=mocks

// AuthProvider is the slice of the auth client the handlers need.
type AuthProvider interface {
	SignIn(ctx context.Context, email, password string) (authn.Session, error)
	SignUp(ctx context.Context, email, password, redirectTo string) error
	SignOut(ctx context.Context, accessToken string) error
	ResetPassword(ctx context.Context, email, redirectTo string) error
	VerifyOTP(ctx context.Context, tokenHash, otpType string) (authn.Session, error)
	UpdateUser(ctx context.Context, accessToken, password string) error
}

// Backend is the slice of the community backend client the handlers need.
type Backend interface {
	ListPersonalDetails(ctx context.Context, token string, params url.Values) ([]roster.Entry, error)
	DeleteUser(ctx context.Context, token, id string) error
	EditUser(ctx context.Context, token string, entry roster.Entry) error
	CheckRole(ctx context.Context, token string) (string, error)
	MyPersonalDetails(ctx context.Context, token string) (roster.Entry, error)
	SavePersonalDetails(ctx context.Context, token string, entry roster.Entry) error
	ListAnnouncements(ctx context.Context, token string) ([]announce.Announcement, error)
	CreateAnnouncement(ctx context.Context, token, title, content string) (announce.Announcement, error)
	UpdateAnnouncement(ctx context.Context, token, id, title, content string) error
	DeleteAnnouncement(ctx context.Context, token, id string) error
}

// Handler holds the dependencies shared by all route handlers.
type Handler struct {
	logger     *slog.Logger
	metrics    *metrics.Metrics
	roster     *rostermetrics.Metrics
	auth       AuthProvider
	backend    Backend
	details    *details.Service
	sessions   session.Store
	codec      *session.Codec
	sessionTTL time.Duration
	now        func() time.Time
}

// Deps bundles the constructor arguments for Handler.
type Deps struct {
	Logger        *slog.Logger
	Metrics       *metrics.Metrics
	RosterMetrics *rostermetrics.Metrics
	Auth          AuthProvider
	Backend       Backend
	Sessions      session.Store
	Codec         *session.Codec
	SessionTTL    time.Duration
}

func NewHandler(d Deps) *Handler {
	return &Handler{
		logger:     d.Logger,
		metrics:    d.Metrics,
		roster:     d.RosterMetrics,
		auth:       d.Auth,
		backend:    d.Backend,
		details:    details.NewService(d.Backend),
		sessions:   d.Sessions,
		codec:      d.Codec,
		sessionTTL: d.SessionTTL,
		now:        time.Now,
	}
}
