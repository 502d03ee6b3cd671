package httptransport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	rostermetrics "sabha/internal/roster/metrics"
	"sabha/internal/session"
	"sabha/internal/transport/http/mocks"
)

const upstreamToken = "upstream-access-token"

var errBoom = errors.New("boom")

type fixture struct {
	auth     *mocks.MockAuthProvider
	backend  *mocks.MockBackend
	sessions session.Store
	codec    *session.Codec
	router   http.Handler
}

func newFixture(t *testing.T) *fixture {
	return newMeteredFixture(t, nil)
}

func newMeteredFixture(t *testing.T, rm *rostermetrics.Metrics) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		auth:     mocks.NewMockAuthProvider(ctrl),
		backend:  mocks.NewMockBackend(ctrl),
		sessions: session.NewInMemoryStore(),
		codec:    session.NewCodec("test-signing-key", "sabha", time.Hour),
	}
	h := NewHandler(Deps{
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		RosterMetrics: rm,
		Auth:          f.auth,
		Backend:       f.backend,
		Sessions:      f.sessions,
		Codec:         f.codec,
		SessionTTL:    time.Hour,
	})
	f.router = NewRouter(h)
	return f
}

// loginAs seeds a gateway session with the given role and returns its token.
func (f *fixture) loginAs(t *testing.T, role string) string {
	t.Helper()
	now := time.Now()
	sess := &session.Session{
		ID:          uuid.NewString(),
		UserID:      uuid.NewString(),
		Email:       "member@example.com",
		Role:        role,
		AccessToken: upstreamToken,
		CreatedAt:   now,
		ExpiresAt:   now.Add(time.Hour),
	}
	require.NoError(t, f.sessions.Create(context.Background(), sess))
	token, err := f.codec.Issue(sess.ID)
	require.NoError(t, err)
	return token
}

func (f *fixture) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}
