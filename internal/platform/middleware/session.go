package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"sabha/internal/session"
	"sabha/pkg/sentinel"
)

type contextKeySession struct{}

// ContextKeySession is exported for use in handlers.
var ContextKeySession = contextKeySession{}

// GetSession retrieves the authenticated session from the context.
func GetSession(ctx context.Context) *session.Session {
	sess, ok := ctx.Value(ContextKeySession).(*session.Session)
	if !ok {
		return nil
	}
	return sess
}

// RequireSession validates the gateway bearer token, loads the referenced
// session and stores it in the request context. Missing, invalid and expired
// sessions all answer 401.
func RequireSession(codec *session.Codec, store session.Store, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const bearerPrefix = "Bearer "
			authHeader := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(authHeader, bearerPrefix)
			if !ok || token == "" {
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid Authorization header")
				return
			}

			sessionID, err := codec.Validate(token)
			if err != nil {
				logger.WarnContext(r.Context(), "unauthorized access - invalid token",
					"error", err,
					"request_id", GetRequestID(r.Context()),
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
				return
			}

			sess, err := store.Find(r.Context(), sessionID)
			if err != nil {
				if errors.Is(err, sentinel.ErrNotFound) || errors.Is(err, sentinel.ErrExpired) {
					writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Session expired or revoked")
					return
				}
				logger.ErrorContext(r.Context(), "session lookup failed",
					"error", err,
					"request_id", GetRequestID(r.Context()),
				)
				writeJSONError(w, http.StatusInternalServerError, "internal_error", "Failed to load session")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a subtree on the role recorded at login.
func RequireRole(role string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := GetSession(r.Context())
			if sess == nil || !strings.EqualFold(sess.Role, role) {
				logger.WarnContext(r.Context(), "forbidden - role mismatch",
					"required", role,
					"request_id", GetRequestID(r.Context()),
				)
				writeJSONError(w, http.StatusForbidden, "forbidden", "Insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// writeJSONError writes a JSON error response with the given status code and error details.
func writeJSONError(w http.ResponseWriter, status int, errCode, errDesc string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(fmt.Appendf(nil, `{"error":"%s","error_description":"%s"}`, errCode, errDesc))
}
