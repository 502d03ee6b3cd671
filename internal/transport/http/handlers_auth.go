package httptransport

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"sabha/internal/platform/middleware"
	"sabha/internal/session"
)

type credentialsRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RedirectTo string `json:"redirect_to,omitempty"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	Role      string    `json:"role"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// handleLogin exchanges credentials with the auth provider, captures the
// caller's role from the backend, and issues a gateway session token. The
// upstream access token never leaves the gateway.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeBadRequest(w, "email and password are required")
		return
	}

	provSess, err := h.auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		h.metrics.IncrementLogins("error")
		h.writeError(w, r, err)
		return
	}

	role, err := h.backend.CheckRole(r.Context(), provSess.AccessToken)
	if err != nil {
		// The role gate is re-checked on every admin route; a failed
		// lookup at login only downgrades the session.
		h.logger.Warn("role lookup failed", slog.String("error", err.Error()))
		role = ""
	}

	now := h.now()
	sess := &session.Session{
		ID:           uuid.NewString(),
		UserID:       provSess.User.ID,
		Email:        provSess.User.Email,
		Role:         role,
		AccessToken:  provSess.AccessToken,
		RefreshToken: provSess.RefreshToken,
		CreatedAt:    now,
		ExpiresAt:    now.Add(h.sessionLifetime(provSess.ExpiresIn)),
	}
	if err := h.sessions.Create(r.Context(), sess); err != nil {
		h.metrics.IncrementLogins("error")
		h.logger.Error("session create failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "could not create session"})
		return
	}

	token, err := h.codec.Issue(sess.ID)
	if err != nil {
		h.metrics.IncrementLogins("error")
		h.logger.Error("token issue failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "could not create session"})
		return
	}

	h.metrics.IncrementLogins("ok")
	writeJSON(w, http.StatusOK, loginResponse{
		Token:     token,
		Role:      sess.Role,
		UserID:    sess.UserID,
		Email:     sess.Email,
		ExpiresAt: sess.ExpiresAt,
	})
}

// sessionLifetime caps the gateway session at the provider token's
// lifetime when the provider reports one shorter than the configured TTL.
func (h *Handler) sessionLifetime(expiresIn int) time.Duration {
	ttl := h.sessionTTL
	if expiresIn > 0 {
		if provider := time.Duration(expiresIn) * time.Second; provider < ttl {
			ttl = provider
		}
	}
	return ttl
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeBadRequest(w, "email and password are required")
		return
	}
	if err := h.auth.SignUp(r.Context(), req.Email, req.Password, req.RedirectTo); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"message": "confirmation email sent"})
}

func (h *Handler) handleRecover(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.Email == "" {
		writeBadRequest(w, "email is required")
		return
	}
	if err := h.auth.ResetPassword(r.Context(), req.Email, req.RedirectTo); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"message": "recovery email sent"})
}

type resetPasswordRequest struct {
	TokenHash string `json:"token_hash"`
	Password  string `json:"password"`
}

// handleResetPassword completes a recovery flow: the emailed token hash is
// verified with the provider, then the resulting short-lived session is
// used to set the new password.
func (h *Handler) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.TokenHash == "" || req.Password == "" {
		writeBadRequest(w, "token_hash and password are required")
		return
	}

	provSess, err := h.auth.VerifyOTP(r.Context(), req.TokenHash, "recovery")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.auth.UpdateUser(r.Context(), provSess.AccessToken, req.Password); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())

	// Revoke upstream first; a provider failure still tears down the
	// gateway session.
	if err := h.auth.SignOut(r.Context(), sess.AccessToken); err != nil {
		h.logger.Warn("provider sign-out failed", slog.String("error", err.Error()))
	}
	if err := h.sessions.Delete(r.Context(), sess.ID); err != nil {
		h.logger.Warn("session delete failed", slog.String("error", err.Error()))
	}
	writeJSON(w, http.StatusNoContent, nil)
}

type sessionResponse struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (h *Handler) handleSession(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	writeJSON(w, http.StatusOK, sessionResponse{
		UserID:    sess.UserID,
		Email:     sess.Email,
		Role:      sess.Role,
		ExpiresAt: sess.ExpiresAt,
	})
}
