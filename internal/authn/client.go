package authn

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotConfigured is returned before any network I/O when the auth provider
// URL is missing.
var ErrNotConfigured = errors.New("auth provider URL not configured")

// User identifies the authenticated account.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is the provider's token response. The access token is an opaque
// credential from the portal's point of view; it is forwarded to the
// community backend, never parsed.
type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// ProviderError is a non-2xx response from the auth provider.
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("auth provider error [%d]: %s", e.Status, e.Message)
}

// Client talks to a GoTrue-style auth provider over REST.
type Client struct {
	baseURL string
	anonKey string
	http    *http.Client
}

// New builds an auth provider client. An empty URL is accepted; operations
// then fail fast with ErrNotConfigured.
func New(baseURL, anonKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SignIn exchanges email and password for a session (password grant).
func (c *Client) SignIn(ctx context.Context, email, password string) (Session, error) {
	payload := map[string]string{"email": email, "password": password}
	var sess Session
	if err := c.do(ctx, http.MethodPost, "/token?grant_type=password", "", payload, &sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// Refresh exchanges a refresh token for a fresh session.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (Session, error) {
	payload := map[string]string{"refresh_token": refreshToken}
	var sess Session
	if err := c.do(ctx, http.MethodPost, "/token?grant_type=refresh_token", "", payload, &sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// SignUp registers a new account. The provider sends a confirmation email
// pointing at redirectTo when configured to do so.
func (c *Client) SignUp(ctx context.Context, email, password, redirectTo string) error {
	path := "/signup"
	if redirectTo != "" {
		path += "?redirect_to=" + url.QueryEscape(redirectTo)
	}
	payload := map[string]string{"email": email, "password": password}
	return c.do(ctx, http.MethodPost, path, "", payload, nil)
}

// SignOut revokes the session behind the access token.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	return c.do(ctx, http.MethodPost, "/logout", accessToken, nil, nil)
}

// ResetPassword sends a recovery email; the embedded link lands on redirectTo
// carrying a recovery token hash.
func (c *Client) ResetPassword(ctx context.Context, email, redirectTo string) error {
	path := "/recover"
	if redirectTo != "" {
		path += "?redirect_to=" + url.QueryEscape(redirectTo)
	}
	payload := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, path, "", payload, nil)
}

// VerifyOTP exchanges a recovery token hash for a session, which can then be
// used to update the password.
func (c *Client) VerifyOTP(ctx context.Context, tokenHash, otpType string) (Session, error) {
	payload := map[string]string{"token_hash": tokenHash, "type": otpType}
	var sess Session
	if err := c.do(ctx, http.MethodPost, "/verify", "", payload, &sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// UpdateUser sets a new password for the account behind the access token.
func (c *Client) UpdateUser(ctx context.Context, accessToken, password string) error {
	payload := map[string]string{"password": password}
	return c.do(ctx, http.MethodPut, "/user", accessToken, payload, nil)
}

func (c *Client) do(ctx context.Context, method, path, accessToken string, body, out any) error {
	if c.baseURL == "" {
		return ErrNotConfigured
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.anonKey != "" {
		req.Header.Set("apikey", c.anonKey)
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("auth provider request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return providerError(resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &ProviderError{Status: resp.StatusCode, Message: "invalid JSON response"}
	}
	return nil
}

// providerError extracts the most descriptive message the provider offers;
// GoTrue variants use error_description, msg or error depending on endpoint.
func providerError(status int, raw []byte) *ProviderError {
	var body struct {
		ErrorDescription string `json:"error_description"`
		Msg              string `json:"msg"`
		ErrorField       string `json:"error"`
	}
	msg := ""
	if err := json.Unmarshal(raw, &body); err == nil {
		switch {
		case body.ErrorDescription != "":
			msg = body.ErrorDescription
		case body.Msg != "":
			msg = body.Msg
		case body.ErrorField != "":
			msg = body.ErrorField
		}
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &ProviderError{Status: status, Message: msg}
}
