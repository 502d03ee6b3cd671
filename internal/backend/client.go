package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sabha/internal/roster"
)

// Client talks to the community REST backend. Every operation takes the
// bearer token explicitly; the client holds no session state and treats the
// credential as opaque.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a backend client for the given base URL. An empty URL is
// accepted here; operations then fail fast with ErrNotConfigured before any
// network call.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// do issues one authenticated JSON request. A non-2xx status becomes an
// *APIError with the body's error message when present; a 2xx body that fails
// to decode becomes an *APIError carrying the invalid-JSON sentinel message.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	resp, raw, err := c.roundTrip(ctx, method, path, token, body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apiError(resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &APIError{Status: resp.StatusCode, Message: invalidJSONMessage}
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, method, path, token string, body any) (*http.Response, []byte, error) {
	if c.baseURL == "" {
		return nil, nil, ErrNotConfigured
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("backend request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read response: %w", err)
	}
	return resp, raw, nil
}

func apiError(status int, raw []byte) *APIError {
	var body struct {
		Error string `json:"error"`
	}
	msg := ""
	if err := json.Unmarshal(raw, &body); err != nil {
		msg = invalidJSONMessage
	} else if body.Error != "" {
		msg = body.Error
	}
	if msg == "" {
		msg = http.StatusText(status)
		if msg == "" {
			msg = "Unknown error"
		}
	}
	return &APIError{Status: status, Message: msg}
}

// ListPersonalDetails fetches the full admin roster. The response is
// normalized to a slice: a JSON array is used as-is, an object with a "data"
// array is unwrapped, anything else yields an empty roster.
func (c *Client) ListPersonalDetails(ctx context.Context, token string, params url.Values) ([]roster.Entry, error) {
	path := "/api/admin/personal-details"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, token, nil, &raw); err != nil {
		return nil, err
	}
	return normalizeEntryList(raw), nil
}

func normalizeEntryList(raw json.RawMessage) []roster.Entry {
	var list []roster.Entry
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var wrapped struct {
		Data []roster.Entry `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Data != nil {
		return wrapped.Data
	}
	return []roster.Entry{}
}

// DeleteUser removes one roster entry by id.
func (c *Client) DeleteUser(ctx context.Context, token, id string) error {
	path := "/api/admin/delete-user?id=" + url.QueryEscape(id)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}

// EditUser upserts the full entry payload; the backend matches on id.
func (c *Client) EditUser(ctx context.Context, token string, entry roster.Entry) error {
	return c.do(ctx, http.MethodPost, "/api/admin/edit-user", token, entry, nil)
}

// MyPersonalDetails fetches the authenticated member's own record.
func (c *Client) MyPersonalDetails(ctx context.Context, token string) (roster.Entry, error) {
	var entry roster.Entry
	if err := c.do(ctx, http.MethodGet, "/api/personal-details/me", token, nil, &entry); err != nil {
		return roster.Entry{}, err
	}
	return entry, nil
}

// SavePersonalDetails upserts the authenticated member's own record.
func (c *Client) SavePersonalDetails(ctx context.Context, token string, entry roster.Entry) error {
	return c.do(ctx, http.MethodPost, "/api/personal-details", token, entry, nil)
}

// CheckRole asks the backend for the caller's role ("admin", "new_user", ...).
func (c *Client) CheckRole(ctx context.Context, token string) (string, error) {
	var body struct {
		Role string `json:"role"`
	}
	if err := c.do(ctx, http.MethodGet, "/check-role", token, nil, &body); err != nil {
		return "", err
	}
	return body.Role, nil
}

// ExportUsersCSV invokes the backend's server-side export variant and returns
// the raw blob. The admin table does not use it - it exports its own filtered
// view - but the operation is part of the backend surface.
func (c *Client) ExportUsersCSV(ctx context.Context, token string, params url.Values) ([]byte, error) {
	path := "/api/admin/export-users"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	resp, raw, err := c.roundTrip(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("failed to export CSV: status %d", resp.StatusCode)
	}
	return raw, nil
}
