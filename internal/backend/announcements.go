package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"sabha/internal/announce"
)

// ListAnnouncements fetches the board, newest first (backend ordering).
func (c *Client) ListAnnouncements(ctx context.Context, token string) ([]announce.Announcement, error) {
	var list []announce.Announcement
	if err := c.do(ctx, http.MethodGet, "/api/announcements", token, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// CreateAnnouncement posts a new announcement and returns the created row.
// Some backend versions wrap the row in a "data" field; both shapes are
// accepted.
func (c *Client) CreateAnnouncement(ctx context.Context, token, title, content string) (announce.Announcement, error) {
	payload := map[string]string{"title": title, "content": content}

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/api/announcements", token, payload, &raw); err != nil {
		return announce.Announcement{}, err
	}

	var wrapped struct {
		Data *announce.Announcement `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Data != nil {
		return *wrapped.Data, nil
	}
	var created announce.Announcement
	if err := json.Unmarshal(raw, &created); err != nil {
		return announce.Announcement{}, &APIError{Status: http.StatusOK, Message: invalidJSONMessage}
	}
	return created, nil
}

// UpdateAnnouncement replaces the title and content of one announcement.
func (c *Client) UpdateAnnouncement(ctx context.Context, token, id, title, content string) error {
	payload := map[string]string{"title": title, "content": content}
	return c.do(ctx, http.MethodPut, "/api/announcements/"+url.PathEscape(id), token, payload, nil)
}

// DeleteAnnouncement removes one announcement by id.
func (c *Client) DeleteAnnouncement(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/announcements/"+url.PathEscape(id), token, nil, nil)
}
