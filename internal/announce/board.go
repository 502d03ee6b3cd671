package announce

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

var (
	// ErrSubmissionInFlight rejects a create/update while another one is
	// still awaiting the backend.
	ErrSubmissionInFlight = errors.New("announcement submission already in flight")

	// ErrDeleteInFlight rejects a second concurrent delete of one
	// announcement; deletes of different announcements stay independent.
	ErrDeleteInFlight = errors.New("announcement delete already in flight")
)

// API is the slice of the community backend the board consumes.
type API interface {
	ListAnnouncements(ctx context.Context, token string) ([]Announcement, error)
	CreateAnnouncement(ctx context.Context, token, title, content string) (Announcement, error)
	UpdateAnnouncement(ctx context.Context, token, id, title, content string) error
	DeleteAnnouncement(ctx context.Context, token, id string) error
	CheckRole(ctx context.Context, token string) (string, error)
}

// Board is the announcements component. Like the roster table it is
// pessimistic: the backend is awaited before local state changes, and a
// failure leaves the list untouched.
type Board struct {
	mu  sync.Mutex
	api API

	items      []Announcement
	loading    bool
	submitting bool
	deleting   map[string]bool
	isAdmin    bool

	now func() time.Time
}

// NewBoard builds an empty board backed by the given API.
func NewBoard(api API) *Board {
	return &Board{
		api:      api,
		deleting: make(map[string]bool),
		now:      time.Now,
	}
}

// Load fetches the announcement list. On failure the current list is left
// unchanged and the error returned.
func (b *Board) Load(ctx context.Context, token string) error {
	b.mu.Lock()
	b.loading = true
	b.mu.Unlock()

	items, err := b.api.ListAnnouncements(ctx, token)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.loading = false
	if err != nil {
		return err
	}
	b.items = items
	return nil
}

// RefreshRole asks the backend whether the caller is an administrator. On
// error the admin flag is cleared.
func (b *Board) RefreshRole(ctx context.Context, token string) error {
	role, err := b.api.CheckRole(ctx, token)

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.isAdmin = false
		return err
	}
	b.isAdmin = strings.EqualFold(role, "admin")
	return nil
}

// IsAdmin reports the last known role check result.
func (b *Board) IsAdmin() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.isAdmin
}

// Loading reports whether a list fetch is in flight.
func (b *Board) Loading() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loading
}

// Items returns a copy of the board in display order (newest first as
// returned by the backend; creations are prepended).
func (b *Board) Items() []Announcement {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Announcement, len(b.items))
	copy(out, b.items)
	return out
}

// Create posts a new announcement and prepends it on success.
func (b *Board) Create(ctx context.Context, token, title, content string) (Announcement, error) {
	if err := b.beginSubmit(); err != nil {
		return Announcement{}, err
	}
	defer b.endSubmit()

	created, err := b.api.CreateAnnouncement(ctx, token, title, content)
	if err != nil {
		return Announcement{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append([]Announcement{created}, b.items...)
	return created, nil
}

// Update replaces one announcement's title and content in place on success,
// stamping UpdatedAt locally so the view reflects the change without a
// refetch.
func (b *Board) Update(ctx context.Context, token, id, title, content string) error {
	if err := b.beginSubmit(); err != nil {
		return err
	}
	defer b.endSubmit()

	if err := b.api.UpdateAnnouncement(ctx, token, id, title, content); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.items {
		if b.items[i].ID == id {
			b.items[i].Title = title
			b.items[i].Content = content
			b.items[i].UpdatedAt = b.now().UTC().Format(time.RFC3339)
			break
		}
	}
	return nil
}

// Delete removes one announcement on success. The caller confirms
// interactively before invoking it.
func (b *Board) Delete(ctx context.Context, token, id string) error {
	b.mu.Lock()
	if b.deleting[id] {
		b.mu.Unlock()
		return ErrDeleteInFlight
	}
	b.deleting[id] = true
	b.mu.Unlock()
	defer func() {
		b.mu.Lock()
		delete(b.deleting, id)
		b.mu.Unlock()
	}()

	if err := b.api.DeleteAnnouncement(ctx, token, id); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.items {
		if b.items[i].ID == id {
			b.items = append(b.items[:i], b.items[i+1:]...)
			break
		}
	}
	return nil
}

// Deleting reports whether a delete is in flight for the announcement.
func (b *Board) Deleting(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.deleting[id]
}

func (b *Board) beginSubmit() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.submitting {
		return ErrSubmissionInFlight
	}
	b.submitting = true
	return nil
}

func (b *Board) endSubmit() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.submitting = false
}
