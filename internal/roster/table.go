package roster

import (
	"context"
	"errors"
	"net/url"
	"sync"
)

var (
	// ErrEmptyToken rejects operations invoked without a credential.
	ErrEmptyToken = errors.New("authentication token required")

	// ErrMissingID rejects mutations on entries without an identifier.
	ErrMissingID = errors.New("entry id required")

	// ErrMutationInFlight rejects a second concurrent mutation on the same
	// entry. Mutations on different entries stay independent.
	ErrMutationInFlight = errors.New("mutation already in flight for this entry")
)

// API is the slice of the community backend the roster table consumes. The
// token is passed explicitly into every call; the table never reads ambient
// session state and never inspects the credential.
type API interface {
	ListPersonalDetails(ctx context.Context, token string, params url.Values) ([]Entry, error)
	DeleteUser(ctx context.Context, token, id string) error
	EditUser(ctx context.Context, token string, entry Entry) error
}

// Table is the admin roster component: it owns the in-memory roster for its
// lifetime, derives the filtered view, coordinates edit/delete mutations
// against the backend, and exports the current view as CSV.
//
// Mutations are pessimistic: the backend is awaited before local state
// changes, and a failed call leaves the roster untouched. A per-entry busy
// flag prevents duplicate concurrent mutations on one row.
type Table struct {
	mu  sync.Mutex
	api API

	entries []Entry
	filter  Filter
	pager   Pager
	loading bool
	busy    map[string]bool

	// loadGen invalidates stale in-flight loads: only the most recently
	// issued load may commit its result, so a rapid token change cannot be
	// clobbered by an older response arriving late.
	loadGen uint64
}

// NewTable builds an empty roster table backed by the given API.
func NewTable(api API) *Table {
	return &Table{
		api:   api,
		busy:  make(map[string]bool),
		pager: Pager{Page: 1, RowsPerPage: defaultRowsPerPage},
	}
}

// Load fetches the full roster once. Call it again whenever the token changes.
// On failure the roster is emptied and the error returned for the caller to
// surface; there is no retry. Entries without an id are dropped. A response
// belonging to a superseded load is discarded without touching state. Filter
// state persists across reloads.
func (t *Table) Load(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	t.mu.Lock()
	t.loadGen++
	gen := t.loadGen
	t.loading = true
	t.mu.Unlock()

	entries, err := t.api.ListPersonalDetails(ctx, token, nil)

	t.mu.Lock()
	defer t.mu.Unlock()
	if gen != t.loadGen {
		return nil
	}
	t.loading = false

	if err != nil {
		t.entries = nil
		return err
	}

	kept := entries[:0]
	for _, e := range entries {
		if e.ID != "" {
			kept = append(kept, e)
		}
	}
	t.entries = kept
	return nil
}

// Loading reports whether a load is in flight.
func (t *Table) Loading() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loading
}

// Size returns the unfiltered roster length.
func (t *Table) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// View returns the filtered subsequence of the roster in original order.
func (t *Table) View() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return ApplyFilter(t.entries, t.filter)
}

// CurrentPage returns the pager's slice of the filtered view together with
// the clamped pager that produced it.
func (t *Table) CurrentPage() ([]Entry, Pager) {
	t.mu.Lock()
	defer t.mu.Unlock()
	view := ApplyFilter(t.entries, t.filter)
	pager := t.pager.Clamp(len(view))
	return pager.Slice(view), pager
}

// PageCount returns the number of pages of the filtered view.
func (t *Table) PageCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	view := ApplyFilter(t.entries, t.filter)
	return t.pager.PageCount(len(view))
}

// SetSearch updates the free-text filter.
func (t *Table) SetSearch(q string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.filter.Search = q
}

// SetGender updates the gender filter ("All", "Male", "Female").
func (t *Table) SetGender(g string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.filter.Gender = g
}

// SetFieldFilter sets or, with an empty pattern, removes a per-field filter.
func (t *Table) SetFieldFilter(field, pattern string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if pattern == "" {
		delete(t.filter.Fields, field)
		return
	}
	if t.filter.Fields == nil {
		t.filter.Fields = make(map[string]string)
	}
	t.filter.Fields[field] = pattern
}

// ClearFilters resets search, gender and field filters.
func (t *Table) ClearFilters() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.filter = Filter{}
}

// FilterState returns a copy of the active filter.
func (t *Table) FilterState() Filter {
	t.mu.Lock()
	defer t.mu.Unlock()
	f := t.filter
	if t.filter.Fields != nil {
		f.Fields = make(map[string]string, len(t.filter.Fields))
		for k, v := range t.filter.Fields {
			f.Fields[k] = v
		}
	}
	return f
}

// SetPage moves the pager; the page is clamped on read.
func (t *Table) SetPage(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pager.Page = n
}

// SetRows changes the page size; n must be one of RowsPerPageOptions.
func (t *Table) SetRows(n int) error {
	if !ValidRows(n) {
		return errors.New("rows per page must be one of 5, 10, 20, 50")
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pager.RowsPerPage = n
	return nil
}

// Busy reports whether a mutation is in flight for the entry.
func (t *Table) Busy(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.busy[id]
}

// Delete removes the entry from the backend and, on success, from the local
// roster without a refetch. The caller is responsible for interactive
// confirmation before invoking it. On failure the roster is left unchanged.
func (t *Table) Delete(ctx context.Context, token, id string) error {
	if token == "" {
		return ErrEmptyToken
	}
	if id == "" {
		return ErrMissingID
	}
	if err := t.acquire(id); err != nil {
		return err
	}
	defer t.release(id)

	if err := t.api.DeleteUser(ctx, token, id); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for i, e := range t.entries {
		if e.ID == id {
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			break
		}
	}
	return nil
}

// Save upserts the full entry on the backend and, on success, replaces the
// matching roster entry in place, preserving its position. On failure the
// roster is left unchanged. Independent of Delete: neither rolls the other
// back.
func (t *Table) Save(ctx context.Context, token string, entry Entry) error {
	if token == "" {
		return ErrEmptyToken
	}
	if entry.ID == "" {
		return ErrMissingID
	}
	if err := t.acquire(entry.ID); err != nil {
		return err
	}
	defer t.release(entry.ID)

	if err := t.api.EditUser(ctx, token, entry); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.entries {
		if t.entries[i].ID == entry.ID {
			t.entries[i] = entry
			break
		}
	}
	return nil
}

// ExportCSV serializes the current filtered view (never the full roster) to
// CSV bytes. Synchronous; no network.
func (t *Table) ExportCSV() []byte {
	return ExportCSV(t.View())
}

func (t *Table) acquire(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.busy[id] {
		return ErrMutationInFlight
	}
	t.busy[id] = true
	return nil
}

func (t *Table) release(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.busy, id)
}
