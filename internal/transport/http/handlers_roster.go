package httptransport

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"sabha/internal/platform/middleware"
	"sabha/internal/roster"
)

type usersPage struct {
	Users    []roster.Entry `json:"users"`
	Total    int            `json:"total"`
	Filtered int            `json:"filtered"`
	Page     int            `json:"page"`
	Pages    int            `json:"pages"`
	Rows     int            `json:"rows"`
}

// filterFromQuery builds a roster filter from the request: ?search= and
// ?gender= map to the global gates, and f.<attribute>= to per-field
// substring filters.
func filterFromQuery(r *http.Request) roster.Filter {
	q := r.URL.Query()
	f := roster.Filter{
		Search: q.Get("search"),
		Gender: roster.GenderAll,
	}
	if g := q.Get("gender"); g != "" {
		f.Gender = g
	}
	for key, vals := range q {
		name, ok := strings.CutPrefix(key, "f.")
		if !ok || len(vals) == 0 || vals[0] == "" {
			continue
		}
		if f.Fields == nil {
			f.Fields = make(map[string]string)
		}
		f.Fields[name] = vals[0]
	}
	return f
}

// handleListUsers returns one page of the filtered roster. Page numbers are
// clamped against the filtered count, so a filter that shrinks the roster
// never yields an empty page while matches remain.
func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())

	entries, err := h.backend.ListPersonalDetails(r.Context(), sess.AccessToken, nil)
	if err != nil {
		h.roster.IncrementLoad("error")
		h.writeError(w, r, err)
		return
	}
	h.roster.IncrementLoad("ok")
	view := roster.ApplyFilter(entries, filterFromQuery(r))

	pager := roster.Pager{Page: 1}
	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		pager.Page = p
	}
	if n, err := strconv.Atoi(r.URL.Query().Get("rows")); err == nil && roster.ValidRows(n) {
		pager.RowsPerPage = n
	}
	pager = pager.Clamp(len(view))

	page := pager.Slice(view)
	if page == nil {
		page = []roster.Entry{}
	}
	writeJSON(w, http.StatusOK, usersPage{
		Users:    page,
		Total:    len(entries),
		Filtered: len(view),
		Page:     pager.Page,
		Pages:    pager.PageCount(len(view)),
		Rows:     pager.RowsPerPage,
	})
}

// handleExportUsers streams the filtered roster as a CSV attachment. The
// export covers every filtered row, not just the current page.
func (h *Handler) handleExportUsers(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())

	entries, err := h.backend.ListPersonalDetails(r.Context(), sess.AccessToken, nil)
	if err != nil {
		h.roster.IncrementLoad("error")
		h.writeError(w, r, err)
		return
	}
	h.roster.IncrementLoad("ok")
	view := roster.ApplyFilter(entries, filterFromQuery(r))

	w.Header().Set("Content-Type", roster.CSVContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+roster.CSVFileName+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(roster.ExportCSV(view))
	h.roster.IncrementExport()
}

func (h *Handler) handleEditUser(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())

	var entry roster.Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	entry.ID = chi.URLParam(r, "id")

	if err := h.backend.EditUser(r.Context(), sess.AccessToken, entry); err != nil {
		h.roster.IncrementMutation("edit", "error")
		h.writeError(w, r, err)
		return
	}
	h.roster.IncrementMutation("edit", "ok")
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())

	if err := h.backend.DeleteUser(r.Context(), sess.AccessToken, chi.URLParam(r, "id")); err != nil {
		h.roster.IncrementMutation("delete", "error")
		h.writeError(w, r, err)
		return
	}
	h.roster.IncrementMutation("delete", "ok")
	writeJSON(w, http.StatusNoContent, nil)
}
