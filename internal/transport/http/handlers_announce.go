package httptransport

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sabha/internal/announce"
	"sabha/internal/platform/middleware"
)

type announcementRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *Handler) handleListAnnouncements(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())

	items, err := h.backend.ListAnnouncements(r.Context(), sess.AccessToken)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if items == nil {
		items = []announce.Announcement{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) handleCreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())

	var req announcementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.Title == "" || req.Content == "" {
		writeBadRequest(w, "title and content are required")
		return
	}

	created, err := h.backend.CreateAnnouncement(r.Context(), sess.AccessToken, req.Title, req.Content)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleUpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())

	var req announcementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.Title == "" || req.Content == "" {
		writeBadRequest(w, "title and content are required")
		return
	}

	if err := h.backend.UpdateAnnouncement(r.Context(), sess.AccessToken, chi.URLParam(r, "id"), req.Title, req.Content); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) handleDeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())

	if err := h.backend.DeleteAnnouncement(r.Context(), sess.AccessToken, chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
