package httptransport

import (
	"encoding/json"
	"net/http"

	"sabha/internal/platform/middleware"
	"sabha/internal/roster"
)

// handleMyDetails returns the caller's own membership record with the date
// of birth normalised to DD/MM/YYYY for display.
func (h *Handler) handleMyDetails(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())

	entry, err := h.details.Load(r.Context(), sess.AccessToken)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (h *Handler) handleSaveDetails(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())

	var entry roster.Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if err := h.details.Submit(r.Context(), sess.AccessToken, entry); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
