package httptransport

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"sabha/internal/authn"
	"sabha/internal/backend"
	"sabha/internal/details"
)

type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// writeError translates the error taxonomy of the backend, the auth
// provider and the details validator into HTTP responses. Upstream status
// codes pass through unchanged; anything unclassified is a bad gateway.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		apiErr      *backend.APIError
		provErr     *authn.ProviderError
		validateErr *details.ValidationError
	)
	switch {
	case errors.As(err, &validateErr):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid input", Fields: validateErr.Fields})
	case errors.As(err, &apiErr):
		writeJSON(w, upstreamStatus(apiErr.Status), errorBody{Error: apiErr.Message})
	case errors.As(err, &provErr):
		writeJSON(w, upstreamStatus(provErr.Status), errorBody{Error: provErr.Message})
	case errors.Is(err, backend.ErrNotConfigured) || errors.Is(err, authn.ErrNotConfigured):
		writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: "upstream not configured"})
	default:
		h.logger.Error("upstream request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeJSON(w, http.StatusBadGateway, errorBody{Error: "upstream request failed"})
	}
}

// upstreamStatus guards against upstream responses carrying a status code
// that is not a valid HTTP error.
func upstreamStatus(status int) int {
	if status < 400 || status > 599 {
		return http.StatusBadGateway
	}
	return status
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: msg})
}
