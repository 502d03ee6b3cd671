package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sabha/internal/platform/middleware"
)

// NewRouter assembles the gateway routes. Everything under /api requires a
// gateway session; roster administration and announcement mutations
// additionally require the admin role.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(h.logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(h.logger))
	r.Use(middleware.Latency(h.metrics))

	r.Get("/healthz", h.handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.handleSignup)
		r.Post("/login", h.handleLogin)
		r.Post("/recover", h.handleRecover)
		r.Post("/reset-password", h.handleResetPassword)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession(h.codec, h.sessions, h.logger))
			r.Post("/logout", h.handleLogout)
			r.Get("/session", h.handleSession)
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RequireSession(h.codec, h.sessions, h.logger))

		r.Get("/me/details", h.handleMyDetails)
		r.Post("/me/details", h.handleSaveDetails)

		r.Get("/announcements", h.handleListAnnouncements)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole("admin", h.logger))

			r.Post("/announcements", h.handleCreateAnnouncement)
			r.Put("/announcements/{id}", h.handleUpdateAnnouncement)
			r.Delete("/announcements/{id}", h.handleDeleteAnnouncement)

			r.Get("/admin/users", h.handleListUsers)
			r.Get("/admin/users/export", h.handleExportUsers)
			r.Post("/admin/users/{id}", h.handleEditUser)
			r.Delete("/admin/users/{id}", h.handleDeleteUser)
		})
	})

	return r
}

func (h *Handler) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
