package httpserver

import (
	"net/http"
	"time"
)

// New builds the gateway's HTTP server. The write timeout leaves headroom
// for handlers that wait on the community backend or the auth provider;
// roster exports of large filtered views are the slowest path.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
