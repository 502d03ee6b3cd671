package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"sabha/internal/authn"
	"sabha/internal/backend"
	"sabha/internal/platform/config"
	"sabha/internal/platform/httpserver"
	"sabha/internal/platform/logger"
	"sabha/internal/platform/metrics"
	"sabha/internal/platform/redis"
	rostermetrics "sabha/internal/roster/metrics"
	"sabha/internal/session"
	httptransport "sabha/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal packages.
func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	m := metrics.New()

	// Sessions live in redis when a URL is configured, otherwise in memory.
	var sessions session.Store = session.NewInMemoryStore()
	if cfg.RedisURL != "" {
		rdb, err := redis.New(cfg.RedisURL)
		if err != nil {
			log.Error("redis connect failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer rdb.Close()
		sessions = session.NewRedisStore(rdb.Client)
		log.Info("session store: redis")
	} else {
		log.Info("session store: memory")
	}

	handler := httptransport.NewHandler(httptransport.Deps{
		Logger:        log,
		Metrics:       m,
		RosterMetrics: rostermetrics.New(),
		Auth:          authn.New(cfg.AuthURL, cfg.AuthAnonKey),
		Backend:       backend.New(cfg.BackendURL),
		Sessions:      sessions,
		Codec:         session.NewCodec(cfg.SessionSigningKey, "sabha", cfg.SessionTTL),
		SessionTTL:    cfg.SessionTTL,
	})
	router := httptransport.NewRouter(handler)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting sabha gateway", slog.String("addr", cfg.Addr))

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log.Info("server stopped")
}
