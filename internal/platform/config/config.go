package config

import (
	"os"
	"time"
)

// Config captures everything the portal reads from the environment. The two
// external collaborators (community backend, auth provider) are configured by
// URL only; an empty BackendURL makes every backend operation fail fast with a
// configuration error instead of attempting a malformed request.
type Config struct {
	Addr string

	// BackendURL is the base URL of the community REST backend.
	BackendURL string

	// AuthURL and AuthAnonKey locate the external auth provider.
	AuthURL     string
	AuthAnonKey string

	SessionSigningKey string
	SessionTTL        time.Duration

	// RedisURL selects the redis session store when set; empty falls back to
	// the in-memory store.
	RedisURL string

	LogLevel  string
	LogFormat string
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	addr := os.Getenv("SABHA_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	signingKey := os.Getenv("SESSION_SIGNING_KEY")
	if signingKey == "" {
		// Development default - must be overridden in production.
		signingKey = "dev-secret-key-change-in-production"
	}

	ttl := 24 * time.Hour
	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			ttl = parsed
		}
	}

	return Config{
		Addr:              addr,
		BackendURL:        os.Getenv("BACKEND_URL"),
		AuthURL:           os.Getenv("AUTH_URL"),
		AuthAnonKey:       os.Getenv("AUTH_ANON_KEY"),
		SessionSigningKey: signingKey,
		SessionTTL:        ttl,
		RedisURL:          os.Getenv("REDIS_URL"),
		LogLevel:          os.Getenv("LOG_LEVEL"),
		LogFormat:         os.Getenv("LOG_FORMAT"),
	}
}
