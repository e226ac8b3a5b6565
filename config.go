package seolens

import (
	"time"

	"github.com/eringen/seolens/fetch"
)

// Config holds all configuration for a seolens server.
type Config struct {
	Addr        string // Listen address (default ":3000")
	DatabaseURL string // SQLite path or postgres:// URL (default "data/seolens.db")

	FetchTimeout time.Duration // Per-page fetch timeout (default 15s)
	MaxBodyBytes int64         // Largest page body read (default 5MB)
	UserAgent    string        // User-Agent sent when fetching (default fetch.DefaultUserAgent)

	RateLimit int // Analyses per client IP per minute (default 30)

	SessionSecret string // Cookie secret for flash messages (random per process if empty)
	CookieSecure  bool   // Set true for HTTPS

	HistoryCacheTTL  time.Duration // History list cache TTL (default 30s)
	HistoryQueueSize int           // Pending history writes before dropping (default 64)
}

func (c *Config) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = "data/seolens.db"
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = fetch.DefaultTimeout
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = fetch.DefaultMaxBytes
	}
	if c.UserAgent == "" {
		c.UserAgent = fetch.DefaultUserAgent
	}
	if c.RateLimit <= 0 {
		c.RateLimit = 30
	}
	if c.HistoryCacheTTL <= 0 {
		c.HistoryCacheTTL = 30 * time.Second
	}
	if c.HistoryQueueSize <= 0 {
		c.HistoryQueueSize = 64
	}
}

// ConfigFromEnv builds a Config from SEOLENS_* environment variables.
// Unset or unparsable values fall back to the defaults.
func ConfigFromEnv() Config {
	return Config{
		Addr:             EnvOr("SEOLENS_ADDR", ""),
		DatabaseURL:      EnvOr("SEOLENS_DATABASE_URL", ""),
		FetchTimeout:     envDuration("SEOLENS_FETCH_TIMEOUT"),
		MaxBodyBytes:     int64(envInt("SEOLENS_MAX_BODY_BYTES")),
		UserAgent:        EnvOr("SEOLENS_USER_AGENT", ""),
		RateLimit:        envInt("SEOLENS_RATE_LIMIT"),
		SessionSecret:    EnvOr("SEOLENS_SESSION_SECRET", ""),
		CookieSecure:     envBool("SEOLENS_COOKIE_SECURE"),
		HistoryCacheTTL:  envDuration("SEOLENS_HISTORY_CACHE_TTL"),
		HistoryQueueSize: envInt("SEOLENS_HISTORY_QUEUE"),
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithFetcher replaces the HTTP page fetcher.
func WithFetcher(f Fetcher) Option {
	return func(a *App) {
		a.Fetcher = f
	}
}

// WithHistoryStore replaces the database-backed history store. The App
// does not close a store supplied this way.
func WithHistoryStore(s HistoryStore) Option {
	return func(a *App) {
		a.History = s
	}
}

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are set up.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}
