// Package seolens is an SEO metadata analyzer served over HTTP with Go,
// Echo, and templ. It fetches a page, extracts its title, description and
// social tags, audits them, and keeps a short history of analyzed URLs.
package seolens

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	glog "github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/eringen/seolens/fetch"
	"github.com/eringen/seolens/history"
	"github.com/eringen/seolens/seo"
)

// App is the central seolens application. It wires together the fetcher,
// history store, cache, handlers and middleware.
type App struct {
	Config  Config
	Echo    *echo.Echo
	Fetcher Fetcher
	History HistoryStore
	Cache   *HistoryCache

	recorder     *history.Recorder
	limiter      *Limiter
	metrics      *Metrics
	registry     *prometheus.Registry
	ownedStore   *history.Store
	customRoutes []func(*App)
	initialized  bool
}

// New creates an App with the given configuration.
func New(cfg Config, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:   cfg,
		Echo:     echo.New(),
		registry: prometheus.NewRegistry(),
	}
	a.Echo.HideBanner = true
	a.Echo.Logger.SetLevel(glog.INFO)

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Init opens the history store, starts the background recorder and
// registers middleware and routes. Start calls it when needed.
func (a *App) Init() error {
	if a.initialized {
		return nil
	}

	if a.Config.SessionSecret == "" {
		secret, err := randomSecret()
		if err != nil {
			return fmt.Errorf("seolens: session secret: %w", err)
		}
		a.Config.SessionSecret = secret
		a.Echo.Logger.Warn("SEOLENS_SESSION_SECRET not set, flash messages will not survive a restart")
	}

	if a.Fetcher == nil {
		a.Fetcher = fetch.New(fetch.Config{
			Timeout:   a.Config.FetchTimeout,
			UserAgent: a.Config.UserAgent,
			MaxBytes:  a.Config.MaxBodyBytes,
		})
	}

	if a.History == nil {
		store, err := history.Open(a.Config.DatabaseURL)
		if err != nil {
			return fmt.Errorf("seolens: init history: %w", err)
		}
		a.ownedStore = store
		a.History = store
		a.Echo.Logger.Infof("history store: %s", store.Driver())
	}

	a.metrics = newMetrics(a.registry)
	a.Cache = NewHistoryCache(a.History, a.Config.HistoryCacheTTL)
	a.limiter = NewLimiter(a.Config.RateLimit, time.Minute)
	a.recorder = history.NewRecorder(a.History, a.Echo.Logger,
		history.WithQueueSize(a.Config.HistoryQueueSize),
		history.OnAppend(func(history.Item) { a.Cache.Invalidate() }),
		history.OnError(a.metrics.historyFailure),
	)

	a.Echo.Validator = newRequestValidator()
	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	a.initialized = true
	return nil
}

// Start initializes the app if needed and serves until the server is shut down.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server gracefully and releases resources.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if cerr := a.Close(); err == nil {
		err = cerr
	}
	return err
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/healthz", handleHealth)
	e.GET("/metrics", a.metricsHandler())

	// JSON API
	api := e.Group("/api")
	api.POST("/analyze", a.handleAnalyze)
	api.GET("/history", a.handleHistoryList)
	api.DELETE("/history", a.handleHistoryClear)

	// HTML pages
	e.GET("/", a.handleHome)
	e.GET("/report", a.handleReport)
	e.GET("/history", a.handleHistoryPage)
	e.POST("/history/clear", a.handleHistoryClearForm)
}

// Close drains pending history writes and closes the store if the App
// opened it. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.recorder != nil {
		a.recorder.Close()
	}
	if a.limiter != nil {
		a.limiter.Stop()
	}
	if a.ownedStore != nil {
		return a.ownedStore.Close()
	}
	return nil
}

// analyze fetches url and audits its metadata. Successful analyses are
// recorded in history without waiting for the write.
func (a *App) analyze(ctx context.Context, url string) (seo.Report, error) {
	start := time.Now()
	html, err := a.Fetcher.Fetch(ctx, url)
	if err != nil {
		a.metrics.fetchFailure(err)
		return seo.Report{}, err
	}
	report := seo.Analyze(html)
	a.metrics.observe(report, time.Since(start))
	a.recorder.Record(url, report.Meta.Title)
	return report, nil
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
