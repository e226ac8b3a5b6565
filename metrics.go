package seolens

import (
	"errors"
	"strings"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/eringen/seolens/fetch"
	"github.com/eringen/seolens/history"
	"github.com/eringen/seolens/seo"
)

const metricsSubsystem = "seolens"

// Metrics holds the analyzer's own Prometheus collectors. HTTP request
// metrics come from the echoprometheus middleware on the same registry.
type Metrics struct {
	Analyses        *prometheus.CounterVec
	Issues          *prometheus.CounterVec
	Score           prometheus.Histogram
	AnalyzeDuration prometheus.Histogram
	FetchFailures   *prometheus.CounterVec
	HistoryFailures *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Analyses: f.NewCounterVec(prometheus.CounterOpts{
			Subsystem: metricsSubsystem,
			Name:      "analyses_total",
			Help:      "Completed analyses by rating",
		}, []string{"rating"}),
		Issues: f.NewCounterVec(prometheus.CounterOpts{
			Subsystem: metricsSubsystem,
			Name:      "issues_total",
			Help:      "Issues reported by level",
		}, []string{"level"}),
		Score: f.NewHistogram(prometheus.HistogramOpts{
			Subsystem: metricsSubsystem,
			Name:      "score",
			Help:      "Distribution of page scores",
			Buckets:   []float64{0, 25, 50, 65, 80, 90, 100},
		}),
		AnalyzeDuration: f.NewHistogram(prometheus.HistogramOpts{
			Subsystem: metricsSubsystem,
			Name:      "analyze_duration_seconds",
			Help:      "Time to fetch and audit a page",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		}),
		FetchFailures: f.NewCounterVec(prometheus.CounterOpts{
			Subsystem: metricsSubsystem,
			Name:      "fetch_failures_total",
			Help:      "Pages that could not be fetched by reason",
		}, []string{"reason"}),
		HistoryFailures: f.NewCounterVec(prometheus.CounterOpts{
			Subsystem: metricsSubsystem,
			Name:      "history_write_failures_total",
			Help:      "History entries that were not saved by reason",
		}, []string{"reason"}),
	}
}

func (m *Metrics) observe(r seo.Report, elapsed time.Duration) {
	m.Analyses.WithLabelValues(string(r.Rating)).Inc()
	for level, n := range seo.CountLevels(r.Issues) {
		m.Issues.WithLabelValues(string(level)).Add(float64(n))
	}
	m.Score.Observe(float64(r.Score))
	m.AnalyzeDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) fetchFailure(err error) {
	m.FetchFailures.WithLabelValues(fetchFailureReason(err)).Inc()
}

func (m *Metrics) historyFailure(err error) {
	reason := "error"
	if errors.Is(err, history.ErrQueueFull) {
		reason = "dropped"
	}
	m.HistoryFailures.WithLabelValues(reason).Inc()
}

func fetchFailureReason(err error) string {
	var fe *fetch.Error
	if !errors.As(err, &fe) {
		return "other"
	}
	switch {
	case fe.Timeout():
		return "timeout"
	case fe.StatusCode != 0:
		return "status"
	}
	return "network"
}

func (a *App) metricsMiddleware() echo.MiddlewareFunc {
	return echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  metricsSubsystem,
		Registerer: a.registry,
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			return path == "/metrics" || path == "/healthz" || strings.HasPrefix(path, "/public/")
		},
	})
}

func (a *App) metricsHandler() echo.HandlerFunc {
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: a.registry,
	})
}
