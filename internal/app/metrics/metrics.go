package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the storefront's Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "artisan",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "artisan",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"method", "route"},
	)

	activeSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "artisan",
			Subsystem: "sessions",
			Name:      "active",
			Help:      "Number of storefront sessions held in memory.",
		},
	)

	cartAdditions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "artisan",
			Subsystem: "cart",
			Name:      "additions_total",
			Help:      "Artworks added to a cart.",
		},
	)

	checkouts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "artisan",
			Subsystem: "checkout",
			Name:      "payments_total",
			Help:      "Checkout attempts by outcome.",
		},
		[]string{"provider", "outcome"},
	)

	authCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "artisan",
			Subsystem: "auth",
			Name:      "gateway_calls_total",
			Help:      "Calls to the auth gateway by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	notifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "artisan",
			Subsystem: "notifications",
			Name:      "emitted_total",
			Help:      "Toasts emitted by severity.",
		},
		[]string{"severity"},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		activeSessions,
		cartAdditions,
		checkouts,
		authCalls,
		notifications,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler exposes the registry for scraping.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// GinMiddleware records request counts and latency per route template.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func SessionOpened() { activeSessions.Inc() }

func SessionClosed() { activeSessions.Dec() }

func RecordCartAddition() { cartAdditions.Inc() }

func RecordCheckout(provider string, ok bool) {
	if provider == "" {
		provider = "unknown"
	}
	outcome := "success"
	if !ok {
		outcome = "failure"
	}
	checkouts.WithLabelValues(provider, outcome).Inc()
}

func RecordAuthCall(operation string, ok bool) {
	outcome := "success"
	if !ok {
		outcome = "failure"
	}
	authCalls.WithLabelValues(operation, outcome).Inc()
}

func RecordNotification(severity string) {
	notifications.WithLabelValues(severity).Inc()
}
