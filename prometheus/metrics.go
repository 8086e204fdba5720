package prometheus

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Counter metrics
var (
	// Login counters
	LoginCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_login_total",
			Help: "Total number of login attempts",
		},
	)

	// Signup counters
	SignupCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_signup_total",
			Help: "Total number of signups",
		},
	)

	// Tenant operation counter
	TenantOperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_tenant_operations_total",
			Help: "Total number of tenant operations",
		},
		[]string{"operation"}, // operation can be "create", "reconnect", "list", etc.
	)

	// Dashboard view counter by aggregation endpoint
	DashboardViewCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_views_total",
			Help: "Total number of dashboard aggregation reads by view",
		},
		[]string{"view"},
	)

	// HTTP request counter by endpoint and status
	HTTPRequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_http_requests_total",
			Help: "Total number of HTTP requests by endpoint and status",
		},
		[]string{"endpoint", "method", "status"},
	)

	// Error counters
	AuthErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_auth_errors_total",
			Help: "Total number of authentication errors",
		},
		[]string{"type"}, // type can be "login_failure", "invalid_token", etc.
	)
)

// Histogram metrics
var (
	// Request duration
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)
)

// Gauge metrics
var (
	// ActiveSessionGauge tracks whether a session is currently active
	ActiveSessionGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "dashboard_active_sessions",
			Help: "Number of currently active sessions",
		},
	)

	// InfoGauge exposes build information
	InfoGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dashboard_info",
			Help: "Service information",
		},
		[]string{"version"},
	)
)

var registerOnce sync.Once

// InitMetrics registers all metrics with the default registry. Safe
// to call more than once.
func InitMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(LoginCounter)
		prometheus.MustRegister(SignupCounter)
		prometheus.MustRegister(TenantOperationCounter)
		prometheus.MustRegister(DashboardViewCounter)
		prometheus.MustRegister(HTTPRequestCounter)
		prometheus.MustRegister(AuthErrorCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(ActiveSessionGauge)
		prometheus.MustRegister(InfoGauge)

		InfoGauge.With(prometheus.Labels{"version": "1.0.0"}).Set(1)
	})
}

// GetPrometheusHandler returns an HTTP handler for the Prometheus metrics
func GetPrometheusHandler() http.Handler {
	return promhttp.Handler()
}

// MetricsMiddleware creates a middleware function that captures metrics for each request
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(c.Response().Status)
			endpoint := c.Path()
			method := c.Request().Method

			RequestDuration.With(prometheus.Labels{
				"endpoint": endpoint,
				"method":   method,
				"status":   status,
			}).Observe(duration)

			HTTPRequestCounter.With(prometheus.Labels{
				"endpoint": endpoint,
				"method":   method,
				"status":   status,
			}).Inc()

			return err
		}
	}
}

// RecordAuthError records an authentication error by type
func RecordAuthError(errorType string) {
	AuthErrorCounter.With(prometheus.Labels{"type": errorType}).Inc()
}

// RecordTenantOperation records a tenant operation by name
func RecordTenantOperation(operation string) {
	TenantOperationCounter.With(prometheus.Labels{"operation": operation}).Inc()
}

// RecordDashboardView records a read of an aggregation view
func RecordDashboardView(view string) {
	DashboardViewCounter.With(prometheus.Labels{"view": view}).Inc()
}

// SetSessionActive flips the active session gauge
func SetSessionActive(active bool) {
	if active {
		ActiveSessionGauge.Set(1)
		return
	}
	ActiveSessionGauge.Set(0)
}
