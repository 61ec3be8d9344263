package prometheus

import (
	"time"

	"github.com/JoaquinSangiorgio/proyectoInmoweb/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec

	// Database operation metrics
	DbOperationDuration *prometheus.HistogramVec

	// Entity metrics
	EntityOperationsCounter *prometheus.CounterVec

	// Checkout metrics
	CheckoutCounter         *prometheus.CounterVec
	CheckoutFallbackCounter prometheus.Counter

	// Authentication metrics
	LoginAttemptsCounter prometheus.Counter
	LoginErrorsCounter   prometheus.Counter
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(cfg *config.Config) {
	prefix := cfg.Metrics.Prefix

	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	DbOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	EntityOperationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_entity_operations_total",
			Help: "Total number of entity operations",
		},
		[]string{"entity", "operation"},
	)

	CheckoutCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_checkout_total",
			Help: "Total number of checkout creations",
		},
		[]string{"result"},
	)

	CheckoutFallbackCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_checkout_url_fallback_total",
			Help: "Total number of checkouts resolved to the hardcoded landing page",
		},
	)

	LoginAttemptsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_login_attempts_total",
			Help: "Total number of login attempts",
		},
	)

	LoginErrorsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_login_errors_total",
			Help: "Total number of failed logins",
		},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		if DbOperationDuration == nil {
			return
		}
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordEntityOperation increments the counter for entity operations
func RecordEntityOperation(entity, operation string) {
	if EntityOperationsCounter == nil {
		return
	}
	EntityOperationsCounter.WithLabelValues(entity, operation).Inc()
}

// RecordCheckout increments the checkout counter with the given result
func RecordCheckout(result string) {
	if CheckoutCounter == nil {
		return
	}
	CheckoutCounter.WithLabelValues(result).Inc()
}

// RecordCheckoutFallback increments the landing-page fallback counter
func RecordCheckoutFallback() {
	if CheckoutFallbackCounter == nil {
		return
	}
	CheckoutFallbackCounter.Inc()
}

// RecordLoginAttempt increments the login attempts counter
func RecordLoginAttempt() {
	if LoginAttemptsCounter == nil {
		return
	}
	LoginAttemptsCounter.Inc()
}

// RecordLoginError increments the failed login counter
func RecordLoginError() {
	if LoginErrorsCounter == nil {
		return
	}
	LoginErrorsCounter.Inc()
}
