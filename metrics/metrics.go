// Package metrics provides Prometheus metrics for the WordPress MCP server.
// It tracks tool calls, REST API latency, upload sizes, and error kinds.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "wordpress_mcp"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures request latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Request latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing requests
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of requests currently being processed",
	}, []string{"tool"})

	// ToolFailures counts failed tool envelopes by error kind
	ToolFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "tool_failures_total",
		Help:      "Tool calls that returned success=false, by error kind",
	}, []string{"tool", "error_kind"})

	// APILatency measures WordPress REST API latency by method and resource
	APILatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "api_latency_seconds",
		Help:      "WordPress REST API call latency by method and resource",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "resource"})

	// APIRequestsTotal counts WordPress REST API requests
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "api_requests_total",
		Help:      "Total WordPress REST API requests by method, resource and status",
	}, []string{"method", "resource", "status"})

	// APIErrors counts WordPress REST API errors by error kind
	APIErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "api_errors_total",
		Help:      "WordPress REST API errors by method, resource and error kind",
	}, []string{"method", "resource", "error_kind"})

	// AuthFailures counts rejected credentials and missing capabilities
	AuthFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "auth_failures_total",
		Help:      "Authentication and authorization failures by reason",
	}, []string{"reason"})

	// PanicsRecovered counts recovered panics
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})

	// UploadBytes tracks media upload sizes
	UploadBytes = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "upload_bytes",
		Help:      "Media upload size distribution in bytes",
		Buckets:   []float64{1 << 10, 10 << 10, 100 << 10, 1 << 20, 5 << 20, 10 << 20, 25 << 20, 50 << 20},
	}, []string{"source"})

	// ContentSize tracks post and page body sizes sent to WordPress
	ContentSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "content_size_bytes",
		Help:      "Content size distribution in bytes",
		Buckets:   []float64{100, 1000, 10000, 50000, 100000, 250000, 500000, 1000000},
	}, []string{"operation"})
)

// RecordRequest records a completed request with its duration and status
func RecordRequest(tool string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	RequestsTotal.WithLabelValues(tool, status).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordToolFailure records a failed envelope for a tool
func RecordToolFailure(tool, errorKind string) {
	if errorKind == "" {
		errorKind = "unknown"
	}
	ToolFailures.WithLabelValues(tool, errorKind).Inc()
}

// RecordAPICall records a WordPress REST API call
func RecordAPICall(method, resource string, duration float64, success bool, errorKind string) {
	status := "success"
	if !success {
		status = "error"
	}
	APIRequestsTotal.WithLabelValues(method, resource, status).Inc()
	APILatency.WithLabelValues(method, resource).Observe(duration)
	if errorKind != "" {
		APIErrors.WithLabelValues(method, resource, errorKind).Inc()
	}
	if errorKind == "authentication" || errorKind == "authorization" {
		AuthFailures.WithLabelValues(errorKind).Inc()
	}
}

// RecordUpload records the size of an uploaded file by source ("url" or "local")
func RecordUpload(source string, size int) {
	UploadBytes.WithLabelValues(source).Observe(float64(size))
}

// RecordContentSize records the size of content submitted by an operation
func RecordContentSize(operation string, size int) {
	ContentSize.WithLabelValues(operation).Observe(float64(size))
}
