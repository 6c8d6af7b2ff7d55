package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordRequest(t *testing.T) {
	tests := []struct {
		name       string
		tool       string
		duration   float64
		success    bool
		wantStatus string
	}{
		{
			name:       "successful request",
			tool:       "test_tool",
			duration:   0.5,
			success:    true,
			wantStatus: "success",
		},
		{
			name:       "failed request",
			tool:       "test_tool",
			duration:   1.0,
			success:    false,
			wantStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordRequest(tt.tool, tt.duration, tt.success)

			counter, err := RequestsTotal.GetMetricWithLabelValues(tt.tool, tt.wantStatus)
			if err != nil {
				t.Fatalf("failed to get metric: %v", err)
			}
			if getCounterValue(t, counter) < 1 {
				t.Error("expected counter to be incremented")
			}
		})
	}
}

func TestRecordAPICall(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		resource  string
		success   bool
		errorKind string
	}{
		{
			name:     "successful API call",
			method:   "GET",
			resource: "posts",
			success:  true,
		},
		{
			name:      "not found",
			method:    "DELETE",
			resource:  "comments",
			success:   false,
			errorKind: "not_found",
		},
		{
			name:      "rejected credentials",
			method:    "POST",
			resource:  "users",
			success:   false,
			errorKind: "authentication",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordAPICall(tt.method, tt.resource, 0.1, tt.success, tt.errorKind)

			status := "success"
			if !tt.success {
				status = "error"
			}
			counter, err := APIRequestsTotal.GetMetricWithLabelValues(tt.method, tt.resource, status)
			if err != nil {
				t.Fatalf("failed to get metric: %v", err)
			}
			if getCounterValue(t, counter) < 1 {
				t.Error("expected counter to be incremented")
			}

			if tt.errorKind != "" {
				errCounter, err := APIErrors.GetMetricWithLabelValues(tt.method, tt.resource, tt.errorKind)
				if err != nil {
					t.Fatalf("failed to get error metric: %v", err)
				}
				if getCounterValue(t, errCounter) < 1 {
					t.Error("expected error counter to be incremented")
				}
			}
		})
	}
}

func TestRecordAPICall_AuthFailures(t *testing.T) {
	before := getCounterValue(t, AuthFailures.WithLabelValues("authorization"))
	RecordAPICall("PUT", "posts", 0.2, false, "authorization")
	if got := getCounterValue(t, AuthFailures.WithLabelValues("authorization")); got != before+1 {
		t.Errorf("auth failures = %v, want %v", got, before+1)
	}
}

func TestRecordToolFailure(t *testing.T) {
	RecordToolFailure("wp_get_post", "")
	counter, err := ToolFailures.GetMetricWithLabelValues("wp_get_post", "unknown")
	if err != nil {
		t.Fatalf("failed to get metric: %v", err)
	}
	if getCounterValue(t, counter) < 1 {
		t.Error("expected empty kind to be recorded as unknown")
	}
}

func TestRecordUpload(t *testing.T) {
	RecordUpload("local", 2048)

	var m dto.Metric
	observer, err := UploadBytes.GetMetricWithLabelValues("local")
	if err != nil {
		t.Fatalf("failed to get metric: %v", err)
	}
	if err := observer.(prometheus.Histogram).Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if m.Histogram.GetSampleCount() < 1 {
		t.Error("expected an upload sample")
	}
	if m.Histogram.GetSampleSum() < 2048 {
		t.Errorf("sample sum = %v, want >= 2048", m.Histogram.GetSampleSum())
	}
}

func TestMetricsRegistered(t *testing.T) {
	metrics := []prometheus.Collector{
		RequestsTotal,
		RequestDuration,
		RequestInFlight,
		ToolFailures,
		APILatency,
		APIRequestsTotal,
		APIErrors,
		AuthFailures,
		PanicsRecovered,
		UploadBytes,
		ContentSize,
	}

	for i, m := range metrics {
		if m == nil {
			t.Errorf("metric at index %d is nil", i)
		}
	}
}

func TestNamespace(t *testing.T) {
	if Namespace != "wordpress_mcp" {
		t.Errorf("expected namespace 'wordpress_mcp', got '%s'", Namespace)
	}
}

// Helper to get counter value
func getCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	return m.Counter.GetValue()
}
