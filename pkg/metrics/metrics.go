package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rendevu_http_requests_total",
			Help: "Total number of HTTP requests served by the bridge",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rendevu_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30, 60},
		},
		[]string{"method", "path"},
	)
)

var (
	// CalcomRequestsTotal counts upstream calls; code is "OK" or the envelope error code
	CalcomRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rendevu_calcom_requests_total",
			Help: "Total number of Cal.com API requests",
		},
		[]string{"method", "resource", "code"},
	)

	CalcomRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rendevu_calcom_request_duration_seconds",
			Help:    "Cal.com API request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"method", "resource"},
	)
)

var (
	LLMCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rendevu_llm_calls_total",
			Help: "Total number of generative-text provider calls",
		},
		[]string{"provider", "operation", "status"}, // status: success, error
	)

	LLMCallDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rendevu_llm_call_duration_seconds",
			Help:    "Generative-text provider call duration in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"provider", "operation"},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDurationSeconds,
		CalcomRequestsTotal,
		CalcomRequestDurationSeconds,
		LLMCallsTotal,
		LLMCallDurationSeconds,
	)
}

// RecordHTTPRequest records one served bridge request.
func RecordHTTPRequest(method, path string, status int, d time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	HTTPRequestDurationSeconds.WithLabelValues(method, path).Observe(d.Seconds())
}

// RecordCalcomRequest records one upstream Cal.com call.
func RecordCalcomRequest(method, resource, code string, d time.Duration) {
	CalcomRequestsTotal.WithLabelValues(method, resource, code).Inc()
	CalcomRequestDurationSeconds.WithLabelValues(method, resource).Observe(d.Seconds())
}

// RecordLLMCall records one provider generation.
func RecordLLMCall(provider, operation string, err error, d time.Duration) {
	status := "success"
	if err != nil {
		status = "error"
	}
	LLMCallsTotal.WithLabelValues(provider, operation, status).Inc()
	LLMCallDurationSeconds.WithLabelValues(provider, operation).Observe(d.Seconds())
}
