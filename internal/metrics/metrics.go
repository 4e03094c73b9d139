package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	EndpointEmergency = "emergency"
	EndpointTest      = "test"

	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

type Metrics struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Business Metrics
	SmsSendsTotal *prometheus.CounterVec

	// Validation Metrics
	ValidationErrors *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),

		HTTPRequestsInFlight: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being served",
		}),

		SmsSendsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sms_sends_total",
			Help: "Outbound SMS sends by endpoint and outcome",
		}, []string{"endpoint", "outcome"}),

		ValidationErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "validation_errors_total",
			Help: "Request validation failures by field and rule",
		}, []string{"field", "tag"}),
	}
}

func (m *Metrics) RecordSendOutcome(endpoint, outcome string) {
	m.SmsSendsTotal.WithLabelValues(endpoint, outcome).Inc()
}

func (m *Metrics) RecordValidationError(field, tag string) {
	m.ValidationErrors.WithLabelValues(field, tag).Inc()
}
