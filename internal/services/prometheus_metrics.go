package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	lookupRequestsTotal *prometheus.CounterVec
	queryDuration       *prometheus.HistogramVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		lookupRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lookup_requests_total",
				Help: "Total number of lookup requests by operation and status",
			},
			[]string{"operation", "status"},
		),
		queryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lookup_query_duration_seconds",
				Help:    "Store query duration in seconds by operation",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, labels map[string]string) {
	m.lookupRequestsTotal.WithLabelValues(name, labels["status"]).Inc()
}

func (m *PrometheusMetrics) RecordQueryDuration(operation string, duration time.Duration) {
	m.queryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
