package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the server collectors. Each server registers them on its own
// registry.
type Metrics struct {
	Calculations    *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	StoreErrors     prometheus.Counter
}

// NewMetrics registers the server collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Calculations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dintilhac_calculations_total",
				Help: "Total number of calculations by outcome",
			},
			[]string{"outcome"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dintilhac_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method", "status"},
		),
		StoreErrors: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "dintilhac_store_errors_total",
				Help: "Total number of failed case store operations",
			},
		),
	}
}
