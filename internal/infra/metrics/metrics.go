package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics aggregates the service's prometheus collectors on a private
// registry so tests can build isolated instances.
type Metrics struct {
	registry *prometheus.Registry

	VouchStarts    prometheus.Counter
	VouchOutcomes  *prometheus.CounterVec
	Redemptions    *prometheus.CounterVec
	VouchersIssued prometheus.Counter
	HTTPRequests   *prometheus.CounterVec
	HTTPDurations  *prometheus.HistogramVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		VouchStarts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vouch",
			Name:      "starts_total",
			Help:      "Total dwell sessions started.",
		}),
		VouchOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vouch",
			Name:      "stops_total",
			Help:      "Total dwell sessions stopped, segmented by outcome.",
		}, []string{"outcome"}),
		Redemptions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vouch",
			Subsystem: "rewards",
			Name:      "redemptions_total",
			Help:      "Total voucher redemption requests, segmented by outcome.",
		}, []string{"outcome"}),
		VouchersIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vouch",
			Subsystem: "rewards",
			Name:      "issued_total",
			Help:      "Total signed vouchers issued by the campaign engine.",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vouch",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		}, []string{"route", "method", "status"}),
		HTTPDurations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "vouch",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}

	registry.MustRegister(
		m.VouchStarts,
		m.VouchOutcomes,
		m.Redemptions,
		m.VouchersIssued,
		m.HTTPRequests,
		m.HTTPDurations,
	)

	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
