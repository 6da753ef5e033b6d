// Package metrics содержит Prometheus метрики сервиса.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics - набор коллекторов сервиса
type Metrics struct {
	Registry        *prometheus.Registry
	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
	SearchResults   *prometheus.HistogramVec
	GeocoderResults *prometheus.CounterVec
}

// New создает и регистрирует коллекторы в собственном реестре
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		SearchResults: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "listing_search_results",
			Help:    "Number of listings returned per query.",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
		}, []string{"kind"}),
		GeocoderResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "geocoder_requests_total",
			Help: "Geocoder lookups by outcome.",
		}, []string{"outcome"}),
	}

	m.Registry.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.SearchResults,
		m.GeocoderResults,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveSearch фиксирует число результатов запроса (kind: nearby, search)
func (m *Metrics) ObserveSearch(kind string, count int) {
	if m == nil {
		return
	}
	m.SearchResults.WithLabelValues(kind).Observe(float64(count))
}

// ObserveGeocode фиксирует исход запроса к геокодеру (ok, zero_results, error, open)
func (m *Metrics) ObserveGeocode(outcome string) {
	if m == nil {
		return
	}
	m.GeocoderResults.WithLabelValues(outcome).Inc()
}
