// Package observability holds the Prometheus metrics exported on /metrics.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	UploadBytes         *prometheus.HistogramVec

	ImageCacheHitsTotal   *prometheus.CounterVec
	ImageCacheMissesTotal *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewMetrics creates and registers all metrics on registry.
func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chitrakala_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "chitrakala_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		UploadBytes: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "chitrakala_upload_size_bytes",
				Help:    "Size of accepted image uploads in bytes",
				Buckets: prometheus.ExponentialBuckets(10_000, 4, 6),
			},
			[]string{"kind"},
		),
		ImageCacheHitsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chitrakala_image_cache_hits_total",
				Help: "Total number of image cache hits",
			},
			[]string{"image"},
		),
		ImageCacheMissesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chitrakala_image_cache_misses_total",
				Help: "Total number of image cache misses",
			},
			[]string{"image"},
		),
		registry: registry,
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.UploadBytes,
		m.ImageCacheHitsTotal,
		m.ImageCacheMissesTotal,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
