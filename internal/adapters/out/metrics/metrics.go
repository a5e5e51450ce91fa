// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "parcelhub"

type Metrics struct {
	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
	ParcelsByStatus *prometheus.GaugeVec
	ParcelsTotal    prometheus.Gauge
	RevenueCents    prometheus.Gauge
	EventsPublished prometheus.Counter
	EventsFailed    prometheus.Counter

	registry *prometheus.Registry
}

// NewMetrics registers every collector, plus the Go and process collectors, on a
// private registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code",
		}, []string{"method", "route", "code"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ParcelsByStatus: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "parcels",
			Help:      "Parcels per status at the last stats snapshot",
		}, []string{"status"}),
		ParcelsTotal: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "parcels_total",
			Help:      "All parcels at the last stats snapshot",
		}),
		RevenueCents: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "revenue_cents",
			Help:      "Sum of delivery fees at the last stats snapshot, in cents",
		}),
		EventsPublished: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_events_published_total",
			Help:      "Parcel events relayed from the outbox",
		}),
		EventsFailed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_events_failed_total",
			Help:      "Parcel events the relay could not publish",
		}),
		registry: registry,
	}
}

// ObserveRequest records one served HTTP request. route is the route template, not the raw path.
func (m *Metrics) ObserveRequest(method, route string, code int, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveStats replaces the snapshot gauges. Statuses without parcels are reported as 0.
func (m *Metrics) ObserveStats(stats services.Stats) {
	for _, s := range parcel.AllStatuses() {
		m.ParcelsByStatus.WithLabelValues(s.String()).Set(float64(stats.ByStatus[s]))
	}
	m.ParcelsTotal.Set(float64(stats.Total))
	m.RevenueCents.Set(float64(stats.Revenue.Cents()))
}

func (m *Metrics) ObservePublished() { m.EventsPublished.Inc() }

func (m *Metrics) ObservePublishFailed() { m.EventsFailed.Inc() }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
