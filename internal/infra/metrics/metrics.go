// Package metrics exposes prometheus collectors for the HTTP surface and shipment business events.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"boxtrack/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	resultSuccess = "success"
	resultError   = "error"
)

// Metrics holds every boxtrack collector on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Business metrics
	ShipmentsCreated    *prometheus.CounterVec
	ShipmentTransitions *prometheus.CounterVec
	EventsPublished     *prometheus.CounterVec

	// Circuit breaker metrics
	CircuitBreakerState *prometheus.GaugeVec
	CircuitBreakerTrips *prometheus.CounterVec
}

var _ service.MetricsRecorder = (*Metrics)(nil)

// New creates the collectors and registers them with the Go and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{registry: registry}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	m.HTTPRequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	m.ShipmentsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shipments_created_total",
			Help: "Total number of shipments created",
		},
		[]string{"priority"},
	)

	m.ShipmentTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shipment_transitions_total",
			Help: "Total number of committed shipment status changes",
		},
		[]string{"from", "to"},
	)

	m.EventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shipment_events_published_total",
			Help: "Total number of shipment events handed to the publisher",
		},
		[]string{"type", "result"},
	)

	m.CircuitBreakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	m.CircuitBreakerTrips = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_trips_total",
			Help: "Total number of circuit breaker trips",
		},
		[]string{"name"},
	)

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPRequestsInFlight,
		m.ShipmentsCreated,
		m.ShipmentTransitions,
		m.EventsPublished,
		m.CircuitBreakerState,
		m.CircuitBreakerTrips,
	)

	return m
}

// Handler returns an HTTP handler for the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Registry returns the prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordHTTPRequest records one finished HTTP request. path is the route template, never the raw URL.
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) ShipmentCreated(priority string) {
	m.ShipmentsCreated.WithLabelValues(priority).Inc()
}

func (m *Metrics) ShipmentTransitioned(from, to string) {
	m.ShipmentTransitions.WithLabelValues(from, to).Inc()
}

func (m *Metrics) EventPublished(eventType string, err error) {
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	m.EventsPublished.WithLabelValues(eventType, result).Inc()
}

// SetCircuitBreakerState records a breaker state change; 2 (open) also counts a trip.
func (m *Metrics) SetCircuitBreakerState(name string, state int) {
	m.CircuitBreakerState.WithLabelValues(name).Set(float64(state))
	if state == 2 {
		m.CircuitBreakerTrips.WithLabelValues(name).Inc()
	}
}
