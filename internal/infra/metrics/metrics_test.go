package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_BusinessCounters(t *testing.T) {
	m := New()

	m.ShipmentCreated("EXPRESS")
	m.ShipmentCreated("EXPRESS")
	m.ShipmentTransitioned("CREATED", "IN_TRANSIT")
	m.EventPublished("shipment.created", nil)
	m.EventPublished("shipment.created", errors.New("broker down"))

	assert.InDelta(t, 2, testutil.ToFloat64(m.ShipmentsCreated.WithLabelValues("EXPRESS")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.ShipmentTransitions.WithLabelValues("CREATED", "IN_TRANSIT")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.EventsPublished.WithLabelValues("shipment.created", resultSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.EventsPublished.WithLabelValues("shipment.created", resultError)), 0)
}

func TestMetrics_CircuitBreakerTrips(t *testing.T) {
	m := New()

	m.SetCircuitBreakerState("publisher", 2)
	m.SetCircuitBreakerState("publisher", 1)
	m.SetCircuitBreakerState("publisher", 0)

	assert.InDelta(t, 0, testutil.ToFloat64(m.CircuitBreakerState.WithLabelValues("publisher")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.CircuitBreakerTrips.WithLabelValues("publisher")), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.RecordHTTPRequest(http.MethodGet, "/api/v1/shipments/:id", http.StatusOK, 20*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",path="/api/v1/shipments/:id",status="200"} 1`)
}
