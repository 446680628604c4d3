package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ObserveBooking(t *testing.T) {
	m := New("facility_booking", prometheus.NewRegistry())

	m.ObserveBooking("Clubhouse", "booked", 200, true)
	m.ObserveBooking("Clubhouse", "booked", 0, true)
	m.ObserveBooking("Pool", "invalid_facility", 0, false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingsTotal.WithLabelValues("Clubhouse", "booked")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingsTotal.WithLabelValues("unknown", "invalid_facility")))
	assert.Equal(t, 200.0, testutil.ToFloat64(m.bookingAmountTotal.WithLabelValues("Clubhouse")))
}

func TestMetrics_ObserveHTTPRequest(t *testing.T) {
	m := New("facility_booking", prometheus.NewRegistry())

	m.ObserveHTTPRequest(http.MethodPost, "/api/v1/bookings", http.StatusCreated, 10*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues(http.MethodPost, "/api/v1/bookings", "201")))
}

func TestMetrics_SetReservations(t *testing.T) {
	m := New("facility_booking", prometheus.NewRegistry())

	m.SetReservations("Tennis Court", 3)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.reservationsActive.WithLabelValues("Tennis Court")))
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New("facility_booking", reg)

	assert.Panics(t, func() { New("facility_booking", reg) })
}
