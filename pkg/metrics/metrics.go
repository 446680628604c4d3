package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors of the service
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	bookingsTotal       *prometheus.CounterVec
	bookingAmountTotal  *prometheus.CounterVec
	reservationsActive  *prometheus.GaugeVec
}

// New creates and registers all collectors under the given namespace.
// Pass prometheus.DefaultRegisterer in production and a fresh registry in tests.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		bookingsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bookings_total",
				Help:      "Booking attempts by facility and outcome",
			},
			[]string{"facility", "outcome"},
		),
		bookingAmountTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "booking_amount_total",
				Help:      "Sum of confirmed booking amounts",
			},
			[]string{"facility"},
		),
		reservationsActive: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "reservations",
				Help:      "Reservations held in the ledger",
			},
			[]string{"facility"},
		),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.bookingsTotal,
		m.bookingAmountTotal,
		m.reservationsActive,
	)

	return m
}

// ObserveHTTPRequest records one served HTTP request
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveBooking records one booking attempt. Facility names that are not configured
// are labelled "unknown".
func (m *Metrics) ObserveBooking(facility, outcome string, amount float64, known bool) {
	if !known {
		facility = "unknown"
	}
	m.bookingsTotal.WithLabelValues(facility, outcome).Inc()
	if amount > 0 {
		m.bookingAmountTotal.WithLabelValues(facility).Add(amount)
	}
}

// SetReservations sets the number of reservations held for a facility
func (m *Metrics) SetReservations(facility string, count int) {
	m.reservationsActive.WithLabelValues(facility).Set(float64(count))
}
