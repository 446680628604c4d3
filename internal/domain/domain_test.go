package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

func at(hour, min int) time.Time {
	return time.Date(2024, time.January, 1, hour, min, 0, 0, time.UTC)
}

func TestReservation_ConflictsWith(t *testing.T) {
	existing := &Reservation{Start: at(10, 0), End: at(12, 0)}

	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		inclusive bool
		exclusive bool
	}{
		{name: "identical", start: at(10, 0), end: at(12, 0), inclusive: true, exclusive: true},
		{name: "inside", start: at(10, 30), end: at(11, 0), inclusive: true, exclusive: true},
		{name: "covers", start: at(9, 0), end: at(13, 0), inclusive: true, exclusive: true},
		{name: "partial before", start: at(9, 0), end: at(10, 30), inclusive: true, exclusive: true},
		{name: "back to back after", start: at(12, 0), end: at(14, 0), inclusive: true, exclusive: false},
		{name: "back to back before", start: at(8, 0), end: at(10, 0), inclusive: true, exclusive: false},
		{name: "disjoint", start: at(13, 0), end: at(14, 0), inclusive: false, exclusive: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.inclusive, existing.ConflictsWith(tt.start, tt.end, ConflictInclusive))
			assert.Equal(t, tt.exclusive, existing.ConflictsWith(tt.start, tt.end, ConflictExclusive))
		})
	}
}

func TestReservation_IsOnDate(t *testing.T) {
	r := &Reservation{Start: at(10, 0), End: at(12, 0)}

	assert.True(t, r.IsOnDate(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.IsOnDate(time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2*time.Hour, r.Duration())
}

func TestRateBand_Contains(t *testing.T) {
	band := RateBand{Start: "10:00", End: "16:00", HourlyRate: 100}

	assert.True(t, band.Contains("10:00", "16:00"))
	assert.True(t, band.Contains("11:00", "12:30"))
	assert.False(t, band.Contains("09:59", "12:00"))
	assert.False(t, band.Contains("15:00", "17:00"))
}

func TestRateBand_OverlapHours(t *testing.T) {
	band := RateBand{Start: "10:00", End: "16:00", HourlyRate: 100}

	assert.InDelta(t, 1.0, band.OverlapHours("15:00", "17:00"), 1e-9)
	assert.InDelta(t, 6.0, band.OverlapHours("08:00", "23:00"), 1e-9)
	assert.Zero(t, band.OverlapHours("16:00", "18:00"))
}

func TestRateBand_Overlaps(t *testing.T) {
	day := RateBand{Start: "10:00", End: "16:00"}

	assert.False(t, day.Overlaps(RateBand{Start: "16:00", End: "22:00"}))
	assert.True(t, day.Overlaps(RateBand{Start: "15:00", End: "22:00"}))
}

func TestOutcome_Result(t *testing.T) {
	tests := []struct {
		outcome Outcome
		amount  float64
		want    string
	}{
		{OutcomeBooked, 200, "Booked, Rs. 200"},
		{OutcomeBooked, 0, "Booked, Rs. 0"},
		{OutcomeBooked, 250.5, "Booked, Rs. 250.5"},
		{OutcomeInvalidFacility, 0, "Invalid Facility"},
		{OutcomeInvalidTimeRange, 0, "Invalid Time Range"},
		{OutcomeParseFailure, 0, "Invalid Time Range"},
		{OutcomeInternal, 0, "Invalid Time Range"},
		{OutcomeAlreadyBooked, 0, "Booking Failed, Already Booked"},
	}

	for _, tt := range tests {
		t.Run(string(tt.outcome), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.outcome.Result(tt.amount))
		})
	}
}

func TestPolicy_IsValid(t *testing.T) {
	assert.True(t, DefaultPolicy().IsValid())
	assert.True(t, Policy{Conflict: ConflictExclusive, Pricing: PricingProrated}.IsValid())
	assert.False(t, Policy{Conflict: "sometimes", Pricing: PricingContained}.IsValid())
	assert.False(t, Policy{Conflict: ConflictInclusive, Pricing: "free"}.IsValid())
}

func TestDefaultFacilities(t *testing.T) {
	facilities := DefaultFacilities()

	assert.Len(t, facilities, 2)
	assert.Equal(t, FacilityClubhouse, facilities[0].Name)
	assert.Len(t, facilities[0].Bands, 2)
	assert.Equal(t, FacilityTennisCourt, facilities[1].Name)
	assert.Equal(t, 50.0, facilities[1].Bands[0].HourlyRate)
}

func TestPrice(t *testing.T) {
	clubhouse := DefaultFacilities()[0].Bands

	tests := []struct {
		name   string
		start  string
		end    string
		policy PricingPolicy
		want   float64
	}{
		{name: "inside day band", start: "10:00", end: "12:00", policy: PricingContained, want: 200},
		{name: "inside evening band", start: "20:00", end: "22:00", policy: PricingContained, want: 1000},
		{name: "straddle contained", start: "15:00", end: "17:00", policy: PricingContained, want: 0},
		{name: "straddle prorated", start: "15:00", end: "17:00", policy: PricingProrated, want: 600},
		{name: "outside prorated", start: "06:00", end: "08:00", policy: PricingProrated, want: 0},
		{name: "partial prorated", start: "21:00", end: "23:00", policy: PricingProrated, want: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Price(clubhouse, types.TimeString(tt.start), types.TimeString(tt.end), tt.policy)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}
