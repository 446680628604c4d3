package domain

import "github.com/m04kA/SMC-FacilityBooking/pkg/types"

// RateBand is a time-of-day window [Start, End) with an hourly price
type RateBand struct {
	Start      types.TimeString
	End        types.TimeString
	HourlyRate float64
}

// Facility is a bookable resource together with its rate bands
type Facility struct {
	Name         string
	Bands        []RateBand
	AllowOverlap bool // overlapping bands double-charge the shared hours
}

// Contains reports whether the whole time-of-day interval [start, end] lies inside the band
func (b RateBand) Contains(start, end types.TimeString) bool {
	return start.Minutes() >= b.Start.Minutes() && end.Minutes() <= b.End.Minutes()
}

// OverlapHours returns the part of [start, end] that falls inside the band, in hours
func (b RateBand) OverlapHours(start, end types.TimeString) float64 {
	from := max(start.Minutes(), b.Start.Minutes())
	to := min(end.Minutes(), b.End.Minutes())
	if to <= from {
		return 0
	}
	return float64(to-from) / 60
}

// Overlaps reports whether two bands share any minute
func (b RateBand) Overlaps(other RateBand) bool {
	return b.Start.Minutes() < other.End.Minutes() && other.Start.Minutes() < b.End.Minutes()
}

// DefaultFacilities returns the built-in rate table
func DefaultFacilities() []Facility {
	return []Facility{
		{
			Name: FacilityClubhouse,
			Bands: []RateBand{
				{Start: "10:00", End: "16:00", HourlyRate: 100},
				{Start: "16:00", End: "22:00", HourlyRate: 500},
			},
		},
		{
			Name: FacilityTennisCourt,
			Bands: []RateBand{
				{Start: "00:00", End: "23:59", HourlyRate: 50},
			},
		},
	}
}
