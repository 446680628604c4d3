package domain

import "github.com/m04kA/SMC-FacilityBooking/pkg/types"

// Price computes the amount for the time-of-day interval [start, end] under the pricing policy.
//
// PricingContained charges a band only when it holds the whole interval, so an interval that
// straddles two bands costs 0. Overlapping bands (AllowOverlap) each charge in full.
//
// PricingProrated charges every band for the hours it shares with the interval.
func Price(bands []RateBand, start, end types.TimeString, policy PricingPolicy) float64 {
	hours := float64(end.Minutes()-start.Minutes()) / 60

	total := 0.0
	for _, band := range bands {
		switch policy {
		case PricingProrated:
			total += band.HourlyRate * band.OverlapHours(start, end)
		default:
			if band.Contains(start, end) {
				total += band.HourlyRate * hours
			}
		}
	}

	return total
}
