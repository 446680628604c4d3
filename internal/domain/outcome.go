package domain

import "strconv"

// Outcome is the kind of result of a booking attempt
type Outcome string

const (
	OutcomeBooked           Outcome = "booked"
	OutcomeInvalidFacility  Outcome = "invalid_facility"
	OutcomeInvalidTimeRange Outcome = "invalid_time_range"
	OutcomeAlreadyBooked    Outcome = "already_booked"
	OutcomeParseFailure     Outcome = "parse_failure"
	OutcomeInternal         Outcome = "internal"
)

// Result renders the outcome as the literal result string.
// Parse failures and internal failures share the "Invalid Time Range" text so callers
// only ever see four results. Internal failures stay distinct in metrics and HTTP status.
func (o Outcome) Result(amount float64) string {
	switch o {
	case OutcomeBooked:
		return ResultBookedPrefix + FormatAmount(amount)
	case OutcomeInvalidFacility:
		return ResultInvalidFacility
	case OutcomeAlreadyBooked:
		return ResultAlreadyBooked
	default:
		return ResultInvalidTimeRange
	}
}

// FormatAmount prints the shortest decimal form: 200 -> "200", 0.5 -> "0.5"
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
