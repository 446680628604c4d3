package domain

// ConflictPolicy decides whether touching reservations collide
type ConflictPolicy string

const (
	// ConflictInclusive treats back-to-back reservations as conflicting (s <= end && e >= start)
	ConflictInclusive ConflictPolicy = "inclusive"
	// ConflictExclusive only rejects real overlaps (s < end && e > start)
	ConflictExclusive ConflictPolicy = "exclusive"
)

// PricingPolicy decides how a reservation spanning several bands is charged
type PricingPolicy string

const (
	// PricingContained charges only bands that fully contain the reservation; a straddling reservation costs 0
	PricingContained PricingPolicy = "contained"
	// PricingProrated charges every band for the hours it shares with the reservation
	PricingProrated PricingPolicy = "prorated"
)

// Policy groups the configurable booking rules
type Policy struct {
	Conflict ConflictPolicy
	Pricing  PricingPolicy
}

// DefaultPolicy keeps the historical behavior
func DefaultPolicy() Policy {
	return Policy{
		Conflict: ConflictInclusive,
		Pricing:  PricingContained,
	}
}

// IsValid reports whether the policy values are known
func (p Policy) IsValid() bool {
	switch p.Conflict {
	case ConflictInclusive, ConflictExclusive:
	default:
		return false
	}
	switch p.Pricing {
	case PricingContained, PricingProrated:
	default:
		return false
	}
	return true
}
