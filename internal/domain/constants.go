package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "02-01-2006" // DD-MM-YYYY
)

// Literal results of a booking attempt, kept for compatibility with the prompt loop
const (
	ResultInvalidFacility  = "Invalid Facility"
	ResultInvalidTimeRange = "Invalid Time Range"
	ResultAlreadyBooked    = "Booking Failed, Already Booked"
	ResultBookedPrefix     = "Booked, Rs. "
)

// ExitCommand terminates the interactive loop when entered as the facility name
const ExitCommand = "exit"

// Default rate table
const (
	FacilityClubhouse   = "Clubhouse"
	FacilityTennisCourt = "Tennis Court"
)

// DefaultSlotDurationMinutes is the slot length used when listing availability
const DefaultSlotDurationMinutes = 60
