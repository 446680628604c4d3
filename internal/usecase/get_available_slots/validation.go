package get_available_slots

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

const minutesPerDay = 24 * 60

// validateRequest валидирует входные данные запроса и проставляет длительность по умолчанию
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Facility) == "" {
		return fmt.Errorf("%w: facility is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationMinutes == 0 {
		req.DurationMinutes = domain.DefaultSlotDurationMinutes
	}

	if req.DurationMinutes < 0 || req.DurationMinutes >= minutesPerDay {
		return fmt.Errorf("%w: duration must be between 1 and %d minutes", ErrInvalidInput, minutesPerDay-1)
	}

	return nil
}
