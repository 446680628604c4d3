package book_facility

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// parseTimeRange разбирает время начала и окончания и проверяет, что начало раньше окончания
func parseTimeRange(startTime, endTime string) (types.TimeString, types.TimeString, error) {
	start, err := types.NewTimeStringFromString(strings.TrimSpace(startTime))
	if err != nil {
		return "", "", fmt.Errorf("%w: start time: %v", ErrInvalidTimeRange, err)
	}

	end, err := types.NewTimeStringFromString(strings.TrimSpace(endTime))
	if err != nil {
		return "", "", fmt.Errorf("%w: end time: %v", ErrInvalidTimeRange, err)
	}

	// Равные значения тоже отклоняются
	if !start.IsBefore(end) {
		return "", "", fmt.Errorf("%w: start %s is not before end %s", ErrInvalidTimeRange, start, end)
	}

	return start, end, nil
}

// parseDate разбирает дату в формате DD-MM-YYYY в заданной локации
func parseDate(date string, loc *time.Location) (time.Time, error) {
	parsed, err := time.ParseInLocation(domain.DateFormat, strings.TrimSpace(date), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrParseFailure, date, err)
	}
	return parsed, nil
}

// findConflict ищет первое бронирование, пересекающееся с [start, end].
// Линейный проход: на площадку приходится немного бронирований.
func findConflict(
	reservations []*domain.Reservation,
	start, end time.Time,
	policy domain.ConflictPolicy,
) *domain.Reservation {
	for _, reservation := range reservations {
		if reservation.ConflictsWith(start, end, policy) {
			return reservation
		}
	}
	return nil
}
