package get_facility_reservations

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/facilities/models"
)

// ToServiceRequest создает запрос к сервису из параметров запроса.
// Пустая дата означает все дни.
func ToServiceRequest(facility, dateStr string, loc *time.Location) (*models.ListReservationsRequest, error) {
	req := &models.ListReservationsRequest{Facility: facility}

	if dateStr != "" {
		date, err := time.ParseInLocation(domain.DateFormat, dateStr, loc)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	return req, nil
}
