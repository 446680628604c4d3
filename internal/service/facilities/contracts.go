package facilities

import (
	"context"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// RateTable интерфейс таблицы тарифов
type RateTable interface {
	Facilities(ctx context.Context) []string
	GetFacility(ctx context.Context, facility string) (*domain.Facility, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	GetByFacilityWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
