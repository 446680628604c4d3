package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// RateTable интерфейс таблицы тарифов
type RateTable interface {
	RatesFor(ctx context.Context, facility string) ([]domain.RateBand, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByFacilityWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
