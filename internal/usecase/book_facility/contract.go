package book_facility

import (
	"context"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// RateTable интерфейс таблицы тарифов
type RateTable interface {
	Has(ctx context.Context, facility string) bool
	RatesFor(ctx context.Context, facility string) ([]domain.RateBand, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	GetByFacilityWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// TransactionManager сериализует работу с бронированиями одной площадки
type TransactionManager interface {
	DoSerializable(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

// EventPublisher интерфейс публикации событий о бронированиях
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, reservation *domain.Reservation) error
}

// MetricsRecorder интерфейс для записи метрик бронирований
type MetricsRecorder interface {
	ObserveBooking(facility, outcome string, amount float64, known bool)
	SetReservations(facility string, count int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NoopMetrics используется, когда метрики выключены
type NoopMetrics struct{}

// ObserveBooking ничего не делает
func (NoopMetrics) ObserveBooking(string, string, float64, bool) {}

// SetReservations ничего не делает
func (NoopMetrics) SetReservations(string, int) {}
