package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// Типы событий
const (
	EventTypeBookingCreated = "booking.created"
)

// Заголовки сообщений
const (
	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
	HeaderSource    = "source"
)

// BookingCreatedEvent событие о подтвержденном бронировании
type BookingCreatedEvent struct {
	EventID       string    `json:"eventId"`
	ReservationID string    `json:"reservationId"`
	Facility      string    `json:"facility"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	Amount        float64   `json:"amount"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// NewBookingCreatedEvent создает событие из сохраненного бронирования
func NewBookingCreatedEvent(r *domain.Reservation) *BookingCreatedEvent {
	return &BookingCreatedEvent{
		EventID:       uuid.NewString(),
		ReservationID: r.ID,
		Facility:      r.Facility,
		Start:         r.Start,
		End:           r.End,
		Amount:        r.Amount,
		OccurredAt:    r.CreatedAt,
	}
}
