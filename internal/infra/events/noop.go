package events

import (
	"context"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// NoopPublisher используется, когда публикация событий выключена
type NoopPublisher struct{}

// PublishBookingCreated ничего не делает
func (NoopPublisher) PublishBookingCreated(context.Context, *domain.Reservation) error {
	return nil
}

// Close ничего не делает
func (NoopPublisher) Close() error {
	return nil
}
