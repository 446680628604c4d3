package models

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// Request модели

// ListReservationsRequest запрос на получение бронирований площадки
type ListReservationsRequest struct {
	Facility string     `json:"facility"`
	Date     *time.Time `json:"date,omitempty"` // Фильтр по дню (опционально)
}

// Response модели

// RateBand тариф площадки
type RateBand struct {
	Start      string  `json:"start"`
	End        string  `json:"end"`
	HourlyRate float64 `json:"hourlyRate"`
}

// Facility площадка с тарифами
type Facility struct {
	Name         string     `json:"name"`
	AllowOverlap bool       `json:"allowOverlap"`
	Bands        []RateBand `json:"bands"`
}

// FacilityListResponse список площадок
type FacilityListResponse struct {
	Facilities []Facility `json:"facilities"`
	Total      int        `json:"total"`
}

// Reservation бронирование площадки
type Reservation struct {
	ID        string    `json:"id"`
	Facility  string    `json:"facility"`
	Date      string    `json:"date"`      // DD-MM-YYYY
	StartTime string    `json:"startTime"` // HH:MM
	EndTime   string    `json:"endTime"`   // HH:MM
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReservationListResponse список бронирований площадки
type ReservationListResponse struct {
	Facility     string        `json:"facility"`
	Reservations []Reservation `json:"reservations"`
	Total        int           `json:"total"`
}

// FromDomainFacility конвертирует domain модель площадки в response
func FromDomainFacility(f *domain.Facility) Facility {
	bands := make([]RateBand, 0, len(f.Bands))
	for _, b := range f.Bands {
		bands = append(bands, RateBand{
			Start:      b.Start.String(),
			End:        b.End.String(),
			HourlyRate: b.HourlyRate,
		})
	}

	return Facility{
		Name:         f.Name,
		AllowOverlap: f.AllowOverlap,
		Bands:        bands,
	}
}

// FromDomainReservation конвертирует domain модель бронирования в response
func FromDomainReservation(r *domain.Reservation) Reservation {
	return Reservation{
		ID:        r.ID,
		Facility:  r.Facility,
		Date:      r.Start.Format(domain.DateFormat),
		StartTime: r.Start.Format(domain.TimeFormat),
		EndTime:   r.End.Format(domain.TimeFormat),
		Amount:    r.Amount,
		CreatedAt: r.CreatedAt,
	}
}

// FromDomainReservationList конвертирует список бронирований в response
func FromDomainReservationList(facility string, reservations []*domain.Reservation) *ReservationListResponse {
	result := make([]Reservation, 0, len(reservations))
	for _, r := range reservations {
		result = append(result, FromDomainReservation(r))
	}

	return &ReservationListResponse{
		Facility:     facility,
		Reservations: result,
		Total:        len(result),
	}
}
