package book_facility

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	bookFacility "github.com/m04kA/SMC-FacilityBooking/internal/usecase/book_facility"
)

// BookFacilityRequest HTTP request model.
// Значения передаются в use case как есть: разбор даты и времени - часть бронирования.
type BookFacilityRequest struct {
	Facility  string `json:"facility" validate:"max=128"`
	Date      string `json:"date" validate:"max=32"`      // "01-01-2024"
	StartTime string `json:"startTime" validate:"max=16"` // "10:00"
	EndTime   string `json:"endTime" validate:"max=16"`   // "12:00"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        string  `json:"id"`
	Facility  string  `json:"facility"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Amount    float64 `json:"amount"`
	Result    string  `json:"result"`
	CreatedAt string  `json:"createdAt"`
}

// BookingErrorResponse HTTP response model для отказа в бронировании
type BookingErrorResponse struct {
	Error  string `json:"error"`
	Result string `json:"result"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookFacilityRequest) ToUseCaseRequest() *bookFacility.Request {
	return &bookFacility.Request{
		Facility:  r.Facility,
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookFacility.Response) *BookingResponse {
	return &BookingResponse{
		ID:        resp.ReservationID,
		Facility:  resp.Facility,
		Date:      resp.Start.Format(domain.DateFormat),
		StartTime: resp.Start.Format(domain.TimeFormat),
		EndTime:   resp.End.Format(domain.TimeFormat),
		Amount:    resp.Amount,
		Result:    resp.Result(),
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
