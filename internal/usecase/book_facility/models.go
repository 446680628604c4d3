package book_facility

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// Request модель запроса на бронирование. Все поля - сырые строки,
// разбор и валидация выполняются внутри use case.
type Request struct {
	Facility  string // Название площадки
	Date      string // Дата, DD-MM-YYYY
	StartTime string // Время начала, HH:MM
	EndTime   string // Время окончания, HH:MM
}

// Response модель ответа с созданным бронированием
type Response struct {
	ReservationID string    // ID бронирования
	Facility      string    // Площадка
	Start         time.Time // Начало (дата + время)
	End           time.Time // Окончание (дата + время)
	Amount        float64   // Стоимость
	CreatedAt     time.Time // Время создания
}

// Result строка результата для успешного бронирования
func (r *Response) Result() string {
	return domain.OutcomeBooked.Result(r.Amount)
}

// OutcomeFromError сопоставляет ошибку use case с исходом бронирования.
// Неизвестные ошибки считаются ошибкой разбора, чтобы цикл ввода не падал.
func OutcomeFromError(err error) domain.Outcome {
	switch {
	case err == nil:
		return domain.OutcomeBooked
	case errors.Is(err, ErrInvalidFacility):
		return domain.OutcomeInvalidFacility
	case errors.Is(err, ErrInvalidTimeRange):
		return domain.OutcomeInvalidTimeRange
	case errors.Is(err, ErrAlreadyBooked):
		return domain.OutcomeAlreadyBooked
	case errors.Is(err, ErrInternal):
		return domain.OutcomeInternal
	default:
		return domain.OutcomeParseFailure
	}
}

func fromDomainReservation(r *domain.Reservation) *Response {
	return &Response{
		ReservationID: r.ID,
		Facility:      r.Facility,
		Start:         r.Start,
		End:           r.End,
		Amount:        r.Amount,
		CreatedAt:     r.CreatedAt,
	}
}
