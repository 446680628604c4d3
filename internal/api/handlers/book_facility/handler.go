package book_facility

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	bookFacility "github.com/m04kA/SMC-FacilityBooking/internal/usecase/book_facility"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidFacility    = "площадка не найдена"
	msgInvalidTimeRange   = "некорректный временной интервал, ожидается HH:MM и начало раньше окончания"
	msgInvalidDate        = "некорректный формат даты, ожидается DD-MM-YYYY"
	msgAlreadyBooked      = "выбранный интервал уже забронирован"
)

type Handler struct {
	useCase  BookFacilityUseCase
	validate *validator.Validate
	logger   Logger
}

func NewHandler(useCase BookFacilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		validate: validator.New(),
		logger:   logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookFacilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.logger.Warn("POST /bookings - Request validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		outcome := bookFacility.OutcomeFromError(err)

		switch {
		case errors.Is(err, bookFacility.ErrInvalidFacility):
			h.logger.Warn("POST /bookings - Facility not found: facility=%q", req.Facility)
			h.respondOutcome(w, http.StatusNotFound, msgInvalidFacility, outcome.Result(0))

		case errors.Is(err, bookFacility.ErrInvalidTimeRange):
			h.logger.Warn("POST /bookings - Invalid time range: facility=%q, time=%s-%s",
				req.Facility, req.StartTime, req.EndTime)
			h.respondOutcome(w, http.StatusBadRequest, msgInvalidTimeRange, outcome.Result(0))

		case errors.Is(err, bookFacility.ErrParseFailure):
			h.logger.Warn("POST /bookings - Invalid date: facility=%q, date=%q", req.Facility, req.Date)
			h.respondOutcome(w, http.StatusBadRequest, msgInvalidDate, outcome.Result(0))

		case errors.Is(err, bookFacility.ErrAlreadyBooked):
			h.logger.Warn("POST /bookings - Already booked: facility=%q, date=%s, time=%s-%s",
				req.Facility, req.Date, req.StartTime, req.EndTime)
			h.respondOutcome(w, http.StatusConflict, msgAlreadyBooked, outcome.Result(0))

		default:
			h.logger.Error("POST /bookings - Failed to book facility: facility=%q, error=%v", req.Facility, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Facility booked successfully: reservation_id=%s, facility=%q, amount=%v",
		result.ReservationID, result.Facility, result.Amount)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

func (h *Handler) respondOutcome(w http.ResponseWriter, status int, message, result string) {
	handlers.RespondJSON(w, status, BookingErrorResponse{
		Error:  message,
		Result: result,
	})
}
