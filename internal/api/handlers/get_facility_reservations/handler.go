package get_facility_reservations

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/facilities"
)

const (
	msgInvalidParams    = "некорректные параметры запроса, ожидается date=DD-MM-YYYY"
	msgFacilityNotFound = "площадка не найдена"
)

type Handler struct {
	service  FacilityService
	location *time.Location
	logger   Logger
}

func NewHandler(service FacilityService, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/facilities/{facility}/reservations
// Query params: date (опционально, DD-MM-YYYY)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facility := mux.Vars(r)["facility"]

	serviceReq, err := ToServiceRequest(facility, r.URL.Query().Get("date"), h.location)
	if err != nil {
		h.logger.Warn("GET /facilities/{facility}/reservations - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.ListReservations(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, facilities.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{facility}/reservations - Facility not found: facility=%q", facility)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		default:
			h.logger.Error("GET /facilities/{facility}/reservations - Failed to get reservations: facility=%q, error=%v",
				facility, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{facility}/reservations - Reservations retrieved successfully: facility=%q, count=%d",
		facility, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
