package facilities

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/ratetable"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/facilities/models"
)

// Service сервис для чтения площадок и их бронирований
type Service struct {
	rateTable       RateTable
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(
	rateTable RateTable,
	reservationRepo ReservationRepository,
	logger Logger,
) *Service {
	return &Service{
		rateTable:       rateTable,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// FacilityNames возвращает названия площадок в порядке конфигурации
func (s *Service) FacilityNames(ctx context.Context) []string {
	return s.rateTable.Facilities(ctx)
}

// ListFacilities получает все площадки с тарифами
func (s *Service) ListFacilities(ctx context.Context) (*models.FacilityListResponse, error) {
	names := s.rateTable.Facilities(ctx)

	result := make([]models.Facility, 0, len(names))
	for _, name := range names {
		facility, err := s.rateTable.GetFacility(ctx, name)
		if err != nil {
			s.logger.Error("ListFacilities: failed to get facility %q: %v", name, err)
			return nil, fmt.Errorf("%w: ListFacilities - rate table error: %v", ErrInternal, err)
		}
		result = append(result, models.FromDomainFacility(facility))
	}

	s.logger.Info("ListFacilities: fetched %d facilities", len(result))
	return &models.FacilityListResponse{
		Facilities: result,
		Total:      len(result),
	}, nil
}

// GetFacility получает площадку по названию
func (s *Service) GetFacility(ctx context.Context, name string) (*models.Facility, error) {
	facility, err := s.rateTable.GetFacility(ctx, name)
	if err != nil {
		if errors.Is(err, ratetable.ErrFacilityNotFound) {
			s.logger.Warn("GetFacility: facility %q not found", name)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("GetFacility: rate table error for %q: %v", name, err)
		return nil, fmt.Errorf("%w: GetFacility - rate table error: %v", ErrInternal, err)
	}

	result := models.FromDomainFacility(facility)
	return &result, nil
}

// ListReservations получает бронирования площадки, отсортированные по времени начала.
// Если указана дата, возвращает только бронирования этого дня.
func (s *Service) ListReservations(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	if req.Date != nil {
		s.logger.Info("ListReservations: facility=%q, date=%s", req.Facility, req.Date.Format(domain.DateFormat))
	} else {
		s.logger.Info("ListReservations: facility=%q", req.Facility)
	}

	if _, err := s.GetFacility(ctx, req.Facility); err != nil {
		return nil, err
	}

	reservations, err := s.reservationRepo.GetByFacilityWithFilter(ctx, domain.ReservationsFilter{
		Facility: req.Facility,
		Date:     req.Date,
	})
	if err != nil {
		s.logger.Error("ListReservations: repository error for %q: %v", req.Facility, err)
		return nil, fmt.Errorf("%w: ListReservations - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservationList(req.Facility, reservations), nil
}

// GetReservation получает бронирование по ID
func (s *Service) GetReservation(ctx context.Context, id string) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrReservationNotFound) {
			s.logger.Warn("GetReservation: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetReservation: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetReservation - repository error: %v", ErrInternal, err)
	}

	result := models.FromDomainReservation(reservation)
	return &result, nil
}
