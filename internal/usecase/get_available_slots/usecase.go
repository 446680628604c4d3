package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/ratetable"
)

// Config настройки use case
type Config struct {
	Policy   domain.Policy
	Location *time.Location
}

// UseCase use case для получения слотов площадки на дату
type UseCase struct {
	rateTable       RateTable
	reservationRepo ReservationRepository
	policy          domain.Policy
	location        *time.Location
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	rateTable RateTable,
	reservationRepo ReservationRepository,
	cfg Config,
	logger Logger,
) *UseCase {
	policy := cfg.Policy
	if !policy.IsValid() {
		policy = domain.DefaultPolicy()
	}

	location := cfg.Location
	if location == nil {
		location = time.UTC
	}

	return &UseCase{
		rateTable:       rateTable,
		reservationRepo: reservationRepo,
		policy:          policy,
		location:        location,
		logger:          logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: facility=%q, date=%s, duration=%d",
		req.Facility, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 2. Получаем тарифы площадки
	bands, err := uc.rateTable.RatesFor(ctx, req.Facility)
	if err != nil {
		if errors.Is(err, ratetable.ErrFacilityNotFound) {
			uc.logger.Warn("GetAvailableSlots: facility %q not found", req.Facility)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get rates for %q: %v", req.Facility, err)
		return nil, fmt.Errorf("%w: failed to get rates: %v", ErrInternal, err)
	}

	// 3. Нарезаем тарифы на слоты
	keys := generateSlots(bands, req.DurationMinutes)

	// 4. Получаем бронирования площадки.
	// Берем все дни: бронирование предыдущего дня может касаться полуночи.
	reservations, err := uc.reservationRepo.GetByFacilityWithFilter(ctx, domain.ReservationsFilter{
		Facility: req.Facility,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 5. Вычисляем доступность и стоимость каждого слота
	slots := buildSlots(keys, bands, req.Date, uc.location, reservations, uc.policy)

	uc.logger.Info("GetAvailableSlots: generated %d slots for %q on %s",
		len(slots), req.Facility, req.Date.Format(domain.DateFormat))

	return &Response{
		Facility:        req.Facility,
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		Slots:           slots,
	}, nil
}
