package book_facility

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
	Location *time.Location // Локация, в которой дата и время превращаются в момент времени
}

// UseCase use case для бронирования площадки
type UseCase struct {
	rateTable       RateTable
	reservationRepo ReservationRepository
	txManager       TransactionManager
	publisher       EventPublisher
	metrics         MetricsRecorder
	policy          domain.Policy
	location        *time.Location
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	rateTable RateTable,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics MetricsRecorder,
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

	if metrics == nil {
		metrics = NoopMetrics{}
	}

	return &UseCase{
		rateTable:       rateTable,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		publisher:       publisher,
		metrics:         metrics,
		policy:          policy,
		location:        location,
		logger:          logger,
	}
}

// Book выполняет бронирование и возвращает строку результата.
// Используется интерактивным циклом ввода.
func (uc *UseCase) Book(ctx context.Context, facility, date, startTime, endTime string) string {
	resp, err := uc.Execute(ctx, &Request{
		Facility:  facility,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
	})
	if err != nil {
		return OutcomeFromError(err).Result(0)
	}
	return resp.Result()
}

// Execute выполняет use case бронирования площадки.
// Проверка конфликтов и вставка выполняются под блокировкой площадки.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookFacility: facility=%s, date=%s, time=%s-%s",
		req.Facility, req.Date, req.StartTime, req.EndTime)

	resp, err := uc.execute(ctx, req)

	known := !errors.Is(err, ErrInvalidFacility)
	amount := 0.0
	if resp != nil {
		amount = resp.Amount
	}
	uc.metrics.ObserveBooking(req.Facility, string(OutcomeFromError(err)), amount, known)

	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Проверяем существование площадки
	if !uc.rateTable.Has(ctx, req.Facility) {
		uc.logger.Warn("BookFacility: facility %q not found", req.Facility)
		return nil, fmt.Errorf("%w: %q", ErrInvalidFacility, req.Facility)
	}

	// 2. Разбираем время и проверяем интервал
	startTime, endTime, err := parseTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		uc.logger.Warn("BookFacility: invalid time range: %v", err)
		return nil, err
	}

	// 3. Строим абсолютный интервал
	date, err := parseDate(req.Date, uc.location)
	if err != nil {
		uc.logger.Warn("BookFacility: %v", err)
		return nil, err
	}
	slotStart := startTime.On(date, uc.location)
	slotEnd := endTime.On(date, uc.location)

	bands, err := uc.rateTable.RatesFor(ctx, req.Facility)
	if err != nil {
		if errors.Is(err, ratetable.ErrFacilityNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFacility, req.Facility)
		}
		uc.logger.Error("BookFacility: failed to get rates for %q: %v", req.Facility, err)
		return nil, fmt.Errorf("%w: failed to get rates: %v", ErrInternal, err)
	}

	// Стоимость зависит только от тарифов и интервала, результат вставки на нее не влияет
	amount := domain.Price(bands, startTime, endTime, uc.policy.Pricing)

	var result *domain.Reservation
	var count int

	// 4. Проверка конфликтов и вставка под блокировкой площадки
	err = uc.txManager.DoSerializable(ctx, req.Facility, func(txCtx context.Context) error {
		// 4.1. Получаем все бронирования площадки
		reservations, err := uc.reservationRepo.GetByFacilityWithFilter(txCtx, domain.ReservationsFilter{
			Facility: req.Facility,
		})
		if err != nil {
			uc.logger.Error("BookFacility: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 4.2. Ищем пересечение
		if conflict := findConflict(reservations, slotStart, slotEnd, uc.policy.Conflict); conflict != nil {
			uc.logger.Warn("BookFacility: %s %s-%s conflicts with reservation id=%s",
				req.Facility, slotStart.Format(time.DateTime), slotEnd.Format(time.DateTime), conflict.ID)
			return ErrAlreadyBooked
		}

		// 5. Сохраняем бронирование (нулевая стоимость не откатывает вставку)
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			Facility: req.Facility,
			Start:    slotStart,
			End:      slotEnd,
			Amount:   amount,
		})
		if err != nil {
			uc.logger.Error("BookFacility: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		count = len(reservations) + 1
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrAlreadyBooked) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("BookFacility: failed to lock facility %q: %v", req.Facility, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("BookFacility: created reservation id=%s, amount=%s",
		result.ID, domain.FormatAmount(result.Amount))
	uc.metrics.SetReservations(req.Facility, count)

	// 6. Публикуем событие; ошибка публикации не меняет результат
	if uc.publisher != nil {
		if err := uc.publisher.PublishBookingCreated(ctx, result); err != nil {
			uc.logger.Error("BookFacility: failed to publish event for reservation id=%s: %v", result.ID, err)
		}
	}

	// 7. Возвращаем результат
	return fromDomainReservation(result), nil
}
