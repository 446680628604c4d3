package booking

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// Repository хранилище бронирований в памяти процесса.
// Бронирования каждой площадки лежат отсортированными по времени начала.
// Репозиторий защищает только собственную структуру данных: атомарность
// "проверка конфликта + вставка" обеспечивает transaction manager на уровне use case.
type Repository struct {
	mu         sync.RWMutex
	byFacility map[string][]*domain.Reservation
	byID       map[string]*domain.Reservation
	now        func() time.Time
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository() *Repository {
	return &Repository{
		byFacility: make(map[string][]*domain.Reservation),
		byID:       make(map[string]*domain.Reservation),
		now:        time.Now,
	}
}

// Create сохраняет новое бронирование.
// Если ID не задан, генерирует UUID; CreatedAt проставляется всегда.
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if reservation == nil || reservation.Facility == "" {
		return nil, fmt.Errorf("%w: Create - facility is required", ErrInvalidReservation)
	}
	if !reservation.Start.Before(reservation.End) {
		return nil, fmt.Errorf("%w: Create - start %s is not before end %s",
			ErrInvalidReservation, reservation.Start.Format(time.RFC3339), reservation.End.Format(time.RFC3339))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *reservation
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if _, exists := r.byID[stored.ID]; exists {
		return nil, fmt.Errorf("%w: Create - id=%s", ErrDuplicateID, stored.ID)
	}
	stored.CreatedAt = r.now()

	list := r.byFacility[stored.Facility]
	idx := sort.Search(len(list), func(i int) bool {
		return list[i].Start.After(stored.Start)
	})
	list = append(list, nil)
	copy(list[idx+1:], list[idx:])
	list[idx] = &stored

	r.byFacility[stored.Facility] = list
	r.byID[stored.ID] = &stored

	result := stored
	return &result, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	reservation, ok := r.byID[id]
	if !ok {
		return nil, ErrReservationNotFound
	}

	result := *reservation
	return &result, nil
}

// GetByFacilityWithFilter получает бронирования площадки, отсортированные по времени начала.
// Если в фильтре указан Date - только бронирования, начинающиеся в этот день.
func (r *Repository) GetByFacilityWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.byFacility[filter.Facility]
	result := make([]*domain.Reservation, 0, len(list))
	for _, reservation := range list {
		if filter.Date != nil && !reservation.IsOnDate(*filter.Date) {
			continue
		}
		copied := *reservation
		result = append(result, &copied)
	}

	return result, nil
}

// CountByFacility возвращает количество бронирований площадки
func (r *Repository) CountByFacility(ctx context.Context, facility string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byFacility[facility]), nil
}
