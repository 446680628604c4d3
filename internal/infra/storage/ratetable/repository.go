package ratetable

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// Repository неизменяемая таблица тарифов: площадка -> упорядоченный список интервалов.
// Заполняется один раз при старте, после чего только читается, поэтому блокировки не нужны.
type Repository struct {
	order      []string
	facilities map[string]domain.Facility
}

// NewRepository валидирует конфигурацию и строит таблицу тарифов
func NewRepository(facilities []domain.Facility) (*Repository, error) {
	r := &Repository{
		order:      make([]string, 0, len(facilities)),
		facilities: make(map[string]domain.Facility, len(facilities)),
	}

	for _, f := range facilities {
		if err := validateFacility(f); err != nil {
			return nil, err
		}
		if _, exists := r.facilities[f.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateFacility, f.Name)
		}

		bands := make([]domain.RateBand, len(f.Bands))
		copy(bands, f.Bands)
		f.Bands = bands

		r.order = append(r.order, f.Name)
		r.facilities[f.Name] = f
	}

	return r, nil
}

// validateFacility проверяет интервалы площадки
func validateFacility(f domain.Facility) error {
	if f.Name == "" {
		return ErrEmptyFacilityName
	}
	if len(f.Bands) == 0 {
		return fmt.Errorf("%w: %q", ErrNoBands, f.Name)
	}

	for i, band := range f.Bands {
		if band.Start.IsZero() || band.End.IsZero() {
			return fmt.Errorf("%w: %q band #%d: start and end are required", ErrInvalidBand, f.Name, i+1)
		}
		if err := band.Start.Validate(); err != nil {
			return fmt.Errorf("%w: %q band #%d start: %v", ErrInvalidBand, f.Name, i+1, err)
		}
		if err := band.End.Validate(); err != nil {
			return fmt.Errorf("%w: %q band #%d end: %v", ErrInvalidBand, f.Name, i+1, err)
		}
		if !band.Start.IsBefore(band.End) {
			return fmt.Errorf("%w: %q band #%d: start %s is not before end %s",
				ErrInvalidBand, f.Name, i+1, band.Start, band.End)
		}
		if band.HourlyRate < 0 {
			return fmt.Errorf("%w: %q band #%d: negative rate %v", ErrInvalidBand, f.Name, i+1, band.HourlyRate)
		}
	}

	if f.AllowOverlap {
		return nil
	}

	for i := 0; i < len(f.Bands); i++ {
		for j := i + 1; j < len(f.Bands); j++ {
			if f.Bands[i].Overlaps(f.Bands[j]) {
				return fmt.Errorf("%w: %q %s-%s and %s-%s", ErrOverlappingBands, f.Name,
					f.Bands[i].Start, f.Bands[i].End, f.Bands[j].Start, f.Bands[j].End)
			}
		}
	}

	return nil
}

// RatesFor возвращает тарифные интервалы площадки
func (r *Repository) RatesFor(_ context.Context, facility string) ([]domain.RateBand, error) {
	f, ok := r.facilities[facility]
	if !ok {
		return nil, ErrFacilityNotFound
	}

	bands := make([]domain.RateBand, len(f.Bands))
	copy(bands, f.Bands)
	return bands, nil
}

// GetFacility возвращает площадку вместе с тарифами
func (r *Repository) GetFacility(ctx context.Context, facility string) (*domain.Facility, error) {
	bands, err := r.RatesFor(ctx, facility)
	if err != nil {
		return nil, err
	}

	f := r.facilities[facility]
	f.Bands = bands
	return &f, nil
}

// Has проверяет наличие площадки в таблице
func (r *Repository) Has(_ context.Context, facility string) bool {
	_, ok := r.facilities[facility]
	return ok
}

// Facilities возвращает названия площадок в порядке конфигурации
func (r *Repository) Facilities(_ context.Context) []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
