package ratetable

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда площадка отсутствует в таблице тарифов
	ErrFacilityNotFound = errors.New("ratetable.repository: facility not found")

	// ErrEmptyFacilityName возвращается при пустом названии площадки
	ErrEmptyFacilityName = errors.New("ratetable.repository: empty facility name")

	// ErrDuplicateFacility возвращается, когда площадка описана дважды
	ErrDuplicateFacility = errors.New("ratetable.repository: duplicate facility")

	// ErrNoBands возвращается, когда у площадки нет ни одного тарифного интервала
	ErrNoBands = errors.New("ratetable.repository: facility has no rate bands")

	// ErrInvalidBand возвращается при некорректном тарифном интервале
	ErrInvalidBand = errors.New("ratetable.repository: invalid rate band")

	// ErrOverlappingBands возвращается, когда интервалы пересекаются без явного разрешения
	ErrOverlappingBands = errors.New("ratetable.repository: overlapping rate bands")
)
