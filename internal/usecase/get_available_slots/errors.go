package get_available_slots

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда площадки нет в таблице тарифов
	ErrFacilityNotFound = errors.New("get_available_slots: facility not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
