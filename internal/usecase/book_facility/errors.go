package book_facility

import "errors"

var (
	// ErrInvalidFacility возвращается, когда площадки нет в таблице тарифов
	ErrInvalidFacility = errors.New("book_facility: invalid facility")

	// ErrInvalidTimeRange возвращается, когда время начала не раньше времени окончания
	// или время не удалось разобрать
	ErrInvalidTimeRange = errors.New("book_facility: invalid time range")

	// ErrParseFailure возвращается, когда дату не удалось разобрать
	ErrParseFailure = errors.New("book_facility: failed to parse date")

	// ErrAlreadyBooked возвращается при пересечении с существующим бронированием
	ErrAlreadyBooked = errors.New("book_facility: already booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_facility: internal error")
)
