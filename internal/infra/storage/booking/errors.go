package booking

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("booking.repository: reservation not found")

	// ErrInvalidReservation возвращается при попытке сохранить некорректное бронирование
	ErrInvalidReservation = errors.New("booking.repository: invalid reservation")

	// ErrDuplicateID возвращается, когда бронирование с таким ID уже существует
	ErrDuplicateID = errors.New("booking.repository: duplicate reservation id")
)
