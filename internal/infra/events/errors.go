package events

import "errors"

var (
	// ErrPublisherClosed возвращается при публикации в закрытый publisher
	ErrPublisherClosed = errors.New("events.publisher: publisher is closed")

	// ErrInvalidConfig возвращается при некорректной конфигурации Kafka
	ErrInvalidConfig = errors.New("events.publisher: invalid configuration")

	// ErrEncodeEvent возвращается при ошибке сериализации события
	ErrEncodeEvent = errors.New("events.publisher: failed to encode event")

	// ErrWriteMessage возвращается при ошибке записи сообщения в Kafka
	ErrWriteMessage = errors.New("events.publisher: failed to write message")
)
