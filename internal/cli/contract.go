package cli

import "context"

// Booker выполняет бронирование и возвращает строку результата
type Booker interface {
	Book(ctx context.Context, facility, date, startTime, endTime string) string
}

// FacilityLister возвращает названия площадок
type FacilityLister interface {
	FacilityNames(ctx context.Context) []string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
