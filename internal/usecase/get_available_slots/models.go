package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// Request модель запроса на получение слотов площадки
type Request struct {
	Facility        string    // Название площадки
	Date            time.Time // Дата (без времени)
	DurationMinutes int       // Длительность слота, 0 - значение по умолчанию
}

// Response модель ответа со списком слотов
type Response struct {
	Facility        string    // Площадка
	Date            time.Time // Дата, на которую запрашивались слоты
	DurationMinutes int       // Длительность слота
	Slots           []Slot    // Слоты, отсортированные по времени начала
}

// Slot модель временного слота внутри тарифа
type Slot struct {
	StartTime types.TimeString // Время начала, например "10:00"
	EndTime   types.TimeString // Время окончания
	Price     float64          // Стоимость слота при бронировании
	Available bool             // Слот не пересекается с существующими бронированиями
}
