package get_available_slots

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

type slotKey struct {
	start types.TimeString
	end   types.TimeString
}

// generateSlots нарезает каждый тариф на слоты фиксированной длительности от начала тарифа.
// Хвост тарифа короче слота отбрасывается. Совпадающие слоты пересекающихся тарифов
// возвращаются один раз.
func generateSlots(bands []domain.RateBand, slotDuration int) []slotKey {
	seen := make(map[slotKey]struct{})
	result := make([]slotKey, 0)

	for _, band := range bands {
		current := band.Start

		for current.IsBefore(band.End) {
			slotEnd, err := current.AddMinutes(slotDuration)
			if err != nil || slotEnd.IsAfter(band.End) {
				// Слот выходит за конец тарифа или за конец дня
				break
			}

			key := slotKey{start: current, end: slotEnd}
			if _, ok := seen[key]; !ok {
				seen[key] = struct{}{}
				result = append(result, key)
			}

			current = slotEnd
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].start == result[j].start {
			return result[i].end.IsBefore(result[j].end)
		}
		return result[i].start.IsBefore(result[j].start)
	})

	return result
}

// buildSlots считает доступность и стоимость слотов на дату.
// Доступность проверяется по тем же правилам пересечения, что и при бронировании.
func buildSlots(
	keys []slotKey,
	bands []domain.RateBand,
	date time.Time,
	loc *time.Location,
	reservations []*domain.Reservation,
	policy domain.Policy,
) []Slot {
	slots := make([]Slot, 0, len(keys))

	for _, key := range keys {
		start := key.start.On(date, loc)
		end := key.end.On(date, loc)

		available := true
		for _, reservation := range reservations {
			if reservation.ConflictsWith(start, end, policy.Conflict) {
				available = false
				break
			}
		}

		slots = append(slots, Slot{
			StartTime: key.start,
			EndTime:   key.end,
			Price:     domain.Price(bands, key.start, key.end, policy.Pricing),
			Available: available,
		})
	}

	return slots
}
