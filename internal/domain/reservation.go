package domain

import "time"

// Reservation is a committed, immutable booked interval of a facility
type Reservation struct {
	ID        string
	Facility  string
	Start     time.Time
	End       time.Time
	Amount    float64
	CreatedAt time.Time
}

// ConflictsWith reports whether [start, end] collides with the reservation under the policy
func (r *Reservation) ConflictsWith(start, end time.Time, policy ConflictPolicy) bool {
	if policy == ConflictExclusive {
		return r.Start.Before(end) && r.End.After(start)
	}
	return !r.Start.After(end) && !r.End.Before(start)
}

// Duration returns the reserved duration
func (r *Reservation) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// IsOnDate reports whether the reservation starts on the calendar day of date
func (r *Reservation) IsOnDate(date time.Time) bool {
	y1, m1, d1 := r.Start.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// ReservationsFilter фильтр для получения бронирований площадки
type ReservationsFilter struct {
	Facility string     // Обязательный параметр
	Date     *time.Time // День начала бронирования (опционально, если nil - все дни)
}
