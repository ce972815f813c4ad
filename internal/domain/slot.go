package domain

import "time"

// AtomicSlot smallest indivisible unit of mechanic availability.
// Слоты только создаются; после создания их мутирует исключительно
// аллокатор бронирований (занятие и сплит граничного слота).
type AtomicSlot struct {
	ID            int64
	MechanicID    int64
	Date          time.Time
	StartTime     time.Time
	EndTime       time.Time
	AppointmentID *int64 // NULL = слот свободен
	ServiceID     *int64 // Заполняется при бронировании
	CreatedAt     time.Time
}

// IsFree returns true if the slot is not consumed by an appointment
func (s *AtomicSlot) IsFree() bool {
	return s.AppointmentID == nil
}

// Length returns the slot span length
func (s *AtomicSlot) Length() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}

// IsAdjacentTo проверяет строгую смежность: слот начинается ровно там,
// где заканчивается предыдущий интервал
func (s *AtomicSlot) IsAdjacentTo(end time.Time) bool {
	return s.StartTime.Equal(end)
}

// AvailabilityWindow a contiguous run of atomic slots truncated to a
// service's required duration, offered as a bookable start option
type AvailabilityWindow struct {
	SlotIDs   []int64
	Date      time.Time
	StartTime time.Time
	EndTime   time.Time
}
