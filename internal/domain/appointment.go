package domain

import "time"

// AppointmentStatus статус записи на обслуживание
type AppointmentStatus string

const (
	// StatusScheduled единственный статус в текущей модели:
	// запись создается один раз и дальше не меняется
	StatusScheduled AppointmentStatus = "scheduled"
)

// Appointment represents a booked appointment for a service.
// EndTime всегда равен StartTime + длительность услуги
type Appointment struct {
	ID         int64
	ClientID   int64
	MechanicID int64
	ServiceID  int64
	Date       time.Time
	Time       time.Time
	Status     AppointmentStatus
	StartTime  time.Time
	EndTime    time.Time
	CreatedAt  time.Time
}
