package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.AtomicSlot, error)
	GetFreeFromStart(ctx context.Context, mechanicID int64, from time.Time) ([]*domain.AtomicSlot, error)
	MarkConsumed(ctx context.Context, slotID, appointmentID, serviceID int64) error
	ShrinkAndConsume(ctx context.Context, slotID int64, newEnd time.Time, appointmentID, serviceID int64) error
	CreateBatch(ctx context.Context, slots []*domain.AtomicSlot) ([]*domain.AtomicSlot, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByMechanic(ctx context.Context, serviceID, mechanicID int64) (*domain.Service, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
