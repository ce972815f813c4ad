package get_available_windows

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetFreeFuture(ctx context.Context, mechanicID int64, now time.Time) ([]*domain.AtomicSlot, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByMechanic(ctx context.Context, serviceID, mechanicID int64) (*domain.Service, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
