package catalog

import (
	"context"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
	ListByMechanic(ctx context.Context, mechanicID int64) ([]*domain.Service, error)
}

// MechanicRepository интерфейс репозитория профилей гаражей
type MechanicRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
