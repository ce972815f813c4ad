package accounts

import (
	"context"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// MechanicRepository интерфейс репозитория профилей гаражей
type MechanicRepository interface {
	Create(ctx context.Context, mechanic *domain.Mechanic) (*domain.Mechanic, error)
	GetByID(ctx context.Context, id int64) (*domain.Mechanic, error)
	List(ctx context.Context) ([]*domain.Mechanic, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
