package list_mechanics

import (
	"context"

	"github.com/m04kA/SMC-GarageService/internal/service/accounts/models"
)

type AccountsService interface {
	ListMechanics(ctx context.Context) (*models.MechanicListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
