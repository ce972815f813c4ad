package register_mechanic

import (
	"context"

	"github.com/m04kA/SMC-GarageService/internal/service/accounts/models"
)

type AccountsService interface {
	RegisterMechanic(ctx context.Context, req *models.RegisterMechanicRequest) (*models.RegisterMechanicResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
