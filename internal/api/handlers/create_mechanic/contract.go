package create_mechanic

import (
	"context"

	"github.com/m04kA/SMC-GarageService/internal/service/accounts/models"
)

type AccountsService interface {
	CreateMechanicProfile(ctx context.Context, req *models.CreateMechanicProfileRequest) (*models.MechanicResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
