package create_service

import "github.com/m04kA/SMC-GarageService/internal/service/catalog/models"

// CreateServiceRequest HTTP request model
// ID механика приходит из URL, а не из тела запроса
type CreateServiceRequest struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Duration string `json:"duration"` // "01:30" или "01:30:00"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateServiceRequest) ToServiceRequest(mechanicID int64) *models.CreateServiceRequest {
	return &models.CreateServiceRequest{
		MechanicID: mechanicID,
		Name:       r.Name,
		Price:      r.Price,
		Duration:   r.Duration,
	}
}
