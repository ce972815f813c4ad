package models

import "github.com/m04kA/SMC-GarageService/internal/domain"

// Request модели

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	MechanicID int64  `json:"mechanicId"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Duration   string `json:"duration"` // "01:30" или "01:30:00"
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID         int64  `json:"id"`
	MechanicID int64  `json:"mechanicId"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Duration   string `json:"duration"`
}

// ServiceListResponse ответ со списком услуг механика
type ServiceListResponse struct {
	MechanicID int64             `json:"mechanicId"`
	Services   []ServiceResponse `json:"services"`
	Total      int               `json:"total"`
}

// FromDomainService конвертирует domain модель в response
func FromDomainService(service *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:         service.ID,
		MechanicID: service.MechanicID,
		Name:       service.Name,
		Price:      service.Price,
		Duration:   service.Duration.String(),
	}
}

// FromDomainServiceList конвертирует список domain моделей в response
func FromDomainServiceList(mechanicID int64, services []*domain.Service) *ServiceListResponse {
	result := make([]ServiceResponse, 0, len(services))
	for _, service := range services {
		result = append(result, *FromDomainService(service))
	}

	return &ServiceListResponse{
		MechanicID: mechanicID,
		Services:   result,
		Total:      len(result),
	}
}
