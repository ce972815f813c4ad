package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/internal/service/catalog/models"
	"github.com/m04kA/SMC-GarageService/pkg/types"
)

// Service сервис для работы с каталогом услуг гаражей
type Service struct {
	serviceRepo  ServiceRepository
	mechanicRepo MechanicRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	serviceRepo ServiceRepository,
	mechanicRepo MechanicRepository,
	logger Logger,
) *Service {
	return &Service{
		serviceRepo:  serviceRepo,
		mechanicRepo: mechanicRepo,
		logger:       logger,
	}
}

// CreateService создает услугу в каталоге механика
// Длительность валидируется на этапе создания: бронирование полагается
// на то, что каждая услуга в каталоге имеет положительную длительность
func (s *Service) CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("CreateService: creating service %q for mechanic=%d", req.Name, req.MechanicID)

	if req.MechanicID <= 0 {
		return nil, fmt.Errorf("%w: mechanicID must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: service name is required", ErrInvalidInput)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	duration, err := parseDuration(req.Duration)
	if err != nil {
		s.logger.Warn("CreateService: invalid duration %q for mechanic=%d: %v", req.Duration, req.MechanicID, err)
		return nil, err
	}

	exists, err := s.mechanicRepo.Exists(ctx, req.MechanicID)
	if err != nil {
		s.logger.Error("CreateService: failed to check mechanic id=%d: %v", req.MechanicID, err)
		return nil, fmt.Errorf("%w: CreateService - check mechanic: %v", ErrInternal, err)
	}
	if !exists {
		s.logger.Warn("CreateService: mechanic id=%d not found", req.MechanicID)
		return nil, ErrMechanicNotFound
	}

	service, err := s.serviceRepo.Create(ctx, &domain.Service{
		MechanicID: req.MechanicID,
		Name:       strings.TrimSpace(req.Name),
		Price:      req.Price,
		Duration:   duration,
	})
	if err != nil {
		s.logger.Error("CreateService: failed to create service for mechanic id=%d: %v", req.MechanicID, err)
		return nil, fmt.Errorf("%w: CreateService - create service: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: created service id=%d for mechanic id=%d", service.ID, service.MechanicID)
	return models.FromDomainService(service), nil
}

// ListServices получает все услуги механика
func (s *Service) ListServices(ctx context.Context, mechanicID int64) (*models.ServiceListResponse, error) {
	s.logger.Info("ListServices: fetching services for mechanic=%d", mechanicID)

	if mechanicID <= 0 {
		return nil, fmt.Errorf("%w: mechanicID must be positive", ErrInvalidInput)
	}

	exists, err := s.mechanicRepo.Exists(ctx, mechanicID)
	if err != nil {
		s.logger.Error("ListServices: failed to check mechanic id=%d: %v", mechanicID, err)
		return nil, fmt.Errorf("%w: ListServices - check mechanic: %v", ErrInternal, err)
	}
	if !exists {
		s.logger.Warn("ListServices: mechanic id=%d not found", mechanicID)
		return nil, ErrMechanicNotFound
	}

	services, err := s.serviceRepo.ListByMechanic(ctx, mechanicID)
	if err != nil {
		s.logger.Error("ListServices: repository error for mechanic id=%d: %v", mechanicID, err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListServices: fetched %d services for mechanic id=%d", len(services), mechanicID)
	return models.FromDomainServiceList(mechanicID, services), nil
}

// parseDuration разбирает длительность услуги и требует её положительности
func parseDuration(raw string) (types.TimeString, error) {
	ts, err := types.NewTimeStringFromString(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDuration, err)
	}

	duration, err := ts.Duration()
	if err != nil || duration <= 0 {
		return "", fmt.Errorf("%w: duration must be positive", ErrInvalidDuration)
	}

	return ts, nil
}
