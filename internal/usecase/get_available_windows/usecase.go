package get_available_windows

import (
	"context"
	"errors"
	"fmt"

	serviceRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/services"
)

// UseCase use case поиска доступных окон для бронирования услуги
type UseCase struct {
	slotRepo     SlotRepository
	serviceRepo  ServiceRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	serviceRepo ServiceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		serviceRepo:  serviceRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case поиска доступных окон
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableWindows: mechanic=%d, service=%d", req.MechanicID, req.ServiceID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableWindows: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу и её длительность (услуга должна принадлежать механику)
	service, err := uc.serviceRepo.GetByMechanic(ctx, req.ServiceID, req.MechanicID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableWindows: service id=%d not found for mechanic id=%d",
				req.ServiceID, req.MechanicID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableWindows: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	required, err := service.RequiredDuration()
	if err != nil || required <= 0 {
		uc.logger.Warn("GetAvailableWindows: service id=%d has invalid duration %q",
			req.ServiceID, service.Duration)
		return nil, ErrInvalidServiceDuration
	}

	// 3. Получаем свободные будущие слоты механика по возрастанию времени начала
	slots, err := uc.slotRepo.GetFreeFuture(ctx, req.MechanicID, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Error("GetAvailableWindows: failed to get slots for mechanic id=%d: %v",
			req.MechanicID, err)
		return nil, fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
	}

	// 4. Собираем окна из непрерывных цепочек слотов
	windows := chainWindows(slots, required)

	uc.logger.Info("GetAvailableWindows: found %d windows for mechanic=%d, service=%d",
		len(windows), req.MechanicID, req.ServiceID)

	return &Response{
		MechanicID: req.MechanicID,
		ServiceID:  req.ServiceID,
		Windows:    windows,
	}, nil
}
