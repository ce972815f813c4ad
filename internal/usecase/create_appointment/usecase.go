package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/services"
	slotRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/slots"
)

// UseCase use case бронирования услуги от якорного слота
type UseCase struct {
	slotRepo        SlotRepository
	serviceRepo     ServiceRepository
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	serviceRepo ServiceRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:        slotRepo,
		serviceRepo:     serviceRepo,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case бронирования.
//
// Аллокация целиком идёт в serializable-транзакции: чтение свободных
// слотов от якоря (FOR UPDATE), выбор непрерывной цепочки, создание
// записи и занятие слотов с возможным сплитом терминального слота.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%d, mechanic=%d, service=%d, slot=%d",
		req.ClientID, req.MechanicID, req.ServiceID, req.TimeSlotID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу и её длительность (услуга должна принадлежать механику)
	service, err := uc.serviceRepo.GetByMechanic(ctx, req.ServiceID, req.MechanicID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found for mechanic id=%d",
				req.ServiceID, req.MechanicID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	required, err := service.RequiredDuration()
	if err != nil || required <= 0 {
		uc.logger.Warn("CreateAppointment: service id=%d has invalid duration %q",
			req.ServiceID, service.Duration)
		return nil, ErrInvalidServiceDuration
	}

	// 3. Получаем якорный слот: его начало фиксирует время бронирования
	anchor, err := uc.slotRepo.GetByID(ctx, req.TimeSlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("CreateAppointment: slot id=%d not found", req.TimeSlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get slot id=%d: %v", req.TimeSlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	var appointment *domain.Appointment

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4. Читаем свободные слоты механика от якорного времени с блокировкой
		slots, err := uc.slotRepo.GetFreeFromStart(txCtx, req.MechanicID, anchor.StartTime)
		if err != nil {
			return fmt.Errorf("%w: failed to get free slots: %v", ErrInternal, err)
		}
		if len(slots) == 0 {
			return ErrNoSlotsAvailable
		}

		// 5. Выбираем непрерывную цепочку нужной длительности от первого слота
		chain, err := selectChain(slots, required)
		if err != nil {
			return err
		}

		startTime := chain[0].StartTime
		endTime := startTime.Add(required)

		// 6. Создаем запись
		appointment, err = uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			ClientID:   req.ClientID,
			MechanicID: req.MechanicID,
			ServiceID:  req.ServiceID,
			Date:       chain[0].Date,
			Time:       startTime,
			Status:     domain.StatusScheduled,
			StartTime:  startTime,
			EndTime:    endTime,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		// 7. Занимаем слоты цепочки; терминальный слот при неполном
		// использовании режем, остаток возвращаем свободным слотом
		for _, step := range planConsumption(chain, required) {
			if !step.Partial {
				if err := uc.slotRepo.MarkConsumed(txCtx, step.Slot.ID, appointment.ID, req.ServiceID); err != nil {
					return fmt.Errorf("mark slot id=%d: %w", step.Slot.ID, err)
				}
				continue
			}

			originalEnd := step.Slot.EndTime
			if err := uc.slotRepo.ShrinkAndConsume(txCtx, step.Slot.ID, step.SplitAt, appointment.ID, req.ServiceID); err != nil {
				return fmt.Errorf("shrink slot id=%d: %w", step.Slot.ID, err)
			}

			remainder := &domain.AtomicSlot{
				MechanicID: req.MechanicID,
				Date:       step.Slot.Date,
				StartTime:  step.SplitAt,
				EndTime:    originalEnd,
			}
			if _, err := uc.slotRepo.CreateBatch(txCtx, []*domain.AtomicSlot{remainder}); err != nil {
				return fmt.Errorf("%w: failed to create remainder slot: %v", ErrInternal, err)
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotAlreadyBooked) {
			uc.logger.Warn("CreateAppointment: concurrent booking conflict for mechanic id=%d, slot id=%d",
				req.MechanicID, req.TimeSlotID)
			return nil, ErrSlotConflict
		}
		if errors.Is(err, ErrNoSlotsAvailable) || errors.Is(err, ErrNotEnoughAdjacentSlots) {
			uc.logger.Warn("CreateAppointment: cannot allocate %v for mechanic id=%d from slot id=%d: %v",
				required, req.MechanicID, req.TimeSlotID, err)
			return nil, err
		}
		uc.logger.Error("CreateAppointment: transaction failed: %v", err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d for client=%d, %s - %s",
		appointment.ID, req.ClientID,
		appointment.StartTime.Format(domain.TimeFormat), appointment.EndTime.Format(domain.TimeFormat))

	return &Response{
		AppointmentID: appointment.ID,
		Status:        "confirmed",
		StartTime:     appointment.StartTime,
		EndTime:       appointment.EndTime,
	}, nil
}
