package generate_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// UseCase use case нарезки окна доступности на атомарные слоты
type UseCase struct {
	slotRepo     SlotRepository
	mechanicRepo MechanicRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	mechanicRepo MechanicRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		mechanicRepo: mechanicRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute нарезает окно [start, end) на слоты фиксированной длины (30 минут).
// Хвост короче целого слота отбрасывается. Вставки выполняются в одной
// транзакции: либо создается вся нарезка, либо ничего.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateSlots: mechanic=%d, date=%s, window=[%s, %s)",
		req.MechanicID, req.Date.Format(domain.DateFormat),
		req.StartTime.Format(domain.TimeFormat), req.EndTime.Format(domain.TimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GenerateSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование механика до любых вставок
	exists, err := uc.mechanicRepo.Exists(ctx, req.MechanicID)
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to check mechanic id=%d: %v", req.MechanicID, err)
		return nil, fmt.Errorf("%w: failed to check mechanic: %v", ErrInternal, err)
	}
	if !exists {
		uc.logger.Warn("GenerateSlots: mechanic id=%d not found", req.MechanicID)
		return nil, ErrMechanicNotFound
	}

	// 3. Нарезаем окно на целые слоты фиксированной длины
	slots := tileWindow(req)

	// 4. Вставляем слоты в порядке следования одной транзакцией
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := uc.slotRepo.CreateBatch(txCtx, slots); err != nil {
			uc.logger.Error("GenerateSlots: failed to create slots: %v", err)
			return fmt.Errorf("%w: failed to create slots: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("GenerateSlots: created %d slots for mechanic=%d", len(slots), req.MechanicID)

	summaries := make([]SlotSummary, len(slots))
	for i, slot := range slots {
		summaries[i] = SlotSummary{
			ID:        slot.ID,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		}
	}

	return &Response{
		Status: "created",
		Slots:  summaries,
	}, nil
}

// tileWindow нарезает окно на слоты по domain.SlotDuration начиная от start.
// Создаются только целые слоты: пока start + 30m <= end
func tileWindow(req *Request) []*domain.AtomicSlot {
	slots := make([]*domain.AtomicSlot, 0)

	for start := req.StartTime; !start.Add(domain.SlotDuration).After(req.EndTime); start = start.Add(domain.SlotDuration) {
		slots = append(slots, &domain.AtomicSlot{
			MechanicID: req.MechanicID,
			Date:       req.Date,
			StartTime:  start,
			EndTime:    start.Add(domain.SlotDuration),
		})
	}

	return slots
}
