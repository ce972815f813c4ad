package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// consumption описывает, как будет занят один слот цепочки.
// Для терминального частично занятого слота Partial=true и SplitAt
// указывает новую границу слота (start + остаток длительности).
type consumption struct {
	Slot    *domain.AtomicSlot
	Partial bool
	SplitAt time.Time
}

// selectChain выбирает непрерывную цепочку слотов, покрывающую required.
// Цепочка обязана начинаться с первого слота среза: якорное время
// бронирования фиксировано, сдвиг вперёд недопустим.
func selectChain(slots []*domain.AtomicSlot, required time.Duration) ([]*domain.AtomicSlot, error) {
	var (
		chain []*domain.AtomicSlot
		total time.Duration
	)

	for i, slot := range slots {
		if i > 0 && !slot.IsAdjacentTo(chain[len(chain)-1].EndTime) {
			break
		}

		chain = append(chain, slot)
		total += slot.Length()

		if total >= required {
			return chain, nil
		}
	}

	return nil, ErrNotEnoughAdjacentSlots
}

// planConsumption раскладывает required по слотам цепочки. Слоты, чья
// длина не превышает остаток, занимаются целиком; последний слот при
// неполном использовании помечается на разрез.
func planConsumption(chain []*domain.AtomicSlot, required time.Duration) []consumption {
	var plan []consumption

	remaining := required
	for _, slot := range chain {
		if remaining <= 0 {
			break
		}

		length := slot.Length()
		if length <= remaining {
			plan = append(plan, consumption{Slot: slot})
			remaining -= length
			continue
		}

		plan = append(plan, consumption{
			Slot:    slot,
			Partial: true,
			SplitAt: slot.StartTime.Add(remaining),
		})
		break
	}

	return plan
}
