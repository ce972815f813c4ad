package get_available_windows

import (
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// chainWindows находит доступные окна в отсортированном по возрастанию
// списке свободных слотов.
//
// Для каждого стартового индекса жадно набирается непрерывная цепочка:
// следующий слот добавляется только если он начинается ровно там, где
// закончился предыдущий (строгая смежность). Набор останавливается на
// первом разрыве или как только накопленная длительность достигла
// required. Окно публикуется с концом start + required, а не с концом
// последнего слота: лишнее время цепочки в окно не входит.
//
// На каждый стартовый индекс публикуется не больше одного окна, поэтому
// одни и те же физические слоты могут входить в несколько пересекающихся
// окон (по одному на каждый возможный старт).
func chainWindows(slots []*domain.AtomicSlot, required time.Duration) []Window {
	windows := make([]Window, 0)

	for i := range slots {
		slotIDs := make([]int64, 0, 1)
		total := time.Duration(0)
		start := slots[i].StartTime
		currentEnd := slots[i].StartTime

		for j := i; j < len(slots); j++ {
			slot := slots[j]

			if j > i && !slot.IsAdjacentTo(currentEnd) {
				// Разрыв в цепочке, с этого старта окно не собрать
				break
			}

			slotIDs = append(slotIDs, slot.ID)
			total += slot.Length()
			currentEnd = slot.EndTime

			if total >= required {
				windows = append(windows, Window{
					SlotIDs:   slotIDs,
					Date:      slots[i].Date,
					StartTime: start,
					EndTime:   start.Add(required),
				})
				break
			}
		}
	}

	return windows
}
