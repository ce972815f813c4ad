package generate_slots

import "time"

// Request модель запроса на публикацию окна доступности
type Request struct {
	MechanicID int64     // ID механика
	Date       time.Time // Дата окна (без времени)
	StartTime  time.Time // Начало окна
	EndTime    time.Time // Конец окна (исключительно)
}

// Response модель ответа со списком созданных атомарных слотов
type Response struct {
	Status string        // "created"
	Slots  []SlotSummary // Созданные слоты в порядке следования
}

// SlotSummary краткое описание созданного слота
type SlotSummary struct {
	ID        int64
	StartTime time.Time
	EndTime   time.Time
}
