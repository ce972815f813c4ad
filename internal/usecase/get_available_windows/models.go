package get_available_windows

import "time"

// Request модель запроса на поиск доступных окон
type Request struct {
	MechanicID int64 // ID механика
	ServiceID  int64 // ID услуги (должна принадлежать механику)
}

// Response модель ответа со списком доступных окон
type Response struct {
	MechanicID int64
	ServiceID  int64
	Windows    []Window // Окна в порядке возрастания времени начала
}

// Window доступное окно: непрерывная цепочка слотов, усеченная до
// длительности услуги
type Window struct {
	SlotIDs   []int64   // Слоты, образующие цепочку
	Date      time.Time // Дата первого слота
	StartTime time.Time // Начало окна
	EndTime   time.Time // StartTime + длительность услуги
}
