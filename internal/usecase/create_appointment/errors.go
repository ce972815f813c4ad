package create_appointment

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена у этого механика
	ErrServiceNotFound = errors.New("create_appointment: service not found for this mechanic")

	// ErrSlotNotFound возвращается, когда якорный слот не существует
	ErrSlotNotFound = errors.New("create_appointment: time slot not found")

	// ErrNoSlotsAvailable возвращается, когда у механика нет ни одного
	// свободного слота начиная с якорного времени
	ErrNoSlotsAvailable = errors.New("create_appointment: no slots available")

	// ErrNotEnoughAdjacentSlots возвращается, когда непрерывная цепочка
	// от якоря короче длительности услуги
	ErrNotEnoughAdjacentSlots = errors.New("create_appointment: not enough adjacent slots available")

	// ErrSlotConflict возвращается, когда слот из цепочки успела занять
	// конкурирующая транзакция; клиент может повторить попытку по свежей
	// доступности
	ErrSlotConflict = errors.New("create_appointment: slot was taken by a concurrent booking")

	// ErrInvalidServiceDuration возвращается при нулевой или некорректной
	// длительности услуги
	ErrInvalidServiceDuration = errors.New("create_appointment: invalid service duration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
