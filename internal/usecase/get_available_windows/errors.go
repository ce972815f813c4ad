package get_available_windows

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена у этого механика
	ErrServiceNotFound = errors.New("get_available_windows: service not found for this mechanic")

	// ErrInvalidServiceDuration возвращается, когда длительность услуги
	// нулевая или не парсится
	ErrInvalidServiceDuration = errors.New("get_available_windows: invalid service duration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_windows: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_windows: internal error")
)
