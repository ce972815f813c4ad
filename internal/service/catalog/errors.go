package catalog

import "errors"

var (
	// ErrMechanicNotFound возвращается, когда профиль гаража не найден
	ErrMechanicNotFound = errors.New("mechanic not found")

	// ErrInvalidDuration возвращается при нулевой или неразбираемой
	// длительности услуги
	ErrInvalidDuration = errors.New("invalid service duration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
