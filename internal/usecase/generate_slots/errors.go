package generate_slots

import "errors"

var (
	// ErrMechanicNotFound возвращается, когда механик не найден
	ErrMechanicNotFound = errors.New("generate_slots: mechanic not found")

	// ErrInvalidWindow возвращается, когда конец окна не позже начала
	ErrInvalidWindow = errors.New("generate_slots: end time must be after start time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("generate_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("generate_slots: internal error")
)
