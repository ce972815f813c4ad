package slots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slots.repository: slot not found")

	// ErrSlotAlreadyBooked возвращается, когда слот уже занят другой записью
	// (проверка appointment_id IS NULL при мутации не прошла)
	ErrSlotAlreadyBooked = errors.New("slots.repository: slot already booked")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slots.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slots.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slots.repository: failed to scan row")
)
