package mechanics

import "errors"

var (
	// ErrMechanicNotFound возвращается, когда механик не найден
	ErrMechanicNotFound = errors.New("mechanics.repository: mechanic not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("mechanics.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("mechanics.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("mechanics.repository: failed to scan row")
)
