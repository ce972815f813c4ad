package generate_slots

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.MechanicID <= 0 {
		return fmt.Errorf("%w: mechanicID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	// Конец окна строго позже начала; равенство тоже недопустимо
	if !req.EndTime.After(req.StartTime) {
		return ErrInvalidWindow
	}

	return nil
}
