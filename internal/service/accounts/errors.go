package accounts

import "errors"

var (
	// ErrEmailTaken возвращается при попытке регистрации с занятым email
	ErrEmailTaken = errors.New("email already registered")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrMechanicNotFound возвращается, когда профиль гаража не найден
	ErrMechanicNotFound = errors.New("mechanic not found")

	// ErrNotMechanic возвращается при попытке создать профиль гаража
	// для пользователя без роли механика
	ErrNotMechanic = errors.New("user does not have the mechanic role")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
