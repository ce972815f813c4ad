package models

import (
	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// Request модели

// RegisterUserRequest запрос на регистрацию пользователя
type RegisterUserRequest struct {
	Name     string  `json:"name"`
	Surname  string  `json:"surname"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
	Password string  `json:"password"`
	Role     string  `json:"role"` // "client" или "mechanic"
}

// RegisterMechanicRequest запрос на регистрацию механика вместе с гаражом
type RegisterMechanicRequest struct {
	Name       string  `json:"name"`
	Surname    string  `json:"surname"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone,omitempty"`
	Password   string  `json:"password"`
	GarageName string  `json:"garageName"`
	Address    string  `json:"address"`
	City       string  `json:"city"`
}

// CreateMechanicProfileRequest запрос на создание профиля гаража
// для уже зарегистрированного пользователя с ролью механика
type CreateMechanicProfileRequest struct {
	UserID  int64  `json:"userId"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
}

// Response модели

// UserResponse ответ с данными пользователя
type UserResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Surname string  `json:"surname"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Role    string  `json:"role"`
}

// MechanicResponse ответ с данными профиля гаража
type MechanicResponse struct {
	ID      int64   `json:"id"`
	UserID  int64   `json:"userId"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	City    string  `json:"city"`
	Rating  float64 `json:"rating"`
}

// RegisterMechanicResponse ответ на регистрацию механика с гаражом
type RegisterMechanicResponse struct {
	User     UserResponse     `json:"user"`
	Mechanic MechanicResponse `json:"mechanic"`
}

// MechanicListResponse ответ со списком гаражей
type MechanicListResponse struct {
	Mechanics []MechanicResponse `json:"mechanics"`
	Total     int                `json:"total"`
}

// FromDomainUser конвертирует domain модель в response
func FromDomainUser(user *domain.User) *UserResponse {
	return &UserResponse{
		ID:      user.ID,
		Name:    user.Name,
		Surname: user.Surname,
		Email:   user.Email,
		Phone:   user.Phone,
		Role:    string(user.Role),
	}
}

// FromDomainMechanic конвертирует domain модель в response
func FromDomainMechanic(mechanic *domain.Mechanic) *MechanicResponse {
	return &MechanicResponse{
		ID:      mechanic.ID,
		UserID:  mechanic.UserID,
		Name:    mechanic.Name,
		Address: mechanic.Address,
		City:    mechanic.City,
		Rating:  mechanic.Rating,
	}
}

// FromDomainMechanicList конвертирует список domain моделей в response
func FromDomainMechanicList(mechanics []*domain.Mechanic) *MechanicListResponse {
	result := make([]MechanicResponse, 0, len(mechanics))
	for _, mechanic := range mechanics {
		result = append(result, *FromDomainMechanic(mechanic))
	}

	return &MechanicListResponse{
		Mechanics: result,
		Total:     len(result),
	}
}
