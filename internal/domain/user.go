package domain

import "time"

// UserRole роль пользователя в системе
type UserRole string

const (
	RoleClient   UserRole = "client"
	RoleMechanic UserRole = "mechanic"
)

// User represents a registered account (client or mechanic)
type User struct {
	ID           int64
	Name         string
	Surname      string
	Email        string
	Phone        *string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
}

// IsMechanic returns true if the user account has the mechanic role
func (u *User) IsMechanic() bool {
	return u.Role == RoleMechanic
}
