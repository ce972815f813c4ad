package domain

import "time"

// Mechanic represents a garage profile attached to a mechanic user
type Mechanic struct {
	ID        int64
	UserID    int64
	Name      string // Название гаража
	Address   string
	City      string
	Rating    float64
	CreatedAt time.Time
}
