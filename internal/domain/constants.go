package domain

import "time"

// Slot generation constants
const (
	// SlotDurationMinutes фиксированная длина атомарного слота
	SlotDurationMinutes = 30

	// SlotDuration длина атомарного слота как time.Duration
	SlotDuration = SlotDurationMinutes * time.Minute
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
