package domain

import (
	"time"

	"github.com/m04kA/SMC-GarageService/pkg/types"
)

// Service represents a service offered by a mechanic
// Duration хранится как время суток ("01:30:00") и интерпретируется
// как длительность в часах/минутах/секундах
type Service struct {
	ID         int64
	MechanicID int64
	Name       string
	Price      int64
	Duration   types.TimeString
	CreatedAt  time.Time
}

// RequiredDuration returns the service duration as a time.Duration
func (s *Service) RequiredDuration() (time.Duration, error) {
	return s.Duration.Duration()
}
