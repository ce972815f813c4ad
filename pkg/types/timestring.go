package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString строковое представление времени суток ("HH:MM" или "HH:MM:SS").
// Используется для длительности услуг: Postgres хранит её в колонке TIME,
// наружу она отдаётся в том же текстовом виде.
type TimeString string

var ErrInvalidTimeString = errors.New("types: invalid time string format")

// NewTimeString создает TimeString из time.Time (только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString парсит строку "HH:MM" или "HH:MM:SS"
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет формат строки
func (t TimeString) Validate() error {
	if _, err := t.parse(); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero возвращает true для пустой строки
func (t TimeString) IsZero() bool {
	return t == ""
}

// Duration интерпретирует время суток как длительность (часы/минуты/секунды)
func (t TimeString) Duration() (time.Duration, error) {
	parsed, err := t.parse()
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return time.Duration(parsed.Hour())*time.Hour +
		time.Duration(parsed.Minute())*time.Minute +
		time.Duration(parsed.Second())*time.Second, nil
}

// AddMinutes возвращает время, сдвинутое на указанное количество минут
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := t.parse()
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return NewTimeString(parsed.Add(time.Duration(minutes) * time.Minute)), nil
}

// IsBefore сравнивает два времени (строго раньше)
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.parse()
	b, errB := other.parse()
	if errA != nil || errB != nil {
		return false
	}
	return a.Before(b)
}

// IsAfter сравнивает два времени (строго позже)
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.parse()
	b, errB := other.parse()
	if errA != nil || errB != nil {
		return false
	}
	return a.After(b)
}

func (t TimeString) String() string {
	return string(t)
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Postgres возвращает TIME как строку "HH:MM:SS" или как time.Time
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		*t = TimeString(v)
	case []byte:
		*t = TimeString(v)
	case time.Time:
		*t = TimeString(v.Format("15:04:05"))
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}
	return t.Validate()
}

func (t TimeString) parse() (time.Time, error) {
	if parsed, err := time.Parse("15:04:05", string(t)); err == nil {
		return parsed, nil
	}
	return time.Parse("15:04", string(t))
}
