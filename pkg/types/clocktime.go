package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// ClockTimeFormat is the canonical format for clock-of-day values ("HH:MM:SS")
const ClockTimeFormat = "15:04:05"

// ErrInvalidClockTime is returned when a value is not a valid "HH:MM:SS" time
var ErrInvalidClockTime = errors.New("invalid clock time, expected HH:MM:SS")

// ErrClockTimeOverflow is returned when an arithmetic result crosses midnight
var ErrClockTimeOverflow = errors.New("clock time arithmetic crossed midnight")

// ClockTime represents a time of day within a single calendar day,
// stored as an "HH:MM:SS" string. The fixed-width representation makes
// lexicographic comparison equivalent to chronological comparison.
type ClockTime string

// NewClockTime builds a ClockTime from the clock portion of t
func NewClockTime(t time.Time) ClockTime {
	return ClockTime(t.Format(ClockTimeFormat))
}

// NewClockTimeFromString parses a strict "HH:MM:SS" string.
// time.Parse accepts trailing fractional seconds even when the layout
// has none, so the fixed width is checked separately.
func NewClockTimeFromString(s string) (ClockTime, error) {
	if len(s) != len(ClockTimeFormat) {
		return "", fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}
	if _, err := time.Parse(ClockTimeFormat, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}
	return ClockTime(s), nil
}

// NewClockTimeOfDay builds a ClockTime from hour/minute/second components
func NewClockTimeOfDay(hour, minute, second int) ClockTime {
	return ClockTime(fmt.Sprintf("%02d:%02d:%02d", hour, minute, second))
}

// Validate reports whether the value is a well-formed "HH:MM:SS" time
func (c ClockTime) Validate() error {
	if len(c) != len(ClockTimeFormat) {
		return fmt.Errorf("%w: %q", ErrInvalidClockTime, string(c))
	}
	if _, err := time.Parse(ClockTimeFormat, string(c)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidClockTime, string(c))
	}
	return nil
}

// IsZero reports whether the value is unset
func (c ClockTime) IsZero() bool {
	return c == ""
}

func (c ClockTime) String() string {
	return string(c)
}

// IsBefore reports whether c is strictly earlier than other
func (c ClockTime) IsBefore(other ClockTime) bool {
	return c < other
}

// IsAfter reports whether c is strictly later than other
func (c ClockTime) IsAfter(other ClockTime) bool {
	return c > other
}

// MinutesOfDay returns minutes elapsed since midnight
func (c ClockTime) MinutesOfDay() (int, error) {
	t, err := time.Parse(ClockTimeFormat, string(c))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, string(c))
	}
	return t.Hour()*60 + t.Minute(), nil
}

// AddMinutes returns the clock time m minutes later within the same day.
// Crossing midnight is an error: the scheduling model is single-day only.
func (c ClockTime) AddMinutes(m int) (ClockTime, error) {
	t, err := time.Parse(ClockTimeFormat, string(c))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidClockTime, string(c))
	}
	shifted := t.Add(time.Duration(m) * time.Minute)
	if shifted.Day() != t.Day() {
		return "", ErrClockTimeOverflow
	}
	return ClockTime(shifted.Format(ClockTimeFormat)), nil
}

// Scan implements sql.Scanner. Postgres TIME columns arrive as time.Time
// via lib/pq, text scans as string or []byte.
func (c *ClockTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*c = ""
		return nil
	case time.Time:
		*c = NewClockTime(v)
		return nil
	case string:
		parsed, err := NewClockTimeFromString(v)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	case []byte:
		parsed, err := NewClockTimeFromString(string(v))
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidClockTime, src)
	}
}

// Value implements driver.Valuer
func (c ClockTime) Value() (driver.Value, error) {
	if c.IsZero() {
		return nil, nil
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return string(c), nil
}
