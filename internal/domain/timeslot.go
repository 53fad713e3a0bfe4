package domain

import "github.com/m04kA/SMC-ServicePortal/pkg/types"

// TimeSlot represents a bookable point in time: a calendar date plus a
// clock time at slot granularity (one hour). Rows are materialized lazily:
// a slot returned by availability queries may carry ID == 0, meaning it has
// not been persisted yet. (Year, Month, Day, Clocktime) is unique among
// persisted slots.
type TimeSlot struct {
	ID        int64
	Year      int16
	Quarter   int16
	Month     int16
	Day       int16
	Clocktime types.ClockTime
}

// NewTimeSlot builds an unpersisted slot candidate with the quarter derived
// from the month
func NewTimeSlot(year, month, day int16, clocktime types.ClockTime) TimeSlot {
	return TimeSlot{
		Year:      year,
		Quarter:   QuarterForMonth(month),
		Month:     month,
		Day:       day,
		Clocktime: clocktime,
	}
}

// IsPersisted reports whether the slot has a database identity
func (t TimeSlot) IsPersisted() bool {
	return t.ID != 0
}

// QuarterForMonth returns the calendar quarter (1-4) for a month (1-12)
func QuarterForMonth(month int16) int16 {
	switch {
	case month <= 3:
		return 1
	case month <= 6:
		return 2
	case month <= 9:
		return 3
	default:
		return 4
	}
}
