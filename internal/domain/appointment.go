package domain

import (
	"time"

	"github.com/m04kA/SMC-ServicePortal/pkg/types"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusPending    AppointmentStatus = "PENDING"
	StatusScheduled  AppointmentStatus = "SCHEDULED"
	StatusInProgress AppointmentStatus = "IN_PROGRESS"
	StatusCompleted  AppointmentStatus = "COMPLETED"
	StatusCancelled  AppointmentStatus = "CANCELLED"
)

// statusTransitions encodes the legal status machine:
// PENDING → SCHEDULED → IN_PROGRESS → COMPLETED,
// CANCELLED reachable from PENDING or SCHEDULED.
var statusTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:    {StatusScheduled, StatusCancelled},
	StatusScheduled:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// ParseAppointmentStatus validates a raw status string
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	status := AppointmentStatus(s)
	_, ok := statusTransitions[status]
	return status, ok
}

// Appointment represents a customer's service booking at an outlet.
// StaffID is nil until a staff member commits to the appointment during
// confirmation; a nil staff reference never consumes anyone's availability.
type Appointment struct {
	ID         int64
	CustomerID int64
	ServiceID  int64
	OutletID   int64
	VehicleID  int64
	TimeSlotID int64
	StaffID    *int64

	DurationMinutes     int
	EstimatedFinishTime *types.ClockTime
	Status              AppointmentStatus

	// Slot is the joined time slot row when loaded with details
	Slot *TimeSlot

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAssigned reports whether a real staff member has been assigned
func (a *Appointment) IsAssigned() bool {
	return a.StaffID != nil
}

// ConsumesStaffTime reports whether the appointment blocks its staff
// member's availability. PENDING appointments have not secured a staff
// commitment and CANCELLED ones never consumed time.
func (a *Appointment) ConsumesStaffTime() bool {
	return a.Status != StatusPending && a.Status != StatusCancelled
}

// CanBeConfirmed reports whether a confirm operation is legal
func (a *Appointment) CanBeConfirmed() bool {
	return a.Status == StatusPending
}

// CanTransitionTo reports whether moving to next is a legal status change
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range statusTransitions[a.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// BusyInterval returns the half-open interval the appointment occupies.
// The end is the estimated finish time when set, otherwise slot start plus
// duration. ok is false when the slot is missing or the end cannot be
// computed within the day.
func (a *Appointment) BusyInterval() (start, end types.ClockTime, ok bool) {
	if a.Slot == nil {
		return "", "", false
	}
	start = a.Slot.Clocktime
	if a.EstimatedFinishTime != nil && !a.EstimatedFinishTime.IsZero() {
		return start, *a.EstimatedFinishTime, true
	}
	end, err := start.AddMinutes(a.DurationMinutes)
	if err != nil {
		return "", "", false
	}
	return start, end, true
}
