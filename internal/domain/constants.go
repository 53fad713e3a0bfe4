package domain

import "github.com/m04kA/SMC-ServicePortal/pkg/types"

// Business hours are fixed for every outlet: slots are offered between
// 09:00 and 17:00, one hour each.
const (
	SlotDurationMinutes = 60

	BusinessHoursStart = types.ClockTime("09:00:00")
	BusinessHoursEnd   = types.ClockTime("17:00:00")
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// UserType values for notifications
const (
	UserTypeCustomer = "customer"
	UserTypeStaff    = "staff"
)
