package domain

import "time"

// Notification types
const (
	NotificationTypeAppointment = "appointment"
	NotificationTypeService     = "service"
)

// Notification is an in-app message for a customer or staff member.
// Delivery (email, cache) is best-effort; the database row is the source
// of truth.
type Notification struct {
	ID        int64
	UserID    int64
	UserType  string // UserTypeCustomer or UserTypeStaff
	Title     string
	Message   string
	Type      string
	Read      bool
	Link      string
	CreatedAt time.Time
}
