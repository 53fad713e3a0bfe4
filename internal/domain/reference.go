package domain

// Reference entities owned by the portal's directory tables. The booking
// flow only validates their existence and reads a handful of fields.

// Customer owns vehicles and books appointments
type Customer struct {
	ID      int64
	Name    string
	Phone   string
	Email   string
	Address string
}

// Vehicle belongs to a customer
type Vehicle struct {
	ID         int64
	PlateNo    string
	Model      string
	Brand      string
	Type       string
	Year       int16
	CustomerID int64
}

// ServiceType is an offered kind of work (oil change, inspection, ...)
type ServiceType struct {
	ID              int64
	Name            string
	Description     string
	Category        string
	Price           float64
	DurationMinutes int
}

// Outlet is a physical service location with its own staff roster
type Outlet struct {
	ID         int64
	Name       string
	Address    string
	City       string
	State      string
	PostalCode string
}
