package domain

// Staff represents a mechanic or service advisor assigned to one outlet
type Staff struct {
	ID       int64
	Name     string
	Role     string
	Phone    string
	OutletID int64
}
