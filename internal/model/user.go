package model

const (
	ProfileAdmin         = "admin"
	ProfileSubcontractor = "subcontractor"
	ProfileCustomer      = "customer"
	ProfileBuilder       = "builder"
	ProfileVendor        = "vendor"
	ProfileEmployee      = "employee"
	ProfileManager       = "manager"
)

// Profiles lists every profile a user can hold, in picklist order.
var Profiles = []string{
	ProfileAdmin,
	ProfileSubcontractor,
	ProfileCustomer,
	ProfileBuilder,
	ProfileVendor,
	ProfileEmployee,
	ProfileManager,
}

// User represents a dashboard user. Users are keyed by email; the name
// column stores "firstname lastname" derived at creation time.
type User struct {
	FirstName    string `json:"firstname"`
	LastName     string `json:"lastname"`
	Name         string `json:"name"`
	Profile      string `json:"profile"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // Do not expose password hash in JSON responses
	CreatedDate  string `json:"createddate"` // YYYY-MM-DD, local timezone at creation
}
