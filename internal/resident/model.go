package resident

import "time"

// Role is a billing role held by a resident. Roles drive special-cased
// charges and credits in the settlement computation instead of matching on
// display names.
type Role string

const (
	// RoleParkingPayer marks the resident who takes the whole parking charge.
	RoleParkingPayer Role = "parking_payer"
	// RoleSuppliesReimbursed marks the resident who fronts house-supplies
	// purchases and is credited back what was actually spent.
	RoleSuppliesReimbursed Role = "supplies_reimbursed"
)

// Valid reports whether the role is one of the known billing roles.
func (r Role) Valid() bool {
	return r == RoleParkingPayer || r == RoleSuppliesReimbursed
}

// Resident represents a household member participating in the monthly split.
type Resident struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Index      int       `json:"index"`
	RentWeight float64   `json:"rent_weight"`
	Roles      []Role    `json:"roles,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// HasRole reports whether the resident holds the given billing role.
func (r *Resident) HasRole(role Role) bool {
	for _, held := range r.Roles {
		if held == role {
			return true
		}
	}
	return false
}
