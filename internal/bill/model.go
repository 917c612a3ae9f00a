package bill

import "time"

// Type classifies a bill and selects its proration rule.
type Type string

const (
	// TypeRent is split proportionally to each resident's rent weight.
	TypeRent Type = "rent"
	// TypeShared is split equally among all residents.
	TypeShared Type = "shared"
	// TypeParking is charged whole to the parking-payer resident.
	TypeParking Type = "parking"
	// TypeIndividual is charged whole to the targeted resident.
	TypeIndividual Type = "individual"
	// TypeHouseSupplies joins the equal split for billing, with the amount
	// actually spent credited back to the supplies-reimbursed resident.
	TypeHouseSupplies Type = "house_supplies"
)

// Valid reports whether the type is one of the known bill categories.
func (t Type) Valid() bool {
	switch t {
	case TypeRent, TypeShared, TypeParking, TypeIndividual, TypeHouseSupplies:
		return true
	}
	return false
}

// Bill represents a monthly charge. BudgetedValue is what the residents are
// billed; ActualValue is what was really paid to the vendor. Their
// difference feeds the household surplus pool.
type Bill struct {
	ID               string     `json:"id"`
	Description      string     `json:"description"`
	BudgetedValue    float64    `json:"budgeted_value"`
	ActualValue      float64    `json:"actual_value"`
	Type             Type       `json:"type"`
	PeriodID         string     `json:"period_id"`
	IsPaid           bool       `json:"is_paid"`
	PaidAt           *time.Time `json:"paid_at,omitempty"`
	TargetResidentID *string    `json:"target_resident_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}
