// Package engine implements the monthly settlement arithmetic: prorating a
// period's bills across residents per category rule and tracking the
// household surplus pool. Everything here is a pure function over its
// inputs — no I/O, no clock, no shared state — so callers may recompute as
// often and as concurrently as they like.
package engine

import (
	"math"
	"time"

	"github.com/eduardomb/contas/internal/bill"
	"github.com/eduardomb/contas/internal/receipt"
	"github.com/eduardomb/contas/internal/resident"
)

// ResidentShare is one resident's line in a period breakdown.
type ResidentShare struct {
	ResidentID        string     `json:"resident_id"`
	Name              string     `json:"name"`
	Index             int        `json:"index"`
	RentWeight        float64    `json:"rent_weight"`
	RentShare         float64    `json:"rent_share"`
	SharedShare       float64    `json:"shared_share"`
	ParkingShare      float64    `json:"parking_share"`
	IndividualCharges float64    `json:"individual_charges"`
	Credit            float64    `json:"credit"`
	Total             float64    `json:"total"`
	IsReceived        bool       `json:"is_received"`
	ReceivedAt        *time.Time `json:"received_at,omitempty"`
}

// Breakdown is the full settlement result for one period.
type Breakdown struct {
	PeriodID     string          `json:"period_id"`
	Residents    []ResidentShare `json:"residents"`
	PeriodTotal  float64         `json:"period_total"`
	PendingTotal float64         `json:"pending_total"`
}

// Compute settles a period. bills must already be filtered to the period;
// receipts may span every period, the matching is done here.
//
// Category rules: rent splits proportionally to rent weights, shared and
// house-supplies split equally per head, parking lands whole on the
// parking-payer role holder, individual bills land on their target resident,
// and the supplies-reimbursed role holder is credited the amount actually
// spent on house supplies.
func Compute(residents []*resident.Resident, bills []*bill.Bill, receipts []*receipt.Status, periodID string) *Breakdown {
	totalWeight := 0.0
	for _, r := range residents {
		totalWeight += amount(r.RentWeight)
	}

	var totalRent, totalShared, totalParking, totalSupplies, suppliesActual, totalIndividual float64
	for _, b := range bills {
		switch b.Type {
		case bill.TypeRent:
			totalRent += amount(b.BudgetedValue)
		case bill.TypeShared:
			totalShared += amount(b.BudgetedValue)
		case bill.TypeParking:
			totalParking += amount(b.BudgetedValue)
		case bill.TypeHouseSupplies:
			totalSupplies += amount(b.BudgetedValue)
			suppliesActual += amount(b.ActualValue)
		case bill.TypeIndividual:
			totalIndividual += amount(b.BudgetedValue)
		}
		// Unknown types contribute to no sum at all.
	}

	rentPerWeight := 0.0
	if totalWeight > 0 {
		rentPerWeight = totalRent / totalWeight
	}
	sharedPerPerson := 0.0
	if len(residents) > 0 {
		sharedPerPerson = (totalShared + totalSupplies) / float64(len(residents))
	}

	shares := make([]ResidentShare, 0, len(residents))
	pendingTotal := 0.0
	for _, r := range residents {
		share := ResidentShare{
			ResidentID:  r.ID,
			Name:        r.Name,
			Index:       r.Index,
			RentWeight:  amount(r.RentWeight),
			RentShare:   amount(r.RentWeight) * rentPerWeight,
			SharedShare: sharedPerPerson,
		}

		if r.HasRole(resident.RoleParkingPayer) {
			share.ParkingShare = totalParking
		}

		for _, b := range bills {
			if b.Type == bill.TypeIndividual && b.TargetResidentID != nil && *b.TargetResidentID == r.ID {
				share.IndividualCharges += amount(b.BudgetedValue)
			}
		}

		if r.HasRole(resident.RoleSuppliesReimbursed) {
			share.Credit = suppliesActual
		}

		share.Total = share.RentShare + share.SharedShare + share.ParkingShare +
			share.IndividualCharges - share.Credit

		if st := findReceipt(receipts, r.ID, periodID); st != nil {
			share.IsReceived = st.Received
			share.ReceivedAt = st.ReceivedAt
		}
		if !share.IsReceived {
			pendingTotal += share.Total
		}

		shares = append(shares, share)
	}

	return &Breakdown{
		PeriodID:     periodID,
		Residents:    shares,
		PeriodTotal:  totalRent + totalShared + totalParking + totalSupplies + totalIndividual,
		PendingTotal: pendingTotal,
	}
}

// SurplusBalance accumulates the difference between what residents were
// billed and what was actually disbursed, over the entire bill history.
// Positive means the shared pool holds money; negative means deficit.
func SurplusBalance(bills []*bill.Bill) float64 {
	balance := 0.0
	for _, b := range bills {
		balance += amount(b.BudgetedValue) - amount(b.ActualValue)
	}
	return balance
}

// amount coerces NaN and infinities to zero so that a malformed stored value
// degrades to "no charge" instead of poisoning every total.
func amount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func findReceipt(receipts []*receipt.Status, residentID, periodID string) *receipt.Status {
	for _, st := range receipts {
		if st != nil && st.ResidentID == residentID && st.PeriodID == periodID {
			return st
		}
	}
	return nil
}
