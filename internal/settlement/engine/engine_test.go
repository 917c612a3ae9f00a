package engine

import (
	"math"
	"testing"
	"time"

	"github.com/eduardomb/contas/internal/bill"
	"github.com/eduardomb/contas/internal/receipt"
	"github.com/eduardomb/contas/internal/resident"
)

const tolerance = 1e-9

func roster() []*resident.Resident {
	return []*resident.Resident{
		{ID: "r1", Name: "Eduardo", Index: 0, RentWeight: 1.0, Roles: []resident.Role{resident.RoleParkingPayer}},
		{ID: "r2", Name: "Menon", Index: 1, RentWeight: 1.0, Roles: []resident.Role{resident.RoleSuppliesReimbursed}},
		{ID: "r3", Name: "Lucas", Index: 2, RentWeight: 1.0},
		{ID: "r4", Name: "Camila", Index: 3, RentWeight: 0.65},
		{ID: "r5", Name: "Júlia", Index: 4, RentWeight: 0.65},
		{ID: "r6", Name: "Saulo", Index: 5, RentWeight: 0.60},
	}
}

func newBill(typ bill.Type, budgeted, actual float64) *bill.Bill {
	return &bill.Bill{Type: typ, BudgetedValue: budgeted, ActualValue: actual, PeriodID: "2024-03"}
}

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestComputeEmptyInputsAreSafe(t *testing.T) {
	b := Compute(nil, nil, nil, "2024-03")
	if len(b.Residents) != 0 {
		t.Fatalf("expected no resident shares, got %d", len(b.Residents))
	}
	approx(t, "PeriodTotal", b.PeriodTotal, 0)
	approx(t, "PendingTotal", b.PendingTotal, 0)

	// Residents but no bills: everything is zero, nothing panics or NaNs.
	b = Compute(roster(), nil, nil, "2024-03")
	for _, share := range b.Residents {
		approx(t, share.Name+" total", share.Total, 0)
		if math.IsNaN(share.Total) {
			t.Errorf("%s total is NaN", share.Name)
		}
	}

	// Zero total weight must not divide by zero.
	zeroWeight := []*resident.Resident{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}
	b = Compute(zeroWeight, []*bill.Bill{newBill(bill.TypeRent, 1000, 1000)}, nil, "2024-03")
	for _, share := range b.Residents {
		approx(t, "rent share with zero weight", share.RentShare, 0)
	}
}

func TestComputeRentIsProportionalToWeights(t *testing.T) {
	residents := roster()
	bills := []*bill.Bill{newBill(bill.TypeRent, 2000, 2000)}

	b := Compute(residents, bills, nil, "2024-03")

	totalWeight := 4.9
	sum := 0.0
	for i, share := range b.Residents {
		want := residents[i].RentWeight * (2000 / totalWeight)
		approx(t, share.Name+" rent share", share.RentShare, want)
		sum += share.RentShare
	}
	approx(t, "sum of rent shares", sum, 2000)
	approx(t, "period total", b.PeriodTotal, 2000)
}

func TestComputeSharedSplitsEqually(t *testing.T) {
	bills := []*bill.Bill{
		newBill(bill.TypeShared, 400, 400),
		newBill(bill.TypeShared, 200, 200),
	}

	b := Compute(roster(), bills, nil, "2024-03")

	for _, share := range b.Residents {
		approx(t, share.Name+" shared share", share.SharedShare, 100)
	}
}

func TestComputeHouseSuppliesJoinEqualSplitWithCredit(t *testing.T) {
	// Budgeted 120 split across 6 heads; the buyer gets back the 110
	// actually spent.
	bills := []*bill.Bill{newBill(bill.TypeHouseSupplies, 120, 110)}

	b := Compute(roster(), bills, nil, "2024-03")

	for _, share := range b.Residents {
		approx(t, share.Name+" shared share", share.SharedShare, 20)
		if share.Name == "Menon" {
			approx(t, "Menon credit", share.Credit, 110)
			approx(t, "Menon total", share.Total, 20-110)
		} else {
			approx(t, share.Name+" credit", share.Credit, 0)
		}
	}
}

func TestComputeParkingGoesToRoleHolder(t *testing.T) {
	bills := []*bill.Bill{newBill(bill.TypeParking, 150, 150)}

	b := Compute(roster(), bills, nil, "2024-03")

	for _, share := range b.Residents {
		if share.Name == "Eduardo" {
			approx(t, "Eduardo parking share", share.ParkingShare, 150)
			approx(t, "Eduardo total", share.Total, 150)
		} else {
			approx(t, share.Name+" parking share", share.ParkingShare, 0)
			approx(t, share.Name+" total", share.Total, 0)
		}
	}
}

func TestComputeIndividualChargesAreIsolated(t *testing.T) {
	target := "r4"
	indiv := newBill(bill.TypeIndividual, 50, 50)
	indiv.TargetResidentID = &target

	b := Compute(roster(), []*bill.Bill{indiv}, nil, "2024-03")

	for _, share := range b.Residents {
		if share.ResidentID == target {
			approx(t, "target individual charges", share.IndividualCharges, 50)
			approx(t, "target total", share.Total, 50)
		} else {
			approx(t, share.Name+" individual charges", share.IndividualCharges, 0)
			approx(t, share.Name+" total", share.Total, 0)
		}
	}
	approx(t, "period total includes individual bills", b.PeriodTotal, 50)

	// An individual bill without a target charges nobody but still counts
	// in the period total.
	b = Compute(roster(), []*bill.Bill{newBill(bill.TypeIndividual, 30, 30)}, nil, "2024-03")
	for _, share := range b.Residents {
		approx(t, share.Name+" individual charges", share.IndividualCharges, 0)
	}
	approx(t, "period total", b.PeriodTotal, 30)
}

func TestComputeUnknownTypeIsExcluded(t *testing.T) {
	bills := []*bill.Bill{
		newBill(bill.TypeShared, 600, 600),
		newBill(bill.Type("mystery"), 999, 999),
	}

	b := Compute(roster(), bills, nil, "2024-03")

	approx(t, "period total", b.PeriodTotal, 600)
	for _, share := range b.Residents {
		approx(t, share.Name+" total", share.Total, 100)
	}
}

func TestComputeCoercesNonFiniteValues(t *testing.T) {
	bad := newBill(bill.TypeShared, math.NaN(), math.Inf(1))
	ok := newBill(bill.TypeShared, 60, 60)

	b := Compute(roster(), []*bill.Bill{bad, ok}, nil, "2024-03")

	approx(t, "period total", b.PeriodTotal, 60)
	for _, share := range b.Residents {
		if math.IsNaN(share.Total) {
			t.Fatalf("%s total is NaN", share.Name)
		}
		approx(t, share.Name+" shared share", share.SharedShare, 10)
	}
}

func TestComputeJoinsReceiptsByResidentAndPeriod(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	receipts := []*receipt.Status{
		{ResidentID: "r3", PeriodID: "2024-03", Received: true, ReceivedAt: &now},
		{ResidentID: "r4", PeriodID: "2024-02", Received: true, ReceivedAt: &now}, // other period
	}
	bills := []*bill.Bill{newBill(bill.TypeShared, 600, 600)}

	b := Compute(roster(), bills, receipts, "2024-03")

	for _, share := range b.Residents {
		switch share.ResidentID {
		case "r3":
			if !share.IsReceived {
				t.Error("r3 should be marked received")
			}
			if share.ReceivedAt == nil || !share.ReceivedAt.Equal(now) {
				t.Errorf("r3 ReceivedAt = %v, want %v", share.ReceivedAt, now)
			}
		default:
			if share.IsReceived {
				t.Errorf("%s should not be marked received", share.Name)
			}
		}
	}

	// Five residents still owe 100 each.
	approx(t, "pending total", b.PendingTotal, 500)
}

func TestSurplusBalance(t *testing.T) {
	tests := []struct {
		name  string
		bills []*bill.Bill
		want  float64
	}{
		{"empty history", nil, 0},
		{"under budget credits the pool", []*bill.Bill{newBill(bill.TypeShared, 100, 80)}, 20},
		{"over budget debits the pool", []*bill.Bill{newBill(bill.TypeShared, 100, 120)}, -20},
		{
			"accumulates across periods and types",
			[]*bill.Bill{
				newBill(bill.TypeRent, 2000, 2000),
				newBill(bill.TypeShared, 100, 80),
				newBill(bill.TypeHouseSupplies, 50, 65),
			},
			5,
		},
		{"non-finite values are ignored", []*bill.Bill{newBill(bill.TypeShared, math.NaN(), 30)}, -30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			approx(t, "balance", SurplusBalance(tt.bills), tt.want)
		})
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	residents := roster()
	bills := []*bill.Bill{
		newBill(bill.TypeRent, 2000, 2000),
		newBill(bill.TypeShared, 300, 300),
		newBill(bill.TypeParking, 150, 150),
	}

	first := Compute(residents, bills, nil, "2024-03")
	second := Compute(residents, bills, nil, "2024-03")

	for i := range first.Residents {
		if first.Residents[i] != second.Residents[i] {
			t.Errorf("share %d differs between runs", i)
		}
	}
	approx(t, "period totals", first.PeriodTotal, second.PeriodTotal)
}
