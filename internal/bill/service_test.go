package bill

import (
	"context"
	"errors"
	"testing"

	"github.com/eduardomb/contas/internal/period"
)

// Validation failures must be caught before the repository is touched, so a
// service over a nil database is enough to exercise them.
func TestCreateValidation(t *testing.T) {
	svc := NewService(NewRepository(nil))
	target := "some-resident"
	negative := -10.0

	tests := []struct {
		name    string
		req     *CreateBillRequest
		wantErr error
	}{
		{
			name:    "missing description",
			req:     &CreateBillRequest{Type: "rent", PeriodID: "2024-03", BudgetedValue: 100},
			wantErr: ErrDescriptionNeeded,
		},
		{
			name:    "unknown type",
			req:     &CreateBillRequest{Description: "Taxa", Type: "utilities", PeriodID: "2024-03", BudgetedValue: 100},
			wantErr: ErrInvalidBillType,
		},
		{
			name:    "bad period",
			req:     &CreateBillRequest{Description: "Aluguel", Type: "rent", PeriodID: "2024-3", BudgetedValue: 100},
			wantErr: period.ErrInvalidPeriod,
		},
		{
			name:    "negative budgeted value",
			req:     &CreateBillRequest{Description: "Luz", Type: "shared", PeriodID: "2024-03", BudgetedValue: -50},
			wantErr: ErrNegativeValue,
		},
		{
			name:    "negative actual value",
			req:     &CreateBillRequest{Description: "Luz", Type: "shared", PeriodID: "2024-03", BudgetedValue: 50, ActualValue: &negative},
			wantErr: ErrNegativeValue,
		},
		{
			name:    "target on non-individual bill",
			req:     &CreateBillRequest{Description: "Luz", Type: "shared", PeriodID: "2024-03", BudgetedValue: 50, TargetResidentID: &target},
			wantErr: ErrTargetNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTypeValid(t *testing.T) {
	for _, typ := range []Type{TypeRent, TypeShared, TypeParking, TypeIndividual, TypeHouseSupplies} {
		if !typ.Valid() {
			t.Errorf("Type(%q).Valid() = false, want true", typ)
		}
	}
	for _, typ := range []Type{"", "RENT", "garage", "supplies"} {
		if typ.Valid() {
			t.Errorf("Type(%q).Valid() = true, want false", typ)
		}
	}
}
