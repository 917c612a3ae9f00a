package bill

// CreateBillRequest represents the request to create a bill.
// ActualValue defaults to BudgetedValue when omitted; TargetResidentID is
// only accepted for individual bills.
type CreateBillRequest struct {
	Description      string   `json:"description" validate:"required,min=1,max=255"`
	BudgetedValue    float64  `json:"budgeted_value" validate:"required,gte=0"`
	ActualValue      *float64 `json:"actual_value,omitempty" validate:"omitempty,gte=0"`
	Type             string   `json:"type" validate:"required,oneof=rent shared parking individual house_supplies"`
	PeriodID         string   `json:"period_id" validate:"required"`
	TargetResidentID *string  `json:"target_resident_id,omitempty"`
}

// BillResponse represents the response for a bill
type BillResponse struct {
	ID               string  `json:"id"`
	Description      string  `json:"description"`
	BudgetedValue    float64 `json:"budgeted_value"`
	ActualValue      float64 `json:"actual_value"`
	Type             string  `json:"type"`
	PeriodID         string  `json:"period_id"`
	IsPaid           bool    `json:"is_paid"`
	PaidAt           *string `json:"paid_at,omitempty"`
	TargetResidentID *string `json:"target_resident_id,omitempty"`
	CreatedAt        string  `json:"created_at"`
}

// ToResponse converts a Bill model to a BillResponse DTO
func (b *Bill) ToResponse() *BillResponse {
	resp := &BillResponse{
		ID:               b.ID,
		Description:      b.Description,
		BudgetedValue:    b.BudgetedValue,
		ActualValue:      b.ActualValue,
		Type:             string(b.Type),
		PeriodID:         b.PeriodID,
		IsPaid:           b.IsPaid,
		TargetResidentID: b.TargetResidentID,
		CreatedAt:        b.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if b.PaidAt != nil {
		paidAt := b.PaidAt.Format("2006-01-02T15:04:05Z")
		resp.PaidAt = &paidAt
	}
	return resp
}
