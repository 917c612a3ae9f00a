package settlement

import "github.com/eduardomb/contas/internal/export"

// ResidentShareResponse is one resident's line in the breakdown response
type ResidentShareResponse struct {
	ResidentID        string  `json:"resident_id"`
	Name              string  `json:"name"`
	RentShare         float64 `json:"rent_share"`
	SharedShare       float64 `json:"shared_share"`
	ParkingShare      float64 `json:"parking_share"`
	IndividualCharges float64 `json:"individual_charges"`
	Credit            float64 `json:"credit"`
	Total             float64 `json:"total"`
	TotalDisplay      string  `json:"total_display"`
	IsReceived        bool    `json:"is_received"`
	ReceivedAt        *string `json:"received_at,omitempty"`
}

// BreakdownResponse is the settlement result for one period
type BreakdownResponse struct {
	PeriodID            string                   `json:"period_id"`
	Residents           []*ResidentShareResponse `json:"residents"`
	PeriodTotal         float64                  `json:"period_total"`
	PeriodTotalDisplay  string                   `json:"period_total_display"`
	PendingTotal        float64                  `json:"pending_total"`
	PendingTotalDisplay string                   `json:"pending_total_display"`
	Surplus             float64                  `json:"surplus"`
	SurplusDisplay      string                   `json:"surplus_display"`
}

// ToResponse converts a settlement Result to the response DTO
func (r *Result) ToResponse() *BreakdownResponse {
	residents := make([]*ResidentShareResponse, 0, len(r.Breakdown.Residents))
	for _, share := range r.Breakdown.Residents {
		line := &ResidentShareResponse{
			ResidentID:        share.ResidentID,
			Name:              share.Name,
			RentShare:         share.RentShare,
			SharedShare:       share.SharedShare,
			ParkingShare:      share.ParkingShare,
			IndividualCharges: share.IndividualCharges,
			Credit:            share.Credit,
			Total:             share.Total,
			TotalDisplay:      export.FormatBRL(share.Total),
			IsReceived:        share.IsReceived,
		}
		if share.ReceivedAt != nil {
			receivedAt := share.ReceivedAt.Format("2006-01-02T15:04:05Z")
			line.ReceivedAt = &receivedAt
		}
		residents = append(residents, line)
	}

	return &BreakdownResponse{
		PeriodID:            r.Breakdown.PeriodID,
		Residents:           residents,
		PeriodTotal:         r.Breakdown.PeriodTotal,
		PeriodTotalDisplay:  export.FormatBRL(r.Breakdown.PeriodTotal),
		PendingTotal:        r.Breakdown.PendingTotal,
		PendingTotalDisplay: export.FormatBRL(r.Breakdown.PendingTotal),
		Surplus:             r.Surplus,
		SurplusDisplay:      export.FormatBRL(r.Surplus),
	}
}
