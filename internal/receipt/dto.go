package receipt

// ToggleReceiptRequest represents the request to toggle a receipt status
type ToggleReceiptRequest struct {
	ResidentID string `json:"resident_id" validate:"required"`
	PeriodID   string `json:"period_id" validate:"required"`
}

// StatusResponse represents the response for a receipt status
type StatusResponse struct {
	ResidentID string  `json:"resident_id"`
	PeriodID   string  `json:"period_id"`
	Received   bool    `json:"received"`
	ReceivedAt *string `json:"received_at,omitempty"`
}

// ToResponse converts a Status model to a StatusResponse DTO
func (s *Status) ToResponse() *StatusResponse {
	resp := &StatusResponse{
		ResidentID: s.ResidentID,
		PeriodID:   s.PeriodID,
		Received:   s.Received,
	}
	if s.ReceivedAt != nil {
		receivedAt := s.ReceivedAt.Format("2006-01-02T15:04:05Z")
		resp.ReceivedAt = &receivedAt
	}
	return resp
}
