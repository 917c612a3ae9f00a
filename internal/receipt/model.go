package receipt

import "time"

// Status records whether a resident has handed their share for a period to
// the collecting administrator. There is exactly one logical record per
// (resident, period) pair; a missing record means not received.
type Status struct {
	ResidentID string     `json:"resident_id"`
	PeriodID   string     `json:"period_id"`
	Received   bool       `json:"received"`
	ReceivedAt *time.Time `json:"received_at,omitempty"`
}

// Next computes the toggled status from the last known one. A nil current
// stands for "never recorded" and toggles to received. ReceivedAt is stamped
// on the transition to received and cleared on the way back.
func Next(current *Status, residentID, periodID string, now time.Time) Status {
	received := current == nil || !current.Received

	next := Status{
		ResidentID: residentID,
		PeriodID:   periodID,
		Received:   received,
	}
	if received {
		next.ReceivedAt = &now
	}
	return next
}
