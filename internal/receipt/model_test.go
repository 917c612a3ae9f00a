package receipt

import (
	"testing"
	"time"
)

func TestNextTogglesAndStampsTimestamp(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	// Missing record toggles to received with a timestamp.
	first := Next(nil, "res-1", "2024-03", now)
	if !first.Received {
		t.Fatal("toggling a missing record should mark it received")
	}
	if first.ReceivedAt == nil || !first.ReceivedAt.Equal(now) {
		t.Errorf("ReceivedAt = %v, want %v", first.ReceivedAt, now)
	}
	if first.ResidentID != "res-1" || first.PeriodID != "2024-03" {
		t.Errorf("identity fields not carried: %+v", first)
	}

	// Toggling back clears the timestamp.
	later := now.Add(24 * time.Hour)
	second := Next(&first, "res-1", "2024-03", later)
	if second.Received {
		t.Error("second toggle should revert to not received")
	}
	if second.ReceivedAt != nil {
		t.Errorf("ReceivedAt should be cleared on revert, got %v", second.ReceivedAt)
	}

	// Two toggles return to the original received value.
	if second.Received != false {
		t.Error("double toggle did not round-trip")
	}
	third := Next(&second, "res-1", "2024-03", later)
	if !third.Received {
		t.Error("third toggle should mark received again")
	}
}
