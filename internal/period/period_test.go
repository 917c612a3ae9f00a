package period

import (
	"testing"
	"time"
)

func TestFormatAndParseRoundTrip(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  string
	}{
		{2024, time.March, "2024-03"},
		{2024, time.December, "2024-12"},
		{1999, time.January, "1999-01"},
	}

	for _, tt := range tests {
		id := Format(tt.year, tt.month)
		if id != tt.want {
			t.Errorf("Format(%d, %d) = %q, want %q", tt.year, tt.month, id, tt.want)
		}

		year, month, err := Parse(id)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", id, err)
		}
		if year != tt.year || month != tt.month {
			t.Errorf("Parse(%q) = (%d, %d), want (%d, %d)", id, year, month, tt.year, tt.month)
		}
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	invalid := []string{
		"", "2024", "2024-13", "2024-00", "2024/03", "24-03", "2024-3", "2024-031", "abcd-ef",
	}
	for _, id := range invalid {
		if _, _, err := Parse(id); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", id)
		}
	}
}

func TestAddWrapsYearBoundaries(t *testing.T) {
	tests := []struct {
		id     string
		months int
		want   string
	}{
		{"2024-12", 1, "2025-01"},
		{"2024-01", -1, "2023-12"},
		{"2024-06", 0, "2024-06"},
		{"2024-03", 12, "2025-03"},
		{"2024-03", -15, "2022-12"},
		{"2023-11", 14, "2025-01"},
	}

	for _, tt := range tests {
		got, err := Add(tt.id, tt.months)
		if err != nil {
			t.Fatalf("Add(%q, %d) returned error: %v", tt.id, tt.months, err)
		}
		if got != tt.want {
			t.Errorf("Add(%q, %d) = %q, want %q", tt.id, tt.months, got, tt.want)
		}
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"2024-12", "DEZEMBRO 2024"},
		{"2024-03", "MARÇO 2024"},
		{"2023-01", "JANEIRO 2023"},
	}

	for _, tt := range tests {
		got, err := Label(tt.id)
		if err != nil {
			t.Fatalf("Label(%q) returned error: %v", tt.id, err)
		}
		if got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}

	if _, err := Label("not-a-period"); err == nil {
		t.Error("Label with invalid id succeeded, want error")
	}
}
