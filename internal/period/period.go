package period

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidPeriod is returned when a period ID is not in "YYYY-MM" form.
var ErrInvalidPeriod = errors.New("invalid period id, expected YYYY-MM")

// monthLabels holds the pt-BR month names used in the shareable summary header.
var monthLabels = [12]string{
	"JANEIRO", "FEVEREIRO", "MARÇO", "ABRIL", "MAIO", "JUNHO",
	"JULHO", "AGOSTO", "SETEMBRO", "OUTUBRO", "NOVEMBRO", "DEZEMBRO",
}

// Format builds the canonical period ID for a year and month.
// The month is 1-indexed and the ID is always "YYYY-MM" with a zero-padded month.
func Format(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// FromTime returns the period ID for the calendar month containing t.
func FromTime(t time.Time) string {
	return Format(t.Year(), t.Month())
}

// Parse splits a period ID back into its year and month.
// It accepts only the canonical form: 4-digit year, hyphen, zero-padded month 01-12.
func Parse(id string) (int, time.Month, error) {
	if len(id) != 7 || id[4] != '-' {
		return 0, 0, ErrInvalidPeriod
	}

	var year, month int
	if _, err := fmt.Sscanf(id, "%4d-%2d", &year, &month); err != nil {
		return 0, 0, ErrInvalidPeriod
	}
	if year < 1 || month < 1 || month > 12 {
		return 0, 0, ErrInvalidPeriod
	}
	// Reject non-canonical spellings like "2024-1 " that Sscanf would accept
	if Format(year, time.Month(month)) != id {
		return 0, 0, ErrInvalidPeriod
	}

	return year, time.Month(month), nil
}

// Add advances a period ID by the given number of calendar months.
// The offset may be negative; year boundaries roll over. The input is never
// mutated — the result is computed from a fresh date value.
func Add(id string, months int) (string, error) {
	year, month, err := Parse(id)
	if err != nil {
		return "", err
	}

	// time.Date normalizes out-of-range months, so 2024-13 becomes 2025-01.
	t := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	return FromTime(t), nil
}

// Label renders the display label for a period, e.g. "DEZEMBRO 2024".
func Label(id string) (string, error) {
	year, month, err := Parse(id)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %d", monthLabels[month-1], year), nil
}
