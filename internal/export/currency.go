package export

import (
	"fmt"
	"strings"
)

// FormatBRL renders a value in the pt-BR display convention: dot thousands
// separators and a comma decimal separator ("1.234,56"). Used for on-screen
// amounts; the shareable summary keeps plain dot-decimal numbers.
func FormatBRL(v float64) string {
	negative := v < 0
	if negative {
		v = -v
	}

	s := fmt.Sprintf("%.2f", v)
	intPart := s[:len(s)-3]
	fracPart := s[len(s)-2:]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := strings.Join(groups, ".") + "," + fracPart
	if negative {
		out = "-" + out
	}
	return out
}
