package textutil

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns the case-folded form of value.
func Fold(value string) string {
	if value == "" {
		return ""
	}
	return cases.Fold().String(value)
}

// EqualFold reports whether a and b are equal under full Unicode case
// folding, so "Straße" equals "STRASSE".
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}

// ContainsFold reports whether substr occurs within value under Unicode case
// folding. An empty substr matches every value.
func ContainsFold(value, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(Fold(value), Fold(substr))
}
