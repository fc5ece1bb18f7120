package model

import "strings"

// Severity is the shared taxonomy for both the report and the
// consistency-check pipelines. Critical is the most severe.
type Severity string

const (
	SevCritical Severity = "Critical"
	SevHigh     Severity = "High"
	SevMedium   Severity = "Medium"
	SevLow      Severity = "Low"
)

// Severities lists the known values in rank order.
var Severities = []Severity{SevCritical, SevHigh, SevMedium, SevLow}

// Rank maps a severity to its position in the total order
// (Critical=0 ... Low=3). Unknown values rank 99 so they sort after
// every known severity without being dropped.
func Rank(s Severity) int {
	switch s {
	case SevCritical:
		return 0
	case SevHigh:
		return 1
	case SevMedium:
		return 2
	case SevLow:
		return 3
	default:
		return 99
	}
}

// ParseSeverity accepts the four known values, ignoring surrounding
// whitespace but not case: "critical" is not a valid severity.
func ParseSeverity(s string) (Severity, bool) {
	switch Severity(strings.TrimSpace(s)) {
	case SevCritical:
		return SevCritical, true
	case SevHigh:
		return SevHigh, true
	case SevMedium:
		return SevMedium, true
	case SevLow:
		return SevLow, true
	}
	return "", false
}

// MoreSevereOrEqual reports whether a is at least as severe as b.
func MoreSevereOrEqual(a, b Severity) bool {
	return Rank(a) <= Rank(b)
}
