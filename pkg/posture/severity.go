package posture

import "strings"

// Severity represents the risk severity of an assessment. Values are
// title-cased strings because they appear verbatim on risk cards and
// in the machine-readable trailer.
type Severity string

const (
	// SeverityLow represents acceptable residual risk.
	SeverityLow Severity = "Low"

	// SeverityMedium represents risk that should be scheduled for fix.
	SeverityMedium Severity = "Medium"

	// SeverityHigh represents risk requiring a prompt fix.
	SeverityHigh Severity = "High"

	// SeverityCritical represents immediate exposure (open network,
	// broken cipher, trivially crackable passphrase).
	SeverityCritical Severity = "Critical"
)

// severityOrder lists severities from least to most severe. Escalate
// walks one step to the right.
var severityOrder = []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

// ParseSeverity matches a severity name case-insensitively and
// returns the canonical title-cased value.
func ParseSeverity(s string) (Severity, bool) {
	for _, candidate := range severityOrder {
		if strings.EqualFold(string(candidate), s) {
			return candidate, true
		}
	}
	return "", false
}

// IsValid reports whether s is a recognized severity level.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// Score returns a numeric rank for sorting and threshold comparison.
// Critical=4, High=3, Medium=2, Low=1, unknown=0.
func (s Severity) Score() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// Escalate returns the severity one step worse, capped at Critical.
// Unrecognized values are returned unchanged.
func (s Severity) Escalate() Severity {
	for i, candidate := range severityOrder {
		if candidate == s {
			if i+1 < len(severityOrder) {
				return severityOrder[i+1]
			}
			return candidate
		}
	}
	return s
}

// String returns the severity as a string.
func (s Severity) String() string {
	return string(s)
}
