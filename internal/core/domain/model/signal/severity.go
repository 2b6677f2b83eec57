package signal

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Severity classifies how strongly a reading affects deliveries. It is used
// both as the impact level of weather readings and as the congestion level of
// traffic readings.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ParseSeverity converts a wire-format string into a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch Severity(s) {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return Severity(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("severity", fmt.Errorf("%q is not a valid severity", s))
	}
}

// Rank returns the ordering weight of the severity: low < medium < high.
// Unknown severities rank above high so malformed data never sorts ahead of
// clean waypoints in an optimized route.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	default:
		return 4
	}
}

// String implements fmt.Stringer.
func (s Severity) String() string {
	return string(s)
}
