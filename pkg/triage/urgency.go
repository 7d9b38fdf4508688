package triage

import (
	"fmt"
	"strings"
)

// Urgency is the closed severity classification attached to a condition.
// The four levels are totally ordered, emergency highest.
type Urgency string

const (
	UrgencyLow       Urgency = "low"
	UrgencyMedium    Urgency = "medium"
	UrgencyHigh      Urgency = "high"
	UrgencyEmergency Urgency = "emergency"
)

func ParseUrgency(value string) (Urgency, error) {
	switch Urgency(strings.ToLower(strings.TrimSpace(value))) {
	case UrgencyLow:
		return UrgencyLow, nil
	case UrgencyMedium:
		return UrgencyMedium, nil
	case UrgencyHigh:
		return UrgencyHigh, nil
	case UrgencyEmergency:
		return UrgencyEmergency, nil
	}
	return "", fmt.Errorf("unknown urgency %q", value)
}

// Rank returns the position of the level in the severity order,
// low=0 through emergency=3.
func (u Urgency) Rank() int {
	switch u {
	case UrgencyLow:
		return 0
	case UrgencyMedium:
		return 1
	case UrgencyHigh:
		return 2
	case UrgencyEmergency:
		return 3
	}
	return -1
}

func (u Urgency) Valid() bool {
	return u.Rank() >= 0
}

const (
	IconWarning     = "warning"
	IconAffirmative = "affirmative"
)

// Presentation is the display treatment for an urgency level.
type Presentation struct {
	Severity string `json:"severity"`
	Icon     string `json:"icon"`
}

// Present maps each urgency level to its display treatment. The mapping
// is total over the four levels; catalogs are validated at load so an
// out-of-range value cannot reach here.
func (u Urgency) Present() Presentation {
	switch u {
	case UrgencyLow:
		return Presentation{Severity: "green", Icon: IconAffirmative}
	case UrgencyMedium:
		return Presentation{Severity: "yellow", Icon: IconAffirmative}
	case UrgencyHigh:
		return Presentation{Severity: "orange", Icon: IconWarning}
	case UrgencyEmergency:
		return Presentation{Severity: "red", Icon: IconWarning}
	}
	return Presentation{}
}
