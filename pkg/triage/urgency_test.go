package triage

import "testing"

func TestParseUrgency(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Urgency
	}{
		{"low", UrgencyLow},
		{"Medium", UrgencyMedium},
		{" HIGH ", UrgencyHigh},
		{"emergency", UrgencyEmergency},
	} {
		got, err := ParseUrgency(tc.in)
		if err != nil {
			t.Fatalf("ParseUrgency(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseUrgency(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}

	if _, err := ParseUrgency("critical"); err == nil {
		t.Fatal("expected error for unknown urgency")
	}
}

func TestUrgencyOrdering(t *testing.T) {
	levels := []Urgency{UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyEmergency}
	for i := 1; i < len(levels); i++ {
		if levels[i-1].Rank() >= levels[i].Rank() {
			t.Fatalf("%s should rank below %s", levels[i-1], levels[i])
		}
	}
	if Urgency("bogus").Valid() {
		t.Fatal("bogus urgency should not be valid")
	}
}

func TestPresentCoversAllLevels(t *testing.T) {
	for _, tc := range []struct {
		level    Urgency
		severity string
		icon     string
	}{
		{UrgencyLow, "green", IconAffirmative},
		{UrgencyMedium, "yellow", IconAffirmative},
		{UrgencyHigh, "orange", IconWarning},
		{UrgencyEmergency, "red", IconWarning},
	} {
		got := tc.level.Present()
		if got.Severity != tc.severity || got.Icon != tc.icon {
			t.Fatalf("%s: got %+v, want severity=%s icon=%s", tc.level, got, tc.severity, tc.icon)
		}
	}
}
