package assistant

import (
	"strings"
	"testing"

	"github.com/swasthya-saarthi/companion/pkg/triage"
)

func testCatalog(t *testing.T) *triage.Catalog {
	t.Helper()
	cat, err := triage.Load("")
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	return cat
}

func symptomsByID(t *testing.T, cat *triage.Catalog, ids ...string) []triage.Symptom {
	t.Helper()
	out := make([]triage.Symptom, 0, len(ids))
	for _, id := range ids {
		s, ok := cat.Symptom(id)
		if !ok {
			t.Fatalf("unknown symptom id %s", id)
		}
		out = append(out, s)
	}
	return out
}

func TestComposeNoSymptoms(t *testing.T) {
	composer := NewComposer(testCatalog(t))

	want := "I couldn't detect any specific symptoms. Could you please describe how you're feeling in more detail?"
	if got := composer.Compose(nil); got != want {
		t.Fatalf("unexpected reply %q", got)
	}
}

func TestComposeUnmatchedSymptoms(t *testing.T) {
	cat := testCatalog(t)
	composer := NewComposer(cat)

	got := composer.Compose(symptomsByID(t, cat, "rashorskin"))
	if !strings.Contains(got, "skin rash") {
		t.Fatalf("expected symptom name in %q", got)
	}
	if !strings.Contains(got, "don't have enough information") {
		t.Fatalf("expected insufficient-information variant, got %q", got)
	}
	if strings.Contains(got, "couldn't detect") {
		t.Fatalf("wrong variant: %q", got)
	}
}

func TestComposeTopConditionWithRemedies(t *testing.T) {
	cat := testCatalog(t)
	composer := NewComposer(cat)

	got := composer.Compose(symptomsByID(t, cat, "fever", "cough", "sore_throat", "headache"))
	if !strings.Contains(got, "you might be experiencing Common Cold") {
		t.Fatalf("expected common cold advisory, got %q", got)
	}
	if !strings.Contains(got, "fever, cough, sore throat, headache") {
		t.Fatalf("expected lower-cased symptom list, got %q", got)
	}
	if !strings.Contains(got, "This is usually a minor concern.") {
		t.Fatalf("expected low-urgency phrasing, got %q", got)
	}
	if !strings.Contains(got, "Here are some home remedies:") {
		t.Fatalf("expected home remedies clause, got %q", got)
	}
	if strings.Contains(got, "consult with a healthcare professional") {
		t.Fatalf("common cold should not advise medical attention: %q", got)
	}
}

func TestComposeEmergencyCondition(t *testing.T) {
	cat := testCatalog(t)
	composer := NewComposer(cat)

	got := composer.Compose(symptomsByID(t, cat, "chest_pain", "short_breath", "nausea", "fatigue"))
	if !strings.Contains(got, "you might be experiencing Heart Attack") {
		t.Fatalf("expected heart attack advisory, got %q", got)
	}
	if !strings.Contains(got, "THIS IS A POTENTIAL EMERGENCY. Please seek immediate medical help!") {
		t.Fatalf("expected emergency phrasing, got %q", got)
	}
	if strings.Contains(got, "home remedies") {
		t.Fatalf("heart attack has no remedies clause: %q", got)
	}
	if !strings.Contains(got, "It's recommended that you consult with a healthcare professional.") {
		t.Fatalf("expected medical attention clause, got %q", got)
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	cat := testCatalog(t)
	composer := NewComposer(cat)

	detected := symptomsByID(t, cat, "dizziness", "fatigue")
	first := composer.Compose(detected)
	for i := 0; i < 5; i++ {
		if got := composer.Compose(detected); got != first {
			t.Fatalf("reply changed between calls: %q vs %q", first, got)
		}
	}
}
