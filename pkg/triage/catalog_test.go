package triage

import "testing"

func TestDefaultCatalogValidates(t *testing.T) {
	cat, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cat.Symptoms) != 15 {
		t.Fatalf("expected 15 symptoms, got %d", len(cat.Symptoms))
	}
	if len(cat.Conditions) != 6 {
		t.Fatalf("expected 6 conditions, got %d", len(cat.Conditions))
	}
	if _, ok := cat.Symptom("fever"); !ok {
		t.Fatal("expected fever symptom to be present")
	}
	if cat.HasSymptom("no_such_symptom") {
		t.Fatal("unexpected symptom id")
	}
}

func TestValidateRejectsDanglingSymptomReference(t *testing.T) {
	cat := &Catalog{
		Symptoms: []Symptom{{ID: "fever", Name: "Fever"}},
		Conditions: []Condition{
			{ID: "flu", Name: "Flu", Symptoms: []string{"fever", "cough"}, Urgency: UrgencyMedium, Description: "d"},
		},
	}
	if err := cat.validate(); err == nil {
		t.Fatal("expected error for unknown symptom reference")
	}
}

func TestValidateRejectsInvalidUrgency(t *testing.T) {
	cat := &Catalog{
		Symptoms: []Symptom{{ID: "fever", Name: "Fever"}},
		Conditions: []Condition{
			{ID: "flu", Name: "Flu", Symptoms: []string{"fever"}, Urgency: "critical", Description: "d"},
		},
	}
	if err := cat.validate(); err == nil {
		t.Fatal("expected error for invalid urgency")
	}
}

func TestValidateRejectsDuplicateIDs(t *testing.T) {
	cat := &Catalog{
		Symptoms: []Symptom{
			{ID: "fever", Name: "Fever"},
			{ID: "fever", Name: "Fever again"},
		},
		Conditions: []Condition{
			{ID: "flu", Name: "Flu", Symptoms: []string{"fever"}, Urgency: UrgencyLow, Description: "d"},
		},
	}
	if err := cat.validate(); err == nil {
		t.Fatal("expected error for duplicate symptom id")
	}
}

func TestValidateRejectsConditionWithoutSymptoms(t *testing.T) {
	cat := &Catalog{
		Symptoms: []Symptom{{ID: "fever", Name: "Fever"}},
		Conditions: []Condition{
			{ID: "flu", Name: "Flu", Urgency: UrgencyLow, Description: "d"},
		},
	}
	if err := cat.validate(); err == nil {
		t.Fatal("expected error for condition without symptoms")
	}
}
