package triage

import "testing"

func TestDetectNameIsReflexive(t *testing.T) {
	cat := mustLoad(t)
	for _, s := range cat.Symptoms {
		detected := cat.Detect(s.Name)
		found := false
		for _, d := range detected {
			if d.ID == s.ID {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("Detect(%q) did not include symptom %s", s.Name, s.ID)
		}
	}
}

func TestDetectMultipleSymptomsInCatalogOrder(t *testing.T) {
	cat := mustLoad(t)

	detected := cat.Detect("I have a headache and a fever and a cough")
	if len(detected) != 3 {
		t.Fatalf("expected 3 symptoms, got %d", len(detected))
	}
	// Catalog order: fever, cough, headache.
	if detected[0].ID != "fever" || detected[1].ID != "cough" || detected[2].ID != "headache" {
		t.Fatalf("unexpected order: %s, %s, %s", detected[0].ID, detected[1].ID, detected[2].ID)
	}
}

func TestDetectCaseInsensitive(t *testing.T) {
	cat := mustLoad(t)

	detected := cat.Detect("SORE THROAT and Chest Pain")
	ids := make(map[string]bool)
	for _, d := range detected {
		ids[d.ID] = true
	}
	if !ids["sore_throat"] || !ids["chest_pain"] {
		t.Fatalf("expected sore_throat and chest_pain, got %v", ids)
	}
}

func TestDetectNothing(t *testing.T) {
	cat := mustLoad(t)
	if got := cat.Detect("feeling perfectly fine today"); len(got) != 0 {
		t.Fatalf("expected no symptoms, got %d", len(got))
	}
}
