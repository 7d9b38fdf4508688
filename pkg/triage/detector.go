package triage

import "strings"

// Detect returns the symptoms whose name, or description when present,
// occurs as a case-insensitive substring of the text. Results keep
// catalog definition order and contain no duplicates; the slice is empty
// when nothing matches. The matching is deliberately plain substring
// search with no tokenization or stemming, so short names can match
// inside unrelated words; callers rely on these exact semantics.
func (c *Catalog) Detect(text string) []Symptom {
	lowered := strings.ToLower(text)

	var detected []Symptom
	for _, s := range c.Symptoms {
		if strings.Contains(lowered, strings.ToLower(s.Name)) {
			detected = append(detected, s)
			continue
		}
		if s.Description != "" && strings.Contains(lowered, strings.ToLower(s.Description)) {
			detected = append(detected, s)
		}
	}
	return detected
}
