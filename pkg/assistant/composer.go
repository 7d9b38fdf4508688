// Package assistant holds the conversational surface of the companion:
// the advisory message composer, per-session chat history, and the
// transcript-processing pipeline.
package assistant

import (
	"strings"

	"github.com/swasthya-saarthi/companion/pkg/triage"
)

const noSymptomsReply = "I couldn't detect any specific symptoms. Could you please describe how you're feeling in more detail?"

type Composer struct {
	catalog *triage.Catalog
}

func NewComposer(catalog *triage.Catalog) *Composer {
	return &Composer{catalog: catalog}
}

// Compose builds the advisory reply for a set of detected symptoms. It is
// deterministic and always returns a message: an invitation for more
// detail when nothing was detected, an insufficient-information variant
// when no condition overlaps the symptoms, and otherwise an advisory
// built from the single top-ranked condition.
func (c *Composer) Compose(detected []triage.Symptom) string {
	if len(detected) == 0 {
		return noSymptomsReply
	}

	ids := make([]string, len(detected))
	names := make([]string, len(detected))
	for i, s := range detected {
		ids[i] = s.ID
		names[i] = strings.ToLower(s.Name)
	}
	symptomList := strings.Join(names, ", ")

	matched := c.catalog.Match(ids)
	if len(matched) == 0 {
		return "I've detected that you may be experiencing " + symptomList +
			". However, I don't have enough information to suggest a specific condition. Would you like to add any other symptoms?"
	}

	top := matched[0]

	var b strings.Builder
	b.WriteString("Based on your symptoms (" + symptomList + "), you might be experiencing " + top.Name + ". ")
	b.WriteString(top.Description + " ")

	switch top.Urgency {
	case triage.UrgencyLow:
		b.WriteString("This is usually a minor concern. ")
	case triage.UrgencyMedium:
		b.WriteString("This is a moderate concern that may require attention. ")
	case triage.UrgencyHigh:
		b.WriteString("This is a serious concern that requires prompt medical attention. ")
	case triage.UrgencyEmergency:
		b.WriteString("THIS IS A POTENTIAL EMERGENCY. Please seek immediate medical help! ")
	}

	if len(top.HomeRemedies) > 0 {
		b.WriteString("Here are some home remedies: " + strings.Join(top.HomeRemedies, ", ") + ". ")
	}

	if top.SeekMedicalAttention {
		b.WriteString("It's recommended that you consult with a healthcare professional.")
	}

	return b.String()
}
