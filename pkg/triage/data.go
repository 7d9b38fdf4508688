package triage

// DefaultCatalog returns the built-in symptom and condition tables.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Symptoms: []Symptom{
			{ID: "fever", Name: "Fever", Description: "Body temperature higher than normal (98.6°F or 37°C)", BodyPart: "whole_body"},
			{ID: "cough", Name: "Cough", Description: "Sudden expulsion of air from the lungs", BodyPart: "chest"},
			{ID: "headache", Name: "Headache", Description: "Pain in the head or upper neck", BodyPart: "head"},
			{ID: "fatigue", Name: "Fatigue", Description: "Extreme tiredness or lack of energy", BodyPart: "whole_body"},
			{ID: "nausea", Name: "Nausea", Description: "Feeling of sickness with an inclination to vomit", BodyPart: "stomach"},
			{ID: "dizziness", Name: "Dizziness", Description: "Feeling of spinning or lightheadedness", BodyPart: "head"},
			{ID: "jointpain", Name: "Joint Pain", Description: "Pain in one or more joints", BodyPart: "joints"},
			{ID: "rashorskin", Name: "Skin Rash", Description: "Area of irritated or swollen skin", BodyPart: "skin"},
			{ID: "sore_throat", Name: "Sore Throat", Description: "Pain or irritation in the throat", BodyPart: "throat"},
			{ID: "diarrhea", Name: "Diarrhea", Description: "Loose, watery stools", BodyPart: "stomach"},
			{ID: "chest_pain", Name: "Chest Pain", Description: "Pain or discomfort in the chest", BodyPart: "chest"},
			{ID: "short_breath", Name: "Shortness of Breath", Description: "Difficulty breathing or catching your breath", BodyPart: "chest"},
			{ID: "stomachache", Name: "Stomach Pain", Description: "Pain in the abdominal region", BodyPart: "stomach"},
			{ID: "weakness", Name: "Weakness", Description: "Lack of physical strength", BodyPart: "whole_body"},
			{ID: "vomiting", Name: "Vomiting", Description: "Forceful expulsion of stomach contents", BodyPart: "stomach"},
		},
		Conditions: []Condition{
			{
				ID:          "common_cold",
				Name:        "Common Cold",
				Symptoms:    []string{"cough", "sore_throat", "fever", "headache"},
				Urgency:     UrgencyLow,
				Description: "A viral infection of the upper respiratory tract that is usually harmless.",
				HomeRemedies: []string{
					"Rest and drink plenty of fluids",
					"Gargle with warm salt water",
					"Use honey for cough (adults and children over 1 year)",
					"Use over-the-counter pain relievers if needed",
				},
				SeekMedicalAttention: false,
			},
			{
				ID:          "flu",
				Name:        "Influenza (Flu)",
				Symptoms:    []string{"fever", "cough", "fatigue", "headache", "sore_throat"},
				Urgency:     UrgencyMedium,
				Description: "A contagious respiratory illness caused by influenza viruses.",
				HomeRemedies: []string{
					"Rest and stay hydrated",
					"Take over-the-counter fever reducers",
					"Use a humidifier",
				},
				SeekMedicalAttention: false,
			},
			{
				ID:          "food_poisoning",
				Name:        "Food Poisoning",
				Symptoms:    []string{"nausea", "vomiting", "diarrhea", "stomachache"},
				Urgency:     UrgencyMedium,
				Description: "Illness caused by eating contaminated food.",
				HomeRemedies: []string{
					"Stay hydrated with small sips of water",
					"Rest the stomach for a few hours",
					"Gradually reintroduce bland foods",
					"Avoid dairy, caffeine, alcohol, and fatty foods",
				},
				SeekMedicalAttention: true,
			},
			{
				ID:          "dehydration",
				Name:        "Dehydration",
				Symptoms:    []string{"dizziness", "fatigue", "headache", "weakness"},
				Urgency:     UrgencyMedium,
				Description: "A condition that occurs when the body loses more fluids than it takes in.",
				HomeRemedies: []string{
					"Drink water and oral rehydration solutions",
					"Avoid caffeine and alcohol",
					"Eat fruits and vegetables with high water content",
				},
				SeekMedicalAttention: true,
			},
			{
				ID:          "heatstroke",
				Name:        "Heat Stroke",
				Symptoms:    []string{"headache", "dizziness", "fever", "nausea"},
				Urgency:     UrgencyHigh,
				Description: "A condition caused by your body overheating, usually as a result of prolonged exposure to or physical exertion in high temperatures.",
				HomeRemedies: []string{
					"Move to a cool place",
					"Apply cool compresses",
					"Drink cool water",
				},
				SeekMedicalAttention: true,
			},
			{
				ID:                   "heart_attack",
				Name:                 "Heart Attack",
				Symptoms:             []string{"chest_pain", "short_breath", "nausea", "fatigue"},
				Urgency:              UrgencyEmergency,
				Description:          "A serious medical emergency where the blood supply to the heart is suddenly blocked.",
				SeekMedicalAttention: true,
			},
		},
	}
}
