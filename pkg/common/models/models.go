package models

import (
	"time"

	"github.com/google/uuid"
)

// Event Bus models
type Event struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"` // assessment.completed, record.created
	Source    string                 `json:"source"`
	Data      map[string]interface{} `json:"data"`
	Timestamp time.Time              `json:"timestamp"`
	Metadata  map[string]string      `json:"metadata,omitempty"`
}

// Health record timeline. Records are append-only: created by user
// submission, never mutated in place, removed only by deletion.
type HealthRecord struct {
	ID        uuid.UUID  `json:"id"`
	Date      time.Time  `json:"date"`
	Symptoms  []string   `json:"symptoms"`
	Diagnosis string     `json:"diagnosis,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	FollowUp  *time.Time `json:"follow_up,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type CreateRecordRequest struct {
	Date      *time.Time `json:"date,omitempty"`
	Symptoms  []string   `json:"symptoms"`
	Diagnosis string     `json:"diagnosis,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	FollowUp  *time.Time `json:"follow_up,omitempty"`
}

type EmergencyContact struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Relation  string    `json:"relation,omitempty"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateContactRequest struct {
	Name     string `json:"name"`
	Relation string `json:"relation,omitempty"`
	Phone    string `json:"phone"`
	Address  string `json:"address,omitempty"`
}

// Assessment API models
type AssessRequest struct {
	Symptoms []string `json:"symptoms"`
}

type ConditionMatch struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	Urgency              string   `json:"urgency"`
	Severity             string   `json:"severity"`
	Icon                 string   `json:"icon"`
	Overlap              int      `json:"overlap"`
	SymptomCount         int      `json:"symptom_count"`
	HomeRemedies         []string `json:"home_remedies,omitempty"`
	SeekMedicalAttention bool     `json:"seek_medical_attention"`
}

type AssessResponse struct {
	Matches []ConditionMatch `json:"matches"`
	Total   int              `json:"total"`
}

type InterpretRequest struct {
	Text      string `json:"text"`
	Language  string `json:"language,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

type InterpretResponse struct {
	SessionID      string           `json:"session_id"`
	NormalizedText string           `json:"normalized_text"`
	Symptoms       []SymptomView    `json:"symptoms"`
	Matches        []ConditionMatch `json:"matches"`
	Reply          string           `json:"reply"`
}

type SymptomView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	BodyPart    string `json:"body_part,omitempty"`
}
