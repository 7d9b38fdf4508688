package records

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/swasthya-saarthi/companion/pkg/common/logger"
	"github.com/swasthya-saarthi/companion/pkg/common/models"
	"github.com/swasthya-saarthi/companion/pkg/triage"
	"gorm.io/gorm"
)

type memoryStore struct {
	records []models.HealthRecord
}

func (m *memoryStore) Create(ctx context.Context, record models.HealthRecord) error {
	m.records = append(m.records, record)
	return nil
}

func (m *memoryStore) List(ctx context.Context, limit int) ([]models.HealthRecord, error) {
	out := make([]models.HealthRecord, len(m.records))
	copy(out, m.records)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryStore) Get(ctx context.Context, id uuid.UUID) (models.HealthRecord, error) {
	for _, r := range m.records {
		if r.ID == id {
			return r, nil
		}
	}
	return models.HealthRecord{}, gorm.ErrRecordNotFound
}

func (m *memoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	for i, r := range m.records {
		if r.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return nil
}

func testService(t *testing.T) (*Service, *memoryStore) {
	t.Helper()
	logger.Init("test")

	catalog, err := triage.Load("")
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	store := &memoryStore{}
	return NewService(store, catalog), store
}

func TestCreateValidatesSymptomIDs(t *testing.T) {
	service, _ := testService(t)

	_, err := service.Create(context.Background(), models.CreateRecordRequest{
		Symptoms: []string{"fever", "not_a_symptom"},
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !IsValidationError(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCreateRequiresSymptoms(t *testing.T) {
	service, _ := testService(t)

	_, err := service.Create(context.Background(), models.CreateRecordRequest{Diagnosis: "Common Cold"})
	if !IsValidationError(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCreateAppendsRecord(t *testing.T) {
	service, store := testService(t)

	record, err := service.Create(context.Background(), models.CreateRecordRequest{
		Symptoms:  []string{"fever", "cough"},
		Diagnosis: "Common Cold",
		Notes:     "Rest and fluids recommended",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.ID == uuid.Nil {
		t.Fatal("expected an id")
	}
	if record.Date.IsZero() {
		t.Fatal("expected a default date")
	}
	if len(store.records) != 1 {
		t.Fatalf("expected 1 stored record, got %d", len(store.records))
	}
}

func TestListNewestFirst(t *testing.T) {
	service, _ := testService(t)

	older := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	if _, err := service.Create(context.Background(), models.CreateRecordRequest{Date: &older, Symptoms: []string{"headache"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.Create(context.Background(), models.CreateRecordRequest{Date: &newer, Symptoms: []string{"fever"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, err := service.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 records, got %d", len(items))
	}
	if !items[0].Date.After(items[1].Date) {
		t.Fatal("expected newest record first")
	}
}

func TestHandleAssessmentEvent(t *testing.T) {
	service, store := testService(t)

	event := models.Event{
		ID:   uuid.New().String(),
		Type: "assessment.completed",
		Data: map[string]interface{}{
			"symptoms":           "chest_pain,short_breath",
			"top_condition_name": "Heart Attack",
			"urgency":            "emergency",
		},
	}
	if err := service.HandleAssessmentEvent(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(store.records))
	}
	if store.records[0].Diagnosis != "Heart Attack" {
		t.Fatalf("unexpected diagnosis %q", store.records[0].Diagnosis)
	}
}

func TestHandleAssessmentEventUnknownSymptomDropped(t *testing.T) {
	service, store := testService(t)

	event := models.Event{
		ID:   uuid.New().String(),
		Type: "assessment.completed",
		Data: map[string]interface{}{"symptoms": "bogus_symptom"},
	}
	if err := service.HandleAssessmentEvent(context.Background(), event); err != nil {
		t.Fatalf("expected event to be dropped, got %v", err)
	}
	if len(store.records) != 0 {
		t.Fatalf("expected no records, got %d", len(store.records))
	}
}
