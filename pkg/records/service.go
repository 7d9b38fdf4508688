package records

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/swasthya-saarthi/companion/pkg/common/logger"
	"github.com/swasthya-saarthi/companion/pkg/common/models"
	"github.com/swasthya-saarthi/companion/pkg/triage"
)

type ValidationError struct {
	reason error
}

func (e ValidationError) Error() string {
	return e.reason.Error()
}

func (e ValidationError) Unwrap() error {
	return e.reason
}

func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// Store is the persistence surface the service needs; *Repository
// satisfies it.
type Store interface {
	Create(ctx context.Context, record models.HealthRecord) error
	List(ctx context.Context, limit int) ([]models.HealthRecord, error)
	Get(ctx context.Context, id uuid.UUID) (models.HealthRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	store   Store
	catalog *triage.Catalog
}

func NewService(store Store, catalog *triage.Catalog) *Service {
	return &Service{store: store, catalog: catalog}
}

// Create appends a record to the timeline. Symptom ids are checked
// against the catalog here at the boundary; the timeline itself never
// mutates records in place.
func (s *Service) Create(ctx context.Context, req models.CreateRecordRequest) (models.HealthRecord, error) {
	if len(req.Symptoms) == 0 {
		return models.HealthRecord{}, ValidationError{reason: errors.New("at least one symptom is required")}
	}
	for _, id := range req.Symptoms {
		if !s.catalog.HasSymptom(id) {
			return models.HealthRecord{}, ValidationError{reason: fmt.Errorf("unknown symptom id %q", id)}
		}
	}

	now := time.Now().UTC()
	date := now
	if req.Date != nil {
		date = *req.Date
	}

	record := models.HealthRecord{
		ID:        uuid.New(),
		Date:      date,
		Symptoms:  req.Symptoms,
		Diagnosis: req.Diagnosis,
		Notes:     req.Notes,
		FollowUp:  req.FollowUp,
		CreatedAt: now,
	}
	if err := s.store.Create(ctx, record); err != nil {
		return models.HealthRecord{}, err
	}
	return record, nil
}

func (s *Service) List(ctx context.Context, limit int) ([]models.HealthRecord, error) {
	return s.store.List(ctx, limit)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (models.HealthRecord, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, id)
}

// HandleAssessmentEvent appends a completed assessment to the timeline.
// It is wired as the Kafka consumer handler for assessment.completed
// events; events without symptoms or a top condition are skipped.
func (s *Service) HandleAssessmentEvent(ctx context.Context, event models.Event) error {
	raw, _ := event.Data["symptoms"].(string)
	symptoms := splitIDs(raw)
	if len(symptoms) == 0 {
		logger.Log.WithField("event_id", event.ID).Debug("Assessment event without symptoms, skipping")
		return nil
	}

	diagnosis, _ := event.Data["top_condition_name"].(string)
	notes := ""
	if urgency, ok := event.Data["urgency"].(string); ok && urgency != "" {
		notes = "Assessment urgency: " + urgency
	}

	req := models.CreateRecordRequest{
		Symptoms:  symptoms,
		Diagnosis: diagnosis,
		Notes:     notes,
	}
	_, err := s.Create(ctx, req)
	if IsValidationError(err) {
		// A catalog mismatch between services is not retryable.
		logger.Log.WithError(err).WithField("event_id", event.ID).Warn("Dropping assessment event")
		return nil
	}
	return err
}

func splitIDs(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
