package assessment

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/swasthya-saarthi/companion/pkg/assistant"
	"github.com/swasthya-saarthi/companion/pkg/common/logger"
	"github.com/swasthya-saarthi/companion/pkg/common/models"
	"github.com/swasthya-saarthi/companion/pkg/lexicon"
	"github.com/swasthya-saarthi/companion/pkg/speech"
	"github.com/swasthya-saarthi/companion/pkg/triage"
)

const EventAssessmentCompleted = "assessment.completed"

// Publisher emits companion events. *kafka.Producer satisfies it.
type Publisher interface {
	PublishEvent(ctx context.Context, eventType string, source string, data map[string]interface{}) error
}

type Service struct {
	catalog  *triage.Catalog
	lex      *lexicon.Lexicon
	composer *assistant.Composer
	sessions *assistant.SessionStore
	producer Publisher
	topN     int
}

// NewService wires the matching engine to its collaborators. sessions and
// producer may be nil; history and events are then skipped.
func NewService(catalog *triage.Catalog, lex *lexicon.Lexicon, sessions *assistant.SessionStore, producer Publisher, topN int) *Service {
	if topN <= 0 {
		topN = 3
	}
	return &Service{
		catalog:  catalog,
		lex:      lex,
		composer: assistant.NewComposer(catalog),
		sessions: sessions,
		producer: producer,
		topN:     topN,
	}
}

// Assess ranks conditions against a checkbox selection of symptom ids.
// Unknown ids simply match nothing; an empty or unmatched selection is a
// valid empty result, not an error.
func (s *Service) Assess(ctx context.Context, req models.AssessRequest) models.AssessResponse {
	matched := s.catalog.Match(req.Symptoms)

	resp := models.AssessResponse{Total: len(matched)}
	for i, cond := range matched {
		if i == s.topN {
			break
		}
		resp.Matches = append(resp.Matches, s.conditionView(cond, req.Symptoms))
	}

	s.publishCompleted(ctx, req.Symptoms, matched)
	return resp
}

// Interpret runs free text through normalization, detection, matching,
// and reply composition, recording the exchange in the chat session.
func (s *Service) Interpret(ctx context.Context, req models.InterpretRequest) models.InterpretResponse {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	normalized := s.lex.Normalize(req.Text)
	detected := s.catalog.Detect(normalized)

	ids := make([]string, len(detected))
	views := make([]models.SymptomView, len(detected))
	for i, sym := range detected {
		ids[i] = sym.ID
		views[i] = models.SymptomView{
			ID:          sym.ID,
			Name:        sym.Name,
			Description: sym.Description,
			BodyPart:    sym.BodyPart,
		}
	}

	matched := s.catalog.Match(ids)
	reply := s.composer.Compose(detected)

	s.record(ctx, sessionID, assistant.SenderUser, req.Text)
	s.record(ctx, sessionID, assistant.SenderAssistant, reply)

	resp := models.InterpretResponse{
		SessionID:      sessionID,
		NormalizedText: normalized,
		Symptoms:       views,
		Reply:          reply,
	}
	for i, cond := range matched {
		if i == s.topN {
			break
		}
		resp.Matches = append(resp.Matches, s.conditionView(cond, ids))
	}

	s.publishCompleted(ctx, ids, matched)
	return resp
}

func (s *Service) History(ctx context.Context, sessionID string) ([]assistant.Message, error) {
	if s.sessions == nil {
		return nil, nil
	}
	return s.sessions.History(ctx, sessionID)
}

func (s *Service) ResetSession(ctx context.Context, sessionID string) error {
	if s.sessions == nil {
		return nil
	}
	return s.sessions.Clear(ctx, sessionID)
}

func (s *Service) Symptoms() []triage.Symptom {
	return s.catalog.Symptoms
}

func (s *Service) Conditions() []triage.Condition {
	return s.catalog.Conditions
}

func (s *Service) Languages() []speech.Language {
	return speech.Languages()
}

func (s *Service) conditionView(cond triage.Condition, selected []string) models.ConditionMatch {
	pres := cond.Urgency.Present()
	return models.ConditionMatch{
		ID:                   cond.ID,
		Name:                 cond.Name,
		Description:          cond.Description,
		Urgency:              string(cond.Urgency),
		Severity:             pres.Severity,
		Icon:                 pres.Icon,
		Overlap:              s.catalog.Overlap(cond, selected),
		SymptomCount:         len(cond.Symptoms),
		HomeRemedies:         cond.HomeRemedies,
		SeekMedicalAttention: cond.SeekMedicalAttention,
	}
}

func (s *Service) record(ctx context.Context, sessionID string, sender assistant.Sender, text string) {
	if s.sessions == nil {
		return
	}
	msg := assistant.Message{Sender: sender, Text: text, Timestamp: time.Now()}
	if err := s.sessions.Append(ctx, sessionID, msg); err != nil {
		logger.Log.WithError(err).WithField("session_id", sessionID).Warn("Failed to append chat message")
	}
}

func (s *Service) publishCompleted(ctx context.Context, selected []string, matched []triage.Condition) {
	if s.producer == nil || len(selected) == 0 {
		return
	}

	data := map[string]interface{}{
		"symptoms": strings.Join(selected, ","),
	}
	if len(matched) > 0 {
		top := matched[0]
		data["top_condition"] = top.ID
		data["top_condition_name"] = top.Name
		data["urgency"] = string(top.Urgency)
		data["seek_medical_attention"] = top.SeekMedicalAttention
	}

	if err := s.producer.PublishEvent(ctx, EventAssessmentCompleted, "triage-service", data); err != nil {
		logger.Log.WithError(err).Warn("Failed to publish assessment event")
	}
}
