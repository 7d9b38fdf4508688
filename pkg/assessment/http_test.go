package assessment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/swasthya-saarthi/companion/pkg/common/logger"
	"github.com/swasthya-saarthi/companion/pkg/common/models"
	"github.com/swasthya-saarthi/companion/pkg/lexicon"
	"github.com/swasthya-saarthi/companion/pkg/triage"
)

type capturingPublisher struct {
	events []string
}

func (c *capturingPublisher) PublishEvent(ctx context.Context, eventType string, source string, data map[string]interface{}) error {
	c.events = append(c.events, eventType)
	return nil
}

func testRouter(t *testing.T, publisher Publisher) *mux.Router {
	t.Helper()
	logger.Init("test")

	catalog, err := triage.Load("")
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	lex, err := lexicon.Load("")
	if err != nil {
		t.Fatalf("failed to load lexicon: %v", err)
	}

	service := NewService(catalog, lex, nil, publisher, 3)
	router := mux.NewRouter()
	NewHandler(service).Register(router)
	return router
}

func TestHandleAssessRanksAndTruncates(t *testing.T) {
	publisher := &capturingPublisher{}
	router := testRouter(t, publisher)

	body, _ := json.Marshal(models.AssessRequest{Symptoms: []string{"headache", "fever"}})
	req := httptest.NewRequest(http.MethodPost, "/assess", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}

	var resp models.AssessResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	// Four conditions overlap {headache, fever}; the response is capped
	// at the top three.
	if resp.Total != 4 {
		t.Fatalf("expected total 4, got %d", resp.Total)
	}
	if len(resp.Matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(resp.Matches))
	}
	if resp.Matches[0].ID != "common_cold" || resp.Matches[1].ID != "flu" || resp.Matches[2].ID != "heatstroke" {
		t.Fatalf("unexpected ranking: %s, %s, %s", resp.Matches[0].ID, resp.Matches[1].ID, resp.Matches[2].ID)
	}
	if resp.Matches[0].Overlap != 2 {
		t.Fatalf("expected overlap 2, got %d", resp.Matches[0].Overlap)
	}
	if resp.Matches[0].Severity != "green" {
		t.Fatalf("expected green severity for common cold, got %s", resp.Matches[0].Severity)
	}

	if len(publisher.events) != 1 || publisher.events[0] != EventAssessmentCompleted {
		t.Fatalf("expected one assessment.completed event, got %v", publisher.events)
	}
}

func TestHandleAssessEmptySelection(t *testing.T) {
	router := testRouter(t, nil)

	body, _ := json.Marshal(models.AssessRequest{})
	req := httptest.NewRequest(http.MethodPost, "/assess", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}

	var resp models.AssessResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 0 || len(resp.Matches) != 0 {
		t.Fatalf("expected empty result, got %+v", resp)
	}
}

func TestHandleInterpret(t *testing.T) {
	router := testRouter(t, nil)

	body, _ := json.Marshal(models.InterpretRequest{Text: "मुझे सिरदर्द और बुखार है", Language: "hi-IN"})
	req := httptest.NewRequest(http.MethodPost, "/interpret", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}

	var resp models.InterpretResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.SessionID == "" {
		t.Fatal("expected a session id")
	}
	if len(resp.Symptoms) != 2 {
		t.Fatalf("expected 2 detected symptoms, got %d", len(resp.Symptoms))
	}
	if resp.Reply == "" {
		t.Fatal("expected a reply")
	}
}

func TestHandleInterpretRejectsEmptyText(t *testing.T) {
	router := testRouter(t, nil)

	body, _ := json.Marshal(models.InterpretRequest{Text: "   "})
	req := httptest.NewRequest(http.MethodPost, "/interpret", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleInterpretRejectsUnknownLanguage(t *testing.T) {
	router := testRouter(t, nil)

	body, _ := json.Marshal(models.InterpretRequest{Text: "I have a fever", Language: "xx-XX"})
	req := httptest.NewRequest(http.MethodPost, "/interpret", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleListSymptoms(t *testing.T) {
	router := testRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/symptoms", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}

	var resp struct {
		Items []models.SymptomView `json:"items"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Items) != 15 {
		t.Fatalf("expected 15 symptoms, got %d", len(resp.Items))
	}
}
