package assessment

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/swasthya-saarthi/companion/pkg/common/logger"
	"github.com/swasthya-saarthi/companion/pkg/common/models"
	"github.com/swasthya-saarthi/companion/pkg/speech"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/assess", h.handleAssess).Methods(http.MethodPost)
	r.HandleFunc("/interpret", h.handleInterpret).Methods(http.MethodPost)
	r.HandleFunc("/symptoms", h.handleListSymptoms).Methods(http.MethodGet)
	r.HandleFunc("/conditions", h.handleListConditions).Methods(http.MethodGet)
	r.HandleFunc("/languages", h.handleListLanguages).Methods(http.MethodGet)
	r.HandleFunc("/sessions/{id}/history", h.handleSessionHistory).Methods(http.MethodGet)
	r.HandleFunc("/sessions/{id}", h.handleResetSession).Methods(http.MethodDelete)
}

func (h *Handler) handleAssess(w http.ResponseWriter, r *http.Request) {
	var req models.AssessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	resp := h.service.Assess(r.Context(), req)
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleInterpret(w http.ResponseWriter, r *http.Request) {
	var req models.InterpretRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}
	if req.Language != "" && !speech.Supported(req.Language) {
		http.Error(w, "unsupported language", http.StatusBadRequest)
		return
	}

	resp := h.service.Interpret(r.Context(), req)
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleListSymptoms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": h.service.Symptoms()})
}

func (h *Handler) handleListConditions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": h.service.Conditions()})
}

func (h *Handler) handleListLanguages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": h.service.Languages()})
}

func (h *Handler) handleSessionHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]
	history, err := h.service.History(r.Context(), sessionID)
	if err != nil {
		logger.Log.WithError(err).Error("failed to load session history")
		http.Error(w, "failed to load history", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": history})
}

func (h *Handler) handleResetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]
	if err := h.service.ResetSession(r.Context(), sessionID); err != nil {
		logger.Log.WithError(err).Error("failed to reset session")
		http.Error(w, "failed to reset session", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Log.WithError(err).Error("failed to encode response")
	}
}
