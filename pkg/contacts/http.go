package contacts

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/swasthya-saarthi/companion/pkg/common/logger"
	"github.com/swasthya-saarthi/companion/pkg/common/models"
)

// Store is the persistence surface the handler needs; *Repository
// satisfies it.
type Store interface {
	Create(ctx context.Context, contact models.EmergencyContact) error
	List(ctx context.Context) ([]models.EmergencyContact, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/contacts", h.handleCreate).Methods(http.MethodPost)
	r.HandleFunc("/contacts", h.handleList).Methods(http.MethodGet)
	r.HandleFunc("/contacts/{id}", h.handleDelete).Methods(http.MethodDelete)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Phone) == "" {
		http.Error(w, "name and phone are required", http.StatusBadRequest)
		return
	}

	contact := models.EmergencyContact{
		ID:        uuid.New(),
		Name:      req.Name,
		Relation:  req.Relation,
		Phone:     req.Phone,
		Address:   req.Address,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.store.Create(r.Context(), contact); err != nil {
		logger.Log.WithError(err).Error("failed to create contact")
		http.Error(w, "failed to create contact", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"contact": contact})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context())
	if err != nil {
		logger.Log.WithError(err).Error("failed to list contacts")
		http.Error(w, "failed to list contacts", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid contact id", http.StatusBadRequest)
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		logger.Log.WithError(err).Error("failed to delete contact")
		http.Error(w, "failed to delete contact", http.StatusInternalServerError)
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
