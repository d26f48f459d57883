package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"

	"github.com/discshelf/discnamer/internal/models"
	"github.com/discshelf/discnamer/internal/storage"
)

// IdentifyService is the slice of the identification pipeline the web
// handlers need.
type IdentifyService interface {
	IdentifyFile(ctx context.Context, path string) (string, error)
	Provider() string
	Model() string
}

type Handler struct {
	store   *storage.IdentificationStore
	service IdentifyService
}

func New(service IdentifyService) *Handler {
	return &Handler{
		store:   storage.New(),
		service: service,
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}

func (h *Handler) getIdentificationOrError(w http.ResponseWriter, id string) (*models.Identification, bool) {
	ident, exists := h.store.Get(id)
	if !exists {
		h.writeError(w, "Identification not found", http.StatusNotFound)
		return nil, false
	}
	return ident, true
}

func (h *Handler) ensureUploadsDir() error {
	return os.MkdirAll("uploads", 0755)
}
