package handlers

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/discshelf/discnamer/internal/models"
	"github.com/discshelf/discnamer/internal/naming"
)

// HandleIdentify accepts a multipart disc photo upload, identifies it, and
// returns the title plus the filename it would be renamed to.
func (h *Handler) HandleIdentify(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.writeError(w, "Failed to read file: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	if err := h.ensureUploadsDir(); err != nil {
		h.writeError(w, "Failed to create uploads directory: "+err.Error(), http.StatusInternalServerError)
		return
	}

	// Limit file size to 10MB
	fileData, err := io.ReadAll(io.LimitReader(file, 10*1024*1024))
	if err != nil {
		h.writeError(w, "Failed to read file contents: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if len(fileData) >= 10*1024*1024 {
		h.writeError(w, "File too large (max 10MB)", http.StatusBadRequest)
		return
	}

	id := fmt.Sprintf("%s_%d", strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename)), time.Now().Unix())
	uploadPath := filepath.Join("uploads", id+filepath.Ext(header.Filename))
	if err := os.WriteFile(uploadPath, fileData, 0644); err != nil {
		h.writeError(w, "Failed to save image: "+err.Error(), http.StatusInternalServerError)
		return
	}

	slog.Info("Identifying uploaded image", "file", header.Filename)

	title, err := h.service.IdentifyFile(r.Context(), uploadPath)
	if err != nil {
		h.writeError(w, "Failed to identify image: "+err.Error(), http.StatusInternalServerError)
		return
	}

	ident := &models.Identification{
		ID:         id,
		SourceName: header.Filename,
		Title:      title,
		Filename:   naming.SanitizeTitle(title) + ".jpg",
		Provider:   h.service.Provider(),
		Model:      h.service.Model(),
		CreatedAt:  time.Now(),
	}
	h.store.Set(id, ident)

	slog.Info("Identified uploaded image", "file", header.Filename, "title", title)
	h.writeJSON(w, ident)
}
