package handlers

import (
	"net/http"
	"strings"
)

func (h *Handler) HandleIdentifications(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		h.writeJSON(w, h.store.GetAll())
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) HandleIdentificationDetail(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/identifications/")

	ident, ok := h.getIdentificationOrError(w, id)
	if !ok {
		return
	}

	switch r.Method {
	case "GET":
		h.writeJSON(w, ident)
	case "DELETE":
		h.store.Delete(id)
		h.writeJSON(w, map[string]string{"status": "deleted"})
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
