package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/sleekhouse/backend/internal/repository"
)

// socialSettingsName is the fixed document name holding the platform→URL map.
const socialSettingsName = "social"

// SettingsHandler serves configuration documents. The public endpoint reads
// the social-links document; writes belong to the admin surface.
type SettingsHandler struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsHandler creates a SettingsHandler over the given repository.
func NewSettingsHandler(settingsRepo repository.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{settingsRepo: settingsRepo}
}

// Socials handles GET /api/contact/socials. The stored document is returned
// verbatim; its shape is whatever the admin tooling last wrote. Any failure,
// including a missing document, collapses to the fixed 500 body.
func (h *SettingsHandler) Socials(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	doc, err := h.settingsRepo.Get(r.Context(), socialSettingsName)
	if err != nil {
		slog.Error("social settings read failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(internalServerError)
		return
	}

	_, _ = w.Write(doc)
}

// Put handles PUT /api/admin/settings/{name}. The request body replaces the
// stored document; it must be a JSON object.
func (h *SettingsHandler) Put(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	name := r.PathValue("name")
	if name == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "name_required"})
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_body"})
		return
	}

	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	if err := h.settingsRepo.Put(r.Context(), name, body); err != nil {
		slog.Error("settings write failed", "error", err, "name", name)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "update_failed"})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}
