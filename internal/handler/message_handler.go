package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sleekhouse/backend/internal/model"
	"github.com/sleekhouse/backend/internal/repository"
	"github.com/sleekhouse/backend/internal/service"
)

// MessageHandler handles contact-form submission and the admin message inbox.
type MessageHandler struct {
	messageService service.MessageService
}

// NewMessageHandler creates a MessageHandler with the given service.
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	ProjectType string `json:"projectType"`
	Message     string `json:"message"`
}

// Submit handles POST /api/contact. All five payload fields are required;
// no format validation is applied beyond presence.
func (h *MessageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	required := []struct {
		value, code string
	}{
		{req.FullName, "full_name_required"},
		{req.Email, "email_required"},
		{req.PhoneNumber, "phone_number_required"},
		{req.ProjectType, "project_type_required"},
		{req.Message, "message_required"},
	}
	for _, f := range required {
		if f.value == "" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": f.code})
			return
		}
	}

	msg := &model.Message{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		ProjectType: req.ProjectType,
		Message:     req.Message,
	}

	if err := h.messageService.Submit(r.Context(), msg); err != nil {
		slog.Error("message submit failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "submit_failed"})
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]string{"ok": "true"})
}

// adminListResponse is the JSON response for GET /api/admin/messages.
type adminListResponse struct {
	Messages []*model.Message `json:"messages"`
}

// AdminList handles GET /api/admin/messages.
// Supports query param: status (all/unread/read/replied).
func (h *MessageHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	messages, err := h.messageService.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		slog.Error("message list failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}

	// Return [] not null for empty lists
	if messages == nil {
		messages = []*model.Message{}
	}

	_ = json.NewEncoder(w).Encode(adminListResponse{Messages: messages})
}

// updateStatusRequest is the expected JSON body for the status patch.
type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/admin/messages/{id}/status.
// Accepted statuses: "read", "replied".
func (h *MessageHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id := r.PathValue("id")
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "id_required"})
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	if req.Status != model.MessageStatusRead && req.Status != model.MessageStatusReplied {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_status"})
		return
	}

	if err := h.messageService.UpdateStatus(r.Context(), id, req.Status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
			return
		}
		slog.Error("message status update failed", "error", err, "message_id", id)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "update_failed"})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}
