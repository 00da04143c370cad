package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sleekhouse/backend/internal/model"
	"github.com/sleekhouse/backend/internal/repository"
	"github.com/sleekhouse/backend/internal/service"
)

// NotificationHandler serves the admin notification inbox.
type NotificationHandler struct {
	notificationService service.NotificationService
}

// NewNotificationHandler creates a NotificationHandler with the given service.
func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// notificationListResponse is the JSON response for GET /api/admin/notifications.
type notificationListResponse struct {
	Notifications []*model.Notification `json:"notifications"`
}

// List handles GET /api/admin/notifications.
// Supports query param: status (all/unread/read/archived).
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	notifications, err := h.notificationService.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		slog.Error("notification list failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}

	if notifications == nil {
		notifications = []*model.Notification{}
	}

	_ = json.NewEncoder(w).Encode(notificationListResponse{Notifications: notifications})
}

// MarkRead handles PATCH /api/admin/notifications/{id}/read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	h.advance(w, r, h.notificationService.MarkRead, "notification mark read failed")
}

// Archive handles PATCH /api/admin/notifications/{id}/archive.
func (h *NotificationHandler) Archive(w http.ResponseWriter, r *http.Request) {
	h.advance(w, r, h.notificationService.Archive, "notification archive failed")
}

func (h *NotificationHandler) advance(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id string) error, logMsg string) {
	w.Header().Set("Content-Type", "application/json")

	id := r.PathValue("id")
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "id_required"})
		return
	}

	if err := op(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
			return
		}
		slog.Error(logMsg, "error", err, "notification_id", id)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "update_failed"})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}
