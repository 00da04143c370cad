package service

import (
	"context"

	"github.com/sleekhouse/backend/internal/model"
)

// NotificationService defines the business logic for the admin notification
// inbox. Notifications are created by MessageService; this service only
// reads and advances them.
type NotificationService interface {
	// List returns notifications filtered by status ("" or "all" for everything).
	List(ctx context.Context, status string) ([]*model.Notification, error)

	// MarkRead marks a notification read and stamps readAt.
	MarkRead(ctx context.Context, id string) error

	// Archive archives a notification and stamps archivedAt.
	Archive(ctx context.Context, id string) error
}
