package service

import (
	"context"

	"github.com/sleekhouse/backend/internal/model"
)

// MessageService defines the business logic for contact messages.
type MessageService interface {
	// Submit stores a new contact message and a derived admin notification.
	// The msg.ID, status and timestamps are populated by the implementation.
	// The two writes are sequential and not atomic: if the message write
	// fails the notification is never written, and if the notification
	// write fails the stored message remains.
	Submit(ctx context.Context, msg *model.Message) error

	// List returns messages filtered by status ("" or "all" for everything).
	List(ctx context.Context, status string) ([]*model.Message, error)

	// UpdateStatus advances a message to "read" or "replied", stamping the
	// matching timestamp.
	UpdateStatus(ctx context.Context, id, status string) error
}
