package service

import (
	"context"
	"fmt"

	"github.com/sleekhouse/backend/internal/model"
	"github.com/sleekhouse/backend/internal/repository"
	"github.com/sleekhouse/backend/pkg/ident"
)

// messageServiceImpl is the production implementation of MessageService.
type messageServiceImpl struct {
	messages      repository.MessageRepository
	notifications repository.NotificationRepository
	ids           ident.Generator
}

// NewMessageService creates a MessageService backed by the given repositories.
func NewMessageService(messages repository.MessageRepository, notifications repository.NotificationRepository, ids ident.Generator) MessageService {
	return &messageServiceImpl{messages: messages, notifications: notifications, ids: ids}
}

// Submit stores the message, then writes the derived notification. The two
// writes are independent documents with independently captured timestamps;
// no transaction spans them. A notification failure surfaces as the overall
// error while the message stays in the store.
func (s *messageServiceImpl) Submit(ctx context.Context, msg *model.Message) error {
	msg.ID = s.ids.NewID(ident.MessagePrefix)
	notificationID := s.ids.NewID(ident.NotificationPrefix)

	msg.Status = model.MessageStatusUnread
	msg.CreatedAt = model.NowISO()
	msg.ReadAt = ""
	msg.RepliedAt = ""

	if err := s.messages.Save(ctx, msg); err != nil {
		return err
	}

	notification := &model.Notification{
		ID:        notificationID,
		Title:     msg.ProjectType,
		Message:   fmt.Sprintf("One new message from %s", msg.FullName),
		Type:      model.NotificationTypeMessage,
		Priority:  model.PriorityUrgent,
		Status:    model.NotificationStatusUnread,
		CreatedAt: model.NowISO(),
		ReadAt:    "",
		Source: model.NotificationSource{
			Type:     model.SourceContactForm,
			SourceID: msg.ID,
		},
	}
	return s.notifications.Save(ctx, notification)
}

// List returns messages filtered by status.
func (s *messageServiceImpl) List(ctx context.Context, status string) ([]*model.Message, error) {
	return s.messages.List(ctx, status)
}

// UpdateStatus advances a message's status, stamping readAt or repliedAt
// with the current time.
func (s *messageServiceImpl) UpdateStatus(ctx context.Context, id, status string) error {
	return s.messages.UpdateStatus(ctx, id, status, model.NowISO())
}
