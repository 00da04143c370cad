package service

import (
	"context"

	"github.com/sleekhouse/backend/internal/model"
	"github.com/sleekhouse/backend/internal/repository"
)

// notificationServiceImpl is the production implementation of NotificationService.
type notificationServiceImpl struct {
	repo repository.NotificationRepository
}

// NewNotificationService creates a NotificationService backed by the given repository.
func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationServiceImpl{repo: repo}
}

func (s *notificationServiceImpl) List(ctx context.Context, status string) ([]*model.Notification, error) {
	return s.repo.List(ctx, status)
}

func (s *notificationServiceImpl) MarkRead(ctx context.Context, id string) error {
	return s.repo.MarkRead(ctx, id, model.NowISO())
}

func (s *notificationServiceImpl) Archive(ctx context.Context, id string) error {
	return s.repo.Archive(ctx, id, model.NowISO())
}
