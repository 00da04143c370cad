package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sleekhouse/backend/internal/model"
)

func TestNotificationService_List_ForwardsStatus(t *testing.T) {
	var captured string
	repo := &mockNotificationRepo{
		listFunc: func(ctx context.Context, status string) ([]*model.Notification, error) {
			captured = status
			return []*model.Notification{{ID: "notif-1"}}, nil
		},
	}
	svc := NewNotificationService(repo)

	got, err := svc.List(context.Background(), "unread")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured != "unread" {
		t.Errorf("expected status=unread forwarded, got %q", captured)
	}
	if len(got) != 1 || got[0].ID != "notif-1" {
		t.Errorf("unexpected result: %v", got)
	}
}

func TestNotificationService_MarkRead_StampsReadAt(t *testing.T) {
	var capturedID, capturedStamp string
	repo := &mockNotificationRepo{
		markReadFunc: func(ctx context.Context, id, readAt string) error {
			capturedID = id
			capturedStamp = readAt
			return nil
		},
	}
	svc := NewNotificationService(repo)

	if err := svc.MarkRead(context.Background(), "notif-7"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if capturedID != "notif-7" {
		t.Errorf("expected id=notif-7, got %q", capturedID)
	}
	if _, err := time.Parse(time.RFC3339, capturedStamp); err != nil {
		t.Errorf("readAt %q is not ISO-8601: %v", capturedStamp, err)
	}
}

func TestNotificationService_Archive_StampsArchivedAt(t *testing.T) {
	var capturedStamp string
	repo := &mockNotificationRepo{
		archiveFunc: func(ctx context.Context, id, archivedAt string) error {
			capturedStamp = archivedAt
			return nil
		},
	}
	svc := NewNotificationService(repo)

	if err := svc.Archive(context.Background(), "notif-7"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := time.Parse(time.RFC3339, capturedStamp); err != nil {
		t.Errorf("archivedAt %q is not ISO-8601: %v", capturedStamp, err)
	}
}

// TestNotificationService_MarkRead_RepositoryError propagates repository errors.
func TestNotificationService_MarkRead_RepositoryError(t *testing.T) {
	repo := &mockNotificationRepo{
		markReadFunc: func(ctx context.Context, id, readAt string) error {
			return errors.New("db write failed")
		},
	}
	svc := NewNotificationService(repo)

	if err := svc.MarkRead(context.Background(), "notif-7"); err == nil {
		t.Error("expected error from repository, got nil")
	}
}
