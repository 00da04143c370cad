package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sleekhouse/backend/internal/model"
)

// NotificationRepository defines the persistence interface for admin-inbox
// notifications.
type NotificationRepository interface {
	// Save inserts a new notification document under n.ID.
	Save(ctx context.Context, n *model.Notification) error

	// List returns notifications, newest first. Status "" or "all" returns all.
	List(ctx context.Context, status string) ([]*model.Notification, error)

	// MarkRead sets status to "read" and stamps readAt.
	// Returns ErrNotFound if no notification has the given id.
	MarkRead(ctx context.Context, id, readAt string) error

	// Archive sets status to "archived" and stamps archivedAt.
	// Returns ErrNotFound if no notification has the given id.
	Archive(ctx context.Context, id, archivedAt string) error
}

// PgNotificationRepository is the PostgreSQL implementation of NotificationRepository.
type PgNotificationRepository struct {
	pool *pgxpool.Pool
}

// NewPgNotificationRepository creates a PgNotificationRepository backed by the given pool.
func NewPgNotificationRepository(pool *pgxpool.Pool) *PgNotificationRepository {
	return &PgNotificationRepository{pool: pool}
}

var _ NotificationRepository = (*PgNotificationRepository)(nil)

func (r *PgNotificationRepository) Save(ctx context.Context, n *model.Notification) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO notifications (id, title, message, type, priority, status, created_at, read_at, archived_at, source_type, source_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		n.ID, n.Title, n.Message, string(n.Type), string(n.Priority), n.Status,
		n.CreatedAt, n.ReadAt, n.ArchivedAt, string(n.Source.Type), n.Source.SourceID,
	)
	return err
}

func (r *PgNotificationRepository) List(ctx context.Context, status string) ([]*model.Notification, error) {
	query := `SELECT id, title, message, type, priority, status, created_at, read_at, archived_at, source_type, source_id
	          FROM notifications`
	var args []any
	if status != "" && status != "all" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*model.Notification
	for rows.Next() {
		var n model.Notification
		var typ, priority, sourceType string
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &typ, &priority, &n.Status,
			&n.CreatedAt, &n.ReadAt, &n.ArchivedAt, &sourceType, &n.Source.SourceID); err != nil {
			return nil, err
		}
		n.Type = model.NotificationType(typ)
		n.Priority = model.NotificationPriority(priority)
		n.Source.Type = model.NotificationSourceType(sourceType)
		notifications = append(notifications, &n)
	}
	return notifications, rows.Err()
}

func (r *PgNotificationRepository) MarkRead(ctx context.Context, id, readAt string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE notifications SET status = 'read', read_at = $2 WHERE id = $1`,
		id, readAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgNotificationRepository) Archive(ctx context.Context, id, archivedAt string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE notifications SET status = 'archived', archived_at = $2 WHERE id = $1`,
		id, archivedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
