package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sleekhouse/backend/internal/model"
)

// MessageRepository defines the persistence interface for contact messages.
// It is defined here (in repository) to avoid an import cycle with service.
type MessageRepository interface {
	// Save inserts a new message document under msg.ID. The caller is
	// responsible for populating the identifier and all fixed fields.
	Save(ctx context.Context, msg *model.Message) error

	// List returns messages, newest first. Status "" or "all" returns all.
	List(ctx context.Context, status string) ([]*model.Message, error)

	// UpdateStatus advances a message's status and stamps the matching
	// timestamp ("read" stamps readAt, "replied" stamps repliedAt).
	// Returns ErrNotFound if no message has the given id.
	UpdateStatus(ctx context.Context, id, status, stampedAt string) error
}

// PgMessageRepository is the PostgreSQL implementation of MessageRepository.
type PgMessageRepository struct {
	pool *pgxpool.Pool
}

// NewPgMessageRepository creates a PgMessageRepository backed by the given pool.
func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

var _ MessageRepository = (*PgMessageRepository)(nil)

func (r *PgMessageRepository) Save(ctx context.Context, msg *model.Message) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO messages (id, full_name, email, phone_number, project_type, message, status, created_at, read_at, replied_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		msg.ID, msg.FullName, msg.Email, msg.PhoneNumber, msg.ProjectType,
		msg.Message, msg.Status, msg.CreatedAt, msg.ReadAt, msg.RepliedAt,
	)
	return err
}

func (r *PgMessageRepository) List(ctx context.Context, status string) ([]*model.Message, error) {
	query := `SELECT id, full_name, email, phone_number, project_type, message, status, created_at, read_at, replied_at
	          FROM messages`
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

	var messages []*model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.FullName, &m.Email, &m.PhoneNumber, &m.ProjectType,
			&m.Message, &m.Status, &m.CreatedAt, &m.ReadAt, &m.RepliedAt); err != nil {
			return nil, err
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}

func (r *PgMessageRepository) UpdateStatus(ctx context.Context, id, status, stampedAt string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE messages SET
		   status = $2,
		   read_at = CASE WHEN $2 = 'read' THEN $3 ELSE read_at END,
		   replied_at = CASE WHEN $2 = 'replied' THEN $3 ELSE replied_at END
		 WHERE id = $1`,
		id, status, stampedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
