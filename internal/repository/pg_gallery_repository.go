package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sleekhouse/backend/internal/model"
)

// GalleryRepository defines the persistence interface for gallery items.
type GalleryRepository interface {
	// List returns all gallery items.
	List(ctx context.Context) ([]*model.GalleryItem, error)

	// GetByID returns a single item, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.GalleryItem, error)

	// Save inserts a new item. The store assigns the identifier and
	// populates item.ID.
	Save(ctx context.Context, item *model.GalleryItem) error

	// Update replaces an existing item's fields. Returns ErrNotFound if the
	// id is unknown.
	Update(ctx context.Context, item *model.GalleryItem) error

	// UpdateImageURL sets only the image reference and updatedAt stamp.
	UpdateImageURL(ctx context.Context, id, imageURL, updatedAt string) error

	// Delete removes an item. Returns ErrNotFound if the id is unknown.
	Delete(ctx context.Context, id string) error
}

// PgGalleryRepository is the PostgreSQL implementation of GalleryRepository.
type PgGalleryRepository struct {
	pool *pgxpool.Pool
}

// NewPgGalleryRepository creates a PgGalleryRepository backed by the given pool.
func NewPgGalleryRepository(pool *pgxpool.Pool) *PgGalleryRepository {
	return &PgGalleryRepository{pool: pool}
}

var _ GalleryRepository = (*PgGalleryRepository)(nil)

const galleryColumns = `id, title, description, image_url, category, created_at, updated_at`

func (r *PgGalleryRepository) List(ctx context.Context) ([]*model.GalleryItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+galleryColumns+` FROM gallery_items ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*model.GalleryItem
	for rows.Next() {
		var it model.GalleryItem
		if err := rows.Scan(&it.ID, &it.Title, &it.Description, &it.ImageURL,
			&it.Category, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

func (r *PgGalleryRepository) GetByID(ctx context.Context, id string) (*model.GalleryItem, error) {
	var it model.GalleryItem
	err := r.pool.QueryRow(ctx,
		`SELECT `+galleryColumns+` FROM gallery_items WHERE id = $1`, id,
	).Scan(&it.ID, &it.Title, &it.Description, &it.ImageURL,
		&it.Category, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &it, nil
}

func (r *PgGalleryRepository) Save(ctx context.Context, item *model.GalleryItem) error {
	item.ID = uuid.NewString()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO gallery_items (id, title, description, image_url, category, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		item.ID, item.Title, item.Description, item.ImageURL,
		item.Category, item.CreatedAt, item.UpdatedAt,
	)
	return err
}

func (r *PgGalleryRepository) Update(ctx context.Context, item *model.GalleryItem) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE gallery_items
		 SET title = $2, description = $3, image_url = $4, category = $5, updated_at = $6
		 WHERE id = $1`,
		item.ID, item.Title, item.Description, item.ImageURL, item.Category, item.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgGalleryRepository) UpdateImageURL(ctx context.Context, id, imageURL, updatedAt string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE gallery_items SET image_url = $2, updated_at = $3 WHERE id = $1`,
		id, imageURL, updatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgGalleryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM gallery_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
