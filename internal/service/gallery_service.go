package service

import (
	"context"

	"github.com/sleekhouse/backend/internal/model"
)

// GalleryService defines the business logic for gallery items. The public
// site only lists; creation and mutation belong to the admin endpoints.
type GalleryService interface {
	// List returns all gallery items.
	List(ctx context.Context) ([]*model.GalleryItem, error)

	// GetByID returns a single item.
	GetByID(ctx context.Context, id string) (*model.GalleryItem, error)

	// Create stores a new item. ID and timestamps are populated by the
	// implementation.
	Create(ctx context.Context, item *model.GalleryItem) error

	// Update replaces an existing item's editable fields and stamps updatedAt.
	Update(ctx context.Context, item *model.GalleryItem) error

	// Delete removes an item.
	Delete(ctx context.Context, id string) error
}
