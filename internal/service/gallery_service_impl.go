package service

import (
	"context"

	"github.com/sleekhouse/backend/internal/model"
	"github.com/sleekhouse/backend/internal/repository"
)

// galleryServiceImpl is the production implementation of GalleryService.
type galleryServiceImpl struct {
	repo repository.GalleryRepository
}

// NewGalleryService creates a GalleryService backed by the given repository.
func NewGalleryService(repo repository.GalleryRepository) GalleryService {
	return &galleryServiceImpl{repo: repo}
}

func (s *galleryServiceImpl) List(ctx context.Context) ([]*model.GalleryItem, error) {
	return s.repo.List(ctx)
}

func (s *galleryServiceImpl) GetByID(ctx context.Context, id string) (*model.GalleryItem, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores a new item with fresh timestamps. The store assigns the
// identifier during Save.
func (s *galleryServiceImpl) Create(ctx context.Context, item *model.GalleryItem) error {
	now := model.NowISO()
	item.CreatedAt = now
	item.UpdatedAt = now
	return s.repo.Save(ctx, item)
}

// Update replaces the item's editable fields. CreatedAt is left untouched.
func (s *galleryServiceImpl) Update(ctx context.Context, item *model.GalleryItem) error {
	item.UpdatedAt = model.NowISO()
	return s.repo.Update(ctx, item)
}

func (s *galleryServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
