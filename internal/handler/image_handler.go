package handler

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/sleekhouse/backend/internal/model"
	"github.com/sleekhouse/backend/internal/service"
	"github.com/sleekhouse/backend/internal/storage"
)

const maxImageSize = 2 << 20 // 2 MB

var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// ImageUpdateRepo updates a gallery item's image reference.
type ImageUpdateRepo interface {
	UpdateImageURL(ctx context.Context, id, imageURL, updatedAt string) error
}

// ImageHandler handles gallery item image uploads.
type ImageHandler struct {
	storage        storage.Storage
	galleryService service.GalleryService
	imageRepo      ImageUpdateRepo
}

// NewImageHandler creates an ImageHandler.
func NewImageHandler(store storage.Storage, gs service.GalleryService, repo ImageUpdateRepo) *ImageHandler {
	return &ImageHandler{storage: store, galleryService: gs, imageRepo: repo}
}

// Upload handles POST /api/admin/gallery/{id}/image.
// Accepts a multipart "image" part (jpeg/png/webp, max 2 MB), replaces any
// previously stored blob and updates the item's imageUrl.
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	itemID := r.PathValue("id")
	if itemID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "id_required"})
		return
	}

	item, err := h.galleryService.GetByID(r.Context(), itemID)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
		return
	}

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "file_too_large"})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "image_required"})
		return
	}
	defer file.Close()

	if header.Size > maxImageSize {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "file_too_large"})
		return
	}

	ct := header.Header.Get("Content-Type")
	ext, ok := allowedContentTypes[ct]
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_content_type"})
		return
	}

	// Remove the previous blob, if any
	if item.ImageURL != "" {
		oldKey := strings.TrimPrefix(item.ImageURL, "/uploads/")
		_ = h.storage.Delete(r.Context(), oldKey)
	}

	b := make([]byte, 16)
	_, _ = rand.Read(b)
	key := path.Join("gallery", itemID, hex.EncodeToString(b)+ext)
	imageURL, err := h.storage.Save(r.Context(), key, file, ct)
	if err != nil {
		slog.Error("gallery image upload failed", "error", err, "item_id", itemID)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "upload_failed"})
		return
	}

	if err := h.imageRepo.UpdateImageURL(r.Context(), itemID, imageURL, model.NowISO()); err != nil {
		slog.Error("gallery image url update failed", "error", err, "item_id", itemID)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "update_failed"})
		return
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"image_url": imageURL})
}
