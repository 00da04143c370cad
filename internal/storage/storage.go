package storage

import (
	"context"
	"io"
)

// Storage abstracts saving and deleting gallery image blobs. The local
// filesystem implementation can be swapped for S3 / Cloudflare R2 later.
type Storage interface {
	// Save stores the blob and returns its public URL.
	// key is a unique path within the storage (e.g. "gallery/<id>/<rand>.jpg").
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)

	// Delete removes the blob at key. Missing blobs are not an error.
	Delete(ctx context.Context, key string) error
}
