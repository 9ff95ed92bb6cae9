package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/hogarlabs/hogar/internal/config"
)

// Prefixes namespacing uploaded blobs by feature.
const (
	ChatPrefix    = "chat_images"
	GalleryPrefix = "gallery"
)

// Storage is the blob backend the chat and gallery modules write
// uploaded images to. Keys are opaque paths like "gallery/<uuid>.jpg";
// rows only hold the key, the backend owns the bytes.
type Storage interface {
	// Save writes the blob under key.
	Save(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	// Delete removes the blob. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// URL returns the absolute URL the blob is served from.
	URL(key string) string
	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error
}

// New builds the storage backend selected by STORAGE_TYPE.
func New(cfg *config.Config) (Storage, error) {
	switch cfg.StorageType {
	case "local":
		return NewLocal(cfg.UploadDir, cfg.BaseURL)
	case "minio":
		return NewMinio(cfg.MinioEndpoint, cfg.MinioPublicURL, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.StorageType)
	}
}
