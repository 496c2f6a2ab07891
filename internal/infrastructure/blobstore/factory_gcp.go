//go:build gcp

package blobstore

import (
	"context"
	"fmt"

	"pcg_compliance/internal/config"
	"pcg_compliance/internal/usecase/interfaces"
)

func newGCSStore(ctx context.Context, cfg *config.Config) (interfaces.IBlobStore, error) {
	if cfg.BlobBucket == "" {
		return nil, fmt.Errorf("BLOB_BUCKET is required for GCS storage")
	}
	return NewGCSStore(ctx, GCSStoreConfig{
		Bucket: cfg.BlobBucket,
		Prefix: cfg.BlobPrefix,
		URLTTL: cfg.SignedURLTTL,
	})
}
