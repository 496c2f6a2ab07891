package blobstore

import (
	"context"
	"fmt"

	"pcg_compliance/internal/config"
	"pcg_compliance/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// NewFromConfig picks the backend named by BLOB_BACKEND. awsCfg is only
// read for the s3 backend.
func NewFromConfig(ctx context.Context, cfg *config.Config, awsCfg aws.Config) (interfaces.IBlobStore, error) {
	switch cfg.BlobBackend {
	case config.BlobBackendS3:
		return NewS3Store(awsCfg, S3StoreConfig{
			Bucket:   cfg.BlobBucket,
			Endpoint: cfg.S3Endpoint,
			Prefix:   cfg.BlobPrefix,
			URLTTL:   cfg.SignedURLTTL,
		})
	case config.BlobBackendMinIO:
		store, err := NewMinIOStore(MinIOStoreConfig{
			Endpoint:  cfg.MinIOEndpoint,
			AccessKey: cfg.MinIOAccessKey,
			SecretKey: cfg.MinIOSecretKey,
			UseSSL:    cfg.MinIOUseSSL,
			Region:    cfg.AWSRegion,
			Bucket:    cfg.BlobBucket,
			Prefix:    cfg.BlobPrefix,
			URLTTL:    cfg.SignedURLTTL,
		})
		if err != nil {
			return nil, err
		}
		if err := store.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return store, nil
	case config.BlobBackendGCS:
		return newGCSStore(ctx, cfg)
	case config.BlobBackendMemory:
		return NewMemoryStore(cfg.BlobBucket), nil
	default:
		return nil, fmt.Errorf("unsupported blob backend: %s", cfg.BlobBackend)
	}
}
