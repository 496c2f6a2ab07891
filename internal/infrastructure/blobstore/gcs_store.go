//go:build gcp

package blobstore

import (
	"context"
	"fmt"
	"io"
	"time"

	"pcg_compliance/internal/usecase/interfaces"

	"cloud.google.com/go/storage"
)

type GCSStoreConfig struct {
	Bucket string
	Prefix string
	URLTTL time.Duration
}

// GCSStore signs URLs with the service account from ADC.
type GCSStore struct {
	client *storage.Client
	bucket string
	prefix string
	ttl    time.Duration
}

var _ interfaces.IBlobStore = (*GCSStore)(nil)

func NewGCSStore(ctx context.Context, cfg GCSStoreConfig) (*GCSStore, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}
	return &GCSStore{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix, ttl: cfg.URLTTL}, nil
}

func (s *GCSStore) Put(ctx context.Context, path string, body io.Reader, _ int64, contentType string) error {
	w := s.client.Bucket(s.bucket).Object(objectKey(s.prefix, path)).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()
		return fmt.Errorf("gcs write %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("gcs close %s: %w", path, err)
	}
	return nil
}

func (s *GCSStore) DownloadURL(_ context.Context, path string) (string, error) {
	u, err := s.client.Bucket(s.bucket).SignedURL(objectKey(s.prefix, path), &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  "GET",
		Expires: time.Now().Add(s.ttl),
	})
	if err != nil {
		return "", fmt.Errorf("gcs sign %s: %w", path, err)
	}
	return u, nil
}
