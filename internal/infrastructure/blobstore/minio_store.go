package blobstore

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"pcg_compliance/internal/usecase/interfaces"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinIOStoreConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
	Prefix    string
	URLTTL    time.Duration
}

// MinIOStore is used for on-premise installs and local development.
type MinIOStore struct {
	client *minio.Client
	bucket string
	region string
	prefix string
	ttl    time.Duration
}

var _ interfaces.IBlobStore = (*MinIOStore)(nil)

func NewMinIOStore(cfg MinIOStoreConfig) (*MinIOStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("BLOB_BUCKET is required for MinIO storage")
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio: %w", err)
	}
	return &MinIOStore{
		client: client,
		bucket: cfg.Bucket,
		region: cfg.Region,
		prefix: cfg.Prefix,
		ttl:    cfg.URLTTL,
	}, nil
}

// EnsureBucket creates the bucket on first start.
func (s *MinIOStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
		return fmt.Errorf("make bucket %s: %w", s.bucket, err)
	}
	return nil
}

func (s *MinIOStore) Put(ctx context.Context, path string, body io.Reader, size int64, contentType string) error {
	opts := minio.PutObjectOptions{ContentType: contentType}
	if _, err := s.client.PutObject(ctx, s.bucket, objectKey(s.prefix, path), body, size, opts); err != nil {
		return fmt.Errorf("minio put %s: %w", path, err)
	}
	return nil
}

func (s *MinIOStore) DownloadURL(ctx context.Context, path string) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, objectKey(s.prefix, path), s.ttl, url.Values{})
	if err != nil {
		return "", fmt.Errorf("minio presign %s: %w", path, err)
	}
	return u.String(), nil
}
