package blobstore

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"pcg_compliance/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const docPath = "cumplimiento/ACME/ACME_2025-01/SUB-1/REQ-1/f30.pdf"

func TestObjectKey(t *testing.T) {
	tests := []struct {
		prefix, path, want string
	}{
		{"", "a/b.pdf", "a/b.pdf"},
		{"", "/a/b.pdf", "a/b.pdf"},
		{"tenant-docs", "a/b.pdf", "tenant-docs/a/b.pdf"},
		{"/tenant-docs/", "/a/b.pdf", "tenant-docs/a/b.pdf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, objectKey(tt.prefix, tt.path))
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore("docs")

	_, err := s.DownloadURL(ctx, docPath)
	assert.True(t, errors.Is(err, ErrObjectNotFound))

	body := []byte("%PDF-1.4 fake")
	require.NoError(t, s.Put(ctx, docPath, bytes.NewReader(body), int64(len(body)), "application/pdf"))

	u, err := s.DownloadURL(ctx, docPath)
	require.NoError(t, err)
	assert.Equal(t, "memory://docs/"+docPath, u)

	data, ct, ok := s.Get(docPath)
	require.True(t, ok)
	assert.Equal(t, body, data)
	assert.Equal(t, "application/pdf", ct)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.Error(t, s.Put(cancelled, docPath, bytes.NewReader(body), int64(len(body)), "application/pdf"))
}

func TestS3Store_DownloadURLIsPresigned(t *testing.T) {
	awsCfg := aws.Config{
		Region:      "us-east-1",
		Credentials: credentials.NewStaticCredentialsProvider("AKIDLOCAL", "SECRETLOCAL", ""),
	}
	s, err := NewS3Store(awsCfg, S3StoreConfig{
		Bucket:   "docs",
		Endpoint: "http://localhost:4566",
		Prefix:   "pcg",
		URLTTL:   5 * time.Minute,
	})
	require.NoError(t, err)

	u, err := s.DownloadURL(context.Background(), docPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(u, "http://localhost:4566/docs/pcg/"+docPath), u)
	assert.Contains(t, u, "X-Amz-Expires=300")
	assert.Contains(t, u, "X-Amz-Signature=")
}

func TestS3Store_RequiresBucket(t *testing.T) {
	_, err := NewS3Store(aws.Config{Region: "us-east-1"}, S3StoreConfig{})
	assert.Error(t, err)
}

func TestMinIOStore_DownloadURLIsPresigned(t *testing.T) {
	s, err := NewMinIOStore(MinIOStoreConfig{
		Endpoint:  "localhost:9000",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Region:    "us-east-1",
		Bucket:    "docs",
		URLTTL:    5 * time.Minute,
	})
	require.NoError(t, err)

	u, err := s.DownloadURL(context.Background(), docPath)
	require.NoError(t, err)
	assert.Contains(t, u, "localhost:9000/docs/"+docPath)
	assert.Contains(t, u, "X-Amz-Expires=300")
}

func TestNewFromConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		s, err := NewFromConfig(ctx, &config.Config{BlobBackend: config.BlobBackendMemory, BlobBucket: "docs"}, aws.Config{})
		require.NoError(t, err)
		_, ok := s.(*MemoryStore)
		assert.True(t, ok, "expected *MemoryStore, got %T", s)
	})

	t.Run("s3", func(t *testing.T) {
		s, err := NewFromConfig(ctx, &config.Config{BlobBackend: config.BlobBackendS3, BlobBucket: "docs"}, aws.Config{Region: "us-east-1"})
		require.NoError(t, err)
		_, ok := s.(*S3Store)
		assert.True(t, ok, "expected *S3Store, got %T", s)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := NewFromConfig(ctx, &config.Config{BlobBackend: "ftp"}, aws.Config{})
		assert.Error(t, err)
	})
}
