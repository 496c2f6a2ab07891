package interfaces

import (
	"context"
	"io"
)

// IBlobStore stores uploaded documents at a caller-chosen path and hands out
// time-limited download URLs.
type IBlobStore interface {
	Put(ctx context.Context, path string, body io.Reader, size int64, contentType string) error
	DownloadURL(ctx context.Context, path string) (string, error)
}
