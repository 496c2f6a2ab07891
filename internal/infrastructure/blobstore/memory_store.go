package blobstore

import (
	"context"
	"fmt"
	"io"
	"sync"

	"pcg_compliance/internal/usecase/interfaces"
)

type memoryObject struct {
	data        []byte
	contentType string
}

// MemoryStore backs tests and the STORE_BACKEND=memory dev mode.
type MemoryStore struct {
	mu      sync.RWMutex
	bucket  string
	objects map[string]memoryObject
}

var _ interfaces.IBlobStore = (*MemoryStore)(nil)

func NewMemoryStore(bucket string) *MemoryStore {
	return &MemoryStore{bucket: bucket, objects: make(map[string]memoryObject)}
}

func (s *MemoryStore) Put(ctx context.Context, path string, body io.Reader, _ int64, contentType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	s.mu.Lock()
	s.objects[objectKey("", path)] = memoryObject{data: data, contentType: contentType}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) DownloadURL(_ context.Context, path string) (string, error) {
	key := objectKey("", path)
	s.mu.RLock()
	_, ok := s.objects[key]
	s.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrObjectNotFound, path)
	}
	return "memory://" + s.bucket + "/" + key, nil
}

// Get returns the stored bytes and content type.
func (s *MemoryStore) Get(path string) ([]byte, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[objectKey("", path)]
	if !ok {
		return nil, "", false
	}
	return append([]byte(nil), obj.data...), obj.contentType, true
}
