package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

type memoryObject struct {
	data        []byte
	contentType string
}

// MemoryStorage is an in-process Storage implementation for local development and tests.
type MemoryStorage struct {
	mu         sync.RWMutex
	objects    map[string]memoryObject
	publicBase string
}

// NewMemoryStorage creates an empty in-memory store whose URLs start with publicBase.
func NewMemoryStorage(publicBase string) *MemoryStorage {
	return &MemoryStorage{
		objects:    make(map[string]memoryObject),
		publicBase: publicBase,
	}
}

// Upload copies the reader into memory under key.
func (s *MemoryStorage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("read object %q: %w", key, err)
	}
	if size >= 0 && int64(len(data)) != size {
		return fmt.Errorf("put object %q: got %d bytes, want %d", key, len(data), size)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[key]; ok {
		return fmt.Errorf("put object %q: %w", key, ErrObjectExists)
	}
	s.objects[key] = memoryObject{data: data, contentType: contentType}

	log.Ctx(ctx).Debug().Str("key", key).Int("bytes", len(data)).Msg("object stored in memory")
	return nil
}

// Delete removes key. Unknown keys are ignored.
func (s *MemoryStorage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.objects, key)
	s.mu.Unlock()
	return nil
}

// PublicURL returns publicBase joined with the escaped key.
func (s *MemoryStorage) PublicURL(key string) string {
	return joinPublicURL(s.publicBase, key)
}

// Ready always succeeds.
func (s *MemoryStorage) Ready(context.Context) error {
	return nil
}

// Get returns a copy of the stored bytes and content type.
func (s *MemoryStorage) Get(key string) ([]byte, string, bool) {
	s.mu.RLock()
	obj, ok := s.objects[key]
	s.mu.RUnlock()
	if !ok {
		return nil, "", false
	}
	out := make([]byte, len(obj.data))
	copy(out, obj.data)
	return out, obj.contentType, true
}

// Len reports how many objects are stored.
func (s *MemoryStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

// ServeHTTP serves a stored object the way a public bucket would. The request path,
// once any mount prefix is stripped, is the object key.
func (s *MemoryStorage) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimPrefix(r.URL.Path, "/")
	data, contentType, ok := s.Get(key)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Ctx(r.Context()).Debug().Err(err).Str("key", key).Msg("write object")
	}
}
