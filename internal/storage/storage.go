// Package storage defines the interface for object storage operations.
// Swap implementations by changing the concrete type injected at startup:
// MinIO and native S3 talk to any S3-compatible provider, Memory keeps objects in process.
package storage

import (
	"context"
	"errors"
	"io"
	"net/url"
	"strings"
)

// ErrObjectExists is returned by Upload when the key is already taken.
// Uploads never overwrite.
var ErrObjectExists = errors.New("object already exists")

// Storage is the interface for uploading and removing objects.
type Storage interface {
	// Upload streams data to the store under the given key. It fails with
	// ErrObjectExists instead of overwriting an existing object.
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	// Delete removes an object identified by key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
	// PublicURL constructs the browser-accessible URL for a given key.
	PublicURL(key string) string
	// Ready reports whether the bucket is reachable.
	Ready(ctx context.Context) error
}

// joinPublicURL appends the escaped key to base.
func joinPublicURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + url.PathEscape(key)
}
