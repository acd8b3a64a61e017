// Package storage contains object storage abstractions for exported files.
// Backends: a local directory and any S3-compatible service (MinIO, AWS S3).
package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"time"
)

// ErrInvalidKey is returned for keys that are empty, absolute or climb out of
// the storage root.
var ErrInvalidKey = errors.New("invalid object key")

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to -1.
// ContentType and Metadata are optional; the local backend does not keep Metadata.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about an object in storage.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is the object storage client interface used by exports.
type Storage interface {
	// Put stores an object under key, replacing any previous one.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get retrieves an object's content as a streaming reader alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes an object by key. Removing a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Locate returns a URL the user can open the object with. Remote backends
	// return a pre-signed link valid for expiry.
	Locate(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// CleanKey normalizes a slash separated key and rejects keys that would
// escape the storage root.
func CleanKey(key string) (string, error) {
	key = strings.ReplaceAll(key, `\`, "/")
	if key == "" || strings.HasPrefix(key, "/") {
		return "", ErrInvalidKey
	}
	cleaned := path.Clean(key)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", ErrInvalidKey
	}
	return cleaned, nil
}
