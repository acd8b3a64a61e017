package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/natefinch/atomic"
)

// localStorage keeps objects as plain files below a root directory.
// Writes go through a temp file and rename, so readers never see a partial file.
type localStorage struct {
	root string
}

// NewLocal creates a directory backed Storage, creating root if needed.
func NewLocal(root string) (Storage, error) {
	if root == "" {
		return nil, errors.New("local storage directory is required")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve storage directory: %w", err)
	}
	if err := os.MkdirAll(abs, 0o750); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &localStorage{root: abs}, nil
}

func (l *localStorage) resolve(key string) (string, string, error) {
	cleaned, err := CleanKey(key)
	if err != nil {
		return "", "", fmt.Errorf("%w: %q", err, key)
	}
	return cleaned, filepath.Join(l.root, filepath.FromSlash(cleaned)), nil
}

func (l *localStorage) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return ObjectInfo{}, err
	}
	key, full, err := l.resolve(key)
	if err != nil {
		return ObjectInfo{}, err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
		return ObjectInfo{}, fmt.Errorf("create object directory: %w", err)
	}
	if err := atomic.WriteFile(full, r); err != nil {
		return ObjectInfo{}, fmt.Errorf("write object: %w", err)
	}
	st, err := os.Stat(full)
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("stat object: %w", err)
	}
	contentType := opt.ContentType
	if contentType == "" {
		contentType = mime.TypeByExtension(path.Ext(key))
	}
	return ObjectInfo{
		Key:          key,
		Size:         st.Size(),
		ContentType:  contentType,
		LastModified: st.ModTime(),
		Metadata:     opt.Metadata,
	}, nil
}

func (l *localStorage) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, ObjectInfo{}, err
	}
	key, full, err := l.resolve(key)
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	f, err := os.Open(full)
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, ObjectInfo{}, err
	}
	return f, ObjectInfo{
		Key:          key,
		Size:         st.Size(),
		ContentType:  mime.TypeByExtension(path.Ext(key)),
		LastModified: st.ModTime(),
	}, nil
}

func (l *localStorage) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, full, err := l.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Locate returns a file:// URL; expiry does not apply to local files.
func (l *localStorage) Locate(_ context.Context, key string, _ time.Duration) (string, error) {
	_, full, err := l.resolve(key)
	if err != nil {
		return "", err
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(full)}
	return u.String(), nil
}
