package storage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mdlib/internal/config"
)

func TestCleanKey(t *testing.T) {
	tests := []struct {
		key     string
		want    string
		wantErr bool
	}{
		{key: "exports/notes.html", want: "exports/notes.html"},
		{key: `exports\notes.html`, want: "exports/notes.html"},
		{key: "exports/./a/../notes.html", want: "exports/notes.html"},
		{key: "", wantErr: true},
		{key: ".", wantErr: true},
		{key: "/etc/passwd", wantErr: true},
		{key: "../outside.html", wantErr: true},
		{key: "exports/../../outside.html", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := CleanKey(tt.key)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocalStorage(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	store, err := NewLocal(filepath.Join(root, "exports"))
	require.NoError(t, err)

	info, err := store.Put(ctx, "html/notes.html", strings.NewReader("<p>hi</p>"), PutObjectOptions{Size: -1})
	require.NoError(t, err)
	assert.Equal(t, "html/notes.html", info.Key)
	assert.Equal(t, int64(9), info.Size)
	assert.True(t, strings.HasPrefix(info.ContentType, "text/html"))

	onDisk, err := os.ReadFile(filepath.Join(root, "exports", "html", "notes.html"))
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", string(onDisk))

	t.Run("overwrite", func(t *testing.T) {
		_, err := store.Put(ctx, "html/notes.html", strings.NewReader("v2"), PutObjectOptions{ContentType: "text/plain"})
		require.NoError(t, err)

		rc, got, err := store.Get(ctx, "html/notes.html")
		require.NoError(t, err)
		defer rc.Close()
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "v2", string(body))
		assert.Equal(t, int64(2), got.Size)
	})

	t.Run("locate", func(t *testing.T) {
		loc, err := store.Locate(ctx, "html/notes.html", 0)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(loc, "file://"))
		assert.True(t, strings.HasSuffix(loc, "/exports/html/notes.html"))
	})

	t.Run("escape attempts", func(t *testing.T) {
		_, err := store.Put(ctx, "../escape.html", strings.NewReader("x"), PutObjectOptions{})
		assert.ErrorIs(t, err, ErrInvalidKey)
		_, statErr := os.Stat(filepath.Join(root, "escape.html"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "html/notes.html"))
		_, _, err := store.Get(ctx, "html/notes.html")
		assert.True(t, os.IsNotExist(err))
		assert.NoError(t, store.Delete(ctx, "html/notes.html"))
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := store.Put(cctx, "late.html", strings.NewReader("x"), PutObjectOptions{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestNewLocal_RequiresDirectory(t *testing.T) {
	_, err := NewLocal("")
	assert.Error(t, err)

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
	_, err = NewLocal(filepath.Join(blocker, "exports"))
	assert.Error(t, err)
}

func TestNewMinIO_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.MinIOConfig
		msg  string
	}{
		{name: "endpoint", cfg: config.MinIOConfig{}, msg: "endpoint is required"},
		{name: "credentials", cfg: config.MinIOConfig{Endpoint: "localhost:9000"}, msg: "credentials are required"},
		{name: "bucket", cfg: config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b"}, msg: "bucket is required"},
		{name: "prefix", cfg: config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b", Bucket: "docs", Prefix: "../up"}, msg: "invalid object key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewMinIO(tt.cfg)
			assert.ErrorContains(t, err, tt.msg)
			assert.Nil(t, s)
		})
	}
}

func TestMinIOObjectName(t *testing.T) {
	tests := []struct {
		prefix   string
		key      string
		wantKey  string
		wantName string
	}{
		{prefix: "", key: "Notes.html", wantKey: "Notes.html", wantName: "Notes.html"},
		{prefix: "exports", key: "Notes.html", wantKey: "Notes.html", wantName: "exports/Notes.html"},
		{prefix: "exports", key: `sub\a.html`, wantKey: "sub/a.html", wantName: "exports/sub/a.html"},
	}
	for _, tt := range tests {
		t.Run(tt.prefix+"/"+tt.key, func(t *testing.T) {
			m := &minioStorage{prefix: tt.prefix}
			key, name, err := m.objectName(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantName, name)
		})
	}

	_, _, err := (&minioStorage{prefix: "exports"}).objectName("../secret")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestMinIONotFound(t *testing.T) {
	err := notFound(minio.ErrorResponse{Code: "NoSuchKey", Message: "The specified key does not exist."})
	assert.ErrorIs(t, err, fs.ErrNotExist)

	other := errors.New("connection refused")
	assert.Same(t, other, notFound(other))
	assert.NoError(t, notFound(nil))
}
