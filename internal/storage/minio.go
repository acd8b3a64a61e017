package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"mdlib/internal/config"
)

// minioStorage keeps exports in an S3-compatible bucket (MinIO, AWS S3).
// Keys are stored under an optional prefix. Safe for concurrent use.
type minioStorage struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewMinIO connects to the bucket named in cfg, creating it when missing.
// Outgoing requests are traced through otelhttp.
func NewMinIO(cfg config.MinIOConfig) (Storage, error) {
	switch {
	case cfg.Endpoint == "":
		return nil, errors.New("minio endpoint is required")
	case cfg.AccessKey == "" || cfg.SecretKey == "":
		return nil, errors.New("minio credentials are required")
	case cfg.Bucket == "":
		return nil, errors.New("minio bucket is required")
	}

	prefix := ""
	if p := strings.Trim(cfg.Prefix, "/"); p != "" {
		cleaned, err := CleanKey(p)
		if err != nil {
			return nil, fmt.Errorf("minio prefix %q: %w", cfg.Prefix, err)
		}
		prefix = cleaned
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := ensureBucket(ctx, cli, cfg.Bucket); err != nil {
		return nil, err
	}

	return &minioStorage{client: cli, bucket: cfg.Bucket, prefix: prefix}, nil
}

func ensureBucket(ctx context.Context, cli *minio.Client, bucket string) error {
	exists, err := cli.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", bucket, err)
	}
	if exists {
		return nil
	}
	if err := cli.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket %s: %w", bucket, err)
	}
	return nil
}

// objectName maps a storage key onto the bucket namespace.
func (m *minioStorage) objectName(key string) (string, string, error) {
	key, err := CleanKey(key)
	if err != nil {
		return "", "", err
	}
	if m.prefix == "" {
		return key, key, nil
	}
	return key, path.Join(m.prefix, key), nil
}

// notFound turns S3 "no such key" responses into fs.ErrNotExist so callers
// see the same error as with the local backend.
func notFound(err error) error {
	if err == nil {
		return nil
	}
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return fmt.Errorf("%w: %v", fs.ErrNotExist, err)
	}
	return err
}

func (m *minioStorage) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	key, name, err := m.objectName(key)
	if err != nil {
		return ObjectInfo{}, err
	}
	size := opt.Size
	if size <= 0 {
		size = -1
	}
	info, err := m.client.PutObject(ctx, m.bucket, name, r, size, minio.PutObjectOptions{
		ContentType:  opt.ContentType,
		UserMetadata: opt.Metadata,
	})
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("put %s: %w", key, err)
	}
	return ObjectInfo{
		Key:          key,
		Size:         info.Size,
		ETag:         info.ETag,
		ContentType:  opt.ContentType,
		LastModified: info.LastModified,
		Metadata:     opt.Metadata,
	}, nil
}

func (m *minioStorage) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	key, name, err := m.objectName(key)
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	obj, err := m.client.GetObject(ctx, m.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, ObjectInfo{}, notFound(err)
	}
	// GetObject is lazy; Stat surfaces a missing key without reading the body.
	st, err := obj.Stat()
	if err != nil {
		obj.Close()
		return nil, ObjectInfo{}, notFound(err)
	}
	return obj, ObjectInfo{
		Key:          key,
		Size:         st.Size,
		ETag:         st.ETag,
		ContentType:  st.ContentType,
		LastModified: st.LastModified,
		Metadata:     st.UserMetadata,
	}, nil
}

func (m *minioStorage) Delete(ctx context.Context, key string) error {
	_, name, err := m.objectName(key)
	if err != nil {
		return err
	}
	return m.client.RemoveObject(ctx, m.bucket, name, minio.RemoveObjectOptions{})
}

// Locate pre-signs a GET that opens the export inline in a browser.
func (m *minioStorage) Locate(ctx context.Context, key string, expiry time.Duration) (string, error) {
	key, name, err := m.objectName(key)
	if err != nil {
		return "", err
	}
	params := url.Values{}
	params.Set("response-content-disposition", fmt.Sprintf("inline; filename=%q", path.Base(key)))
	u, err := m.client.PresignedGetObject(ctx, m.bucket, name, expiry, params)
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", key, err)
	}
	return u.String(), nil
}
