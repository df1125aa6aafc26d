package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"go-jobportal-api/config"
	"go-jobportal-api/internal/domain"
)

// minioStore implements BlobStore on an S3-compatible backend (MinIO, AWS S3).
// It is safe for concurrent use by multiple goroutines.
type minioStore struct {
	client *minio.Client
	bucket string
}

// NewMinIO creates a blob store backed by an S3-compatible server.
// It validates connectivity and ensures the bucket exists (creates it if missing).
func NewMinIO(cfg *config.Config) (BlobStore, error) {
	if cfg.MinioEndpoint == "" {
		return nil, fmt.Errorf("minio endpoint is required")
	}
	if cfg.MinioAccessKey == "" || cfg.MinioSecretKey == "" {
		return nil, fmt.Errorf("minio credentials are required")
	}
	if cfg.MinioBucket == "" {
		return nil, fmt.Errorf("minio bucket is required")
	}

	cli, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ms := &minioStore{client: cli, bucket: cfg.MinioBucket}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := cli.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := cli.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return ms, nil
}

// Store streams the payload under a freshly generated key. The backend commits
// the object atomically: until PutObject returns nil the key does not resolve.
func (m *minioStore) Store(ctx context.Context, r io.Reader, opt PutOptions) (string, error) {
	key := objectKey(opt.Filename)

	putOpts := minio.PutObjectOptions{
		ContentType:  opt.ContentType,
		UserMetadata: opt.Metadata,
	}
	if _, err := m.client.PutObject(ctx, m.bucket, key, r, opt.Size, putOpts); err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return key, nil
}

// Open returns the blob content as a one-pass ReadCloser along with its info.
// The Stat call forces the lazy GetObject to surface NoSuchKey before any bytes
// are handed to the caller.
func (m *minioStore) Open(ctx context.Context, blobID string) (io.ReadCloser, ObjectInfo, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, blobID, minio.GetObjectOptions{})
	if err != nil {
		return nil, ObjectInfo{}, translateErr(blobID, err)
	}
	st, err := obj.Stat()
	if err != nil {
		obj.Close()
		return nil, ObjectInfo{}, translateErr(blobID, err)
	}
	info := ObjectInfo{
		Key:          blobID,
		Size:         st.Size,
		ContentType:  st.ContentType,
		LastModified: st.LastModified,
		Metadata:     st.UserMetadata,
	}
	return obj, info, nil
}

// objectKey builds a resumes/<uuid><ext> key. The original filename contributes
// only its extension; everything else about the key is opaque.
func objectKey(filename string) string {
	return "resumes/" + uuid.NewString() + filepath.Ext(filename)
}

func translateErr(key string, err error) error {
	var resp minio.ErrorResponse
	if errors.As(err, &resp) && resp.Code == "NoSuchKey" {
		return domain.ErrNotFound
	}
	return fmt.Errorf("get object %s: %w", key, err)
}
