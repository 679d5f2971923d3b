package photos

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	// R2 access keys are 32 hex characters, secrets 64. Checking the shape
	// up front turns a confusing signature failure into an actionable one.
	objectStoreAccessKeyLen = 32
	objectStoreSecretKeyLen = 64

	// Variants are content-addressed by fileId and therefore immutable.
	immutableCacheControl = "public, max-age=31536000, immutable"
)

// ObjectStorage stores variants in an S3-compatible bucket (Cloudflare R2,
// MinIO, AWS) and serves them from a public base URL.
type ObjectStorage struct {
	client     *minio.Client
	bucket     string
	publicBase string
}

func NewObjectStorage(config *StorageConfig) (*ObjectStorage, error) {
	if len(config.ObjectStoreAccessKeyID) != objectStoreAccessKeyLen {
		return nil, &StorageError{Backend: "object", Err: fmt.Errorf("access key has incorrect length (expected %d characters, got %d)", objectStoreAccessKeyLen, len(config.ObjectStoreAccessKeyID))}
	}
	if len(config.ObjectStoreSecretKey) != objectStoreSecretKeyLen {
		return nil, &StorageError{Backend: "object", Err: fmt.Errorf("secret key has incorrect length (expected %d characters, got %d)", objectStoreSecretKeyLen, len(config.ObjectStoreSecretKey))}
	}
	if config.ObjectStoreBucket == "" {
		return nil, &StorageError{Backend: "object", Err: fmt.Errorf("bucket name is required")}
	}

	endpoint := fmt.Sprintf("%s.r2.cloudflarestorage.com", config.ObjectStoreAccountID)
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.ObjectStoreAccessKeyID, config.ObjectStoreSecretKey, ""),
		Secure: true,
		Region: "auto",
	})
	if err != nil {
		return nil, &StorageError{Backend: "object", Err: err}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, config.ObjectStoreBucket)
	if err != nil {
		return nil, &StorageError{Backend: "object", Err: fmt.Errorf("check bucket: %w", err)}
	}
	if !exists {
		if err := client.MakeBucket(ctx, config.ObjectStoreBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, &StorageError{Backend: "object", Err: fmt.Errorf("create bucket %q: %w", config.ObjectStoreBucket, err)}
		}
	}

	return &ObjectStorage{
		client:     client,
		bucket:     config.ObjectStoreBucket,
		publicBase: strings.TrimRight(config.ObjectStorePublicURLBase, "/"),
	}, nil
}

func (s *ObjectStorage) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: immutableCacheControl,
	})
	if err != nil {
		return "", &StorageError{Backend: "object", Err: fmt.Errorf("put %q: %w", key, err)}
	}
	return s.publicBase + "/" + key, nil
}

func (s *ObjectStorage) Delete(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil
		}
		return &StorageError{Backend: "object", Err: fmt.Errorf("delete %q: %w", key, err)}
	}
	return nil
}

func (s *ObjectStorage) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}
		return false, &StorageError{Backend: "object", Err: err}
	}
	return true, nil
}

// ActivePlan keeps the full plan: object storage has no reason to shed
// variants.
func (s *ObjectStorage) ActivePlan(plan Plan) Plan {
	return plan
}
