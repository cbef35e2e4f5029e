package objectstore

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Client implements the object store over any S3 compatible endpoint, including the
// Cloud Storage XML API with HMAC keys.
type S3Client struct {
	client     *minio.Client
	bucketName string
}

// S3Config holds S3 connection settings.
type S3Config struct {
	Endpoint  string // e.g., "storage.googleapis.com" or "localhost:9000"
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// NewS3Client creates the client and makes sure the bucket exists.
func NewS3Client(ctx context.Context, cfg S3Config) (*S3Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &S3Client{
		client:     client,
		bucketName: cfg.Bucket,
	}, nil
}

func (s *S3Client) Bucket() string {
	return s.bucketName
}

func (s *S3Client) Upload(ctx context.Context, objectName, localPath string) error {
	_, err := s.client.FPutObject(ctx, s.bucketName, objectName, localPath, minio.PutObjectOptions{
		ContentType: contentTypeParquet,
	})
	if err != nil {
		return fmt.Errorf("failed to upload to s3: %w", err)
	}

	return nil
}

func (s *S3Client) List(ctx context.Context) ([]string, error) {
	// Stops the listing goroutine when returning early on an error.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var names []string

	for obj := range s.client.ListObjects(ctx, s.bucketName, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list s3 objects: %w", obj.Err)
		}

		names = append(names, obj.Key)
	}

	return names, nil
}

func (s *S3Client) Close() error {
	return nil
}
