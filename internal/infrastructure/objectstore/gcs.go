package objectstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

const contentTypeParquet = "application/vnd.apache.parquet"

// GCSClient talks to a single Cloud Storage bucket.
type GCSClient struct {
	client *storage.Client
	bucket *storage.BucketHandle
	name   string
}

type GCSConfig struct {
	Bucket          string
	CredentialsFile string // empty means application default credentials
}

func NewGCSClient(ctx context.Context, cfg GCSConfig) (*GCSClient, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gcs client: %w", err)
	}

	bucket := client.Bucket(cfg.Bucket)
	if _, err := bucket.Attrs(ctx); err != nil {
		return nil, errors.Join(fmt.Errorf("failed to get bucket %q: %w", cfg.Bucket, err), client.Close())
	}

	return &GCSClient{
		client: client,
		bucket: bucket,
		name:   cfg.Bucket,
	}, nil
}

func (c *GCSClient) Bucket() string {
	return c.name
}

// Upload copies the local file to objectName, replacing any existing object.
func (c *GCSClient) Upload(ctx context.Context, objectName, localPath string) (err error) {
	f, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	w := c.bucket.Object(objectName).NewWriter(ctx)
	w.ContentType = contentTypeParquet

	if _, err := io.Copy(w, f); err != nil {
		return errors.Join(fmt.Errorf("failed to upload to gcs: %w", err), w.Close())
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize gcs upload: %w", err)
	}

	return nil
}

func (c *GCSClient) List(ctx context.Context) ([]string, error) {
	var names []string

	it := c.bucket.Objects(ctx, nil)
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to list gcs objects: %w", err)
		}

		names = append(names, attrs.Name)
	}

	return names, nil
}

func (c *GCSClient) Close() error {
	return c.client.Close()
}
