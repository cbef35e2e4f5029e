package warehouse

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"github.com/kurochkinivan/parquet_loader/internal/domain"
	"google.golang.org/api/option"
)

// BigQueryLoader runs load jobs that read parquet objects from a GCS bucket.
type BigQueryLoader struct {
	client   *bigquery.Client
	bucket   string
	location string
}

type BigQueryConfig struct {
	ProjectID       string
	Location        string // empty lets BigQuery pick the dataset location
	CredentialsFile string
	Bucket          string
}

func NewBigQueryLoader(ctx context.Context, cfg BigQueryConfig) (*BigQueryLoader, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := bigquery.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create bigquery client: %w", err)
	}

	return &BigQueryLoader{
		client:   client,
		bucket:   cfg.Bucket,
		location: cfg.Location,
	}, nil
}

// Load overwrites the destination table with the job's source objects and waits for the job.
func (l *BigQueryLoader) Load(ctx context.Context, job *domain.LoadJob) error {
	ref := newGCSReference(l.bucket, job.SourceObjects)

	loader := l.client.
		DatasetInProject(job.Destination.ProjectID, job.Destination.DatasetID).
		Table(job.Destination.TableID).
		LoaderFrom(ref)
	loader.WriteDisposition = bigquery.WriteTruncate
	loader.CreateDisposition = bigquery.CreateIfNeeded
	loader.Location = l.location

	j, err := loader.Run(ctx)
	if err != nil {
		return fmt.Errorf("failed to start load job: %w", err)
	}

	status, err := j.Wait(ctx)
	if err != nil {
		return fmt.Errorf("failed to wait for load job %s: %w", j.ID(), err)
	}

	if err := status.Err(); err != nil {
		return fmt.Errorf("load job %s failed: %w", j.ID(), err)
	}

	return nil
}

func (l *BigQueryLoader) Close() error {
	return l.client.Close()
}

func newGCSReference(bucket string, objects []string) *bigquery.GCSReference {
	ref := bigquery.NewGCSReference(sourceURIs(bucket, objects)...)
	ref.SourceFormat = bigquery.Parquet
	ref.AutoDetect = true

	return ref
}

func sourceURIs(bucket string, objects []string) []string {
	uris := make([]string, len(objects))
	for i, obj := range objects {
		uris[i] = "gs://" + bucket + "/" + obj
	}

	return uris
}
