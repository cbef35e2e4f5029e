package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/parquet_loader/internal/app"
	"github.com/kurochkinivan/parquet_loader/internal/config"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "parquet_loader",
		Usage:   "Convert staged CSV files to Parquet and load them into BigQuery",
		Version: version,
		Flags:   flags(),
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Execute one pipeline run and exit",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					log, cfg, err := setup(ctx, cmd)
					if err != nil {
						return err
					}

					return app.New(log, cfg).RunOnce(ctx)
				},
			},
			{
				Name:  "serve",
				Usage: "Serve the runs API and trigger runs on demand, on schedule or when files are staged",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					log, cfg, err := setup(ctx, cmd)
					if err != nil {
						return err
					}

					if err := cfg.ValidateServe(); err != nil {
						return fmt.Errorf("invalid configuration: %w", err)
					}

					return app.New(log, cfg).Serve(ctx)
				},
			},
		},
	}
}

func setup(ctx context.Context, cmd *cli.Command) (*slog.Logger, *config.Config, error) {
	log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok {
		return nil, nil, errors.New("failed to get logger from context")
	}

	cfg := config.Load(cmd)
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return log, cfg, nil
}

func flags() []cli.Flag {
	var configFile string

	sources := func(env, key string) cli.ValueSourceChain {
		return cli.NewValueSourceChain(
			cli.EnvVar(env),
			yaml.YAML(key, altsrc.NewStringPtrSourcer(&configFile)),
		)
	}

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &configFile,
		},
		&cli.StringFlag{
			Name:      "staging-dir",
			Aliases:   []string{"s"},
			Usage:     "Set directory holding the files of a run",
			Value:     "/opt/airflow/local_data",
			Sources:   sources("STAGING_DIR", "app.staging_dir"),
			Validator: validateDirectory,
		},
		&cli.StringFlag{
			Name:      "reports-dir",
			Aliases:   []string{"r"},
			Usage:     "Set directory to write run reports to",
			Value:     "output",
			Sources:   sources("REPORTS_DIR", "app.reports_dir"),
			Validator: validateDirectory,
		},
		&cli.IntFlag{
			Name:    "load-concurrency",
			Usage:   "Set maximum number of load jobs running at once",
			Value:   8,
			Sources: sources("LOAD_CONCURRENCY", "app.load_concurrency"),
		},
		&cli.DurationFlag{
			Name:    "scan-interval",
			Usage:   "Set staging directory scan interval for serve, 0 disables scanning",
			Value:   0,
			Sources: sources("SCAN_INTERVAL", "app.scan_interval"),
		},
		&cli.StringFlag{
			Name:    "schedule",
			Usage:   "Set cron schedule for runs in serve, empty disables it",
			Sources: sources("SCHEDULE", "app.schedule"),
		},
		&cli.StringFlag{
			Name:    "storage-backend",
			Usage:   fmt.Sprintf("Set object storage client, %q or %q", config.BackendGCS, config.BackendS3),
			Value:   config.BackendGCS,
			Sources: sources("STORAGE_BACKEND", "storage.backend"),
		},
		&cli.StringFlag{
			Name:    "bucket",
			Aliases: []string{"b"},
			Usage:   "Set bucket for parquet objects",
			Value:   "airflow-load-data-to-gcs-example",
			Sources: sources("BUCKET", "storage.bucket"),
		},
		&cli.StringFlag{
			Name:    "gcp-credentials-file",
			Usage:   "Set service account key `FILE`, application default credentials when empty",
			Sources: sources("GOOGLE_APPLICATION_CREDENTIALS", "storage.credentials_file"),
		},
		&cli.StringFlag{
			Name:    "s3-endpoint",
			Usage:   "Set S3 compatible endpoint",
			Value:   "storage.googleapis.com",
			Sources: sources("S3_ENDPOINT", "storage.s3.endpoint"),
		},
		&cli.StringFlag{
			Name:    "s3-access-key",
			Usage:   "Set S3 access key",
			Sources: sources("S3_ACCESS_KEY", "storage.s3.access_key"),
		},
		&cli.StringFlag{
			Name:    "s3-secret-key",
			Usage:   "Set S3 secret key",
			Sources: sources("S3_SECRET_KEY", "storage.s3.secret_key"),
		},
		&cli.BoolFlag{
			Name:    "s3-use-ssl",
			Usage:   "Use TLS for the S3 endpoint",
			Value:   true,
			Sources: sources("S3_USE_SSL", "storage.s3.use_ssl"),
		},
		&cli.StringFlag{
			Name:    "project",
			Aliases: []string{"p"},
			Usage:   "Set BigQuery project",
			Value:   "lunar-outlet-456701-t7",
			Sources: sources("BQ_PROJECT", "warehouse.project"),
		},
		&cli.StringFlag{
			Name:    "dataset",
			Aliases: []string{"d"},
			Usage:   "Set BigQuery dataset",
			Value:   "airflow_stg_bq_dataset",
			Sources: sources("BQ_DATASET", "warehouse.dataset"),
		},
		&cli.StringFlag{
			Name:    "location",
			Usage:   "Set BigQuery job location",
			Sources: sources("BQ_LOCATION", "warehouse.location"),
		},
		&cli.StringFlag{
			Name:    "pg-host",
			Usage:   "Set PostgreSQL host, run history is not kept when empty",
			Sources: sources("PG_HOST", "postgresql.host"),
		},
		&cli.StringFlag{
			Name:    "pg-port",
			Usage:   "Set PostgreSQL port",
			Value:   "5432",
			Sources: sources("PG_PORT", "postgresql.port"),
		},
		&cli.StringFlag{
			Name:    "pg-username",
			Usage:   "Set PostgreSQL username",
			Value:   "postgres",
			Sources: sources("PG_USERNAME", "postgresql.username"),
		},
		&cli.StringFlag{
			Name:    "pg-password",
			Usage:   "Set PostgreSQL password",
			Sources: sources("PG_PASSWORD", "postgresql.password"),
		},
		&cli.StringFlag{
			Name:    "pg-dbname",
			Usage:   "Set PostgreSQL database name",
			Value:   "parquet_loader",
			Sources: sources("PG_DBNAME", "postgresql.dbname"),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: sources("HTTP_HOST", "http.host"),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: sources("HTTP_PORT", "http.port"),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: sources("HTTP_IDLE_TIMEOUT", "http.idle_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   15 * time.Second,
			Sources: sources("HTTP_READ_TIMEOUT", "http.read_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   15 * time.Second,
			Sources: sources("HTTP_WRITE_TIMEOUT", "http.write_timeout"),
		},
	}
}

func validateDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", dir)
		}
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}

	return nil
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
