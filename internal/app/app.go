package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/parquet_loader/internal/config"
	v1 "github.com/kurochkinivan/parquet_loader/internal/controller/http/v1"
	"github.com/kurochkinivan/parquet_loader/internal/infrastructure/objectstore"
	"github.com/kurochkinivan/parquet_loader/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/parquet_loader/internal/infrastructure/tabular"
	"github.com/kurochkinivan/parquet_loader/internal/infrastructure/warehouse"
	"github.com/kurochkinivan/parquet_loader/internal/pipeline"
	"github.com/kurochkinivan/parquet_loader/internal/repository/postgresql"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

type objectStore interface {
	pipeline.ObjectUploader
	pipeline.ObjectLister
	Bucket() string
	Close() error
}

type components struct {
	pool         *pgxpool.Pool
	store        objectStore
	loader       *warehouse.BigQueryLoader
	runsRepo     *postgresql.RunsRepository
	outcomesRepo *postgresql.OutcomesRepository
	runner       *pipeline.Runner
}

func (c *components) close() error {
	if c.pool != nil {
		c.pool.Close()
	}
	return errors.Join(c.store.Close(), c.loader.Close())
}

// RunOnce executes a single run and returns the reason it stopped early, if any.
func (a *App) RunOnce(ctx context.Context) (err error) {
	c, err := a.setup(ctx)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, c.close()) }()

	runID, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate run id: %w", err)
	}

	report, err := c.runner.Run(ctx, runID)
	if err != nil {
		return err
	}

	if failures := report.Failures(); len(failures) > 0 {
		a.log.WarnContext(ctx, "run finished with skipped files", slog.Int("failures_count", len(failures)))
	}

	return nil
}

// Serve runs the service: the trigger, the optional staging scanner and cron schedule, and the HTTP API.
func (a *App) Serve(ctx context.Context) (err error) {
	c, err := a.setup(ctx)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, c.close()) }()

	if c.runsRepo == nil {
		return errors.New("serving requires postgresql run history")
	}

	aborted, err := c.runsRepo.AbortRunningRuns(ctx)
	if err != nil {
		return fmt.Errorf("failed to abort interrupted runs: %w", err)
	}
	if aborted > 0 {
		a.log.WarnContext(ctx, "marked interrupted runs as failed", slog.Int64("runs_count", aborted))
	}

	trigger := pipeline.NewTrigger(a.log, c.runner)
	server := v1.NewServer(a.cfg.HTTP, c.runsRepo, c.outcomesRepo, trigger)

	var scheduler *pipeline.Scheduler
	if a.cfg.Schedule != "" {
		scheduler, err = pipeline.NewScheduler(a.log, a.cfg.Schedule, trigger)
		if err != nil {
			return err
		}
	}

	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "trigger started")
		return trigger.Run(ctx)
	})

	if a.cfg.ScanInterval > 0 {
		scanner := pipeline.NewScanner(a.log, a.cfg.StagingDirectory, a.cfg.ScanInterval, trigger)

		erg.Go(func() error {
			a.log.InfoContext(ctx, "scanner started", slog.Duration("scan_interval", a.cfg.ScanInterval))
			return scanner.Run(ctx)
		})
	}

	if scheduler != nil {
		erg.Go(func() error {
			a.log.InfoContext(ctx, "scheduler started", slog.String("schedule", a.cfg.Schedule))
			return scheduler.Run(ctx)
		})
	}

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "service stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "service stopped gracefully")

	return nil
}

func (a *App) setup(ctx context.Context) (_ *components, err error) {
	a.log.InfoContext(ctx, "starting app",
		slog.String("staging_dir", a.cfg.StagingDirectory),
		slog.String("reports_dir", a.cfg.ReportsDirectory),
		slog.String("storage_backend", a.cfg.Backend),
		slog.String("bucket", a.cfg.Bucket),
		slog.String("dataset", a.cfg.ProjectID+"."+a.cfg.DatasetID),
	)

	c := &components{}
	defer func() {
		if err != nil && c.pool != nil {
			c.pool.Close()
		}
	}()

	if a.cfg.HistoryEnabled() {
		a.log.InfoContext(ctx, "establishing postgresql connection",
			slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
			slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
			slog.String("postgresql_dbname", a.cfg.DBName),
		)

		c.pool, err = postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
		if err != nil {
			return nil, fmt.Errorf("failed to create db connection: %w", err)
		}
	} else {
		a.log.WarnContext(ctx, "postgresql host is not set, run history will not be kept")
	}

	c.store, err = a.newObjectStore(ctx)
	if err != nil {
		return nil, err
	}

	c.loader, err = warehouse.NewBigQueryLoader(ctx, warehouse.BigQueryConfig{
		ProjectID:       a.cfg.ProjectID,
		Location:        a.cfg.Location,
		CredentialsFile: a.cfg.Warehouse.CredentialsFile,
		Bucket:          c.store.Bucket(),
	})
	if err != nil {
		return nil, errors.Join(err, c.store.Close())
	}

	stages := pipeline.Stages{
		Converter: pipeline.NewConverter(a.log, a.cfg.StagingDirectory, tabular.NewCSVParser(), tabular.NewParquetWriter()),
		Uploader:  pipeline.NewUploader(a.log, a.cfg.StagingDirectory, c.store),
		Lister:    pipeline.NewLister(a.log, c.store),
		Mapper:    pipeline.NewMapper(a.cfg.ProjectID, a.cfg.DatasetID),
		Loader:    pipeline.NewLoader(a.log, c.loader, a.cfg.LoadConcurrency),
		Cleaner:   pipeline.NewCleaner(a.log, a.cfg.StagingDirectory),
	}

	var recorder *pipeline.Recorder
	if c.pool != nil {
		c.runsRepo = postgresql.NewRunsRepository(c.pool)
		c.outcomesRepo = postgresql.NewOutcomesRepository(c.pool)
		recorder = pipeline.NewRecorder(a.log, c.runsRepo, c.outcomesRepo, postgresql.NewTxManager(c.pool))
	} else {
		history := pipeline.DiscardHistory{}
		recorder = pipeline.NewRecorder(a.log, history, history, history)
	}

	reporter := pipeline.NewReporter(a.log, a.cfg.ReportsDirectory,
		pipeline.ReportFormat{Extension: "pdf", Generator: report_generator.New()},
		pipeline.ReportFormat{Extension: "csv", Generator: report_generator.NewOutcomesCSV()},
	)

	c.runner = pipeline.NewRunner(a.log, stages, recorder, reporter)

	return c, nil
}

func (a *App) newObjectStore(ctx context.Context) (objectStore, error) {
	switch a.cfg.Backend {
	case config.BackendS3:
		store, err := objectstore.NewS3Client(ctx, objectstore.S3Config{
			Endpoint:  a.cfg.Endpoint,
			AccessKey: a.cfg.AccessKey,
			SecretKey: a.cfg.SecretKey,
			Bucket:    a.cfg.Bucket,
			UseSSL:    a.cfg.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to s3 storage: %w", err)
		}
		return store, nil

	default:
		store, err := objectstore.NewGCSClient(ctx, objectstore.GCSConfig{
			Bucket:          a.cfg.Bucket,
			CredentialsFile: a.cfg.Storage.CredentialsFile,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to gcs: %w", err)
		}
		return store, nil
	}
}
