package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kurochkinivan/parquet_loader/internal/domain"
	"golang.org/x/sync/errgroup"
)

type Loader struct {
	log         *slog.Logger
	loader      BulkLoader
	concurrency int
}

func NewLoader(log *slog.Logger, loader BulkLoader, concurrency int) *Loader {
	return &Loader{
		log:         log,
		loader:      loader,
		concurrency: concurrency,
	}
}

// Load dispatches one bulk load per job, at most concurrency at a time. A failed job
// is recorded in its outcome and never stops the others. outcomes[i] belongs to jobs[i].
func (l *Loader) Load(ctx context.Context, jobs []*domain.LoadJob) []domain.Outcome {
	l.warnSharedTables(ctx, jobs)

	outcomes := make([]domain.Outcome, len(jobs))

	var eg errgroup.Group
	eg.SetLimit(l.concurrency)

	for i, job := range jobs {
		eg.Go(func() error {
			outcomes[i] = l.loadJob(ctx, job)
			return nil
		})
	}

	_ = eg.Wait()

	return outcomes
}

func (l *Loader) loadJob(ctx context.Context, job *domain.LoadJob) domain.Outcome {
	source := strings.Join(job.SourceObjects, ",")
	table := job.Destination.String()

	log := l.log.With(
		slog.String("object", source),
		slog.String("table", table),
	)

	err := job.Validate()
	if err != nil {
		err = fmt.Errorf("invalid load job: %w", err)
	} else {
		log.DebugContext(ctx, "starting load job")
		err = l.loader.Load(ctx, job)
	}

	if err != nil {
		log.ErrorContext(ctx, "load job failed", slog.String("err", err.Error()))
		return domain.NewOutcome(domain.StageLoad, source, table, err)
	}

	log.InfoContext(ctx, "table loaded")

	return domain.NewOutcome(domain.StageLoad, source, table, nil)
}

// Jobs sharing a destination overwrite the same table concurrently and the last
// writer wins. They are still dispatched.
func (l *Loader) warnSharedTables(ctx context.Context, jobs []*domain.LoadJob) {
	sources := make(map[string][]string, len(jobs))
	for _, job := range jobs {
		table := job.Destination.String()
		sources[table] = append(sources[table], job.SourceObjects...)
	}

	for table, objects := range sources {
		if len(objects) > 1 {
			l.log.WarnContext(ctx, "several objects load into the same table",
				slog.String("table", table),
				slog.Any("objects", objects),
			)
		}
	}
}
