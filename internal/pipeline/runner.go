package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/parquet_loader/internal/domain"
)

// Stages are the six steps of a run in execution order.
type Stages struct {
	Converter *Converter
	Uploader  *Uploader
	Lister    *Lister
	Mapper    *Mapper
	Loader    *Loader
	Cleaner   *Cleaner
}

type Runner struct {
	log      *slog.Logger
	stages   Stages
	recorder *Recorder
	reporter *Reporter
}

func NewRunner(log *slog.Logger, stages Stages, recorder *Recorder, reporter *Reporter) *Runner {
	return &Runner{
		log:      log,
		stages:   stages,
		recorder: recorder,
		reporter: reporter,
	}
}

// Run executes one pipeline run and returns its report. The returned error is the
// reason the run stopped early; per-file and per-job failures are only in the report.
func (r *Runner) Run(ctx context.Context, runID uuid.UUID) (*domain.Report, error) {
	log := r.log.With(slog.String("run_id", runID.String()))

	report := &domain.Report{
		Run: &domain.Run{
			ID:        runID,
			Status:    domain.StatusRunning,
			StartedAt: time.Now(),
		},
	}

	// Bookkeeping must survive cancellation of the run itself.
	bookkeeping := context.WithoutCancel(ctx)

	if err := r.recorder.Start(bookkeeping, report.Run); err != nil {
		return report, fmt.Errorf("failed to record run start: %w", err)
	}

	log.InfoContext(ctx, "run started")

	runErr := r.execute(ctx, report)

	finished := time.Now()
	report.Run.FinishedAt = &finished
	report.Run.ObjectsCount = len(report.Objects)
	report.Run.JobsCount = len(report.Jobs)
	report.Run.Status = domain.StatusDone

	if runErr != nil {
		report.Run.Status = domain.StatusError
		report.Run.ErrorMessage = runErr.Error()
		log.ErrorContext(ctx, "run stopped", slog.String("err", runErr.Error()))
	}

	if err := r.recorder.Finish(bookkeeping, report); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("failed to record run result: %w", err))
	}

	if _, err := r.reporter.Report(bookkeeping, report); err != nil {
		log.ErrorContext(ctx, "failed to generate run report", slog.String("err", err.Error()))
	}

	log.InfoContext(ctx, "run finished",
		slog.String("status", string(report.Run.Status)),
		slog.Int("objects_count", report.Run.ObjectsCount),
		slog.Int("failures_count", len(report.Failures())),
	)

	return report, runErr
}

func (r *Runner) execute(ctx context.Context, report *domain.Report) error {
	if err := checkpoint(ctx, "convert"); err != nil {
		return err
	}

	outcomes, err := r.stages.Converter.Convert(ctx)
	report.Outcomes = append(report.Outcomes, outcomes...)
	if err != nil {
		return fmt.Errorf("convert stage: %w", err)
	}

	if err := checkpoint(ctx, "upload"); err != nil {
		return err
	}

	outcomes, err = r.stages.Uploader.Upload(ctx)
	report.Outcomes = append(report.Outcomes, outcomes...)
	if err != nil {
		return fmt.Errorf("upload stage: %w", err)
	}

	if err := checkpoint(ctx, "list"); err != nil {
		return err
	}

	objects, err := r.stages.Lister.List(ctx)
	if err != nil {
		return fmt.Errorf("list stage: %w", err)
	}

	report.Objects = objects
	report.Jobs = r.stages.Mapper.Map(objects)

	if err := checkpoint(ctx, "load"); err != nil {
		return err
	}

	report.Outcomes = append(report.Outcomes, r.stages.Loader.Load(ctx, report.Jobs)...)

	// Cleanup does not depend on load results.
	if err := checkpoint(ctx, "cleanup"); err != nil {
		return err
	}

	outcomes, err = r.stages.Cleaner.Clean(ctx)
	report.Outcomes = append(report.Outcomes, outcomes...)
	if err != nil {
		return fmt.Errorf("cleanup stage: %w", err)
	}

	return nil
}

func checkpoint(ctx context.Context, next string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("run canceled before %s stage: %w", next, err)
	}

	return nil
}
