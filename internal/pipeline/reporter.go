package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/kurochkinivan/parquet_loader/internal/domain"
)

// ReportFormat pairs a file extension with the generator that renders it.
type ReportFormat struct {
	Extension string
	Generator ReportGenerator
}

type Reporter struct {
	log       *slog.Logger
	outputDir string
	formats   []ReportFormat
}

func NewReporter(log *slog.Logger, outputDir string, formats ...ReportFormat) *Reporter {
	return &Reporter{
		log:       log,
		outputDir: outputDir,
		formats:   formats,
	}
}

// Report renders <output dir>/<run id>.<ext> for every format and returns the written paths.
// A failed format does not stop the others.
func (r *Reporter) Report(ctx context.Context, report *domain.Report) ([]string, error) {
	var (
		paths []string
		errs  []error
	)

	for _, format := range r.formats {
		path := filepath.Join(r.outputDir, report.Run.ID.String()+"."+format.Extension)

		if err := format.Generator.GenerateReport(path, report); err != nil {
			errs = append(errs, fmt.Errorf("run %s %s report: %w", report.Run.ID, format.Extension, err))
			continue
		}

		r.log.InfoContext(ctx, "run report generated",
			slog.String("run_id", report.Run.ID.String()),
			slog.String("path", path),
		)

		paths = append(paths, path)
	}

	return paths, errors.Join(errs...)
}
