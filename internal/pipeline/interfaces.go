package pipeline

import (
	"context"

	"github.com/google/uuid"
	"github.com/kurochkinivan/parquet_loader/internal/domain"
)

type TableParser interface {
	Parse(path string) (*domain.Table, error)
}

type TableSerializer interface {
	Serialize(table *domain.Table, path string) error
}

type ObjectUploader interface {
	Upload(ctx context.Context, objectName, localPath string) error
}

type ObjectLister interface {
	List(ctx context.Context) ([]string, error)
}

type BulkLoader interface {
	Load(ctx context.Context, job *domain.LoadJob) error
}

type RunSaver interface {
	CreateRun(ctx context.Context, run *domain.Run) error
	UpdateRun(ctx context.Context, run *domain.Run) error
}

type OutcomesSaver interface {
	SaveOutcomes(ctx context.Context, runID uuid.UUID, outcomes ...domain.Outcome) error
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ReportGenerator interface {
	GenerateReport(outputPath string, report *domain.Report) error
}

type RunExecutor interface {
	Run(ctx context.Context, runID uuid.UUID) (*domain.Report, error)
}

type RunRequester interface {
	Request() (uuid.UUID, error)
}
