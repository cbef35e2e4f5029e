package pipeline

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kurochkinivan/parquet_loader/internal/domain"
)

type Cleaner struct {
	log        *slog.Logger
	stagingDir string
}

func NewCleaner(log *slog.Logger, stagingDir string) *Cleaner {
	return &Cleaner{
		log:        log,
		stagingDir: stagingDir,
	}
}

func isStaged(name string) bool {
	return domain.IsDelimited(name) || domain.IsColumnar(name)
}

// Clean removes every csv and parquet file from the staging directory.
func (c *Cleaner) Clean(ctx context.Context) ([]domain.Outcome, error) {
	entries, err := stagedEntries(c.stagingDir, isStaged)
	if err != nil {
		return nil, err
	}

	outcomes := make([]domain.Outcome, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()

		if err := os.Remove(filepath.Join(c.stagingDir, name)); err != nil {
			c.log.ErrorContext(ctx, "failed to delete file, skipping",
				slog.String("filename", name),
				slog.String("err", err.Error()),
			)
			outcomes = append(outcomes, domain.NewOutcome(domain.StageCleanup, name, "", err))
			continue
		}

		c.log.InfoContext(ctx, "deleted file", slog.String("filename", name))
		outcomes = append(outcomes, domain.NewOutcome(domain.StageCleanup, name, "", nil))
	}

	return outcomes, nil
}
