package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/kurochkinivan/parquet_loader/internal/domain"
)

type Converter struct {
	log        *slog.Logger
	stagingDir string
	parser     TableParser
	serializer TableSerializer
}

func NewConverter(log *slog.Logger, stagingDir string, parser TableParser, serializer TableSerializer) *Converter {
	return &Converter{
		log:        log,
		stagingDir: stagingDir,
		parser:     parser,
		serializer: serializer,
	}
}

// Convert writes a parquet sibling for every staged csv file. A file that fails is
// logged, recorded and skipped; only a failure to read the directory is returned.
func (c *Converter) Convert(ctx context.Context) ([]domain.Outcome, error) {
	entries, err := stagedEntries(c.stagingDir, domain.IsDelimited)
	if err != nil {
		return nil, err
	}

	outcomes := make([]domain.Outcome, 0, len(entries))
	for _, entry := range entries {
		source := entry.Name()
		target := domain.ColumnarName(source)

		if err := c.convertFile(source, target); err != nil {
			c.log.ErrorContext(ctx, "failed to convert file, skipping",
				slog.String("filename", source),
				slog.String("err", err.Error()),
			)
			outcomes = append(outcomes, domain.NewOutcome(domain.StageConvert, source, "", err))
			continue
		}

		c.log.InfoContext(ctx, "converted file",
			slog.String("filename", source),
			slog.String("target", target),
		)
		outcomes = append(outcomes, domain.NewOutcome(domain.StageConvert, source, target, nil))
	}

	return outcomes, nil
}

func (c *Converter) convertFile(source, target string) error {
	table, err := c.parser.Parse(filepath.Join(c.stagingDir, source))
	if err != nil {
		return fmt.Errorf("failed to parse: %w", err)
	}

	if err := c.serializer.Serialize(table, filepath.Join(c.stagingDir, target)); err != nil {
		return fmt.Errorf("failed to serialize: %w", err)
	}

	return nil
}
