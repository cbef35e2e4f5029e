package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/kurochkinivan/parquet_loader/internal/domain"
)

// Scanner polls the staging directory and requests a run when csv files are waiting.
type Scanner struct {
	log          *slog.Logger
	stagingDir   string
	scanInterval time.Duration
	requester    RunRequester
}

func NewScanner(
	log *slog.Logger,
	stagingDir string,
	scanInterval time.Duration,
	requester RunRequester,
) *Scanner {
	return &Scanner{
		log:          log,
		stagingDir:   stagingDir,
		scanInterval: scanInterval,
		requester:    requester,
	}
}

func (s *Scanner) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.log.DebugContext(ctx, "scan cycle started")
			s.scan(ctx)

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Scanner) scan(ctx context.Context) {
	entries, err := stagedEntries(s.stagingDir, domain.IsDelimited)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to scan staging directory", slog.String("err", err.Error()))
		return
	}

	if len(entries) == 0 {
		return
	}

	id, err := s.requester.Request()
	switch {
	case errors.Is(err, ErrRunInProgress):
		s.log.DebugContext(ctx, "staged files wait for the current run", slog.Int("files_count", len(entries)))
	case err != nil:
		s.log.ErrorContext(ctx, "failed to request run", slog.String("err", err.Error()))
	default:
		s.log.InfoContext(ctx, "requested run for staged files",
			slog.String("run_id", id.String()),
			slog.Int("files_count", len(entries)),
		)
	}
}
