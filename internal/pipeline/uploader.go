package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/kurochkinivan/parquet_loader/internal/domain"
)

type Uploader struct {
	log        *slog.Logger
	stagingDir string
	uploader   ObjectUploader
}

func NewUploader(log *slog.Logger, stagingDir string, uploader ObjectUploader) *Uploader {
	return &Uploader{
		log:        log,
		stagingDir: stagingDir,
		uploader:   uploader,
	}
}

// Upload pushes every staged parquet file to the bucket under its base name.
func (u *Uploader) Upload(ctx context.Context) ([]domain.Outcome, error) {
	entries, err := stagedEntries(u.stagingDir, domain.IsColumnar)
	if err != nil {
		return nil, err
	}

	outcomes := make([]domain.Outcome, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()

		err := u.uploader.Upload(ctx, name, filepath.Join(u.stagingDir, name))
		if err != nil {
			u.log.ErrorContext(ctx, "failed to upload file, skipping",
				slog.String("filename", name),
				slog.String("err", err.Error()),
			)
			outcomes = append(outcomes, domain.NewOutcome(domain.StageUpload, name, "", err))
			continue
		}

		u.log.InfoContext(ctx, "uploaded file", slog.String("filename", name))
		outcomes = append(outcomes, domain.NewOutcome(domain.StageUpload, name, name, nil))
	}

	return outcomes, nil
}
