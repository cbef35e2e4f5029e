package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kurochkinivan/parquet_loader/internal/domain"
)

type Lister struct {
	log    *slog.Logger
	lister ObjectLister
}

func NewLister(log *slog.Logger, lister ObjectLister) *Lister {
	return &Lister{
		log:    log,
		lister: lister,
	}
}

// List returns the parquet objects in store order. An unreachable store is an error,
// an empty bucket is not.
func (l *Lister) List(ctx context.Context) ([]string, error) {
	names, err := l.lister.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list objects: %w", err)
	}

	objects := make([]string, 0, len(names))
	for _, name := range names {
		if domain.IsColumnar(name) {
			objects = append(objects, name)
		}
	}

	l.log.InfoContext(ctx, "parquet objects found",
		slog.Int("objects_count", len(objects)),
		slog.Any("objects", objects),
	)

	return objects, nil
}
