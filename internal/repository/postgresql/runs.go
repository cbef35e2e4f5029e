package postgresql

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/parquet_loader/internal/domain"
)

const TableRuns = "runs"

const interruptedMessage = "interrupted before completion"

var runColumns = []string{
	"id",
	"status",
	"started_at",
	"finished_at",
	"objects_count",
	"jobs_count",
	"error_message",
}

type RunsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewRunsRepository(pool *pgxpool.Pool) *RunsRepository {
	return &RunsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *RunsRepository) CreateRun(ctx context.Context, run *domain.Run) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableRuns).
		Columns(runColumns...).
		Values(
			run.ID,
			run.Status,
			run.StartedAt,
			run.FinishedAt,
			run.ObjectsCount,
			run.JobsCount,
			run.ErrorMessage,
		).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}

func (r *RunsRepository) UpdateRun(ctx context.Context, run *domain.Run) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableRuns).
		SetMap(map[string]any{
			"status":        run.Status,
			"finished_at":   run.FinishedAt,
			"objects_count": run.ObjectsCount,
			"jobs_count":    run.JobsCount,
			"error_message": run.ErrorMessage,
		}).
		Where(sq.Eq{"id": run.ID}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRunNotFound
	}

	return nil
}

func (r *RunsRepository) RunByID(ctx context.Context, id uuid.UUID) (*domain.Run, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(runColumns...).
		From(TableRuns).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	run, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.Run])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRunNotFound
		}
		return nil, collectRowsError(err)
	}

	return run, nil
}

// Runs returns a page of runs, newest first, and the total number of runs.
func (r *RunsRepository) Runs(ctx context.Context, limit, offset uint64) ([]*domain.Run, int, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableRuns).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	sql, args, err = r.qb.
		Select(runColumns...).
		From(TableRuns).
		OrderBy("started_at DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, executeQueryError(err)
	}

	runs, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Run])
	if err != nil {
		return nil, -1, collectRowsError(err)
	}

	return runs, total, nil
}

// AbortRunningRuns marks runs left in the running state by a previous process as failed.
func (r *RunsRepository) AbortRunningRuns(ctx context.Context) (int64, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableRuns).
		Set("status", domain.StatusError).
		Set("error_message", interruptedMessage).
		Set("finished_at", sq.Expr("NOW()")).
		Where(sq.Eq{"status": domain.StatusRunning}).
		ToSql()
	if err != nil {
		return 0, createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, executeQueryError(err)
	}

	return tag.RowsAffected(), nil
}
