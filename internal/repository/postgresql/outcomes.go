package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/parquet_loader/internal/domain"
)

const TableOutcomes = "outcomes"

type OutcomesRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewOutcomesRepository(pool *pgxpool.Pool) *OutcomesRepository {
	return &OutcomesRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveOutcomes stores outcomes in the given order; n keeps that order for reads.
func (r *OutcomesRepository) SaveOutcomes(ctx context.Context, runID uuid.UUID, outcomes ...domain.Outcome) error {
	db := extractDB(ctx, r.pool)

	copied, err := db.CopyFrom(ctx, pgx.Identifier{TableOutcomes}, []string{
		"run_id",
		"n",
		"stage",
		"subject",
		"target",
		"error_message",
	}, pgx.CopyFromSlice(len(outcomes), func(i int) ([]any, error) {
		return []any{
			runID,
			i + 1,
			string(outcomes[i].Stage),
			outcomes[i].Subject,
			outcomes[i].Target,
			outcomes[i].ErrorMessage,
		}, nil
	}))
	if err != nil {
		return copyRowsError(err)
	}

	if copied != int64(len(outcomes)) {
		return copiedRowsMismatchError(copied, len(outcomes))
	}

	return nil
}

func (r *OutcomesRepository) OutcomesByRun(ctx context.Context, runID uuid.UUID) ([]*domain.Outcome, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(
			"stage",
			"subject",
			"target",
			"error_message",
		).
		From(TableOutcomes).
		Where(sq.Eq{"run_id": runID}).
		OrderBy("n ASC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	outcomes, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Outcome])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return outcomes, nil
}
