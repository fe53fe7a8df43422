package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/jcgarcia/fintrack/internal/domain/repository"
)

// querier is the subset of pgx shared by *pgxpool.Pool and pgx.Tx, so the
// aggregation queries run the same inside and outside a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// syncAssets recomputes profile.assets from the ledgers in a single UPDATE,
// so the recomputation is atomic with respect to concurrent writers: the
// subqueries and the write happen under one snapshot of the row.
func syncAssets(ctx context.Context, q querier, profileID int64) (decimal.Decimal, error) {
	var assets string
	err := q.QueryRow(ctx, `
		UPDATE profile
		SET assets = initial_balance
			+ COALESCE((SELECT SUM(amount) FROM income   WHERE profile_id = profile.id), 0)
			- COALESCE((SELECT SUM(amount) FROM expenses WHERE profile_id = profile.id), 0),
		    updated_at = now()
		WHERE id = $1
		RETURNING assets::text
	`, profileID).Scan(&assets)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, repository.ErrNotFound
		}
		return decimal.Zero, err
	}
	return decimal.NewFromString(assets)
}
