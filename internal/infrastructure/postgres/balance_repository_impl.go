package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jcgarcia/fintrack/internal/domain/repository"
)

// BalanceRepository runs the balance aggregation queries. Sums are done in
// SQL on NUMERIC columns, never in binary floating point.
type BalanceRepository struct {
	pool *pgxpool.Pool
}

func NewBalanceRepository(pool *pgxpool.Pool) *BalanceRepository {
	return &BalanceRepository{pool: pool}
}

func (r *BalanceRepository) ProfileBalance(ctx context.Context, profileID int64) (decimal.Decimal, error) {
	var balance string
	err := r.pool.QueryRow(ctx, `
		SELECT (initial_balance
			+ COALESCE((SELECT SUM(amount) FROM income   WHERE profile_id = profile.id), 0)
			- COALESCE((SELECT SUM(amount) FROM expenses WHERE profile_id = profile.id), 0))::text
		FROM profile
		WHERE id = $1
	`, profileID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, repository.ErrNotFound
		}
		return decimal.Zero, err
	}
	return decimal.NewFromString(balance)
}

func (r *BalanceRepository) SyncAssets(ctx context.Context, profileID int64) (decimal.Decimal, error) {
	return syncAssets(ctx, r.pool, profileID)
}

func (r *BalanceRepository) UserTotals(ctx context.Context, userID int64) (initial, income, expenses decimal.Decimal, err error) {
	var initialStr, incomeStr, expensesStr string
	err = r.pool.QueryRow(ctx, `
		SELECT
			COALESCE((SELECT SUM(initial_balance) FROM profile WHERE user_id = $1), 0)::text,
			COALESCE((SELECT SUM(i.amount) FROM income i
				INNER JOIN profile p ON i.profile_id = p.id WHERE p.user_id = $1), 0)::text,
			COALESCE((SELECT SUM(e.amount) FROM expenses e
				INNER JOIN profile p ON e.profile_id = p.id WHERE p.user_id = $1), 0)::text
	`, userID).Scan(&initialStr, &incomeStr, &expensesStr)
	if err != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, err
	}
	if initial, err = decimal.NewFromString(initialStr); err != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, err
	}
	if income, err = decimal.NewFromString(incomeStr); err != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, err
	}
	if expenses, err = decimal.NewFromString(expensesStr); err != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, err
	}
	return initial, income, expenses, nil
}

var _ repository.BalanceRepository = (*BalanceRepository)(nil)
