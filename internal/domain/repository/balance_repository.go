package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// BalanceRepository runs the balance aggregation queries.
type BalanceRepository interface {
	// ProfileBalance returns initial_balance + income sum - expense sum
	// for one profile, or ErrNotFound when the profile does not exist.
	ProfileBalance(ctx context.Context, profileID int64) (decimal.Decimal, error)
	// SyncAssets recomputes the balance and stores it in profile.assets as
	// one atomic statement, returning the stored value. ErrNotFound when
	// the profile does not exist.
	SyncAssets(ctx context.Context, profileID int64) (decimal.Decimal, error)
	// UserTotals returns the sums of initial balances, incomes, and
	// expenses across every profile owned by the user.
	UserTotals(ctx context.Context, userID int64) (initial, income, expenses decimal.Decimal, err error)
}
