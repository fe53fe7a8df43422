package application

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/jcgarcia/fintrack/internal/domain/repository"
	"github.com/jcgarcia/fintrack/pkg/helpers"
)

// ErrProfileNotFound is returned when a balance is requested for a profile
// that does not exist. Missing profiles are an explicit error, not a
// silent zero balance.
var ErrProfileNotFound = errors.New("profile not found")

const summaryTTL = time.Minute

// BalanceService computes profile balances and keeps the cached
// profile.assets column in sync with the ledgers.
type BalanceService struct {
	Repo   repository.BalanceRepository
	Redis  *redis.Client
	Logger *logrus.Logger
}

func NewBalanceService(repo repository.BalanceRepository, rdb *redis.Client, logger *logrus.Logger) *BalanceService {
	return &BalanceService{Repo: repo, Redis: rdb, Logger: logger}
}

// Summary is the dashboard aggregate across all of a user's profiles.
type Summary struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	Balance       decimal.Decimal `json:"balance"`
}

// CalculateBalance returns initial_balance + total income - total expenses
// for the profile. Calling it twice with no intervening writes returns the
// same value.
func (s *BalanceService) CalculateBalance(ctx context.Context, profileID int64) (decimal.Decimal, error) {
	balance, err := s.Repo.ProfileBalance(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return decimal.Zero, ErrProfileNotFound
		}
		return decimal.Zero, err
	}
	return balance, nil
}

// UpdateProfileAssets recomputes the profile's balance and stores it in
// profile.assets. The recomputation and the write are one atomic
// statement, so two concurrent resyncs cannot overwrite each other with a
// stale sum.
func (s *BalanceService) UpdateProfileAssets(ctx context.Context, profileID int64) error {
	assets, err := s.Repo.SyncAssets(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProfileNotFound
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("profile_id", profileID).Error("assets resync failed")
		}
		return err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"profile_id": profileID, "assets": assets.String()}).Debug("assets resynced")
	}
	return nil
}

// GlobalTotalIncome sums income across every profile owned by the user.
func (s *BalanceService) GlobalTotalIncome(ctx context.Context, userID int64) (decimal.Decimal, error) {
	_, income, _, err := s.Repo.UserTotals(ctx, userID)
	return income, err
}

// GlobalTotalExpenses sums expenses across every profile owned by the user.
func (s *BalanceService) GlobalTotalExpenses(ctx context.Context, userID int64) (decimal.Decimal, error) {
	_, _, expenses, err := s.Repo.UserTotals(ctx, userID)
	return expenses, err
}

// GlobalBalance is the user's net position: the sum of every profile's
// balance, i.e. total initial balances + total income - total expenses.
func (s *BalanceService) GlobalBalance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	initial, income, expenses, err := s.Repo.UserTotals(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	return initial.Add(income).Sub(expenses), nil
}

// GetSummary returns the dashboard aggregate, cached in Redis for a short
// window. Mutating services invalidate the cache, so reads after a write
// always see the new totals.
func (s *BalanceService) GetSummary(ctx context.Context, userID int64) (*Summary, error) {
	if s.Redis != nil {
		var cached Summary
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, helpers.SummaryKey(userID), &cached); err == nil && ok {
			return &cached, nil
		}
	}

	initial, income, expenses, err := s.Repo.UserTotals(ctx, userID)
	if err != nil {
		return nil, err
	}
	sum := &Summary{
		TotalIncome:   income,
		TotalExpenses: expenses,
		Balance:       initial.Add(income).Sub(expenses),
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, helpers.SummaryKey(userID), sum, summaryTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("summary cache write failed")
		}
	}
	return sum, nil
}

// InvalidateSummary drops the cached dashboard aggregate after a mutation.
func (s *BalanceService) InvalidateSummary(ctx context.Context, userID int64) {
	if s.Redis == nil {
		return
	}
	if err := helpers.RedisDel(ctx, s.Redis, helpers.SummaryKey(userID)); err != nil && s.Logger != nil {
		s.Logger.WithError(err).Warn("summary cache invalidation failed")
	}
}
