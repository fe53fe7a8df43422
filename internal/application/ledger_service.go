package application

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/jcgarcia/fintrack/internal/domain/entity"
	"github.com/jcgarcia/fintrack/internal/domain/repository"
)

var (
	// ErrNotOwner is returned when the target profile or entry does not
	// belong to the requesting user. Callers deny the request; ownership
	// violations are never passed through.
	ErrNotOwner = errors.New("resource not owned by user")

	// ErrEntryNotFound is returned for unknown ledger entry ids.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrNegativeAmount rejects ledger amounts below zero.
	ErrNegativeAmount = errors.New("amount must not be negative")
)

// LedgerService owns the income/expense write path: ownership guard,
// mutation, and assets resync (the last two commit atomically in the
// repository).
type LedgerService struct {
	Entries  repository.LedgerRepository
	Profiles repository.ProfileRepository
	Balance  *BalanceService
	Logger   *logrus.Logger
}

func NewLedgerService(entries repository.LedgerRepository, profiles repository.ProfileRepository, balance *BalanceService, logger *logrus.Logger) *LedgerService {
	return &LedgerService{Entries: entries, Profiles: profiles, Balance: balance, Logger: logger}
}

// EntryInput is the typed input for creating or updating a ledger entry.
type EntryInput struct {
	ProfileID   int64
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        string
}

func (s *LedgerService) guardProfile(ctx context.Context, profileID, userID int64) error {
	owned, err := s.Profiles.IsOwnedByUser(ctx, profileID, userID)
	if err != nil {
		return err
	}
	if !owned {
		return ErrNotOwner
	}
	return nil
}

// Create validates ownership of the target profile, inserts the entry, and
// resyncs the profile's assets.
func (s *LedgerService) Create(ctx context.Context, userID int64, kind entity.EntryKind, in EntryInput) (*entity.Entry, error) {
	if in.Amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	if err := s.guardProfile(ctx, in.ProfileID, userID); err != nil {
		return nil, err
	}

	e := &entity.Entry{
		ProfileID:   in.ProfileID,
		Kind:        kind,
		Date:        in.Date,
		Description: in.Description,
		Amount:      in.Amount,
		Type:        in.Type,
	}
	if err := s.Entries.Create(ctx, e); err != nil {
		return nil, err
	}

	s.Balance.InvalidateSummary(ctx, userID)
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"kind":       kind,
			"entry_id":   e.ID,
			"profile_id": e.ProfileID,
			"amount":     e.Amount.String(),
		}).Info("ledger entry created")
	}
	return e, nil
}

// Get returns one entry after verifying the requesting user owns its
// profile.
func (s *LedgerService) Get(ctx context.Context, userID int64, kind entity.EntryKind, id int64) (*entity.Entry, error) {
	e, err := s.Entries.GetByID(ctx, kind, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	if err := s.guardProfile(ctx, e.ProfileID, userID); err != nil {
		return nil, err
	}
	return e, nil
}

// List returns the user's entries of one kind, newest date first.
func (s *LedgerService) List(ctx context.Context, userID int64, kind entity.EntryKind) ([]entity.Entry, error) {
	return s.Entries.GetAllForUser(ctx, kind, userID)
}

// Update rewrites an entry. When the entry moves between profiles, both
// the old and the new profile must belong to the user and both get their
// assets resynced.
func (s *LedgerService) Update(ctx context.Context, userID int64, kind entity.EntryKind, id int64, in EntryInput) (*entity.Entry, error) {
	if in.Amount.IsNegative() {
		return nil, ErrNegativeAmount
	}

	current, err := s.Get(ctx, userID, kind, id)
	if err != nil {
		return nil, err
	}
	previousProfileID := current.ProfileID

	if in.ProfileID != previousProfileID {
		if err := s.guardProfile(ctx, in.ProfileID, userID); err != nil {
			return nil, err
		}
	}

	e := &entity.Entry{
		ID:          id,
		ProfileID:   in.ProfileID,
		Kind:        kind,
		Date:        in.Date,
		Description: in.Description,
		Amount:      in.Amount,
		Type:        in.Type,
		CreatedAt:   current.CreatedAt,
	}
	if err := s.Entries.Update(ctx, e, previousProfileID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	s.Balance.InvalidateSummary(ctx, userID)
	return e, nil
}

// Delete removes an entry. The profile id is captured from the fetched
// row before deletion so the assets resync still knows its target.
func (s *LedgerService) Delete(ctx context.Context, userID int64, kind entity.EntryKind, id int64) error {
	e, err := s.Get(ctx, userID, kind, id)
	if err != nil {
		return err
	}
	profileID := e.ProfileID

	if err := s.Entries.Delete(ctx, kind, id, profileID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEntryNotFound
		}
		return err
	}

	s.Balance.InvalidateSummary(ctx, userID)
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"kind":       kind,
			"entry_id":   id,
			"profile_id": profileID,
		}).Info("ledger entry deleted")
	}
	return nil
}
