package application

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/jcgarcia/fintrack/internal/domain/entity"
	"github.com/jcgarcia/fintrack/internal/domain/repository"
)

// ProfileService manages financial profiles and keeps their cached assets
// value consistent.
type ProfileService struct {
	Profiles repository.ProfileRepository
	Balance  *BalanceService
	Logger   *logrus.Logger
}

func NewProfileService(profiles repository.ProfileRepository, balance *BalanceService, logger *logrus.Logger) *ProfileService {
	return &ProfileService{Profiles: profiles, Balance: balance, Logger: logger}
}

// ProfileInput is the typed input for creating or updating a profile.
type ProfileInput struct {
	Name              string
	Phone             string
	PositionOrCompany string
	MaritalStatus     string
	Children          int
	InitialBalance    decimal.Decimal
}

// Create inserts the profile and resyncs its assets so the cached value
// is valid from the first read.
func (s *ProfileService) Create(ctx context.Context, userID int64, in ProfileInput) (*entity.Profile, error) {
	p := &entity.Profile{
		UserID:            userID,
		Name:              in.Name,
		Phone:             in.Phone,
		PositionOrCompany: in.PositionOrCompany,
		MaritalStatus:     in.MaritalStatus,
		Children:          in.Children,
		InitialBalance:    in.InitialBalance,
	}
	if err := s.Profiles.Create(ctx, p); err != nil {
		return nil, err
	}
	if err := s.Balance.UpdateProfileAssets(ctx, p.ID); err != nil {
		return nil, err
	}

	s.Balance.InvalidateSummary(ctx, userID)
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"profile_id": p.ID, "user_id": userID}).Info("profile created")
	}
	return p, nil
}

// Get returns the profile together with its freshly computed balance.
func (s *ProfileService) Get(ctx context.Context, userID, id int64) (*entity.Profile, decimal.Decimal, error) {
	p, err := s.Profiles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, decimal.Zero, ErrProfileNotFound
		}
		return nil, decimal.Zero, err
	}
	if p.UserID != userID {
		return nil, decimal.Zero, ErrNotOwner
	}

	balance, err := s.Balance.CalculateBalance(ctx, id)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return p, balance, nil
}

// List returns every profile owned by the user.
func (s *ProfileService) List(ctx context.Context, userID int64) ([]entity.Profile, error) {
	return s.Profiles.GetAllForUser(ctx, userID)
}

// Update rewrites the profile and resyncs assets, since a changed
// initial_balance changes the derived balance.
func (s *ProfileService) Update(ctx context.Context, userID, id int64, in ProfileInput) (*entity.Profile, error) {
	p, err := s.Profiles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	if p.UserID != userID {
		return nil, ErrNotOwner
	}

	p.Name = in.Name
	p.Phone = in.Phone
	p.PositionOrCompany = in.PositionOrCompany
	p.MaritalStatus = in.MaritalStatus
	p.Children = in.Children
	p.InitialBalance = in.InitialBalance

	if err := s.Profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	if err := s.Balance.UpdateProfileAssets(ctx, id); err != nil {
		return nil, err
	}
	s.Balance.InvalidateSummary(ctx, userID)

	// Reload so the caller sees the resynced assets value.
	fresh, err := s.Profiles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return fresh, nil
}

// Delete removes the profile and, through the schema cascade, its ledger
// rows.
func (s *ProfileService) Delete(ctx context.Context, userID, id int64) error {
	p, err := s.Profiles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProfileNotFound
		}
		return err
	}
	if p.UserID != userID {
		return ErrNotOwner
	}

	if err := s.Profiles.Delete(ctx, id); err != nil {
		return err
	}
	s.Balance.InvalidateSummary(ctx, userID)
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"profile_id": id, "user_id": userID}).Info("profile deleted")
	}
	return nil
}
