package repository

import (
	"context"

	"github.com/jcgarcia/fintrack/internal/domain/entity"
)

// ProfileRepository defines persistence for profiles.
type ProfileRepository interface {
	// Create inserts the profile and writes the generated id back.
	Create(ctx context.Context, p *entity.Profile) error
	GetByID(ctx context.Context, id int64) (*entity.Profile, error)
	Update(ctx context.Context, p *entity.Profile) error
	// Delete removes the profile together with its ledger rows.
	Delete(ctx context.Context, id int64) error
	GetAllForUser(ctx context.Context, userID int64) ([]entity.Profile, error)
	IsOwnedByUser(ctx context.Context, profileID, userID int64) (bool, error)
}
