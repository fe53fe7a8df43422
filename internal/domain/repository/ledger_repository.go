package repository

import (
	"context"

	"github.com/jcgarcia/fintrack/internal/domain/entity"
)

// LedgerRepository persists income and expense rows.
//
// Mutations are atomic with the owning profile's assets resync: the row
// change and the recomputation of profile.assets commit in one
// transaction, so concurrent readers never observe a ledger row without
// its balance update.
type LedgerRepository interface {
	// Create inserts the entry, writes the generated id back, and
	// resynchronizes the owning profile's assets.
	Create(ctx context.Context, e *entity.Entry) error
	GetByID(ctx context.Context, kind entity.EntryKind, id int64) (*entity.Entry, error)
	// Update rewrites the entry and resynchronizes assets. When the entry
	// moved between profiles both profiles are resynced.
	Update(ctx context.Context, e *entity.Entry, previousProfileID int64) error
	// Delete removes the entry and resynchronizes the profile it belonged
	// to. The caller supplies profileID captured before the delete, since
	// the row no longer exists afterwards.
	Delete(ctx context.Context, kind entity.EntryKind, id, profileID int64) error
	// GetAllForUser lists entries of one kind across all the user's
	// profiles, newest date first.
	GetAllForUser(ctx context.Context, kind entity.EntryKind, userID int64) ([]entity.Entry, error)
}
