package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jcgarcia/fintrack/internal/domain/entity"
	"github.com/jcgarcia/fintrack/internal/domain/repository"
)

// LedgerRepository stores income and expense rows. Every mutation runs in
// one transaction together with the owning profile's assets resync.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// tableFor maps a kind to its table. Kinds are a closed set; the table
// name is never built from user input.
func tableFor(kind entity.EntryKind) (string, error) {
	if !kind.Valid() {
		return "", errors.New("unknown entry kind: " + string(kind))
	}
	if kind == entity.KindIncome {
		return "income", nil
	}
	return "expenses", nil
}

func (r *LedgerRepository) Create(ctx context.Context, e *entity.Entry) error {
	table, err := tableFor(e.Kind)
	if err != nil {
		return err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO `+table+` (profile_id, date, description, amount, type)
		VALUES ($1, $2, $3, $4::numeric, $5)
		RETURNING id, created_at
	`, e.ProfileID, e.Date, e.Description, e.Amount.String(), e.Type)
	if err := row.Scan(&e.ID, &e.CreatedAt); err != nil {
		return err
	}

	if _, err := syncAssets(ctx, tx, e.ProfileID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *LedgerRepository) GetByID(ctx context.Context, kind entity.EntryKind, id int64) (*entity.Entry, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	row := r.pool.QueryRow(ctx, `
		SELECT id, profile_id, date, description, amount::text, type, created_at
		FROM `+table+` WHERE id = $1
	`, id)
	e, err := scanEntry(row, kind)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *LedgerRepository) Update(ctx context.Context, e *entity.Entry, previousProfileID int64) error {
	table, err := tableFor(e.Kind)
	if err != nil {
		return err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	res, err := tx.Exec(ctx, `
		UPDATE `+table+`
		SET date = $1, description = $2, amount = $3::numeric, type = $4, profile_id = $5
		WHERE id = $6
	`, e.Date, e.Description, e.Amount.String(), e.Type, e.ProfileID, e.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	if _, err := syncAssets(ctx, tx, e.ProfileID); err != nil {
		return err
	}
	if previousProfileID != 0 && previousProfileID != e.ProfileID {
		if _, err := syncAssets(ctx, tx, previousProfileID); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *LedgerRepository) Delete(ctx context.Context, kind entity.EntryKind, id, profileID int64) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	res, err := tx.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	if _, err := syncAssets(ctx, tx, profileID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *LedgerRepository) GetAllForUser(ctx context.Context, kind entity.EntryKind, userID int64) ([]entity.Entry, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT e.id, e.profile_id, e.date, e.description, e.amount::text, e.type, e.created_at
		FROM `+table+` e
		INNER JOIN profile p ON e.profile_id = p.id
		WHERE p.user_id = $1
		ORDER BY e.date DESC, e.id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]entity.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows, kind)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

func scanEntry(row pgx.Row, kind entity.EntryKind) (*entity.Entry, error) {
	e := &entity.Entry{Kind: kind}
	var amount string
	if err := row.Scan(&e.ID, &e.ProfileID, &e.Date, &e.Description, &amount, &e.Type, &e.CreatedAt); err != nil {
		return nil, err
	}
	var err error
	if e.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, err
	}
	return e, nil
}

var _ repository.LedgerRepository = (*LedgerRepository)(nil)
