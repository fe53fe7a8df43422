package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jcgarcia/fintrack/internal/domain/entity"
	"github.com/jcgarcia/fintrack/internal/domain/repository"
)

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

const profileColumns = `id, user_id, name, phone, position_or_company, marital_status,
	children, initial_balance::text, assets::text, created_at, updated_at`

func (r *ProfileRepository) Create(ctx context.Context, p *entity.Profile) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO profile (user_id, name, phone, position_or_company, marital_status, children, initial_balance, assets)
		VALUES ($1, $2, $3, $4, $5, $6, $7::numeric, $7::numeric)
		RETURNING id, created_at, updated_at
	`, p.UserID, p.Name, p.Phone, p.PositionOrCompany, p.MaritalStatus, p.Children,
		p.InitialBalance.String())

	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return err
	}
	p.Assets = p.InitialBalance
	return nil
}

func (r *ProfileRepository) GetByID(ctx context.Context, id int64) (*entity.Profile, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+profileColumns+` FROM profile WHERE id = $1`, id)
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *ProfileRepository) Update(ctx context.Context, p *entity.Profile) error {
	p.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE profile
		SET name = $1, phone = $2, position_or_company = $3, marital_status = $4,
		    children = $5, initial_balance = $6::numeric, updated_at = $7
		WHERE id = $8
	`, p.Name, p.Phone, p.PositionOrCompany, p.MaritalStatus, p.Children,
		p.InitialBalance.String(), p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ProfileRepository) Delete(ctx context.Context, id int64) error {
	// Ledger rows go with the profile (ON DELETE CASCADE).
	res, err := r.pool.Exec(ctx, `DELETE FROM profile WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ProfileRepository) GetAllForUser(ctx context.Context, userID int64) ([]entity.Profile, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+profileColumns+` FROM profile WHERE user_id = $1 ORDER BY id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make([]entity.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

func (r *ProfileRepository) IsOwnedByUser(ctx context.Context, profileID, userID int64) (bool, error) {
	var owned bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM profile WHERE id = $1 AND user_id = $2)
	`, profileID, userID).Scan(&owned)
	return owned, err
}

func scanProfile(row pgx.Row) (*entity.Profile, error) {
	p := &entity.Profile{}
	var initial, assets string
	if err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Phone, &p.PositionOrCompany,
		&p.MaritalStatus, &p.Children, &initial, &assets, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	var err error
	if p.InitialBalance, err = decimal.NewFromString(initial); err != nil {
		return nil, err
	}
	if p.Assets, err = decimal.NewFromString(assets); err != nil {
		return nil, err
	}
	return p, nil
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)
