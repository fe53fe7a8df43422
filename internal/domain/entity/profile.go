package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Profile is a financial bucket owned by one user.
//
// Assets is a cached derived value: at rest it always equals
// InitialBalance plus the income sum minus the expense sum of the
// profile's ledger rows. Every ledger mutation resynchronizes it.
type Profile struct {
	ID                int64
	UserID            int64
	Name              string
	Phone             string
	PositionOrCompany string
	MaritalStatus     string
	Children          int
	InitialBalance    decimal.Decimal
	Assets            decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
