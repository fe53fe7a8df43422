package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind selects which ledger a row belongs to. Incomes and expenses
// are structurally identical and live in separate tables.
type EntryKind string

const (
	KindIncome  EntryKind = "income"
	KindExpense EntryKind = "expense"
)

// Valid reports whether k names a known ledger.
func (k EntryKind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Entry is a single income or expense row attached to exactly one profile.
// Type is a free-form category label from the form ("salary", "rent", ...).
type Entry struct {
	ID          int64
	ProfileID   int64
	Kind        EntryKind
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        string
	CreatedAt   time.Time
}
