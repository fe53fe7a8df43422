package postgres

import (
	"testing"

	"github.com/jcgarcia/fintrack/internal/domain/entity"
)

func TestTableFor(t *testing.T) {
	if table, err := tableFor(entity.KindIncome); err != nil || table != "income" {
		t.Errorf("tableFor(income) = (%q, %v), want (income, nil)", table, err)
	}
	if table, err := tableFor(entity.KindExpense); err != nil || table != "expenses" {
		t.Errorf("tableFor(expense) = (%q, %v), want (expenses, nil)", table, err)
	}
	if _, err := tableFor(entity.EntryKind("transfer")); err == nil {
		t.Error("tableFor accepted an unknown kind")
	}
}
