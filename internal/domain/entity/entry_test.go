package entity

import "testing"

func TestEntryKindValid(t *testing.T) {
	tests := []struct {
		kind EntryKind
		want bool
	}{
		{KindIncome, true},
		{KindExpense, true},
		{EntryKind(""), false},
		{EntryKind("transfer"), false},
		{EntryKind("Income"), false},
	}
	for _, tt := range tests {
		if got := tt.kind.Valid(); got != tt.want {
			t.Errorf("EntryKind(%q).Valid() = %v, want %v", tt.kind, got, tt.want)
		}
	}
}
