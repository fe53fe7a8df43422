package application

import (
	"context"
	"errors"
	"testing"

	"github.com/jcgarcia/fintrack/internal/domain/entity"
)

func TestProfileCreateSeedsAssets(t *testing.T) {
	store := newMemStore()
	_, profiles, _ := newServices(store)

	p := seedProfile(t, profiles, 1, "500.00")
	if !p.Assets.Equal(mustDecimal("500.00")) {
		t.Errorf("assets = %s, want 500.00", p.Assets)
	}
}

func TestProfileGetReturnsDerivedBalance(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	_, profiles, ledger := newServices(store)

	p := seedProfile(t, profiles, 1, "500.00")
	addEntry(t, ledger, 1, entity.KindIncome, p.ID, "250.00")
	addEntry(t, ledger, 1, entity.KindExpense, p.ID, "75.50")

	_, balance, err := profiles.Get(ctx, 1, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !balance.Equal(mustDecimal("674.50")) {
		t.Errorf("balance = %s, want 674.50", balance)
	}
}

func TestProfileGetDeniesForeignProfile(t *testing.T) {
	store := newMemStore()
	_, profiles, _ := newServices(store)

	p := seedProfile(t, profiles, 1, "0.00")
	if _, _, err := profiles.Get(context.Background(), 2, p.ID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("err = %v, want ErrNotOwner", err)
	}
}

func TestProfileUpdateResyncsAssets(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	_, profiles, ledger := newServices(store)

	p := seedProfile(t, profiles, 1, "100.00")
	addEntry(t, ledger, 1, entity.KindIncome, p.ID, "50.00")

	updated, err := profiles.Update(ctx, 1, p.ID, ProfileInput{
		Name:           "Personal",
		InitialBalance: mustDecimal("200.00"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.Assets.Equal(mustDecimal("250.00")) {
		t.Errorf("assets = %s, want 250.00", updated.Assets)
	}
}

func TestProfileDeleteRemovesLedgerRows(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	_, profiles, ledger := newServices(store)

	p := seedProfile(t, profiles, 1, "0.00")
	addEntry(t, ledger, 1, entity.KindIncome, p.ID, "10.00")

	if err := profiles.Delete(ctx, 1, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	entries, err := ledger.List(ctx, 1, entity.KindIncome)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("len(entries) = %d, want 0", len(entries))
	}
}

func TestProfileDeleteUnknown(t *testing.T) {
	store := newMemStore()
	_, profiles, _ := newServices(store)

	if err := profiles.Delete(context.Background(), 1, 99); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("err = %v, want ErrProfileNotFound", err)
	}
}
