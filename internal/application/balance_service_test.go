package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcgarcia/fintrack/internal/domain/entity"
)

func seedProfile(t *testing.T, profiles *ProfileService, userID int64, initial string) *entity.Profile {
	t.Helper()
	p, err := profiles.Create(context.Background(), userID, ProfileInput{
		Name:           "Personal",
		InitialBalance: mustDecimal(initial),
	})
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}
	return p
}

func addEntry(t *testing.T, ledger *LedgerService, userID int64, kind entity.EntryKind, profileID int64, amount string) *entity.Entry {
	t.Helper()
	e, err := ledger.Create(context.Background(), userID, kind, EntryInput{
		ProfileID:   profileID,
		Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Description: "entry",
		Amount:      mustDecimal(amount),
	})
	if err != nil {
		t.Fatalf("create %s entry: %v", kind, err)
	}
	return e
}

func TestCalculateBalance(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	balance, profiles, ledger := newServices(store)

	p := seedProfile(t, profiles, 1, "500.00")
	addEntry(t, ledger, 1, entity.KindIncome, p.ID, "250.00")
	addEntry(t, ledger, 1, entity.KindExpense, p.ID, "75.50")

	got, err := balance.CalculateBalance(ctx, p.ID)
	if err != nil {
		t.Fatalf("CalculateBalance: %v", err)
	}
	if want := mustDecimal("674.50"); !got.Equal(want) {
		t.Errorf("balance = %s, want %s", got, want)
	}

	// A read is pure: calling again with no writes in between returns the
	// same value.
	again, err := balance.CalculateBalance(ctx, p.ID)
	if err != nil {
		t.Fatalf("CalculateBalance (second): %v", err)
	}
	if !again.Equal(got) {
		t.Errorf("second read = %s, first = %s", again, got)
	}
}

func TestCalculateBalanceNoEntries(t *testing.T) {
	store := newMemStore()
	balance, profiles, _ := newServices(store)

	p := seedProfile(t, profiles, 1, "120.25")

	got, err := balance.CalculateBalance(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("CalculateBalance: %v", err)
	}
	if want := mustDecimal("120.25"); !got.Equal(want) {
		t.Errorf("balance = %s, want %s", got, want)
	}
}

func TestCalculateBalanceUnknownProfile(t *testing.T) {
	store := newMemStore()
	balance, _, _ := newServices(store)

	_, err := balance.CalculateBalance(context.Background(), 42)
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("err = %v, want ErrProfileNotFound", err)
	}
}

func TestUpdateProfileAssetsUnknownProfile(t *testing.T) {
	store := newMemStore()
	balance, _, _ := newServices(store)

	if err := balance.UpdateProfileAssets(context.Background(), 42); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("err = %v, want ErrProfileNotFound", err)
	}
}

func TestAssetsFollowLedgerMutations(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	_, profiles, ledger := newServices(store)

	p := seedProfile(t, profiles, 1, "500.00")
	addEntry(t, ledger, 1, entity.KindIncome, p.ID, "250.00")
	expense := addEntry(t, ledger, 1, entity.KindExpense, p.ID, "75.50")

	fresh, err := store.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("reload profile: %v", err)
	}
	if want := mustDecimal("674.50"); !fresh.Assets.Equal(want) {
		t.Errorf("assets after inserts = %s, want %s", fresh.Assets, want)
	}

	if err := ledger.Delete(ctx, 1, entity.KindExpense, expense.ID); err != nil {
		t.Fatalf("delete expense: %v", err)
	}
	fresh, err = store.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("reload profile: %v", err)
	}
	if want := mustDecimal("750.00"); !fresh.Assets.Equal(want) {
		t.Errorf("assets after delete = %s, want %s", fresh.Assets, want)
	}
}

func TestUpdateProfileAssetsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	balance, profiles, ledger := newServices(store)

	p := seedProfile(t, profiles, 1, "100.00")
	addEntry(t, ledger, 1, entity.KindIncome, p.ID, "50.00")

	for i := 0; i < 3; i++ {
		if err := balance.UpdateProfileAssets(ctx, p.ID); err != nil {
			t.Fatalf("resync %d: %v", i, err)
		}
	}
	fresh, err := store.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("reload profile: %v", err)
	}
	if want := mustDecimal("150.00"); !fresh.Assets.Equal(want) {
		t.Errorf("assets = %s, want %s", fresh.Assets, want)
	}
}

func TestGlobalTotals(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	balance, profiles, ledger := newServices(store)

	p1 := seedProfile(t, profiles, 1, "100.00")
	p2 := seedProfile(t, profiles, 1, "200.00")
	// Another user's profile must not leak into user 1's totals.
	other := seedProfile(t, profiles, 2, "999.00")
	addEntry(t, ledger, 2, entity.KindIncome, other.ID, "999.00")

	addEntry(t, ledger, 1, entity.KindIncome, p1.ID, "50.00")
	addEntry(t, ledger, 1, entity.KindIncome, p2.ID, "25.00")
	addEntry(t, ledger, 1, entity.KindExpense, p1.ID, "30.00")

	income, err := balance.GlobalTotalIncome(ctx, 1)
	if err != nil {
		t.Fatalf("GlobalTotalIncome: %v", err)
	}
	if want := mustDecimal("75.00"); !income.Equal(want) {
		t.Errorf("global income = %s, want %s", income, want)
	}

	expenses, err := balance.GlobalTotalExpenses(ctx, 1)
	if err != nil {
		t.Fatalf("GlobalTotalExpenses: %v", err)
	}
	if want := mustDecimal("30.00"); !expenses.Equal(want) {
		t.Errorf("global expenses = %s, want %s", expenses, want)
	}

	global, err := balance.GlobalBalance(ctx, 1)
	if err != nil {
		t.Fatalf("GlobalBalance: %v", err)
	}
	// 100 + 200 + 75 - 30
	if want := mustDecimal("345.00"); !global.Equal(want) {
		t.Errorf("global balance = %s, want %s", global, want)
	}
}

func TestGlobalBalanceNoProfiles(t *testing.T) {
	store := newMemStore()
	balance, _, _ := newServices(store)

	got, err := balance.GlobalBalance(context.Background(), 7)
	if err != nil {
		t.Fatalf("GlobalBalance: %v", err)
	}
	if !got.Equal(decimal.Zero) {
		t.Errorf("global balance = %s, want 0", got)
	}
}

func TestConcurrentInsertsResyncToExactSum(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	_, profiles, ledger := newServices(store)

	p := seedProfile(t, profiles, 1, "0.00")

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := ledger.Create(ctx, 1, entity.KindIncome, EntryInput{
				ProfileID:   p.ID,
				Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				Description: "concurrent",
				Amount:      mustDecimal("1.00"),
			})
			if err != nil {
				t.Errorf("concurrent create: %v", err)
			}
		}()
	}
	wg.Wait()

	fresh, err := store.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("reload profile: %v", err)
	}
	if want := mustDecimal("50.00"); !fresh.Assets.Equal(want) {
		t.Errorf("assets after %d concurrent inserts = %s, want %s", n, fresh.Assets, want)
	}
}
