package application

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jcgarcia/fintrack/internal/domain/entity"
	"github.com/jcgarcia/fintrack/internal/domain/repository"
)

// memStore is an in-memory double for the profile, ledger, and balance
// repositories. Like the real implementation, every ledger mutation
// resyncs the owning profile's assets before returning.
type memStore struct {
	mu       sync.Mutex
	nextID   int64
	profiles map[int64]*entity.Profile
	entries  map[entity.EntryKind]map[int64]*entity.Entry
}

func newMemStore() *memStore {
	return &memStore{
		profiles: make(map[int64]*entity.Profile),
		entries: map[entity.EntryKind]map[int64]*entity.Entry{
			entity.KindIncome:  {},
			entity.KindExpense: {},
		},
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) balanceLocked(profileID int64) (decimal.Decimal, bool) {
	p, ok := s.profiles[profileID]
	if !ok {
		return decimal.Zero, false
	}
	b := p.InitialBalance
	for _, e := range s.entries[entity.KindIncome] {
		if e.ProfileID == profileID {
			b = b.Add(e.Amount)
		}
	}
	for _, e := range s.entries[entity.KindExpense] {
		if e.ProfileID == profileID {
			b = b.Sub(e.Amount)
		}
	}
	return b, true
}

func (s *memStore) syncLocked(profileID int64) {
	if b, ok := s.balanceLocked(profileID); ok {
		s.profiles[profileID].Assets = b
	}
}

// ProfileRepository

func (s *memStore) Create(ctx context.Context, p *entity.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.id()
	p.Assets = p.InitialBalance
	cp := *p
	s.profiles[p.ID] = &cp
	return nil
}

func (s *memStore) GetByID(ctx context.Context, id int64) (*entity.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *memStore) Update(ctx context.Context, p *entity.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[p.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *p
	s.profiles[p.ID] = &cp
	return nil
}

func (s *memStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.profiles, id)
	for _, kind := range []entity.EntryKind{entity.KindIncome, entity.KindExpense} {
		for eid, e := range s.entries[kind] {
			if e.ProfileID == id {
				delete(s.entries[kind], eid)
			}
		}
	}
	return nil
}

func (s *memStore) GetAllForUser(ctx context.Context, userID int64) ([]entity.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.Profile
	for _, p := range s.profiles {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memStore) IsOwnedByUser(ctx context.Context, profileID, userID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[profileID]
	return ok && p.UserID == userID, nil
}

// ledgerStore adapts memStore to repository.LedgerRepository. Separate
// type because Create/Update/Delete/GetByID signatures collide with the
// profile methods.
type ledgerStore struct{ *memStore }

func (s ledgerStore) Create(ctx context.Context, e *entity.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[e.ProfileID]; !ok {
		return repository.ErrNotFound
	}
	e.ID = s.id()
	cp := *e
	s.entries[e.Kind][e.ID] = &cp
	s.syncLocked(e.ProfileID)
	return nil
}

func (s ledgerStore) GetByID(ctx context.Context, kind entity.EntryKind, id int64) (*entity.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[kind][id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (s ledgerStore) Update(ctx context.Context, e *entity.Entry, previousProfileID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[e.Kind][e.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *e
	s.entries[e.Kind][e.ID] = &cp
	s.syncLocked(e.ProfileID)
	if previousProfileID != e.ProfileID {
		s.syncLocked(previousProfileID)
	}
	return nil
}

func (s ledgerStore) Delete(ctx context.Context, kind entity.EntryKind, id, profileID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[kind][id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.entries[kind], id)
	s.syncLocked(profileID)
	return nil
}

func (s ledgerStore) GetAllForUser(ctx context.Context, kind entity.EntryKind, userID int64) ([]entity.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.Entry
	for _, e := range s.entries[kind] {
		p, ok := s.profiles[e.ProfileID]
		if ok && p.UserID == userID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// balanceStore adapts memStore to repository.BalanceRepository.
type balanceStore struct{ *memStore }

func (s balanceStore) ProfileBalance(ctx context.Context, profileID int64) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.balanceLocked(profileID)
	if !ok {
		return decimal.Zero, repository.ErrNotFound
	}
	return b, nil
}

func (s balanceStore) SyncAssets(ctx context.Context, profileID int64) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.balanceLocked(profileID)
	if !ok {
		return decimal.Zero, repository.ErrNotFound
	}
	s.profiles[profileID].Assets = b
	return b, nil
}

func (s balanceStore) UserTotals(ctx context.Context, userID int64) (initial, income, expenses decimal.Decimal, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	owned := make(map[int64]bool)
	for id, p := range s.profiles {
		if p.UserID == userID {
			owned[id] = true
			initial = initial.Add(p.InitialBalance)
		}
	}
	for _, e := range s.entries[entity.KindIncome] {
		if owned[e.ProfileID] {
			income = income.Add(e.Amount)
		}
	}
	for _, e := range s.entries[entity.KindExpense] {
		if owned[e.ProfileID] {
			expenses = expenses.Add(e.Amount)
		}
	}
	return initial, income, expenses, nil
}

var (
	_ repository.ProfileRepository = (*memStore)(nil)
	_ repository.LedgerRepository  = ledgerStore{}
	_ repository.BalanceRepository = balanceStore{}
)

// newServices builds the service stack over one shared in-memory store.
func newServices(store *memStore) (*BalanceService, *ProfileService, *LedgerService) {
	balance := NewBalanceService(balanceStore{store}, nil, nil)
	profiles := NewProfileService(store, balance, nil)
	ledger := NewLedgerService(ledgerStore{store}, store, balance, nil)
	return balance, profiles, ledger
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}
