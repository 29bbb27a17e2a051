// Package memoryrepo keeps the ledger tables in process memory. Transactions
// hold a per-user lock from EnsureUserBalance or LockUserBalance until they end and undo their
// writes on rollback, the way a row lock and a Postgres rollback would.
package memoryrepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/GlebRadaev/ecomarket/internal/domain"
	"github.com/GlebRadaev/ecomarket/internal/pg"
)

type Store struct {
	mu sync.Mutex

	balances    map[int]domain.AccountBalance
	history     []domain.HistoryEntry
	rewards     map[int]domain.Reward
	redemptions map[string]domain.Redemption

	userLocks map[int]*sync.Mutex
	nextID    int64
	now       func() time.Time

	appendErr error
}

func New() *Store {
	return &Store{
		balances:    make(map[int]domain.AccountBalance),
		rewards:     make(map[int]domain.Reward),
		redemptions: make(map[string]domain.Redemption),
		userLocks:   make(map[int]*sync.Mutex),
		now:         time.Now,
	}
}

// SetClock replaces the time source used for created_at stamps.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
}

// FailAppends makes every following history append return err. Pass nil to reset.
func (s *Store) FailAppends(err error) {
	s.mu.Lock()
	s.appendErr = err
	s.mu.Unlock()
}

func (s *Store) PutReward(r domain.Reward) {
	s.mu.Lock()
	s.rewards[r.ID] = r
	s.mu.Unlock()
}

// SetBalance writes a raw balance, bypassing every check.
func (s *Store) SetBalance(userID int, balance int64) {
	s.mu.Lock()
	s.balances[userID] = domain.AccountBalance{ID: userID, UserID: userID, Balance: balance, UpdatedAt: s.now()}
	s.mu.Unlock()
}

func (s *Store) HistoryCount(userID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, e := range s.history {
		if e.UserID == userID {
			n++
		}
	}
	return n
}

func (s *Store) RedemptionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.redemptions)
}

func (s *Store) TXManager() pg.TXManager {
	return &txManager{store: s}
}

func (s *Store) GetUserBalance(_ context.Context, userID int) (*domain.AccountBalance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.balances[userID]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

// EnsureUserBalance takes the user's lock before inserting, so a second
// transaction waits for the first one's insert to commit or roll back, as
// it would on Postgres' ON CONFLICT.
func (s *Store) EnsureUserBalance(ctx context.Context, userID int) error {
	if tx, ok := fromContext(ctx); ok {
		tx.lock(userID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.balances[userID]; ok {
		return nil
	}
	s.balances[userID] = domain.AccountBalance{ID: userID, UserID: userID, UpdatedAt: s.now()}
	record(ctx, func() { delete(s.balances, userID) })
	return nil
}

func (s *Store) LockUserBalance(ctx context.Context, userID int) (*domain.AccountBalance, error) {
	if tx, ok := fromContext(ctx); ok {
		tx.lock(userID)
	}
	return s.GetUserBalance(ctx, userID)
}

func (s *Store) UpdateUserBalance(ctx context.Context, userID int, balance int64) (*domain.AccountBalance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.balances[userID]
	if !ok {
		return nil, errRowMissing
	}
	next := prev
	next.Balance = balance
	next.UpdatedAt = s.now()
	s.balances[userID] = next
	record(ctx, func() { s.balances[userID] = prev })
	return &next, nil
}

func (s *Store) Append(ctx context.Context, entry *domain.HistoryEntry) (*domain.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.appendErr != nil {
		return nil, s.appendErr
	}
	s.nextID++
	entry.ID = s.nextID
	entry.CreatedAt = s.now()
	s.history = append(s.history, *entry)
	id := entry.ID
	record(ctx, func() {
		for i := range s.history {
			if s.history[i].ID == id {
				s.history = append(s.history[:i], s.history[i+1:]...)
				return
			}
		}
	})
	return entry, nil
}

func (s *Store) ListByUserID(_ context.Context, userID, limit int) ([]domain.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := make([]domain.HistoryEntry, 0)
	for _, e := range s.history {
		if e.UserID == userID {
			entries = append(entries, e)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].ID > entries[j].ID
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *Store) ExistsByReference(_ context.Context, userID int, reason string, reference *string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.history {
		if e.UserID == userID && e.Reason == reason && sameReference(e.Reference, reference) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) ExistsInPeriod(_ context.Context, userID int, reason string, from, to time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.history {
		if e.UserID == userID && e.Reason == reason && !e.CreatedAt.Before(from) && e.CreatedAt.Before(to) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) FindActiveByID(_ context.Context, id int) (*domain.Reward, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rewards[id]
	if !ok || !r.Active {
		return nil, nil
	}
	return &r, nil
}

func (s *Store) Create(ctx context.Context, redemption *domain.Redemption) (*domain.Redemption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.redemptions[redemption.Code]; ok {
		return nil, errDuplicateCode
	}
	s.nextID++
	redemption.ID = int(s.nextID)
	redemption.RedeemedAt = s.now()
	s.redemptions[redemption.Code] = *redemption
	code := redemption.Code
	record(ctx, func() { delete(s.redemptions, code) })
	return redemption, nil
}

func (s *Store) userLock(userID int) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.userLocks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.userLocks[userID] = l
	}
	return l
}

func sameReference(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
