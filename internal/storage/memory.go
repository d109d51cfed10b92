package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryStore is a thread-safe store used when a database is not configured.
type InMemoryStore struct {
	mu    sync.RWMutex
	prefs map[string]Preferences
	items []BudgetItem
}

// NewInMemoryStore constructs an empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		prefs: make(map[string]Preferences),
		items: make([]BudgetItem, 0),
	}
}

// SavePreferences stores or replaces the record under the given key.
func (s *InMemoryStore) SavePreferences(_ context.Context, key string, prefs Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs[key] = prefs
	return nil
}

// GetPreferences returns the record stored under the given key.
func (s *InMemoryStore) GetPreferences(_ context.Context, key string) (Preferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prefs, ok := s.prefs[key]
	if !ok {
		return Preferences{}, ErrNotFound
	}
	return prefs, nil
}

// CreateBudgetItem appends a budget item, assigning an ID when absent.
func (s *InMemoryStore) CreateBudgetItem(_ context.Context, item BudgetItem) (BudgetItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	s.items = append(s.items, item)
	return item, nil
}

// ListBudgetItems returns a snapshot of items belonging to the given plan.
func (s *InMemoryStore) ListBudgetItems(_ context.Context, planKey string) ([]BudgetItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]BudgetItem, 0)
	for _, item := range s.items {
		if item.PlanKey == planKey {
			items = append(items, item)
		}
	}
	return items, nil
}

// UpdateBudgetItem replaces the stored item matching the incoming ID.
func (s *InMemoryStore) UpdateBudgetItem(_ context.Context, item BudgetItem) (BudgetItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for idx, existing := range s.items {
		if existing.ID == item.ID {
			item.PlanKey = existing.PlanKey
			item.CreatedAt = existing.CreatedAt
			s.items[idx] = item
			return item, nil
		}
	}
	return BudgetItem{}, ErrNotFound
}

// DeleteBudgetItem removes an item by ID.
func (s *InMemoryStore) DeleteBudgetItem(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for idx, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:idx], s.items[idx+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Close satisfies the Store interface.
func (s *InMemoryStore) Close() {}
