package server

import (
	"sync"

	"github.com/google/uuid"

	"itemctl/internal/items"
)

// Store is an ordered in-memory item collection with server-assigned ids.
type Store struct {
	mu   sync.Mutex
	list []items.Item
}

// NewStore returns an empty store.
func NewStore() *Store { return &Store{} }

// Seed appends sample records, assigning ids.
func (s *Store) Seed(seed ...items.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range seed {
		it.ID = uuid.NewString()
		s.list = append(s.list, it)
	}
}

// List returns a copy of the collection in insertion order.
func (s *Store) List() []items.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]items.Item, len(s.list))
	copy(out, s.list)
	return out
}

// Create assigns a fresh id and appends the item.
func (s *Store) Create(it items.Item) items.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	it.ID = uuid.NewString()
	s.list = append(s.list, it)
	return it
}

// Update replaces the item with the given id, keeping its position.
func (s *Store) Update(id string, it items.Item) (items.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.list {
		if s.list[i].ID == id {
			it.ID = id
			s.list[i] = it
			return it, true
		}
	}
	return items.Item{}, false
}

// Delete removes the item with the given id.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.list {
		if s.list[i].ID == id {
			s.list = append(s.list[:i], s.list[i+1:]...)
			return true
		}
	}
	return false
}
