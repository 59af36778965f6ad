package memory

import (
	"sync"

	"review_analyzer/internal/domain"
)

// Store is the in-memory review collection. A single mutex serializes
// Append and All so concurrent requests never observe a partially written
// slice.
type Store struct {
	mu      sync.Mutex
	reviews []domain.Review
}

// New seeds the store with the initial dataset, preserving its order.
func New(initial []domain.Review) *Store {
	s := &Store{reviews: make([]domain.Review, len(initial))}
	copy(s.reviews, initial)
	return s
}

// All returns a snapshot in insertion order. Callers own the returned slice
// and may annotate or reorder it freely.
func (s *Store) All() []domain.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Review, len(s.reviews))
	copy(out, s.reviews)
	return out
}

// Append adds one review at the end. No deduplication, no validation;
// callers validate before appending.
func (s *Store) Append(r domain.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews = append(s.reviews, r)
}

// Len reports the current number of stored reviews.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reviews)
}
