package registry

import (
	"context"
	"sync"
)

// MemoryStore is a thread-safe in-memory Store. It backs local runs
// without a database and doubles as the test fake.
type MemoryStore struct {
	mu          sync.RWMutex
	assignments map[string]*Assignment
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		assignments: make(map[string]*Assignment),
	}
}

// Get returns the assignment for userERN, or ErrNotAssigned.
func (s *MemoryStore) Get(_ context.Context, userERN string) (*Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.assignments[userERN]
	if !ok {
		return nil, ErrNotAssigned
	}
	return copyAssignment(a), nil
}

// Put stores or overwrites the assignment.
func (s *MemoryStore) Put(_ context.Context, a *Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assignments[a.UserERN] = copyAssignment(a)
	return nil
}

// Delete removes the assignment. Absent keys are a no-op.
func (s *MemoryStore) Delete(_ context.Context, userERN string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.assignments, userERN)
	return nil
}

// copyAssignment deep-copies a, scenario bytes included, so stored and
// returned values never share memory with the caller.
func copyAssignment(a *Assignment) *Assignment {
	cp := *a
	if a.Scenario != nil {
		cp.Scenario = append([]byte(nil), a.Scenario...)
	}
	return &cp
}

// Count returns the number of stored assignments.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.assignments)
}

var _ Store = (*MemoryStore)(nil)
