// Package registry maps user ERNs to their assigned mock scenario. The
// backing store is a single-key key-value table: every operation touches
// exactly one row, and the store's own atomicity is the only guarantee
// callers get or need.
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNotAssigned is returned by Get when the user has no scenario.
var ErrNotAssigned = errors.New("no scenario assigned")

// Assignment is one user's active scenario, as stored.
type Assignment struct {
	UserERN      string          `json:"user_ern"`
	AssignmentID string          `json:"assignment_id"`
	Scenario     json.RawMessage `json:"scenario_config"`
	AssignedAt   time.Time       `json:"assigned_at"`
}

// Store is the narrow key-value contract the registry runs on. Put
// overwrites, Delete is a silent no-op on absent keys, and Get signals
// absence with ErrNotAssigned.
type Store interface {
	Get(ctx context.Context, userERN string) (*Assignment, error)
	Put(ctx context.Context, a *Assignment) error
	Delete(ctx context.Context, userERN string) error
}

// Registry implements assign/unassign/get on top of a Store.
type Registry struct {
	store Store
}

// New creates a Registry over the given store.
func New(store Store) *Registry {
	return &Registry{store: store}
}

// Assign upserts the user's scenario. Reassigning overwrites the prior
// scenario without error. Returns the stored assignment, including the
// freshly minted assignment ID.
func (r *Registry) Assign(ctx context.Context, userERN string, scenario json.RawMessage) (*Assignment, error) {
	if userERN == "" {
		return nil, fmt.Errorf("user_ern must not be empty")
	}
	if len(scenario) == 0 {
		return nil, fmt.Errorf("scenario must not be empty")
	}

	a := &Assignment{
		UserERN:      userERN,
		AssignmentID: uuid.NewString(),
		Scenario:     scenario,
		AssignedAt:   time.Now().UTC(),
	}
	if err := r.store.Put(ctx, a); err != nil {
		return nil, fmt.Errorf("assign scenario to %s: %w", userERN, err)
	}
	return a, nil
}

// Unassign removes the user's scenario. Removing a user with no
// assignment succeeds silently.
func (r *Registry) Unassign(ctx context.Context, userERN string) error {
	if userERN == "" {
		return fmt.Errorf("user_ern must not be empty")
	}
	if err := r.store.Delete(ctx, userERN); err != nil {
		return fmt.Errorf("unassign scenario from %s: %w", userERN, err)
	}
	return nil
}

// Get returns the user's current assignment, or ErrNotAssigned.
func (r *Registry) Get(ctx context.Context, userERN string) (*Assignment, error) {
	if userERN == "" {
		return nil, fmt.Errorf("user_ern must not be empty")
	}
	return r.store.Get(ctx, userERN)
}
