// Package optimistic records local mutations that are applied before they are
// persisted, together with the compensating action that undoes them.
package optimistic

import (
	"context"
	"fmt"
	"sync"
)

// Mutation is a reversible local change. Apply and Revert each run at most
// once per application, so a failed persist restores the exact prior state.
type Mutation struct {
	Name string

	mu      sync.Mutex
	apply   func()
	revert  func()
	applied bool
}

// New returns a Mutation named name. apply performs the local change and
// revert restores the state captured before it.
func New(name string, apply, revert func()) *Mutation {
	return &Mutation{Name: name, apply: apply, revert: revert}
}

// Apply performs the local change. A second call is a no-op.
func (m *Mutation) Apply() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.applied {
		return
	}
	m.apply()
	m.applied = true
}

// Revert undoes an applied change. Reverting an unapplied mutation is a no-op.
func (m *Mutation) Revert() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.applied {
		return
	}
	m.revert()
	m.applied = false
}

// Applied reports whether the local change is currently in effect.
func (m *Mutation) Applied() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.applied
}

// Run applies m, then calls persist. When persist fails the mutation is
// reverted and the error is returned to the caller to surface.
func Run(ctx context.Context, m *Mutation, persist func(ctx context.Context) error) error {
	m.Apply()

	if err := persist(ctx); err != nil {
		m.Revert()
		return fmt.Errorf("%s: %w", m.Name, err)
	}

	return nil
}
