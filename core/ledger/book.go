package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/dangerclosesec/sitebook/core/optimistic"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Book is a client-side working copy of entries. Paid toggles are applied
// locally first and rolled back when persistence fails.
type Book struct {
	mu      sync.RWMutex
	entries []Entry
}

func NewBook(entries []Entry) *Book {
	cp := make([]Entry, len(entries))
	copy(cp, entries)
	return &Book{entries: cp}
}

// Entries returns a copy of the current entries.
func (b *Book) Entries() []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	cp := make([]Entry, len(b.entries))
	copy(cp, b.entries)
	return cp
}

// Unpaid returns the unpaid invoice total and count of the working copy.
func (b *Book) Unpaid() (decimal.Decimal, int) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return UnpaidInvoices(b.entries)
}

// TogglePaid flips the paid flag of entry id, then calls persist with the new
// state. A persist error restores the previous flag and is returned.
func (b *Book) TogglePaid(ctx context.Context, id uuid.UUID, persist func(ctx context.Context, e Entry) error) error {
	b.mu.RLock()
	idx := b.indexOf(id)
	b.mu.RUnlock()
	if idx < 0 {
		return fmt.Errorf("entry %s not in book", id)
	}

	var previous bool
	m := optimistic.New("toggle paid",
		func() {
			b.mu.Lock()
			previous = b.entries[idx].Paid
			b.entries[idx].Paid = !previous
			b.mu.Unlock()
		},
		func() {
			b.mu.Lock()
			b.entries[idx].Paid = previous
			b.mu.Unlock()
		},
	)

	return optimistic.Run(ctx, m, func(ctx context.Context) error {
		b.mu.RLock()
		e := b.entries[idx]
		b.mu.RUnlock()
		return persist(ctx, e)
	})
}

func (b *Book) indexOf(id uuid.UUID) int {
	for i, e := range b.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
