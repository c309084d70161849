package schedule

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dangerclosesec/sitebook/core/optimistic"
	"github.com/google/uuid"
)

// Board is a client-side week view. Moves are visible immediately and are
// rolled back when persisting them fails.
type Board struct {
	mu    sync.RWMutex
	grid  Grid
	tasks []Task
}

func NewBoard(grid Grid, tasks []Task) *Board {
	cp := make([]Task, len(tasks))
	copy(cp, tasks)
	return &Board{grid: grid, tasks: cp}
}

// Tasks returns a copy of the board's tasks.
func (b *Board) Tasks() []Task {
	b.mu.RLock()
	defer b.mu.RUnlock()

	cp := make([]Task, len(b.tasks))
	copy(cp, b.tasks)
	return cp
}

// Placements positions the current tasks on the grid.
func (b *Board) Placements() []Placement {
	return b.grid.PlaceAll(b.Tasks())
}

// Move reschedules task id to day at hour, then calls persist with the moved
// task. When persist fails the previous times are restored and the error is
// returned.
func (b *Board) Move(ctx context.Context, id uuid.UUID, day time.Time, hour int, persist func(ctx context.Context, t Task) error) (Task, error) {
	b.mu.RLock()
	idx := -1
	for i, t := range b.tasks {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		b.mu.RUnlock()
		return Task{}, fmt.Errorf("task %s not on board", id)
	}
	previous := b.tasks[idx]
	b.mu.RUnlock()

	moved, err := Reschedule(previous, day, hour)
	if err != nil {
		return previous, err
	}

	m := optimistic.New("move task",
		func() {
			b.mu.Lock()
			b.tasks[idx] = moved
			b.mu.Unlock()
		},
		func() {
			b.mu.Lock()
			b.tasks[idx] = previous
			b.mu.Unlock()
		},
	)

	if err := optimistic.Run(ctx, m, func(ctx context.Context) error { return persist(ctx, moved) }); err != nil {
		return previous, err
	}
	return moved, nil
}
