package schedule_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dangerclosesec/sitebook/core/schedule"
	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bratislava = mustLocation("Europe/Bratislava")

func mustLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone("CET", 3600)
	}
	return loc
}

// 2026-03-09 is a Monday.
func at(day, hour, minute int) time.Time {
	return time.Date(2026, 3, day, hour, minute, 0, 0, bratislava)
}

func TestWeekStart(t *testing.T) {
	monday := at(9, 0, 0)

	for _, ref := range []time.Time{at(9, 0, 0), at(11, 14, 30), at(15, 23, 59)} {
		assert.True(t, monday.Equal(schedule.WeekStart(ref)), "ref %s", ref)
	}
	assert.True(t, at(16, 0, 0).Equal(schedule.WeekStart(at(16, 7, 0))))

	start, end := schedule.Week(at(12, 10, 0))
	assert.True(t, monday.Equal(start))
	assert.True(t, at(16, 0, 0).Equal(end))

	days := schedule.WeekDays(at(12, 10, 0))
	assert.Equal(t, time.Monday, days[0].Weekday())
	assert.Equal(t, time.Sunday, days[6].Weekday())
}

func TestWeekAcrossDST(t *testing.T) {
	// Clocks go forward on 2026-03-29 in Bratislava.
	start, end := schedule.Week(time.Date(2026, 3, 26, 12, 0, 0, 0, bratislava))

	assert.Equal(t, 23, start.Day())
	assert.Equal(t, 30, end.Day())
	assert.Equal(t, 0, end.Hour())
}

func TestDayIndex(t *testing.T) {
	assert.Equal(t, 0, schedule.DayIndex(at(9, 12, 0)))
	assert.Equal(t, 2, schedule.DayIndex(at(11, 12, 0)))
	assert.Equal(t, 6, schedule.DayIndex(at(15, 12, 0)))
}

func TestPlace(t *testing.T) {
	grid := schedule.DefaultGrid()

	t.Run("monday morning", func(t *testing.T) {
		p := grid.Place(schedule.Task{Start: at(9, 9, 0), End: at(9, 11, 0)})

		assert.True(t, p.Visible)
		assert.Equal(t, 0, p.Day)
		assert.InDelta(t, 4*grid.RowHeight, p.Top, 1e-9)
		assert.InDelta(t, 2*grid.RowHeight, p.Height, 1e-9)
	})

	t.Run("fractional start", func(t *testing.T) {
		p := grid.Place(schedule.Task{Start: at(11, 7, 30), End: at(11, 8, 15)})

		assert.Equal(t, 2, p.Day)
		assert.InDelta(t, 2.5*grid.RowHeight, p.Top, 1e-9)
		assert.InDelta(t, 0.75*grid.RowHeight, p.Height, 1e-9)
	})

	t.Run("short task gets min height", func(t *testing.T) {
		p := grid.Place(schedule.Task{Start: at(9, 9, 0), End: at(9, 9, 5)})
		assert.Equal(t, grid.MinHeight, p.Height)
	})

	t.Run("before grid start is hidden", func(t *testing.T) {
		p := grid.Place(schedule.Task{Start: at(9, 4, 30), End: at(9, 6, 0)})
		assert.False(t, p.Visible)

		assert.Empty(t, grid.PlaceAll([]schedule.Task{{Start: at(9, 4, 30), End: at(9, 6, 0)}}))
	})
}

func TestGridValidate(t *testing.T) {
	assert.NoError(t, schedule.DefaultGrid().Validate())
	assert.Error(t, schedule.Grid{StartHour: 5, VisibleHours: 20, RowHeight: 64}.Validate())
	assert.Error(t, schedule.Grid{StartHour: -1, VisibleHours: 2, RowHeight: 64}.Validate())
	assert.Error(t, schedule.Grid{StartHour: 5, VisibleHours: 2, RowHeight: 0}.Validate())
	assert.Len(t, schedule.DefaultGrid().Hours(), 18)
	assert.Equal(t, 22, schedule.DefaultGrid().Hours()[17])
}

func TestReschedule(t *testing.T) {
	task := schedule.Task{ID: uuid.New(), Start: at(9, 9, 0), End: at(9, 11, 0)}

	moved, err := schedule.Reschedule(task, at(11, 0, 0), 14)
	require.NoError(t, err)

	assert.True(t, at(11, 14, 0).Equal(moved.Start))
	assert.True(t, at(11, 16, 0).Equal(moved.End))
	assert.Equal(t, task.ID, moved.ID)

	t.Run("keeps original minute", func(t *testing.T) {
		task := schedule.Task{Start: at(9, 9, 45), End: at(9, 10, 15)}
		moved, err := schedule.Reschedule(task, at(13, 0, 0), 7)
		require.NoError(t, err)
		assert.True(t, at(13, 7, 45).Equal(moved.Start))
		assert.True(t, at(13, 8, 15).Equal(moved.End))
	})

	t.Run("reads wall clock in the target zone", func(t *testing.T) {
		kolkata := time.FixedZone("IST", 5*60*60+30*60)
		utc := schedule.Task{Start: time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC), End: time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)}

		moved, err := schedule.Reschedule(utc, time.Date(2026, 3, 11, 0, 0, 0, 0, kolkata), 16)
		require.NoError(t, err)
		assert.True(t, time.Date(2026, 3, 11, 16, 30, 0, 0, kolkata).Equal(moved.Start))
		assert.Equal(t, time.Hour, moved.Duration())
	})

	t.Run("invalid hour", func(t *testing.T) {
		_, err := schedule.Reschedule(task, at(13, 0, 0), 24)
		assert.ErrorIs(t, err, schedule.ErrInvalidHour)
	})
}

func TestPlaceInZone(t *testing.T) {
	grid := schedule.DefaultGrid()
	task := schedule.Task{ID: uuid.New(), Start: time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC), End: time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)}

	assert.Equal(t, 3*grid.RowHeight, grid.Place(task).Top)

	p := grid.Place(task.In(bratislava))
	assert.Equal(t, 4*grid.RowHeight, p.Top)
	assert.Equal(t, 2*grid.RowHeight, p.Height)
}

func TestNewSlot(t *testing.T) {
	start, end, err := schedule.NewSlot(at(12, 17, 42), 8)
	require.NoError(t, err)
	assert.True(t, at(12, 8, 0).Equal(start))
	assert.True(t, at(12, 9, 0).Equal(end))
}

func TestProperty_ReschedulePreservesDuration(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("duration and minute survive a move", prop.ForAll(
		func(startMinute, durationMinutes, targetDay, targetHour int) bool {
			start := at(9, 0, 0).Add(time.Duration(startMinute) * time.Minute)
			task := schedule.Task{Start: start, End: start.Add(time.Duration(durationMinutes) * time.Minute)}

			moved, err := schedule.Reschedule(task, at(9+targetDay, 0, 0), targetHour)
			if err != nil {
				return false
			}
			return moved.Duration() == task.Duration() &&
				moved.Start.Minute() == task.Start.Minute() &&
				moved.Start.Hour() == targetHour &&
				moved.Start.Day() == 9+targetDay
		},
		gen.IntRange(0, 7*24*60-1),
		gen.IntRange(0, 12*60),
		gen.IntRange(0, 6),
		gen.IntRange(5, 22),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestBoardMove(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	grid := schedule.DefaultGrid()

	t.Run("persisted move stays", func(t *testing.T) {
		board := schedule.NewBoard(grid, []schedule.Task{{ID: id, Start: at(9, 9, 0), End: at(9, 11, 0)}})

		moved, err := board.Move(ctx, id, at(11, 0, 0), 14, func(ctx context.Context, task schedule.Task) error {
			placements := board.Placements()
			require.Len(t, placements, 1)
			assert.Equal(t, 2, placements[0].Day, "board shows the move before persistence completes")
			return nil
		})

		require.NoError(t, err)
		assert.True(t, at(11, 14, 0).Equal(moved.Start))
		assert.True(t, at(11, 14, 0).Equal(board.Tasks()[0].Start))
	})

	t.Run("failed persist restores position", func(t *testing.T) {
		board := schedule.NewBoard(grid, []schedule.Task{{ID: id, Start: at(9, 9, 0), End: at(9, 11, 0)}})
		boom := errors.New("offline")

		_, err := board.Move(ctx, id, at(11, 0, 0), 14, func(ctx context.Context, task schedule.Task) error { return boom })

		require.ErrorIs(t, err, boom)
		assert.True(t, at(9, 9, 0).Equal(board.Tasks()[0].Start))
		assert.True(t, at(9, 11, 0).Equal(board.Tasks()[0].End))
	})

	t.Run("unknown task", func(t *testing.T) {
		board := schedule.NewBoard(grid, nil)
		_, err := board.Move(ctx, id, at(11, 0, 0), 14, func(ctx context.Context, task schedule.Task) error { return nil })
		assert.Error(t, err)
	})
}
