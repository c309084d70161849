// Package schedule maps tasks onto a weekly time grid and recomputes task
// times for drag-to-reschedule.
package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultStartHour    = 5
	DefaultVisibleHours = 18
	DefaultRowHeight    = 64
	DefaultMinHeight    = 20
)

var ErrInvalidHour = errors.New("hour must be between 0 and 23")

// Grid is the geometry of the week view: the first visible hour, how many
// hours are visible, the height of one hour row and the smallest height a
// task may be drawn with.
type Grid struct {
	StartHour    int     `json:"start_hour"`
	VisibleHours int     `json:"visible_hours"`
	RowHeight    float64 `json:"row_height"`
	MinHeight    float64 `json:"min_height"`
}

func DefaultGrid() Grid {
	return Grid{
		StartHour:    DefaultStartHour,
		VisibleHours: DefaultVisibleHours,
		RowHeight:    DefaultRowHeight,
		MinHeight:    DefaultMinHeight,
	}
}

func (g Grid) Validate() error {
	if g.StartHour < 0 || g.StartHour > 23 {
		return fmt.Errorf("grid start hour %d: %w", g.StartHour, ErrInvalidHour)
	}
	if g.VisibleHours < 1 || g.StartHour+g.VisibleHours > 24 {
		return fmt.Errorf("grid shows %d hours from %d:00, past midnight", g.VisibleHours, g.StartHour)
	}
	if g.RowHeight <= 0 {
		return errors.New("grid row height must be positive")
	}
	if g.MinHeight < 0 {
		return errors.New("grid min height must not be negative")
	}
	return nil
}

// Hours lists the visible hour labels.
func (g Grid) Hours() []int {
	hours := make([]int, g.VisibleHours)
	for i := range hours {
		hours[i] = g.StartHour + i
	}
	return hours
}

// WeekStart returns Monday 00:00 of the week containing ref, in ref's location.
func WeekStart(ref time.Time) time.Time {
	midnight := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	return midnight.AddDate(0, 0, -DayIndex(ref))
}

// Week returns the half-open range [Monday 00:00, next Monday 00:00) containing ref.
func Week(ref time.Time) (time.Time, time.Time) {
	start := WeekStart(ref)
	return start, start.AddDate(0, 0, 7)
}

// WeekDays returns the seven midnights of the week containing ref, Monday first.
func WeekDays(ref time.Time) [7]time.Time {
	var days [7]time.Time
	start := WeekStart(ref)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// DayIndex is the column of t with Monday as 0 and Sunday as 6.
func DayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// Task is the scheduling-relevant part of a task record.
type Task struct {
	ID    uuid.UUID `json:"id"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Duration is End - Start, never negative.
func (t Task) Duration() time.Duration {
	if d := t.End.Sub(t.Start); d > 0 {
		return d
	}
	return 0
}

// In returns t with its times expressed in loc. The grid reads wall-clock
// hours, so tasks must be placed in the zone the week was computed in.
func (t Task) In(loc *time.Location) Task {
	return Task{ID: t.ID, Start: t.Start.In(loc), End: t.End.In(loc)}
}

// Placement is where a task is drawn on the grid.
type Placement struct {
	TaskID  uuid.UUID `json:"task_id"`
	Day     int       `json:"day"`
	Top     float64   `json:"top"`
	Height  float64   `json:"height"`
	Visible bool      `json:"visible"`
}

// Place positions t on the grid. Tasks starting before the grid's first hour
// are reported as not visible instead of being clipped.
func (g Grid) Place(t Task) Placement {
	start := t.Start
	hour := float64(start.Hour()) + float64(start.Minute())/60 + float64(start.Second())/3600

	p := Placement{
		TaskID: t.ID,
		Day:    DayIndex(start),
		Top:    (hour - float64(g.StartHour)) * g.RowHeight,
		Height: t.Duration().Hours() * g.RowHeight,
	}
	if p.Height < g.MinHeight {
		p.Height = g.MinHeight
	}
	p.Visible = p.Top >= 0
	return p
}

// PlaceAll positions every task, keeping only visible placements.
func (g Grid) PlaceAll(tasks []Task) []Placement {
	out := make([]Placement, 0, len(tasks))
	for _, t := range tasks {
		if p := g.Place(t); p.Visible {
			out = append(out, p)
		}
	}
	return out
}

// Reschedule moves t to day at hour in day's location, keeping its original
// minute and its duration.
func Reschedule(t Task, day time.Time, hour int) (Task, error) {
	if hour < 0 || hour > 23 {
		return t, ErrInvalidHour
	}
	t = t.In(day.Location())

	start := time.Date(day.Year(), day.Month(), day.Day(), hour, t.Start.Minute(), 0, 0, day.Location())
	return Task{ID: t.ID, Start: start, End: start.Add(t.Duration())}, nil
}

// NewSlot returns the default time range of a task created from an empty
// cell: the cell's hour with minutes zeroed, lasting one hour.
func NewSlot(day time.Time, hour int) (time.Time, time.Time, error) {
	if hour < 0 || hour > 23 {
		return time.Time{}, time.Time{}, ErrInvalidHour
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
	return start, start.Add(time.Hour), nil
}
