package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dangerclosesec/sitebook/core/schedule"
	"github.com/dangerclosesec/sitebook/internal/domain"
	"github.com/dangerclosesec/sitebook/internal/model"
	"github.com/dangerclosesec/sitebook/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type TaskService struct {
	tasks    repository.TaskRepositoryIface
	sites    repository.SiteRepositoryIface
	profiles repository.ProfileRepositoryIface
	grid     schedule.Grid
	validate *validator.Validate
}

// NewTaskService returns a task service drawing the calendar with grid.
func NewTaskService(
	tasks repository.TaskRepositoryIface,
	sites repository.SiteRepositoryIface,
	profiles repository.ProfileRepositoryIface,
	grid schedule.Grid,
) (*TaskService, error) {
	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("invalid calendar grid: %w", err)
	}
	return &TaskService{
		tasks:    tasks,
		sites:    sites,
		profiles: profiles,
		grid:     grid,
		validate: newValidator(),
	}, nil
}

// Calendar is one week of the task board.
type Calendar struct {
	Zone       string               `json:"zone"`
	From       time.Time            `json:"from"`
	To         time.Time            `json:"to"`
	Days       [7]time.Time         `json:"days"`
	Hours      []int                `json:"hours"`
	Grid       schedule.Grid        `json:"grid"`
	Tasks      []model.Task         `json:"tasks"`
	Placements []schedule.Placement `json:"placements"`
}

// Calendar returns the week containing ref with the tasks starting in it.
// Week bounds and placements use ref's location. Tasks that start before the
// first visible hour are listed but not placed.
func (s *TaskService) Calendar(ctx context.Context, orgID uuid.UUID, ref time.Time) (*Calendar, error) {
	loc := ref.Location()
	from, to := schedule.Week(ref)

	tasks, err := s.tasks.List(ctx, orgID, repository.TaskFilter{From: from, To: to})
	if err != nil {
		return nil, err
	}

	slots := make([]schedule.Task, len(tasks))
	for i := range tasks {
		slots[i] = tasks[i].Slot().In(loc)
	}

	return &Calendar{
		Zone:       loc.String(),
		From:       from,
		To:         to,
		Days:       schedule.WeekDays(ref),
		Hours:      s.grid.Hours(),
		Grid:       s.grid,
		Tasks:      tasks,
		Placements: s.grid.PlaceAll(slots),
	}, nil
}

// SlotInput is an empty calendar cell a task was created from.
type SlotInput struct {
	Day  time.Time `json:"day"`
	Hour int       `json:"hour" validate:"min=0,max=23"`
}

// TaskInput creates or replaces a task. Either StartDate or Slot places it;
// a missing end makes the task one hour long.
type TaskInput struct {
	SiteID      *uuid.UUID       `json:"site_id"`
	AssignedTo  *uuid.UUID       `json:"assigned_to"`
	Title       string           `json:"title" validate:"required,max=200"`
	Description string           `json:"description"`
	Status      model.TaskStatus `json:"status"`
	StartDate   time.Time        `json:"start_date"`
	EndDate     *time.Time       `json:"end_date"`
	Color       string           `json:"color" validate:"omitempty,hexcolor"`
	Slot        *SlotInput       `json:"slot"`
}

func (s *TaskService) resolve(ctx context.Context, orgID uuid.UUID, input TaskInput) (time.Time, time.Time, error) {
	if err := validateInput(s.validate, input); err != nil {
		return time.Time{}, time.Time{}, err
	}
	if input.Status != "" && !input.Status.Valid() {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: unknown task status %q", domain.ErrInvalidInput, input.Status)
	}
	if input.SiteID != nil {
		if _, err := s.sites.FindByID(ctx, orgID, *input.SiteID); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if input.AssignedTo != nil {
		if _, err := s.profiles.FindByID(ctx, orgID, *input.AssignedTo); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	start, end := input.StartDate, time.Time{}
	if input.Slot != nil {
		if err := validateInput(s.validate, *input.Slot); err != nil {
			return time.Time{}, time.Time{}, err
		}
		var err error
		if start, end, err = schedule.NewSlot(input.Slot.Day, input.Slot.Hour); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	}
	if start.IsZero() {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date is required", domain.ErrInvalidInput)
	}

	switch {
	case input.EndDate != nil:
		end = *input.EndDate
	case end.IsZero():
		end = start.Add(time.Hour)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, domain.ErrTaskRange
	}
	return start, end, nil
}

func (s *TaskService) Create(ctx context.Context, orgID uuid.UUID, input TaskInput) (*model.Task, error) {
	start, end, err := s.resolve(ctx, orgID, input)
	if err != nil {
		return nil, err
	}

	t := &model.Task{
		OrganizationID: orgID,
		SiteID:         input.SiteID,
		AssignedTo:     input.AssignedTo,
		Title:          input.Title,
		Description:    input.Description,
		Status:         input.Status,
		StartDate:      start,
		EndDate:        end,
		Color:          input.Color,
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TaskService) Get(ctx context.Context, orgID, id uuid.UUID) (*model.Task, error) {
	return s.tasks.FindByID(ctx, orgID, id)
}

func (s *TaskService) Update(ctx context.Context, orgID, id uuid.UUID, input TaskInput) (*model.Task, error) {
	start, end, err := s.resolve(ctx, orgID, input)
	if err != nil {
		return nil, err
	}

	t, err := s.tasks.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	t.SiteID = input.SiteID
	t.AssignedTo = input.AssignedTo
	t.Title = input.Title
	t.Description = input.Description
	t.StartDate = start
	t.EndDate = end
	if input.Status != "" {
		t.Status = input.Status
	}
	if input.Color != "" {
		t.Color = input.Color
	}

	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TaskService) UpdateStatus(ctx context.Context, orgID, id uuid.UUID, status model.TaskStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown task status %q", domain.ErrInvalidInput, status)
	}
	return s.tasks.UpdateStatus(ctx, orgID, id, status)
}

// RescheduleInput is a drop target: a calendar day and an hour row. The hour
// is read in the zone of Day.
type RescheduleInput struct {
	Day  time.Time `json:"day" validate:"required"`
	Hour int       `json:"hour" validate:"min=0,max=23"`
}

// Reschedule moves a task to another cell, keeping its start minute and its
// duration.
func (s *TaskService) Reschedule(ctx context.Context, orgID, id uuid.UUID, input RescheduleInput) (*model.Task, error) {
	if err := validateInput(s.validate, input); err != nil {
		return nil, err
	}

	t, err := s.tasks.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	moved, err := schedule.Reschedule(t.Slot(), input.Day, input.Hour)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if err := s.tasks.UpdateTimes(ctx, orgID, id, moved.Start, moved.End); err != nil {
		return nil, err
	}

	t.StartDate = moved.Start
	t.EndDate = moved.End
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	return s.tasks.Delete(ctx, orgID, id)
}
