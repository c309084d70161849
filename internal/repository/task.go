// internal/repository/task.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dangerclosesec/sitebook/internal/domain"
	"github.com/dangerclosesec/sitebook/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskFilter narrows a task listing. From is inclusive, To exclusive.
type TaskFilter struct {
	From        time.Time
	To          time.Time
	Status      model.TaskStatus
	StartBefore time.Time
}

type TaskRepositoryIface interface {
	Create(ctx context.Context, t *model.Task) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Task, error)
	List(ctx context.Context, orgID uuid.UUID, filter TaskFilter) ([]model.Task, error)
	Update(ctx context.Context, t *model.Task) error
	UpdateTimes(ctx context.Context, orgID, id uuid.UUID, start, end time.Time) error
	UpdateStatus(ctx context.Context, orgID, id uuid.UUID, status model.TaskStatus) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
	Count(ctx context.Context, orgID uuid.UUID, status model.TaskStatus) (int64, error)
}

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, t *model.Task) error {
	if err := conn(ctx, r.db).Omit("Site", "Assignee").Create(t).Error; err != nil {
		return fmt.Errorf("creating task: %w", err)
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Task, error) {
	var t model.Task
	if err := conn(ctx, r.db).Scopes(tenant(orgID)).First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("finding task: %w", err)
	}
	return &t, nil
}

// List returns tasks ordered by start, with site and assignee preloaded.
func (r *TaskRepository) List(ctx context.Context, orgID uuid.UUID, filter TaskFilter) ([]model.Task, error) {
	q := conn(ctx, r.db).Scopes(tenant(orgID)).Preload("Site").Preload("Assignee")

	if !filter.From.IsZero() {
		q = q.Where("start_date >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		q = q.Where("start_date < ?", filter.To)
	}
	if !filter.StartBefore.IsZero() {
		q = q.Where("start_date < ?", filter.StartBefore)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var out []model.Task
	if err := q.Order("start_date ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return out, nil
}

func (r *TaskRepository) Update(ctx context.Context, t *model.Task) error {
	if t.EndDate.Before(t.StartDate) {
		return domain.ErrTaskRange
	}
	result := conn(ctx, r.db).Model(&model.Task{}).
		Scopes(tenant(t.OrganizationID)).
		Where("id = ?", t.ID).
		Updates(map[string]any{
			"site_id":     t.SiteID,
			"assigned_to": t.AssignedTo,
			"title":       t.Title,
			"description": t.Description,
			"status":      t.Status,
			"start_date":  t.StartDate,
			"end_date":    t.EndDate,
			"color":       t.Color,
		})
	if result.Error != nil {
		return fmt.Errorf("updating task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) UpdateTimes(ctx context.Context, orgID, id uuid.UUID, start, end time.Time) error {
	if end.Before(start) {
		return domain.ErrTaskRange
	}
	result := conn(ctx, r.db).Model(&model.Task{}).
		Scopes(tenant(orgID)).
		Where("id = ?", id).
		Updates(map[string]any{"start_date": start, "end_date": end})
	if result.Error != nil {
		return fmt.Errorf("rescheduling task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, orgID, id uuid.UUID, status model.TaskStatus) error {
	result := conn(ctx, r.db).Model(&model.Task{}).
		Scopes(tenant(orgID)).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("updating task status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	result := conn(ctx, r.db).Scopes(tenant(orgID)).Delete(&model.Task{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Count(ctx context.Context, orgID uuid.UUID, status model.TaskStatus) (int64, error) {
	var count int64
	q := conn(ctx, r.db).Model(&model.Task{}).Scopes(tenant(orgID))
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting tasks: %w", err)
	}
	return count, nil
}
