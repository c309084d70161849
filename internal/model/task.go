// internal/model/task.go
package model

import (
	"time"

	"github.com/dangerclosesec/sitebook/core/schedule"
	"github.com/dangerclosesec/sitebook/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskTodo TaskStatus = "todo"
	TaskDone TaskStatus = "done"
)

func (s TaskStatus) Valid() bool {
	return s == TaskTodo || s == TaskDone
}

const DefaultTaskColor = "#f97316"

type Task struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;index" json:"organization_id"`
	SiteID         *uuid.UUID `gorm:"type:uuid;index" json:"site_id,omitempty"`
	AssignedTo     *uuid.UUID `gorm:"type:uuid" json:"assigned_to,omitempty"`
	Title          string     `gorm:"type:text;not null" json:"title"`
	Description    string     `gorm:"type:text;not null" json:"description"`
	Status         TaskStatus `gorm:"type:text;not null" json:"status"`
	StartDate      time.Time  `gorm:"not null;index" json:"start_date"`
	EndDate        time.Time  `gorm:"not null" json:"end_date"`
	Color          string     `gorm:"type:text;not null" json:"color"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	Site     *Site    `gorm:"foreignKey:SiteID" json:"site,omitempty"`
	Assignee *Profile `gorm:"foreignKey:AssignedTo" json:"assignee,omitempty"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Status == "" {
		t.Status = TaskTodo
	}
	if t.Color == "" {
		t.Color = DefaultTaskColor
	}
	return nil
}

func (t *Task) BeforeSave(tx *gorm.DB) error {
	if t.EndDate.Before(t.StartDate) {
		return domain.ErrTaskRange
	}
	return nil
}

// Slot is the task's position data for the week grid.
func (t *Task) Slot() schedule.Task {
	return schedule.Task{ID: t.ID, Start: t.StartDate, End: t.EndDate}
}
