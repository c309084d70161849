// internal/repository/attendance.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/sitebook/internal/domain"
	"github.com/dangerclosesec/sitebook/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceRepositoryIface has no update: a log's rate snapshot is written
// once.
type AttendanceRepositoryIface interface {
	Create(ctx context.Context, log *model.AttendanceLog) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.AttendanceLog, error)
	ListByEmployee(ctx context.Context, orgID, employeeID uuid.UUID) ([]model.AttendanceLog, error)
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) Create(ctx context.Context, log *model.AttendanceLog) error {
	if err := conn(ctx, r.db).Omit("Profile", "Site").Create(log).Error; err != nil {
		return fmt.Errorf("creating attendance log: %w", err)
	}
	return nil
}

func (r *AttendanceRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.AttendanceLog, error) {
	var log model.AttendanceLog
	if err := conn(ctx, r.db).Scopes(tenant(orgID)).First(&log, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("finding attendance log: %w", err)
	}
	return &log, nil
}

// ListByEmployee returns the employee's logs, newest first, with site and
// profile preloaded.
func (r *AttendanceRepository) ListByEmployee(ctx context.Context, orgID, employeeID uuid.UUID) ([]model.AttendanceLog, error) {
	var out []model.AttendanceLog
	err := conn(ctx, r.db).Scopes(tenant(orgID)).
		Preload("Site").
		Preload("Profile").
		Where("user_id = ?", employeeID).
		Order("date DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("listing attendance logs: %w", err)
	}
	return out, nil
}

func (r *AttendanceRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	result := conn(ctx, r.db).Scopes(tenant(orgID)).Delete(&model.AttendanceLog{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting attendance log: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrAttendanceNotFound
	}
	return nil
}
