// internal/repository/profile.go
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

type ProfileRepositoryIface interface {
	Create(ctx context.Context, profile *model.Profile) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Profile, error)
	FindByIdentity(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	List(ctx context.Context, orgID uuid.UUID, active bool) ([]model.Profile, error)
	Update(ctx context.Context, profile *model.Profile) error
	SetActive(ctx context.Context, orgID, id uuid.UUID, active bool) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
	CountActive(ctx context.Context, orgID uuid.UUID) (int64, error)
}

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *model.Profile) error {
	if err := conn(ctx, r.db).Create(profile).Error; err != nil {
		return fmt.Errorf("creating profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	err := conn(ctx, r.db).Scopes(tenant(orgID)).First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("finding profile: %w", err)
	}
	return &profile, nil
}

// FindByIdentity resolves a signed-in identity to its membership. It is the
// only unscoped lookup and is used to establish the tenant of a session.
func (r *ProfileRepository) FindByIdentity(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	if err := conn(ctx, r.db).First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("finding profile: %w", err)
	}
	return &profile, nil
}

// List returns the organization's active or archived members ordered by name.
func (r *ProfileRepository) List(ctx context.Context, orgID uuid.UUID, active bool) ([]model.Profile, error) {
	var profiles []model.Profile
	err := conn(ctx, r.db).Scopes(tenant(orgID)).
		Where("is_active = ?", active).
		Order("full_name ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	return profiles, nil
}

// Update saves the editable member fields. The organization never changes.
func (r *ProfileRepository) Update(ctx context.Context, profile *model.Profile) error {
	result := conn(ctx, r.db).Model(&model.Profile{}).
		Scopes(tenant(profile.OrganizationID)).
		Where("id = ?", profile.ID).
		Updates(map[string]any{
			"email":       profile.Email,
			"full_name":   profile.FullName,
			"phone":       profile.Phone,
			"role":        profile.Role,
			"hourly_rate": profile.HourlyRate,
			"settings":    profile.Settings,
		})
	if result.Error != nil {
		return fmt.Errorf("updating profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepository) SetActive(ctx context.Context, orgID, id uuid.UUID, active bool) error {
	result := conn(ctx, r.db).Model(&model.Profile{}).
		Scopes(tenant(orgID)).
		Where("id = ?", id).
		Update("is_active", active)
	if result.Error != nil {
		return fmt.Errorf("updating profile status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

// Delete removes an archived member. Active members are refused.
func (r *ProfileRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		var profile model.Profile
		if err := tx.Scopes(tenant(orgID)).First(&profile, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrProfileNotFound
			}
			return fmt.Errorf("finding profile: %w", err)
		}
		if profile.IsActive {
			return domain.ErrProfileActive
		}

		if err := tx.Scopes(tenant(orgID)).Where("user_id = ?", id).Delete(&model.AttendanceLog{}).Error; err != nil {
			return fmt.Errorf("deleting attendance logs: %w", err)
		}
		if err := tx.Model(&model.Task{}).Scopes(tenant(orgID)).Where("assigned_to = ?", id).Update("assigned_to", nil).Error; err != nil {
			return fmt.Errorf("unassigning tasks: %w", err)
		}
		if err := tx.Model(&model.Transaction{}).Scopes(tenant(orgID)).Where("employee_id = ?", id).Update("employee_id", nil).Error; err != nil {
			return fmt.Errorf("detaching payouts: %w", err)
		}
		if err := tx.Scopes(tenant(orgID)).Delete(&model.Profile{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting profile: %w", err)
		}
		return nil
	})
}

func (r *ProfileRepository) CountActive(ctx context.Context, orgID uuid.UUID) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&model.Profile{}).
		Scopes(tenant(orgID)).
		Where("is_active = ?", true).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting profiles: %w", err)
	}
	return count, nil
}
