// internal/repository/organization.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/sitebook/core/entitlement"
	"github.com/dangerclosesec/sitebook/internal/domain"
	"github.com/dangerclosesec/sitebook/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrganizationRepositoryIface interface {
	Create(ctx context.Context, org *model.Organization) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	UpdateBranding(ctx context.Context, id uuid.UUID, name, logoURL string) error
	UpdateSubscription(ctx context.Context, id uuid.UUID, sub entitlement.Subscription) error
}

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) Create(ctx context.Context, org *model.Organization) error {
	if err := conn(ctx, r.db).Create(org).Error; err != nil {
		return fmt.Errorf("creating organization: %w", err)
	}
	return nil
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	var org model.Organization
	if err := conn(ctx, r.db).First(&org, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("finding organization: %w", err)
	}
	return &org, nil
}

// Exists reports whether an organization with id exists.
func (r *OrganizationRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&model.Organization{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking organization: %w", err)
	}
	return count > 0, nil
}

func (r *OrganizationRepository) UpdateBranding(ctx context.Context, id uuid.UUID, name, logoURL string) error {
	result := conn(ctx, r.db).Model(&model.Organization{}).
		Where("id = ?", id).
		Updates(map[string]any{"name": name, "logo_url": logoURL})
	if result.Error != nil {
		return fmt.Errorf("updating organization: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrOrganizationNotFound
	}
	return nil
}

func (r *OrganizationRepository) UpdateSubscription(ctx context.Context, id uuid.UUID, sub entitlement.Subscription) error {
	result := conn(ctx, r.db).Model(&model.Organization{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"subscription_plan":   sub.Plan,
			"subscription_status": sub.Status,
		})
	if result.Error != nil {
		return fmt.Errorf("updating subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrOrganizationNotFound
	}
	return nil
}
