// internal/repository/material.go
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

type MaterialRepositoryIface interface {
	Create(ctx context.Context, material *model.Material) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Material, error)
	ListBySite(ctx context.Context, orgID, siteID uuid.UUID) ([]model.Material, error)
	Update(ctx context.Context, material *model.Material) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

type MaterialRepository struct {
	db *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) *MaterialRepository {
	return &MaterialRepository{db: db}
}

func (r *MaterialRepository) Create(ctx context.Context, m *model.Material) error {
	if err := conn(ctx, r.db).Create(m).Error; err != nil {
		return fmt.Errorf("creating material: %w", err)
	}
	return nil
}

func (r *MaterialRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Material, error) {
	var m model.Material
	if err := conn(ctx, r.db).Scopes(tenant(orgID)).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMaterialNotFound
		}
		return nil, fmt.Errorf("finding material: %w", err)
	}
	return &m, nil
}

func (r *MaterialRepository) ListBySite(ctx context.Context, orgID, siteID uuid.UUID) ([]model.Material, error) {
	var out []model.Material
	err := conn(ctx, r.db).Scopes(tenant(orgID)).
		Where("site_id = ?", siteID).
		Order("purchase_date DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("listing materials: %w", err)
	}
	return out, nil
}

func (r *MaterialRepository) Update(ctx context.Context, m *model.Material) error {
	m.TotalPrice = m.Quantity.Mul(m.UnitPrice)
	result := conn(ctx, r.db).Model(&model.Material{}).
		Scopes(tenant(m.OrganizationID)).
		Where("id = ?", m.ID).
		Updates(map[string]any{
			"name":          m.Name,
			"quantity":      m.Quantity,
			"unit":          m.Unit,
			"unit_price":    m.UnitPrice,
			"total_price":   m.TotalPrice,
			"supplier":      m.Supplier,
			"purchase_date": m.PurchaseDate,
		})
	if result.Error != nil {
		return fmt.Errorf("updating material: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrMaterialNotFound
	}
	return nil
}

func (r *MaterialRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	result := conn(ctx, r.db).Scopes(tenant(orgID)).Delete(&model.Material{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting material: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrMaterialNotFound
	}
	return nil
}
