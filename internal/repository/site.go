// internal/repository/site.go
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

type SiteRepositoryIface interface {
	Create(ctx context.Context, site *model.Site) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Site, error)
	List(ctx context.Context, orgID uuid.UUID, statuses ...model.SiteStatus) ([]model.Site, error)
	Update(ctx context.Context, site *model.Site) error
	UpdateStatus(ctx context.Context, orgID, id uuid.UUID, status model.SiteStatus) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
	Count(ctx context.Context, orgID uuid.UUID, statuses ...model.SiteStatus) (int64, error)
}

type SiteRepository struct {
	db *gorm.DB
}

func NewSiteRepository(db *gorm.DB) *SiteRepository {
	return &SiteRepository{db: db}
}

func (r *SiteRepository) Create(ctx context.Context, site *model.Site) error {
	if err := conn(ctx, r.db).Create(site).Error; err != nil {
		return fmt.Errorf("creating site: %w", err)
	}
	return nil
}

func (r *SiteRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Site, error) {
	var site model.Site
	if err := conn(ctx, r.db).Scopes(tenant(orgID)).First(&site, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSiteNotFound
		}
		return nil, fmt.Errorf("finding site: %w", err)
	}
	return &site, nil
}

// List returns the organization's sites, newest first, optionally limited to
// the given statuses.
func (r *SiteRepository) List(ctx context.Context, orgID uuid.UUID, statuses ...model.SiteStatus) ([]model.Site, error) {
	var sites []model.Site
	q := conn(ctx, r.db).Scopes(tenant(orgID))
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}
	if err := q.Order("created_at DESC").Find(&sites).Error; err != nil {
		return nil, fmt.Errorf("listing sites: %w", err)
	}
	return sites, nil
}

func (r *SiteRepository) Update(ctx context.Context, site *model.Site) error {
	result := conn(ctx, r.db).Model(&model.Site{}).
		Scopes(tenant(site.OrganizationID)).
		Where("id = ?", site.ID).
		Updates(map[string]any{
			"name":        site.Name,
			"address":     site.Address,
			"client_name": site.ClientName,
			"status":      site.Status,
			"budget":      site.Budget,
			"notes":       site.Notes,
		})
	if result.Error != nil {
		return fmt.Errorf("updating site: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrSiteNotFound
	}
	return nil
}

func (r *SiteRepository) UpdateStatus(ctx context.Context, orgID, id uuid.UUID, status model.SiteStatus) error {
	result := conn(ctx, r.db).Model(&model.Site{}).
		Scopes(tenant(orgID)).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("updating site status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrSiteNotFound
	}
	return nil
}

// Delete removes a site with its quotes, transactions, materials and tasks.
// Attendance logs survive with their site cleared.
func (r *SiteRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Site{}).Scopes(tenant(orgID)).Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("finding site: %w", err)
		}
		if count == 0 {
			return domain.ErrSiteNotFound
		}

		quoteIDs := tx.Model(&model.Quote{}).Select("id").Scopes(tenant(orgID)).Where("site_id = ?", id)
		if err := tx.Where("quote_id IN (?)", quoteIDs).Delete(&model.QuoteItem{}).Error; err != nil {
			return fmt.Errorf("deleting quote items: %w", err)
		}

		for _, child := range []any{&model.Quote{}, &model.Transaction{}, &model.Material{}, &model.Task{}} {
			if err := tx.Scopes(tenant(orgID)).Where("site_id = ?", id).Delete(child).Error; err != nil {
				return fmt.Errorf("deleting %T: %w", child, err)
			}
		}

		if err := tx.Model(&model.AttendanceLog{}).Scopes(tenant(orgID)).Where("site_id = ?", id).Update("site_id", nil).Error; err != nil {
			return fmt.Errorf("detaching attendance logs: %w", err)
		}

		if err := tx.Scopes(tenant(orgID)).Delete(&model.Site{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting site: %w", err)
		}
		return nil
	})
}

func (r *SiteRepository) Count(ctx context.Context, orgID uuid.UUID, statuses ...model.SiteStatus) (int64, error) {
	var count int64
	q := conn(ctx, r.db).Model(&model.Site{}).Scopes(tenant(orgID))
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting sites: %w", err)
	}
	return count, nil
}
