// internal/repository/quote.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/sitebook/core/quote"
	"github.com/dangerclosesec/sitebook/internal/domain"
	"github.com/dangerclosesec/sitebook/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuoteRepositoryIface interface {
	CreateWithItems(ctx context.Context, q *model.Quote) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Quote, error)
	List(ctx context.Context, orgID uuid.UUID) ([]model.Quote, error)
	UpdateStatus(ctx context.Context, orgID, id uuid.UUID, status quote.Status) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

type QuoteRepository struct {
	db *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

// CreateWithItems writes the header and then its items in one transaction.
// Either both are stored or neither is.
func (r *QuoteRepository) CreateWithItems(ctx context.Context, q *model.Quote) error {
	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		items := q.Items
		if err := tx.Omit("Items").Create(q).Error; err != nil {
			return fmt.Errorf("creating quote: %w", err)
		}

		for i := range items {
			items[i].QuoteID = q.ID
			items[i].Position = i
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return fmt.Errorf("creating quote items: %w", err)
			}
		}
		q.Items = items
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *QuoteRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Quote, error) {
	var q model.Quote
	err := conn(ctx, r.db).Scopes(tenant(orgID)).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&q, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrQuoteNotFound
		}
		return nil, fmt.Errorf("finding quote: %w", err)
	}
	return &q, nil
}

// List returns headers without items, newest first.
func (r *QuoteRepository) List(ctx context.Context, orgID uuid.UUID) ([]model.Quote, error) {
	var quotes []model.Quote
	if err := conn(ctx, r.db).Scopes(tenant(orgID)).Order("created_at DESC").Find(&quotes).Error; err != nil {
		return nil, fmt.Errorf("listing quotes: %w", err)
	}
	return quotes, nil
}

func (r *QuoteRepository) UpdateStatus(ctx context.Context, orgID, id uuid.UUID, status quote.Status) error {
	result := conn(ctx, r.db).Model(&model.Quote{}).
		Scopes(tenant(orgID)).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("updating quote status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrQuoteNotFound
	}
	return nil
}

func (r *QuoteRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		result := tx.Scopes(tenant(orgID)).Delete(&model.Quote{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("deleting quote: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrQuoteNotFound
		}
		if err := tx.Where("quote_id = ?", id).Delete(&model.QuoteItem{}).Error; err != nil {
			return fmt.Errorf("deleting quote items: %w", err)
		}
		return nil
	})
}
