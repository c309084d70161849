// internal/repository/transaction.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dangerclosesec/sitebook/core/ledger"
	"github.com/dangerclosesec/sitebook/internal/domain"
	"github.com/dangerclosesec/sitebook/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionFilter narrows a transaction listing. Zero fields do not filter.
// Free-text search runs in the service, where it can ignore diacritics.
type TransactionFilter struct {
	Year   int
	Type   ledger.EntryType
	SiteID *uuid.UUID
}

type TransactionRepositoryIface interface {
	Create(ctx context.Context, t *model.Transaction) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Transaction, error)
	List(ctx context.Context, orgID uuid.UUID, filter TransactionFilter) ([]model.Transaction, error)
	ListPayouts(ctx context.Context, orgID, employeeID uuid.UUID) ([]model.Transaction, error)
	Update(ctx context.Context, t *model.Transaction) error
	SetPaid(ctx context.Context, orgID, id uuid.UUID, paid bool) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, t *model.Transaction) error {
	if err := conn(ctx, r.db).Omit("Site").Create(t).Error; err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Transaction, error) {
	var t model.Transaction
	err := conn(ctx, r.db).Scopes(tenant(orgID)).Preload("Site").First(&t, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("finding transaction: %w", err)
	}
	return &t, nil
}

// List returns matching transactions, newest date first, with their site.
func (r *TransactionRepository) List(ctx context.Context, orgID uuid.UUID, filter TransactionFilter) ([]model.Transaction, error) {
	q := conn(ctx, r.db).
		Joins("Site").
		Scopes(tenant(orgID, "transactions"))

	if filter.Year > 0 {
		from := time.Date(filter.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		q = q.Where("transactions.date >= ? AND transactions.date < ?", from, from.AddDate(1, 0, 0))
	}
	if filter.Type != "" {
		q = q.Where("transactions.type = ?", filter.Type)
	}
	if filter.SiteID != nil {
		q = q.Where("transactions.site_id = ?", *filter.SiteID)
	}
	var out []model.Transaction
	if err := q.Order("transactions.date DESC").Order("transactions.created_at DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	return out, nil
}

// ListPayouts returns payroll expenses linked to employeeID either through
// the description marker or the employee column.
func (r *TransactionRepository) ListPayouts(ctx context.Context, orgID, employeeID uuid.UUID) ([]model.Transaction, error) {
	var out []model.Transaction
	err := conn(ctx, r.db).Scopes(tenant(orgID)).
		Where("type = ? AND category = ?", ledger.EntryExpense, ledger.PayrollCategory).
		Where("employee_id = ? OR LOWER(description) LIKE ?", employeeID, "%"+strings.ToLower(ledger.PayrollMarker(employeeID))+"%").
		Order("date DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("listing payouts: %w", err)
	}
	return out, nil
}

func (r *TransactionRepository) Update(ctx context.Context, t *model.Transaction) error {
	result := conn(ctx, r.db).Model(&model.Transaction{}).
		Scopes(tenant(t.OrganizationID)).
		Where("id = ?", t.ID).
		Updates(map[string]any{
			"site_id":     t.SiteID,
			"type":        t.Type,
			"category":    t.Category,
			"amount":      t.Amount,
			"date":        t.Date,
			"description": t.Description,
			"is_paid":     t.IsPaid,
		})
	if result.Error != nil {
		return fmt.Errorf("updating transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

func (r *TransactionRepository) SetPaid(ctx context.Context, orgID, id uuid.UUID, paid bool) error {
	result := conn(ctx, r.db).Model(&model.Transaction{}).
		Scopes(tenant(orgID)).
		Where("id = ?", id).
		Update("is_paid", paid)
	if result.Error != nil {
		return fmt.Errorf("updating paid flag: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	result := conn(ctx, r.db).Scopes(tenant(orgID)).Delete(&model.Transaction{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}
