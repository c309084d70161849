// internal/repository/repository.go
package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transactor runs a unit of work inside one database transaction.
// Repositories called with the context handed to fn join that transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type txKey struct{}

// GormTransactor implements Transactor on top of gorm.
type GormTransactor struct {
	db *gorm.DB
}

func NewTransactor(db *gorm.DB) *GormTransactor {
	return &GormTransactor{db: db}
}

// WithinTransaction commits when fn returns nil and rolls back otherwise.
// A context that already carries a transaction is reused.
func (t *GormTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
	if err != nil {
		slog.WarnContext(ctx, "transaction rolled back", "error", err)
	}
	return err
}

// conn returns the transaction carried by ctx, or db bound to ctx.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}

// tenant scopes a query to one organization. table qualifies the column when
// the query joins other tenant tables.
func tenant(orgID uuid.UUID, table ...string) func(*gorm.DB) *gorm.DB {
	column := "organization_id"
	if len(table) > 0 {
		column = table[0] + ".organization_id"
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", orgID)
	}
}
