// internal/model/transaction.go
package model

import (
	"time"

	"github.com/dangerclosesec/sitebook/core/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is an invoice issued to a client or an expense paid by the
// company. Wage payouts are expenses in the payroll category.
type Transaction struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID uuid.UUID        `gorm:"type:uuid;not null;index" json:"organization_id"`
	SiteID         *uuid.UUID       `gorm:"type:uuid;index" json:"site_id,omitempty"`
	EmployeeID     *uuid.UUID       `gorm:"type:uuid;index" json:"employee_id,omitempty"`
	Type           ledger.EntryType `gorm:"type:text;not null" json:"type"`
	Category       string           `gorm:"type:text;not null" json:"category"`
	Amount         decimal.Decimal  `gorm:"type:numeric(12,2);not null" json:"amount"`
	Date           time.Time        `gorm:"type:date;not null" json:"date"`
	Description    string           `gorm:"type:text;not null" json:"description"`
	IsPaid         bool             `gorm:"not null" json:"is_paid"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`

	Site *Site `gorm:"foreignKey:SiteID" json:"site,omitempty"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// Entry converts the row for the ledger.
func (t *Transaction) Entry() ledger.Entry {
	e := ledger.Entry{
		ID:          t.ID,
		SiteID:      t.SiteID,
		EmployeeID:  t.EmployeeID,
		Type:        t.Type,
		Category:    t.Category,
		Amount:      t.Amount,
		Date:        t.Date,
		Description: t.Description,
		Paid:        t.IsPaid,
	}
	if t.Site != nil {
		e.SiteName = t.Site.Name
	}
	return e
}
