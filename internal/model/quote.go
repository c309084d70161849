// internal/model/quote.go
package model

import (
	"fmt"
	"time"

	"github.com/dangerclosesec/sitebook/core/quote"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Quote struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID uuid.UUID       `gorm:"type:uuid;not null;index" json:"organization_id"`
	SiteID         *uuid.UUID      `gorm:"type:uuid;index" json:"site_id,omitempty"`
	Number         string          `gorm:"type:text;not null" json:"number"`
	ClientName     string          `gorm:"type:text;not null" json:"client_name"`
	ClientAddress  string          `gorm:"type:text;not null" json:"client_address"`
	Status         quote.Status    `gorm:"type:text;not null" json:"status"`
	IssueDate      time.Time       `gorm:"type:date;not null" json:"issue_date"`
	ValidUntil     *time.Time      `gorm:"type:date" json:"valid_until,omitempty"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	Notes          string          `gorm:"type:text;not null" json:"notes"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`

	Items []QuoteItem `gorm:"foreignKey:QuoteID" json:"items,omitempty"`
}

func (q *Quote) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	if q.Status == "" {
		q.Status = quote.StatusDraft
	}
	return nil
}

type QuoteItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	QuoteID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"quote_id"`
	Position    int             `gorm:"not null" json:"position"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Quantity    decimal.Decimal `gorm:"type:numeric(12,3);not null" json:"quantity"`
	Unit        string          `gorm:"type:text;not null" json:"unit"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_price"`
	TotalPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_price"`
}

// BeforeCreate rejects a line whose total disagrees with quantity x unit price.
func (qi *QuoteItem) BeforeCreate(tx *gorm.DB) error {
	if qi.ID == uuid.Nil {
		qi.ID = uuid.New()
	}
	if want := qi.Quantity.Mul(qi.UnitPrice); !qi.TotalPrice.Equal(want) {
		return fmt.Errorf("quote item %q: total %s, expected %s", qi.Description, qi.TotalPrice, want)
	}
	return nil
}
