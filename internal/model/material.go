// internal/model/material.go
package model

import (
	"time"

	"github.com/dangerclosesec/sitebook/core/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Material struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID uuid.UUID       `gorm:"type:uuid;not null;index" json:"organization_id"`
	SiteID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"site_id"`
	Name           string          `gorm:"type:text;not null" json:"name"`
	Quantity       decimal.Decimal `gorm:"type:numeric(12,3);not null" json:"quantity"`
	Unit           string          `gorm:"type:text;not null" json:"unit"`
	UnitPrice      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_price"`
	TotalPrice     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_price"`
	Supplier       string          `gorm:"type:text;not null" json:"supplier"`
	PurchaseDate   time.Time       `gorm:"type:date;not null" json:"purchase_date"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (m *Material) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// BeforeSave keeps the total equal to quantity x unit price.
func (m *Material) BeforeSave(tx *gorm.DB) error {
	m.TotalPrice = m.Quantity.Mul(m.UnitPrice)
	return nil
}

func (m *Material) LedgerMaterial() ledger.Material {
	return ledger.Material{
		SiteID:     m.SiteID,
		Quantity:   m.Quantity,
		UnitPrice:  m.UnitPrice,
		TotalPrice: m.TotalPrice,
	}
}
