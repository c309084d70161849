// internal/model/user_factor.go
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FactorType string

const (
	FactorHashpass         FactorType = "hashpass"
	FactorVerificationCode FactorType = "verification_code"
)

type UserFactor struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;column:user_id;index"`
	FactorType FactorType `gorm:"type:text;not null"`
	Material   string     `gorm:"type:text;not null"`
	IsActive   bool       `gorm:"not null"`
	VerifiedAt *time.Time
	LastUsedAt *time.Time
	ExpiresAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// BeforeCreate hook for UserFactor
func (uf *UserFactor) BeforeCreate(tx *gorm.DB) error {
	if uf.ID == uuid.Nil {
		uf.ID = uuid.New()
	}

	switch uf.FactorType {
	case FactorHashpass, FactorVerificationCode:
	default:
		return fmt.Errorf("invalid factor type: %s", uf.FactorType)
	}

	return nil
}

// Expired reports whether the factor had an expiry that has passed.
func (uf *UserFactor) Expired(now time.Time) bool {
	return uf.ExpiresAt != nil && now.After(*uf.ExpiresAt)
}
