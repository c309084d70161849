// internal/model/organization.go
package model

import (
	"time"

	"github.com/dangerclosesec/sitebook/core/entitlement"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Organization is a tenant: one construction company.
type Organization struct {
	ID                 uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	Name               string             `gorm:"type:text;not null" json:"name"`
	SubscriptionPlan   entitlement.Plan   `gorm:"type:text;not null" json:"subscription_plan"`
	SubscriptionStatus entitlement.Status `gorm:"type:text;not null" json:"subscription_status"`
	TrialEndsAt        time.Time          `gorm:"not null" json:"trial_ends_at"`
	LogoURL            string             `gorm:"type:text;not null" json:"logo_url"`
	PinCode            string             `gorm:"type:text;not null" json:"-"`
	CreatedBy          *uuid.UUID         `gorm:"type:uuid" json:"created_by,omitempty"`
	StripeCustomerID   *string            `gorm:"type:text" json:"-"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

const DefaultPinCode = "0000"

func (o *Organization) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.SubscriptionPlan == "" || o.SubscriptionStatus == "" || o.TrialEndsAt.IsZero() {
		trial := entitlement.NewTrial(time.Now(), entitlement.DefaultTrialLength)
		if o.SubscriptionPlan == "" {
			o.SubscriptionPlan = trial.Plan
		}
		if o.SubscriptionStatus == "" {
			o.SubscriptionStatus = trial.Status
		}
		if o.TrialEndsAt.IsZero() {
			o.TrialEndsAt = trial.TrialEndsAt
		}
	}
	if o.PinCode == "" {
		o.PinCode = DefaultPinCode
	}
	return nil
}

// Subscription returns the entitlement view of the organization.
func (o *Organization) Subscription() entitlement.Subscription {
	return entitlement.Subscription{
		Plan:        o.SubscriptionPlan,
		Status:      o.SubscriptionStatus,
		TrialEndsAt: o.TrialEndsAt,
	}
}
