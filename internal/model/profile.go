// internal/model/profile.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// NotificationSettings are the per-member notification toggles.
type NotificationSettings struct {
	NotifyTasks bool `json:"notify_tasks"`
	NotifyLogs  bool `json:"notify_logs"`
}

func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{NotifyTasks: true, NotifyLogs: true}
}

// Profile is a member of an organization. ID is the member's identity: the
// user ID for signed-up members, a synthetic ID for members added by an admin.
type Profile struct {
	ID             uuid.UUID                                `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID uuid.UUID                                `gorm:"type:uuid;not null;index" json:"organization_id"`
	Email          string                                   `gorm:"type:text;not null" json:"email"`
	FullName       string                                   `gorm:"type:text;not null" json:"full_name"`
	Phone          string                                   `gorm:"type:text;not null" json:"phone"`
	Role           Role                                     `gorm:"type:text;not null" json:"role"`
	HourlyRate     decimal.Decimal                          `gorm:"type:numeric(12,2);not null" json:"hourly_rate"`
	IsActive       bool                                     `gorm:"not null" json:"is_active"`
	Settings       datatypes.JSONType[NotificationSettings] `gorm:"not null" json:"settings"`
	CreatedAt      time.Time                                `json:"created_at"`
	UpdatedAt      time.Time                                `json:"updated_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Role == "" {
		p.Role = RoleEmployee
	}
	return nil
}

func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// NewProfile returns an active member with default notification settings.
func NewProfile(id, orgID uuid.UUID, role Role) *Profile {
	return &Profile{
		ID:             id,
		OrganizationID: orgID,
		Role:           role,
		HourlyRate:     decimal.Zero,
		IsActive:       true,
		Settings:       datatypes.NewJSONType(DefaultNotificationSettings()),
	}
}
