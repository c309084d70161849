// internal/model/attendance.go
package model

import (
	"time"

	"github.com/dangerclosesec/sitebook/core/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AttendanceLog records hours worked. HourlyRateSnapshot is copied from the
// member's rate when the log is written and is never updated afterwards.
type AttendanceLog struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"organization_id"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	SiteID             *uuid.UUID      `gorm:"type:uuid" json:"site_id,omitempty"`
	Date               time.Time       `gorm:"type:date;not null" json:"date"`
	Hours              decimal.Decimal `gorm:"type:numeric(6,2);not null" json:"hours"`
	HourlyRateSnapshot decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"hourly_rate_snapshot"`
	Description        string          `gorm:"type:text;not null" json:"description"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`

	Profile *Profile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	Site    *Site    `gorm:"foreignKey:SiteID" json:"site,omitempty"`
}

func (a *AttendanceLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// Labor converts the row for the ledger, using preloaded profile and site
// names when present.
func (a *AttendanceLog) Labor() ledger.Labor {
	l := ledger.Labor{
		EmployeeID:   a.UserID,
		SiteID:       a.SiteID,
		Date:         a.Date,
		Hours:        a.Hours,
		RateSnapshot: a.HourlyRateSnapshot,
	}
	if a.Profile != nil {
		l.EmployeeName = a.Profile.FullName
	}
	if a.Site != nil {
		l.SiteName = a.Site.Name
	}
	return l
}
