// internal/model/site.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SiteStatus string

const (
	SiteLead      SiteStatus = "lead"
	SiteActive    SiteStatus = "active"
	SitePlanning  SiteStatus = "planning"
	SitePaused    SiteStatus = "paused"
	SiteCompleted SiteStatus = "completed"
)

func (s SiteStatus) Valid() bool {
	switch s {
	case SiteLead, SiteActive, SitePlanning, SitePaused, SiteCompleted:
		return true
	}
	return false
}

// SiteGroup is a tab of the projects board.
type SiteGroup string

const (
	GroupLeads   SiteGroup = "leads"
	GroupActive  SiteGroup = "active"
	GroupArchive SiteGroup = "archive"
)

// Statuses lists the site statuses shown under the group. Unknown groups
// return nil.
func (g SiteGroup) Statuses() []SiteStatus {
	switch g {
	case GroupLeads:
		return []SiteStatus{SiteLead}
	case GroupActive:
		return []SiteStatus{SiteActive, SitePlanning}
	case GroupArchive:
		return []SiteStatus{SiteCompleted, SitePaused}
	}
	return nil
}

// Site is a construction project.
type Site struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID uuid.UUID       `gorm:"type:uuid;not null;index" json:"organization_id"`
	Name           string          `gorm:"type:text;not null" json:"name"`
	Address        string          `gorm:"type:text;not null" json:"address"`
	ClientName     string          `gorm:"type:text;not null" json:"client_name"`
	Status         SiteStatus      `gorm:"type:text;not null" json:"status"`
	Budget         decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"budget"`
	Notes          string          `gorm:"type:text;not null" json:"notes"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (s *Site) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Status == "" {
		s.Status = SiteLead
	}
	return nil
}
