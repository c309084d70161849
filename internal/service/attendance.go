package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dangerclosesec/sitebook/internal/domain"
	"github.com/dangerclosesec/sitebook/internal/model"
	"github.com/dangerclosesec/sitebook/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// maxDailyHours caps a single attendance entry.
var maxDailyHours = decimal.NewFromInt(24)

// AttendanceService is worker mode: members log hours against active sites.
type AttendanceService struct {
	logs     repository.AttendanceRepositoryIface
	sites    repository.SiteRepositoryIface
	profiles repository.ProfileRepositoryIface
	validate *validator.Validate
}

func NewAttendanceService(
	logs repository.AttendanceRepositoryIface,
	sites repository.SiteRepositoryIface,
	profiles repository.ProfileRepositoryIface,
) *AttendanceService {
	return &AttendanceService{logs: logs, sites: sites, profiles: profiles, validate: newValidator()}
}

// WorkerSites lists the sites hours can be logged against.
func (s *AttendanceService) WorkerSites(ctx context.Context, orgID uuid.UUID) ([]model.Site, error) {
	return s.sites.List(ctx, orgID, model.SiteActive)
}

type AttendanceInput struct {
	SiteID      uuid.UUID       `json:"site_id" validate:"required"`
	Date        time.Time       `json:"date" validate:"required"`
	Hours       decimal.Decimal `json:"hours"`
	Description string          `json:"description"`
}

// Log records hours for the calling member. The member's current hourly rate
// is copied into the log and never changes afterwards.
func (s *AttendanceService) Log(ctx context.Context, app *AppContext, input AttendanceInput) (*model.AttendanceLog, error) {
	if err := validateInput(s.validate, input); err != nil {
		return nil, err
	}
	if !input.Hours.IsPositive() || input.Hours.GreaterThan(maxDailyHours) {
		return nil, fmt.Errorf("%w: hours must be between 0 and 24", domain.ErrInvalidInput)
	}

	orgID := app.OrgID()
	site, err := s.sites.FindByID(ctx, orgID, input.SiteID)
	if err != nil {
		return nil, err
	}
	if site.Status != model.SiteActive {
		return nil, domain.ErrSiteInactive
	}

	// The cached session may predate a rate change.
	profile, err := s.profiles.FindByID(ctx, orgID, app.Profile.ID)
	if err != nil {
		return nil, err
	}

	siteID := site.ID
	log := &model.AttendanceLog{
		OrganizationID:     orgID,
		UserID:             profile.ID,
		SiteID:             &siteID,
		Date:               input.Date,
		Hours:              input.Hours,
		HourlyRateSnapshot: profile.HourlyRate,
		Description:        input.Description,
	}
	if err := s.logs.Create(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

// ListMine returns the calling member's logs, newest first.
func (s *AttendanceService) ListMine(ctx context.Context, app *AppContext) ([]model.AttendanceLog, error) {
	return s.logs.ListByEmployee(ctx, app.OrgID(), app.Profile.ID)
}

// ListFor returns a member's logs for an administrator.
func (s *AttendanceService) ListFor(ctx context.Context, orgID, employeeID uuid.UUID) ([]model.AttendanceLog, error) {
	if _, err := s.profiles.FindByID(ctx, orgID, employeeID); err != nil {
		return nil, err
	}
	return s.logs.ListByEmployee(ctx, orgID, employeeID)
}

func (s *AttendanceService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	return s.logs.Delete(ctx, orgID, id)
}
