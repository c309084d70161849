package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dangerclosesec/sitebook/internal/auth"
	"github.com/dangerclosesec/sitebook/internal/domain"
	"github.com/dangerclosesec/sitebook/internal/model"
	"github.com/dangerclosesec/sitebook/internal/repository"
	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
)

type SettingsService struct {
	orgs           repository.OrganizationRepositoryIface
	profiles       repository.ProfileRepositoryIface
	factors        repository.UserFactorRepositoryIface
	passwordHasher *auth.PasswordHasher
	sessions       *SessionService
	validate       *validator.Validate
}

func NewSettingsService(
	orgs repository.OrganizationRepositoryIface,
	profiles repository.ProfileRepositoryIface,
	factors repository.UserFactorRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	sessions *SessionService,
) *SettingsService {
	return &SettingsService{
		orgs:           orgs,
		profiles:       profiles,
		factors:        factors,
		passwordHasher: passwordHasher,
		sessions:       sessions,
		validate:       newValidator(),
	}
}

type OrganizationSettingsInput struct {
	Name    string `json:"name" validate:"required,max=200"`
	LogoURL string `json:"logo_url" validate:"omitempty,url"`
}

// UpdateOrganization changes the company name and logo. Only the caller's
// cached context is refreshed; other members see the change when their
// cache entry expires.
func (s *SettingsService) UpdateOrganization(ctx context.Context, app *AppContext, input OrganizationSettingsInput) (*AppContext, error) {
	if err := validateInput(s.validate, input); err != nil {
		return nil, err
	}
	if err := s.orgs.UpdateBranding(ctx, app.OrgID(), input.Name, input.LogoURL); err != nil {
		return nil, err
	}
	return s.reload(ctx, app)
}

// UpdateNotifications stores the caller's notification toggles.
func (s *SettingsService) UpdateNotifications(ctx context.Context, app *AppContext, input model.NotificationSettings) (*AppContext, error) {
	profile, err := s.profiles.FindByID(ctx, app.OrgID(), app.Profile.ID)
	if err != nil {
		return nil, err
	}
	profile.Settings = datatypes.NewJSONType(input)
	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}
	return s.reload(ctx, app)
}

type PasswordInput struct {
	Password string `json:"password" validate:"required"`
	Confirm  string `json:"confirm" validate:"required"`
}

// ChangePassword replaces the caller's password hash.
func (s *SettingsService) ChangePassword(ctx context.Context, app *AppContext, input PasswordInput) error {
	if err := validateInput(s.validate, input); err != nil {
		return err
	}
	if err := auth.ValidateNew(input.Password, input.Confirm); err != nil {
		switch {
		case errors.Is(err, auth.ErrPasswordMismatch):
			return domain.ErrPasswordsDoNotMatch
		case errors.Is(err, auth.ErrPasswordTooShort):
			return fmt.Errorf("%w: %v", domain.ErrPasswordTooWeak, err)
		}
		return err
	}

	factor, err := s.factors.FindByUserAndType(ctx, app.User.ID, model.FactorHashpass)
	if err != nil {
		return fmt.Errorf("finding password factor: %w", err)
	}
	hashed, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	factor.Material = hashed
	if err := s.factors.Update(ctx, factor); err != nil {
		return fmt.Errorf("updating password factor: %w", err)
	}

	slog.InfoContext(ctx, "password changed", "userID", app.User.ID)
	return nil
}

func (s *SettingsService) reload(ctx context.Context, app *AppContext) (*AppContext, error) {
	s.sessions.Invalidate(ctx, app.User.ID)
	return s.sessions.Load(ctx, app.User.ID)
}
