package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dangerclosesec/sitebook/internal/domain"
	"github.com/dangerclosesec/sitebook/internal/model"
	"github.com/dangerclosesec/sitebook/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TeamService manages the members of an organization.
type TeamService struct {
	profiles repository.ProfileRepositoryIface
	sessions *SessionService
	validate *validator.Validate
	now      func() time.Time
}

func NewTeamService(profiles repository.ProfileRepositoryIface, sessions *SessionService) *TeamService {
	return &TeamService{profiles: profiles, sessions: sessions, validate: newValidator(), now: time.Now}
}

// List returns active members, or archived ones when archived is set.
func (s *TeamService) List(ctx context.Context, orgID uuid.UUID, archived bool) ([]model.Profile, error) {
	return s.profiles.List(ctx, orgID, !archived)
}

func (s *TeamService) Get(ctx context.Context, orgID, id uuid.UUID) (*model.Profile, error) {
	return s.profiles.FindByID(ctx, orgID, id)
}

type MemberInput struct {
	FullName   string          `json:"full_name" validate:"required,max=200"`
	Email      string          `json:"email" validate:"omitempty,email"`
	Phone      string          `json:"phone" validate:"max=50"`
	Role       model.Role      `json:"role"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
}

func (s *TeamService) check(input MemberInput) error {
	if err := validateInput(s.validate, input); err != nil {
		return err
	}
	if input.Role != "" && !input.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, input.Role)
	}
	if input.HourlyRate.IsNegative() {
		return fmt.Errorf("%w: hourly rate must not be negative", domain.ErrInvalidInput)
	}
	return nil
}

// CreateMember adds a worker who has no sign-in identity. Members without an
// email get a placeholder address.
func (s *TeamService) CreateMember(ctx context.Context, orgID uuid.UUID, input MemberInput) (*model.Profile, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = model.RoleEmployee
	}
	profile := model.NewProfile(uuid.New(), orgID, role)
	profile.FullName = strings.TrimSpace(input.FullName)
	profile.Phone = input.Phone
	profile.HourlyRate = input.HourlyRate
	profile.Email = strings.TrimSpace(input.Email)
	if profile.Email == "" {
		profile.Email = fmt.Sprintf("worker-%d@local.app", s.now().Unix())
	}

	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "member created", "organizationID", orgID, "profileID", profile.ID)
	return profile, nil
}

// Update changes a member's details. Rate changes affect attendance logged
// afterwards only.
func (s *TeamService) Update(ctx context.Context, orgID, id uuid.UUID, input MemberInput) (*model.Profile, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}

	profile, err := s.profiles.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	profile.FullName = strings.TrimSpace(input.FullName)
	profile.Phone = input.Phone
	profile.HourlyRate = input.HourlyRate
	if input.Email != "" {
		profile.Email = input.Email
	}
	if input.Role != "" {
		profile.Role = input.Role
	}

	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}
	s.sessions.Invalidate(ctx, id)
	return profile, nil
}

// Archive deactivates a member. Archived members cannot sign in.
func (s *TeamService) Archive(ctx context.Context, orgID, id uuid.UUID) error {
	if err := s.profiles.SetActive(ctx, orgID, id, false); err != nil {
		return err
	}
	s.sessions.Invalidate(ctx, id)
	return nil
}

func (s *TeamService) Restore(ctx context.Context, orgID, id uuid.UUID) error {
	if err := s.profiles.SetActive(ctx, orgID, id, true); err != nil {
		return err
	}
	s.sessions.Invalidate(ctx, id)
	return nil
}

// Delete removes an archived member with their attendance logs.
func (s *TeamService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	if err := s.profiles.Delete(ctx, orgID, id); err != nil {
		return err
	}
	s.sessions.Invalidate(ctx, id)
	return nil
}
