// internal/service/tenant.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dangerclosesec/sitebook/core/entitlement"
	"github.com/dangerclosesec/sitebook/internal/auth"
	"github.com/dangerclosesec/sitebook/internal/config"
	"github.com/dangerclosesec/sitebook/internal/domain"
	"github.com/dangerclosesec/sitebook/internal/email"
	"github.com/dangerclosesec/sitebook/internal/email/mailer"
	"github.com/dangerclosesec/sitebook/internal/model"
	"github.com/dangerclosesec/sitebook/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// verificationTTL bounds how long an emailed verification link works.
const verificationTTL = 72 * time.Hour

// TenantService signs identities up and in and provisions their membership:
// a new organization with an admin profile, or an employee profile in an
// existing one.
type TenantService struct {
	tx             repository.Transactor
	users          repository.UserRepositoryIface
	factors        repository.UserFactorRepositoryIface
	orgs           repository.OrganizationRepositoryIface
	profiles       repository.ProfileRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	emailSender    email.Sender
	sessions       *SessionService
	config         *config.Config
	validate       *validator.Validate
	now            func() time.Time
}

func NewTenantService(
	tx repository.Transactor,
	users repository.UserRepositoryIface,
	factors repository.UserFactorRepositoryIface,
	orgs repository.OrganizationRepositoryIface,
	profiles repository.ProfileRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
	emailSender email.Sender,
	sessions *SessionService,
	config *config.Config,
) *TenantService {
	return &TenantService{
		tx:             tx,
		users:          users,
		factors:        factors,
		orgs:           orgs,
		profiles:       profiles,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		emailSender:    emailSender,
		sessions:       sessions,
		config:         config,
		validate:       newValidator(),
		now:            time.Now,
	}
}

// SignupInput registers an identity. Exactly one of CompanyName (found a new
// organization) or CompanyID (join an existing one) must be set.
type SignupInput struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	FullName    string `json:"full_name" validate:"required,max=200"`
	CompanyName string `json:"company_name" validate:"max=200"`
	CompanyID   string `json:"company_id"`
}

// AuthOutput is returned by signup and login.
type AuthOutput struct {
	Token   string      `json:"token"`
	Session *AppContext `json:"session"`
}

func (s *TenantService) Signup(ctx context.Context, input SignupInput) (*AuthOutput, error) {
	if err := validateInput(s.validate, input); err != nil {
		return nil, err
	}

	companyName := strings.TrimSpace(input.CompanyName)
	companyID := strings.TrimSpace(input.CompanyID)
	if (companyName == "") == (companyID == "") {
		return nil, domain.ErrSignupTarget
	}

	var joinOrg uuid.UUID
	if companyID != "" {
		id, err := uuid.Parse(companyID)
		if err != nil {
			return nil, domain.ErrOrganizationNotFound
		}
		exists, err := s.orgs.Exists(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("checking organization: %w", err)
		}
		if !exists {
			return nil, domain.ErrOrganizationNotFound
		}
		joinOrg = id
	}

	hashed, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	verificationToken, err := auth.NewVerificationToken()
	if err != nil {
		return nil, err
	}

	first, last := splitName(input.FullName)
	user := &model.User{
		Email:     input.Email,
		FirstName: first,
		LastName:  last,
		Status:    model.StatusPending,
	}

	var org *model.Organization
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.users.Create(ctx, user); err != nil {
			return err
		}

		expires := s.now().Add(verificationTTL)
		factors := []*model.UserFactor{
			{UserID: user.ID, FactorType: model.FactorHashpass, Material: hashed, IsActive: true},
			{UserID: user.ID, FactorType: model.FactorVerificationCode, Material: verificationToken, IsActive: true, ExpiresAt: &expires},
		}
		for _, f := range factors {
			if err := s.factors.Create(ctx, f); err != nil {
				return fmt.Errorf("creating %s factor: %w", f.FactorType, err)
			}
		}

		var err error
		if companyName != "" {
			org, err = s.CreateOrganization(ctx, user, companyName)
		} else {
			org, err = s.JoinOrganization(ctx, user, joinOrg)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	link := fmt.Sprintf("%s/api/auth/signup/verify?token=%s", s.config.BaseURL, verificationToken)
	if err := mailer.SendVerificationEmail(ctx, s.emailSender, user.Email, user.FirstName, org.Name, link); err != nil {
		slog.ErrorContext(ctx, "failed to send verification email", "userID", user.ID, "error", err)
	}

	return s.issue(ctx, user)
}

// CreateOrganization provisions a new organization on its trial and makes
// user its administrator.
func (s *TenantService) CreateOrganization(ctx context.Context, user *model.User, name string) (*model.Organization, error) {
	trial := entitlement.NewTrial(s.now(), s.config.Entitlement.TrialLength)
	creator := user.ID
	org := &model.Organization{
		Name:               name,
		SubscriptionPlan:   trial.Plan,
		SubscriptionStatus: trial.Status,
		TrialEndsAt:        trial.TrialEndsAt,
		CreatedBy:          &creator,
	}
	if err := s.orgs.Create(ctx, org); err != nil {
		return nil, err
	}

	profile := model.NewProfile(user.ID, org.ID, model.RoleAdmin)
	profile.Email = user.Email
	profile.FullName = user.FullName()
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "organization created", "organizationID", org.ID, "userID", user.ID)
	return org, nil
}

// JoinOrganization adds user to orgID as an employee.
func (s *TenantService) JoinOrganization(ctx context.Context, user *model.User, orgID uuid.UUID) (*model.Organization, error) {
	org, err := s.orgs.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	profile := model.NewProfile(user.ID, org.ID, model.RoleEmployee)
	profile.Email = user.Email
	profile.FullName = user.FullName()
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "member joined organization", "organizationID", org.ID, "userID", user.ID)
	return org, nil
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (s *TenantService) Login(ctx context.Context, input LoginInput) (*AuthOutput, error) {
	if err := validateInput(s.validate, input); err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Status == model.StatusDisabled {
		return nil, domain.ErrInvalidCredentials
	}

	factor, err := s.factors.FindByUserAndType(ctx, user.ID, model.FactorHashpass)
	if err != nil {
		if errors.Is(err, domain.ErrFactorNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("finding password factor: %w", err)
	}

	verified, err := s.passwordHasher.Verify(input.Password, factor.Material)
	if err != nil || !verified {
		return nil, domain.ErrInvalidCredentials
	}

	now := s.now()
	factor.LastUsedAt = &now
	if err := s.factors.Update(ctx, factor); err != nil {
		slog.WarnContext(ctx, "failed to update last used timestamp", "userID", user.ID, "error", err)
	}

	return s.issue(ctx, user)
}

// issue signs a token for user and loads a fresh application context.
func (s *TenantService) issue(ctx context.Context, user *model.User) (*AuthOutput, error) {
	s.sessions.Invalidate(ctx, user.ID)
	session, err := s.sessions.Load(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	token, err := s.tokenManager.Generate(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &AuthOutput{Token: token, Session: session}, nil
}

// Logout forgets the cached context of userID.
func (s *TenantService) Logout(ctx context.Context, userID uuid.UUID) {
	s.sessions.Invalidate(ctx, userID)
}

// VerifyEmail consumes an emailed verification token and activates its user.
func (s *TenantService) VerifyEmail(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return domain.ErrInvalidVerificationCode
	}

	var userID uuid.UUID
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		factor, err := s.factors.FindByMaterial(ctx, model.FactorVerificationCode, token)
		if err != nil {
			if errors.Is(err, domain.ErrFactorNotFound) {
				return domain.ErrInvalidVerificationCode
			}
			return err
		}
		if !factor.IsActive {
			return domain.ErrAlreadyVerified
		}
		now := s.now()
		if factor.Expired(now) {
			return domain.ErrVerificationExpired
		}

		user, err := s.users.FindByID(ctx, factor.UserID)
		if err != nil {
			return err
		}
		user.Status = model.StatusActive
		if err := s.users.Update(ctx, user); err != nil {
			return fmt.Errorf("updating user: %w", err)
		}

		factor.VerifiedAt = &now
		factor.LastUsedAt = &now
		factor.IsActive = false
		if err := s.factors.Update(ctx, factor); err != nil {
			return fmt.Errorf("updating factor: %w", err)
		}

		userID = user.ID
		return nil
	})
	if err != nil {
		return err
	}

	s.sessions.Invalidate(ctx, userID)
	return nil
}

// InviteLink is the registration link that joins a new member to the
// caller's organization. The organization id is the whole credential.
func (s *TenantService) InviteLink(app *AppContext) string {
	return fmt.Sprintf("%s/?action=register-emp&companyId=%s", strings.TrimRight(s.config.BaseURL, "/"), app.OrgID())
}

type InviteInput struct {
	Email string `json:"email" validate:"required,email"`
}

// SendInvite mails the invite link to a future member.
func (s *TenantService) SendInvite(ctx context.Context, app *AppContext, input InviteInput) error {
	if err := validateInput(s.validate, input); err != nil {
		return err
	}

	return mailer.SendTeamInvite(ctx, s.emailSender, input.Email, mailer.TeamInviteTemplateData{
		CompanyName: app.Organization.Name,
		CompanyID:   app.OrgID().String(),
		InvitedBy:   app.Profile.FullName,
		ReplyTo:     app.Profile.Email,
		InviteLink:  s.InviteLink(app),
	})
}

func splitName(full string) (string, string) {
	full = strings.Join(strings.Fields(full), " ")
	first, last, _ := strings.Cut(full, " ")
	return first, last
}
