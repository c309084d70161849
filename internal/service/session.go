package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dangerclosesec/sitebook/core/entitlement"
	"github.com/dangerclosesec/sitebook/internal/domain"
	"github.com/dangerclosesec/sitebook/internal/model"
	"github.com/dangerclosesec/sitebook/internal/repository"
	"github.com/google/uuid"
)

// AppContext is everything a signed-in request needs: who is calling, their
// membership, their organization and whether the organization may use the
// product right now.
type AppContext struct {
	User         *model.User          `json:"user"`
	Profile      *model.Profile       `json:"profile"`
	Organization *model.Organization  `json:"organization"`
	Entitlement  entitlement.Decision `json:"entitlement"`
}

func (a *AppContext) OrgID() uuid.UUID {
	return a.Organization.ID
}

func (a *AppContext) IsAdmin() bool {
	return a.Profile != nil && a.Profile.IsAdmin()
}

// sessionSnapshot is the cached part of an AppContext. The entitlement
// decision depends on the clock and is recomputed on every load.
type sessionSnapshot struct {
	User         *model.User         `json:"user"`
	Profile      *model.Profile      `json:"profile"`
	Organization *model.Organization `json:"organization"`
}

type SessionService struct {
	users    repository.UserRepositoryIface
	profiles repository.ProfileRepositoryIface
	orgs     repository.OrganizationRepositoryIface
	cache    *CacheService
	now      func() time.Time
}

func NewSessionService(
	users repository.UserRepositoryIface,
	profiles repository.ProfileRepositoryIface,
	orgs repository.OrganizationRepositoryIface,
	cache *CacheService,
) *SessionService {
	return &SessionService{
		users:    users,
		profiles: profiles,
		orgs:     orgs,
		cache:    cache,
		now:      time.Now,
	}
}

func sessionKey(userID uuid.UUID) string {
	return "session:" + userID.String()
}

// Load returns the application context of userID, from cache when present.
func (s *SessionService) Load(ctx context.Context, userID uuid.UUID) (*AppContext, error) {
	var snap sessionSnapshot
	err := s.cache.GetOrSet(ctx, sessionKey(userID), &snap, func() (interface{}, error) {
		return s.build(ctx, userID)
	})
	if err != nil {
		return nil, err
	}

	if !snap.Profile.IsActive {
		return nil, domain.ErrProfileInactive
	}

	return &AppContext{
		User:         snap.User,
		Profile:      snap.Profile,
		Organization: snap.Organization,
		Entitlement:  entitlement.Decide(snap.Organization.Subscription(), s.now()),
	}, nil
}

func (s *SessionService) build(ctx context.Context, userID uuid.UUID) (*sessionSnapshot, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("loading user: %w", err)
	}

	profile, err := s.profiles.FindByIdentity(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	org, err := s.orgs.FindByID(ctx, profile.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("loading organization: %w", err)
	}

	return &sessionSnapshot{User: user, Profile: profile, Organization: org}, nil
}

// Invalidate drops the cached context so the next Load reads the store.
func (s *SessionService) Invalidate(ctx context.Context, userID uuid.UUID) {
	if err := s.cache.Delete(ctx, sessionKey(userID)); err != nil {
		slog.WarnContext(ctx, "failed to drop cached session", "userID", userID, "error", err)
	}
}
