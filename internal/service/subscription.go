package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dangerclosesec/sitebook/core/entitlement"
	"github.com/dangerclosesec/sitebook/internal/repository"
)

// SubscriptionService reports and changes an organization's entitlement.
type SubscriptionService struct {
	orgs     repository.OrganizationRepositoryIface
	sessions *SessionService
}

func NewSubscriptionService(orgs repository.OrganizationRepositoryIface, sessions *SessionService) *SubscriptionService {
	return &SubscriptionService{orgs: orgs, sessions: sessions}
}

// Status is the gate decision already evaluated for the session.
func (s *SubscriptionService) Status(app *AppContext) entitlement.Decision {
	return app.Entitlement
}

// Activate moves the organization to the paid plan and returns the reloaded
// context. On failure nothing is cached and the gate keeps its decision.
func (s *SubscriptionService) Activate(ctx context.Context, app *AppContext) (*AppContext, error) {
	sub := entitlement.Activate(app.Organization.Subscription())
	if err := s.orgs.UpdateSubscription(ctx, app.OrgID(), sub); err != nil {
		return nil, fmt.Errorf("activating subscription: %w", err)
	}
	slog.InfoContext(ctx, "subscription activated", "organizationID", app.OrgID(), "userID", app.User.ID)

	s.sessions.Invalidate(ctx, app.User.ID)
	return s.sessions.Load(ctx, app.User.ID)
}
