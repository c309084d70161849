package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/dangerclosesec/sitebook/core/entitlement"
	"github.com/dangerclosesec/sitebook/internal/domain"
	"github.com/dangerclosesec/sitebook/internal/mocks"
	"github.com/dangerclosesec/sitebook/internal/model"
	"github.com/dangerclosesec/sitebook/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSessionLoad(t *testing.T) {
	userID := uuid.New()
	orgID := uuid.New()
	user := &model.User{ID: userID, Email: "jan@novak.sk"}

	setup := func(t *testing.T, profile *model.Profile, org *model.Organization) *service.SessionService {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepositoryIface(ctrl)
		profiles := mocks.NewMockProfileRepositoryIface(ctrl)
		orgs := mocks.NewMockOrganizationRepositoryIface(ctrl)

		gomock.InOrder(
			users.EXPECT().FindByID(gomock.Any(), userID).Return(user, nil),
			profiles.EXPECT().FindByIdentity(gomock.Any(), userID).Return(profile, nil),
			orgs.EXPECT().FindByID(gomock.Any(), orgID).Return(org, nil),
		)
		return service.NewSessionService(users, profiles, orgs, newCache(t))
	}

	t.Run("cached after first load", func(t *testing.T) {
		org := &model.Organization{ID: orgID, SubscriptionStatus: entitlement.StatusActive}
		svc := setup(t, model.NewProfile(userID, orgID, model.RoleAdmin), org)

		first, err := svc.Load(context.Background(), userID)
		require.NoError(t, err)
		second, err := svc.Load(context.Background(), userID)
		require.NoError(t, err)

		assert.Equal(t, first.OrgID(), second.OrgID())
		assert.True(t, second.Entitlement.Allowed)
	})

	t.Run("lapsed trial is denied", func(t *testing.T) {
		org := &model.Organization{
			ID:                 orgID,
			SubscriptionPlan:   entitlement.PlanFreeTrial,
			SubscriptionStatus: entitlement.StatusTrialing,
			TrialEndsAt:        time.Now().Add(-24 * time.Hour),
		}
		svc := setup(t, model.NewProfile(userID, orgID, model.RoleAdmin), org)

		app, err := svc.Load(context.Background(), userID)
		require.NoError(t, err)
		assert.False(t, app.Entitlement.Allowed)
		assert.Equal(t, 0, app.Entitlement.DaysLeft)
	})

	t.Run("archived member", func(t *testing.T) {
		profile := model.NewProfile(userID, orgID, model.RoleEmployee)
		profile.IsActive = false
		svc := setup(t, profile, &model.Organization{ID: orgID})

		_, err := svc.Load(context.Background(), userID)
		assert.ErrorIs(t, err, domain.ErrProfileInactive)
	})
}

func TestSessionLoadUnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepositoryIface(ctrl)
	users.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, domain.ErrUserNotFound)

	svc := service.NewSessionService(users, mocks.NewMockProfileRepositoryIface(ctrl), mocks.NewMockOrganizationRepositoryIface(ctrl), newCache(t))
	_, err := svc.Load(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSubscriptionActivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepositoryIface(ctrl)
	profiles := mocks.NewMockProfileRepositoryIface(ctrl)
	orgs := mocks.NewMockOrganizationRepositoryIface(ctrl)

	app := member(model.RoleAdmin)
	app.Organization.TrialEndsAt = time.Now().Add(-time.Hour)

	activated := *app.Organization
	activated.SubscriptionStatus = entitlement.StatusActive
	activated.SubscriptionPlan = entitlement.PlanPaid

	t.Run("failure keeps gate closed", func(t *testing.T) {
		orgs.EXPECT().UpdateSubscription(gomock.Any(), app.OrgID(), gomock.Any()).Return(assert.AnError)

		svc := service.NewSubscriptionService(orgs, service.NewSessionService(users, profiles, orgs, newCache(t)))
		_, err := svc.Activate(context.Background(), app)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("success reloads context", func(t *testing.T) {
		gomock.InOrder(
			orgs.EXPECT().
				UpdateSubscription(gomock.Any(), app.OrgID(), entitlement.Subscription{
					Plan:        entitlement.PlanPaid,
					Status:      entitlement.StatusActive,
					TrialEndsAt: app.Organization.TrialEndsAt,
				}).
				Return(nil),
			users.EXPECT().FindByID(gomock.Any(), app.User.ID).Return(app.User, nil),
			profiles.EXPECT().FindByIdentity(gomock.Any(), app.User.ID).Return(app.Profile, nil),
			orgs.EXPECT().FindByID(gomock.Any(), app.OrgID()).Return(&activated, nil),
		)

		svc := service.NewSubscriptionService(orgs, service.NewSessionService(users, profiles, orgs, newCache(t)))
		fresh, err := svc.Activate(context.Background(), app)
		require.NoError(t, err)
		assert.True(t, fresh.Entitlement.Allowed)
		assert.False(t, fresh.Entitlement.Trialing)
		assert.Equal(t, entitlement.PlanPaid, fresh.Entitlement.Plan)
	})
}
