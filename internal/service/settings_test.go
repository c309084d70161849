package service_test

import (
	"context"
	"testing"

	"github.com/dangerclosesec/sitebook/internal/auth"
	"github.com/dangerclosesec/sitebook/internal/domain"
	"github.com/dangerclosesec/sitebook/internal/mocks"
	"github.com/dangerclosesec/sitebook/internal/model"
	"github.com/dangerclosesec/sitebook/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type settingsFixture struct {
	users    *mocks.MockUserRepositoryIface
	orgs     *mocks.MockOrganizationRepositoryIface
	profiles *mocks.MockProfileRepositoryIface
	factors  *mocks.MockUserFactorRepositoryIface
	svc      *service.SettingsService
}

func newSettingsFixture(t *testing.T) *settingsFixture {
	ctrl := gomock.NewController(t)
	f := &settingsFixture{
		users:    mocks.NewMockUserRepositoryIface(ctrl),
		orgs:     mocks.NewMockOrganizationRepositoryIface(ctrl),
		profiles: mocks.NewMockProfileRepositoryIface(ctrl),
		factors:  mocks.NewMockUserFactorRepositoryIface(ctrl),
	}
	sessions := service.NewSessionService(f.users, f.profiles, f.orgs, newCache(t))
	f.svc = service.NewSettingsService(f.orgs, f.profiles, f.factors, auth.NewPasswordHasher(), sessions)
	return f
}

func TestSettingsUpdateOrganization(t *testing.T) {
	f := newSettingsFixture(t)
	app := member(model.RoleAdmin)

	renamed := *app.Organization
	renamed.Name = "Novák Stav"
	renamed.LogoURL = "https://cdn.novak.sk/logo.png"

	gomock.InOrder(
		f.orgs.EXPECT().UpdateBranding(gomock.Any(), app.OrgID(), "Novák Stav", "https://cdn.novak.sk/logo.png").Return(nil),
		f.users.EXPECT().FindByID(gomock.Any(), app.User.ID).Return(app.User, nil),
		f.profiles.EXPECT().FindByIdentity(gomock.Any(), app.User.ID).Return(app.Profile, nil),
		f.orgs.EXPECT().FindByID(gomock.Any(), app.OrgID()).Return(&renamed, nil),
	)

	fresh, err := f.svc.UpdateOrganization(context.Background(), app, service.OrganizationSettingsInput{
		Name:    "Novák Stav",
		LogoURL: "https://cdn.novak.sk/logo.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "Novák Stav", fresh.Organization.Name)

	_, err = f.svc.UpdateOrganization(context.Background(), app, service.OrganizationSettingsInput{Name: "X", LogoURL: "not a url"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsUpdateNotifications(t *testing.T) {
	f := newSettingsFixture(t)
	app := member(model.RoleEmployee)
	stored := *app.Profile

	gomock.InOrder(
		f.profiles.EXPECT().FindByID(gomock.Any(), app.OrgID(), app.Profile.ID).Return(&stored, nil),
		f.profiles.EXPECT().Update(gomock.Any(), &stored).Return(nil),
		f.users.EXPECT().FindByID(gomock.Any(), app.User.ID).Return(app.User, nil),
		f.profiles.EXPECT().FindByIdentity(gomock.Any(), app.User.ID).Return(&stored, nil),
		f.orgs.EXPECT().FindByID(gomock.Any(), app.OrgID()).Return(app.Organization, nil),
	)

	fresh, err := f.svc.UpdateNotifications(context.Background(), app, model.NotificationSettings{NotifyTasks: false, NotifyLogs: true})
	require.NoError(t, err)
	assert.False(t, fresh.Profile.Settings.Data().NotifyTasks)
	assert.True(t, fresh.Profile.Settings.Data().NotifyLogs)
}

func TestSettingsChangePassword(t *testing.T) {
	app := member(model.RoleAdmin)

	t.Run("mismatch", func(t *testing.T) {
		f := newSettingsFixture(t)
		err := f.svc.ChangePassword(context.Background(), app, service.PasswordInput{Password: "noveheslo", Confirm: "ineheslo"})
		assert.ErrorIs(t, err, domain.ErrPasswordsDoNotMatch)
	})

	t.Run("too short", func(t *testing.T) {
		f := newSettingsFixture(t)
		err := f.svc.ChangePassword(context.Background(), app, service.PasswordInput{Password: "abc", Confirm: "abc"})
		assert.ErrorIs(t, err, domain.ErrPasswordTooWeak)
	})

	t.Run("replaces hash", func(t *testing.T) {
		f := newSettingsFixture(t)
		factor := &model.UserFactor{UserID: app.User.ID, FactorType: model.FactorHashpass, Material: "old", IsActive: true}

		gomock.InOrder(
			f.factors.EXPECT().FindByUserAndType(gomock.Any(), app.User.ID, model.FactorHashpass).Return(factor, nil),
			f.factors.EXPECT().Update(gomock.Any(), factor).Return(nil),
		)

		require.NoError(t, f.svc.ChangePassword(context.Background(), app, service.PasswordInput{Password: "noveheslo", Confirm: "noveheslo"}))

		ok, err := auth.NewPasswordHasher().Verify("noveheslo", factor.Material)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}
