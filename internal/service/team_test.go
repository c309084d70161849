package service_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/dangerclosesec/sitebook/internal/domain"
	"github.com/dangerclosesec/sitebook/internal/mocks"
	"github.com/dangerclosesec/sitebook/internal/model"
	"github.com/dangerclosesec/sitebook/internal/service"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTeamService(t *testing.T) (*service.TeamService, *mocks.MockProfileRepositoryIface) {
	ctrl := gomock.NewController(t)
	profiles := mocks.NewMockProfileRepositoryIface(ctrl)
	sessions := service.NewSessionService(mocks.NewMockUserRepositoryIface(ctrl), profiles, mocks.NewMockOrganizationRepositoryIface(ctrl), newCache(t))
	return service.NewTeamService(profiles, sessions), profiles
}

func TestTeamCreateMember(t *testing.T) {
	svc, profiles := newTeamService(t)
	orgID := uuid.New()
	profiles.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	p, err := svc.CreateMember(context.Background(), orgID, service.MemberInput{
		FullName:   "  Jozef Mráz ",
		HourlyRate: decimal.NewFromInt(12),
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, orgID, p.OrganizationID)
	assert.Equal(t, "Jozef Mráz", p.FullName)
	assert.Equal(t, model.RoleEmployee, p.Role)
	assert.True(t, p.IsActive)
	assert.Regexp(t, regexp.MustCompile(`^worker-\d+@local\.app$`), p.Email)
	assert.True(t, p.Settings.Data().NotifyTasks)
}

func TestTeamMemberValidation(t *testing.T) {
	svc, _ := newTeamService(t)

	tests := []struct {
		name  string
		input service.MemberInput
	}{
		{"missing name", service.MemberInput{}},
		{"negative rate", service.MemberInput{FullName: "A", HourlyRate: decimal.NewFromInt(-1)}},
		{"unknown role", service.MemberInput{FullName: "A", Role: "owner"}},
		{"bad email", service.MemberInput{FullName: "A", Email: "nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateMember(context.Background(), uuid.New(), tt.input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestTeamUpdate(t *testing.T) {
	svc, profiles := newTeamService(t)
	orgID := uuid.New()
	existing := model.NewProfile(uuid.New(), orgID, model.RoleEmployee)
	existing.Email = "jozef@novak.sk"

	gomock.InOrder(
		profiles.EXPECT().FindByID(gomock.Any(), orgID, existing.ID).Return(existing, nil),
		profiles.EXPECT().Update(gomock.Any(), existing).Return(nil),
	)

	p, err := svc.Update(context.Background(), orgID, existing.ID, service.MemberInput{
		FullName:   "Jozef Mráz",
		Phone:      "+421 900 000 000",
		HourlyRate: decimal.NewFromInt(15),
		Role:       model.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, "jozef@novak.sk", p.Email)
	assert.Equal(t, model.RoleAdmin, p.Role)
	assert.True(t, p.HourlyRate.Equal(decimal.NewFromInt(15)))
}

func TestTeamArchiveRestoreDelete(t *testing.T) {
	svc, profiles := newTeamService(t)
	orgID, id := uuid.New(), uuid.New()

	gomock.InOrder(
		profiles.EXPECT().SetActive(gomock.Any(), orgID, id, false).Return(nil),
		profiles.EXPECT().SetActive(gomock.Any(), orgID, id, true).Return(nil),
		profiles.EXPECT().Delete(gomock.Any(), orgID, id).Return(domain.ErrProfileActive),
	)

	require.NoError(t, svc.Archive(context.Background(), orgID, id))
	require.NoError(t, svc.Restore(context.Background(), orgID, id))
	assert.ErrorIs(t, svc.Delete(context.Background(), orgID, id), domain.ErrProfileActive)
}
