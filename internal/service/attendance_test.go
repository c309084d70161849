package service_test

import (
	"context"
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

func TestAttendanceLog(t *testing.T) {
	app := member(model.RoleEmployee)
	orgID := app.OrgID()
	active := &model.Site{ID: uuid.New(), OrganizationID: orgID, Name: "Bytovka", Status: model.SiteActive}
	paused := &model.Site{ID: uuid.New(), OrganizationID: orgID, Name: "Garáž", Status: model.SitePaused}

	t.Run("snapshots the current rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		logs := mocks.NewMockAttendanceRepositoryIface(ctrl)
		sites := mocks.NewMockSiteRepositoryIface(ctrl)
		profiles := mocks.NewMockProfileRepositoryIface(ctrl)

		fresh := *app.Profile
		fresh.HourlyRate = decimal.NewFromInt(25)

		gomock.InOrder(
			sites.EXPECT().FindByID(gomock.Any(), orgID, active.ID).Return(active, nil),
			profiles.EXPECT().FindByID(gomock.Any(), orgID, app.Profile.ID).Return(&fresh, nil),
			logs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
		)

		svc := service.NewAttendanceService(logs, sites, profiles)
		log, err := svc.Log(context.Background(), app, service.AttendanceInput{
			SiteID: active.ID,
			Date:   date(2026, 3, 2, 0, 0),
			Hours:  decimal.NewFromInt(8),
		})
		require.NoError(t, err)
		assert.True(t, log.HourlyRateSnapshot.Equal(decimal.NewFromInt(25)))
		assert.Equal(t, app.Profile.ID, log.UserID)
		assert.Equal(t, active.ID, *log.SiteID)
	})

	t.Run("site not active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sites := mocks.NewMockSiteRepositoryIface(ctrl)
		sites.EXPECT().FindByID(gomock.Any(), orgID, paused.ID).Return(paused, nil)

		svc := service.NewAttendanceService(mocks.NewMockAttendanceRepositoryIface(ctrl), sites, mocks.NewMockProfileRepositoryIface(ctrl))
		_, err := svc.Log(context.Background(), app, service.AttendanceInput{
			SiteID: paused.ID,
			Date:   date(2026, 3, 2, 0, 0),
			Hours:  decimal.NewFromInt(8),
		})
		assert.ErrorIs(t, err, domain.ErrSiteInactive)
	})

	t.Run("hours out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := service.NewAttendanceService(mocks.NewMockAttendanceRepositoryIface(ctrl), mocks.NewMockSiteRepositoryIface(ctrl), mocks.NewMockProfileRepositoryIface(ctrl))

		for _, hours := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-2), decimal.NewFromInt(25)} {
			_, err := svc.Log(context.Background(), app, service.AttendanceInput{SiteID: active.ID, Date: date(2026, 3, 2, 0, 0), Hours: hours})
			assert.ErrorIs(t, err, domain.ErrInvalidInput, hours.String())
		}
	})
}

func TestWorkerSitesListsActiveOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	sites := mocks.NewMockSiteRepositoryIface(ctrl)
	orgID := uuid.New()
	sites.EXPECT().List(gomock.Any(), orgID, model.SiteActive).Return([]model.Site{{Name: "Bytovka"}}, nil)

	svc := service.NewAttendanceService(mocks.NewMockAttendanceRepositoryIface(ctrl), sites, mocks.NewMockProfileRepositoryIface(ctrl))
	out, err := svc.WorkerSites(context.Background(), orgID)
	require.NoError(t, err)
	assert.Len(t, out, 1)
}
