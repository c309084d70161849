package service_test

import (
	"context"
	"testing"

	"github.com/dangerclosesec/sitebook/core/ledger"
	"github.com/dangerclosesec/sitebook/internal/mocks"
	"github.com/dangerclosesec/sitebook/internal/model"
	"github.com/dangerclosesec/sitebook/internal/repository"
	"github.com/dangerclosesec/sitebook/internal/service"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// store keeps what the services wrote so the ledger mock can read it back.
type store struct {
	site         *model.Site
	materials    []model.Material
	logs         []model.AttendanceLog
	transactions []model.Transaction
}

func (s *store) ledgerData() *repository.LedgerData {
	data := &repository.LedgerData{
		Sites: []ledger.Site{{ID: s.site.ID, Name: s.site.Name, Status: string(s.site.Status), Budget: s.site.Budget}},
	}
	for i := range s.materials {
		data.Materials = append(data.Materials, s.materials[i].LedgerMaterial())
	}
	for i := range s.logs {
		data.Labor = append(data.Labor, s.logs[i].Labor())
	}
	for i := range s.transactions {
		data.Entries = append(data.Entries, s.transactions[i].Entry())
	}
	return data
}

func TestSiteLifecycleRollup(t *testing.T) {
	ctrl := gomock.NewController(t)
	sites := mocks.NewMockSiteRepositoryIface(ctrl)
	materials := mocks.NewMockMaterialRepositoryIface(ctrl)
	logs := mocks.NewMockAttendanceRepositoryIface(ctrl)
	profiles := mocks.NewMockProfileRepositoryIface(ctrl)
	transactions := mocks.NewMockTransactionRepositoryIface(ctrl)
	reader := mocks.NewMockLedgerReaderIface(ctrl)

	app := member(model.RoleAdmin)
	orgID := app.OrgID()
	worker := *app.Profile
	worker.HourlyRate = decimal.NewFromInt(20)

	db := &store{}
	sites.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *model.Site) error {
			s.ID = uuid.New()
			if s.Status == "" {
				s.Status = model.SiteLead
			}
			db.site = s
			return nil
		})
	sites.EXPECT().
		UpdateStatus(gomock.Any(), orgID, gomock.Any(), model.SiteActive).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, status model.SiteStatus) error {
			db.site.Status = status
			return nil
		})
	sites.EXPECT().
		FindByID(gomock.Any(), orgID, gomock.Any()).
		DoAndReturn(func(context.Context, uuid.UUID, uuid.UUID) (*model.Site, error) {
			cp := *db.site
			return &cp, nil
		}).
		AnyTimes()
	materials.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *model.Material) error {
			m.TotalPrice = m.Quantity.Mul(m.UnitPrice)
			db.materials = append(db.materials, *m)
			return nil
		})
	profiles.EXPECT().FindByID(gomock.Any(), orgID, worker.ID).Return(&worker, nil)
	logs.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, l *model.AttendanceLog) error {
			db.logs = append(db.logs, *l)
			return nil
		})
	transactions.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *model.Transaction) error {
			db.transactions = append(db.transactions, *tx)
			return nil
		})
	reader.EXPECT().
		Load(gomock.Any(), orgID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, filter repository.LedgerFilter) (*repository.LedgerData, error) {
			assert.NotEqual(t, uuid.Nil, filter.SiteID, "rollups load one site")
			return db.ledgerData(), nil
		}).
		AnyTimes()

	ctx := context.Background()
	siteSvc := service.NewSiteService(sites, reader)
	materialSvc := service.NewMaterialService(materials, sites)
	attendanceSvc := service.NewAttendanceService(logs, sites, profiles)
	transactionSvc := service.NewTransactionService(transactions, sites)

	site, err := siteSvc.Create(ctx, orgID, service.SiteInput{Name: "Rodinný dom Kováč"})
	require.NoError(t, err)
	assert.Equal(t, model.SiteLead, site.Status)

	require.NoError(t, siteSvc.UpdateStatus(ctx, orgID, site.ID, model.SiteActive))

	_, err = materialSvc.Create(ctx, orgID, site.ID, service.MaterialInput{
		Name:         "Tehla",
		Quantity:     decimal.NewFromInt(10),
		UnitPrice:    decimal.NewFromInt(5),
		PurchaseDate: date(2026, 3, 2, 0, 0),
	})
	require.NoError(t, err)

	_, err = attendanceSvc.Log(ctx, app, service.AttendanceInput{
		SiteID: site.ID,
		Date:   date(2026, 3, 2, 0, 0),
		Hours:  decimal.NewFromInt(8),
	})
	require.NoError(t, err)

	// A later raise must not reach the logged hours.
	worker.HourlyRate = decimal.NewFromInt(35)

	rollup, err := siteSvc.Rollup(ctx, orgID, site.ID)
	require.NoError(t, err)
	assert.True(t, rollup.MaterialCost.Equal(decimal.NewFromInt(50)), rollup.MaterialCost.String())
	assert.True(t, rollup.LaborCost.Equal(decimal.NewFromInt(160)), rollup.LaborCost.String())
	assert.True(t, rollup.TotalCost.Equal(decimal.NewFromInt(210)), rollup.TotalCost.String())
	assert.True(t, rollup.Margin.IsZero())

	_, err = transactionSvc.Create(ctx, orgID, service.TransactionInput{
		SiteID:   &site.ID,
		Type:     ledger.EntryInvoice,
		Category: "Faktúra",
		Amount:   decimal.NewFromInt(500),
		Date:     date(2026, 3, 10, 0, 0),
	})
	require.NoError(t, err)

	rollup, err = siteSvc.Rollup(ctx, orgID, site.ID)
	require.NoError(t, err)
	assert.True(t, rollup.Revenue.Equal(decimal.NewFromInt(500)))
	assert.True(t, rollup.Unpaid.Equal(decimal.NewFromInt(500)))
	assert.True(t, rollup.Profit.Equal(decimal.NewFromInt(290)))
	assert.True(t, rollup.Margin.Equal(decimal.NewFromInt(58)), rollup.Margin.String())
	assert.True(t, rollup.BudgetBurn.IsZero())
}
