package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dangerclosesec/sitebook/core/entitlement"
	"github.com/dangerclosesec/sitebook/core/schedule"
	"github.com/dangerclosesec/sitebook/internal/auth"
	"github.com/dangerclosesec/sitebook/internal/config"
	"github.com/dangerclosesec/sitebook/internal/email"
	"github.com/dangerclosesec/sitebook/internal/handler"
	"github.com/dangerclosesec/sitebook/internal/mocks"
	"github.com/dangerclosesec/sitebook/internal/model"
	"github.com/dangerclosesec/sitebook/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type nopSender struct{}

func (nopSender) SendEmail(context.Context, email.EmailData) error { return nil }

type api struct {
	router http.Handler
	tokens *auth.TokenManager

	tx           *mocks.MockTransactor
	users        *mocks.MockUserRepositoryIface
	factors      *mocks.MockUserFactorRepositoryIface
	orgs         *mocks.MockOrganizationRepositoryIface
	profiles     *mocks.MockProfileRepositoryIface
	sites        *mocks.MockSiteRepositoryIface
	materials    *mocks.MockMaterialRepositoryIface
	transactions *mocks.MockTransactionRepositoryIface
	quotes       *mocks.MockQuoteRepositoryIface
	tasks        *mocks.MockTaskRepositoryIface
	logs         *mocks.MockAttendanceRepositoryIface
	ledger       *mocks.MockLedgerReaderIface
}

func newAPI(t *testing.T) *api {
	ctrl := gomock.NewController(t)
	a := &api{
		tokens:       auth.NewTokenManager("test-secret", time.Hour),
		tx:           mocks.NewMockTransactor(ctrl),
		users:        mocks.NewMockUserRepositoryIface(ctrl),
		factors:      mocks.NewMockUserFactorRepositoryIface(ctrl),
		orgs:         mocks.NewMockOrganizationRepositoryIface(ctrl),
		profiles:     mocks.NewMockProfileRepositoryIface(ctrl),
		sites:        mocks.NewMockSiteRepositoryIface(ctrl),
		materials:    mocks.NewMockMaterialRepositoryIface(ctrl),
		transactions: mocks.NewMockTransactionRepositoryIface(ctrl),
		quotes:       mocks.NewMockQuoteRepositoryIface(ctrl),
		tasks:        mocks.NewMockTaskRepositoryIface(ctrl),
		logs:         mocks.NewMockAttendanceRepositoryIface(ctrl),
		ledger:       mocks.NewMockLedgerReaderIface(ctrl),
	}
	a.tx.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()

	cache := service.NewCacheService(service.CacheConfig{TTL: time.Minute, CleanupFreq: time.Minute})
	t.Cleanup(cache.Close)

	hasher := auth.NewPasswordHasher()
	sessions := service.NewSessionService(a.users, a.profiles, a.orgs, cache)
	tenants := service.NewTenantService(a.tx, a.users, a.factors, a.orgs, a.profiles, hasher, a.tokens, nopSender{}, sessions, config.Load())
	attendance := service.NewAttendanceService(a.logs, a.sites, a.profiles)
	tasks, err := service.NewTaskService(a.tasks, a.sites, a.profiles, schedule.DefaultGrid())
	require.NoError(t, err)

	routes := handler.Routes{
		Auth:      handler.NewAuthHandler(tenants),
		Session:   handler.NewSessionHandler(service.NewSubscriptionService(a.orgs, sessions)),
		Sites:     handler.NewSiteHandler(service.NewSiteService(a.sites, a.ledger), service.NewMaterialService(a.materials, a.sites)),
		Finance:   handler.NewFinanceHandler(service.NewTransactionService(a.transactions, a.sites)),
		Quotes:    handler.NewQuoteHandler(service.NewQuoteService(a.quotes, a.sites)),
		Tasks:     handler.NewTaskHandler(tasks),
		Team:      handler.NewTeamHandler(service.NewTeamService(a.profiles, sessions), attendance, service.NewPayrollService(a.tx, a.profiles, a.logs, a.transactions)),
		Worker:    handler.NewWorkerHandler(attendance),
		Analytics: handler.NewAnalyticsHandler(service.NewAnalyticsService(a.ledger, a.sites, a.profiles, a.tasks)),
		Settings:  handler.NewSettingsHandler(service.NewSettingsService(a.orgs, a.profiles, a.factors, hasher, sessions)),
	}

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		routes.Mount(r, a.tokens, sessions)
	})
	a.router = r
	return a
}

// signIn stores the membership the session middleware resolves and returns
// a bearer token for it. trialLeft may be negative for a lapsed trial.
func (a *api) signIn(t *testing.T, role model.Role, trialLeft time.Duration) (string, *model.Organization) {
	t.Helper()

	org := &model.Organization{
		ID:                 uuid.New(),
		Name:               "Stavby Novák s.r.o.",
		SubscriptionPlan:   entitlement.PlanFreeTrial,
		SubscriptionStatus: entitlement.StatusTrialing,
		TrialEndsAt:        time.Now().Add(trialLeft),
	}
	user := &model.User{ID: uuid.New(), Email: "jan@novak.sk", FirstName: "Ján", LastName: "Novák", Status: model.StatusActive}
	profile := model.NewProfile(user.ID, org.ID, role)
	profile.FullName = user.FullName()

	a.users.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil).AnyTimes()
	a.profiles.EXPECT().FindByIdentity(gomock.Any(), user.ID).Return(profile, nil).AnyTimes()
	a.orgs.EXPECT().FindByID(gomock.Any(), org.ID).Return(org, nil).MaxTimes(1)

	token, err := a.tokens.Generate(user.ID, user.Email)
	require.NoError(t, err)
	return token, org
}

func (a *api) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

func (a *api) doRaw(t *testing.T, method, path, contentType string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}
