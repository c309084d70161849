package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dangerclosesec/sitebook/core/entitlement"
	"github.com/dangerclosesec/sitebook/internal/email"
	"github.com/dangerclosesec/sitebook/internal/mocks"
	"github.com/dangerclosesec/sitebook/internal/model"
	"github.com/dangerclosesec/sitebook/internal/service"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// passthroughTx runs transactional callbacks directly.
func passthroughTx(ctrl *gomock.Controller) *mocks.MockTransactor {
	tx := mocks.NewMockTransactor(ctrl)
	tx.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()
	return tx
}

func newCache(t *testing.T) *service.CacheService {
	c := service.NewCacheService(service.CacheConfig{TTL: 5 * time.Minute, CleanupFreq: time.Minute})
	t.Cleanup(c.Close)
	return c
}

type recordingSender struct {
	mu   sync.Mutex
	sent []email.EmailData
	err  error
}

func (r *recordingSender) SendEmail(_ context.Context, data email.EmailData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, data)
	return r.err
}

// member returns an app context for a member of a trialing organization.
func member(role model.Role) *service.AppContext {
	org := &model.Organization{
		ID:                 uuid.New(),
		Name:               "Stavby Novák s.r.o.",
		SubscriptionPlan:   entitlement.PlanFreeTrial,
		SubscriptionStatus: entitlement.StatusTrialing,
		TrialEndsAt:        time.Now().Add(7 * 24 * time.Hour),
	}
	user := &model.User{ID: uuid.New(), Email: "jan@novak.sk", FirstName: "Ján", LastName: "Novák", Status: model.StatusActive}
	profile := model.NewProfile(user.ID, org.ID, role)
	profile.Email = user.Email
	profile.FullName = user.FullName()

	return &service.AppContext{
		User:         user,
		Profile:      profile,
		Organization: org,
		Entitlement:  entitlement.Decide(org.Subscription(), time.Now()),
	}
}

func date(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.UTC)
}
