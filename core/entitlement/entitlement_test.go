package entitlement_test

import (
	"testing"
	"time"

	"github.com/dangerclosesec/sitebook/core/entitlement"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestDecide(t *testing.T) {
	tests := []struct {
		name        string
		sub         entitlement.Subscription
		wantAllowed bool
		wantDays    int
	}{
		{
			name:        "trial expired yesterday",
			sub:         entitlement.Subscription{Plan: entitlement.PlanFreeTrial, Status: entitlement.StatusTrialing, TrialEndsAt: now.AddDate(0, 0, -1)},
			wantAllowed: false,
		},
		{
			name:        "active with past trial end",
			sub:         entitlement.Subscription{Plan: entitlement.PlanPaid, Status: entitlement.StatusActive, TrialEndsAt: now.AddDate(0, -6, 0)},
			wantAllowed: true,
		},
		{
			name:        "trial running",
			sub:         entitlement.Subscription{Plan: entitlement.PlanFreeTrial, Status: entitlement.StatusTrialing, TrialEndsAt: now.Add(36 * time.Hour)},
			wantAllowed: true,
			wantDays:    2,
		},
		{
			name:        "trial ends exactly now",
			sub:         entitlement.Subscription{Status: entitlement.StatusTrialing, TrialEndsAt: now},
			wantAllowed: false,
		},
		{
			name:        "zero trial end",
			sub:         entitlement.Subscription{Status: entitlement.StatusTrialing},
			wantAllowed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := entitlement.Decide(tt.sub, now)
			assert.Equal(t, tt.wantAllowed, d.Allowed)
			assert.Equal(t, tt.wantDays, d.DaysLeft)
		})
	}
}

func TestNewTrial(t *testing.T) {
	sub := entitlement.NewTrial(now, 0)

	assert.Equal(t, entitlement.PlanFreeTrial, sub.Plan)
	assert.Equal(t, entitlement.StatusTrialing, sub.Status)
	assert.Equal(t, now.Add(entitlement.DefaultTrialLength), sub.TrialEndsAt)

	d := entitlement.Decide(sub, now)
	assert.True(t, d.Allowed)
	assert.True(t, d.Trialing)
	assert.Equal(t, 14, d.DaysLeft)
}

func TestActivateReopensGate(t *testing.T) {
	expired := entitlement.Subscription{Plan: entitlement.PlanFreeTrial, Status: entitlement.StatusTrialing, TrialEndsAt: now.AddDate(0, 0, -3)}
	assert.False(t, entitlement.Allowed(expired, now))

	active := entitlement.Activate(expired)
	assert.Equal(t, entitlement.PlanPaid, active.Plan)
	assert.Equal(t, entitlement.StatusActive, active.Status)
	assert.True(t, entitlement.Allowed(active, now))
}

func TestProperty_ActiveAlwaysAllowed(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("active subscriptions pass regardless of trial end", prop.ForAll(
		func(offsetHours int) bool {
			sub := entitlement.Subscription{Status: entitlement.StatusActive, TrialEndsAt: now.Add(time.Duration(offsetHours) * time.Hour)}
			return entitlement.Allowed(sub, now)
		},
		gen.IntRange(-100000, 100000),
	))

	properties.Property("trialing subscriptions pass only before trial end", prop.ForAll(
		func(offsetHours int) bool {
			end := now.Add(time.Duration(offsetHours) * time.Hour)
			sub := entitlement.Subscription{Status: entitlement.StatusTrialing, TrialEndsAt: end}
			return entitlement.Allowed(sub, now) == now.Before(end)
		},
		gen.IntRange(-100000, 100000),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
