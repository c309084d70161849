// Package entitlement decides whether an organization may use the application
// based on its subscription state and trial window.
package entitlement

import (
	"math"
	"time"
)

type Plan string

const (
	PlanFreeTrial Plan = "free_trial"
	PlanPaid      Plan = "paid"
)

type Status string

const (
	StatusTrialing Status = "trialing"
	StatusActive   Status = "active"
)

// DefaultTrialLength is the trial window granted to a new organization.
const DefaultTrialLength = 14 * 24 * time.Hour

// Subscription is the entitlement-relevant slice of an organization.
type Subscription struct {
	Plan        Plan
	Status      Status
	TrialEndsAt time.Time
}

// Decision is the outcome of evaluating a Subscription at a point in time.
type Decision struct {
	Allowed     bool      `json:"allowed"`
	Trialing    bool      `json:"trialing"`
	Plan        Plan      `json:"plan"`
	Status      Status    `json:"status"`
	TrialEndsAt time.Time `json:"trial_ends_at"`
	DaysLeft    int       `json:"days_left"`
}

// NewTrial returns the subscription a freshly provisioned organization starts with.
func NewTrial(now time.Time, length time.Duration) Subscription {
	if length <= 0 {
		length = DefaultTrialLength
	}
	return Subscription{
		Plan:        PlanFreeTrial,
		Status:      StatusTrialing,
		TrialEndsAt: now.Add(length),
	}
}

// Allowed reports whether access is permitted at now: an active subscription
// always passes, otherwise the trial must not have ended yet.
func Allowed(s Subscription, now time.Time) bool {
	return s.Status == StatusActive || now.Before(s.TrialEndsAt)
}

// Decide evaluates s at now.
func Decide(s Subscription, now time.Time) Decision {
	d := Decision{
		Allowed:     Allowed(s, now),
		Plan:        s.Plan,
		Status:      s.Status,
		TrialEndsAt: s.TrialEndsAt,
	}
	if s.Status == StatusActive {
		return d
	}

	d.Trialing = d.Allowed
	if remaining := s.TrialEndsAt.Sub(now); remaining > 0 {
		d.DaysLeft = int(math.Ceil(remaining.Hours() / 24))
	}
	return d
}

// Activate returns s moved to the paid tier. The trial end is kept for history.
func Activate(s Subscription) Subscription {
	s.Status = StatusActive
	s.Plan = PlanPaid
	return s
}

// Valid reports whether p is a known plan.
func (p Plan) Valid() bool {
	return p == PlanFreeTrial || p == PlanPaid
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s == StatusTrialing || s == StatusActive
}
