package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dangerclosesec/sitebook/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrSiteNotFound, http.StatusNotFound},
		{fmt.Errorf("loading: %w", domain.ErrOrganizationNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: hours must be positive", domain.ErrInvalidInput), http.StatusBadRequest},
		{domain.ErrSignupTarget, http.StatusBadRequest},
		{domain.ErrTaskRange, http.StatusBadRequest},
		{domain.ErrEmailAlreadyExists, http.StatusConflict},
		{domain.ErrNothingOwed, http.StatusConflict},
		{domain.ErrProfileActive, http.StatusConflict},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrAdminOnly, http.StatusForbidden},
		{domain.ErrProfileInactive, http.StatusForbidden},
		{domain.ErrEntitlementLapsed, http.StatusPaymentRequired},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestQueryDateInLocation(t *testing.T) {
	t.Run("offset", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/calendar?date=2026-06-03&tz=%2B02:00", nil)

		loc, ok := queryLocation(w, r)
		require.True(t, ok)
		d, ok := queryDate(w, r, "date", loc)
		require.True(t, ok)

		_, offset := d.Zone()
		assert.Equal(t, 2*60*60, offset)
		assert.True(t, d.Equal(time.Date(2026, 6, 2, 22, 0, 0, 0, time.UTC)))
	})

	t.Run("zone name", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/calendar?tz=UTC", nil)
		loc, ok := queryLocation(httptest.NewRecorder(), r)
		require.True(t, ok)
		assert.Equal(t, time.UTC, loc)
	})

	t.Run("default", func(t *testing.T) {
		loc, ok := queryLocation(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/calendar", nil))
		require.True(t, ok)
		assert.Equal(t, time.Local, loc)
	})

	t.Run("invalid", func(t *testing.T) {
		w := httptest.NewRecorder()
		_, ok := queryLocation(w, httptest.NewRequest(http.MethodGet, "/calendar?tz=Mars/Olympus", nil))
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
