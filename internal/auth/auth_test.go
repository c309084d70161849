package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher()

	encoded, err := h.Hash("tajneheslo")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$"))

	ok, err := h.Verify("tajneheslo", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("ine", encoded)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = h.Verify("x", "plain")
	assert.Error(t, err)
}

func TestValidateNew(t *testing.T) {
	tests := []struct {
		name     string
		password string
		confirm  string
		wantErr  error
	}{
		{"ok", "heslo1", "heslo1", nil},
		{"too short", "abc", "abc", ErrPasswordTooShort},
		{"mismatch", "heslo12", "heslo13", ErrPasswordMismatch},
		{"multibyte counts runes", "žžžžžž", "žžžžžž", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, ValidateNew(tt.password, tt.confirm), tt.wantErr)
		})
	}
}

func TestTokenManager(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	userID := uuid.New()

	token, err := tm.Generate(userID, "jana@example.com")
	require.NoError(t, err)

	claims, err := tm.Validate(token)
	require.NoError(t, err)
	got, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, got)
	assert.Equal(t, "jana@example.com", claims.Email)

	t.Run("expired", func(t *testing.T) {
		later := NewTokenManager("secret", time.Hour)
		later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := later.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := NewTokenManager("other", time.Hour).Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestNewVerificationToken(t *testing.T) {
	a, err := NewVerificationToken()
	require.NoError(t, err)
	b, err := NewVerificationToken()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 32)
}
