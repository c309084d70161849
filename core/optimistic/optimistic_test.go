package optimistic_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dangerclosesec/sitebook/core/optimistic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps change when persisted", func(t *testing.T) {
		paid := false
		m := optimistic.New("toggle paid", func() { paid = true }, func() { paid = false })

		err := optimistic.Run(ctx, m, func(ctx context.Context) error {
			assert.True(t, paid, "local change must be visible before persistence")
			return nil
		})

		require.NoError(t, err)
		assert.True(t, paid)
		assert.True(t, m.Applied())
	})

	t.Run("reverts when persistence fails", func(t *testing.T) {
		paid := false
		m := optimistic.New("toggle paid", func() { paid = true }, func() { paid = false })
		boom := errors.New("network down")

		err := optimistic.Run(ctx, m, func(ctx context.Context) error { return boom })

		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "toggle paid")
		assert.False(t, paid)
		assert.False(t, m.Applied())
	})
}

func TestApplyRevertIdempotent(t *testing.T) {
	counter := 0
	m := optimistic.New("inc", func() { counter++ }, func() { counter-- })

	m.Revert()
	assert.Equal(t, 0, counter)

	m.Apply()
	m.Apply()
	assert.Equal(t, 1, counter)

	m.Revert()
	m.Revert()
	assert.Equal(t, 0, counter)
}
