// Package mediumtest holds a behavioural suite every persistence.Medium must pass.
package mediumtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/fitpulse/internal/persistence"
)

// Factory opens a fresh, empty medium for a single subtest.
type Factory func(t *testing.T) persistence.Medium

// Run exercises the Medium contract against media produced by open.
func Run(t *testing.T, open Factory) {
	t.Helper()

	t.Run("get absent key returns nil", func(t *testing.T) {
		m := open(t)
		value, err := m.Get(context.Background(), "missing")
		require.NoError(t, err)
		require.Nil(t, value)
	})

	t.Run("set then get", func(t *testing.T) {
		m := open(t)
		ctx := context.Background()
		require.NoError(t, m.Set(ctx, "workout_tracker_user", []byte(`{"id":"u1"}`)))

		value, err := m.Get(ctx, "workout_tracker_user")
		require.NoError(t, err)
		require.JSONEq(t, `{"id":"u1"}`, string(value))
	})

	t.Run("set overwrites", func(t *testing.T) {
		m := open(t)
		ctx := context.Background()
		require.NoError(t, m.Set(ctx, "k", []byte(`"old"`)))
		require.NoError(t, m.Set(ctx, "k", []byte(`"new"`)))

		value, err := m.Get(ctx, "k")
		require.NoError(t, err)
		require.Equal(t, `"new"`, string(value))
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		m := open(t)
		ctx := context.Background()
		require.NoError(t, m.Set(ctx, "k", []byte(`1`)))
		require.NoError(t, m.Delete(ctx, "k"))

		value, err := m.Get(ctx, "k")
		require.NoError(t, err)
		require.Nil(t, value)

		require.NoError(t, m.Delete(ctx, "k"))
	})

	t.Run("keys are independent", func(t *testing.T) {
		m := open(t)
		ctx := context.Background()
		require.NoError(t, m.Set(ctx, "a", []byte(`[1]`)))
		require.NoError(t, m.Set(ctx, "b", []byte(`[2]`)))
		require.NoError(t, m.Delete(ctx, "a"))

		value, err := m.Get(ctx, "b")
		require.NoError(t, err)
		require.Equal(t, `[2]`, string(value))
	})

	t.Run("closed medium is unavailable", func(t *testing.T) {
		m := open(t)
		ctx := context.Background()
		require.NoError(t, m.Close())

		_, err := m.Get(ctx, "k")
		require.ErrorIs(t, err, persistence.ErrUnavailable)
		require.ErrorIs(t, m.Set(ctx, "k", []byte(`1`)), persistence.ErrUnavailable)
		require.ErrorIs(t, m.Delete(ctx, "k"), persistence.ErrUnavailable)
	})
}
