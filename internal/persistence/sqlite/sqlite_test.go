package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"example.com/fitpulse/internal/persistence"
	"example.com/fitpulse/internal/persistence/mediumtest"
)

func quietLogger() logrus.FieldLogger {
	logger, _ := test.NewNullLogger()
	return logger
}

func TestSQLiteMediumContract(t *testing.T) {
	mediumtest.Run(t, func(t *testing.T) persistence.Medium {
		m, err := Open(context.Background(), ":memory:", quietLogger())
		require.NoError(t, err)
		t.Cleanup(func() { _ = m.Close() })
		return m
	})
}

func TestSQLiteMediumPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "fitpulse.db")

	first, err := Open(ctx, path, quietLogger())
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "workout_tracker_workouts", []byte(`[{"id":"w1"}]`)))
	require.NoError(t, first.Close())

	second, err := Open(ctx, path, quietLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	value, err := second.Get(ctx, "workout_tracker_workouts")
	require.NoError(t, err)
	require.JSONEq(t, `[{"id":"w1"}]`, string(value))
}

func TestSQLiteMediumCloseTwice(t *testing.T) {
	m, err := Open(context.Background(), ":memory:", quietLogger())
	require.NoError(t, err)
	require.NoError(t, m.Close())
	require.NoError(t, m.Close())
}

func TestSQLiteMigrationsAppliedOncePerDatabase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "fitpulse.db")
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	first, err := Open(ctx, path, logger)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	entries := hook.AllEntries()
	require.Len(t, entries, 1)
	require.Equal(t, "applied migration", entries[0].Message)
	require.EqualValues(t, 1, entries[0].Data["version"])

	hook.Reset()
	second, err := Open(ctx, path, logger)
	require.NoError(t, err)
	require.NoError(t, second.Close())
	require.Empty(t, hook.AllEntries())
}

func TestSQLiteOpenConcurrently(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	const n = 4
	media := make([]*Medium, n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			media[i], errs[i] = Open(ctx, filepath.Join(dir, fmt.Sprintf("db%d.db", i)), quietLogger())
		}()
	}
	wg.Wait()

	for i := range n {
		require.NoError(t, errs[i])
		key := fmt.Sprintf("key%d", i)
		require.NoError(t, media[i].Set(ctx, key, []byte("v")))
		for j := range n {
			value, err := media[j].Get(ctx, key)
			require.NoError(t, err)
			if i == j {
				require.Equal(t, []byte("v"), value)
			} else {
				require.Nil(t, value)
			}
		}
	}
	for _, m := range media {
		require.NoError(t, m.Close())
	}
}
