package checkpoint_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commonmodel/sync-engine/internal/infra/checkpoint"
)

func TestRunCachesSuccessfulSteps(t *testing.T) {
	ctx := context.Background()
	store := checkpoint.NewStore()
	runner := checkpoint.NewRunner(store, "run-1")

	calls := 0
	fn := func(context.Context) (any, error) {
		calls++
		return 42, nil
	}

	v, err := runner.Run(ctx, "step", fn)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = runner.Run(ctx, "step", fn)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, calls)
}

func TestFailedStepIsNotCached(t *testing.T) {
	ctx := context.Background()
	runner := checkpoint.NewRunner(checkpoint.NewStore(), "run-1")

	calls := 0
	fn := func(context.Context) (any, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("transient")
		}
		return "ok", nil
	}

	_, err := runner.Run(ctx, "step", fn)
	require.Error(t, err)

	v, err := runner.Run(ctx, "step", fn)
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, 2, calls)
}

func TestRunsAreIsolatedByRunID(t *testing.T) {
	ctx := context.Background()
	store := checkpoint.NewStore()

	for i, runID := range []string{"run-a", "run-b"} {
		i := i
		v, err := checkpoint.NewRunner(store, runID).Run(ctx, "step", func(context.Context) (any, error) {
			return i, nil
		})
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
}

func TestDropForgetsCompletedRun(t *testing.T) {
	ctx := context.Background()
	store := checkpoint.NewStore()

	calls := 0
	fn := func(context.Context) (any, error) {
		calls++
		return calls, nil
	}

	_, err := checkpoint.NewRunner(store, "run-1").Run(ctx, "step", fn)
	require.NoError(t, err)

	store.Drop("run-1")

	v, err := checkpoint.NewRunner(store, "run-1").Run(ctx, "step", fn)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}
