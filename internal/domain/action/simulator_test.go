package action

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimedSimulator_Waits(t *testing.T) {
	t.Parallel()

	sim := NewTimedSimulator(30 * time.Millisecond)
	start := time.Now()

	err := sim.Run(context.Background(), "https://github.com/a/b.git")

	assert.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestTimedSimulator_Canceled(t *testing.T) {
	t.Parallel()

	sim := NewTimedSimulator(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- sim.Run(ctx, "x") }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestTimedSimulator_Outcome(t *testing.T) {
	t.Parallel()

	boom := errors.New("remote rejected")
	assert.ErrorIs(t, TimedSimulator{Outcome: boom}.Run(context.Background(), "x"), boom)
	assert.ErrorIs(t, TimedSimulator{Delay: time.Millisecond, Outcome: boom}.Run(context.Background(), "x"), boom)
}

func TestInstantSimulator(t *testing.T) {
	t.Parallel()

	assert.NoError(t, InstantSimulator{}.Run(context.Background(), "x"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, InstantSimulator{}.Run(ctx, "x"), context.Canceled)
}

func TestSimulatorFunc(t *testing.T) {
	t.Parallel()

	var got string
	sim := SimulatorFunc(func(_ context.Context, url string) error {
		got = url
		return nil
	})

	assert.NoError(t, sim.Run(context.Background(), "https://github.com/a/b.git"))
	assert.Equal(t, "https://github.com/a/b.git", got)
}
