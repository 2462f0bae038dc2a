package action

import (
	"context"
	"time"
)

// DefaultPendingDelay is how long the default simulator takes.
const DefaultPendingDelay = 2 * time.Second

// Simulator stands in for the remote clone. Run blocks until the simulated
// work finishes or ctx is done, in which case it returns ctx.Err().
type Simulator interface {
	Run(ctx context.Context, url string) error
}

// SimulatorFunc adapts a function to the Simulator interface.
type SimulatorFunc func(ctx context.Context, url string) error

// Run calls f.
func (f SimulatorFunc) Run(ctx context.Context, url string) error {
	return f(ctx, url)
}

// TimedSimulator waits Delay and then returns Outcome, nil by default.
type TimedSimulator struct {
	Delay   time.Duration
	Outcome error
}

// NewTimedSimulator creates a simulator that always succeeds after delay.
func NewTimedSimulator(delay time.Duration) TimedSimulator {
	return TimedSimulator{Delay: delay}
}

// Run waits for the delay or for cancellation.
func (s TimedSimulator) Run(ctx context.Context, _ string) error {
	if s.Delay <= 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		return s.Outcome
	}

	timer := time.NewTimer(s.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return s.Outcome
	}
}

// InstantSimulator completes immediately with Err.
type InstantSimulator struct {
	Err error
}

// Run returns Err unless ctx is already done.
func (s InstantSimulator) Run(ctx context.Context, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.Err
}
