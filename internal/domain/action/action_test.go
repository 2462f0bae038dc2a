package action

import (
	"errors"
	"testing"
	"time"

	"github.com/felixgeelhaar/statekit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const validURL = "https://github.com/alice/myrepo.git"

func newAction(t *testing.T) *Action {
	t.Helper()
	a, err := New()
	require.NoError(t, err)
	t.Cleanup(a.Stop)
	return a
}

func TestAction_StartsIdle(t *testing.T) {
	t.Parallel()

	a := newAction(t)

	assert.Equal(t, StateIdle, a.State())
	assert.Empty(t, a.Input())
	assert.NoError(t, a.Err())
	assert.True(t, a.State().CanCancel())
	assert.True(t, a.State().CanConfirm())
}

func TestAction_HappyPath(t *testing.T) {
	t.Parallel()

	a := newAction(t)
	require.True(t, a.SetInput(validURL))

	url, err := a.Confirm()
	require.NoError(t, err)
	assert.Equal(t, validURL, url)
	assert.Equal(t, StatePending, a.State())
	assert.Equal(t, 1, a.Attempts())

	assert.False(t, a.State().CanCancel())
	assert.False(t, a.State().CanConfirm())
	assert.False(t, a.SetInput("edited"), "input is locked while pending")
	assert.Equal(t, validURL, a.Input())

	session := a.Session()
	require.True(t, a.Complete(session, nil))
	assert.Equal(t, StateSuccess, a.State())
	assert.Equal(t, 1, a.Completed())
	assert.ErrorIs(t, a.Cancel(), ErrNotAllowed)

	require.True(t, a.Reset(session))
	assert.Equal(t, StateIdle, a.State())
	assert.Empty(t, a.Input())
	assert.NotEqual(t, session, a.Session())
}

func TestAction_InvalidInputStaysEditable(t *testing.T) {
	t.Parallel()

	a := newAction(t)
	a.SetInput("http://github.com/alice/myrepo.git")

	_, err := a.Confirm()
	require.Error(t, err)
	assert.Equal(t, StateFailed, a.State())
	assert.Equal(t, MessageInvalidURL, a.Snapshot().Error)
	assert.True(t, a.State().Editable())
	assert.True(t, a.State().CanCancel())
}

func TestAction_EmptyInput(t *testing.T) {
	t.Parallel()

	a := newAction(t)

	_, err := a.Confirm()
	assert.EqualError(t, err, MessageEmptyURL)
	assert.Equal(t, StateFailed, a.State())
}

func TestAction_EditClearsFailure(t *testing.T) {
	t.Parallel()

	a := newAction(t)
	_, _ = a.Confirm()
	require.Equal(t, StateFailed, a.State())

	require.True(t, a.SetInput("h"))
	assert.Equal(t, StateIdle, a.State())
	assert.NoError(t, a.Err())
}

func TestAction_ReconfirmFromFailed(t *testing.T) {
	t.Parallel()

	a := newAction(t)
	a.SetInput("bad")
	_, _ = a.Confirm()
	require.Equal(t, StateFailed, a.State())

	_, err := a.Confirm()
	require.Error(t, err)
	assert.Equal(t, StateFailed, a.State())
	assert.Equal(t, 2, a.Attempts())
}

func TestAction_ConfirmWhileBusy(t *testing.T) {
	t.Parallel()

	a := newAction(t)
	a.SetInput(validURL)
	_, err := a.Confirm()
	require.NoError(t, err)

	_, err = a.Confirm()
	assert.ErrorIs(t, err, ErrNotAllowed)
	assert.Equal(t, 1, a.Attempts())
}

func TestAction_AbortDuringPendingDropsResult(t *testing.T) {
	t.Parallel()

	a := newAction(t)
	a.SetInput(validURL)
	_, err := a.Confirm()
	require.NoError(t, err)

	stale := a.Session()
	a.Abort()

	assert.Equal(t, StateIdle, a.State())
	assert.False(t, a.Complete(stale, nil), "late simulator result must be ignored")
	assert.Equal(t, StateIdle, a.State())
	assert.Equal(t, 0, a.Completed())
	assert.False(t, a.Reset(stale))
}

func TestAction_SimulatorFailure(t *testing.T) {
	t.Parallel()

	a := newAction(t)
	a.SetInput(validURL)
	_, err := a.Confirm()
	require.NoError(t, err)

	require.True(t, a.Complete(a.Session(), errors.New("remote rejected the push")))
	assert.Equal(t, StateFailed, a.State())
	assert.Equal(t, "remote rejected the push", a.Snapshot().Error)
	assert.False(t, IsValidation(a.Err()))
}

func TestAction_CancelClears(t *testing.T) {
	t.Parallel()

	a := newAction(t)
	a.SetInput("partial")
	before := a.Session()

	require.NoError(t, a.Cancel())
	assert.Empty(t, a.Input())
	assert.Equal(t, before+1, a.Session())
}

func TestAction_CompleteOutsidePending(t *testing.T) {
	t.Parallel()

	a := newAction(t)
	assert.False(t, a.Complete(a.Session(), nil))
	assert.False(t, a.Reset(a.Session()))
	assert.Equal(t, StateIdle, a.State())
}

// Any mix of operations keeps the machine in a known state, and the inline
// error is set exactly when the state is Failed.
func TestAction_OperationSequences(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		a, err := New()
		if err != nil {
			t.Fatal(err)
		}
		defer a.Stop()

		inputs := rapid.SampledFrom([]string{"", validURL, "http://x", "https://github.com/a/b.git", "junk"})
		steps := rapid.IntRange(1, 30).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 5).Draw(t, "op") {
			case 0:
				a.SetInput(inputs.Draw(t, "input"))
			case 1:
				_, _ = a.Confirm()
			case 2:
				a.Complete(a.Session(), nil)
			case 3:
				a.Reset(a.Session())
			case 4:
				_ = a.Cancel()
			case 5:
				a.Abort()
			}

			state := a.State()
			switch state {
			case StateIdle, StatePending, StateSuccess, StateFailed:
			default:
				t.Fatalf("unexpected resting state %s", state)
			}
			if (state == StateFailed) != (a.Err() != nil) {
				t.Fatalf("state %s with err %v", state, a.Err())
			}
		}
	})
}

func TestSuccessNotification(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	a := SuccessNotification(now)
	b := SuccessNotification(now)

	assert.Equal(t, "Repository Cloned Successfully", a.Title)
	assert.Equal(t, "The project has been cloned to your GitHub repository.", a.Description)
	assert.Equal(t, now, a.CreatedAt)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestBuildActionMachine_Transitions(t *testing.T) {
	t.Parallel()

	counts := &Context{}
	interp, err := buildActionMachine(counts)
	require.NoError(t, err)
	interp.Start()
	t.Cleanup(interp.Stop)

	assert.Equal(t, statekit.StateID(StateIdle), interp.State().Value)

	steps := []struct {
		event string
		want  State
	}{
		{EventConfirm, StateValidating},
		{EventInvalid, StateFailed},
		{EventEdit, StateIdle},
		{EventConfirm, StateValidating},
		{EventValid, StatePending},
		{EventFail, StateFailed},
		{EventConfirm, StateValidating},
		{EventValid, StatePending},
		{EventComplete, StateSuccess},
		{EventReset, StateIdle},
		{EventConfirm, StateValidating},
		{EventValid, StatePending},
		{EventAbort, StateIdle},
	}
	for i, step := range steps {
		interp.Send(statekit.Event{Type: statekit.EventType(step.event)})
		assert.Equal(t, statekit.StateID(step.want), interp.State().Value, "step %d: %s", i, step.event)
	}
	assert.Equal(t, 4, counts.Attempts)
	assert.Equal(t, 1, counts.Completed)
}
