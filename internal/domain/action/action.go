package action

import (
	"errors"
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

// Context is the statekit context type for the action machine.
type Context struct {
	Attempts  int
	Completed int
}

// Action drives one dialog instance through its states. It is not safe for
// concurrent use; the TUI calls it from its update loop only.
type Action struct {
	interp  *statekit.Interpreter[Context]
	counts  *Context
	input   string
	target  string
	failure error
	session uint64
}

// Snapshot is a read-only view of the action for rendering.
type Snapshot struct {
	State   State
	Input   string
	Target  string
	Error   string
	Session uint64
}

// New creates an Action in StateIdle.
func New() (*Action, error) {
	counts := &Context{}
	interp, err := buildActionMachine(counts)
	if err != nil {
		return nil, fmt.Errorf("failed to build action machine: %w", err)
	}
	interp.Start()
	return &Action{interp: interp, counts: counts, session: 1}, nil
}

// MustNew is New for static wiring; it panics if the machine definition is
// invalid.
func MustNew() *Action {
	a, err := New()
	if err != nil {
		panic(err)
	}
	return a
}

// buildActionMachine captures counts in the action closures so entry
// actions update the caller's struct.
func buildActionMachine(counts *Context) (*statekit.Interpreter[Context], error) {
	machine, err := statekit.NewMachine[Context]("clone-action").
		WithInitial(statekit.StateID(StateIdle)).
		WithContext(*counts).
		WithAction("recordAttempt", func(_ *Context, _ statekit.Event) {
			counts.Attempts++
		}).
		WithAction("recordCompletion", func(_ *Context, _ statekit.Event) {
			counts.Completed++
		}).
		State(statekit.StateID(StateIdle)).
		On(EventConfirm).Target(statekit.StateID(StateValidating)).Done().
		State(statekit.StateID(StateValidating)).
		OnEntry("recordAttempt").
		On(EventInvalid).Target(statekit.StateID(StateFailed)).
		On(EventValid).Target(statekit.StateID(StatePending)).
		On(EventAbort).Target(statekit.StateID(StateIdle)).Done().
		State(statekit.StateID(StatePending)).
		On(EventComplete).Target(statekit.StateID(StateSuccess)).
		On(EventFail).Target(statekit.StateID(StateFailed)).
		On(EventAbort).Target(statekit.StateID(StateIdle)).Done().
		State(statekit.StateID(StateSuccess)).
		OnEntry("recordCompletion").
		On(EventReset).Target(statekit.StateID(StateIdle)).
		On(EventAbort).Target(statekit.StateID(StateIdle)).Done().
		State(statekit.StateID(StateFailed)).
		On(EventEdit).Target(statekit.StateID(StateIdle)).
		On(EventConfirm).Target(statekit.StateID(StateValidating)).
		On(EventAbort).Target(statekit.StateID(StateIdle)).Done().
		Build()
	if err != nil {
		return nil, err
	}

	return statekit.NewInterpreter(machine), nil
}

// State returns the current state.
func (a *Action) State() State {
	return State(a.interp.State().Value)
}

// Input returns the current input text.
func (a *Action) Input() string { return a.input }

// Err returns the inline error shown in StateFailed, or nil.
func (a *Action) Err() error { return a.failure }

// Session identifies the current open instance. It changes on every abort
// and reset so results scheduled by an older instance can be dropped.
func (a *Action) Session() uint64 { return a.session }

// Attempts returns how many confirmations reached validation.
func (a *Action) Attempts() int { return a.counts.Attempts }

// Completed returns how many simulated actions succeeded.
func (a *Action) Completed() int { return a.counts.Completed }

// Snapshot captures the current state for rendering.
func (a *Action) Snapshot() Snapshot {
	s := Snapshot{
		State:   a.State(),
		Input:   a.input,
		Target:  a.target,
		Session: a.session,
	}
	if a.failure != nil {
		s.Error = a.failure.Error()
	}
	return s
}

// SetInput replaces the input text. While Failed, any change clears the
// error and returns to Idle. Input is locked outside Idle and Failed.
func (a *Action) SetInput(text string) bool {
	state := a.State()
	if !state.Editable() {
		return false
	}
	if text == a.input {
		return true
	}
	a.input = text
	if state == StateFailed {
		a.failure = nil
		a.interp.Send(statekit.Event{Type: EventEdit})
	}
	return true
}

// Confirm validates the input. On success the action is Pending and the
// returned URL is what the simulator should run against. On a validation
// failure the action is Failed and the ValidationError is returned.
func (a *Action) Confirm() (string, error) {
	if !a.State().CanConfirm() {
		return "", ErrNotAllowed
	}

	a.failure = nil
	a.interp.Send(statekit.Event{Type: EventConfirm})

	if err := ValidateRepoURL(a.input); err != nil {
		a.failure = err
		a.interp.Send(statekit.Event{Type: EventInvalid, Payload: err})
		return "", err
	}

	a.target = a.input
	a.interp.Send(statekit.Event{Type: EventValid})
	return a.target, nil
}

// Complete records the simulator outcome for session. Results for another
// session, or arriving outside Pending, are ignored and report false.
func (a *Action) Complete(session uint64, err error) bool {
	if session != a.session || a.State() != StatePending {
		return false
	}
	if err != nil {
		a.failure = err
		a.interp.Send(statekit.Event{Type: EventFail, Payload: err})
		return true
	}
	a.interp.Send(statekit.Event{Type: EventComplete})
	return true
}

// Reset finishes a successful run for session: input is cleared and the
// action returns to Idle. It reports false for stale sessions.
func (a *Action) Reset(session uint64) bool {
	if session != a.session || a.State() != StateSuccess {
		return false
	}
	a.interp.Send(statekit.Event{Type: EventReset})
	a.clear()
	return true
}

// Cancel closes the dialog from Idle or Failed, clearing the input.
func (a *Action) Cancel() error {
	if !a.State().CanCancel() {
		return ErrNotAllowed
	}
	a.Abort()
	return nil
}

// Abort abandons whatever is in flight, e.g. on close or unmount. The
// session changes so late results are discarded.
func (a *Action) Abort() {
	if a.State() != StateIdle {
		a.interp.Send(statekit.Event{Type: EventAbort})
	}
	a.clear()
}

// Stop releases the underlying interpreter.
func (a *Action) Stop() {
	a.interp.Stop()
}

func (a *Action) clear() {
	a.input = ""
	a.target = ""
	a.failure = nil
	a.session++
}

// IsValidation reports whether err is an input validation error.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
