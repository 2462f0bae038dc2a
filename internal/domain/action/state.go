// Package action models the confirm-then-run dialog behind "Clone to
// GitHub": URL validation, a simulated remote action and the state machine
// that sequences them.
package action

// State is the dialog's position in the action lifecycle.
type State string

const (
	// StateIdle accepts input and confirmation.
	StateIdle State = "idle"
	// StateValidating is entered on confirm while the URL is checked.
	StateValidating State = "validating"
	// StatePending means the simulated action is running; input is locked.
	StatePending State = "pending"
	// StateSuccess shows the confirmation until the dialog auto-closes.
	StateSuccess State = "success"
	// StateFailed shows an inline error until the next edit or confirm.
	StateFailed State = "failed"
)

// Event types for the action state machine.
const (
	EventConfirm  = "CONFIRM"
	EventInvalid  = "INVALID"
	EventValid    = "VALID"
	EventComplete = "COMPLETE"
	EventFail     = "FAIL"
	EventEdit     = "EDIT"
	EventReset    = "RESET"
	EventAbort    = "ABORT"
)

// String returns the state name.
func (s State) String() string {
	return string(s)
}

// Editable reports whether input may change in s.
func (s State) Editable() bool {
	return s == StateIdle || s == StateFailed
}

// CanConfirm reports whether the confirm button is enabled in s.
func (s State) CanConfirm() bool {
	return s == StateIdle || s == StateFailed
}

// CanCancel reports whether the cancel button is enabled in s.
func (s State) CanCancel() bool {
	return s == StateIdle || s == StateFailed
}

// Busy reports whether a confirmation is in flight.
func (s State) Busy() bool {
	return s == StateValidating || s == StatePending
}
