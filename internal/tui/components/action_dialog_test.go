package components

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amenflux/gitopsview/internal/domain/action"
	"github.com/amenflux/gitopsview/internal/ports"
	"github.com/amenflux/gitopsview/internal/testutil/mocks"
	"github.com/amenflux/gitopsview/internal/tui/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validURL = "https://github.com/username/repo.git"

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func openDialog(t *testing.T, cfg DialogConfig) ActionDialog {
	t.Helper()
	if cfg.Now == nil {
		cfg.Now = func() time.Time { return fixedNow }
	}
	if cfg.SuccessDelay == 0 {
		cfg.SuccessDelay = time.Millisecond
	}
	d, _ := NewActionDialog(cfg).Open()
	t.Cleanup(d.Stop)
	return d
}

func TestActionDialog_HappyPath(t *testing.T) {
	t.Parallel()

	d := openDialog(t, DialogConfig{Simulator: action.InstantSimulator{}})
	require.True(t, d.Visible())

	d, _ = d.Update(runes(validURL))
	assert.Equal(t, validURL, d.Input())
	assert.Equal(t, action.StateIdle, d.State())

	d, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, action.StatePending, d.State())
	assert.Contains(t, d.View(), DialogPendingLabel)

	result, ok := findMsg[cloneResultMsg](drain(cmd))
	require.True(t, ok)

	d, cmd = d.Update(result)
	assert.Equal(t, action.StateSuccess, d.State())
	assert.Contains(t, d.View(), DialogSuccessLabel)

	msgs := drain(cmd)
	note, ok := findMsg[ui.NotificationMsg](msgs)
	require.True(t, ok)
	assert.Equal(t, action.SuccessTitle, note.Notification.Title)
	assert.Equal(t, action.SuccessDescription, note.Notification.Description)
	assert.Equal(t, fixedNow, note.Notification.CreatedAt)

	closeMsg, ok := findMsg[autoCloseMsg](msgs)
	require.True(t, ok)

	d, cmd = d.Update(closeMsg)
	assert.False(t, d.Visible())
	assert.Equal(t, action.StateIdle, d.State())
	assert.Empty(t, d.Input())
	require.NotNil(t, cmd)
	assert.Equal(t, ui.DialogClosedMsg{}, cmd())
}

func TestActionDialog_EmptyURL(t *testing.T) {
	t.Parallel()

	d := openDialog(t, DialogConfig{Simulator: action.InstantSimulator{}})

	d, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, action.StateFailed, d.State())
	assert.Equal(t, action.MessageEmptyURL, d.Snapshot().Error)
	assert.Contains(t, d.View(), action.MessageEmptyURL)
}

func TestActionDialog_InvalidURLThenEdit(t *testing.T) {
	t.Parallel()

	d := openDialog(t, DialogConfig{Simulator: action.InstantSimulator{}})

	d, _ = d.Update(runes("http://github.com/user/repo.git"))
	d, _ = d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, action.StateFailed, d.State())
	assert.Equal(t, action.MessageInvalidURL, d.Snapshot().Error)

	d, _ = d.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, action.StateIdle, d.State())
	assert.Empty(t, d.Snapshot().Error)
	assert.NotContains(t, d.View(), action.MessageInvalidURL)
}

func TestActionDialog_InputLockedWhilePending(t *testing.T) {
	t.Parallel()

	d := openDialog(t, DialogConfig{Simulator: action.NewTimedSimulator(time.Hour)})

	d, _ = d.Update(runes(validURL))
	d, _ = d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, action.StatePending, d.State())

	d, _ = d.Update(runes("x"))
	assert.Equal(t, validURL, d.Input())

	d, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, action.StatePending, d.State())

	d, cmd = d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.True(t, d.Visible())
}

func TestActionDialog_EscClosesFromIdleAndFailed(t *testing.T) {
	t.Parallel()

	d := openDialog(t, DialogConfig{})
	d, _ = d.Update(runes("abc"))
	d, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, d.Visible())
	assert.Empty(t, d.Input())
	require.NotNil(t, cmd)
	assert.Equal(t, ui.DialogClosedMsg{}, cmd())

	d, _ = d.Open()
	d, _ = d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, action.StateFailed, d.State())
	d, _ = d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, d.Visible())
	assert.Equal(t, action.StateIdle, d.State())
}

func TestActionDialog_CloseDuringPendingDropsResult(t *testing.T) {
	t.Parallel()

	d := openDialog(t, DialogConfig{Simulator: action.NewTimedSimulator(time.Hour)})
	d, _ = d.Update(runes(validURL))
	d, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, action.StatePending, d.State())

	d = d.Close()
	assert.False(t, d.Visible())
	assert.Equal(t, action.StateIdle, d.State())

	// The cancelled simulator returns promptly with the context error.
	result, ok := findMsg[cloneResultMsg](drain(cmd))
	require.True(t, ok)
	assert.ErrorIs(t, result.err, context.Canceled)

	d, cmd = d.Update(result)
	assert.Nil(t, cmd)
	assert.Equal(t, action.StateIdle, d.State())
	assert.False(t, d.Visible())
}

func TestActionDialog_CloseDuringSuccessDropsAutoClose(t *testing.T) {
	t.Parallel()

	d := openDialog(t, DialogConfig{Simulator: action.InstantSimulator{}})
	d, _ = d.Update(runes(validURL))
	d, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	result, _ := findMsg[cloneResultMsg](drain(cmd))
	d, cmd = d.Update(result)
	closeMsg, ok := findMsg[autoCloseMsg](drain(cmd))
	require.True(t, ok)

	d = d.Close()
	d, _ = d.Open()
	d, _ = d.Update(runes("typing"))

	d, cmd = d.Update(closeMsg)
	assert.Nil(t, cmd)
	assert.True(t, d.Visible())
	assert.Equal(t, "typing", d.Input())
}

func TestActionDialog_SimulatorFailure(t *testing.T) {
	t.Parallel()

	logger := mocks.NewLogger()
	d := openDialog(t, DialogConfig{
		Simulator: action.SimulatorFunc(func(context.Context, string) error {
			return errors.New("remote rejected push")
		}),
		Logger: logger,
	})

	d, _ = d.Update(runes(validURL))
	d, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	result, ok := findMsg[cloneResultMsg](drain(cmd))
	require.True(t, ok)

	d, _ = d.Update(result)
	assert.Equal(t, action.StateFailed, d.State())
	assert.Equal(t, "remote rejected push", d.Snapshot().Error)
	assert.Equal(t, []string{"simulated clone failed"}, logger.Messages(ports.LevelWarn))

	// Re-confirm is allowed from Failed.
	_, cmd = d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
}

func TestActionDialog_HiddenIgnoresKeys(t *testing.T) {
	t.Parallel()

	d := NewActionDialog(DialogConfig{})
	t.Cleanup(d.Stop)

	d, cmd := d.Update(runes("abc"))
	assert.Nil(t, cmd)
	assert.Empty(t, d.Input())
	assert.Empty(t, d.View())
}

func TestActionDialog_ViewText(t *testing.T) {
	t.Parallel()

	view := openDialog(t, DialogConfig{}).WithWidth(90).View()

	for _, want := range []string{
		DialogTitle,
		DialogInputLabel,
		DialogChecklist,
		"Created an empty repository",
		"Connected your GitHub account",
		DialogCancelLabel,
		DialogConfirmLabel,
	} {
		assert.Contains(t, view, want)
	}
}
