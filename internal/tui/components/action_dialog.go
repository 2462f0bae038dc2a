package components

import (
	"context"
	"strings"
	"time"

	"github.com/amenflux/gitopsview/internal/adapters/logging"
	"github.com/amenflux/gitopsview/internal/domain/action"
	"github.com/amenflux/gitopsview/internal/ports"
	"github.com/amenflux/gitopsview/internal/tui/render"
	"github.com/amenflux/gitopsview/internal/tui/ui"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Clone dialog text.
const (
	DialogTitle        = "Clone to GitHub Repository"
	DialogDescription  = "Enter the URL of your GitHub repository where you want to clone this project."
	DialogInputLabel   = "Repository URL"
	DialogPlaceholder  = "https://github.com/username/repo.git"
	DialogChecklist    = "Make sure you have:"
	DialogCancelLabel  = "Cancel"
	DialogConfirmLabel = "Clone Repository"
	DialogPendingLabel = "Cloning..."
	DialogSuccessLabel = "Cloned!"
)

var dialogRequirements = []string{
	"Created an empty repository",
	"Connected your GitHub account",
	"Sufficient permissions to push to the repository",
}

// DefaultSuccessDelay is how long the success state shows before the dialog
// closes itself.
const DefaultSuccessDelay = 2 * time.Second

// cloneResultMsg carries the simulator outcome for a dialog session.
type cloneResultMsg struct {
	session uint64
	err     error
}

// autoCloseMsg closes the dialog after a successful session.
type autoCloseMsg struct {
	session uint64
}

// DialogConfig holds the clone dialog collaborators.
type DialogConfig struct {
	Simulator    action.Simulator
	SuccessDelay time.Duration
	Logger       ports.Logger
	Now          func() time.Time
}

// ActionDialog is the "clone to GitHub" dialog: a URL input validated on
// confirm, followed by a simulated remote action.
type ActionDialog struct {
	action  *action.Action
	input   textinput.Model
	spinner Spinner
	cfg     DialogConfig
	visible bool
	cancel  context.CancelFunc
	width   int
	styles  ui.Styles
	keys    ui.KeyMap
}

// NewActionDialog creates a hidden dialog.
func NewActionDialog(cfg DialogConfig) ActionDialog {
	if cfg.Simulator == nil {
		cfg.Simulator = action.NewTimedSimulator(action.DefaultPendingDelay)
	}
	if cfg.SuccessDelay <= 0 {
		cfg.SuccessDelay = DefaultSuccessDelay
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	cfg.Logger = logging.OrNop(cfg.Logger)

	ti := textinput.New()
	ti.Placeholder = DialogPlaceholder
	ti.CharLimit = ui.InputCharLimit
	ti.Width = 48
	ti.Prompt = "› "

	return ActionDialog{
		action:  action.MustNew(),
		input:   ti,
		spinner: NewSpinner().SetMessage(DialogPendingLabel),
		cfg:     cfg,
		width:   64,
		styles:  ui.DefaultStyles(),
		keys:    ui.DefaultKeyMap(),
	}
}

// Visible reports whether the dialog is open.
func (d ActionDialog) Visible() bool {
	return d.visible
}

// State returns the action state.
func (d ActionDialog) State() action.State {
	return d.action.State()
}

// Snapshot returns the action state for rendering and tests.
func (d ActionDialog) Snapshot() action.Snapshot {
	return d.action.Snapshot()
}

// Input returns the current input text.
func (d ActionDialog) Input() string {
	return d.input.Value()
}

// WithWidth sets the dialog width.
func (d ActionDialog) WithWidth(width int) ActionDialog {
	d.width = width
	d.input.Width = max(width-16, 10)
	return d
}

// WithStyles sets the styles.
func (d ActionDialog) WithStyles(styles ui.Styles) ActionDialog {
	d.styles = styles
	d.spinner = d.spinner.WithStyles(styles)
	return d
}

// Open shows the dialog with an empty input.
func (d ActionDialog) Open() (ActionDialog, tea.Cmd) {
	d.visible = true
	d.input.Reset()
	return d, d.input.Focus()
}

// Close hides the dialog from any state. A pending simulation is cancelled
// and its result will be ignored.
func (d ActionDialog) Close() ActionDialog {
	d.stopRun()
	d.action.Abort()
	return d.hide()
}

// Stop releases the dialog's state machine.
func (d ActionDialog) Stop() {
	d.stopRun()
	d.action.Stop()
}

func (d ActionDialog) hide() ActionDialog {
	d.visible = false
	d.input.Reset()
	d.input.Blur()
	return d
}

func (d *ActionDialog) stopRun() {
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

// Update handles input, simulator results and timers.
func (d ActionDialog) Update(msg tea.Msg) (ActionDialog, tea.Cmd) {
	switch msg := msg.(type) {
	case cloneResultMsg:
		return d.handleResult(msg)

	case autoCloseMsg:
		if !d.action.Reset(msg.session) {
			return d, nil
		}
		return d.hide(), closedCmd

	case spinner.TickMsg:
		if !d.action.State().Busy() {
			return d, nil
		}
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(msg)
		return d, cmd

	case tea.KeyMsg:
		if !d.visible {
			return d, nil
		}
		return d.handleKeyMsg(msg)
	}

	if d.visible && d.action.State().Editable() {
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return d, cmd
	}
	return d, nil
}

func (d ActionDialog) handleResult(msg cloneResultMsg) (ActionDialog, tea.Cmd) {
	if !d.action.Complete(msg.session, msg.err) {
		return d, nil
	}
	d.stopRun()

	if d.action.State() == action.StateFailed {
		d.cfg.Logger.Warn(context.Background(), "simulated clone failed", ports.Err(msg.err))
		return d, d.input.Focus()
	}

	d.cfg.Logger.Info(context.Background(), "simulated clone finished",
		ports.F("repository", d.action.Snapshot().Target),
	)
	session := msg.session
	return d, tea.Batch(
		ui.NewNotificationMsg(action.SuccessNotification(d.cfg.Now())),
		tea.Tick(d.cfg.SuccessDelay, func(time.Time) tea.Msg {
			return autoCloseMsg{session: session}
		}),
	)
}

func (d ActionDialog) handleKeyMsg(msg tea.KeyMsg) (ActionDialog, tea.Cmd) {
	switch {
	case key.Matches(msg, d.keys.Cancel):
		if err := d.action.Cancel(); err != nil {
			return d, nil
		}
		return d.hide(), closedCmd

	case key.Matches(msg, d.keys.Select):
		return d.confirm()
	}

	if !d.action.State().Editable() {
		return d, nil
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	d.action.SetInput(d.input.Value())
	return d, cmd
}

func (d ActionDialog) confirm() (ActionDialog, tea.Cmd) {
	url, err := d.action.Confirm()
	if err != nil {
		return d, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.input.Blur()

	session, sim := d.action.Session(), d.cfg.Simulator
	run := func() tea.Msg {
		return cloneResultMsg{session: session, err: sim.Run(ctx, url)}
	}
	return d, tea.Batch(run, d.spinner.Tick())
}

func closedCmd() tea.Msg {
	return ui.DialogClosedMsg{}
}

// View renders the dialog, or "" when hidden.
func (d ActionDialog) View() string {
	if !d.visible {
		return ""
	}
	snap := d.action.Snapshot()
	inner := max(d.width-6, 20)

	var sb strings.Builder
	sb.WriteString(d.styles.Title.Render(DialogTitle))
	sb.WriteString("\n")
	sb.WriteString(d.styles.Subtitle.Render(render.Wrap(DialogDescription, inner)))
	sb.WriteString("\n\n")
	sb.WriteString(d.styles.CodeTitle.Render(DialogInputLabel))
	sb.WriteString("\n")
	sb.WriteString(d.input.View())
	sb.WriteString("\n")
	if snap.State == action.StateFailed && snap.Error != "" {
		sb.WriteString(d.styles.Error.Render(render.Wrap(snap.Error, inner)))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(d.styles.Paragraph.Render(DialogChecklist))
	sb.WriteString("\n")
	for _, req := range dialogRequirements {
		sb.WriteString(d.styles.Help.Render("  • " + req))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(d.buttons(snap.State))

	return d.styles.Modal.Width(d.width - 2).Render(sb.String())
}

func (d ActionDialog) buttons(state action.State) string {
	cancelStyle := d.styles.Button
	if !state.CanCancel() {
		cancelStyle = d.styles.ButtonDisabled
	}

	var confirm string
	switch state {
	case action.StatePending, action.StateValidating:
		confirm = d.styles.ButtonDisabled.Render(d.spinner.View())
	case action.StateSuccess:
		confirm = d.styles.ButtonActive.Render("✓ " + DialogSuccessLabel)
	default:
		confirm = d.styles.ButtonActive.Render(DialogConfirmLabel)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		cancelStyle.Render(DialogCancelLabel),
		"  ",
		confirm,
	)
}
