package tui

import (
	"context"
	"strings"

	"github.com/amenflux/gitopsview/internal/adapters/logging"
	"github.com/amenflux/gitopsview/internal/domain/content"
	"github.com/amenflux/gitopsview/internal/ports"
	"github.com/amenflux/gitopsview/internal/tui/components"
	"github.com/amenflux/gitopsview/internal/tui/render"
	"github.com/amenflux/gitopsview/internal/tui/ui"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// focusArea is the page section receiving keys.
type focusArea int

const (
	focusFlow focusArea = iota
	focusPanels
)

// pageModel is the whole viewer page: header, flow diagram, component
// panels, getting started guide and footer, plus the detail modal, clone
// dialog and toast overlays.
type pageModel struct {
	catalog  *content.Catalog
	page     content.Page
	flow     components.FlowDiagram
	panels   []components.ContentPanel
	selector components.Tabs
	modal    components.DetailModal
	dialog   components.ActionDialog
	toast    components.Toast
	help     help.Model
	markdown *render.Markdown
	guide    string

	notifier ports.Notifier
	logger   ports.Logger

	focus    focusArea
	offset   int
	showHelp bool
	width    int
	height   int
	styles   ui.Styles
	keys     ui.KeyMap

	notified  int
	quitting  bool
	cancelled bool
}

func newPageModel(opts ViewerOptions) pageModel {
	styles := ui.DefaultStyles()
	cat := opts.Catalog

	panels := make([]components.ContentPanel, 0, len(cat.Panels()))
	labels := make([]string, 0, len(cat.Panels()))
	for i, p := range cat.Panels() {
		panels = append(panels, components.NewContentPanel(p, opts.Blocks))
		labels = append(labels, panelLabel(i, p.Label()))
	}

	h := help.New()
	h.Styles.ShortKey = styles.HelpKey
	h.Styles.ShortDesc = styles.Help
	h.Styles.FullKey = styles.HelpKey
	h.Styles.FullDesc = styles.Help

	m := pageModel{
		catalog:  cat,
		page:     cat.Page(),
		flow:     components.NewFlowDiagram(cat.Stages()).Focus(),
		panels:   panels,
		selector: components.NewTabs(labels...),
		modal:    components.NewDetailModal(cat, opts.Blocks).WithMarkdown(opts.Markdown),
		dialog:   components.NewActionDialog(opts.Dialog),
		toast:    components.NewToast().WithDuration(opts.ToastDuration),
		help:     h,
		markdown: opts.Markdown,
		guide:    opts.Markdown.Render(render.GuideMarkdown(cat.Guide())),
		notifier: opts.Notifier,
		logger:   logging.OrNop(opts.Logger),
		styles:   styles,
		keys:     ui.DefaultKeyMap(),
	}

	initial := opts.InitialPanel
	if initial == "" {
		initial = m.page.DefaultPanel
	}
	if i := cat.PanelIndex(initial); i >= 0 {
		m.selector = m.selector.Select(i)
	}
	m = m.resize(ui.DefaultWidth, ui.DefaultHeight)

	if !opts.InitialTopic.IsNone() {
		m.modal = m.modal.Open(opts.InitialTopic)
	}
	return m
}

func panelLabel(i int, label string) string {
	return string(rune('1'+i)) + " " + label
}

func (m pageModel) Init() tea.Cmd {
	return nil
}

func (m pageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case ui.OpenTopicMsg:
		m.modal = m.modal.Open(msg.Key)
		return m, nil

	case ui.NotificationMsg:
		m.notified++
		var cmd tea.Cmd
		m.toast, cmd = m.toast.Show(msg.Notification)
		return m, tea.Batch(cmd, m.notify(msg.Notification))

	case ui.DialogClosedMsg:
		m.logger.Debug(context.Background(), "clone dialog closed")
		return m, nil
	}

	return m.broadcast(msg)
}

// broadcast hands non-key messages to every component. Each one ignores
// messages addressed to another instance.
func (m pageModel) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, len(m.panels)+3)
	var cmd tea.Cmd

	m.dialog, cmd = m.dialog.Update(msg)
	cmds = append(cmds, cmd)
	m.modal, cmd = m.modal.Update(msg)
	cmds = append(cmds, cmd)
	m.toast, cmd = m.toast.Update(msg)
	cmds = append(cmds, cmd)

	panels := make([]components.ContentPanel, len(m.panels))
	for i, p := range m.panels {
		panels[i], cmd = p.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.panels = panels
	return m, tea.Batch(cmds...)
}

func (m pageModel) notify(n ports.Notification) tea.Cmd {
	notifier, logger := m.notifier, m.logger
	if notifier == nil {
		return nil
	}
	return func() tea.Msg {
		if err := notifier.Notify(context.Background(), n); err != nil {
			logger.Warn(context.Background(), "notification delivery failed", ports.Err(err))
		}
		return nil
	}
}

func (m pageModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit(true)
	}

	if m.dialog.Visible() {
		var cmd tea.Cmd
		m.dialog, cmd = m.dialog.Update(msg)
		return m, cmd
	}

	if m.modal.IsOpen() {
		if key.Matches(msg, m.keys.Quit) {
			return m.quit(false)
		}
		var cmd tea.Cmd
		m.modal, cmd = m.modal.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit(false)

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.showHelp = false
		m.help.ShowAll = false
		return m, nil

	case key.Matches(msg, m.keys.NextFocus), key.Matches(msg, m.keys.PrevFocus):
		return m.setFocus(1 - m.focus), nil

	case key.Matches(msg, m.keys.Clone):
		var cmd tea.Cmd
		m.dialog, cmd = m.dialog.Open()
		return m, cmd
	}

	if i := m.keys.PanelIndex(msg); i >= 0 && i < len(m.panels) {
		m.selector = m.selector.Select(i)
		return m.setFocus(focusPanels), nil
	}

	if m.focus == focusPanels {
		return m.updateActivePanel(msg)
	}

	switch {
	case m.keys.IsUp(msg):
		m.offset = m.clamp(m.offset - 1)
		return m, nil
	case m.keys.IsDown(msg):
		m.offset = m.clamp(m.offset + 1)
		return m, nil
	case key.Matches(msg, m.keys.PageUp):
		m.offset = m.clamp(m.offset - m.bodyHeight())
		return m, nil
	case key.Matches(msg, m.keys.PageDown):
		m.offset = m.clamp(m.offset + m.bodyHeight())
		return m, nil
	}

	var cmd tea.Cmd
	m.flow, cmd = m.flow.Update(msg)
	return m, cmd
}

func (m pageModel) updateActivePanel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	i := m.selector.Active()
	if i >= len(m.panels) {
		return m, nil
	}
	panels := append([]components.ContentPanel(nil), m.panels...)
	var cmd tea.Cmd
	panels[i], cmd = panels[i].Update(msg)
	m.panels = panels
	return m, cmd
}

func (m pageModel) setFocus(area focusArea) pageModel {
	m.focus = area
	if area == focusFlow {
		m.flow = m.flow.Focus()
	} else {
		m.flow = m.flow.Blur()
	}

	panels := make([]components.ContentPanel, len(m.panels))
	for i, p := range m.panels {
		if area == focusPanels && i == m.selector.Active() {
			panels[i] = p.Focus()
		} else {
			panels[i] = p.Blur()
		}
	}
	m.panels = panels
	return m
}

func (m pageModel) quit(cancelled bool) (tea.Model, tea.Cmd) {
	m.dialog = m.dialog.Close()
	m.quitting = true
	m.cancelled = cancelled
	return m, tea.Quit
}

func (m pageModel) resize(width, height int) pageModel {
	m.width = width
	m.height = height
	m.styles = ui.DefaultStyles().WithWidth(width)
	m.help.Width = width

	inner := max(width-2, 20)
	codeHeight := max(height/2, 8)
	m.flow = m.flow.WithWidth(inner)
	panels := make([]components.ContentPanel, len(m.panels))
	for i, p := range m.panels {
		panels[i] = p.WithWidth(inner).WithHeight(codeHeight)
	}
	m.panels = panels

	overlay := max(width-2*ui.ModalMargin, 30)
	m.modal = m.modal.WithSize(overlay, max(height-2, 8))
	m.dialog = m.dialog.WithWidth(min(overlay, 80))
	m.offset = m.clamp(m.offset)
	return m
}

// ActivePanel returns the selected component panel.
func (m pageModel) ActivePanel() (components.ContentPanel, bool) {
	i := m.selector.Active()
	if i >= len(m.panels) {
		return components.ContentPanel{}, false
	}
	return m.panels[i], true
}

func (m pageModel) bodyHeight() int {
	return max(m.height-1, 1)
}

func (m pageModel) clamp(offset int) int {
	maxOffset := len(m.body()) - m.bodyHeight()
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

func (m pageModel) header() string {
	brand := m.styles.Brand.Render(m.page.Brand)
	meta := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Badge.Render(m.page.VersionLabel()),
		" ",
		m.styles.Help.Render(m.page.AuthorLabel()),
		"  ",
		m.styles.HelpKey.Render("g"),
		m.styles.Help.Render(" GitHub"),
	)
	gap := max(m.width-2-lipgloss.Width(brand)-lipgloss.Width(meta), 1)
	return brand + strings.Repeat(" ", gap) + meta
}

func (m pageModel) body() []string {
	var sb strings.Builder
	inner := max(m.width-2, 20)

	sb.WriteString(m.header())
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Title.Render(m.page.Title))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Subtitle.Render(render.Wrap(m.page.Subtitle, inner)))
	sb.WriteString("\n")

	sb.WriteString(m.styles.Heading.Render(m.page.FlowHeading))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Paragraph.Render(render.Wrap(m.page.FlowIntro, inner)))
	sb.WriteString("\n\n")
	sb.WriteString(m.flow.View())
	sb.WriteString("\n")

	sb.WriteString(m.styles.Heading.Render(m.page.ComponentsHeading))
	sb.WriteString("\n")
	sb.WriteString(m.selector.View())
	sb.WriteString("\n")
	if p, ok := m.ActivePanel(); ok {
		sb.WriteString(p.View())
		sb.WriteString("\n")
	}

	if m.guide != "" {
		sb.WriteString("\n")
		sb.WriteString(m.guide)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(lipgloss.PlaceHorizontal(inner, lipgloss.Center, m.styles.Help.Render(m.page.Footer)))
	return strings.Split(sb.String(), "\n")
}

func (m pageModel) View() string {
	if m.quitting {
		return ""
	}

	var screen string
	switch {
	case m.dialog.Visible():
		screen = lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, m.dialog.View())
	case m.modal.IsOpen():
		screen = lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, m.modal.View())
	default:
		lines := m.body()
		end := min(m.offset+m.bodyHeight(), len(lines))
		screen = m.styles.App.Render(strings.Join(lines[m.offset:end], "\n"))
	}

	if m.toast.Visible() {
		screen = overlayTop(screen, lipgloss.PlaceHorizontal(m.width, lipgloss.Right, m.toast.View()))
	}
	return screen + "\n" + m.help.View(m.keys)
}

// overlayTop replaces the first lines of screen with top.
func overlayTop(screen, top string) string {
	lines := strings.Split(screen, "\n")
	over := strings.Split(top, "\n")
	if len(over) >= len(lines) {
		return top
	}
	copy(lines, over)
	return strings.Join(lines, "\n")
}
