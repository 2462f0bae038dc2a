// Package config loads viewer settings from YAML, TOML or INI files and
// reports problems as UserErrors with suggestions.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Default setting values.
const (
	DefaultCopyFeedback   = 2 * time.Second
	DefaultPendingDelay   = 2 * time.Second
	DefaultSuccessDelay   = 2 * time.Second
	DefaultPanel          = "node"
	DefaultMarkdownStyle  = "dark"
	DefaultHighlightStyle = "monokai"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
)

// markdownStyles are glamour's standard style names.
var markdownStyles = []string{"ascii", "auto", "dark", "dracula", "light", "notty", "pink", "tokyo-night"}

var logLevels = []string{"debug", "info", "warn", "warning", "error"}

var logFormats = []string{"text", "json"}

// Settings is the resolved viewer configuration.
type Settings struct {
	CopyFeedback time.Duration
	Clone        CloneSettings
	Display      DisplaySettings
	Log          LogSettings

	// Source is the file the settings came from, empty for defaults.
	Source string
}

// CloneSettings controls the simulated clone.
type CloneSettings struct {
	PendingDelay time.Duration
	SuccessDelay time.Duration
}

// DisplaySettings controls rendering.
type DisplaySettings struct {
	DefaultPanel   string
	MarkdownStyle  string
	HighlightStyle string
	LineNumbers    bool
	// Width caps the rendering width; 0 uses the terminal width.
	Width int
}

// LogSettings controls the log sink.
type LogSettings struct {
	Level  string
	Format string
	File   string
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		CopyFeedback: DefaultCopyFeedback,
		Clone: CloneSettings{
			PendingDelay: DefaultPendingDelay,
			SuccessDelay: DefaultSuccessDelay,
		},
		Display: DisplaySettings{
			DefaultPanel:   DefaultPanel,
			MarkdownStyle:  DefaultMarkdownStyle,
			HighlightStyle: DefaultHighlightStyle,
			LineNumbers:    true,
		},
		Log: LogSettings{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Validate checks every setting and returns an ErrorList, or nil. panels is
// the set of known panel ids for display.default_panel.
func (s Settings) Validate(panels []string) error {
	errs := NewErrorList()

	checkDuration(errs, "copy_feedback", s.CopyFeedback)
	checkDuration(errs, "clone.pending_delay", s.Clone.PendingDelay)
	checkDuration(errs, "clone.success_delay", s.Clone.SuccessDelay)

	if len(panels) > 0 && !contains(panels, s.Display.DefaultPanel) {
		errs.AddInvalid("display.default_panel",
			fmt.Sprintf("unknown panel %q", s.Display.DefaultPanel),
			fmt.Sprintf("Use one of: %s", strings.Join(panels, ", ")))
	}
	if !contains(markdownStyles, s.Display.MarkdownStyle) {
		errs.AddInvalid("display.markdown_style",
			fmt.Sprintf("unknown style %q", s.Display.MarkdownStyle),
			fmt.Sprintf("Use one of: %s", strings.Join(markdownStyles, ", ")))
	}
	if s.Display.HighlightStyle == "" {
		errs.AddInvalid("display.highlight_style", "cannot be empty",
			"Use a chroma style name such as monokai, or \"none\" to disable colouring.")
	}
	if s.Display.Width < 0 {
		errs.AddInvalid("display.width", "cannot be negative", "Use 0 to follow the terminal width.")
	}
	if !contains(logLevels, strings.ToLower(s.Log.Level)) {
		errs.AddInvalid("log.level",
			fmt.Sprintf("unknown level %q", s.Log.Level),
			"Use one of: debug, info, warn, error")
	}
	if !contains(logFormats, strings.ToLower(s.Log.Format)) {
		errs.AddInvalid("log.format",
			fmt.Sprintf("unknown format %q", s.Log.Format),
			"Use text or json.")
	}

	return errs.AsError()
}

func checkDuration(errs *ErrorList, field string, d time.Duration) {
	if d < 0 {
		errs.AddInvalid(field, fmt.Sprintf("duration %s cannot be negative", d), "Use a value like 2s or 500ms.")
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
