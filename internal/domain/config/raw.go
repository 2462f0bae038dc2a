package config

import (
	"fmt"
	"time"
)

// rawSettings is the file shape shared by every codec. Durations stay
// strings until apply so all formats report them the same way.
type rawSettings struct {
	CopyFeedback string     `yaml:"copy_feedback" toml:"copy_feedback"`
	Clone        rawClone   `yaml:"clone" toml:"clone"`
	Display      rawDisplay `yaml:"display" toml:"display"`
	Log          rawLog     `yaml:"log" toml:"log"`
}

type rawClone struct {
	PendingDelay string `yaml:"pending_delay" toml:"pending_delay"`
	SuccessDelay string `yaml:"success_delay" toml:"success_delay"`
}

type rawDisplay struct {
	DefaultPanel   string `yaml:"default_panel" toml:"default_panel"`
	MarkdownStyle  string `yaml:"markdown_style" toml:"markdown_style"`
	HighlightStyle string `yaml:"highlight_style" toml:"highlight_style"`
	LineNumbers    *bool  `yaml:"line_numbers" toml:"line_numbers"`
	Width          *int   `yaml:"width" toml:"width"`
}

type rawLog struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
	File   string `yaml:"file" toml:"file"`
}

// apply overlays the fields present in raw onto s.
func (raw rawSettings) apply(s Settings) (Settings, error) {
	errs := NewErrorList()

	setDuration(errs, "copy_feedback", raw.CopyFeedback, &s.CopyFeedback)
	setDuration(errs, "clone.pending_delay", raw.Clone.PendingDelay, &s.Clone.PendingDelay)
	setDuration(errs, "clone.success_delay", raw.Clone.SuccessDelay, &s.Clone.SuccessDelay)

	setString(raw.Display.DefaultPanel, &s.Display.DefaultPanel)
	setString(raw.Display.MarkdownStyle, &s.Display.MarkdownStyle)
	setString(raw.Display.HighlightStyle, &s.Display.HighlightStyle)
	if raw.Display.LineNumbers != nil {
		s.Display.LineNumbers = *raw.Display.LineNumbers
	}
	if raw.Display.Width != nil {
		s.Display.Width = *raw.Display.Width
	}

	setString(raw.Log.Level, &s.Log.Level)
	setString(raw.Log.Format, &s.Log.Format)
	setString(raw.Log.File, &s.Log.File)

	return s, errs.AsError()
}

func setDuration(errs *ErrorList, field, value string, dst *time.Duration) {
	if value == "" {
		return
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		errs.Add(&UserError{
			Code:       ErrCodeConfigInvalid,
			Message:    fmt.Sprintf("%s: invalid duration %q", field, value),
			Context:    field,
			Suggestion: "Use a Go duration such as 2s, 1500ms or 1m.",
			Underlying: err,
		})
		return
	}
	*dst = d
}

func setString(value string, dst *string) {
	if value != "" {
		*dst = value
	}
}
