package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// FileBase is the config file name without extension.
const FileBase = "gitopsview"

// Extensions lists supported config extensions in search order.
var Extensions = []string{".yaml", ".yml", ".toml", ".ini"}

// Loader resolves and reads the settings file.
type Loader struct {
	workDir   string
	configDir func() (string, error)
	readFile  func(string) ([]byte, error)
}

// NewLoader creates a loader that searches the working directory and the
// user config directory.
func NewLoader() *Loader {
	wd, _ := os.Getwd()
	return &Loader{
		workDir:   wd,
		configDir: os.UserConfigDir,
		readFile:  os.ReadFile,
	}
}

// Candidates returns the default search paths in order.
func (l *Loader) Candidates() []string {
	var paths []string
	if l.workDir != "" {
		for _, ext := range Extensions {
			paths = append(paths, filepath.Join(l.workDir, FileBase+ext))
		}
	}
	if l.configDir != nil {
		if dir, err := l.configDir(); err == nil && dir != "" {
			for _, ext := range Extensions {
				paths = append(paths, filepath.Join(dir, FileBase, "config"+ext))
			}
		}
	}
	return paths
}

// Load reads explicit when set, otherwise the first existing candidate.
// Missing candidates fall back to Defaults; a missing explicit path is a
// CONFIG_NOT_FOUND error.
func (l *Loader) Load(explicit string) (Settings, error) {
	if explicit != "" {
		data, err := l.readFile(explicit)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return Settings{}, NewConfigNotFoundError(explicit)
			}
			return Settings{}, NewConfigParseError(explicit, err)
		}
		return Parse(explicit, data)
	}

	for _, path := range l.Candidates() {
		data, err := l.readFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Settings{}, NewConfigParseError(path, err)
		}
		return Parse(path, data)
	}

	return Defaults(), nil
}

// Parse decodes data using the codec chosen by path's extension and overlays
// it on Defaults.
func Parse(path string, data []byte) (Settings, error) {
	var raw rawSettings

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if len(bytes.TrimSpace(data)) > 0 {
			if err := yaml.Unmarshal(data, &raw); err != nil {
				return Settings{}, NewYAMLParseError(path, err)
			}
		}
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return Settings{}, NewConfigParseError(path, err)
		}
	case ".ini":
		r, err := parseINI(data)
		if err != nil {
			return Settings{}, NewConfigParseError(path, err)
		}
		raw = r
	default:
		return Settings{}, NewUnsupportedFormatError(path)
	}

	s, err := raw.apply(Defaults())
	if err != nil {
		return Settings{}, err
	}
	s.Source = path
	return s, nil
}

// parseINI maps the top-level copy_feedback key and the [clone], [display]
// and [log] sections.
func parseINI(data []byte) (rawSettings, error) {
	f, err := ini.Load(data)
	if err != nil {
		return rawSettings{}, err
	}

	var raw rawSettings
	raw.CopyFeedback = f.Section(ini.DefaultSection).Key("copy_feedback").String()

	clone := f.Section("clone")
	raw.Clone.PendingDelay = clone.Key("pending_delay").String()
	raw.Clone.SuccessDelay = clone.Key("success_delay").String()

	display := f.Section("display")
	raw.Display.DefaultPanel = display.Key("default_panel").String()
	raw.Display.MarkdownStyle = display.Key("markdown_style").String()
	raw.Display.HighlightStyle = display.Key("highlight_style").String()
	if display.HasKey("line_numbers") {
		v, err := display.Key("line_numbers").Bool()
		if err != nil {
			return rawSettings{}, fmt.Errorf("display.line_numbers: %w", err)
		}
		raw.Display.LineNumbers = &v
	}
	if display.HasKey("width") {
		v, err := display.Key("width").Int()
		if err != nil {
			return rawSettings{}, fmt.Errorf("display.width: %w", err)
		}
		raw.Display.Width = &v
	}

	log := f.Section("log")
	raw.Log.Level = log.Key("level").String()
	raw.Log.Format = log.Key("format").String()
	raw.Log.File = log.Key("file").String()

	return raw, nil
}
