package testutil

import (
	"fmt"
	"sort"
	"strings"
)

// SettingsBuilder builds gitopsview config files in every supported format.
// Keys without a section are written at the top level.
type SettingsBuilder struct {
	values map[string]map[string]string
}

// NewSettingsBuilder creates an empty builder.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{values: make(map[string]map[string]string)}
}

// Set records section.key = value. Use an empty section for top-level keys.
func (b *SettingsBuilder) Set(section, key, value string) *SettingsBuilder {
	if b.values[section] == nil {
		b.values[section] = make(map[string]string)
	}
	b.values[section][key] = value
	return b
}

// WithCopyFeedback sets copy_feedback.
func (b *SettingsBuilder) WithCopyFeedback(d string) *SettingsBuilder {
	return b.Set("", "copy_feedback", d)
}

// WithClone sets the clone delays.
func (b *SettingsBuilder) WithClone(pending, success string) *SettingsBuilder {
	return b.Set("clone", "pending_delay", pending).Set("clone", "success_delay", success)
}

// WithDefaultPanel sets display.default_panel.
func (b *SettingsBuilder) WithDefaultPanel(panel string) *SettingsBuilder {
	return b.Set("display", "default_panel", panel)
}

// WithLog sets the log level and format.
func (b *SettingsBuilder) WithLog(level, format string) *SettingsBuilder {
	return b.Set("log", "level", level).Set("log", "format", format)
}

// ToYAML renders the settings as YAML.
func (b *SettingsBuilder) ToYAML() string {
	var sb strings.Builder
	for _, key := range sortedKeys(b.values[""]) {
		fmt.Fprintf(&sb, "%s: %s\n", key, yamlValue(b.values[""][key]))
	}
	for _, section := range b.sections() {
		fmt.Fprintf(&sb, "%s:\n", section)
		for _, key := range sortedKeys(b.values[section]) {
			fmt.Fprintf(&sb, "  %s: %s\n", key, yamlValue(b.values[section][key]))
		}
	}
	return sb.String()
}

// ToTOML renders the settings as TOML.
func (b *SettingsBuilder) ToTOML() string {
	var sb strings.Builder
	for _, key := range sortedKeys(b.values[""]) {
		fmt.Fprintf(&sb, "%s = %s\n", key, tomlValue(b.values[""][key]))
	}
	for _, section := range b.sections() {
		fmt.Fprintf(&sb, "\n[%s]\n", section)
		for _, key := range sortedKeys(b.values[section]) {
			fmt.Fprintf(&sb, "%s = %s\n", key, tomlValue(b.values[section][key]))
		}
	}
	return sb.String()
}

// ToINI renders the settings as INI.
func (b *SettingsBuilder) ToINI() string {
	var sb strings.Builder
	for _, key := range sortedKeys(b.values[""]) {
		fmt.Fprintf(&sb, "%s = %s\n", key, b.values[""][key])
	}
	for _, section := range b.sections() {
		fmt.Fprintf(&sb, "\n[%s]\n", section)
		for _, key := range sortedKeys(b.values[section]) {
			fmt.Fprintf(&sb, "%s = %s\n", key, b.values[section][key])
		}
	}
	return sb.String()
}

func (b *SettingsBuilder) sections() []string {
	var out []string
	for section := range b.values {
		if section != "" {
			out = append(out, section)
		}
	}
	sort.Strings(out)
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func isLiteral(v string) bool {
	if v == "true" || v == "false" {
		return true
	}
	for _, r := range v {
		if r < '0' || r > '9' {
			return false
		}
	}
	return v != ""
}

func yamlValue(v string) string {
	if isLiteral(v) {
		return v
	}
	return fmt.Sprintf("%q", v)
}

func tomlValue(v string) string {
	if isLiteral(v) {
		return v
	}
	return fmt.Sprintf("%q", v)
}
