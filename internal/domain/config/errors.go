package config

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorization.
const (
	ErrCodeConfigNotFound   = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    = "CONFIG_INVALID"
	ErrCodeConfigParse      = "CONFIG_PARSE"
	ErrCodeCatalogInvalid   = "CATALOG_INVALID"
	ErrCodeDocumentNotFound = "DOCUMENT_NOT_FOUND"
	ErrCodePanelNotFound    = "PANEL_NOT_FOUND"
	ErrCodeTopicNotFound    = "TOPIC_NOT_FOUND"
)

// UserError represents a user-friendly error with actionable suggestions.
type UserError struct {
	Code       string // Error code for categorization (e.g., "CONFIG_NOT_FOUND")
	Message    string // User-friendly error message
	Context    string // File path, setting name or document reference
	Suggestion string // Actionable suggestion to fix the error
	Underlying error  // Wrapped error for error chain
}

// Error returns the formatted error message.
func (e *UserError) Error() string {
	if e.Context == "" {
		return e.Message
	}
	return fmt.Sprintf("%s (at %s)", e.Message, e.Context)
}

// Unwrap returns the underlying error for error chain support.
func (e *UserError) Unwrap() error {
	return e.Underlying
}

// Is supports errors.Is() for comparing error codes.
func (e *UserError) Is(target error) bool {
	if t, ok := target.(*UserError); ok {
		return e.Code == t.Code
	}
	return false
}

// Format returns a fully formatted error with all details.
func (e *UserError) Format() string {
	var b strings.Builder

	fmt.Fprintf(&b, "[%s] %s", e.Code, e.Message)
	if e.Context != "" {
		fmt.Fprintf(&b, "\n  Location: %s", e.Context)
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "\n  Suggestion: %s", e.Suggestion)
	}

	return b.String()
}

// NewUserError creates a new UserError with the given code and message.
func NewUserError(code, message string) *UserError {
	return &UserError{
		Code:    code,
		Message: message,
	}
}

// WithContext returns a copy with context set.
func (e *UserError) WithContext(ctx string) *UserError {
	c := *e
	c.Context = ctx
	return &c
}

// WithSuggestion returns a copy with suggestion set.
func (e *UserError) WithSuggestion(suggestion string) *UserError {
	c := *e
	c.Suggestion = suggestion
	return &c
}

// WithUnderlying returns a copy wrapping another error.
func (e *UserError) WithUnderlying(err error) *UserError {
	c := *e
	c.Underlying = err
	return &c
}

// ErrorList accumulates multiple errors for comprehensive reporting.
type ErrorList struct {
	errors []*UserError
}

// NewErrorList creates an empty ErrorList.
func NewErrorList() *ErrorList {
	return &ErrorList{
		errors: make([]*UserError, 0),
	}
}

// Add adds an error to the list.
func (l *ErrorList) Add(err *UserError) {
	if err != nil {
		l.errors = append(l.errors, err)
	}
}

// AddInvalid records an invalid setting.
func (l *ErrorList) AddInvalid(field, message, suggestion string) {
	l.Add(&UserError{
		Code:       ErrCodeConfigInvalid,
		Message:    fmt.Sprintf("%s: %s", field, message),
		Context:    field,
		Suggestion: suggestion,
	})
}

// HasErrors returns true if there are any errors.
func (l *ErrorList) HasErrors() bool {
	return len(l.errors) > 0
}

// Len returns the number of errors.
func (l *ErrorList) Len() int {
	return len(l.errors)
}

// Errors returns the list of errors.
func (l *ErrorList) Errors() []*UserError {
	result := make([]*UserError, len(l.errors))
	copy(result, l.errors)
	return result
}

// Error implements the error interface for ErrorList.
func (l *ErrorList) Error() string {
	switch len(l.errors) {
	case 0:
		return ""
	case 1:
		return l.errors[0].Error()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d errors occurred:\n", len(l.errors))
	for i, err := range l.errors {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, err.Error())
	}
	return b.String()
}

// Format returns a detailed formatted output of all errors.
func (l *ErrorList) Format() string {
	if len(l.errors) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d error(s):\n", len(l.errors))
	for i, err := range l.errors {
		fmt.Fprintf(&b, "\n--- Error %d ---\n", i+1)
		b.WriteString(err.Format())
		b.WriteString("\n")
	}
	return b.String()
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (l *ErrorList) Unwrap() []error {
	out := make([]error, len(l.errors))
	for i, err := range l.errors {
		out[i] = err
	}
	return out
}

// AsError returns the ErrorList as an error, or nil if empty.
func (l *ErrorList) AsError() error {
	if !l.HasErrors() {
		return nil
	}
	return l
}

// NewConfigNotFoundError creates an error for an explicit config path that
// does not exist.
func NewConfigNotFoundError(path string) *UserError {
	return &UserError{
		Code:       ErrCodeConfigNotFound,
		Message:    fmt.Sprintf("configuration file not found: %s", path),
		Context:    path,
		Suggestion: "Check the path passed to --config, or omit the flag to use the defaults.",
	}
}

// NewConfigParseError creates an error for TOML and INI parsing failures.
func NewConfigParseError(path string, err error) *UserError {
	return &UserError{
		Code:       ErrCodeConfigParse,
		Message:    "failed to parse configuration file",
		Context:    path,
		Suggestion: "Check the file syntax matches its extension (.yaml, .yml, .toml or .ini).",
		Underlying: err,
	}
}

// NewUnsupportedFormatError reports a config file with an unknown extension.
func NewUnsupportedFormatError(path string) *UserError {
	return &UserError{
		Code:       ErrCodeConfigInvalid,
		Message:    "unsupported configuration format",
		Context:    path,
		Suggestion: "Use a .yaml, .yml, .toml or .ini file.",
	}
}

// NewCatalogInvalidError wraps a failure to load the embedded content.
func NewCatalogInvalidError(err error) *UserError {
	return &UserError{
		Code:       ErrCodeCatalogInvalid,
		Message:    "embedded documentation catalog is invalid",
		Suggestion: "This is a build problem; rebuild gitopsview from a clean checkout.",
		Underlying: err,
	}
}

// NewPanelNotFoundError creates an error for an unknown panel or topic.
func NewPanelNotFoundError(name string, available []string) *UserError {
	suggestion := "Run 'gitopsview docs' to list panels and topics."
	if len(available) > 0 {
		suggestion = fmt.Sprintf("Available: %s", strings.Join(available, ", "))
	}
	return &UserError{
		Code:       ErrCodePanelNotFound,
		Message:    fmt.Sprintf("panel or topic '%s' not found", name),
		Suggestion: suggestion,
	}
}

// NewTopicNotFoundError creates an error for an unknown topic key.
func NewTopicNotFoundError(key string, available []string) *UserError {
	return &UserError{
		Code:       ErrCodeTopicNotFound,
		Message:    fmt.Sprintf("topic '%s' not found", key),
		Suggestion: fmt.Sprintf("Available topics: %s", strings.Join(available, ", ")),
	}
}

// NewDocumentNotFoundError creates an error for an unknown document.
func NewDocumentNotFoundError(owner, id string, available []string) *UserError {
	return &UserError{
		Code:       ErrCodeDocumentNotFound,
		Message:    fmt.Sprintf("document '%s' not found in '%s'", id, owner),
		Context:    owner,
		Suggestion: fmt.Sprintf("Available documents: %s", strings.Join(available, ", ")),
	}
}

// IsUserError checks if an error is a UserError with a specific code.
func IsUserError(err error, code string) bool {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue.Code == code
	}
	return false
}

// GetUserError extracts a UserError from an error chain, if present.
func GetUserError(err error) *UserError {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue
	}
	return nil
}

// NewYAMLParseError translates technical YAML errors into user-friendly messages.
func NewYAMLParseError(path string, err error) *UserError {
	errStr := err.Error()
	var message, suggestion string

	switch {
	case strings.Contains(errStr, "cannot unmarshal !!seq into"):
		message = "expected an object but found a list"
		suggestion = "Sections like 'clone', 'display' and 'log' use 'key: value' pairs, not '- item' lists."

	case strings.Contains(errStr, "cannot unmarshal !!map into"):
		message = "expected a value but found an object"
		suggestion = "Check the indentation: only 'clone', 'display' and 'log' take nested keys."

	case strings.Contains(errStr, "did not find expected key"):
		message = "missing required field or incorrect indentation"
		suggestion = "YAML is sensitive to indentation. Use 2 spaces (not tabs) for each level."

	case strings.Contains(errStr, "mapping values are not allowed"):
		message = "invalid YAML structure"
		suggestion = "Check for missing colons after keys, or incorrect indentation."

	case strings.Contains(errStr, "found character that cannot start"):
		message = "invalid character in YAML"
		suggestion = "Quote string values that contain special characters like ':', '#', or '{'."

	default:
		message = "invalid YAML syntax"
		suggestion = "Check your YAML syntax. Common issues: incorrect indentation, missing colons, or unquoted special characters."
	}

	context := path
	if parts := strings.SplitN(errStr, "line ", 2); len(parts) == 2 {
		lineInfo := strings.Split(parts[1], ":")[0]
		context = fmt.Sprintf("%s (line %s)", path, lineInfo)
	}

	return &UserError{
		Code:       ErrCodeConfigParse,
		Message:    message,
		Context:    context,
		Suggestion: suggestion,
		Underlying: err,
	}
}
