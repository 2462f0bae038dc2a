package mcp

import (
	"errors"
	"fmt"
	"regexp"
)

var errRequired = errors.New("value is required")

var identPattern = regexp.MustCompile(`^[a-z][a-z0-9-]{0,31}$`)

func validateIdent(value string) error {
	if value == "" {
		return nil
	}
	if !identPattern.MatchString(value) {
		return fmt.Errorf("%q must be lowercase letters, digits or dashes", value)
	}
	return nil
}

// ValidateListDocumentsInput validates ListDocumentsInput fields.
func ValidateListDocumentsInput(in *ListDocumentsInput) error {
	if err := validateIdent(in.Owner); err != nil {
		return fmt.Errorf("invalid owner: %w", err)
	}
	return nil
}

// ValidateGetDocumentInput validates GetDocumentInput fields.
func ValidateGetDocumentInput(in *GetDocumentInput) error {
	if in.Owner == "" {
		return fmt.Errorf("invalid owner: %w", errRequired)
	}
	if err := validateIdent(in.Owner); err != nil {
		return fmt.Errorf("invalid owner: %w", err)
	}
	if err := validateIdent(in.ID); err != nil {
		return fmt.Errorf("invalid id: %w", err)
	}
	return nil
}
