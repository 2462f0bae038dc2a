package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
