package testutil

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertFileContains asserts that a file contains the expected string.
func AssertFileContains(t testing.TB, path, expected string, msgAndArgs ...interface{}) {
	t.Helper()

	content, err := os.ReadFile(path)
	if !assert.NoError(t, err, "failed to read file: %s", path) {
		return
	}
	assert.Contains(t, string(content), expected, msgAndArgs...)
}

// AssertLineCount asserts text has n lines, ignoring one trailing newline.
func AssertLineCount(t testing.TB, text string, n int, msgAndArgs ...interface{}) {
	t.Helper()

	lines := 0
	if text != "" {
		lines = len(strings.Split(strings.TrimSuffix(text, "\n"), "\n"))
	}
	assert.Equal(t, n, lines, msgAndArgs...)
}
