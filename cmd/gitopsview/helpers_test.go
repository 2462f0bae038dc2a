package main

import (
	"bytes"
	"testing"

	"github.com/amenflux/gitopsview/internal/adapters/clipboard"
	"github.com/amenflux/gitopsview/internal/domain/action"
	"github.com/amenflux/gitopsview/internal/domain/config"
	"github.com/amenflux/gitopsview/internal/ports"
	"github.com/amenflux/gitopsview/internal/testutil"
)

// resetFlags restores every package-level flag variable.
func resetFlags() {
	cfgFile = ""
	verbose = false
	logLevel = ""
	logFormat = ""
	logFile = ""
	viewPanel = ""
	viewTopic = ""
	docsJSON = false
	flowJSON = false
	showCopy = false
	showLineNumbers = false
}

// writeConfig writes a config file into a temp dir and returns its path.
func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	return testutil.WriteTempFile(t, t.TempDir(), name, body)
}

// stubSeams swaps the clipboard and simulator for in-memory versions.
func stubSeams(t *testing.T, simErr error) *clipboard.Memory {
	t.Helper()
	mem := clipboard.NewMemory()
	oldClipboard, oldSimulator := newClipboard, newSimulator
	newClipboard = func() ports.Clipboard { return mem }
	newSimulator = func(config.Settings) action.Simulator { return action.InstantSimulator{Err: simErr} }
	t.Cleanup(func() {
		newClipboard, newSimulator = oldClipboard, oldSimulator
	})
	return mem
}

// executeCommand runs the root command with args against an empty config
// file and returns stdout and stderr.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)

	cfg := writeConfig(t, "gitopsview.yaml", "")
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--config", cfg}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}
