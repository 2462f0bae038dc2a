package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/amenflux/gitopsview/internal/domain/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_UseLine(t *testing.T) {
	assert.Equal(t, "gitopsview", rootCmd.Use)
}

func TestRootCommand_HasPersistentFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	for _, name := range []string{"config", "log-level", "log-format", "log-file"} {
		t.Run(name+" flag exists", func(t *testing.T) {
			flag := flags.Lookup(name)
			require.NotNil(t, flag)
			assert.Empty(t, flag.DefValue)
		})
	}

	t.Run("verbose flag exists", func(t *testing.T) {
		flag := flags.Lookup("verbose")
		require.NotNil(t, flag)
		assert.Equal(t, "v", flag.Shorthand)
		assert.Equal(t, "false", flag.DefValue)
	})
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"view", "docs", "show", "flow", "clone", "mcp", "version"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestRootCommand_ViewFlags(t *testing.T) {
	for _, cmd := range []string{"", "view"} {
		c := rootCmd
		if cmd != "" {
			var err error
			c, _, err = rootCmd.Find([]string{cmd})
			require.NoError(t, err)
		}
		assert.NotNil(t, c.Flags().Lookup("panel"))
		assert.NotNil(t, c.Flags().Lookup("topic"))
	}
}

func TestFormatError(t *testing.T) {
	t.Run("plain error", func(t *testing.T) {
		assert.Equal(t, "boom", formatError(errors.New("boom")))
	})

	t.Run("user error with suggestion", func(t *testing.T) {
		err := config.NewPanelNotFoundError("terraform", []string{"node", "helm"})
		msg := formatError(err)
		assert.Contains(t, msg, "panel or topic 'terraform' not found")
		assert.Contains(t, msg, "Suggestion: Available: node, helm")
	})

	t.Run("technical details only when verbose", func(t *testing.T) {
		err := config.NewConfigParseError("x.toml", errors.New("line 3: bad value"))
		assert.NotContains(t, formatError(err), "Technical details")

		verbose = true
		t.Cleanup(func() { verbose = false })
		assert.Contains(t, formatError(err), "Technical details: line 3: bad value")
	})

	t.Run("error list", func(t *testing.T) {
		s := config.Defaults()
		s.Log.Level = "loud"
		s.Clone.PendingDelay = -1
		msg := formatError(s.Validate(nil))
		assert.Contains(t, msg, "Found 2 error(s)")
	})
}

func TestPrintErrorTo(t *testing.T) {
	var buf bytes.Buffer
	printErrorTo(&buf, errors.New("boom"))
	assert.Equal(t, "Error: boom\n", buf.String())
}

func TestLoadEnvironment_FlagOverrides(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)

	cfgFile = writeConfig(t, "gitopsview.toml", "[log]\nlevel = \"warn\"\nformat = \"text\"\n")
	logFormat = "json"
	verbose = true

	env, err := loadEnvironment()
	require.NoError(t, err)
	assert.Equal(t, "debug", env.settings.Log.Level)
	assert.Equal(t, "json", env.settings.Log.Format)
	assert.Len(t, env.catalog.Panels(), 4)
}

func TestLoadEnvironment_Errors(t *testing.T) {
	t.Run("missing explicit config", func(t *testing.T) {
		resetFlags()
		t.Cleanup(resetFlags)
		cfgFile = "/does/not/exist.yaml"

		_, err := loadEnvironment()
		assert.True(t, config.IsUserError(err, config.ErrCodeConfigNotFound))
	})

	t.Run("invalid setting", func(t *testing.T) {
		resetFlags()
		t.Cleanup(resetFlags)
		cfgFile = writeConfig(t, "gitopsview.yaml", "display:\n  default_panel: terraform\n")

		_, err := loadEnvironment()
		require.Error(t, err)
		assert.Contains(t, formatError(err), "display.default_panel")
	})

	t.Run("invalid log level flag", func(t *testing.T) {
		resetFlags()
		t.Cleanup(resetFlags)
		cfgFile = writeConfig(t, "gitopsview.yaml", "")
		logLevel = "loud"

		_, err := loadEnvironment()
		require.Error(t, err)
		assert.Contains(t, formatError(err), "log.level")
	})
}

func TestEnvironment_NewLoggerCarriesSession(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)
	cfgFile = writeConfig(t, "gitopsview.yaml", "log:\n  format: json\n")

	env, err := loadEnvironment()
	require.NoError(t, err)

	var buf bytes.Buffer
	logger, err := env.newLogger(&buf)
	require.NoError(t, err)
	logger.Info(t.Context(), "hello")

	assert.Contains(t, buf.String(), `"session"`)
	assert.Contains(t, buf.String(), `"hello"`)
}
