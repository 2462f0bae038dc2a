package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/amenflux/gitopsview/internal/adapters/clipboard"
	"github.com/amenflux/gitopsview/internal/adapters/logging"
	"github.com/amenflux/gitopsview/internal/domain/action"
	"github.com/amenflux/gitopsview/internal/domain/config"
	"github.com/amenflux/gitopsview/internal/domain/content"
	"github.com/amenflux/gitopsview/internal/domain/content/embedded"
	"github.com/amenflux/gitopsview/internal/ports"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile   string
	verbose   bool
	logLevel  string
	logFormat string
	logFile   string
)

// Seams replaced in tests.
var (
	loadCatalog  = embedded.Catalog
	newClipboard = func() ports.Clipboard { return clipboard.NewSystem() }
	newSimulator = func(s config.Settings) action.Simulator {
		return action.NewTimedSimulator(s.Clone.PendingDelay)
	}
	newLoader = config.NewLoader
)

var rootCmd = &cobra.Command{
	Use:   "gitopsview",
	Short: "Browse the ArgoCD GitOps pipeline documentation",
	Long: `gitopsview is a terminal viewer for a Kubernetes GitOps pipeline demo
built on ArgoCD and Helm.

It shows the flow from Git to Kubernetes, the project's component
configuration files and deployment guidance:
  Git Repository → CI/CD Pipeline → ArgoCD → Kubernetes

Run without a subcommand to open the interactive viewer.`,
	SilenceErrors: true, // We handle error formatting ourselves
	SilenceUsage:  true, // Don't show usage on error
	RunE:          runView,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./gitopsview.yaml, then the user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text, json)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "log file used while the viewer runs")

	addViewFlags(rootCmd)
	registerFlagCompletions()

	rootCmd.AddCommand(versionCmd)
}

// environment bundles what every subcommand needs.
type environment struct {
	settings config.Settings
	catalog  *content.Catalog
}

// loadEnvironment loads the catalog and settings, applying flag overrides.
func loadEnvironment() (*environment, error) {
	cat, err := loadCatalog()
	if err != nil {
		return nil, config.NewCatalogInvalidError(err)
	}

	settings, err := newLoader().Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		settings.Log.Level = logLevel
	}
	if logFormat != "" {
		settings.Log.Format = logFormat
	}
	if logFile != "" {
		settings.Log.File = logFile
	}
	if verbose {
		settings.Log.Level = "debug"
	}

	if err := settings.Validate(panelIDs(cat)); err != nil {
		return nil, err
	}
	return &environment{settings: settings, catalog: cat}, nil
}

// newLogger builds the session logger writing to out.
func (e *environment) newLogger(out io.Writer) (ports.Logger, error) {
	level, err := ports.ParseLevel(e.settings.Log.Level)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(e.settings.Log.Format)
	if err != nil {
		return nil, err
	}

	logger := logging.NewConsoleLogger(
		logging.WithOutput(out),
		logging.WithLevel(level),
		logging.WithFormat(format),
	)
	return logger.With(ports.F("session", uuid.NewString())), nil
}

func panelIDs(cat *content.Catalog) []string {
	panels := cat.Panels()
	ids := make([]string, 0, len(panels))
	for _, p := range panels {
		ids = append(ids, string(p.ID()))
	}
	return ids
}

// formatError returns a user-friendly error message.
// With verbose=false: shows only the user message and suggestion.
// With verbose=true: also shows the underlying technical error.
func formatError(err error) string {
	var list *config.ErrorList
	if errors.As(err, &list) {
		return list.Format()
	}

	var userErr *config.UserError
	if errors.As(err, &userErr) {
		msg := userErr.Message
		if userErr.Context != "" {
			msg += fmt.Sprintf(" (at %s)", userErr.Context)
		}
		if userErr.Suggestion != "" {
			msg += fmt.Sprintf("\n\nSuggestion: %s", userErr.Suggestion)
		}
		if verbose && userErr.Underlying != nil {
			msg += fmt.Sprintf("\n\nTechnical details: %v", userErr.Underlying)
		}
		return msg
	}
	return err.Error()
}

// printError prints an error message to stderr with proper formatting.
func printError(err error) {
	printErrorTo(os.Stderr, err)
}

// printErrorTo prints an error message to the given writer.
func printErrorTo(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "Error: %s\n", formatError(err))
}

// registerFlagCompletions sets up custom completions for global flags.
func registerFlagCompletions() {
	_ = rootCmd.RegisterFlagCompletionFunc("config", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"yaml", "yml", "toml", "ini"}, cobra.ShellCompDirectiveFilterFileExt
	})

	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})

	_ = rootCmd.RegisterFlagCompletionFunc("log-format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{
			"text\tkey=value lines",
			"json\tone JSON object per line",
		}, cobra.ShellCompDirectiveNoFileComp
	})
}
