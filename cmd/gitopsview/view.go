package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/amenflux/gitopsview/internal/adapters/logging"
	"github.com/amenflux/gitopsview/internal/adapters/notify"
	"github.com/amenflux/gitopsview/internal/domain/config"
	"github.com/amenflux/gitopsview/internal/domain/content"
	"github.com/amenflux/gitopsview/internal/ports"
	"github.com/amenflux/gitopsview/internal/tui"
	"github.com/amenflux/gitopsview/internal/tui/components"
	"github.com/amenflux/gitopsview/internal/tui/render"
	"github.com/spf13/cobra"
)

var (
	viewPanel string
	viewTopic string
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the interactive documentation viewer",
	Long: `Open the full-screen viewer: the GitOps flow diagram, the component
panels with their configuration files, and the getting started guide.

Logs are written to a file while the viewer owns the terminal.

Examples:
  gitopsview view                 # Start on the default panel
  gitopsview view --panel helm    # Start on the Helm chart panel
  gitopsview view --topic argocd  # Open the ArgoCD details`,
	Args: cobra.NoArgs,
	RunE: runView,
}

func init() {
	addViewFlags(viewCmd)
	rootCmd.AddCommand(viewCmd)
}

func addViewFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&viewPanel, "panel", "", "component panel to select (node, helm, argo, secrets)")
	cmd.Flags().StringVar(&viewTopic, "topic", "", "flow stage to open (git, cicd, argocd, kubernetes)")
}

// viewerOptions builds the TUI options. Logs go to the returned file, which
// the caller closes.
func viewerOptions(env *environment) (tui.ViewerOptions, *os.File, error) {
	panel, topic, err := resolveStart(env)
	if err != nil {
		return tui.ViewerOptions{}, nil, err
	}

	path := env.settings.Log.File
	if path == "" {
		if path, err = logging.DefaultLogPath(); err != nil {
			return tui.ViewerOptions{}, nil, err
		}
	}
	f, err := logging.OpenFile(path)
	if err != nil {
		return tui.ViewerOptions{}, nil, err
	}
	logger, err := env.newLogger(f)
	if err != nil {
		_ = f.Close()
		return tui.ViewerOptions{}, nil, err
	}

	md, err := render.NewMarkdown(env.settings.Display.MarkdownStyle, env.settings.Display.Width)
	if err != nil {
		_ = f.Close()
		return tui.ViewerOptions{}, nil, err
	}

	display := env.settings.Display
	return tui.ViewerOptions{
		Catalog: env.catalog,
		Blocks: components.BlockConfig{
			Clipboard:   newClipboard(),
			Logger:      logger,
			Highlighter: render.NewHighlighter(display.HighlightStyle),
			Feedback:    env.settings.CopyFeedback,
			LineNumbers: display.LineNumbers,
		},
		Dialog: components.DialogConfig{
			Simulator:    newSimulator(env.settings),
			SuccessDelay: env.settings.Clone.SuccessDelay,
			Logger:       logger,
		},
		Markdown:     md,
		Notifier:     notify.NewLog(logger),
		Logger:       logger,
		InitialPanel: panel,
		InitialTopic: topic,
	}, f, nil
}

// resolveStart validates --panel and --topic against the catalog.
func resolveStart(env *environment) (content.PanelID, content.TopicKey, error) {
	panel := content.PanelID(env.settings.Display.DefaultPanel)
	if viewPanel != "" {
		panel = content.PanelID(viewPanel)
	}
	if _, ok := env.catalog.Panel(panel); !ok {
		return "", "", config.NewPanelNotFoundError(string(panel), panelIDs(env.catalog))
	}

	topic, err := content.ParseTopicKey(viewTopic)
	if err != nil {
		keys := make([]string, 0, len(content.TopicKeys()))
		for _, k := range content.TopicKeys() {
			keys = append(keys, k.String())
		}
		return "", "", config.NewTopicNotFoundError(viewTopic, keys).WithUnderlying(err)
	}
	return panel, topic, nil
}

func runView(cmd *cobra.Command, _ []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}

	opts, logOut, err := viewerOptions(env)
	if err != nil {
		return err
	}
	defer func() { _ = logOut.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts.Logger.Info(ctx, "viewer started", ports.F("panel", string(opts.InitialPanel)))
	result, err := tui.RunViewer(ctx, opts)
	if err != nil {
		return err
	}
	opts.Logger.Info(ctx, "viewer stopped", ports.F("notifications", result.Notifications))

	if result.Notifications > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%d repository clone(s) simulated.\n", result.Notifications)
	}
	return nil
}
