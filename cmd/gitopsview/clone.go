package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/amenflux/gitopsview/internal/adapters/notify"
	"github.com/amenflux/gitopsview/internal/app"
	"github.com/amenflux/gitopsview/internal/domain/action"
	"github.com/spf13/cobra"
)

var cloneCmd = &cobra.Command{
	Use:   "clone <repository-url>",
	Short: "Simulate cloning the project to a GitHub repository",
	Long: `Validate a GitHub repository URL and run the simulated clone, the
same flow as the viewer's "Clone to GitHub Repository" dialog.

No network access happens; the clone completes after the configured
clone.pending_delay.

Examples:
  gitopsview clone https://github.com/username/repo.git`,
	Args: cobra.ExactArgs(1),
	RunE: runClone,
}

func init() {
	rootCmd.AddCommand(cloneCmd)
}

func runClone(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	logger, err := env.newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := action.ValidateRepoURL(args[0]); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Cloning into %s...\n", args[0])

	viewer := app.New(env.catalog, out).WithLogger(logger)
	_, err = viewer.Clone(ctx, args[0], newSimulator(env.settings), notify.NewConsole(out))
	return err
}
