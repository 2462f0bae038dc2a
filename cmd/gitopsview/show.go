package main

import (
	"context"
	"fmt"

	"github.com/amenflux/gitopsview/internal/app"
	"github.com/spf13/cobra"
)

var (
	showCopy        bool
	showLineNumbers bool
)

var showCmd = &cobra.Command{
	Use:   "show <panel|topic> [document]",
	Short: "Print a document",
	Long: `Print a document exactly as the viewer's copy action would place it on
the clipboard. Without a document id the owner's default tab is shown.

Examples:
  gitopsview show helm values          # Print values.yaml
  gitopsview show argo instructions    # Print the deployment steps
  gitopsview show secrets --copy       # Copy the default secrets example
  gitopsview show node app -n          # Print with line numbers`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showCopy, "copy", false, "copy the document to the clipboard")
	showCmd.Flags().BoolVarP(&showLineNumbers, "line-numbers", "n", false, "prefix lines with their number")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	logger, err := env.newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	var id string
	if len(args) > 1 {
		id = args[1]
	}

	viewer := app.New(env.catalog, cmd.OutOrStdout()).WithLogger(logger)
	doc, err := viewer.Document(args[0], id)
	if err != nil {
		return err
	}

	if showCopy {
		if err := newClipboard().WriteText(context.Background(), doc.Content()); err != nil {
			return fmt.Errorf("failed to copy %s: %w", doc.Title(), err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Copied %s to the clipboard.\n", doc.Title())
		return nil
	}
	return viewer.PrintDocument(doc, showLineNumbers)
}
