package main

import (
	"github.com/amenflux/gitopsview/internal/app"
	"github.com/spf13/cobra"
)

var docsJSON bool

var docsCmd = &cobra.Command{
	Use:     "docs [panel|topic]",
	Aliases: []string{"ls"},
	Short:   "List the documentation documents",
	Long: `List every document of the component panels and detail topics, or of
one owner. The default tab of each owner is marked with '*'.

Examples:
  gitopsview docs              # Everything
  gitopsview docs helm         # The Helm chart panel
  gitopsview docs argocd       # The ArgoCD topic
  gitopsview docs --json       # Machine-readable output`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDocs,
}

func init() {
	docsCmd.Flags().BoolVar(&docsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(docsCmd)
}

func runDocs(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}

	var owner string
	if len(args) > 0 {
		owner = args[0]
	}

	viewer := app.New(env.catalog, cmd.OutOrStdout())
	docs, err := viewer.ListDocuments(owner)
	if err != nil {
		return err
	}

	if docsJSON {
		return writeJSON(cmd.OutOrStdout(), docs)
	}
	return viewer.PrintDocuments(docs)
}
