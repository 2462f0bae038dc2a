package main

import (
	"github.com/amenflux/gitopsview/internal/app"
	"github.com/spf13/cobra"
)

var flowJSON bool

var flowCmd = &cobra.Command{
	Use:   "flow",
	Short: "Print the GitOps flow stages",
	Long: `Print how changes flow from Git to Kubernetes, one stage per block.

Examples:
  gitopsview flow          # Text diagram
  gitopsview flow --json   # Machine-readable output`,
	Args: cobra.NoArgs,
	RunE: runFlow,
}

func init() {
	flowCmd.Flags().BoolVar(&flowJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(flowCmd)
}

func runFlow(cmd *cobra.Command, _ []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}

	viewer := app.New(env.catalog, cmd.OutOrStdout())
	stages := viewer.Flow()
	if flowJSON {
		return writeJSON(cmd.OutOrStdout(), stages)
	}
	return viewer.PrintFlow(stages)
}
