package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/amenflux/gitopsview/internal/app"
	mcptools "github.com/amenflux/gitopsview/internal/mcp"
	"github.com/felixgeelhaar/mcp-go"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server for AI agent integration",
	Long: `Start a Model Context Protocol (MCP) server on stdio.

The server exposes the documentation catalog read-only.

Available tools:
  - gitopsview_list_documents     List panel and topic documents
  - gitopsview_get_document       Get a document's verbatim content
  - gitopsview_flow               Get the GitOps flow stages
  - gitopsview_validate_repo_url  Check a clone target URL
  - gitopsview_status             Version and catalog statistics

Examples:
  gitopsview mcp`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

// newMCPServer creates the server with every tool registered.
func newMCPServer(env *environment) *mcp.Server {
	srv := mcp.NewServer(mcp.ServerInfo{
		Name:    "gitopsview",
		Version: version,
	})

	mcptools.RegisterAll(srv, app.New(env.catalog, io.Discard), mcptools.VersionInfo{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
	})
	return srv
}

func runMCP(_ *cobra.Command, _ []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return mcp.ServeStdio(ctx, newMCPServer(env))
}
