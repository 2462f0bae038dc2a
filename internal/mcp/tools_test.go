package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/amenflux/gitopsview/internal/app"
	"github.com/amenflux/gitopsview/internal/domain/action"
	"github.com/amenflux/gitopsview/internal/domain/content/embedded"
	"github.com/felixgeelhaar/mcp-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- helpers ---

func testVersionInfo() VersionInfo {
	return VersionInfo{Version: "1.2.3", Commit: "abc1234", BuildDate: "2026-01-01"}
}

// newTestServer creates an MCP server with all tools registered over the embedded catalog.
func newTestServer(t *testing.T) *mcp.Server {
	t.Helper()
	cat, err := embedded.Catalog()
	require.NoError(t, err)

	srv := mcp.NewServer(mcp.ServerInfo{Name: "test", Version: "1.0.0"})
	RegisterAll(srv, app.New(cat, bytes.NewBuffer(nil)), testVersionInfo())
	return srv
}

// executeTool retrieves and executes a registered tool by name.
func executeTool(t *testing.T, srv *mcp.Server, toolName string, input interface{}) (interface{}, error) {
	t.Helper()
	tool, ok := srv.GetTool(toolName)
	require.True(t, ok, "tool %q should be registered", toolName)

	data, err := json.Marshal(input)
	require.NoError(t, err)

	return tool.Execute(context.Background(), data)
}

func TestRegisterAll(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	toolNames := make(map[string]bool)
	for _, tool := range srv.Tools() {
		toolNames[tool.Name] = true
	}

	for _, name := range []string{
		"gitopsview_list_documents",
		"gitopsview_get_document",
		"gitopsview_flow",
		"gitopsview_validate_repo_url",
		"gitopsview_status",
	} {
		assert.True(t, toolNames[name], "%s should be registered", name)
	}
}

func TestListDocumentsTool(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	result, err := executeTool(t, srv, "gitopsview_list_documents", ListDocumentsInput{})
	require.NoError(t, err)
	out, ok := result.(*ListDocumentsOutput)
	require.True(t, ok)
	assert.Equal(t, 26, out.Count)
	assert.Len(t, out.Documents, out.Count)

	result, err = executeTool(t, srv, "gitopsview_list_documents", ListDocumentsInput{Owner: "secrets"})
	require.NoError(t, err)
	out = result.(*ListDocumentsOutput)
	require.Equal(t, 4, out.Count)
	assert.Equal(t, "kubernetes", out.Documents[0].ID)
}

func TestListDocumentsTool_Errors(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	_, err := executeTool(t, srv, "gitopsview_list_documents", ListDocumentsInput{Owner: "terraform"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = executeTool(t, srv, "gitopsview_list_documents", ListDocumentsInput{Owner: "../etc"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid owner")
}

func TestGetDocumentTool(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	result, err := executeTool(t, srv, "gitopsview_get_document", GetDocumentInput{Owner: "helm", ID: "hpa"})
	require.NoError(t, err)
	out, ok := result.(*GetDocumentOutput)
	require.True(t, ok)
	assert.Equal(t, "hpa", out.ID)
	assert.Equal(t, "templates/hpa.yaml", out.Title)
	assert.Equal(t, "yaml", out.Type)
	assert.Contains(t, out.Content, "HorizontalPodAutoscaler")
}

func TestGetDocumentTool_DefaultTab(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	result, err := executeTool(t, srv, "gitopsview_get_document", GetDocumentInput{Owner: "git"})
	require.NoError(t, err)
	assert.Equal(t, "helm", result.(*GetDocumentOutput).ID)
}

func TestGetDocumentTool_Errors(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	tests := []struct {
		name   string
		input  GetDocumentInput
		errMsg string
	}{
		{name: "missing owner", input: GetDocumentInput{ID: "app"}, errMsg: "invalid owner"},
		{name: "bad id", input: GetDocumentInput{Owner: "node", ID: "App.js"}, errMsg: "invalid id"},
		{name: "unknown document", input: GetDocumentInput{Owner: "node", ID: "server"}, errMsg: "not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := executeTool(t, srv, "gitopsview_get_document", tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestFlowTool(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	result, err := executeTool(t, srv, "gitopsview_flow", FlowInput{})
	require.NoError(t, err)
	out, ok := result.(*FlowOutput)
	require.True(t, ok)
	require.Len(t, out.Stages, 4)
	assert.Equal(t, "git", out.Stages[0].Key)
	assert.Equal(t, "kubernetes", out.Stages[3].Key)
}

func TestValidateRepoURLTool(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	tests := []struct {
		name  string
		url   string
		valid bool
		code  string
	}{
		{name: "valid", url: "https://github.com/acme/app.git", valid: true},
		{name: "empty", url: "", code: action.CodeEmptyURL},
		{name: "missing suffix", url: "https://github.com/acme/app", code: action.CodeInvalidURL},
		{name: "other host", url: "https://gitlab.com/acme/app.git", code: action.CodeInvalidURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result, err := executeTool(t, srv, "gitopsview_validate_repo_url", ValidateRepoURLInput{URL: tt.url})
			require.NoError(t, err)
			out := result.(*ValidateRepoURLOutput)
			assert.Equal(t, tt.valid, out.Valid)
			assert.Equal(t, tt.code, out.Code)
			if !tt.valid {
				assert.NotEmpty(t, out.Message)
			}
		})
	}
}

func TestStatusTool(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	result, err := executeTool(t, srv, "gitopsview_status", StatusInput{})
	require.NoError(t, err)
	out, ok := result.(*StatusOutput)
	require.True(t, ok)
	assert.Equal(t, "1.2.3", out.Version)
	assert.Equal(t, "abc1234", out.Commit)
	assert.Equal(t, 4, out.Panels)
	assert.Equal(t, 4, out.Topics)
	assert.Equal(t, 26, out.Documents)
}
