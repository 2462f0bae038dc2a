// Package mcp provides the MCP (Model Context Protocol) server tools for gitopsview.
package mcp

import (
	"context"
	"errors"

	"github.com/amenflux/gitopsview/internal/app"
	"github.com/amenflux/gitopsview/internal/domain/action"
	"github.com/felixgeelhaar/mcp-go"
)

// ListDocumentsInput is the input for the gitopsview_list_documents tool.
type ListDocumentsInput struct {
	Owner string `json:"owner,omitempty" jsonschema:"description=Panel id or topic key to list (default: all)"`
}

// ListDocumentsOutput is the output for the gitopsview_list_documents tool.
type ListDocumentsOutput struct {
	Documents []app.DocumentSummary `json:"documents"`
	Count     int                   `json:"count"`
}

// GetDocumentInput is the input for the gitopsview_get_document tool.
type GetDocumentInput struct {
	Owner string `json:"owner" jsonschema:"required,description=Panel id (node, helm, argo, secrets) or topic key (git, cicd, argocd, kubernetes)"`
	ID    string `json:"id,omitempty" jsonschema:"description=Document id (default: the owner's default tab)"`
}

// GetDocumentOutput is the output for the gitopsview_get_document tool.
type GetDocumentOutput struct {
	Owner   string `json:"owner"`
	ID      string `json:"id"`
	Title   string `json:"title"`
	Type    string `json:"type"`
	Content string `json:"content"`
}

// FlowInput is the input for the gitopsview_flow tool.
type FlowInput struct{}

// FlowOutput is the output for the gitopsview_flow tool.
type FlowOutput struct {
	Stages []app.FlowStage `json:"stages"`
}

// ValidateRepoURLInput is the input for the gitopsview_validate_repo_url tool.
type ValidateRepoURLInput struct {
	URL string `json:"url" jsonschema:"description=Repository URL in the form https://github.com/<owner>/<repo>.git"`
}

// ValidateRepoURLOutput is the output for the gitopsview_validate_repo_url tool.
type ValidateRepoURLOutput struct {
	Valid   bool   `json:"valid"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// StatusInput is the input for the gitopsview_status tool.
type StatusInput struct{}

// StatusOutput is the output for the gitopsview_status tool.
type StatusOutput struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	Panels    int    `json:"panels"`
	Topics    int    `json:"topics"`
	Documents int    `json:"documents"`
}

// VersionInfo contains version metadata for the MCP server.
type VersionInfo struct {
	Version   string
	Commit    string
	BuildDate string
}

// RegisterAll registers all MCP tools with the server.
func RegisterAll(srv *mcp.Server, viewer *app.Viewer, versionInfo VersionInfo) {
	registerListDocumentsTool(srv, viewer)
	registerGetDocumentTool(srv, viewer)
	registerFlowTool(srv, viewer)
	registerValidateRepoURLTool(srv)
	registerStatusTool(srv, viewer, versionInfo)
}

func registerListDocumentsTool(srv *mcp.Server, viewer *app.Viewer) {
	srv.Tool("gitopsview_list_documents").
		Description("List the documentation documents of every component panel and detail topic, or of one owner.").
		ReadOnly().
		Handler(func(_ context.Context, in ListDocumentsInput) (*ListDocumentsOutput, error) {
			if err := ValidateListDocumentsInput(&in); err != nil {
				return nil, err
			}
			docs, err := viewer.ListDocuments(in.Owner)
			if err != nil {
				return nil, err
			}
			return &ListDocumentsOutput{Documents: docs, Count: len(docs)}, nil
		})
}

func registerGetDocumentTool(srv *mcp.Server, viewer *app.Viewer) {
	srv.Tool("gitopsview_get_document").
		Description("Get the verbatim content of one document, exactly as the copy action would place it on the clipboard.").
		ReadOnly().
		Handler(func(_ context.Context, in GetDocumentInput) (*GetDocumentOutput, error) {
			if err := ValidateGetDocumentInput(&in); err != nil {
				return nil, err
			}
			doc, err := viewer.Document(in.Owner, in.ID)
			if err != nil {
				return nil, err
			}
			return &GetDocumentOutput{
				Owner:   in.Owner,
				ID:      doc.ID(),
				Title:   doc.Title(),
				Type:    doc.ContentType().String(),
				Content: doc.Content(),
			}, nil
		})
}

func registerFlowTool(srv *mcp.Server, viewer *app.Viewer) {
	srv.Tool("gitopsview_flow").
		Description("Get the GitOps flow stages in pipeline order: Git repository, CI/CD, ArgoCD, Kubernetes.").
		ReadOnly().
		Handler(func(_ context.Context, _ FlowInput) (*FlowOutput, error) {
			return &FlowOutput{Stages: viewer.Flow()}, nil
		})
}

func registerValidateRepoURLTool(srv *mcp.Server) {
	srv.Tool("gitopsview_validate_repo_url").
		Description("Check a repository URL against the clone dialog's rules without running a clone.").
		ReadOnly().
		Handler(func(_ context.Context, in ValidateRepoURLInput) (*ValidateRepoURLOutput, error) {
			err := action.ValidateRepoURL(in.URL)
			if err == nil {
				return &ValidateRepoURLOutput{Valid: true}, nil
			}

			var verr *action.ValidationError
			if !errors.As(err, &verr) {
				return nil, err
			}
			return &ValidateRepoURLOutput{Code: verr.Code, Message: verr.Message}, nil
		})
}

func registerStatusTool(srv *mcp.Server, viewer *app.Viewer, versionInfo VersionInfo) {
	srv.Tool("gitopsview_status").
		Description("Get version info and catalog statistics.").
		ReadOnly().
		Handler(func(_ context.Context, _ StatusInput) (*StatusOutput, error) {
			docs, err := viewer.ListDocuments("")
			if err != nil {
				return nil, err
			}
			cat := viewer.Catalog()
			return &StatusOutput{
				Version:   versionInfo.Version,
				Commit:    versionInfo.Commit,
				BuildDate: versionInfo.BuildDate,
				Panels:    len(cat.Panels()),
				Topics:    len(cat.Topics()),
				Documents: len(docs),
			}, nil
		})
}
