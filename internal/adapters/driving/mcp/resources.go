package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/tubedash/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for tubedash resources.
	uriScheme = "tubedash://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "channel",
		Name:        "channel",
		Description: "Statistics for the signed-in channel",
		MIMEType:    "application/json",
	}, s.handleChannelResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "saved-reports",
		Name:        "saved-reports",
		Description: "Saved report definitions, newest first",
		MIMEType:    "application/json",
	}, s.handleSavedReportsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "saved-reports/{reportId}",
		Name:        "saved-report",
		Description: "A single saved report definition",
		MIMEType:    "application/json",
	}, s.handleSavedReportResource)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleChannelResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	ch, err := s.ports.Analytics.Channel(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading channel: %w", err)
	}
	return jsonResource(req.Params.URI, ch)
}

// handleSavedReportsResource lists saved reports, or [] when unavailable.
func (s *Server) handleSavedReportsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.SavedReports == nil {
		return jsonResource(req.Params.URI, []domain.SavedReport{})
	}

	reports, err := s.ports.SavedReports.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing saved reports: %w", err)
	}
	return jsonResource(req.Params.URI, reports)
}

func (s *Server) handleSavedReportResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.SavedReports == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	id := extractSavedReportID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	reports, err := s.ports.SavedReports.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing saved reports: %w", err)
	}
	for i := range reports {
		if reports[i].ID == id {
			return jsonResource(req.Params.URI, reports[i])
		}
	}
	return nil, mcp.ResourceNotFoundError(req.Params.URI)
}

// extractSavedReportID extracts the ID from tubedash://saved-reports/{reportId}.
func extractSavedReportID(uri string) string {
	const prefix = uriScheme + "saved-reports/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
