// Package mcp provides an MCP (Model Context Protocol) server adapter for tubedash.
// It lets AI assistants query the signed-in channel's analytics.
package mcp

import "errors"

// ErrMissingAnalyticsService is returned when the analytics service is not provided.
var ErrMissingAnalyticsService = errors.New("mcp: analytics service is required")
