package mcp

import (
	"github.com/custodia-labs/tubedash/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the MCP server.
type Ports struct {
	// Analytics runs catalog queries.
	Analytics driving.AnalyticsService

	// Reports adds totals to revenue and growth reports.
	Reports driving.ReportService

	// SavedReports exposes the user's saved reports as resources.
	SavedReports driving.SavedReportService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Analytics == nil {
		return ErrMissingAnalyticsService
	}
	// Reports and SavedReports are optional.
	return nil
}
