// Package tui provides the interactive analytics dashboard for tubedash.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/tubedash/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the TUI.
type Ports struct {
	// Analytics runs catalog queries.
	Analytics driving.AnalyticsService

	// Reports adds totals to revenue and growth reports.
	Reports driving.ReportService

	// SavedReports stores and streams saved report definitions.
	SavedReports driving.SavedReportService

	// Session reports the signed-in user.
	Session driving.SessionService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Analytics == nil {
		return ErrMissingAnalyticsService
	}
	return nil
}
