package services

import (
	"fmt"

	"github.com/custodia-labs/tubedash/internal/core/domain"
)

// NormalizeReport zips each row of a columnar payload against the column
// names, producing one record per row in the original order.
//
// Rows whose length differs from the column count, rows without columns,
// and empty or duplicate column names are rejected with a
// *domain.MalformedReportError. Nothing is truncated or padded.
func NormalizeReport(payload domain.ColumnarPayload) (*domain.AnalyticsReport, error) {
	columns := payload.ColumnNames()

	if len(columns) == 0 && len(payload.Rows) > 0 {
		return nil, &domain.MalformedReportError{Row: -1, Reason: "rows present but no columns"}
	}

	seen := make(map[string]struct{}, len(columns))
	for i, name := range columns {
		if name == "" {
			return nil, &domain.MalformedReportError{Row: -1, Reason: fmt.Sprintf("column %d has no name", i)}
		}
		if _, dup := seen[name]; dup {
			return nil, &domain.MalformedReportError{Row: -1, Reason: fmt.Sprintf("duplicate column %q", name)}
		}
		seen[name] = struct{}{}
	}

	records := make([]domain.AnalyticsRecord, 0, len(payload.Rows))
	for i, row := range payload.Rows {
		if len(row) != len(columns) {
			return nil, &domain.MalformedReportError{Row: i, Want: len(columns), Got: len(row)}
		}

		record := make(domain.AnalyticsRecord, len(columns))
		for j, name := range columns {
			record[name] = row[j]
		}
		records = append(records, record)
	}

	return &domain.AnalyticsReport{
		Columns: columns,
		Rows:    records,
	}, nil
}
