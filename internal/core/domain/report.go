package domain

import (
	"fmt"
	"strconv"
)

// ColumnHeader describes one column of an analytics table.
type ColumnHeader struct {
	Name       string `json:"name"`
	ColumnType string `json:"columnType,omitempty"`
	DataType   string `json:"dataType,omitempty"`
}

// ColumnarPayload is the analytics API's table encoding: a shared column list
// plus rows whose values align positionally to it.
type ColumnarPayload struct {
	ColumnHeaders []ColumnHeader `json:"columnHeaders"`
	Rows          [][]any        `json:"rows"`
}

// ColumnNames returns the header names in order.
func (p ColumnarPayload) ColumnNames() []string {
	names := make([]string, len(p.ColumnHeaders))
	for i, h := range p.ColumnHeaders {
		names[i] = h.Name
	}
	return names
}

// AnalyticsRecord maps column name to a string or numeric value.
type AnalyticsRecord map[string]any

// Float returns the numeric value of a column.
// Missing or non-numeric values yield 0.
func (r AnalyticsRecord) Float(column string) float64 {
	switch v := r[column].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// String returns the value of a column formatted as text.
func (r AnalyticsRecord) String(column string) string {
	v, ok := r[column]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// AnalyticsReport is the normalised form of a ColumnarPayload.
// Row order is the order the API returned.
type AnalyticsReport struct {
	Columns []string          `json:"columns"`
	Rows    []AnalyticsRecord `json:"rows"`
}

// Sum adds a numeric column across all rows.
func (r *AnalyticsReport) Sum(column string) float64 {
	var total float64
	for _, row := range r.Rows {
		total += row.Float(column)
	}
	return total
}

// Mean averages a numeric column across all rows; 0 for an empty report.
func (r *AnalyticsReport) Mean(column string) float64 {
	if len(r.Rows) == 0 {
		return 0
	}
	return r.Sum(column) / float64(len(r.Rows))
}

// HasColumn returns true if the report contains the named column.
func (r *AnalyticsReport) HasColumn(column string) bool {
	for _, c := range r.Columns {
		if c == column {
			return true
		}
	}
	return false
}
