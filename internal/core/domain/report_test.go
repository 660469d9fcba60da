package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyticsRecord_Float(t *testing.T) {
	r := AnalyticsRecord{
		"views":   float64(150),
		"likes":   int64(7),
		"cpm":     "2.5",
		"day":     "2024-01-01",
		"missing": nil,
	}

	assert.Equal(t, 150.0, r.Float("views"))
	assert.Equal(t, 7.0, r.Float("likes"))
	assert.Equal(t, 2.5, r.Float("cpm"))
	assert.Equal(t, 0.0, r.Float("day"))
	assert.Equal(t, 0.0, r.Float("missing"))
	assert.Equal(t, 0.0, r.Float("absent"))
}

func TestAnalyticsRecord_String(t *testing.T) {
	r := AnalyticsRecord{"day": "2024-01-01", "views": float64(100), "ratio": 0.25}

	assert.Equal(t, "2024-01-01", r.String("day"))
	assert.Equal(t, "100", r.String("views"))
	assert.Equal(t, "0.25", r.String("ratio"))
	assert.Equal(t, "", r.String("absent"))
}

func TestAnalyticsReport_Aggregates(t *testing.T) {
	report := &AnalyticsReport{
		Columns: []string{"day", "views"},
		Rows: []AnalyticsRecord{
			{"day": "2024-01-01", "views": float64(100)},
			{"day": "2024-01-02", "views": float64(150)},
		},
	}

	assert.Equal(t, 250.0, report.Sum("views"))
	assert.Equal(t, 125.0, report.Mean("views"))
	assert.True(t, report.HasColumn("day"))
	assert.False(t, report.HasColumn("likes"))
}

func TestAnalyticsReport_MeanEmpty(t *testing.T) {
	report := &AnalyticsReport{}
	assert.Equal(t, 0.0, report.Mean("views"))
}

func TestColumnarPayload_ColumnNames(t *testing.T) {
	p := ColumnarPayload{ColumnHeaders: []ColumnHeader{{Name: "day"}, {Name: "views"}}}
	assert.Equal(t, []string{"day", "views"}, p.ColumnNames())
}
