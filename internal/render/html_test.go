package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thinktide/timeaccount/internal/model"
)

func sampleReport() *model.Report {
	return &model.Report{
		DateRangeLabel:  "All Time",
		GeneratedAt:     time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC),
		TotalDurationMS: 16200000,
		CustomerBreakdown: []model.BreakdownItem{
			{CustomerName: "Acme Inc.", DurationMS: 10800000, Percentage: 66.7, Color: "#4F46E5"},
			{CustomerName: "TechCorp", DurationMS: 5400000, Percentage: 33.3, Color: "#059669"},
		},
		Sections: []model.ReportSection{
			{
				CustomerName: "Acme Inc.",
				DurationMS:   10800000,
				Color:        "#4F46E5",
				Descriptions: []model.DescriptionSection{
					{
						Description:       "Website Development",
						DurationMS:        7200000,
						PercentOfCustomer: 66.7,
						Rows: []model.ReportRow{
							{Timestamp: time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC), DurationMS: 7200000, Type: model.TypeManual},
						},
					},
					{
						Description:       "Client Meeting",
						DurationMS:        3600000,
						PercentOfCustomer: 33.3,
						Rows: []model.ReportRow{
							{Timestamp: time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC), DurationMS: 3600000, Type: model.TypeManual},
						},
					},
				},
			},
			{
				CustomerName: "TechCorp",
				DurationMS:   5400000,
				Color:        "#059669",
				Descriptions: []model.DescriptionSection{
					{
						Description:       "Server Maintenance",
						DurationMS:        5400000,
						PercentOfCustomer: 100.0,
						Rows: []model.ReportRow{
							{Timestamp: time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC), DurationMS: 5400000, Type: model.TypeAutomatic},
						},
					},
				},
			},
		},
	}
}

func TestHTML(t *testing.T) {
	out, err := HTML(sampleReport(), "Time Account")
	require.NoError(t, err)
	doc := string(out)

	assert.Contains(t, doc, "<!DOCTYPE html>")
	assert.Contains(t, doc, "Time Tracking Report")
	assert.Contains(t, doc, "All Time")
	assert.Contains(t, doc, "Generated: Aug 31, 2026 at 2:30 PM")
	assert.Contains(t, doc, "4h 30m")
	assert.Contains(t, doc, "Acme Inc.")
	assert.Contains(t, doc, "TechCorp")
	assert.Contains(t, doc, "Website Development")
	assert.Contains(t, doc, "Server Maintenance")
	assert.Contains(t, doc, "3h 0m (66.7%)")
	assert.Contains(t, doc, "1h 30m (33.3%)")
	assert.Contains(t, doc, "Manual Entry")
	assert.Contains(t, doc, "Timer")
	assert.NotContains(t, doc, "No entries selected")
}

func TestHTMLGradientStops(t *testing.T) {
	out, err := HTML(sampleReport(), "Time Account")
	require.NoError(t, err)
	doc := string(out)

	// Cumulative slice ranges in breakdown order.
	assert.Contains(t, doc, "conic-gradient(#4F46E5 0.0% 66.7%, #059669 66.7% 100.0%)")
}

func TestHTMLEmptySections(t *testing.T) {
	rpt := &model.Report{
		DateRangeLabel: "All Time",
		GeneratedAt:    time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC),
	}
	out, err := HTML(rpt, "Time Account")
	require.NoError(t, err)
	doc := string(out)

	assert.Contains(t, doc, "No entries selected")
	assert.NotContains(t, doc, "<table>", "empty report must not render a broken table")
	assert.NotContains(t, doc, "conic-gradient")
}

func TestHTMLEscapesUserContent(t *testing.T) {
	rpt := sampleReport()
	rpt.Sections[0].CustomerName = `<script>alert("x")</script>`
	rpt.Sections[0].Descriptions[0].Description = `Dev & "ops"`

	out, err := HTML(rpt, "Time Account")
	require.NoError(t, err)
	doc := string(out)

	assert.NotContains(t, doc, `<script>alert`)
	assert.Contains(t, doc, "&lt;script&gt;")
	assert.Contains(t, doc, "Dev &amp;")
}

func TestHTMLPageBreaksBetweenSections(t *testing.T) {
	out, err := HTML(sampleReport(), "Time Account")
	require.NoError(t, err)

	// One break between two sections, none after the last.
	assert.Equal(t, 1, strings.Count(string(out), `class="page-break"`))
}
