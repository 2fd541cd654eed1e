package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thinktide/timeaccount/internal/model"
)

// scenarioEntries mirrors the three-entry export scenario: two Acme
// entries and one TechCorp entry, 4h30m in total.
func scenarioEntries() []model.TimeEntry {
	return []model.TimeEntry{
		{
			ID: "1", Description: "Website Development", Customer: "Acme Inc.",
			DurationMS: 7200000, Timestamp: time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
			Type: model.TypeManual,
		},
		{
			ID: "2", Description: "Server Maintenance", Customer: "TechCorp",
			DurationMS: 5400000, Timestamp: time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC),
			Type: model.TypeAutomatic,
		},
		{
			ID: "3", Description: "Client Meeting", Customer: "Acme Inc.",
			DurationMS: 3600000, Timestamp: time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC),
			Type: model.TypeManual,
		},
	}
}

func TestBuildScenario(t *testing.T) {
	entries := scenarioEntries()
	sel := NewSelection("1", "2", "3")

	rpt, err := Build(entries, sel, RangeAll, "", testNow)
	require.NoError(t, err)

	assert.Equal(t, "All Time", rpt.DateRangeLabel)
	assert.Equal(t, testNow, rpt.GeneratedAt)
	assert.Equal(t, int64(16200000), rpt.TotalDurationMS)

	require.Len(t, rpt.CustomerBreakdown, 2)
	acme := rpt.CustomerBreakdown[0]
	tech := rpt.CustomerBreakdown[1]
	assert.Equal(t, "Acme Inc.", acme.CustomerName)
	assert.Equal(t, int64(10800000), acme.DurationMS)
	assert.InDelta(t, 66.7, acme.Percentage, 0.01)
	assert.Equal(t, "TechCorp", tech.CustomerName)
	assert.Equal(t, int64(5400000), tech.DurationMS)
	assert.InDelta(t, 33.3, tech.Percentage, 0.01)

	require.Len(t, rpt.Sections, 2)
	assert.Equal(t, "Acme Inc.", rpt.Sections[0].CustomerName)
	assert.Len(t, rpt.Sections[0].Descriptions, 2)
	assert.Equal(t, "TechCorp", rpt.Sections[1].CustomerName)
	assert.Len(t, rpt.Sections[1].Descriptions, 1)
}

func TestBuildEmptySelection(t *testing.T) {
	rpt, err := Build(scenarioEntries(), NewSelection(), RangeAll, "", testNow)
	assert.ErrorIs(t, err, ErrEmptySelection)
	assert.Nil(t, rpt)

	// A selection of only deselected ids is empty too.
	sel := NewSelection("1")
	sel.Deselect("1")
	_, err = Build(scenarioEntries(), sel, RangeAll, "", testNow)
	assert.ErrorIs(t, err, ErrEmptySelection)
}

func TestBuildSelectionOutsideFilter(t *testing.T) {
	// Selected entries that the customer filter removes do not sneak
	// back into the report.
	entries := scenarioEntries()
	sel := NewSelection("1", "2", "3")

	rpt, err := Build(entries, sel, RangeAll, "TechCorp", testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(5400000), rpt.TotalDurationMS)
	require.Len(t, rpt.Sections, 1)
	assert.Equal(t, "TechCorp", rpt.Sections[0].CustomerName)
}

func TestBuildSingleCustomerIsFullShare(t *testing.T) {
	entries := scenarioEntries()[:1]
	rpt, err := Build(entries, NewSelection("1"), RangeAll, "", testNow)
	require.NoError(t, err)

	require.Len(t, rpt.CustomerBreakdown, 1)
	assert.Equal(t, 100.0, rpt.CustomerBreakdown[0].Percentage)
}

func TestBuildPercentagesSumToRoughly100(t *testing.T) {
	entries := []model.TimeEntry{
		{ID: "1", Customer: "A", Description: "x", DurationMS: 1000000, Timestamp: testNow, Type: model.TypeManual},
		{ID: "2", Customer: "B", Description: "x", DurationMS: 1000000, Timestamp: testNow, Type: model.TypeManual},
		{ID: "3", Customer: "C", Description: "x", DurationMS: 1000000, Timestamp: testNow, Type: model.TypeManual},
	}
	sel := NewSelection("1", "2", "3")
	rpt, err := Build(entries, sel, RangeAll, "", testNow)
	require.NoError(t, err)

	var sum float64
	for _, b := range rpt.CustomerBreakdown {
		sum += b.Percentage
	}
	assert.InDelta(t, 100.0, sum, 0.1*float64(len(rpt.CustomerBreakdown)))
}

func TestBuildZeroTotalHasEmptyBreakdown(t *testing.T) {
	entries := []model.TimeEntry{
		{ID: "1", Customer: "A", Description: "x", DurationMS: 0, Timestamp: testNow, Type: model.TypeManual},
	}
	rpt, err := Build(entries, NewSelection("1"), RangeAll, "", testNow)
	require.NoError(t, err)

	assert.Equal(t, int64(0), rpt.TotalDurationMS)
	assert.Empty(t, rpt.CustomerBreakdown, "zero total must not produce NaN percentages")
	require.Len(t, rpt.Sections, 1)
	assert.Equal(t, 0.0, rpt.Sections[0].Descriptions[0].PercentOfCustomer)
}

func TestBuildRowsSortedNewestFirst(t *testing.T) {
	base := testNow.Add(-72 * time.Hour)
	entries := []model.TimeEntry{
		{ID: "1", Customer: "A", Description: "x", DurationMS: 1, Timestamp: base, Type: model.TypeManual},
		{ID: "2", Customer: "A", Description: "x", DurationMS: 1, Timestamp: base.Add(48 * time.Hour), Type: model.TypeManual},
		{ID: "3", Customer: "A", Description: "x", DurationMS: 1, Timestamp: base.Add(24 * time.Hour), Type: model.TypeManual},
	}
	sel := NewSelection("1", "2", "3")

	rpt, err := Build(entries, sel, RangeAll, "", testNow)
	require.NoError(t, err)

	rows := rpt.Sections[0].Descriptions[0].Rows
	require.Len(t, rows, 3)
	for i := 1; i < len(rows); i++ {
		assert.False(t, rows[i].Timestamp.After(rows[i-1].Timestamp),
			"rows must be non-increasing by timestamp")
	}
}

func TestBuildColorAssignmentDeterministic(t *testing.T) {
	entries := scenarioEntries()
	sel := NewSelection("1", "2", "3")

	first, err := Build(entries, sel, RangeAll, "", testNow)
	require.NoError(t, err)
	second, err := Build(entries, sel, RangeAll, "", testNow)
	require.NoError(t, err)

	for i := range first.CustomerBreakdown {
		assert.Equal(t, first.CustomerBreakdown[i].Color, second.CustomerBreakdown[i].Color)
	}
	// Distinct customers get distinct colors while the palette lasts.
	assert.NotEqual(t, first.CustomerBreakdown[0].Color, first.CustomerBreakdown[1].Color)
	// Section colors line up with breakdown colors.
	assert.Equal(t, first.CustomerBreakdown[0].Color, first.Sections[0].Color)
}

func TestBuildSnapshotsInput(t *testing.T) {
	entries := scenarioEntries()
	sel := NewSelection("1", "2", "3")

	rpt, err := Build(entries, sel, RangeAll, "", testNow)
	require.NoError(t, err)

	// Mutating the caller's slice after the build must not change the
	// already-computed report.
	entries[0].DurationMS = 0
	assert.Equal(t, int64(16200000), rpt.TotalDurationMS)
	assert.Equal(t, int64(7200000), rpt.Sections[0].Descriptions[0].Rows[0].DurationMS)
}

func TestBuildDateWindowApplied(t *testing.T) {
	old := model.TimeEntry{
		ID: "old", Customer: "A", Description: "x", DurationMS: 1000,
		Timestamp: testNow.AddDate(0, -2, 0), Type: model.TypeManual,
	}
	recent := model.TimeEntry{
		ID: "recent", Customer: "A", Description: "x", DurationMS: 2000,
		Timestamp: testNow.AddDate(0, 0, -2), Type: model.TypeManual,
	}
	sel := NewSelection("old", "recent")

	rpt, err := Build([]model.TimeEntry{old, recent}, sel, RangeWeek, "", testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), rpt.TotalDurationMS)
	assert.Equal(t, "Past Week (Aug 24 - Aug 31, 2026)", rpt.DateRangeLabel)
}
