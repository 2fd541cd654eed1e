package report

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/thinktide/timeaccount/internal/model"
)

// ErrEmptySelection is returned by Build when no entries survive the
// filters and selection. The caller surfaces it as a prompt; no
// partial report is produced.
var ErrEmptySelection = errors.New("no entries selected")

// palette provides the deterministic color cycle for the customer
// breakdown. Colors are assigned by breakdown rank so the same data
// always renders with the same colors across exports.
var palette = []string{
	"#4F46E5", // indigo
	"#059669", // emerald
	"#D97706", // amber
	"#DC2626", // red
	"#0891B2", // cyan
	"#7C3AED", // violet
	"#DB2777", // pink
	"#65A30D", // lime
}

func colorFor(rank int) string {
	return palette[rank%len(palette)]
}

// round1 rounds to one decimal place for display.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Build runs the full aggregation pipeline: filter the entries by date
// range and customer, keep the selected subset, group by customer and
// description, and shape the result into a [model.Report].
//
// The report never aliases the caller's slices; each export works on
// its own snapshot so a concurrent edit cannot corrupt a report in
// flight. now anchors both the date window and the generation
// timestamp.
func Build(entries []model.TimeEntry, sel Selection, r DateRange, customerFilter string, now time.Time) (*model.Report, error) {
	snapshot := make([]model.TimeEntry, len(entries))
	copy(snapshot, entries)

	filtered := FilterByDateRange(snapshot, r, now)
	filtered = FilterByCustomer(filtered, customerFilter)
	selected := SelectSubset(filtered, sel)
	if len(selected) == 0 {
		return nil, ErrEmptySelection
	}

	groups := GroupByCustomer(selected)
	total := SumDurations(selected)

	return &model.Report{
		DateRangeLabel:    RangeLabel(r, now),
		GeneratedAt:       now,
		TotalDurationMS:   total,
		CustomerBreakdown: computeBreakdown(groups, total),
		Sections:          computeSections(groups),
	}, nil
}

// computeBreakdown produces the per-customer distribution in group
// order. A zero total yields an empty breakdown rather than NaN
// percentages, which happens when every selected entry has zero
// duration.
func computeBreakdown(groups []CustomerGroup, total int64) []model.BreakdownItem {
	if total == 0 {
		return nil
	}
	items := make([]model.BreakdownItem, 0, len(groups))
	for i, g := range groups {
		customerTotal := g.Total()
		items = append(items, model.BreakdownItem{
			CustomerName: g.Name,
			DurationMS:   customerTotal,
			Percentage:   round1(float64(customerTotal) / float64(total) * 100),
			Color:        colorFor(i),
		})
	}
	return items
}

// computeSections shapes the grouped entries into report sections.
// Customers and descriptions keep first-seen order; rows within a
// description are sorted newest-first. A non-empty group normally has
// a positive total, but zero-duration entries can drive it to zero, so
// the percentage guard stays.
func computeSections(groups []CustomerGroup) []model.ReportSection {
	sections := make([]model.ReportSection, 0, len(groups))
	for i, g := range groups {
		customerTotal := g.Total()
		section := model.ReportSection{
			CustomerName: g.Name,
			DurationMS:   customerTotal,
			Color:        colorFor(i),
		}

		for _, d := range g.Descriptions {
			descTotal := SumDurations(d.Entries)
			var pct float64
			if customerTotal > 0 {
				pct = round1(float64(descTotal) / float64(customerTotal) * 100)
			}

			rows := make([]model.ReportRow, 0, len(d.Entries))
			for _, e := range d.Entries {
				rows = append(rows, model.ReportRow{
					Timestamp:  e.Timestamp,
					DurationMS: e.DurationMS,
					Type:       e.Type,
				})
			}
			sort.SliceStable(rows, func(a, b int) bool {
				return rows[a].Timestamp.After(rows[b].Timestamp)
			})

			section.Descriptions = append(section.Descriptions, model.DescriptionSection{
				Description:       d.Description,
				DurationMS:        descTotal,
				PercentOfCustomer: pct,
				Rows:              rows,
			})
		}

		sections = append(sections, section)
	}
	return sections
}
