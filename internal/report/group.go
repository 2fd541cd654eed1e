package report

import "github.com/thinktide/timeaccount/internal/model"

// CustomerGroup holds one customer's entries partitioned by
// description. Groups preserve first-seen order of keys so repeated
// runs over the same input produce the same layout.
type CustomerGroup struct {
	Name         string
	Descriptions []DescriptionGroup
}

// DescriptionGroup holds the entries sharing one description within a
// customer group, in input order.
type DescriptionGroup struct {
	Description string
	Entries     []model.TimeEntry
}

// Total sums the group's entry durations in milliseconds.
func (g *CustomerGroup) Total() int64 {
	var total int64
	for _, d := range g.Descriptions {
		total += SumDurations(d.Entries)
	}
	return total
}

// GroupByCustomer partitions entries into customer groups and each
// group into description groups. The partition is lossless: every
// input entry appears in exactly one description group. Entries with
// no customer fall into a single [model.UnassignedCustomer] group.
func GroupByCustomer(entries []model.TimeEntry) []CustomerGroup {
	var groups []CustomerGroup
	index := make(map[string]int)

	for _, e := range entries {
		name := e.Customer
		if name == "" {
			name = model.UnassignedCustomer
		}

		gi, ok := index[name]
		if !ok {
			gi = len(groups)
			index[name] = gi
			groups = append(groups, CustomerGroup{Name: name})
		}

		g := &groups[gi]
		di := -1
		for i := range g.Descriptions {
			if g.Descriptions[i].Description == e.Description {
				di = i
				break
			}
		}
		if di < 0 {
			g.Descriptions = append(g.Descriptions, DescriptionGroup{Description: e.Description})
			di = len(g.Descriptions) - 1
		}
		g.Descriptions[di].Entries = append(g.Descriptions[di].Entries, e)
	}

	return groups
}

// SumDurations returns the total duration of the entries in
// milliseconds. The sum of an empty list is 0.
func SumDurations(entries []model.TimeEntry) int64 {
	var total int64
	for _, e := range entries {
		total += e.DurationMS
	}
	return total
}
