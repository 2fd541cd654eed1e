package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thinktide/timeaccount/internal/model"
)

func TestSumDurations(t *testing.T) {
	assert.Equal(t, int64(0), SumDurations(nil))
	assert.Equal(t, int64(0), SumDurations([]model.TimeEntry{}))

	entries := []model.TimeEntry{
		{ID: "1", DurationMS: 7200000},
		{ID: "2", DurationMS: 5400000},
		{ID: "3", DurationMS: 0},
	}
	assert.Equal(t, int64(12600000), SumDurations(entries))

	// Order-independent.
	reversed := []model.TimeEntry{entries[2], entries[1], entries[0]}
	assert.Equal(t, SumDurations(entries), SumDurations(reversed))
}

func TestGroupByCustomerFirstSeenOrder(t *testing.T) {
	ts := time.Now()
	entries := []model.TimeEntry{
		{ID: "1", Customer: "TechCorp", Description: "Maint", Timestamp: ts},
		{ID: "2", Customer: "Acme Inc.", Description: "Dev", Timestamp: ts},
		{ID: "3", Customer: "TechCorp", Description: "Deploy", Timestamp: ts},
		{ID: "4", Customer: "Acme Inc.", Description: "Dev", Timestamp: ts},
	}

	groups := GroupByCustomer(entries)
	require.Len(t, groups, 2)
	assert.Equal(t, "TechCorp", groups[0].Name, "first-seen order, not alphabetical")
	assert.Equal(t, "Acme Inc.", groups[1].Name)

	require.Len(t, groups[0].Descriptions, 2)
	assert.Equal(t, "Maint", groups[0].Descriptions[0].Description)
	assert.Equal(t, "Deploy", groups[0].Descriptions[1].Description)

	require.Len(t, groups[1].Descriptions, 1)
	assert.Len(t, groups[1].Descriptions[0].Entries, 2)
}

func TestGroupByCustomerUnassigned(t *testing.T) {
	entries := []model.TimeEntry{
		{ID: "1", Customer: "", Description: "Dev"},
		{ID: "2", Customer: model.UnassignedCustomer, Description: "Dev"},
	}

	groups := GroupByCustomer(entries)
	require.Len(t, groups, 1, "missing and sentinel customers merge into one group")
	assert.Equal(t, model.UnassignedCustomer, groups[0].Name)
	assert.Len(t, groups[0].Descriptions[0].Entries, 2)
}

// Grouping must be a lossless partition: flattening the groups back out
// reproduces the input multiset exactly.
func TestGroupByCustomerLossless(t *testing.T) {
	ts := time.Now()
	entries := []model.TimeEntry{
		{ID: "1", Customer: "A", Description: "x", Timestamp: ts},
		{ID: "2", Customer: "B", Description: "y", Timestamp: ts},
		{ID: "3", Customer: "A", Description: "x", Timestamp: ts},
		{ID: "4", Customer: "", Description: "z", Timestamp: ts},
		{ID: "5", Customer: "B", Description: "x", Timestamp: ts},
	}

	groups := GroupByCustomer(entries)

	seen := make(map[string]int)
	count := 0
	for _, g := range groups {
		for _, d := range g.Descriptions {
			for _, e := range d.Entries {
				seen[e.ID]++
				count++
			}
		}
	}

	assert.Equal(t, len(entries), count)
	for _, e := range entries {
		assert.Equal(t, 1, seen[e.ID], "entry %s must appear exactly once", e.ID)
	}
}

func TestCustomerGroupTotal(t *testing.T) {
	groups := GroupByCustomer([]model.TimeEntry{
		{ID: "1", Customer: "A", Description: "x", DurationMS: 1000},
		{ID: "2", Customer: "A", Description: "y", DurationMS: 2500},
	})
	require.Len(t, groups, 1)
	assert.Equal(t, int64(3500), groups[0].Total())
}
