package report

import (
	"fmt"
	"time"

	"github.com/thinktide/timeaccount/internal/model"
)

// DateRange selects the filter window applied to entries before a
// report is built. The same window definition drives both the entry
// list shown to the user and the report's date range label.
type DateRange string

const (
	RangeAll   DateRange = "all"
	RangeWeek  DateRange = "week"
	RangeMonth DateRange = "month"
)

var AllRanges = []DateRange{RangeAll, RangeWeek, RangeMonth}

// ParseRange validates a user-supplied range name.
func ParseRange(s string) (DateRange, error) {
	for _, r := range AllRanges {
		if DateRange(s) == r {
			return r, nil
		}
	}
	return "", fmt.Errorf("invalid range: %s (valid: %v)", s, AllRanges)
}

// RangeStart returns the inclusive lower bound of the window ending at
// now. RangeWeek is seven days back; RangeMonth rolls the calendar
// back one month rather than subtracting a fixed 30 days, which
// changes boundary results near month-end. RangeAll has no bound and
// returns the zero time.
func RangeStart(r DateRange, now time.Time) time.Time {
	switch r {
	case RangeWeek:
		return now.AddDate(0, 0, -7)
	case RangeMonth:
		return now.AddDate(0, -1, 0)
	default:
		return time.Time{}
	}
}

// RangeLabel returns the human description of the filter window, e.g.
// "Past Week (Aug 24 - Aug 31, 2026)".
func RangeLabel(r DateRange, now time.Time) string {
	switch r {
	case RangeWeek:
		start := RangeStart(r, now)
		return fmt.Sprintf("Past Week (%s - %s)", start.Format("Jan 2"), now.Format("Jan 2, 2006"))
	case RangeMonth:
		start := RangeStart(r, now)
		return fmt.Sprintf("Past Month (%s - %s)", start.Format("Jan 2"), now.Format("Jan 2, 2006"))
	default:
		return "All Time"
	}
}

// FilterByDateRange keeps entries whose timestamp falls in
// [RangeStart, now]. RangeAll is the identity and returns the input
// unchanged.
func FilterByDateRange(entries []model.TimeEntry, r DateRange, now time.Time) []model.TimeEntry {
	if r == RangeAll || r == "" {
		return entries
	}
	start := RangeStart(r, now)
	var out []model.TimeEntry
	for _, e := range entries {
		if !e.Timestamp.Before(start) && !e.Timestamp.After(now) {
			out = append(out, e)
		}
	}
	return out
}

// FilterByCustomer keeps entries whose customer equals the filter
// exactly (case-sensitive). An empty filter is the identity.
func FilterByCustomer(entries []model.TimeEntry, customer string) []model.TimeEntry {
	if customer == "" {
		return entries
	}
	var out []model.TimeEntry
	for _, e := range entries {
		if e.Customer == customer {
			out = append(out, e)
		}
	}
	return out
}

// Selection is the set of entry ids chosen for export. Only ids mapped
// to true are members, matching the checkbox semantics of the entry
// picker: toggling an entry off leaves a false value behind.
//
// Selection state survives date filter changes. Changing the customer
// filter clears it; the engine itself is stateless, so Reset exists
// for the caller to honor that contract.
type Selection map[string]bool

func NewSelection(ids ...string) Selection {
	s := make(Selection, len(ids))
	for _, id := range ids {
		s[id] = true
	}
	return s
}

// SelectAll marks every given entry as selected.
func (s Selection) SelectAll(entries []model.TimeEntry) {
	for _, e := range entries {
		s[e.ID] = true
	}
}

func (s Selection) Select(id string)   { s[id] = true }
func (s Selection) Deselect(id string) { s[id] = false }

func (s Selection) IsSelected(id string) bool { return s[id] }

// Len counts selected ids, ignoring false entries.
func (s Selection) Len() int {
	n := 0
	for _, v := range s {
		if v {
			n++
		}
	}
	return n
}

// Reset clears all selection state.
func (s Selection) Reset() {
	for id := range s {
		delete(s, id)
	}
}

// SelectSubset keeps entries whose id is a member of the selection.
func SelectSubset(entries []model.TimeEntry, sel Selection) []model.TimeEntry {
	var out []model.TimeEntry
	for _, e := range entries {
		if sel.IsSelected(e.ID) {
			out = append(out, e)
		}
	}
	return out
}
