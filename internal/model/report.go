package model

import "time"

// Report is the fully-computed, presentation-agnostic structure
// consumed by the renderer. It is derived per export and never
// persisted.
type Report struct {
	DateRangeLabel    string          `json:"date_range_label"`
	GeneratedAt       time.Time       `json:"generated_at"`
	TotalDurationMS   int64           `json:"total_duration_ms"`
	CustomerBreakdown []BreakdownItem `json:"customer_breakdown"`
	Sections          []ReportSection `json:"sections"`
}

// BreakdownItem is one customer's share of the total tracked time.
// Percentage is rounded to one decimal place for display. Color is a
// hex token assigned deterministically by breakdown rank so repeated
// exports of the same data render identically.
type BreakdownItem struct {
	CustomerName string  `json:"customer_name"`
	DurationMS   int64   `json:"duration_ms"`
	Percentage   float64 `json:"percentage"`
	Color        string  `json:"color"`
}

// ReportSection is the report block for one customer, containing one
// sub-block per description.
type ReportSection struct {
	CustomerName string               `json:"customer_name"`
	DurationMS   int64                `json:"duration_ms"`
	Color        string               `json:"color"`
	Descriptions []DescriptionSection `json:"descriptions"`
}

// DescriptionSection groups the rows that share a description within a
// customer section. PercentOfCustomer is the description's share of
// the customer total, rounded to one decimal place.
type DescriptionSection struct {
	Description       string      `json:"description"`
	DurationMS        int64       `json:"duration_ms"`
	PercentOfCustomer float64     `json:"percent_of_customer"`
	Rows              []ReportRow `json:"rows"`
}

// ReportRow is one table row in a description sub-block. Rows are
// sorted newest-first by timestamp.
type ReportRow struct {
	Timestamp  time.Time `json:"timestamp"`
	DurationMS int64     `json:"duration_ms"`
	Type       EntryType `json:"type"`
}
