// Package timefmt formats millisecond durations for display. All
// functions are pure and total: negative input is out of contract and
// is clamped to zero rather than rejected.
package timefmt

import "fmt"

// Duration formats milliseconds as "{H}h {M}m", truncating to whole
// minutes.
func Duration(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	totalSeconds := ms / 1000
	h := totalSeconds / 3600
	m := (totalSeconds % 3600) / 60
	return fmt.Sprintf("%dh %dm", h, m)
}

// Clock formats milliseconds as zero-padded HH:MM:SS. Used for the
// live stopwatch display, not the report.
func Clock(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	totalSeconds := ms / 1000
	h := totalSeconds / 3600
	m := (totalSeconds % 3600) / 60
	s := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
