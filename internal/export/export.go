// Package export hands rendered reports to the platform share
// collaborator: documents are written into the export directory and
// optionally opened in the default browser for printing or saving as
// PDF. Failures here are recoverable; the computed report is never
// lost and the export can be retried.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/browser"
)

// ErrShareUnavailable indicates that no browser or handler could open
// the document on this platform. The file itself was still written.
var ErrShareUnavailable = errors.New("sharing is not available on this platform")

// WriteReport writes the rendered document into dir under a
// timestamped filename and returns the full path.
func WriteReport(doc []byte, dir string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	name := fmt.Sprintf("time-report-%s.html", now.Format("2006-01-02T15-04-05"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// Open hands the written document to the platform browser. The caller
// keeps the path either way, so a failed open is reported and the user
// can retry without regenerating the report.
func Open(path string) error {
	if err := browser.OpenFile(path); err != nil {
		return fmt.Errorf("%w: %v", ErrShareUnavailable, err)
	}
	return nil
}
