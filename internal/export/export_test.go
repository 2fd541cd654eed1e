package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 8, 31, 14, 30, 5, 0, time.UTC)

	path, err := WriteReport([]byte("<html>report</html>"), dir, now)
	if err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	if filepath.Base(path) != "time-report-2026-08-31T14-30-05.html" {
		t.Fatalf("unexpected filename: %s", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "<html>report</html>" {
		t.Fatalf("unexpected content: %q", data)
	}
}

func TestWriteReportCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "exports")
	_, err := WriteReport([]byte("x"), dir, time.Now())
	if err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("export directory not created: %v", err)
	}
}

func TestWriteReportBadDir(t *testing.T) {
	// A file where the directory should be.
	base := t.TempDir()
	blocker := filepath.Join(base, "blocked")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := WriteReport([]byte("x"), filepath.Join(blocker, "sub"), time.Now())
	if err == nil {
		t.Fatal("expected error writing under a file")
	}
	if !strings.Contains(err.Error(), "export directory") {
		t.Fatalf("unexpected error: %v", err)
	}
}
