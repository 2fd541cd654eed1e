package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/thinktide/timeaccount/internal/model"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import time entries",
	Long: `Import time entries from a file or stdin.

Supported formats:
  json      JSON array of entries (the "report --format json" row shape)
  csv       CSV with header customer,description,timestamp,duration_ms,type

Examples:
  timeaccount import entries.json
  timeaccount import --format csv entries.csv
  cat entries.json | timeaccount import -`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var importFormat string
var importDryRun bool

func init() {
	importCmd.Flags().StringVarP(&importFormat, "format", "f", "json", "Import format (json, csv)")
	importCmd.Flags().BoolVarP(&importDryRun, "dry-run", "n", false, "Preview import without saving")
}

func runImport(cmd *cobra.Command, args []string) error {
	filename := args[0]

	var reader io.Reader
	if filename == "-" {
		reader = os.Stdin
	} else {
		file, err := os.Open(filename)
		if err != nil {
			return fmt.Errorf("failed to open file: %w", err)
		}
		defer file.Close()
		reader = file
	}

	var entries []model.TimeEntry
	var err error

	switch importFormat {
	case "json":
		entries, err = parseImportJSON(reader)
	case "csv":
		entries, err = parseImportCSV(reader)
	default:
		return fmt.Errorf("unknown format: %s", importFormat)
	}
	if err != nil {
		return err
	}

	var imported, skipped int
	for _, entry := range entries {
		entry.ID = "" // always mint fresh IDs

		if importDryRun {
			entry.Normalize()
			if err := entry.Validate(); err != nil {
				fmt.Fprintf(os.Stderr, "Skipping: %v\n", err)
				skipped++
				continue
			}
			imported++
			continue
		}

		if _, err := st.CreateEntry(entry); err != nil {
			fmt.Fprintf(os.Stderr, "Skipping: %v\n", err)
			skipped++
			continue
		}
		imported++
	}

	if importDryRun {
		fmt.Printf("Dry run: %d entries would be imported, %d skipped\n", imported, skipped)
		return nil
	}

	fmt.Printf("Imported %d entries, %d skipped\n", imported, skipped)
	return nil
}

func parseImportJSON(reader io.Reader) ([]model.TimeEntry, error) {
	var entries []model.TimeEntry
	if err := json.NewDecoder(reader).Decode(&entries); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return entries, nil
}

func parseImportCSV(reader io.Reader) ([]model.TimeEntry, error) {
	csvReader := csv.NewReader(reader)

	header, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	expected := []string{"customer", "description", "timestamp", "duration_ms", "type"}
	if len(header) != len(expected) {
		return nil, fmt.Errorf("invalid header: expected %v", expected)
	}

	var entries []model.TimeEntry
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		timestamp, err := time.Parse(time.RFC3339, record[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skipping: invalid timestamp %q: %v\n", record[2], err)
			continue
		}
		durationMS, err := strconv.ParseInt(record[3], 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skipping: invalid duration %q: %v\n", record[3], err)
			continue
		}

		entries = append(entries, model.TimeEntry{
			Customer:    record[0],
			Description: record[1],
			Timestamp:   timestamp,
			DurationMS:  durationMS,
			Type:        model.EntryType(record[4]),
		})
	}

	return entries, nil
}
