package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/spf13/cobra"

	"github.com/thinktide/timeaccount/internal/model"
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a time entry",
	Long: `Edit a time entry in your editor. Without an ID, edits the most recent entry.

Examples:
  timeaccount edit                           # Edit most recent entry
  timeaccount edit 01ABC123DEF456GHI789JKL0  # Edit specific entry

Opens the entry as JSON in $EDITOR (defaults to vim).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

// editableEntry is the JSON structure for editing
type editableEntry struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Customer    string `json:"customer"`
	DurationMS  int64  `json:"duration_ms"`
	Timestamp   string `json:"timestamp"`
	Type        string `json:"type"`
}

func runEdit(cmd *cobra.Command, args []string) error {
	var entry *model.TimeEntry
	var err error

	if len(args) == 0 {
		entry, err = st.GetLastEntry()
		if err != nil {
			return fmt.Errorf("failed to get last entry: %w", err)
		}
		if entry == nil {
			fmt.Println("No entries to edit")
			return nil
		}
	} else {
		entry, err = st.GetEntry(args[0])
		if err != nil {
			return fmt.Errorf("failed to get entry: %w", err)
		}
		if entry == nil {
			return fmt.Errorf("entry not found: %s", args[0])
		}
	}

	editable := editableEntry{
		ID:          entry.ID,
		Description: entry.Description,
		Customer:    entry.Customer,
		DurationMS:  entry.DurationMS,
		Timestamp:   entry.Timestamp.Local().Format("2006-01-02 15:04:05"),
		Type:        string(entry.Type),
	}

	// Write to temp file
	tmpfile, err := os.CreateTemp("", "timeaccount-edit-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	encoder := json.NewEncoder(tmpfile)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(editable); err != nil {
		tmpfile.Close()
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	tmpfile.Close()

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vim"
	}

	editorCmd := exec.Command(editor, tmpPath)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}

	// Read back
	data, err := os.ReadFile(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to read temp file: %w", err)
	}

	var updated editableEntry
	if err := json.Unmarshal(data, &updated); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	timestamp, err := time.ParseInLocation("2006-01-02 15:04:05", updated.Timestamp, time.Local)
	if err != nil {
		return fmt.Errorf("invalid timestamp format (use YYYY-MM-DD HH:MM:SS): %w", err)
	}

	changed := model.TimeEntry{
		ID:          entry.ID,
		Description: updated.Description,
		Customer:    updated.Customer,
		DurationMS:  updated.DurationMS,
		Timestamp:   timestamp,
		Type:        model.EntryType(updated.Type),
	}

	if err := st.UpdateEntry(changed); err != nil {
		return fmt.Errorf("failed to update entry: %w", err)
	}

	fmt.Println("Entry updated successfully")
	return nil
}
