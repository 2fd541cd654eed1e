package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thinktide/timeaccount/internal/model"
	"github.com/thinktide/timeaccount/internal/timefmt"
)

// deleteForce specifies whether the delete operation should skip the user confirmation prompt.
var deleteForce bool

// deleteCmd represents the command to delete a time entry.
//
// Deletes a specific time entry when provided with an ID. Without an ID, it deletes the most recent entry.
//
// The command performs a confirmation prompt before deletion unless the --force flag is used to bypass it.
//
// Error cases include:
//   - Failure to retrieve the last entry when no ID is provided.
//   - Attempting to delete an entry that does not exist or cannot be found.
//   - Errors during the deletion process in the database.
var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a time entry",
	Long: `Delete a time entry. Without an ID, deletes the most recent entry.

Examples:
  timeaccount delete                              # Delete most recent entry
  timeaccount delete 01ABC123DEF456GHI789JKL0     # Delete specific entry
  timeaccount delete --force                      # Skip confirmation`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	var entry *model.TimeEntry
	var err error

	if len(args) == 0 {
		entry, err = st.GetLastEntry()
		if err != nil {
			return fmt.Errorf("failed to get last entry: %w", err)
		}
		if entry == nil {
			fmt.Println("No entries to delete")
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

	// Show entry details
	fmt.Printf("Entry: %s\n", entry.ID)
	fmt.Printf("  Description: %s\n", entry.Description)
	fmt.Printf("  Customer:    %s\n", entry.Customer)
	fmt.Printf("  Date:        %s\n", entry.Timestamp.Local().Format("2006-01-02 15:04"))
	fmt.Printf("  Duration:    %s\n", timefmt.Duration(entry.DurationMS))
	fmt.Println()

	// Confirm deletion unless --force
	if !deleteForce {
		reader := bufio.NewReader(os.Stdin)
		fmt.Print("Delete this entry? [y/N]: ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		input = strings.TrimSpace(strings.ToLower(input))
		if input != "y" && input != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := st.DeleteEntry(entry.ID); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	fmt.Println("Entry deleted")
	return nil
}
