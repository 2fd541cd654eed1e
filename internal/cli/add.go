package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/thinktide/timeaccount/internal/model"
	"github.com/thinktide/timeaccount/internal/timefmt"
)

var (
	addHours    int
	addMinutes  int
	addCustomer string
)

var addCmd = &cobra.Command{
	Use:   "add [description]",
	Short: "Add a manual time entry",
	Long: `Add a time entry by hand as hours and minutes.

Examples:
  timeaccount add Code review --minutes 45
  timeaccount add Planning --hours 2 --minutes 30 --customer "Acme Corp"`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().IntVar(&addHours, "hours", 0, "Hours worked")
	addCmd.Flags().IntVarP(&addMinutes, "minutes", "m", 0, "Minutes worked")
	addCmd.Flags().StringVarP(&addCustomer, "customer", "c", "", "Customer to assign the entry to")
}

func runAdd(cmd *cobra.Command, args []string) error {
	if addHours < 0 || addMinutes < 0 {
		return fmt.Errorf("hours and minutes must not be negative")
	}

	durationMS := int64(addHours)*3600_000 + int64(addMinutes)*60_000
	if durationMS <= 0 {
		return fmt.Errorf("duration is required (use --hours and/or --minutes)")
	}

	entry := model.TimeEntry{
		Description: strings.TrimSpace(strings.Join(args, " ")),
		Customer:    addCustomer,
		DurationMS:  durationMS,
		Timestamp:   time.Now(),
		Type:        model.TypeManual,
	}

	created, err := st.CreateEntry(entry)
	if err != nil {
		return fmt.Errorf("failed to create entry: %w", err)
	}

	fmt.Printf("Added entry: %s", created.Description)
	if created.Customer != model.UnassignedCustomer {
		fmt.Printf(" (%s)", created.Customer)
	}
	fmt.Printf(" [%s]\n", timefmt.Duration(created.DurationMS))

	return nil
}
