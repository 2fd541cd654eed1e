package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/thinktide/timeaccount/internal/model"
	"github.com/thinktide/timeaccount/internal/timefmt"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the stopwatch and record an entry",
	RunE:  runStop,
}

func runStop(cmd *cobra.Command, args []string) error {
	timer, err := st.GetTimer()
	if err != nil {
		return fmt.Errorf("failed to get running timer: %w", err)
	}
	if timer == nil {
		fmt.Println("No timer running")
		return nil
	}

	now := time.Now()
	entry := model.TimeEntry{
		Description: timer.Description,
		Customer:    timer.Customer,
		DurationMS:  timer.ElapsedMS(now),
		Timestamp:   timer.StartedAt,
		Type:        model.TypeAutomatic,
	}

	created, err := st.CreateEntry(entry)
	if err != nil {
		return fmt.Errorf("failed to record entry: %w", err)
	}
	if err := st.ClearTimer(); err != nil {
		return fmt.Errorf("failed to clear timer: %w", err)
	}

	fmt.Printf("Stopped timer: %s", created.Description)
	if created.Customer != model.UnassignedCustomer {
		fmt.Printf(" (%s)", created.Customer)
	}
	fmt.Printf(" [%s]\n", timefmt.Duration(created.DurationMS))

	return nil
}
