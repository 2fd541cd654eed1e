package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/thinktide/timeaccount/internal/store"
	"github.com/thinktide/timeaccount/internal/timefmt"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current stopwatch status",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	timer, err := st.GetTimer()
	if err != nil {
		return fmt.Errorf("failed to get running timer: %w", err)
	}
	if timer == nil {
		fmt.Println("No timer running")
		return nil
	}

	printTimerStatus(timer)
	return nil
}

func printTimerStatus(timer *store.RunningTimer) {
	fmt.Print("[Running]")
	if timer.Description != "" {
		fmt.Printf(" %s", timer.Description)
	}
	if timer.Customer != "" {
		fmt.Printf(" (%s)", timer.Customer)
	}
	fmt.Println()
	fmt.Printf("  Started: %s\n", timer.StartedAt.Local().Format("15:04:05"))
	fmt.Printf("  Elapsed: %s\n", timefmt.Clock(timer.ElapsedMS(time.Now())))
}
