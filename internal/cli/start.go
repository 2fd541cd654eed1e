package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// startCustomer holds the optional customer name the stopwatch entry will be
// assigned to when it is stopped.
var startCustomer string

// startCmd initializes the "start" command for starting the stopwatch.
//
// This command begins a live timing session with an optional description and
// customer. There is no entry row yet: the stopwatch state is persisted on its
// own, and a time entry is only created once the session is stopped.
//
//   - args: the remaining positional arguments joined into a description.
//   - --customer: the customer the eventual entry is assigned to. Entries
//     without one fall back to the unassigned bucket at report time.
//
// The command ensures that only one stopwatch can run at a time: if one is
// already running, its status is printed and no new session starts.
//
// Returns an error if the stopwatch state cannot be read or persisted.
var startCmd = &cobra.Command{
	Use:   "start [description]",
	Short: "Start the stopwatch",
	Long: `Start the stopwatch for a new timing session.

Examples:
  timeaccount start
  timeaccount start Writing project proposal
  timeaccount start Sprint review --customer "Acme Corp"`,
	RunE: runStart,
}

func init() {
	startCmd.Flags().StringVarP(&startCustomer, "customer", "c", "", "Customer to assign the entry to")
}

// runStart starts a new stopwatch session unless one is already running.
//
// If a session is in progress its status is printed and the command exits
// cleanly; starting is never destructive. Otherwise the description is
// assembled from the positional arguments, the stopwatch row is persisted
// with the current wall-clock time, and a confirmation is printed.
//
// - cmd: the current [cobra.Command] being executed.
// - args: positional arguments joined into the session description.
//
// Returns an error if reading or writing the stopwatch state fails.
func runStart(cmd *cobra.Command, args []string) error {
	timer, err := st.GetTimer()
	if err != nil {
		return fmt.Errorf("failed to check running timer: %w", err)
	}
	if timer != nil {
		fmt.Println("Timer already running:")
		printTimerStatus(timer)
		return nil
	}

	description := strings.TrimSpace(strings.Join(args, " "))

	if err := st.StartTimer(description, startCustomer, time.Now()); err != nil {
		return fmt.Errorf("failed to start timer: %w", err)
	}

	fmt.Print("Started timer")
	if description != "" {
		fmt.Printf(": %s", description)
	}
	if startCustomer != "" {
		fmt.Printf(" (%s)", startCustomer)
	}
	fmt.Println()

	return nil
}
