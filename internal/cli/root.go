package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/thinktide/timeaccount/internal/model"
	"github.com/thinktide/timeaccount/internal/store"
)

var Version = "dev"

// staleTimerThreshold is how long a stopwatch may run before the CLI
// starts warning that it was probably left behind.
const staleTimerThreshold = 24 * time.Hour

var (
	st  *store.Store
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "timeaccount",
	Short: "A CLI time tracking utility with customer reports",
	Long: `Timeaccount is a command-line time tracking utility. Track time with a
stopwatch or manual entries, organize it by customer, and export styled
HTML reports ready to print or share as PDF.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store init for version command
		if cmd.Name() == "version" {
			return nil
		}

		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			With().Timestamp().Logger()

		dbPath, err := store.DefaultDBPath()
		if err != nil {
			return fmt.Errorf("resolve data directory: %w", err)
		}
		st, err = store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}

		warnStaleTimer()
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if st != nil {
			st.Close()
		}
	},
}

// warnStaleTimer flags a stopwatch that has been running for an
// implausibly long time, e.g. across a forgotten overnight session.
func warnStaleTimer() {
	timer, err := st.GetTimer()
	if err != nil || timer == nil {
		return
	}
	if elapsed := time.Since(timer.StartedAt); elapsed > staleTimerThreshold {
		log.Warn().
			Str("started", timer.StartedAt.Local().Format("2006-01-02 15:04")).
			Msgf("timer has been running for %s, did you forget to stop it?", elapsed.Round(time.Minute))
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(customerCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("timeaccount %s\n", Version)
	},
}

// loadEntries lists entries for the read-only commands. A failed load
// is logged and degrades to an empty list; it never takes the command
// down.
func loadEntries(f store.EntryFilter) []model.TimeEntry {
	entries, err := st.ListEntries(f)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load entries, continuing with empty list")
		return nil
	}
	return entries
}
