package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/thinktide/timeaccount/internal/model"
	"github.com/thinktide/timeaccount/internal/report"
	"github.com/thinktide/timeaccount/internal/store"
	"github.com/thinktide/timeaccount/internal/timefmt"
)

var (
	logLimit    int
	logRange    string
	logCustomer string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show time entries",
	Long: `Show time entries, newest first, optionally filtered by date range and customer.

Examples:
  timeaccount log                          # Last 10 entries
  timeaccount log --limit 20               # Last 20 entries
  timeaccount log --range week             # Past week only
  timeaccount log --customer "Acme Corp"   # One customer only`,
	RunE: runLog,
}

func init() {
	logCmd.Flags().IntVarP(&logLimit, "limit", "n", 10, "Number of entries to show")
	logCmd.Flags().StringVarP(&logRange, "range", "r", "all", "Date range: all, week, month")
	logCmd.Flags().StringVarP(&logCustomer, "customer", "c", "", "Filter by customer name")
}

func runLog(cmd *cobra.Command, args []string) error {
	dateRange, err := report.ParseRange(logRange)
	if err != nil {
		return err
	}

	filter := store.EntryFilter{
		Customer: logCustomer,
		Limit:    logLimit,
	}
	if dateRange != report.RangeAll {
		from := report.RangeStart(dateRange, time.Now())
		filter.From = &from
	}

	entries := loadEntries(filter)
	if len(entries) == 0 {
		fmt.Println("No entries found")
		return nil
	}

	printEntriesTable(entries)
	return nil
}

func printEntriesTable(entries []model.TimeEntry) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Description", "Customer", "Duration", "Type", "Date"})
	table.SetBorder(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, e := range entries {
		description := e.Description
		if len(description) > 30 {
			description = description[:27] + "..."
		}

		table.Append([]string{
			e.ID,
			description,
			e.Customer,
			timefmt.Duration(e.DurationMS),
			e.Type.Label(),
			e.Timestamp.Local().Format("2006-01-02 15:04"),
		})
	}

	table.Render()
}
