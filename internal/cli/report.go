package cli

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/thinktide/timeaccount/internal/config"
	"github.com/thinktide/timeaccount/internal/model"
	"github.com/thinktide/timeaccount/internal/report"
	"github.com/thinktide/timeaccount/internal/store"
	"github.com/thinktide/timeaccount/internal/timefmt"
)

var (
	reportRange    string
	reportCustomer string
	reportFormat   string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a customer time report",
	Long: `Generate a time report grouped by customer and description.

Examples:
  timeaccount report                          # All time, table output
  timeaccount report --range week             # Past week
  timeaccount report --customer "Acme Corp"   # One customer only
  timeaccount report --format json            # Output as JSON`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportRange, "range", "r", "all", "Date range: all, week, month")
	reportCmd.Flags().StringVarP(&reportCustomer, "customer", "c", "", "Filter by customer name")
	reportCmd.Flags().StringVar(&reportFormat, "format", "", "Output format: table, json, csv")
}

func runReport(cmd *cobra.Command, args []string) error {
	// Get default format from config
	if reportFormat == "" {
		format, err := config.Get(st, config.KeyOutputFormat)
		if err != nil {
			return err
		}
		reportFormat = format
	}

	dateRange, err := report.ParseRange(reportRange)
	if err != nil {
		return err
	}

	entries := loadEntries(store.EntryFilter{})

	sel := report.NewSelection()
	sel.SelectAll(entries)

	rpt, err := report.Build(entries, sel, dateRange, reportCustomer, time.Now())
	if err != nil {
		if errors.Is(err, report.ErrEmptySelection) {
			fmt.Println("No entries in the selected range")
			return nil
		}
		return fmt.Errorf("failed to build report: %w", err)
	}

	switch reportFormat {
	case "json":
		return outputJSON(rpt)
	case "csv":
		return outputCSV(rpt)
	default:
		return outputTable(rpt)
	}
}

func outputTable(rpt *model.Report) error {
	fmt.Printf("\nReport: %s\n", rpt.DateRangeLabel)
	fmt.Printf("Total: %s\n\n", timefmt.Duration(rpt.TotalDurationMS))

	if len(rpt.CustomerBreakdown) > 0 {
		fmt.Println("By Customer:")
		table := tablewriter.NewWriter(os.Stdout)
		table.SetBorder(false)
		table.SetHeaderLine(false)
		table.SetColumnSeparator("")
		table.SetTablePadding("  ")

		for _, item := range rpt.CustomerBreakdown {
			table.Append([]string{
				"  " + item.CustomerName,
				timefmt.Duration(item.DurationMS),
				fmt.Sprintf("%.1f%%", item.Percentage),
			})
		}
		table.Render()
		fmt.Println()
	}

	for _, section := range rpt.Sections {
		fmt.Printf("%s (%s):\n", section.CustomerName, timefmt.Duration(section.DurationMS))

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Description", "Date", "Start", "Duration", "Type"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetCenterSeparator("")
		table.SetColumnSeparator("")
		table.SetRowSeparator("")
		table.SetHeaderLine(false)
		table.SetTablePadding("  ")
		table.SetNoWhiteSpace(true)

		for _, desc := range section.Descriptions {
			for _, row := range desc.Rows {
				table.Append([]string{
					desc.Description,
					row.Timestamp.Local().Format("2006-01-02"),
					row.Timestamp.Local().Format("15:04"),
					timefmt.Duration(row.DurationMS),
					row.Type.Label(),
				})
			}
		}

		table.Render()
		fmt.Println()
	}

	return nil
}

func outputJSON(rpt *model.Report) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rpt)
}

func outputCSV(rpt *model.Report) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"customer", "description", "timestamp", "duration_ms", "type"}); err != nil {
		return err
	}

	for _, section := range rpt.Sections {
		for _, desc := range section.Descriptions {
			for _, row := range desc.Rows {
				record := []string{
					section.CustomerName,
					desc.Description,
					row.Timestamp.Format(time.RFC3339),
					strconv.FormatInt(row.DurationMS, 10),
					string(row.Type),
				}
				if err := w.Write(record); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
