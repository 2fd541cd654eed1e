package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/thinktide/timeaccount/internal/config"
	"github.com/thinktide/timeaccount/internal/export"
	"github.com/thinktide/timeaccount/internal/render"
	"github.com/thinktide/timeaccount/internal/report"
	"github.com/thinktide/timeaccount/internal/store"
)

var (
	exportRange    string
	exportCustomer string
	exportSelect   []string
	exportAll      bool
	exportOut      string
	exportOpen     bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export an HTML report",
	Long: `Export a styled, self-contained HTML report ready to print or save as PDF.

By default every entry in the chosen range is included; --select narrows the
export to specific entry IDs.

Examples:
  timeaccount export                          # All time, all entries
  timeaccount export --range month            # Past month
  timeaccount export --select 01ABC,01DEF     # Only the listed entries
  timeaccount export --open                   # Open in the browser afterwards`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportRange, "range", "r", "all", "Date range: all, week, month")
	exportCmd.Flags().StringVarP(&exportCustomer, "customer", "c", "", "Filter by customer name")
	exportCmd.Flags().StringSliceVar(&exportSelect, "select", nil, "Entry IDs to include (default: all)")
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "Include every entry in the range, overriding --select")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output directory (default: configured export directory)")
	exportCmd.Flags().BoolVar(&exportOpen, "open", false, "Open the report in the browser after writing")
}

func runExport(cmd *cobra.Command, args []string) error {
	dateRange, err := report.ParseRange(exportRange)
	if err != nil {
		return err
	}

	entries := loadEntries(store.EntryFilter{})

	sel := report.NewSelection()
	if exportAll || len(exportSelect) == 0 {
		sel.SelectAll(entries)
	} else {
		for _, id := range exportSelect {
			sel.Select(id)
		}
	}

	now := time.Now()
	rpt, err := report.Build(entries, sel, dateRange, exportCustomer, now)
	if err != nil {
		if errors.Is(err, report.ErrEmptySelection) {
			fmt.Println("No entries selected, nothing to export")
			return nil
		}
		return fmt.Errorf("failed to build report: %w", err)
	}

	logo, err := config.Get(st, config.KeyReportLogo)
	if err != nil {
		return err
	}

	doc, err := render.HTML(rpt, logo)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	dir := exportOut
	if dir == "" {
		dir, err = config.Get(st, config.KeyExportDirectory)
		if err != nil {
			return err
		}
	}
	dir = config.ExpandPath(dir)

	path, err := export.WriteReport(doc, dir, now)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	fmt.Printf("Report written to %s\n", path)

	if exportOpen {
		// The file is already on disk; a missing browser only costs
		// the convenience of opening it.
		if err := export.Open(path); err != nil {
			log.Warn().Err(err).Msg("could not open report in browser")
		}
	}

	return nil
}
