package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"clocksheet/config"
	"clocksheet/output"
	"clocksheet/timesheet"
)

var (
	previewSheetURL  string
	previewSheetFile string
	previewMonth     string
	previewOutput    string
	previewTimeout   time.Duration
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Fetch the sheet and show the entries that submit would create",
	Long: `Fetch and parse the monthly attendance sheet, assemble the time entries,
and print them with a per-day hour summary. Nothing is sent to Clockify.

Use --output to additionally export the entries to a CSV or Excel file.`,
	Example: `
  # Preview the configured sheet for the current month
  clocksheet preview

  # Preview a local CSV for March 2024
  clocksheet preview --sheet-file ./march.csv --month 2024-03

  # Preview and export
  clocksheet preview --month 2024-03 --output ./march-entries.csv
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		month, err := parseMonth(previewMonth)
		if err != nil {
			return err
		}

		source, err := resolveSource(cfg, previewSheetURL, previewSheetFile, previewTimeout)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), previewTimeout)
		defer cancel()

		rows, err := source.Rows(ctx)
		if err != nil {
			return err
		}

		entries, err := timesheet.Assemble(rows, month)
		if err != nil {
			return err
		}

		printEntries(entries)

		if len(entries) > 0 && strings.TrimSpace(previewOutput) != "" {
			writer, err := output.WriterForPath(previewOutput)
			if err != nil {
				return err
			}
			if err := writer.Write(previewOutput, entries); err != nil {
				return err
			}
			fmt.Printf("Exported %d entries to %s\n", len(entries), previewOutput)
		}

		return nil
	},
}

func printEntries(entries []timesheet.Entry) {
	if len(entries) == 0 {
		fmt.Println("No entries assembled from the sheet.")
		return
	}

	fmt.Printf("%-12s %-7s %-7s %s\n", "Date", "Start", "End", "Description")
	for _, entry := range entries {
		fmt.Printf(
			"%-12s %-7s %-7s %s\n",
			entry.Start.Format("2006-01-02"),
			entry.Start.Format("15:04"),
			entry.End.Format("15:04"),
			entry.Description,
		)
	}

	summary := output.BuildMonthSummary(entries)
	fmt.Println()
	for _, day := range summary.Days {
		fmt.Printf("%s: %.2f h (%d entries)\n", day.Date.Format("2006-01-02"), day.WorkedHours, day.EntryCount)
	}
	fmt.Printf("Total: %.2f h across %d entries\n", summary.TotalHours, len(entries))
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVar(&previewSheetURL, "sheet-url", "", "CSV export URL of the attendance sheet (overrides config)")
	previewCmd.Flags().StringVar(&previewSheetFile, "sheet-file", "", "Local CSV file (overrides --sheet-url and config)")
	previewCmd.Flags().StringVar(&previewMonth, "month", "", "Target month, format YYYY-MM (default: current month)")
	previewCmd.Flags().StringVar(&previewOutput, "output", "", "Also export entries to this .csv or .xlsx file")
	previewCmd.Flags().DurationVar(&previewTimeout, "timeout", 30*time.Second, "Timeout for fetching the sheet")
}
