package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"clocksheet/clockify"
	"clocksheet/config"
	"clocksheet/submitter"
	"clocksheet/timesheet"
)

var (
	submitSheetURL  string
	submitSheetFile string
	submitMonth     string
	submitProject   string
	submitTask      string
	submitAPIKey    string
	submitTimeout   time.Duration
	submitDryRun    bool
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Assemble the monthly sheet and create the time entries in Clockify",
	Long: `Fetch the attendance sheet, assemble the month's time entries, resolve the
workspace, project, and task, and create one Clockify time entry per assembled
entry.

Entries are created strictly one at a time, in sheet order: the next create
request is only issued after the previous one succeeded. There is no retry
and no rollback - if a request fails, the earlier entries already exist in
Clockify and the remaining ones were never sent. The failure message states
how many entries were created before the error.

In --dry-run mode everything up to and including project/task resolution runs,
but no entry is created.`,
	Example: `
  # Submit the configured sheet for March 2024
  clocksheet submit --month 2024-03 --project "Survey 2024" --task "Fieldwork"

  # Validate without writing
  clocksheet submit --month 2024-03 --project "Survey 2024" --task "Fieldwork" --dry-run

  # Submit a local CSV with an explicit API key
  clocksheet submit --sheet-file ./march.csv --month 2024-03 --project p1 --task t1 --api-key <key>
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		month, err := parseMonth(submitMonth)
		if err != nil {
			return err
		}

		source, err := resolveSource(cfg, submitSheetURL, submitSheetFile, submitTimeout)
		if err != nil {
			return err
		}

		client, err := buildClient(cfg, submitAPIKey, submitTimeout)
		if err != nil {
			return err
		}

		fetchCtx, cancelFetch := context.WithTimeout(context.Background(), submitTimeout)
		defer cancelFetch()
		rows, err := source.Rows(fetchCtx)
		if err != nil {
			return err
		}

		entries, err := timesheet.Assemble(rows, month)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return errors.New("no entries assembled from the sheet; nothing to submit")
		}

		lookupCtx, cancelLookup := context.WithTimeout(context.Background(), submitTimeout)
		defer cancelLookup()

		user, err := client.GetCurrentUser(lookupCtx)
		if err != nil {
			return err
		}
		workspaceID, err := user.ActiveWorkspaceID()
		if err != nil {
			return err
		}

		projects, err := client.ListProjects(lookupCtx, workspaceID)
		if err != nil {
			return err
		}
		project, err := clockify.ResolveProject(projects, submitProject)
		if err != nil {
			return err
		}

		tasks, err := client.ListTasks(lookupCtx, workspaceID, project.ID)
		if err != nil {
			return err
		}
		task, err := clockify.ResolveTask(tasks, submitTask)
		if err != nil {
			return err
		}

		fmt.Printf(
			"Submitting %d entries for %04d-%02d to project %q, task %q (workspace %s)\n",
			len(entries),
			month.Year,
			month.Month,
			project.Name,
			task.Name,
			workspaceID,
		)

		if submitDryRun {
			printEntries(entries)
			fmt.Println("Dry-run: no entries were created.")
			return nil
		}

		result, err := submitter.Run(context.Background(), client, entries, submitter.SubmissionContext{
			WorkspaceID: workspaceID,
			ProjectID:   project.ID,
			TaskID:      task.ID,
		})
		if err != nil {
			var submitErr *submitter.SubmitError
			if errors.As(err, &submitErr) {
				fmt.Printf(
					"Submit failed after %d of %d entries; the created entries remain in Clockify.\n",
					submitErr.Submitted,
					len(entries),
				)
			}
			return err
		}

		fmt.Printf("Submit completed. Entries created: %d\n", result.Submitted)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(submitCmd)

	submitCmd.Flags().StringVar(&submitSheetURL, "sheet-url", "", "CSV export URL of the attendance sheet (overrides config)")
	submitCmd.Flags().StringVar(&submitSheetFile, "sheet-file", "", "Local CSV file (overrides --sheet-url and config)")
	submitCmd.Flags().StringVar(&submitMonth, "month", "", "Target month, format YYYY-MM (default: current month)")
	submitCmd.Flags().StringVar(&submitProject, "project", "", "Project id or name")
	submitCmd.Flags().StringVar(&submitTask, "task", "", "Task id or name within the project")
	submitCmd.Flags().StringVar(&submitAPIKey, "api-key", "", "Clockify API key (overrides env and config)")
	submitCmd.Flags().DurationVar(&submitTimeout, "timeout", 30*time.Second, "Timeout per Clockify API operation")
	submitCmd.Flags().BoolVar(&submitDryRun, "dry-run", false, "Assemble and resolve everything without creating entries")

	_ = submitCmd.MarkFlagRequired("project")
	_ = submitCmd.MarkFlagRequired("task")
}
