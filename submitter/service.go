package submitter

import (
	"context"
	"fmt"
	"strings"

	"clocksheet/clockify"
	"clocksheet/timesheet"
)

// SubmissionContext carries the remote coordinates shared by every created
// entry. All fields are required before any network call is made.
type SubmissionContext struct {
	WorkspaceID string
	ProjectID   string
	TaskID      string
}

func (c SubmissionContext) validate() error {
	missing := make([]string, 0, 3)
	if strings.TrimSpace(c.WorkspaceID) == "" {
		missing = append(missing, "workspace")
	}
	if strings.TrimSpace(c.ProjectID) == "" {
		missing = append(missing, "project")
	}
	if strings.TrimSpace(c.TaskID) == "" {
		missing = append(missing, "task")
	}
	if len(missing) > 0 {
		return fmt.Errorf("submission context is missing: %s", strings.Join(missing, ", "))
	}
	return nil
}

type Result struct {
	Submitted int
}

// SubmitError reports a failure partway through the sequential loop.
// Entries before Index are already committed remotely; there is no rollback
// and the remaining entries were never attempted.
type SubmitError struct {
	Index     int
	Submitted int
	Err       error
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf(
		"create time entry %d: %v (%d entries already created remotely)",
		e.Index+1,
		e.Err,
		e.Submitted,
	)
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

// Run submits entries one at a time, in list order. The next create call is
// only issued after the previous response arrived; Clockify rate-limits per
// request and the remote entry order must match the sheet order. Every entry
// is billable with an empty tag set.
func Run(ctx context.Context, client clockify.Client, entries []timesheet.Entry, submission SubmissionContext) (Result, error) {
	if err := submission.validate(); err != nil {
		return Result{}, err
	}

	result := Result{}
	for index, entry := range entries {
		payload := clockify.NewTimeEntry{
			Start:       clockify.WallClock{Time: entry.Start},
			Billable:    true,
			Description: entry.Description,
			ProjectID:   submission.ProjectID,
			TaskID:      submission.TaskID,
			End:         clockify.WallClock{Time: entry.End},
			TagIDs:      []string{},
		}

		if _, err := client.CreateTimeEntry(ctx, submission.WorkspaceID, payload); err != nil {
			return result, &SubmitError{Index: index, Submitted: result.Submitted, Err: err}
		}
		result.Submitted++
	}

	return result, nil
}
