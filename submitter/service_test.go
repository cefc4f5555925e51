package submitter

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"clocksheet/clockify"
	"clocksheet/timesheet"
)

type fakeClient struct {
	created     []clockify.NewTimeEntry
	workspaces  []string
	inFlight    bool
	failAtIndex int
}

func newFakeClient() *fakeClient {
	return &fakeClient{failAtIndex: -1}
}

func (f *fakeClient) GetCurrentUser(context.Context) (clockify.User, error) {
	return clockify.User{}, errors.New("not implemented")
}

func (f *fakeClient) ListProjects(context.Context, string) ([]clockify.Project, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeClient) ListTasks(context.Context, string, string) ([]clockify.Task, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeClient) CreateTimeEntry(_ context.Context, workspaceID string, entry clockify.NewTimeEntry) (clockify.TimeEntry, error) {
	if f.inFlight {
		return clockify.TimeEntry{}, errors.New("overlapping create calls")
	}
	f.inFlight = true
	defer func() { f.inFlight = false }()

	if f.failAtIndex >= 0 && len(f.created) == f.failAtIndex {
		return clockify.TimeEntry{}, errors.New("remote validation failed")
	}

	f.created = append(f.created, entry)
	f.workspaces = append(f.workspaces, workspaceID)
	return clockify.TimeEntry{ID: fmt.Sprintf("e%d", len(f.created))}, nil
}

func sampleEntries(count int) []timesheet.Entry {
	entries := make([]timesheet.Entry, 0, count)
	for i := 0; i < count; i++ {
		day := i + 1
		entries = append(entries, timesheet.Entry{
			Description: fmt.Sprintf("entry %d", day),
			Start:       time.Date(2024, time.March, day, 8, 0, 0, 0, time.Local),
			End:         time.Date(2024, time.March, day, 12, 0, 0, 0, time.Local),
		})
	}
	return entries
}

func sampleSubmission() SubmissionContext {
	return SubmissionContext{WorkspaceID: "ws1", ProjectID: "p1", TaskID: "t1"}
}

func TestRun_OneRequestPerEntryInOrder(t *testing.T) {
	t.Parallel()

	client := newFakeClient()
	entries := sampleEntries(3)

	result, err := Run(context.Background(), client, entries, sampleSubmission())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Submitted != 3 {
		t.Fatalf("expected 3 submitted, got %d", result.Submitted)
	}
	if len(client.created) != 3 {
		t.Fatalf("expected 3 create calls, got %d", len(client.created))
	}

	for i, created := range client.created {
		if created.Description != entries[i].Description {
			t.Fatalf("call %d out of order: got %q, want %q", i, created.Description, entries[i].Description)
		}
		if !created.Billable {
			t.Fatalf("call %d not billable", i)
		}
		if created.ProjectID != "p1" || created.TaskID != "t1" {
			t.Fatalf("call %d has wrong project/task: %+v", i, created)
		}
		if created.TagIDs == nil || len(created.TagIDs) != 0 {
			t.Fatalf("call %d should carry an empty tag set, got %v", i, created.TagIDs)
		}
		if client.workspaces[i] != "ws1" {
			t.Fatalf("call %d sent to workspace %q", i, client.workspaces[i])
		}
	}
}

func TestRun_PartialFailureStopsAndReportsProgress(t *testing.T) {
	t.Parallel()

	client := newFakeClient()
	client.failAtIndex = 2

	result, err := Run(context.Background(), client, sampleEntries(5), sampleSubmission())
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var submitErr *SubmitError
	if !errors.As(err, &submitErr) {
		t.Fatalf("expected *SubmitError, got %T: %v", err, err)
	}
	if submitErr.Index != 2 {
		t.Fatalf("expected failure at index 2, got %d", submitErr.Index)
	}
	if submitErr.Submitted != 2 || result.Submitted != 2 {
		t.Fatalf("expected 2 committed entries, got error=%d result=%d", submitErr.Submitted, result.Submitted)
	}
	if len(client.created) != 2 {
		t.Fatalf("entries after the failure must not be attempted, got %d creates", len(client.created))
	}
}

func TestRun_MissingContextFieldsFailBeforeAnyCall(t *testing.T) {
	t.Parallel()

	cases := []SubmissionContext{
		{},
		{WorkspaceID: "ws1"},
		{WorkspaceID: "ws1", ProjectID: "p1"},
		{ProjectID: "p1", TaskID: "t1"},
	}

	for _, submission := range cases {
		client := newFakeClient()
		if _, err := Run(context.Background(), client, sampleEntries(1), submission); err == nil {
			t.Fatalf("expected validation error for %+v, got nil", submission)
		}
		if len(client.created) != 0 {
			t.Fatalf("no create call may happen for %+v", submission)
		}
	}
}

func TestRun_EmptyEntryListSubmitsNothing(t *testing.T) {
	t.Parallel()

	client := newFakeClient()
	result, err := Run(context.Background(), client, nil, sampleSubmission())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Submitted != 0 || len(client.created) != 0 {
		t.Fatalf("expected no submissions, got %+v", result)
	}
}
