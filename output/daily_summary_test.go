package output

import (
	"testing"
	"time"

	"clocksheet/timesheet"
)

func entry(day, startHour, endHour int, description string) timesheet.Entry {
	return timesheet.Entry{
		Description: description,
		Start:       time.Date(2024, time.March, day, startHour, 0, 0, 0, time.Local),
		End:         time.Date(2024, time.March, day, endHour, 0, 0, 0, time.Local),
	}
}

func TestBuildMonthSummary_GroupsByDayInOrder(t *testing.T) {
	t.Parallel()

	entries := []timesheet.Entry{
		entry(2, 8, 12, "Morning Time"),
		entry(2, 13, 18, "Afternoon Time"),
		entry(1, 9, 11, "Fieldwork"),
	}

	summary := BuildMonthSummary(entries)
	if len(summary.Days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(summary.Days))
	}

	first := summary.Days[0]
	if first.Date.Day() != 1 || first.WorkedHours != 2.0 || first.EntryCount != 1 {
		t.Fatalf("unexpected first day summary: %+v", first)
	}

	second := summary.Days[1]
	if second.Date.Day() != 2 || second.WorkedHours != 9.0 || second.EntryCount != 2 {
		t.Fatalf("unexpected second day summary: %+v", second)
	}

	if summary.TotalHours != 11.0 {
		t.Fatalf("expected 11 total hours, got %v", summary.TotalHours)
	}
}

func TestBuildMonthSummary_InvertedRangeCountsZeroHours(t *testing.T) {
	t.Parallel()

	entries := []timesheet.Entry{entry(1, 18, 9, "inverted")}

	summary := BuildMonthSummary(entries)
	if len(summary.Days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(summary.Days))
	}
	if summary.Days[0].WorkedHours != 0 || summary.Days[0].EntryCount != 1 {
		t.Fatalf("unexpected summary for inverted entry: %+v", summary.Days[0])
	}
}

func TestBuildMonthSummary_Empty(t *testing.T) {
	t.Parallel()

	summary := BuildMonthSummary(nil)
	if len(summary.Days) != 0 || summary.TotalHours != 0 {
		t.Fatalf("expected empty summary, got %+v", summary)
	}
}
