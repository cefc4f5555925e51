package timesheet

import (
	"strings"
	"testing"
)

func TestParseTimeOfDay_Valid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input  string
		hour   int
		minute int
	}{
		{"08:00", 8, 0},
		{"13:45", 13, 45},
		{" 9:05 ", 9, 5},
		{"00:00", 0, 0},
		{"23:59", 23, 59},
	}

	for _, tc := range cases {
		got, err := ParseTimeOfDay(tc.input)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.input, err)
		}
		if got.Hour != tc.hour || got.Minute != tc.minute {
			t.Fatalf("parse %q: got %+v, want %d:%d", tc.input, got, tc.hour, tc.minute)
		}
	}
}

func TestParseTimeOfDay_Invalid(t *testing.T) {
	t.Parallel()

	cases := []string{
		"",
		"0800",
		"8",
		"08:00:00",
		"ab:cd",
		"24:00",
		"12:60",
		"-1:30",
	}

	for _, input := range cases {
		if _, err := ParseTimeOfDay(input); err == nil {
			t.Fatalf("expected error for %q, got nil", input)
		}
	}
}

func TestParseRow_BothShiftsAndDescription(t *testing.T) {
	t.Parallel()

	row, err := ParseRow([]string{"08:00", "12:00", "13:00", "18:00", "Fieldwork"})
	if err != nil {
		t.Fatalf("parse row: %v", err)
	}

	if row.Morning == nil || row.Afternoon == nil {
		t.Fatalf("expected both shifts present, got %+v", row)
	}
	if row.Morning.Start != (TimeOfDay{Hour: 8}) || row.Morning.End != (TimeOfDay{Hour: 12}) {
		t.Fatalf("unexpected morning shift: %+v", *row.Morning)
	}
	if row.Afternoon.Start != (TimeOfDay{Hour: 13}) || row.Afternoon.End != (TimeOfDay{Hour: 18}) {
		t.Fatalf("unexpected afternoon shift: %+v", *row.Afternoon)
	}
	if row.Description != "Fieldwork" {
		t.Fatalf("unexpected description: %q", row.Description)
	}
}

func TestParseRow_LoneEndpointSkipsShift(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		cells     []string
		morning   bool
		afternoon bool
	}{
		{"lone morning start", []string{"08:00", "", "", "", ""}, false, false},
		{"lone morning end", []string{"", "12:00", "13:00", "18:00"}, false, true},
		{"lone afternoon start", []string{"08:00", "12:00", "13:00", ""}, true, false},
		{"empty row", []string{"", "", "", ""}, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			row, err := ParseRow(tc.cells)
			if err != nil {
				t.Fatalf("parse row: %v", err)
			}
			if (row.Morning != nil) != tc.morning {
				t.Fatalf("morning presence: got %v, want %v", row.Morning != nil, tc.morning)
			}
			if (row.Afternoon != nil) != tc.afternoon {
				t.Fatalf("afternoon presence: got %v, want %v", row.Afternoon != nil, tc.afternoon)
			}
		})
	}
}

func TestParseRow_LastTrailingCellWins(t *testing.T) {
	t.Parallel()

	row, err := ParseRow([]string{"08:00", "12:00", "", "", "ignored", "also ignored", "Client visit"})
	if err != nil {
		t.Fatalf("parse row: %v", err)
	}
	if row.Description != "Client visit" {
		t.Fatalf("expected last trailing cell as description, got %q", row.Description)
	}
}

func TestParseRow_ShortRowHasNoDescription(t *testing.T) {
	t.Parallel()

	row, err := ParseRow([]string{"08:00", "12:00", "13:00", "18:00"})
	if err != nil {
		t.Fatalf("parse row: %v", err)
	}
	if row.Description != "" {
		t.Fatalf("expected empty description, got %q", row.Description)
	}
}

func TestParseRow_MalformedTimeFailsWithContext(t *testing.T) {
	t.Parallel()

	_, err := ParseRow([]string{"08:00", "noon", "", ""})
	if err == nil {
		t.Fatal("expected error for malformed time, got nil")
	}
	if !strings.Contains(err.Error(), "morning shift") {
		t.Fatalf("expected morning shift context in error, got %v", err)
	}
}
