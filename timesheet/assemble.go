package timesheet

import (
	"fmt"
	"time"
)

// maxRowsPerMonth caps assembly at the longest possible calendar month.
// Row index i maps to day i+1, so anything past index 30 cannot be a day.
const maxRowsPerMonth = 31

// BuildEntry composes the absolute local start/end timestamps for one shift
// of one day. Day values beyond the month's length roll over into the next
// month via time.Date. The fallback label applies when the row carried no
// description.
func BuildEntry(month MonthContext, day int, shift Shift, description, fallbackLabel string) Entry {
	if description == "" {
		description = fallbackLabel
	}
	return Entry{
		Description: description,
		Start:       time.Date(month.Year, month.Month, day, shift.Start.Hour, shift.Start.Minute, 0, 0, time.Local),
		End:         time.Date(month.Year, month.Month, day, shift.End.Hour, shift.End.Minute, 0, 0, time.Local),
	}
}

// Assemble walks the sheet rows in order and accumulates entries, morning
// before afternoon within a row. Entries keep row order; no sorting and no
// deduplication happens here. The entry list may contain inverted ranges
// (end before start) - the remote service decides what to do with those.
func Assemble(rows [][]string, month MonthContext) ([]Entry, error) {
	entries := make([]Entry, 0, len(rows)*2)
	for index, cells := range rows {
		if index >= maxRowsPerMonth {
			break
		}

		row, err := ParseRow(cells)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", index+1, err)
		}

		day := index + 1
		if row.Morning != nil {
			entries = append(entries, BuildEntry(month, day, *row.Morning, row.Description, MorningLabel))
		}
		if row.Afternoon != nil {
			entries = append(entries, BuildEntry(month, day, *row.Afternoon, row.Description, AfternoonLabel))
		}
	}
	return entries, nil
}
