package timesheet

import "time"

// Entry is one billable interval ready for submission or export.
type Entry struct {
	Description string
	Start       time.Time
	End         time.Time
}

// MonthContext pins an assembly pass to one calendar month. Day numbers come
// from row positions, so the context is fixed for the whole sheet.
type MonthContext struct {
	Year  int
	Month time.Month
}
