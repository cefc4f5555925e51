package output

import (
	"math"
	"sort"
	"time"

	"clocksheet/internal/timeutil"
	"clocksheet/timesheet"
)

// DailySummary totals the assembled entries of one calendar day for the
// preview footer.
type DailySummary struct {
	Date        time.Time
	WorkedHours float64
	EntryCount  int
}

// MonthSummary is the per-day breakdown plus the month total.
type MonthSummary struct {
	Days       []DailySummary
	TotalHours float64
}

// BuildMonthSummary groups entries by day in chronological order. Entries
// with inverted ranges contribute zero hours but still count.
func BuildMonthSummary(entries []timesheet.Entry) MonthSummary {
	byDay := make(map[string][]timesheet.Entry)
	days := make(map[string]time.Time)

	for _, entry := range entries {
		day := timeutil.StartOfDay(entry.Start)
		key := day.Format("2006-01-02")
		byDay[key] = append(byDay[key], entry)
		days[key] = day
	}

	keys := make([]string, 0, len(days))
	for key := range days {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	summary := MonthSummary{Days: make([]DailySummary, 0, len(keys))}
	for _, key := range keys {
		worked := time.Duration(0)
		for _, entry := range byDay[key] {
			if entry.End.After(entry.Start) {
				worked += entry.End.Sub(entry.Start)
			}
		}
		hours := roundHours(worked.Hours())
		summary.Days = append(summary.Days, DailySummary{
			Date:        days[key],
			WorkedHours: hours,
			EntryCount:  len(byDay[key]),
		})
		summary.TotalHours += hours
	}
	summary.TotalHours = roundHours(summary.TotalHours)

	return summary
}

func roundHours(value float64) float64 {
	return math.Round(value*100) / 100
}
