package timesheet

import (
	"fmt"
	"strconv"
	"strings"
)

// Default descriptions used when a row carries no trailing annotation.
const (
	MorningLabel   = "Morning Time"
	AfternoonLabel = "Afternoon Time"
)

// Positional cell layout of one sheet row: morning start/end, afternoon
// start/end, then free-text annotations.
const (
	cellMorningStart = iota
	cellMorningEnd
	cellAfternoonStart
	cellAfternoonEnd
	cellTrailing
)

type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses a colon-delimited "HH:MM" value.
func ParseTimeOfDay(raw string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("time %q is not in HH:MM format", raw)
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("parse hour in %q: %w", raw, err)
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("parse minute in %q: %w", raw, err)
	}

	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("hour %d in %q out of range", hour, raw)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("minute %d in %q out of range", minute, raw)
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// Shift is one contiguous morning or afternoon interval within a day.
type Shift struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Row is the structured form of one sheet row. A nil shift means the row
// carried no complete start/end pair for that half of the day.
type Row struct {
	Morning     *Shift
	Afternoon   *Shift
	Description string
}

// ParseRow reads cells 0-3 positionally as morning start/end and afternoon
// start/end. When trailing cells exist, the last one is the description;
// earlier trailing cells are tolerated and ignored.
func ParseRow(cells []string) (Row, error) {
	row := Row{}
	if len(cells) > cellTrailing {
		row.Description = strings.TrimSpace(cells[len(cells)-1])
	}

	morning, err := parseShift(cellAt(cells, cellMorningStart), cellAt(cells, cellMorningEnd))
	if err != nil {
		return Row{}, fmt.Errorf("morning shift: %w", err)
	}
	row.Morning = morning

	afternoon, err := parseShift(cellAt(cells, cellAfternoonStart), cellAt(cells, cellAfternoonEnd))
	if err != nil {
		return Row{}, fmt.Errorf("afternoon shift: %w", err)
	}
	row.Afternoon = afternoon

	return row, nil
}

// parseShift returns nil when either endpoint is empty: a lone start or lone
// end is not a shift and is skipped without error.
func parseShift(startRaw, endRaw string) (*Shift, error) {
	if startRaw == "" || endRaw == "" {
		return nil, nil
	}

	start, err := ParseTimeOfDay(startRaw)
	if err != nil {
		return nil, err
	}
	end, err := ParseTimeOfDay(endRaw)
	if err != nil {
		return nil, err
	}

	return &Shift{Start: start, End: end}, nil
}

func cellAt(cells []string, index int) string {
	if index < len(cells) {
		return strings.TrimSpace(cells[index])
	}
	return ""
}
