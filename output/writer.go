package output

import (
	"fmt"
	"path/filepath"
	"strings"

	"clocksheet/timesheet"
)

var entryHeaders = []string{"Date", "Start", "End", "DurationMins", "Description"}

type Writer interface {
	Write(path string, entries []timesheet.Entry) error
}

func WriterForFormat(format string) (Writer, error) {
	switch normalizeFormat(format) {
	case "csv":
		return &CSVWriter{}, nil
	case "excel", "xlsx":
		return &ExcelWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriterForPath infers the writer from the file extension.
func WriterForPath(path string) (Writer, error) {
	extension := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch extension {
	case "csv":
		return &CSVWriter{}, nil
	case "xlsx":
		return &ExcelWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output extension for %s (use .csv or .xlsx)", path)
	}
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}

func entryRow(entry timesheet.Entry) []string {
	return []string{
		entry.Start.Format("2006-01-02"),
		entry.Start.Format("15:04"),
		entry.End.Format("15:04"),
		fmt.Sprintf("%d", int(entry.End.Sub(entry.Start).Minutes())),
		entry.Description,
	}
}
