package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ParseCSV reads headerless comma-separated rows. Rows may have any number
// of cells; cells stay plain strings with no type coercion.
func ParseCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows := make([][]string, 0, 32)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
