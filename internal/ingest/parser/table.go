package parser

import (
	"fmt"
	"strings"
)

// tableRecords turns a header row plus data rows into records. Cells are trimmed, rows with only
// blank cells are skipped, short rows are padded, and cells beyond the header are ignored.
func tableRecords(rows [][]string) []RawRecord {
	if len(rows) == 0 {
		return nil
	}

	headers, columns := headerColumns(rows[0])
	records := make([]RawRecord, 0, len(rows)-1)

	for _, row := range rows[1:] {
		values := make(map[string]string, len(headers))
		blank := true
		for i, header := range headers {
			col := columns[i]
			cell := ""
			if col < len(row) {
				cell = strings.TrimSpace(row[col])
			}
			if cell != "" {
				blank = false
			}
			values[header] = cell
		}
		if blank {
			continue
		}
		records = append(records, RawRecord{Headers: headers, Values: values})
	}

	return records
}

// headerColumns names every header cell and returns, for each distinct header, its column index.
// Empty headers become "Column N"; a repeated header keeps its first column.
func headerColumns(row []string) ([]string, []int) {
	headers := make([]string, 0, len(row))
	columns := make([]int, 0, len(row))
	seen := make(map[string]bool, len(row))

	for i, cell := range row {
		header := strings.TrimSpace(cell)
		if header == "" {
			header = fmt.Sprintf("Column %d", i+1)
		}
		if seen[header] {
			continue
		}
		seen[header] = true
		headers = append(headers, header)
		columns = append(columns, i)
	}

	return headers, columns
}
