package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// parseDelimited reads header and data rows. Rows whose cells are all blank are dropped before
// the column count is checked; any other row must match the header width.
func parseDelimited(data []byte, delimiter rune) ([]RawRecord, error) {
	text, err := decodeText(data)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(text))
	reader.Comma = delimiter
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	rows := make([][]string, 0)
	width := 0
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read delimited row: %w", err)
		}
		if blankRow(row) {
			continue
		}

		if len(rows) == 0 {
			width = len(row)
		} else if len(row) != width {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("read delimited row: %w", &csv.ParseError{StartLine: line, Line: line, Column: 1, Err: csv.ErrFieldCount})
		}
		rows = append(rows, row)
	}

	return tableRecords(rows), nil
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
