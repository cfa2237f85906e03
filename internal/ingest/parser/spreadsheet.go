package parser

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// parseSpreadsheet reads the first sheet of a workbook.
func parseSpreadsheet(data []byte) ([]RawRecord, error) {
	book, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}

	return tableRecords(rows), nil
}
