// Package parser turns uploaded contact files into ordered raw records.
package parser

import "fmt"

// Parse decodes one file. The format comes from the file name, or from the content when the
// extension is unknown. Any error means the whole file is unusable.
func Parse(name string, data []byte) ([]RawRecord, Format, error) {
	format := DetectFormat(name, data)

	var (
		records []RawRecord
		err     error
	)
	switch format.Kind {
	case KindSpreadsheet:
		records, err = parseSpreadsheet(data)
	case KindCard:
		records, err = parseCards(data)
	default:
		records, err = parseDelimited(data, format.Delimiter)
	}
	if err != nil {
		return nil, format, fmt.Errorf("parse %s file: %w", format.Kind, err)
	}

	return records, format, nil
}
