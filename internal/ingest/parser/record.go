package parser

// RawRecord is one parsed row. Headers keeps the file's column order; Values is keyed by header.
type RawRecord struct {
	Headers []string
	Values  map[string]string
}

// Get returns the trimmed value stored under header, or "" when absent.
func (r RawRecord) Get(header string) string {
	return r.Values[header]
}
