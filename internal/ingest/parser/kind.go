package parser

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

type Kind string

const (
	KindDelimited   Kind = "delimited"
	KindSpreadsheet Kind = "spreadsheet"
	KindCard        Kind = "card"
)

// Format is a detected file kind plus, for delimited text, its separator.
type Format struct {
	Kind      Kind
	Delimiter rune
}

var extensionFormats = map[string]Format{
	".csv":   {Kind: KindDelimited, Delimiter: ','},
	".txt":   {Kind: KindDelimited, Delimiter: ','},
	".tsv":   {Kind: KindDelimited, Delimiter: '\t'},
	".xlsx":  {Kind: KindSpreadsheet},
	".xlsm":  {Kind: KindSpreadsheet},
	".xls":   {Kind: KindSpreadsheet},
	".vcf":   {Kind: KindCard},
	".vcard": {Kind: KindCard},
}

// DetectFormat picks a format from the file extension and falls back to content sniffing.
func DetectFormat(name string, data []byte) Format {
	if format, ok := extensionFormats[strings.ToLower(filepath.Ext(name))]; ok {
		return format
	}

	mtype := mimetype.Detect(data)
	switch {
	case mtype.Is("text/vcard"):
		return Format{Kind: KindCard}
	case mtype.Is("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"),
		mtype.Is("application/zip"):
		return Format{Kind: KindSpreadsheet}
	case mtype.Is("text/tab-separated-values"):
		return Format{Kind: KindDelimited, Delimiter: '\t'}
	default:
		return Format{Kind: KindDelimited, Delimiter: ','}
	}
}
