package parser_test

import (
	"encoding/csv"
	"testing"

	"github.com/mohammadpnp/contact-import/internal/ingest/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func TestParseDelimited(t *testing.T) {
	t.Parallel()

	data := []byte("Full Name, Email ,Phone\n\"Jane Doe\", jane@x.com ,555-123-4567\n\n\"Jane D\",jane@x.com,\n")

	records, format, err := parser.Parse("contacts.csv", data)
	require.NoError(t, err)
	assert.Equal(t, parser.KindDelimited, format.Kind)
	require.Len(t, records, 2)

	assert.Equal(t, []string{"Full Name", "Email", "Phone"}, records[0].Headers)
	assert.Equal(t, "Jane Doe", records[0].Get("Full Name"))
	assert.Equal(t, "jane@x.com", records[0].Get("Email"))
	assert.Equal(t, "555-123-4567", records[0].Get("Phone"))
	assert.Equal(t, "Jane D", records[1].Get("Full Name"))
	assert.Equal(t, "", records[1].Get("Phone"))
}

func TestParseDelimitedSkipsBlankRows(t *testing.T) {
	t.Parallel()

	records, _, err := parser.Parse("contacts.csv", []byte("Name,Email\n , \nJane,jane@x.com\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Jane", records[0].Get("Name"))
}

func TestParseDelimitedSkipsWhitespaceOnlyLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		data  string
		names []string
	}{
		{name: "middle", data: "First Name,Email\nJane,jane@x.com\n   \nBob,bob@x.com\n", names: []string{"Jane", "Bob"}},
		{name: "trailing", data: "First Name,Email\nJane,jane@x.com\n \n", names: []string{"Jane"}},
		{name: "before header", data: "\t\nFirst Name,Email\nJane,jane@x.com\n", names: []string{"Jane"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			records, _, err := parser.Parse("people.csv", []byte(tt.data))
			require.NoError(t, err)
			require.Len(t, records, len(tt.names))
			for i, name := range tt.names {
				assert.Equal(t, name, records[i].Get("First Name"))
			}
		})
	}
}

func TestParseDelimitedShortDataRowFailsFile(t *testing.T) {
	t.Parallel()

	_, _, err := parser.Parse("people.csv", []byte("First Name,Email\nJane,jane@x.com\nBob\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, csv.ErrFieldCount)
}

func TestParseDelimitedColumnCountMismatchFailsFile(t *testing.T) {
	t.Parallel()

	_, _, err := parser.Parse("broken.csv", []byte("Name,Email\nJane,jane@x.com,extra\n"))
	require.Error(t, err)
}

func TestParseDelimitedHeaderOnly(t *testing.T) {
	t.Parallel()

	records, _, err := parser.Parse("empty.csv", []byte("Name,Email\n"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseDelimitedNamesBlankAndRepeatedHeaders(t *testing.T) {
	t.Parallel()

	records, _, err := parser.Parse("contacts.csv", []byte("Email,,Email\na@x.com,note,b@x.com\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"Email", "Column 2"}, records[0].Headers)
	assert.Equal(t, "a@x.com", records[0].Get("Email"))
	assert.Equal(t, "note", records[0].Get("Column 2"))
}

func TestParseTabSeparated(t *testing.T) {
	t.Parallel()

	records, format, err := parser.Parse("contacts.tsv", []byte("First Name\tCompany\nJane\tAcme, Inc\n"))
	require.NoError(t, err)
	assert.Equal(t, '\t', format.Delimiter)
	require.Len(t, records, 1)
	assert.Equal(t, "Acme, Inc", records[0].Get("Company"))
}

func TestParseDelimitedUTF16WithBOM(t *testing.T) {
	t.Parallel()

	encoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	data, err := encoder.Bytes([]byte("Name,Email\nJosé,jose@x.com\n"))
	require.NoError(t, err)

	records, _, err := parser.Parse("contacts.csv", data)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"Name", "Email"}, records[0].Headers)
	assert.Equal(t, "José", records[0].Get("Name"))
}

func TestParseDelimitedLatin1(t *testing.T) {
	t.Parallel()

	data, err := charmap.Windows1252.NewEncoder().Bytes([]byte("Name,City\nRené,Zürich\n"))
	require.NoError(t, err)

	records, _, err := parser.Parse("contacts.csv", data)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "René", records[0].Get("Name"))
	assert.Equal(t, "Zürich", records[0].Get("City"))
}

func TestParseCards(t *testing.T) {
	t.Parallel()

	data := []byte("BEGIN:VCARD\r\n" +
		"VERSION:3.0\r\n" +
		"FN:Jane Q Doe\r\n" +
		"EMAIL:jane@x.com\r\n" +
		"EMAIL:other@x.com\r\n" +
		"TEL:555-123-4567\r\n" +
		"ORG:Acme Inc;Sales\r\n" +
		"END:VCARD\r\n" +
		"BEGIN:VCARD\r\n" +
		"VERSION:3.0\r\n" +
		"FN: \r\n" +
		"EMAIL:nobody@x.com\r\n" +
		"END:VCARD\r\n" +
		"BEGIN:VCARD\r\n" +
		"VERSION:3.0\r\n" +
		"FN:Cher\r\n" +
		"END:VCARD\r\n")

	records, format, err := parser.Parse("phone.vcf", data)
	require.NoError(t, err)
	assert.Equal(t, parser.KindCard, format.Kind)
	require.Len(t, records, 2)

	assert.Equal(t, []string{"firstName", "lastName", "email", "phone", "company"}, records[0].Headers)
	assert.Equal(t, "Jane", records[0].Get("firstName"))
	assert.Equal(t, "Q Doe", records[0].Get("lastName"))
	assert.Equal(t, "jane@x.com", records[0].Get("email"))
	assert.Equal(t, "555-123-4567", records[0].Get("phone"))
	assert.Equal(t, "Acme Inc", records[0].Get("company"))

	assert.Equal(t, "Cher", records[1].Get("firstName"))
	assert.Equal(t, "", records[1].Get("lastName"))
}

func TestParseSpreadsheetFirstSheetOnly(t *testing.T) {
	t.Parallel()

	book := excelize.NewFile()
	t.Cleanup(func() { _ = book.Close() })

	sheet := book.GetSheetName(0)
	require.NoError(t, book.SetSheetRow(sheet, "A1", &[]any{"First Name", "Last Name", "Company"}))
	require.NoError(t, book.SetSheetRow(sheet, "A2", &[]any{" Jane ", "Doe", "Acme"}))
	require.NoError(t, book.SetSheetRow(sheet, "A4", &[]any{"John"}))

	_, err := book.NewSheet("Other")
	require.NoError(t, err)
	require.NoError(t, book.SetSheetRow("Other", "A1", &[]any{"Ignored"}))
	require.NoError(t, book.SetSheetRow("Other", "A2", &[]any{"value"}))

	buf, err := book.WriteToBuffer()
	require.NoError(t, err)

	records, format, err := parser.Parse("book.xlsx", buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, parser.KindSpreadsheet, format.Kind)
	require.Len(t, records, 2)

	assert.Equal(t, "Jane", records[0].Get("First Name"))
	assert.Equal(t, "Acme", records[0].Get("Company"))
	assert.Equal(t, "John", records[1].Get("First Name"))
	assert.Equal(t, "", records[1].Get("Company"))
}

func TestParseSpreadsheetGarbageFailsFile(t *testing.T) {
	t.Parallel()

	_, _, err := parser.Parse("book.xlsx", []byte("not a workbook"))
	require.Error(t, err)
}

func TestDetectFormatSniffsUnknownExtension(t *testing.T) {
	t.Parallel()

	card := []byte("BEGIN:VCARD\r\nVERSION:3.0\r\nFN:Jane Doe\r\nEND:VCARD\r\n")
	assert.Equal(t, parser.KindCard, parser.DetectFormat("upload.bin", card).Kind)

	text := parser.DetectFormat("upload", []byte("Name,Email\nJane,jane@x.com\n"))
	assert.Equal(t, parser.KindDelimited, text.Kind)
	assert.Equal(t, ',', text.Delimiter)
}
