package pipeline

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var errNoColumns = errors.New("no columns to parse from file")

// Table is an uploaded CSV held in memory for the duration of one request.
// Every row has exactly len(Header) cells.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadTable parses r as CSV with a header row. Rows shorter than the header
// are padded with empty cells; longer rows are rejected. Stray quotes in
// unquoted cells are read as text.
func ReadTable(r io.Reader) (*Table, error) {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		br.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	// Quotes inside an unquoted cell are kept as literal characters.
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errNoColumns
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	table := &Table{Header: header}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(table.Rows)+1, err)
		}

		if len(record) > len(header) {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("expected %d fields in line %d, saw %d", len(header), line, len(record))
		}
		for len(record) < len(header) {
			record = append(record, "")
		}
		table.Rows = append(table.Rows, record)
	}

	return table, nil
}

// ColumnIndex returns the position of the first column called name, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, col := range t.Header {
		if col == name {
			return i
		}
	}
	return -1
}

// WriteCSV writes a header row followed by rows, without an index column.
func WriteCSV(w io.Writer, header []string, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("writing rows: %w", err)
	}
	return writer.Error()
}

// CleanText collapses every whitespace run to a single space and trims the
// ends.
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
