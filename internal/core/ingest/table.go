package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// firstDataRowIndex is the reporting index of the first data row: the title
// row is skipped and the header row occupies index 1.
const firstDataRowIndex = 2

// Row is one data row keyed by column name.
type Row map[string]string

// Column is a named, ordered column of cell values.
type Column struct {
	Name  string
	Cells []string
}

// Table is an ordered collection of equally sized columns, the in-memory
// form of a parsed upload. Column order matters: the header remap renames
// columns by position.
type Table struct {
	columns []Column
	byName  map[string]int
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return len(t.columns)
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	if len(t.columns) == 0 {
		return 0
	}
	return len(t.columns[0].Cells)
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// ColumnNames returns the column names in order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, col := range t.columns {
		names[i] = col.Name
	}
	return names
}

// Rename changes the name of the column at the given position.
func (t *Table) Rename(i int, name string) {
	delete(t.byName, t.columns[i].Name)
	t.columns[i].Name = name
	t.byName[name] = i
}

// Row returns the data row at the given zero-based position, keyed by the
// current column names.
func (t *Table) Row(i int) Row {
	row := make(Row, len(t.columns))
	for _, col := range t.columns {
		row[col.Name] = col.Cells[i]
	}
	return row
}

// ReadTable parses a template export into a Table. The first physical row
// is the template's title banner and is discarded; the second row supplies
// the column names, normalized with normalizeHeader and disambiguated with
// positional suffixes; every remaining row is data.
func ReadTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("parse csv: no header row after the title row")
	}

	header := dedupeNames(normalizeHeader(records[1]))
	table := &Table{
		columns: make([]Column, len(header)),
		byName:  make(map[string]int, len(header)),
	}
	for i, name := range header {
		table.columns[i] = Column{Name: name}
		table.byName[name] = i
	}

	for n, record := range records[2:] {
		if len(record) != len(header) {
			return nil, fmt.Errorf("parse csv: row %d has %d fields, header has %d",
				n+firstDataRowIndex, len(record), len(header))
		}
		for i, cell := range record {
			table.columns[i].Cells = append(table.columns[i].Cells, cell)
		}
	}

	return table, nil
}

// normalizeHeader trims whitespace, lowercases, and strips the asterisks
// that mark required columns in the template.
func normalizeHeader(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "*", "")
	}
	return out
}

// dedupeNames makes repeated names unique by suffixing every occurrence
// after the first with its zero-based duplicate ordinal, so the template's
// second "first name" column becomes "first name_duplicated_0".
func dedupeNames(names []string) []string {
	seen := make(map[string]int, len(names))
	out := make([]string, len(names))
	for i, name := range names {
		if n, ok := seen[name]; ok {
			out[i] = fmt.Sprintf("%s_duplicated_%d", name, n-1)
		} else {
			out[i] = name
		}
		seen[name]++
	}
	return out
}
