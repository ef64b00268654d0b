package dataset

import (
	"sort"
	"strings"
)

// Table is an in-memory delimited dataset: a header plus ordered rows.
// Row order is significant — source row i becomes record column i in every
// raster derived from the table, so all transforms here are stable.
type Table struct {
	Header []string
	Rows   [][]string
}

// New constructs a table from a header and rows. Rows shorter than the
// header are padded with empty cells so every row has header width.
func New(header []string, rows [][]string) *Table {
	t := &Table{Header: header, Rows: make([][]string, 0, len(rows))}
	for _, r := range rows {
		t.Rows = append(t.Rows, padRow(r, len(header)))
	}
	return t
}

func padRow(r []string, width int) []string {
	if len(r) >= width {
		return r
	}
	out := make([]string, width)
	copy(out, r)
	return out
}

// NumRecords returns the number of data rows.
func (t *Table) NumRecords() int { return len(t.Rows) }

// ColumnIndex returns the position of name in the header, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether name appears in the header.
func (t *Table) HasColumn(name string) bool { return t.ColumnIndex(name) >= 0 }

// Column returns the values of the named column in record order.
func (t *Table) Column(name string) ([]string, error) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, &MissingColumnError{Column: name}
	}
	out := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r[idx]
	}
	return out, nil
}

// SortBy reorders rows by the named column's value, ascending. The sort is
// stable so records with equal keys keep their source order.
func (t *Table) SortBy(column string) error {
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return &MissingColumnError{Column: column}
	}
	sort.SliceStable(t.Rows, func(i, j int) bool {
		return t.Rows[i][idx] < t.Rows[j][idx]
	})
	return nil
}

// ValidateHeaders returns the expected column names missing from the header.
// Validation is advisory: callers decide whether to warn or refuse.
func (t *Table) ValidateHeaders(expected []string) []string {
	var missing []string
	for _, name := range expected {
		if name == "" {
			continue
		}
		if !t.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// Clone returns a deep copy. Transforms that normalize cell values operate
// on a clone so the caller's table is never mutated.
func (t *Table) Clone() *Table {
	header := make([]string, len(t.Header))
	copy(header, t.Header)
	rows := make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		row := make([]string, len(r))
		copy(row, r)
		rows[i] = row
	}
	return &Table{Header: header, Rows: rows}
}

// SetColumn replaces the named column's values. Values must match the record
// count; used by normalization to write canonical booleans back.
func (t *Table) SetColumn(name string, values []string) error {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return &MissingColumnError{Column: name}
	}
	for i := range t.Rows {
		if i < len(values) {
			t.Rows[i][idx] = values[i]
		}
	}
	return nil
}

// TrimmedHeader returns header names with surrounding whitespace removed,
// matching how delimited files written by spreadsheet tools often look.
func TrimmedHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = strings.TrimSpace(h)
	}
	return out
}
