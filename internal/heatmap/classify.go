package heatmap

import (
	"sort"
	"strconv"
	"strings"

	"github.com/KaramelBytes/gapmap-cli/internal/dataset"
)

// Options controls which columns are classified as boolean indicators.
type Options struct {
	// IgnoreColumns are skipped entirely (the link and status columns).
	IgnoreColumns []string
	// SelectedBases, when non-empty, keeps only columns whose base name is
	// listed and reorders them to match the list. Columns sharing a base keep
	// their source order.
	SelectedBases []string
}

// DefaultOptions ignores the columns the heatmap treats specially.
func DefaultOptions() Options {
	return Options{IgnoreColumns: []string{"Link", "Website_active"}}
}

// Classification is the boolean view of a table: a record-by-field matrix
// plus the parsed name parts for each retained column. Bases, Suffixes and
// Columns are parallel to the matrix columns.
type Classification struct {
	Matrix   [][]bool
	Columns  []string
	Bases    []string
	Suffixes []string
}

// NumFields returns the retained indicator column count.
func (c *Classification) NumFields() int { return len(c.Columns) }

// SplitBaseSuffix parses a column name into its base and suffix by splitting
// on the last underscore. A name without an underscore is all base with an
// empty suffix. The split is total: base+"_"+suffix reconstructs the name
// whenever a suffix exists.
func SplitBaseSuffix(col string) (base, suffix string) {
	if i := strings.LastIndex(col, "_"); i >= 0 {
		return col[:i], col[i+1:]
	}
	return col, ""
}

// Classify selects the boolean indicator columns of t per opts and coerces
// their values to a 0/1 matrix. The caller's table is never modified; only
// retained columns are coerced, so unparseable values in ignored or
// filtered-out columns cannot fail the run.
func Classify(t *dataset.Table, opts Options) (*Classification, error) {
	cols := retainedColumns(t, opts)

	c := &Classification{
		Matrix:   make([][]bool, len(t.Rows)),
		Columns:  make([]string, 0, len(cols)),
		Bases:    make([]string, 0, len(cols)),
		Suffixes: make([]string, 0, len(cols)),
	}
	for _, col := range cols {
		base, suffix := SplitBaseSuffix(col.name)
		c.Columns = append(c.Columns, col.name)
		c.Bases = append(c.Bases, base)
		c.Suffixes = append(c.Suffixes, suffix)
	}
	for i, row := range t.Rows {
		c.Matrix[i] = make([]bool, len(cols))
		for j, col := range cols {
			v, err := parseBoolCell(row[col.index])
			if err != nil {
				return nil, &dataset.TypeConversionError{Column: col.name, Row: i, Value: row[col.index]}
			}
			c.Matrix[i][j] = v
		}
	}
	return c, nil
}

// Normalize returns a new table whose retained indicator columns hold the
// canonical strings "True" and "False". Used for the optional write-back of
// the flags report; the input table is untouched.
func Normalize(t *dataset.Table, opts Options) (*dataset.Table, error) {
	out := t.Clone()
	for _, col := range retainedColumns(t, opts) {
		for i, row := range out.Rows {
			v, err := parseBoolCell(row[col.index])
			if err != nil {
				return nil, &dataset.TypeConversionError{Column: col.name, Row: i, Value: row[col.index]}
			}
			if v {
				row[col.index] = "True"
			} else {
				row[col.index] = "False"
			}
		}
	}
	return out, nil
}

type retained struct {
	name  string
	index int
}

func retainedColumns(t *dataset.Table, opts Options) []retained {
	ignore := make(map[string]bool, len(opts.IgnoreColumns))
	for _, name := range opts.IgnoreColumns {
		ignore[name] = true
	}
	var cols []retained
	for i, name := range t.Header {
		if ignore[name] {
			continue
		}
		cols = append(cols, retained{name: name, index: i})
	}
	if len(opts.SelectedBases) == 0 {
		return cols
	}

	rank := make(map[string]int, len(opts.SelectedBases))
	for i, base := range opts.SelectedBases {
		if _, seen := rank[base]; !seen {
			rank[base] = i
		}
	}
	var picked []retained
	for _, col := range cols {
		base, _ := SplitBaseSuffix(col.name)
		if _, ok := rank[base]; ok {
			picked = append(picked, col)
		}
	}
	// Stable, so columns sharing a base keep their source order.
	sort.SliceStable(picked, func(i, j int) bool {
		bi, _ := SplitBaseSuffix(picked[i].name)
		bj, _ := SplitBaseSuffix(picked[j].name)
		return rank[bi] < rank[bj]
	})
	return picked
}

// parseBoolCell accepts the strconv.ParseBool vocabulary after trimming,
// which covers the "True"/"False" strings delimited exports carry.
func parseBoolCell(s string) (bool, error) {
	return strconv.ParseBool(strings.TrimSpace(s))
}
