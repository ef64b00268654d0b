package dataset

import "fmt"

// MissingColumnError reports a column name that is absent from a table header.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("column %q not found in dataset", e.Column)
}

// TypeConversionError reports a cell value with no boolean interpretation.
type TypeConversionError struct {
	Column string
	Row    int
	Value  string
}

func (e *TypeConversionError) Error() string {
	return fmt.Sprintf("column %q row %d: value %q has no boolean interpretation", e.Column, e.Row, e.Value)
}
