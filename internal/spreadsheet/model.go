// Package spreadsheet is the neutral tabular output of reports. It knows
// nothing about file formats except for the XLSX writer in xlsx.go.
package spreadsheet

import (
	"errors"
	"fmt"
)

var ErrRaggedColumns = errors.New("columns have different lengths")

type Data struct {
	Filename   string
	Worksheets []Worksheet
}

type Worksheet struct {
	Name    string
	Columns []Column
}

// Column is one column of cells, top to bottom. Width 0 leaves the width to
// the renderer.
type Column struct {
	Values []Value
	Width  float64
}

// Rows is the height of the worksheet, i.e. the length of its first column.
func (w Worksheet) Rows() int {
	if len(w.Columns) == 0 {
		return 0
	}
	return len(w.Columns[0].Values)
}

// Validate checks that every column has the same number of cells.
func (w Worksheet) Validate() error {
	rows := w.Rows()
	for i, c := range w.Columns {
		if len(c.Values) != rows {
			return fmt.Errorf("%w: worksheet %q column %d has %d cells, want %d",
				ErrRaggedColumns, w.Name, i, len(c.Values), rows)
		}
	}
	return nil
}

func (d Data) Validate() error {
	for _, w := range d.Worksheets {
		if err := w.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Header builds the cells above the data rows of a column.
func Header(labels ...string) []Value {
	out := make([]Value, 0, len(labels))
	for _, l := range labels {
		out = append(out, String(l))
	}
	return out
}

// NewColumn appends one cell per row to head.
func NewColumn[T any](width float64, head []Value, rows []T, cell func(T) Value) Column {
	values := make([]Value, 0, len(head)+len(rows))
	values = append(values, head...)
	for _, r := range rows {
		values = append(values, cell(r))
	}
	return Column{Values: values, Width: width}
}
