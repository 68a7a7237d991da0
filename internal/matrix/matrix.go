// =============================================================================
// Picking List Generator - Matrix Table
// =============================================================================
//
// The bill-of-materials matrix is a raw cell grid addressed by column
// position, not by name. Column positions are a fixed contract of the source
// document:
//
//   | Pos | Content            |
//   |-----|--------------------|
//   | 0   | No                 |
//   | 1   | start part number  |
//   | 2   | factory            |
//   | 4   | part number        |
//   | 5   | part name          |
//   | 6   | spec               |
//   | 7,8 | colors             |
//   | 9   | quantity           |
//   | 10  | unit               |
//   | 11+ | option cells       |
//
// Row exposes named accessors backed by that fixed-position contract, so the
// rest of the pipeline never indexes cells directly. Row 0 is a header by
// convention; rows >= 1 are data rows.
//
// =============================================================================

package matrix

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Fixed column positions of the matrix document.
const (
	ColNo           = 0
	ColStartPart    = 1
	ColFactory      = 2
	ColPartNumber   = 4
	ColPartName     = 5
	ColSpec         = 6
	ColColorOutside = 7
	ColColorInside  = 8
	ColQuantity     = 9
	ColUnit         = 10

	// OptionStartCol is the first of the variable-length trailing option
	// cells.
	OptionStartCol = 11
)

// optionSeparator joins option values in the formatted option string.
const optionSeparator = " / "

// =============================================================================
// ROW
// =============================================================================

// Row is one matrix row. All accessors are bounds-checked and return the
// trimmed cell text; a missing cell reads as "".
type Row struct {
	cells []string
}

// NewRow wraps a raw cell slice.
func NewRow(cells []string) Row {
	return Row{cells: cells}
}

// Cell returns the trimmed text at a column position, or "" when the row is
// shorter than the position.
func (r Row) Cell(col int) string {
	if col < 0 || col >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[col])
}

// Width returns the number of cells in the row.
func (r Row) Width() int { return len(r.cells) }

func (r Row) No() string           { return r.Cell(ColNo) }
func (r Row) StartPart() string    { return r.Cell(ColStartPart) }
func (r Row) Factory() string      { return r.Cell(ColFactory) }
func (r Row) PartNumber() string   { return r.Cell(ColPartNumber) }
func (r Row) PartName() string     { return r.Cell(ColPartName) }
func (r Row) Spec() string         { return r.Cell(ColSpec) }
func (r Row) ColorOutside() string { return r.Cell(ColColorOutside) }
func (r Row) ColorInside() string  { return r.Cell(ColColorInside) }
func (r Row) Unit() string         { return r.Cell(ColUnit) }

// Quantity returns the quantity cell as an integer. Cells exported from the
// source system may carry decimal formatting ("3.0"); those truncate. A cell
// that does not parse coerces to 0.
func (r Row) Quantity() int {
	return ParseQuantity(r.Cell(ColQuantity))
}

// Options returns the non-empty, non-placeholder option cell values from the
// option start column to the end of the row, in column order.
func (r Row) Options() []string {
	var options []string
	for col := OptionStartCol; col < len(r.cells); col++ {
		value := r.Cell(col)
		if isOptionValue(value) {
			options = append(options, value)
		}
	}
	return options
}

// isOptionValue filters the placeholder values the source system leaves in
// unused option cells.
func isOptionValue(value string) bool {
	switch value {
	case "", "-", "nan":
		return false
	}
	return true
}

// =============================================================================
// TABLE
// =============================================================================

// Table is the ordered matrix document. It is immutable after construction.
type Table struct {
	rows []Row
}

// NewTable builds a Table from a raw grid, as returned by the spreadsheet
// reader.
func NewTable(grid [][]string) Table {
	rows := make([]Row, len(grid))
	for i, cells := range grid {
		rows[i] = NewRow(cells)
	}
	return Table{rows: rows}
}

// RowCount returns the total number of rows, header included.
func (t Table) RowCount() int { return len(t.rows) }

// Row returns the row at an index; an out-of-range index yields an empty row.
func (t Table) Row(i int) Row {
	if i < 0 || i >= len(t.rows) {
		return Row{}
	}
	return t.rows[i]
}

// Header returns row 0, the header row by convention.
func (t Table) Header() Row { return t.Row(0) }

// DataRows returns rows 1..n in order.
func (t Table) DataRows() []Row {
	if len(t.rows) < 2 {
		return nil
	}
	return t.rows[1:]
}

// FindDataRow scans the data rows from first to last and returns the first
// row whose part-number cell equals partNumber.
func (t Table) FindDataRow(partNumber string) (Row, bool) {
	for _, row := range t.DataRows() {
		if row.PartNumber() == partNumber {
			return row, true
		}
	}
	return Row{}, false
}

// Grid returns the raw cell values for writing the matrix back out
// unmodified.
func (t Table) Grid() [][]interface{} {
	grid := make([][]interface{}, len(t.rows))
	for i, row := range t.rows {
		cells := make([]interface{}, len(row.cells))
		for j, c := range row.cells {
			cells[j] = c
		}
		grid[i] = cells
	}
	return grid
}

// =============================================================================
// PARSING AND FORMATTING HELPERS
// =============================================================================

// ParseQuantity converts a quantity cell to an integer, truncating any
// decimal part. Empty or unparseable cells coerce to 0.
func ParseQuantity(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return int(d.IntPart())
}

// FormatOptions joins option values into the display string used in picking
// rows and order-line remarks.
func FormatOptions(options []string) string {
	return strings.Join(options, optionSeparator)
}
