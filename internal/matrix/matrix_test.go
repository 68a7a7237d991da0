package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hmiyake/picking-list-generator/internal/matrix"
)

// =============================================================================
// ROW ACCESSORS
// =============================================================================

func TestRowAccessors(t *testing.T) {
	row := matrix.NewRow([]string{
		"1", "FRAME12345", "F01", "", "CM123456", " Bracket ", "SPEC-9",
		"red", "black", "12", "pcs",
	})

	assert.Equal(t, "1", row.No())
	assert.Equal(t, "FRAME12345", row.StartPart())
	assert.Equal(t, "F01", row.Factory())
	assert.Equal(t, "CM123456", row.PartNumber())
	assert.Equal(t, "Bracket", row.PartName())
	assert.Equal(t, "SPEC-9", row.Spec())
	assert.Equal(t, "red", row.ColorOutside())
	assert.Equal(t, "black", row.ColorInside())
	assert.Equal(t, 12, row.Quantity())
	assert.Equal(t, "pcs", row.Unit())
}

func TestRowCellBounds(t *testing.T) {
	row := matrix.NewRow([]string{"a", "b"})

	assert.Equal(t, "a", row.Cell(0))
	assert.Equal(t, "", row.Cell(5), "short row reads as empty")
	assert.Equal(t, "", row.Cell(-1))
	assert.Equal(t, 2, row.Width())

	var empty matrix.Row
	assert.Equal(t, "", empty.PartNumber())
	assert.Equal(t, 0, empty.Quantity())
}

// A row ending before the option columns has no options.
func TestRowOptions(t *testing.T) {
	tests := []struct {
		name  string
		cells []string
		want  []string
	}{
		{
			name: "placeholders filtered",
			cells: []string{
				"1", "", "", "", "CM123456", "", "", "", "", "3", "pcs",
				"red", "-", "", "nan", "wide",
			},
			want: []string{"red", "wide"},
		},
		{
			name:  "row without option columns",
			cells: []string{"1", "", "", "", "CM123456", "", "", "", "", "3", "pcs"},
			want:  nil,
		},
		{
			name: "whitespace-only option filtered",
			cells: []string{
				"1", "", "", "", "CM123456", "", "", "", "", "3", "pcs",
				"  ", "long",
			},
			want: []string{"long"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matrix.NewRow(tt.cells).Options())
		})
	}
}

// =============================================================================
// QUANTITY PARSING
// =============================================================================

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want int
	}{
		{"plain integer", "3", 3},
		{"decimal formatted", "3.0", 3},
		{"truncates fraction", "3.7", 3},
		{"surrounding whitespace", " 12 ", 12},
		{"empty", "", 0},
		{"unparseable", "abc", 0},
		{"nan placeholder", "nan", 0},
		{"zero", "0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matrix.ParseQuantity(tt.cell))
		})
	}
}

// =============================================================================
// TABLE
// =============================================================================

func testGrid() [][]string {
	return [][]string{
		{"No", "start part", "factory", "", "part number"},
		{"1", "FRAME12345", "F01", "", "FRAME12345"},
		{"2", "FRAME12345", "F01", "", "CM123456"},
		{"3", "FRAME12345", "F01", "", "A123456"},
		{"4", "FRAME12345", "F01", "", "CM123456"},
	}
}

func TestTableShape(t *testing.T) {
	table := matrix.NewTable(testGrid())

	assert.Equal(t, 5, table.RowCount())
	assert.Equal(t, "No", table.Header().No())
	assert.Len(t, table.DataRows(), 4)
	assert.Equal(t, "FRAME12345", table.DataRows()[0].PartNumber())
}

func TestTableDataRowsHeaderOnly(t *testing.T) {
	table := matrix.NewTable([][]string{{"No", "start part"}})
	assert.Nil(t, table.DataRows())
}

func TestFindDataRow(t *testing.T) {
	table := matrix.NewTable(testGrid())

	row, found := table.FindDataRow("A123456")
	assert.True(t, found)
	assert.Equal(t, "3", row.No())

	// Duplicate part numbers resolve to the first data row.
	row, found = table.FindDataRow("CM123456")
	assert.True(t, found)
	assert.Equal(t, "2", row.No())

	_, found = table.FindDataRow("CM999999")
	assert.False(t, found)

	// The header row never matches.
	_, found = table.FindDataRow("part number")
	assert.False(t, found)
}

func TestTableGrid(t *testing.T) {
	grid := testGrid()
	out := matrix.NewTable(grid).Grid()

	assert.Len(t, out, len(grid))
	for i, row := range grid {
		assert.Len(t, out[i], len(row))
		for j, cell := range row {
			assert.Equal(t, cell, out[i][j])
		}
	}
}

// =============================================================================
// FORMATTING
// =============================================================================

func TestFormatOptions(t *testing.T) {
	assert.Equal(t, "red / wide", matrix.FormatOptions([]string{"red", "wide"}))
	assert.Equal(t, "red", matrix.FormatOptions([]string{"red"}))
	assert.Equal(t, "", matrix.FormatOptions(nil))
}
