// =============================================================================
// Picking List Generator - Master Catalogs
// =============================================================================
//
// Two independently loaded lookup tables back the reference resolver:
//
//   - CM catalog:      part number -> (box code, box name, storage location)
//   - A-parts catalog: part number -> (part name, storage location, rack,
//                      quantity per box)
//
// Each catalog lives in its own spreadsheet on a named sheet with a header
// row; columns are addressed by header name, not position. Catalogs are read
// fresh on every run and are immutable afterwards. Duplicate part numbers
// keep the first occurrence.
//
// =============================================================================

package catalog

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/hmiyake/picking-list-generator/internal/matrix"
)

// =============================================================================
// SOURCES
// =============================================================================

// Source identifies one catalog spreadsheet.
type Source struct {
	File  string
	Sheet string
}

// CMColumns names the header cells of the CM catalog sheet.
type CMColumns struct {
	PartNumber      string
	BoxCode         string
	BoxName         string
	StorageLocation string
}

// APartsColumns names the header cells of the A-parts catalog sheet.
type APartsColumns struct {
	PartNumber      string
	PartName        string
	StorageLocation string
	Rack            string
	QuantityPerBox  string
}

// =============================================================================
// ENTRIES
// =============================================================================

// CMEntry is one CM catalog record.
type CMEntry struct {
	BoxCode         string
	BoxName         string
	StorageLocation string
}

// APartsEntry is one A-parts catalog record.
type APartsEntry struct {
	PartName        string
	StorageLocation string
	Rack            string
	QuantityPerBox  int
}

// =============================================================================
// CATALOGS
// =============================================================================

// CMCatalog is the loaded CM master catalog.
type CMCatalog struct {
	entries map[string]CMEntry
}

// NewCMCatalog builds a catalog from already-resolved entries. Used by tests
// and by callers that source entries elsewhere.
func NewCMCatalog(entries map[string]CMEntry) *CMCatalog {
	if entries == nil {
		entries = make(map[string]CMEntry)
	}
	return &CMCatalog{entries: entries}
}

// Lookup returns the entry for a part number.
func (c *CMCatalog) Lookup(partNumber string) (CMEntry, bool) {
	e, ok := c.entries[partNumber]
	return e, ok
}

// Len returns the number of entries.
func (c *CMCatalog) Len() int { return len(c.entries) }

// APartsCatalog is the loaded A-parts master catalog.
type APartsCatalog struct {
	entries map[string]APartsEntry
}

// NewAPartsCatalog builds a catalog from already-resolved entries.
func NewAPartsCatalog(entries map[string]APartsEntry) *APartsCatalog {
	if entries == nil {
		entries = make(map[string]APartsEntry)
	}
	return &APartsCatalog{entries: entries}
}

// Lookup returns the entry for a part number.
func (c *APartsCatalog) Lookup(partNumber string) (APartsEntry, bool) {
	e, ok := c.entries[partNumber]
	return e, ok
}

// Len returns the number of entries.
func (c *APartsCatalog) Len() int { return len(c.entries) }

// =============================================================================
// LOADING
// =============================================================================

// LoadCM reads the CM master catalog.
func LoadCM(src Source, cols CMColumns) (*CMCatalog, error) {
	rows, index, err := readSheet(src, []string{
		cols.PartNumber, cols.BoxCode, cols.BoxName, cols.StorageLocation,
	})
	if err != nil {
		return nil, err
	}

	entries := make(map[string]CMEntry)
	for _, row := range rows {
		partNumber := row.Cell(index[cols.PartNumber])
		if partNumber == "" {
			continue
		}
		if _, exists := entries[partNumber]; exists {
			// First occurrence wins.
			continue
		}
		entries[partNumber] = CMEntry{
			BoxCode:         row.Cell(index[cols.BoxCode]),
			BoxName:         row.Cell(index[cols.BoxName]),
			StorageLocation: row.Cell(index[cols.StorageLocation]),
		}
	}
	return NewCMCatalog(entries), nil
}

// LoadAParts reads the A-parts master catalog.
func LoadAParts(src Source, cols APartsColumns) (*APartsCatalog, error) {
	rows, index, err := readSheet(src, []string{
		cols.PartNumber, cols.PartName, cols.StorageLocation, cols.Rack,
		cols.QuantityPerBox,
	})
	if err != nil {
		return nil, err
	}

	entries := make(map[string]APartsEntry)
	for _, row := range rows {
		partNumber := row.Cell(index[cols.PartNumber])
		if partNumber == "" {
			continue
		}
		if _, exists := entries[partNumber]; exists {
			continue
		}
		entries[partNumber] = APartsEntry{
			PartName:        row.Cell(index[cols.PartName]),
			StorageLocation: row.Cell(index[cols.StorageLocation]),
			Rack:            row.Cell(index[cols.Rack]),
			QuantityPerBox:  matrix.ParseQuantity(row.Cell(index[cols.QuantityPerBox])),
		}
	}
	return NewAPartsCatalog(entries), nil
}

// readSheet opens a catalog sheet and maps the required header names to
// column positions. The header row is row 0 of the named sheet.
func readSheet(src Source, required []string) ([]matrix.Row, map[string]int, error) {
	if _, err := os.Stat(src.File); err != nil {
		return nil, nil, fmt.Errorf("catalog file %s: %w", src.File, err)
	}

	f, err := excelize.OpenFile(src.File)
	if err != nil {
		return nil, nil, fmt.Errorf("open catalog %s: %w", src.File, err)
	}
	defer f.Close()

	grid, err := f.GetRows(src.Sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q of %s: %w", src.Sheet, src.File, err)
	}
	if len(grid) == 0 {
		return nil, nil, fmt.Errorf("sheet %q of %s is empty", src.Sheet, src.File)
	}

	header := matrix.NewRow(grid[0])
	index := make(map[string]int, len(required))
	for _, name := range required {
		col, found := -1, false
		for i := 0; i < header.Width(); i++ {
			if header.Cell(i) == name {
				col, found = i, true
				break
			}
		}
		if !found {
			return nil, nil, fmt.Errorf("sheet %q of %s: missing column %q", src.Sheet, src.File, name)
		}
		index[name] = col
	}

	rows := make([]matrix.Row, 0, len(grid)-1)
	for _, cells := range grid[1:] {
		rows = append(rows, matrix.NewRow(cells))
	}
	return rows, index, nil
}
