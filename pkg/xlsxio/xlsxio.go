// =============================================================================
// Picking List Generator - Spreadsheet I/O
// =============================================================================
//
// Thin spreadsheet services the pipeline calls: read a raw cell grid, build a
// multi-sheet result workbook, save it atomically, and generate timestamped
// output file names. No business logic lives here.
//
// =============================================================================

package xlsxio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// timestampFormat is the datetime portion of generated output file names.
const timestampFormat = "20060102_150405"

// =============================================================================
// READING
// =============================================================================

// ReadGrid reads the first sheet of a workbook as a raw cell grid. No header
// row is assumed; interpreting row 0 as a header is the caller's convention.
// A missing file surfaces as an error wrapping os.ErrNotExist so callers can
// classify it separately from a corrupt workbook.
func ReadGrid(path string) ([][]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("input file %s: %w", path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	grid, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q of %s: %w", sheet, path, err)
	}
	return grid, nil
}

// =============================================================================
// WRITING
// =============================================================================

// Sheet is one tabular sheet of the result workbook. Header may be nil for
// raw sheets written without a header row.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]interface{}
}

// Workbook accumulates sheets and saves them as a single workbook.
type Workbook struct {
	file   *excelize.File
	sheets int
}

// NewWorkbook creates an empty workbook builder.
func NewWorkbook() *Workbook {
	return &Workbook{file: excelize.NewFile()}
}

// File exposes the underlying workbook for callers that render styled sheets
// directly (the legacy order-entry renderer).
func (w *Workbook) File() *excelize.File { return w.file }

// AddSheet appends a sheet in order. The first sheet replaces the default
// sheet excelize creates.
func (w *Workbook) AddSheet(s Sheet) error {
	if err := w.createSheet(s.Name); err != nil {
		return err
	}

	rowIdx := 1
	if s.Header != nil {
		header := make([]interface{}, len(s.Header))
		for i, h := range s.Header {
			header[i] = h
		}
		if err := w.setRow(s.Name, rowIdx, header); err != nil {
			return err
		}
		rowIdx++
	}

	for _, row := range s.Rows {
		if err := w.setRow(s.Name, rowIdx, row); err != nil {
			return err
		}
		rowIdx++
	}
	return nil
}

// CreateSheet makes an empty named sheet, replacing the default sheet when it
// is the first one, and returns the workbook file for direct cell access.
func (w *Workbook) CreateSheet(name string) (*excelize.File, error) {
	if err := w.createSheet(name); err != nil {
		return nil, err
	}
	return w.file, nil
}

func (w *Workbook) createSheet(name string) error {
	if w.sheets == 0 {
		defaultName := w.file.GetSheetName(0)
		if err := w.file.SetSheetName(defaultName, name); err != nil {
			return fmt.Errorf("create sheet %q: %w", name, err)
		}
	} else {
		if _, err := w.file.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %q: %w", name, err)
		}
	}
	w.sheets++
	return nil
}

func (w *Workbook) setRow(sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := w.file.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d of sheet %q: %w", row, sheet, err)
	}
	return nil
}

// SaveAtomic writes the workbook to path via a uniquely named temp file in
// the same directory followed by a rename, so a failed save never leaves a
// partial result behind.
func (w *Workbook) SaveAtomic(path string) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.New().String()))

	if err := w.file.SaveAs(tmp); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("finalize workbook %s: %w", path, err)
	}
	return nil
}

// Close releases the underlying workbook resources.
func (w *Workbook) Close() error { return w.file.Close() }

// =============================================================================
// NAMING AND DIRECTORIES
// =============================================================================

// EnsureDir creates a directory (and parents) if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// BaseName returns a file's name without directory or extension.
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OutputFileName generates the timestamped result file name
// {inputBase}_{suffix}_{YYYYMMDD_HHMMSS}.xlsx.
func OutputFileName(inputPath, suffix string, now time.Time) string {
	return fmt.Sprintf("%s_%s_%s.xlsx", BaseName(inputPath), suffix, now.Format(timestampFormat))
}
