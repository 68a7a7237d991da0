// =============================================================================
// Picking List Generator - Input Validator
// =============================================================================
//
// Validates the matrix table's shape and header row before any processing.
// Every problem is collected, not just the first: one error per mismatched
// header cell and one per missing column, so the operator can fix the
// document in a single pass.
//
// The frame part number is cross-checked against the input file's base name;
// a mismatch of the first ten characters is a warning, never an error.
//
// =============================================================================

package pipeline

import (
	"fmt"

	"github.com/hmiyake/picking-list-generator/internal/matrix"
	"github.com/hmiyake/picking-list-generator/internal/model"
	"github.com/hmiyake/picking-list-generator/pkg/xlsxio"
)

// requiredHeader is one fixed header-cell expectation.
type requiredHeader struct {
	col   int
	label string
}

// requiredHeaders is the fixed header contract of the matrix document,
// checked in column order. Comparison is whitespace-trimmed and
// case-sensitive.
var requiredHeaders = []requiredHeader{
	{col: matrix.ColNo, label: "No"},
	{col: matrix.ColStartPart, label: "start part"},
	{col: matrix.ColFactory, label: "factory"},
	{col: matrix.ColPartNumber, label: "part number"},
}

// framePrefixLength is how many leading characters of the file name and the
// frame part number must agree before the filename warning fires.
const framePrefixLength = 10

// Validate checks the matrix table and extracts the frame part number.
// The report is valid only when no errors were recorded; warnings never
// block.
func Validate(table matrix.Table, inputPath string) model.ValidationReport {
	report := model.ValidationReport{Valid: true}

	if table.RowCount() < 2 {
		report.AddError("no data rows in matrix")
		return report
	}

	header := table.Header()
	for _, want := range requiredHeaders {
		if want.col >= header.Width() {
			report.AddError(fmt.Sprintf("column %d is missing", want.col+1))
			continue
		}
		actual := header.Cell(want.col)
		if actual != want.label {
			report.AddError(fmt.Sprintf(
				"column %d header mismatch (expected %q, got %q)", want.col+1, want.label, actual))
		}
	}
	if !report.Valid {
		return report
	}

	framePartNumber := table.Row(1).PartNumber()
	if framePartNumber == "" {
		report.AddError("frame part number is missing")
		return report
	}
	report.FramePartNumber = framePartNumber

	filePrefix := prefix(xlsxio.BaseName(inputPath), framePrefixLength)
	framePrefix := prefix(framePartNumber, framePrefixLength)
	if filePrefix != framePrefix {
		report.AddWarning(fmt.Sprintf(
			"file name does not match frame part number (file: %q, frame: %q)", filePrefix, framePrefix))
	}

	return report
}

// prefix returns the first n runes of s.
func prefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
