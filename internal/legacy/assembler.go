// =============================================================================
// Picking List Generator - Legacy Order-Entry Assembler
// =============================================================================
//
// Flattens the CM and A-parts picking tables into the ordered line list the
// legacy "720" ordering system imports, and renders it as a styled sheet.
//
// All time-derived values are fixed when the assembler is constructed, so
// every line of one run shares the same document number and delivery date.
// The document-number sequence suffix is a constant "001": two runs on the
// same calendar day produce the same document number. That matches the
// upstream system's observed behavior and must not change without product
// clarification.
//
// =============================================================================

package legacy

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/hmiyake/picking-list-generator/internal/matrix"
	"github.com/hmiyake/picking-list-generator/internal/model"
	"github.com/hmiyake/picking-list-generator/internal/syserr"
	"github.com/hmiyake/picking-list-generator/pkg/logging"
	"github.com/hmiyake/picking-list-generator/pkg/xlsxio"
)

// SheetName is the rendered order-entry sheet.
const SheetName = "Order Entry"

// UnitLabel is the fixed single-item unit on every order line.
const UnitLabel = "EA"

// documentSequence is the fixed sequence suffix of the document number.
const documentSequence = "001"

// deliveryLeadDays is added to the run date to produce the delivery date.
const deliveryLeadDays = 7

// columnHeaders is the fixed 7-column schema of the order-entry sheet.
var columnHeaders = []string{
	"Document No", "Line No", "Part Number", "Quantity", "Unit",
	"Delivery Date", "Remarks",
}

// columnWidths are the fixed display widths, one per schema column.
var columnWidths = []float64{15, 8, 20, 8, 6, 12, 30}

// =============================================================================
// ASSEMBLER
// =============================================================================

// Assembler turns picking tables into legacy order lines.
type Assembler struct {
	framePartNumber string
	cmPicking       model.CMPickingTable
	aPartsPicking   model.APartsPickingTable
	// table is the full matrix, carried for future extension; current
	// assembly reads only the picking tables.
	table matrix.Table
	log   logging.Logger

	documentNumber string
	deliveryDate   string
}

// NewAssembler fixes the document number and delivery date from now and
// captures the inputs. aPartsPicking is nil in CM-only mode.
func NewAssembler(
	framePartNumber string,
	cmPicking model.CMPickingTable,
	aPartsPicking model.APartsPickingTable,
	table matrix.Table,
	now time.Time,
	log logging.Logger,
) *Assembler {
	if log == nil {
		log = logging.Nop()
	}
	return &Assembler{
		framePartNumber: framePartNumber,
		cmPicking:       cmPicking,
		aPartsPicking:   aPartsPicking,
		table:           table,
		log:             log,
		documentNumber:  DocumentNumber(now),
		deliveryDate:    DeliveryDate(now),
	}
}

// DocumentNumber returns {YYYYMMDD}-{fixed sequence} for a run date.
func DocumentNumber(now time.Time) string {
	return fmt.Sprintf("%s-%s", now.Format("20060102"), documentSequence)
}

// DeliveryDate returns the shared delivery date, run date plus the fixed
// lead time, as YYYY-MM-DD.
func DeliveryDate(now time.Time) string {
	return now.AddDate(0, 0, deliveryLeadDays).Format("2006-01-02")
}

// Lines emits the ordered line list: every CM picking row first, then every
// A-parts picking row, with 1-based line numbers contiguous across both
// blocks.
func (a *Assembler) Lines() []model.OrderLine {
	lines := make([]model.OrderLine, 0, len(a.cmPicking)+len(a.aPartsPicking))

	lineNumber := 1
	for _, row := range a.cmPicking {
		lines = append(lines, model.OrderLine{
			DocumentNumber: a.documentNumber,
			LineNumber:     lineNumber,
			PartNumber:     row.PartNumber,
			Quantity:       row.Quantity,
			Unit:           UnitLabel,
			DeliveryDate:   a.deliveryDate,
			Remarks:        row.Options,
		})
		lineNumber++
	}

	for _, row := range a.aPartsPicking {
		lines = append(lines, model.OrderLine{
			DocumentNumber: a.documentNumber,
			LineNumber:     lineNumber,
			PartNumber:     row.PartNumber,
			Quantity:       row.Quantity,
			Unit:           UnitLabel,
			DeliveryDate:   a.deliveryDate,
			Remarks:        row.Options,
		})
		lineNumber++
	}

	a.log.Info("order entry: %d lines under document %s", len(lines), a.documentNumber)
	return lines
}

// =============================================================================
// SHEET RENDERING
// =============================================================================

// Render writes the order-entry sheet into the result workbook: bold
// centered bordered header, left-aligned bordered data cells, fixed column
// widths.
func (a *Assembler) Render(wb *xlsxio.Workbook) error {
	lines := a.Lines()

	f, err := wb.CreateSheet(SheetName)
	if err != nil {
		return syserr.Wrap(syserr.ErrOutput, "failed to create order entry sheet", err)
	}

	thin := []excelize.Border{
		{Type: "left", Style: 1},
		{Type: "right", Style: 1},
		{Type: "top", Style: 1},
		{Type: "bottom", Style: 1},
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thin,
	})
	if err != nil {
		return syserr.Wrap(syserr.ErrOutput, "failed to build header style", err)
	}

	cellStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Border:    thin,
	})
	if err != nil {
		return syserr.Wrap(syserr.ErrOutput, "failed to build cell style", err)
	}

	for col, header := range columnHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return syserr.Wrap(syserr.ErrOutput, "failed to address header cell", err)
		}
		if err := f.SetCellValue(SheetName, cell, header); err != nil {
			return syserr.Wrap(syserr.ErrOutput, "failed to write header cell", err)
		}
		if err := f.SetCellStyle(SheetName, cell, cell, headerStyle); err != nil {
			return syserr.Wrap(syserr.ErrOutput, "failed to style header cell", err)
		}
	}

	for i, line := range lines {
		values := []interface{}{
			line.DocumentNumber, line.LineNumber, line.PartNumber,
			line.Quantity, line.Unit, line.DeliveryDate, line.Remarks,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return syserr.Wrap(syserr.ErrOutput, "failed to address data cell", err)
			}
			if err := f.SetCellValue(SheetName, cell, value); err != nil {
				return syserr.Wrap(syserr.ErrOutput, "failed to write data cell", err)
			}
			if err := f.SetCellStyle(SheetName, cell, cell, cellStyle); err != nil {
				return syserr.Wrap(syserr.ErrOutput, "failed to style data cell", err)
			}
		}
	}

	for col, width := range columnWidths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return syserr.Wrap(syserr.ErrOutput, "failed to address column", err)
		}
		if err := f.SetColWidth(SheetName, name, name, width); err != nil {
			return syserr.Wrap(syserr.ErrOutput, "failed to set column width", err)
		}
	}

	return nil
}
