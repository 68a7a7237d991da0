// =============================================================================
// Picking List Generator - A-Parts Picking Builder
// =============================================================================
//
// Same re-join as the CM builder, plus box arithmetic: required boxes is the
// ceiling of quantity over quantity-per-box. Every picking row also emits a
// validation row recomputing the quantity from whole boxes; the verdict is NG
// exactly when the recomputed quantity falls short of the requirement. The
// two tables are index-aligned row for row.
//
// =============================================================================

package picking

import (
	"github.com/hmiyake/picking-list-generator/internal/matrix"
	"github.com/hmiyake/picking-list-generator/internal/model"
	"github.com/hmiyake/picking-list-generator/internal/parts"
	"github.com/hmiyake/picking-list-generator/internal/syserr"
	"github.com/hmiyake/picking-list-generator/pkg/logging"
)

// Verdict values of the A-parts validation table.
const (
	VerdictOK = "OK"
	VerdictNG = "NG"
)

// APartsBuilder builds the A-parts picking and validation tables.
type APartsBuilder struct {
	table matrix.Table
	refs  model.APartsReferenceTable
	log   logging.Logger
}

// NewAPartsBuilder creates a builder over the matrix and its A-parts
// reference table.
func NewAPartsBuilder(table matrix.Table, refs model.APartsReferenceTable, log logging.Logger) *APartsBuilder {
	if log == nil {
		log = logging.Nop()
	}
	return &APartsBuilder{table: table, refs: refs, log: log}
}

// Build produces the picking table and its index-aligned validation table in
// reference order. Both may be empty but always carry their fixed schemas.
func (b *APartsBuilder) Build() (model.APartsPickingTable, model.APartsValidationTable, error) {
	if b.table.RowCount() == 0 {
		return nil, nil, syserr.New(syserr.ErrProcessing, "A-parts picking requires a matrix table")
	}

	rows := model.APartsPickingTable{}
	checks := model.APartsValidationTable{}

	for _, ref := range b.refs {
		matrixRow, found := b.table.FindDataRow(ref.PartNumber)
		if !found {
			b.log.Warn("part %s not found in matrix, picking row skipped", ref.PartNumber)
			continue
		}

		quantity := matrixRow.Quantity()
		requiredBoxes := parts.RequiredBoxes(quantity, ref.QuantityPerBox)

		row := model.APartsPickingRow{
			No:              len(rows) + 1,
			StartPart:       ref.StartPart,
			Factory:         ref.Factory,
			PartNumber:      ref.PartNumber,
			PartName:        ref.PartName,
			Quantity:        quantity,
			StorageLocation: ref.StorageLocation,
			Rack:            ref.Rack,
			QuantityPerBox:  ref.QuantityPerBox,
			RequiredBoxes:   requiredBoxes,
			Options:         matrix.FormatOptions(matrixRow.Options()),
		}
		rows = append(rows, row)
		checks = append(checks, validationRow(row))
	}

	b.log.Info("A-parts picking table: %d rows", len(rows))
	return rows, checks, nil
}

// validationRow recomputes the quantity covered by whole boxes and records
// the surplus or deficit against the requirement.
func validationRow(row model.APartsPickingRow) model.APartsValidationRow {
	actual := row.RequiredBoxes * row.QuantityPerBox
	difference := actual - row.Quantity

	verdict := VerdictOK
	if difference < 0 {
		verdict = VerdictNG
	}

	return model.APartsValidationRow{
		No:               row.No,
		PartNumber:       row.PartNumber,
		RequiredQuantity: row.Quantity,
		QuantityPerBox:   row.QuantityPerBox,
		RequiredBoxes:    row.RequiredBoxes,
		ActualQuantity:   actual,
		Difference:       difference,
		Verdict:          verdict,
	}
}
