// =============================================================================
// Picking List Generator - CM Picking Builder
// =============================================================================
//
// Each CM reference row is re-joined to its originating matrix row by part
// number to pull quantity and options, producing one picking row. A reference
// row whose part number no longer matches a matrix row is logged and skipped;
// picking numbers are assigned in emission order after that filter, so they
// stay contiguous.
//
// =============================================================================

package picking

import (
	"github.com/hmiyake/picking-list-generator/internal/matrix"
	"github.com/hmiyake/picking-list-generator/internal/model"
	"github.com/hmiyake/picking-list-generator/internal/syserr"
	"github.com/hmiyake/picking-list-generator/pkg/logging"
)

// CMBuilder builds the CM picking table.
type CMBuilder struct {
	table matrix.Table
	refs  model.CMReferenceTable
	log   logging.Logger
}

// NewCMBuilder creates a builder over the matrix and its CM reference table.
func NewCMBuilder(table matrix.Table, refs model.CMReferenceTable, log logging.Logger) *CMBuilder {
	if log == nil {
		log = logging.Nop()
	}
	return &CMBuilder{table: table, refs: refs, log: log}
}

// Build produces the CM picking table in reference order. The table may be
// empty but always carries its fixed schema.
func (b *CMBuilder) Build() (model.CMPickingTable, error) {
	if b.table.RowCount() == 0 {
		return nil, syserr.New(syserr.ErrProcessing, "CM picking requires a matrix table")
	}

	rows := model.CMPickingTable{}
	for _, ref := range b.refs {
		matrixRow, found := b.table.FindDataRow(ref.PartNumber)
		if !found {
			b.log.Warn("part %s not found in matrix, picking row skipped", ref.PartNumber)
			continue
		}

		rows = append(rows, model.CMPickingRow{
			No:              len(rows) + 1,
			StartPart:       ref.StartPart,
			Factory:         ref.Factory,
			PartNumber:      ref.PartNumber,
			PartName:        ref.PartName,
			Spec:            ref.Spec,
			Quantity:        matrixRow.Quantity(),
			BoxCode:         ref.BoxCode,
			BoxName:         ref.BoxName,
			StorageLocation: ref.StorageLocation,
			Options:         matrix.FormatOptions(matrixRow.Options()),
		})
	}

	b.log.Info("CM picking table: %d rows", len(rows))
	return rows, nil
}
