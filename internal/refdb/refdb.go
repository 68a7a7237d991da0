// =============================================================================
// Picking List Generator - Reference Resolver
// =============================================================================
//
// The resolver scans the matrix data rows twice, once per master catalog, and
// builds the two reference tables that drive the picking builders.
//
// Per row: screen the part-number cell (validity), classify it (CM before
// A-parts), and join it against the catalog of the pass. A part number absent
// from its catalog is logged as a warning and dropped; it does not appear in
// the reference table and does not consume a sequence number, so the emitted
// numbers are always a contiguous 1-based run.
//
// =============================================================================

package refdb

import (
	"github.com/hmiyake/picking-list-generator/internal/catalog"
	"github.com/hmiyake/picking-list-generator/internal/matrix"
	"github.com/hmiyake/picking-list-generator/internal/model"
	"github.com/hmiyake/picking-list-generator/internal/parts"
	"github.com/hmiyake/picking-list-generator/internal/syserr"
	"github.com/hmiyake/picking-list-generator/pkg/logging"
)

// Resolver builds the CM and A-parts reference tables from one matrix.
type Resolver struct {
	table  matrix.Table
	cm     *catalog.CMCatalog
	aParts *catalog.APartsCatalog
	log    logging.Logger
}

// NewResolver creates a resolver over an already-validated matrix and
// freshly loaded catalogs.
func NewResolver(table matrix.Table, cm *catalog.CMCatalog, aParts *catalog.APartsCatalog, log logging.Logger) *Resolver {
	if log == nil {
		log = logging.Nop()
	}
	return &Resolver{table: table, cm: cm, aParts: aParts, log: log}
}

// Resolve builds both reference tables. The tables may be empty but always
// carry their fixed schema.
func (r *Resolver) Resolve() (model.CMReferenceTable, model.APartsReferenceTable, error) {
	if r.cm == nil || r.aParts == nil {
		return nil, nil, syserr.New(syserr.ErrReferenceDB, "reference resolution requires both master catalogs")
	}

	r.log.Info("building CM reference table")
	cmRef := r.buildCMReference()
	r.log.Info("CM reference table: %d rows", len(cmRef))

	r.log.Info("building A-parts reference table")
	aRef := r.buildAPartsReference()
	r.log.Info("A-parts reference table: %d rows", len(aRef))

	return cmRef, aRef, nil
}

// buildCMReference performs the CM pass over the full matrix.
func (r *Resolver) buildCMReference() model.CMReferenceTable {
	refs := model.CMReferenceTable{}

	for _, row := range r.table.DataRows() {
		partNumber := row.PartNumber()

		if !parts.IsValidPartNumber(partNumber) {
			continue
		}
		if parts.Identify(partNumber) != parts.TypeCM {
			continue
		}

		entry, found := r.cm.Lookup(partNumber)
		if !found {
			r.log.Warn("part %s not in CM master catalog, dropped", partNumber)
			continue
		}

		refs = append(refs, model.CMReferenceRow{
			No:              len(refs) + 1,
			StartPart:       row.StartPart(),
			Factory:         row.Factory(),
			PartNumber:      partNumber,
			PartName:        row.PartName(),
			Spec:            row.Spec(),
			BoxCode:         entry.BoxCode,
			BoxName:         entry.BoxName,
			StorageLocation: entry.StorageLocation,
		})
	}

	if len(refs) == 0 {
		r.log.Warn("no CM parts found in matrix")
	}
	return refs
}

// buildAPartsReference performs the A-parts pass over the full matrix. The
// part name comes from the matrix row, not the catalog.
func (r *Resolver) buildAPartsReference() model.APartsReferenceTable {
	refs := model.APartsReferenceTable{}

	for _, row := range r.table.DataRows() {
		partNumber := row.PartNumber()

		if !parts.IsValidPartNumber(partNumber) {
			continue
		}
		if parts.Identify(partNumber) != parts.TypeAParts {
			continue
		}

		entry, found := r.aParts.Lookup(partNumber)
		if !found {
			r.log.Warn("part %s not in A-parts master catalog, dropped", partNumber)
			continue
		}

		refs = append(refs, model.APartsReferenceRow{
			No:              len(refs) + 1,
			StartPart:       row.StartPart(),
			Factory:         row.Factory(),
			PartNumber:      partNumber,
			PartName:        row.PartName(),
			StorageLocation: entry.StorageLocation,
			Rack:            entry.Rack,
			QuantityPerBox:  entry.QuantityPerBox,
		})
	}

	if len(refs) == 0 {
		r.log.Warn("no A-parts found in matrix")
	}
	return refs
}
