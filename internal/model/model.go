// =============================================================================
// Picking List Generator - Shared Types
// =============================================================================
//
// This package contains the row and result types shared by the pipeline
// stages. Keeping them here avoids import cycles between the resolver, the
// picking builders and the output writer.
//
// Every table is produced once by its owning stage and is read-only
// afterwards; no stage mutates a table it did not create.
//
// =============================================================================

package model

import "time"

// =============================================================================
// REFERENCE TABLES
// =============================================================================

// CMReferenceRow is the denormalized join of one CM-classified matrix row
// with its CM master catalog entry.
type CMReferenceRow struct {
	// No is the 1-based sequence number within the CM reference table.
	// It is gap-free: dropped source rows do not consume a number.
	No              int
	StartPart       string
	Factory         string
	PartNumber      string
	PartName        string
	Spec            string
	BoxCode         string
	BoxName         string
	StorageLocation string
}

// APartsReferenceRow is the denormalized join of one A-parts-classified
// matrix row with its A-parts master catalog entry.
type APartsReferenceRow struct {
	No              int
	StartPart       string
	Factory         string
	PartNumber      string
	PartName        string
	StorageLocation string
	Rack            string
	QuantityPerBox  int
}

// CMReferenceTable is an ordered CM reference table.
type CMReferenceTable []CMReferenceRow

// APartsReferenceTable is an ordered A-parts reference table.
type APartsReferenceTable []APartsReferenceRow

// Header returns the fixed column schema, present even when the table is empty.
func (CMReferenceTable) Header() []string {
	return []string{
		"No", "Start Part", "Factory", "Part Number", "Part Name", "Spec",
		"Box Code", "Box Name", "Storage Location",
	}
}

// Records returns the rows as writable cell values, one slice per row.
func (t CMReferenceTable) Records() [][]interface{} {
	records := make([][]interface{}, 0, len(t))
	for _, r := range t {
		records = append(records, []interface{}{
			r.No, r.StartPart, r.Factory, r.PartNumber, r.PartName, r.Spec,
			r.BoxCode, r.BoxName, r.StorageLocation,
		})
	}
	return records
}

// Header returns the fixed column schema, present even when the table is empty.
func (APartsReferenceTable) Header() []string {
	return []string{
		"No", "Start Part", "Factory", "Part Number", "Part Name",
		"Storage Location", "Rack", "Qty Per Box",
	}
}

// Records returns the rows as writable cell values, one slice per row.
func (t APartsReferenceTable) Records() [][]interface{} {
	records := make([][]interface{}, 0, len(t))
	for _, r := range t {
		records = append(records, []interface{}{
			r.No, r.StartPart, r.Factory, r.PartNumber, r.PartName,
			r.StorageLocation, r.Rack, r.QuantityPerBox,
		})
	}
	return records
}

// =============================================================================
// PICKING TABLES
// =============================================================================

// CMPickingRow is a CM reference row enriched with quantity and options
// re-pulled from the matrix, ready for warehouse picking.
type CMPickingRow struct {
	No              int
	StartPart       string
	Factory         string
	PartNumber      string
	PartName        string
	Spec            string
	Quantity        int
	BoxCode         string
	BoxName         string
	StorageLocation string
	// Options is the formatted option string, option cells joined by " / ".
	Options string
}

// APartsPickingRow is an A-parts reference row enriched with quantity,
// options and the derived required-boxes count.
type APartsPickingRow struct {
	No              int
	StartPart       string
	Factory         string
	PartNumber      string
	PartName        string
	Quantity        int
	StorageLocation string
	Rack            string
	QuantityPerBox  int
	// RequiredBoxes is ceil(Quantity / QuantityPerBox), 0 when
	// QuantityPerBox is not positive.
	RequiredBoxes int
	Options       string
}

// APartsValidationRow records the box arithmetic check for one A-parts
// picking row. Validation row i corresponds to picking row i.
type APartsValidationRow struct {
	No               int
	PartNumber       string
	RequiredQuantity int
	QuantityPerBox   int
	RequiredBoxes    int
	// ActualQuantity is RequiredBoxes * QuantityPerBox.
	ActualQuantity int
	// Difference is ActualQuantity - RequiredQuantity; negative means the
	// picked boxes cannot cover the requirement.
	Difference int
	// Verdict is "OK" when Difference >= 0, otherwise "NG".
	Verdict string
}

// CMPickingTable is an ordered CM picking table.
type CMPickingTable []CMPickingRow

// APartsPickingTable is an ordered A-parts picking table.
type APartsPickingTable []APartsPickingRow

// APartsValidationTable is index-aligned with its APartsPickingTable.
type APartsValidationTable []APartsValidationRow

// Header returns the fixed column schema, present even when the table is empty.
func (CMPickingTable) Header() []string {
	return []string{
		"No", "Start Part", "Factory", "Part Number", "Part Name", "Spec",
		"Quantity", "Box Code", "Box Name", "Storage Location", "Options",
	}
}

// Records returns the rows as writable cell values, one slice per row.
func (t CMPickingTable) Records() [][]interface{} {
	records := make([][]interface{}, 0, len(t))
	for _, r := range t {
		records = append(records, []interface{}{
			r.No, r.StartPart, r.Factory, r.PartNumber, r.PartName, r.Spec,
			r.Quantity, r.BoxCode, r.BoxName, r.StorageLocation, r.Options,
		})
	}
	return records
}

// Header returns the fixed column schema, present even when the table is empty.
func (APartsPickingTable) Header() []string {
	return []string{
		"No", "Start Part", "Factory", "Part Number", "Part Name", "Quantity",
		"Storage Location", "Rack", "Qty Per Box", "Required Boxes", "Options",
	}
}

// Records returns the rows as writable cell values, one slice per row.
func (t APartsPickingTable) Records() [][]interface{} {
	records := make([][]interface{}, 0, len(t))
	for _, r := range t {
		records = append(records, []interface{}{
			r.No, r.StartPart, r.Factory, r.PartNumber, r.PartName, r.Quantity,
			r.StorageLocation, r.Rack, r.QuantityPerBox, r.RequiredBoxes, r.Options,
		})
	}
	return records
}

// Header returns the fixed column schema, present even when the table is empty.
func (APartsValidationTable) Header() []string {
	return []string{
		"No", "Part Number", "Required Qty", "Qty Per Box", "Required Boxes",
		"Actual Qty", "Difference", "Verdict",
	}
}

// Records returns the rows as writable cell values, one slice per row.
func (t APartsValidationTable) Records() [][]interface{} {
	records := make([][]interface{}, 0, len(t))
	for _, r := range t {
		records = append(records, []interface{}{
			r.No, r.PartNumber, r.RequiredQuantity, r.QuantityPerBox,
			r.RequiredBoxes, r.ActualQuantity, r.Difference, r.Verdict,
		})
	}
	return records
}

// =============================================================================
// ORDER LINES
// =============================================================================

// OrderLine is one flattened order line for the legacy ordering system.
type OrderLine struct {
	// DocumentNumber is shared by every line of one run.
	DocumentNumber string
	// LineNumber is 1-based and contiguous across the CM block followed by
	// the A-parts block.
	LineNumber   int
	PartNumber   string
	Quantity     int
	Unit         string
	DeliveryDate string
	Remarks      string
}

// =============================================================================
// VALIDATION REPORT
// =============================================================================

// ValidationReport is the outcome of the input validator stage.
type ValidationReport struct {
	// Valid is true only when Errors is empty; warnings never block.
	Valid           bool
	Errors          []string
	Warnings        []string
	FramePartNumber string
}

// AddError appends an error and marks the report invalid.
func (r *ValidationReport) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Valid = false
}

// AddWarning appends a warning. Warnings do not affect validity.
func (r *ValidationReport) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// =============================================================================
// RUN RESULT
// =============================================================================

// Result is the outcome of one pipeline run. Both success and failure are
// reported through a Result; the process never surfaces a bare panic.
type Result struct {
	RunID              string
	Success            bool
	Message            string
	OutputFile         string
	CMPickingCount     int
	APartsPickingCount int
	Errors             []string
	Warnings           []string
	Elapsed            time.Duration
}
