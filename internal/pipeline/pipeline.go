// =============================================================================
// Picking List Generator - Pipeline
// =============================================================================
//
// Orchestrates one run over one input file, strictly forward:
//
//   1. Read the matrix and validate its header and shape
//   2. Load the master catalogs and resolve the reference tables
//   3. Build the CM picking table (and A-parts tables in full-line mode)
//   4. Assemble the legacy order-entry sheet
//   5. Write everything as one multi-sheet result workbook
//
// Each stage fully consumes its input before the next starts; tables are
// never mutated after creation. Per-row problems are logged warnings; only
// structural problems abort the run, and both outcomes are reported through
// a Result rather than a crash.
//
// =============================================================================

package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/hmiyake/picking-list-generator/internal/catalog"
	"github.com/hmiyake/picking-list-generator/internal/config"
	"github.com/hmiyake/picking-list-generator/internal/legacy"
	"github.com/hmiyake/picking-list-generator/internal/matrix"
	"github.com/hmiyake/picking-list-generator/internal/model"
	"github.com/hmiyake/picking-list-generator/internal/picking"
	"github.com/hmiyake/picking-list-generator/internal/refdb"
	"github.com/hmiyake/picking-list-generator/internal/syserr"
	"github.com/hmiyake/picking-list-generator/pkg/logging"
	"github.com/hmiyake/picking-list-generator/pkg/xlsxio"
)

// Line selects which picking tables a run produces.
type Line string

const (
	// LineFull produces CM and A-parts picking.
	LineFull Line = "A"

	// LineCMOnly produces CM picking only.
	LineCMOnly Line = "C"
)

// Result workbook sheet names. The order-entry sheet name lives in the
// legacy package.
const (
	sheetMatrix           = "Matrix"
	sheetCMReference      = "CM Reference"
	sheetCMPicking        = "CM Picking"
	sheetAPartsReference  = "A-Parts Reference"
	sheetAPartsPicking    = "A-Parts Picking"
	sheetAPartsValidation = "A-Parts Validation"
)

// Runner executes the pipeline for one input file.
type Runner struct {
	inputPath string
	line      Line
	cfg       *config.Config
	log       logging.Logger

	// now is injectable for deterministic document numbers and delivery
	// dates in tests.
	now func() time.Time
}

// New creates a Runner.
func New(inputPath string, line Line, cfg *config.Config, log logging.Logger) *Runner {
	if log == nil {
		log = logging.Nop()
	}
	return &Runner{
		inputPath: inputPath,
		line:      line,
		cfg:       cfg,
		log:       log,
		now:       time.Now,
	}
}

// WithClock overrides the wall clock. Tests only.
func (r *Runner) WithClock(now func() time.Time) *Runner {
	r.now = now
	return r
}

// Run executes all stages and reports the outcome. It never panics outward:
// known failures carry their error kind, and anything else is reported as
// unexpected.
func (r *Runner) Run() model.Result {
	start := time.Now()
	runID := uuid.New().String()

	r.log.Info("picking list generation started (run %s)", runID)
	r.log.Info("input file: %s, line mode: %s", r.inputPath, r.line)

	result := r.run(runID)
	result.RunID = runID
	result.Elapsed = time.Since(start)

	if result.Success {
		r.log.Info("picking list generation finished in %s", result.Elapsed)
	} else {
		r.log.Error("picking list generation failed: %s", result.Message)
	}
	return result
}

func (r *Runner) run(runID string) model.Result {
	// Stage 1: read and validate the matrix.
	table, report, err := r.loadAndValidate()
	if err != nil {
		return failure(err)
	}
	if !report.Valid {
		return model.Result{
			Success:  false,
			Message:  "input validation failed",
			Errors:   report.Errors,
			Warnings: report.Warnings,
		}
	}
	r.log.Info("frame part number: %s", report.FramePartNumber)

	// Stage 2: catalogs and reference tables.
	cmCatalog, aPartsCatalog, err := r.loadCatalogs()
	if err != nil {
		return failure(err)
	}

	resolver := refdb.NewResolver(table, cmCatalog, aPartsCatalog, r.log)
	cmRef, aRef, err := resolver.Resolve()
	if err != nil {
		return failure(err)
	}

	// Stage 3: picking tables.
	cmPicking, err := picking.NewCMBuilder(table, cmRef, r.log).Build()
	if err != nil {
		return failure(err)
	}

	var aPicking model.APartsPickingTable
	var aValidation model.APartsValidationTable
	if r.line == LineFull {
		aPicking, aValidation, err = picking.NewAPartsBuilder(table, aRef, r.log).Build()
		if err != nil {
			return failure(err)
		}
	}

	// Stage 4 + 5: order-entry assembly and workbook output.
	assembler := legacy.NewAssembler(
		report.FramePartNumber, cmPicking, aPicking, table, r.now(), r.log)

	outputPath, err := r.writeResult(table, cmRef, cmPicking, aRef, aPicking, aValidation, assembler)
	if err != nil {
		return failure(err)
	}

	r.log.Info("result written to %s", outputPath)
	return model.Result{
		Success:            true,
		Message:            "processing completed",
		OutputFile:         outputPath,
		CMPickingCount:     len(cmPicking),
		APartsPickingCount: len(aPicking),
		Warnings:           report.Warnings,
	}
}

// loadAndValidate reads the raw grid and runs the input validator.
func (r *Runner) loadAndValidate() (matrix.Table, model.ValidationReport, error) {
	grid, err := xlsxio.ReadGrid(r.inputPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return matrix.Table{}, model.ValidationReport{},
				syserr.Wrap(syserr.ErrFileNotFound, fmt.Sprintf("input file does not exist: %s", r.inputPath), err)
		}
		return matrix.Table{}, model.ValidationReport{},
			syserr.Wrap(syserr.ErrInvalidFileFormat, "failed to read input workbook", err)
	}

	table := matrix.NewTable(grid)
	r.log.Debug("matrix: %d rows", table.RowCount())

	report := Validate(table, r.inputPath)
	for _, w := range report.Warnings {
		r.log.Warn("%s", w)
	}
	for _, e := range report.Errors {
		r.log.Error("%s", e)
	}
	return table, report, nil
}

// loadCatalogs reads both master catalogs fresh for this run.
func (r *Runner) loadCatalogs() (*catalog.CMCatalog, *catalog.APartsCatalog, error) {
	cmCfg := r.cfg.Master.CM
	r.log.Info("loading CM master catalog: %s", cmCfg.File)
	cmCatalog, err := catalog.LoadCM(
		catalog.Source{File: cmCfg.File, Sheet: cmCfg.Sheet},
		catalog.CMColumns{
			PartNumber:      cmCfg.Columns.PartNumber,
			BoxCode:         cmCfg.Columns.BoxCode,
			BoxName:         cmCfg.Columns.BoxName,
			StorageLocation: cmCfg.Columns.StorageLocation,
		})
	if err != nil {
		return nil, nil, syserr.Wrap(syserr.ErrMasterCatalog, "failed to load CM master catalog", err)
	}
	r.log.Debug("CM master catalog: %d entries", cmCatalog.Len())

	aCfg := r.cfg.Master.AParts
	r.log.Info("loading A-parts master catalog: %s", aCfg.File)
	aPartsCatalog, err := catalog.LoadAParts(
		catalog.Source{File: aCfg.File, Sheet: aCfg.Sheet},
		catalog.APartsColumns{
			PartNumber:      aCfg.Columns.PartNumber,
			PartName:        aCfg.Columns.PartName,
			StorageLocation: aCfg.Columns.StorageLocation,
			Rack:            aCfg.Columns.Rack,
			QuantityPerBox:  aCfg.Columns.QuantityPerBox,
		})
	if err != nil {
		return nil, nil, syserr.Wrap(syserr.ErrMasterCatalog, "failed to load A-parts master catalog", err)
	}
	r.log.Debug("A-parts master catalog: %d entries", aPartsCatalog.Len())

	return cmCatalog, aPartsCatalog, nil
}

// writeResult renders every sheet of the result workbook and saves it
// atomically. Sheet order is fixed; optional A-parts sheets appear only in
// full-line mode and only when non-empty.
func (r *Runner) writeResult(
	table matrix.Table,
	cmRef model.CMReferenceTable,
	cmPicking model.CMPickingTable,
	aRef model.APartsReferenceTable,
	aPicking model.APartsPickingTable,
	aValidation model.APartsValidationTable,
	assembler *legacy.Assembler,
) (string, error) {
	if err := xlsxio.EnsureDir(r.cfg.OutputDir); err != nil {
		return "", syserr.Wrap(syserr.ErrOutput, "failed to prepare output directory", err)
	}
	outputPath := filepath.Join(
		r.cfg.OutputDir, xlsxio.OutputFileName(r.inputPath, r.cfg.OutputSuffix, r.now()))

	wb := xlsxio.NewWorkbook()
	defer wb.Close()

	sheets := []xlsxio.Sheet{
		{Name: sheetMatrix, Rows: table.Grid()},
		{Name: sheetCMReference, Header: cmRef.Header(), Rows: cmRef.Records()},
		{Name: sheetCMPicking, Header: cmPicking.Header(), Rows: cmPicking.Records()},
	}
	if r.line == LineFull {
		if len(aRef) > 0 {
			sheets = append(sheets, xlsxio.Sheet{
				Name: sheetAPartsReference, Header: aRef.Header(), Rows: aRef.Records()})
		}
		if len(aPicking) > 0 {
			sheets = append(sheets, xlsxio.Sheet{
				Name: sheetAPartsPicking, Header: aPicking.Header(), Rows: aPicking.Records()})
		}
		if len(aValidation) > 0 {
			sheets = append(sheets, xlsxio.Sheet{
				Name: sheetAPartsValidation, Header: aValidation.Header(), Rows: aValidation.Records()})
		}
	}

	for _, s := range sheets {
		if err := wb.AddSheet(s); err != nil {
			return "", syserr.Wrap(syserr.ErrOutput, fmt.Sprintf("failed to write sheet %q", s.Name), err)
		}
	}

	if err := assembler.Render(wb); err != nil {
		return "", err
	}

	if err := wb.SaveAtomic(outputPath); err != nil {
		return "", syserr.Wrap(syserr.ErrOutput, "failed to save result workbook", err)
	}
	return outputPath, nil
}

// failure maps an error to a failed Result, distinguishing the system error
// family from unexpected errors.
func failure(err error) model.Result {
	message := "unexpected error: " + err.Error()
	if syserr.IsSystemError(err) {
		message = err.Error()
	}
	return model.Result{
		Success: false,
		Message: message,
		Errors:  []string{err.Error()},
	}
}
