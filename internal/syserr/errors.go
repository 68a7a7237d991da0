// =============================================================================
// Picking List Generator - Error Family
// =============================================================================
//
// All failures raised by the pipeline belong to a single family so that
// callers can treat "any system error" uniformly while still branching on the
// specific kind with errors.Is.
//
// Per-row problems (a part missing from a catalog, an unmatched matrix row)
// are NOT errors: stages log them as warnings and drop the row. Only
// structural problems (unreadable files, bad headers, failed output) become
// SystemErrors and abort the run.
//
// =============================================================================

package syserr

import (
	"errors"
	"fmt"
)

// =============================================================================
// KIND SENTINELS - use with errors.Is()
// =============================================================================

var (
	// ErrFileNotFound is returned when the input file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrInvalidFileFormat is returned when a spreadsheet cannot be read
	// or is not a valid workbook.
	ErrInvalidFileFormat = errors.New("invalid file format")

	// ErrValidation is returned when the matrix header or shape is invalid.
	ErrValidation = errors.New("validation error")

	// ErrMasterCatalog is returned when a master catalog cannot be loaded.
	ErrMasterCatalog = errors.New("master catalog error")

	// ErrProcessing is returned when a picking table cannot be built.
	ErrProcessing = errors.New("processing error")

	// ErrReferenceDB is returned when a reference table cannot be built.
	ErrReferenceDB = errors.New("reference db error")

	// ErrOutput is returned when the result workbook cannot be rendered
	// or written.
	ErrOutput = errors.New("output error")
)

// =============================================================================
// SYSTEM ERROR
// =============================================================================

// SystemError is the structured error carried across stage boundaries.
// It pairs a kind sentinel with a context message and an optional cause.
type SystemError struct {
	Kind    error
	Message string
	Err     error
}

func (e *SystemError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes both the kind sentinel and the cause, so
// errors.Is(err, ErrOutput) and errors.Is(err, os.ErrNotExist) both work.
func (e *SystemError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// New creates a SystemError without a cause.
func New(kind error, msg string) *SystemError {
	return &SystemError{Kind: kind, Message: msg}
}

// Newf creates a SystemError without a cause from a format string.
func Newf(kind error, format string, args ...interface{}) *SystemError {
	return &SystemError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a SystemError wrapping a cause.
func Wrap(kind error, msg string, err error) *SystemError {
	return &SystemError{Kind: kind, Message: msg, Err: err}
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsSystemError reports whether err belongs to the system error family.
// The pipeline uses this to report known failures distinctly from
// truly unexpected ones.
func IsSystemError(err error) bool {
	var se *SystemError
	return errors.As(err, &se)
}

// KindOf returns the kind sentinel of a system error, or nil for errors
// outside the family.
func KindOf(err error) error {
	var se *SystemError
	if errors.As(err, &se) {
		return se.Kind
	}
	return nil
}
