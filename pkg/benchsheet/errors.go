package benchsheet

import (
	"fmt"
	"strings"

	"github.com/go-faster/errors"
)

// ErrFileNotFound indicates the input or output file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidInput indicates the input file is not a JSON array.
var ErrInvalidInput = errors.New("input is not a JSON array")

// ErrSheetNotFound indicates the workbook has no sheet with the requested name.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrSheetExists indicates Init was asked to create a sheet that is already there.
var ErrSheetExists = errors.New("sheet already exists")

// ErrPartialBatch is returned in strict mode when some elements produced no row.
var ErrPartialBatch = errors.New("batch partially failed")

// MappingError reports an element that could not be projected onto a row.
type MappingError struct {
	// Position is the element's 0-based position in the input array,
	// or -1 when the error did not come from a batch.
	Position int
	// Index is the row index the element would have received.
	Index  int
	Fields []string
	Err    error
}

func (e *MappingError) Error() string {
	subject := fmt.Sprintf("row %d", e.Index)
	if e.Position >= 0 {
		subject = fmt.Sprintf("element %d", e.Position)
	}
	if len(e.Fields) == 0 {
		return fmt.Sprintf("mapping %s: %v", subject, e.Err)
	}
	return fmt.Sprintf("mapping %s (%s): %v", subject, strings.Join(e.Fields, ", "), e.Err)
}

func (e *MappingError) Unwrap() error {
	return e.Err
}

// AppendError reports a mapped row that could not be written to the sheet.
type AppendError struct {
	Position int
	Row      int
	Err      error
}

func (e *AppendError) Error() string {
	return fmt.Sprintf("appending element %d at row %d: %v", e.Position, e.Row, e.Err)
}

func (e *AppendError) Unwrap() error {
	return e.Err
}
