package parser

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx container.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates a structurally required sheet is absent.
var ErrSheetNotFound = errors.New("sheet not found")

// SourceError represents an error while reading the report source.
type SourceError struct {
	SheetName string
	Err       error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source error in sheet %q: %v", e.SheetName, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError creates a new SourceError.
func NewSourceError(sheetName string, err error) *SourceError {
	return &SourceError{
		SheetName: sheetName,
		Err:       err,
	}
}
