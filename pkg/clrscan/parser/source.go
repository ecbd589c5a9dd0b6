// Package parser reads Category Listing Report workbooks and normalizes
// them into record and field-metadata models.
package parser

import (
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet names of a standard Category Listing Report.
const (
	// TemplateSheet holds the listing data.
	TemplateSheet = "Template"
	// DefinitionsSheet holds the field metadata side-table.
	DefinitionsSheet = "Data Definitions"
)

// Source wraps a report workbook and exposes read-only cell access.
// It owns the underlying file handle until Close is called.
type Source struct {
	path string
	file *excelize.File
}

// Open loads a report workbook. A missing file returns ErrFileNotFound
// and an unreadable container returns ErrInvalidFormat; both are fatal.
func Open(path string) (*Source, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	return &Source{path: path, file: f}, nil
}

// Path returns the source file path.
func (s *Source) Path() string {
	return s.path
}

// Sheet reads the named sheet into an immutable row grid. A missing
// sheet returns ErrSheetNotFound.
func (s *Source) Sheet(name string) (*Sheet, error) {
	rows, err := s.file.GetRows(name)
	if err != nil {
		return nil, NewSourceError(name, fmt.Errorf("%w: %v", ErrSheetNotFound, err))
	}
	return &Sheet{Name: name, rows: rows}, nil
}

// Close releases the underlying workbook.
func (s *Source) Close() error {
	return s.file.Close()
}

// Sheet is a read-only grid of cell text for one sheet.
type Sheet struct {
	// Name is the sheet name.
	Name string

	rows [][]string
}

// NumRows returns the number of rows with any content.
func (sh *Sheet) NumRows() int {
	return len(sh.rows)
}

// Cell returns the trimmed text of the cell at 1-based (row, col).
// Out-of-range coordinates yield "": a malformed or sparse row is read
// as empty, never an error.
func (sh *Sheet) Cell(row, col int) string {
	if row < 1 || col < 1 || row > len(sh.rows) {
		return ""
	}
	r := sh.rows[row-1]
	if col > len(r) {
		return ""
	}
	return strings.TrimSpace(r[col-1])
}

// Row returns the raw cell texts of a 1-based row, or nil when the row
// is out of range.
func (sh *Sheet) Row(row int) []string {
	if row < 1 || row > len(sh.rows) {
		return nil
	}
	return sh.rows[row-1]
}
