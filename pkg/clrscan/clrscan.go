package clrscan

import (
	"log/slog"

	"github.com/clrscan/clrscan-go/internal/logging"
	"github.com/clrscan/clrscan-go/pkg/clrscan/engine"
	"github.com/clrscan/clrscan-go/pkg/clrscan/models"
	"github.com/clrscan/clrscan-go/pkg/clrscan/parser"
)

// Catalog is an opened Category Listing Report. It owns the workbook
// handle until Close is called.
type Catalog struct {
	src  *parser.Source
	opts Options
	log  *slog.Logger

	// Meta is the field metadata index built from the report's data
	// definitions sheet. Empty when the sheet is absent.
	Meta models.FieldIndex
}

// Open loads a report workbook and builds its field metadata index.
// A missing or unreadable file is fatal; a missing definitions sheet
// degrades to an empty index.
func Open(path string, opts Options) (*Catalog, error) {
	src, err := parser.Open(path)
	if err != nil {
		return nil, err
	}

	return &Catalog{
		src:  src,
		opts: opts,
		log:  logging.New("clrscan"),
		Meta: parser.BuildFieldIndex(src),
	}, nil
}

// Records extracts the normalized record sequence from the Template
// sheet using the catalog's options.
func (c *Catalog) Records() ([]models.Record, error) {
	extraction, err := parser.ExtractRecords(c.src, c.opts.extractOptions())
	if err != nil {
		return nil, err
	}
	if extraction.DroppedDuplicates > 0 {
		c.log.Info("collapsed duplicate fulfillment listings",
			slog.Int("dropped", extraction.DroppedDuplicates))
	}
	return extraction.Records, nil
}

// NewEngine returns a rule engine bound to this catalog. The engine
// extracts and caches the record snapshot on first use.
func (c *Catalog) NewEngine() *engine.Engine {
	return engine.New(c.Records, c.Meta)
}

// Close releases the underlying workbook.
func (c *Catalog) Close() error {
	return c.src.Close()
}
