package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/matzehuels/blockoutline/pkg/cache"
	"github.com/matzehuels/blockoutline/pkg/errors"
	bio "github.com/matzehuels/blockoutline/pkg/io"
	"github.com/matzehuels/blockoutline/pkg/observability"
	"github.com/matzehuels/blockoutline/pkg/shapes"
)

// readInput returns the raw document bytes, reading Input when Data is
// empty.
func readInput(opts *Options) ([]byte, error) {
	if len(opts.Data) > 0 {
		return opts.Data, nil
	}
	if err := errors.ValidatePath(opts.Input); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(opts.Input)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "document not found: %s", opts.Input)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", opts.Input)
	}
	return data, nil
}

// loadShapes returns the catalog for opts and a hash of its constants for
// cache keys.
func loadShapes(opts *Options) (shapes.Catalog, string, error) {
	if opts.ShapesPath != "" {
		if err := errors.ValidateExtension(opts.ShapesPath, "toml"); err != nil {
			return shapes.Catalog{}, "", err
		}
	}
	c, err := shapes.LoadFile(opts.ShapesPath)
	if err != nil {
		return shapes.Catalog{}, "", err
	}
	return shapes.NewCatalog(c), cache.Hash([]byte(fmt.Sprintf("%+v", c))), nil
}

// parseDocument decodes data and applies the direction override.
func parseDocument(ctx context.Context, data []byte, opts *Options) (*bio.Document, error) {
	source := opts.Input
	if source == "" {
		source = "<data>"
	}
	observability.Pipeline().OnImportStart(ctx, source)
	start := time.Now()

	doc, err := bio.Parse(data, opts.Format)
	rows := 0
	if doc != nil {
		rows = len(doc.Snapshot.Rows)
	}
	observability.Pipeline().OnImportComplete(ctx, source, rows, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	switch opts.Direction {
	case DirectionLTR:
		doc.Snapshot.RTL = false
	case DirectionRTL:
		doc.Snapshot.RTL = true
	}
	if !doc.Snapshot.Consistent() {
		opts.Logger.Warn("layout dimensions do not add up",
			"source", source,
			"height", doc.Snapshot.Height,
			"rows_height", doc.Snapshot.RowsHeight())
	}
	return doc, nil
}
