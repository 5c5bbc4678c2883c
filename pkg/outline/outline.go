// Package outline drives a full highlight pass over a layout snapshot.
//
// [Walk] owns the traversal the highlighter deliberately leaves to its
// caller: it visits rows top to bottom with a vertical cursor, chooses the
// per-row highlight for each one, traces inline inputs with a horizontal
// cursor, and finishes the bottom and left edges. The resulting outer stream
// always ends where it started.
package outline

import (
	"math"

	"github.com/matzehuels/blockoutline/pkg/highlight"
	"github.com/matzehuels/blockoutline/pkg/layout"
	"github.com/matzehuels/blockoutline/pkg/shapes"
	sp "github.com/matzehuels/blockoutline/pkg/svgpath"
)

// Result holds the two highlight streams of one pass.
type Result struct {
	Outer  *sp.Stream
	Inline *sp.Stream
}

// Option configures a walk.
type Option func(*config)

type config struct {
	catalog shapes.Catalog
}

// WithCatalog selects the shape catalog fragments are taken from.
func WithCatalog(k shapes.Catalog) Option {
	return func(c *config) { c.catalog = k }
}

// Walk builds both highlight streams for snap.
func Walk(snap *layout.Snapshot, opts ...Option) (*Result, error) {
	cfg := config{catalog: shapes.DefaultCatalog()}
	for _, opt := range opts {
		opt(&cfg)
	}

	h, err := highlight.New(snap, highlight.WithCatalog(cfg.catalog))
	if err != nil {
		return nil, err
	}

	h.DrawTopCorner()
	start, ok := penStart(h.Steps())

	cursorY := 0.0
	for _, row := range snap.Rows {
		switch {
		case row.HasStatement():
			h.DrawStatementInput(row, cursorY)
		case row.HasExternalInput():
			h.DrawValueInput(row, cursorY)
		default:
			h.DrawRightSideRow(row)
		}
		drawInlineInputs(h, row, cursorY)
		cursorY += row.Height
	}

	h.DrawBottomCorner()
	h.DrawLeft()

	if ok {
		closeOutline(h.Steps(), start)
	}
	return &Result{Outer: h.Steps(), Inline: h.InlineSteps()}, nil
}

func drawInlineInputs(h *highlight.Highlighter, row layout.Row, cursorY float64) {
	cursorX := 0.0
	centerline := row.CenterY(cursorY)
	for _, e := range row.Elements {
		if e.Kind == layout.KindInlineValue {
			h.DrawInlineInput(cursorX, cursorY, e, centerline)
		}
		cursorX += e.Width
	}
}

// penStart replays the top edge to find where drawing began.
func penStart(s *sp.Stream) (sp.Point, bool) {
	tr := sp.TraceOf(s)
	return tr.Start, tr.Segments > 0
}

// closeOutline appends a pen-up move back to start when the walk ended
// elsewhere, as mirrored walks do.
func closeOutline(s *sp.Stream, start sp.Point) {
	end := sp.TraceOf(s).End
	if math.Abs(end.X-start.X) < 1e-6 && math.Abs(end.Y-start.Y) < 1e-6 {
		return
	}
	s.Push(sp.MoveTo(start.X, start.Y))
}
