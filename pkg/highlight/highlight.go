// Package highlight builds the highlight outline of a block: the thin lit
// stroke traced alongside the block's silhouette.
//
// A [Highlighter] contributes path fragments to two streams. The outer
// stream follows the block's top and left edges (or, in mirrored mode, the
// top and right edges) and the inline stream traces the holes of inline
// value inputs. The highlighter does not own the row traversal: callers
// invoke the per-row methods in row order, top to bottom, and finish with
// [Highlighter.DrawBottomCorner] and [Highlighter.DrawLeft]. The
// [github.com/matzehuels/blockoutline/pkg/outline] package implements that
// traversal.
//
// Every method is a pure function of the snapshot it was created with and
// its arguments; orientation is read from [layout.Snapshot.RTL], never from
// ambient state.
package highlight

import (
	"github.com/matzehuels/blockoutline/pkg/errors"
	"github.com/matzehuels/blockoutline/pkg/layout"
	"github.com/matzehuels/blockoutline/pkg/shapes"
	sp "github.com/matzehuels/blockoutline/pkg/svgpath"
)

// Highlighter appends highlight fragments for one snapshot.
type Highlighter struct {
	info        *layout.Snapshot
	shapes      shapes.Catalog
	steps       *sp.Stream
	inlineSteps *sp.Stream
}

// Option configures a Highlighter.
type Option func(*Highlighter)

// WithCatalog overrides the default shape catalog.
func WithCatalog(k shapes.Catalog) Option {
	return func(h *Highlighter) { h.shapes = k }
}

// New returns a highlighter for info. A nil snapshot is a usage error.
func New(info *layout.Snapshot, opts ...Option) (*Highlighter, error) {
	if info == nil {
		return nil, errors.Precondition("highlighter requires a layout snapshot")
	}
	h := &Highlighter{
		info:        info,
		shapes:      shapes.DefaultCatalog(),
		steps:       sp.NewStream(),
		inlineSteps: sp.NewStream(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Steps returns the outer highlight stream.
func (h *Highlighter) Steps() *sp.Stream { return h.steps }

// InlineSteps returns the inline-input highlight stream.
func (h *Highlighter) InlineSteps() *sp.Stream { return h.inlineSteps }

// DrawTopCorner positions the pen at the top-left starting point, draws the
// corner, the notch of a previous connector if any, and the top edge.
func (h *Highlighter) DrawTopCorner() {
	c := h.shapes.C
	if h.info.SquareTopLeft {
		h.steps.PushFragment(h.shapes.StartPointHighlight())
		if h.info.StartHat {
			h.steps.PushFragment(h.shapes.StartHatHighlight(h.info.RTL))
		}
	} else {
		h.steps.PushFragment(h.shapes.TopLeftCornerStartHighlight(h.info.RTL))
		h.steps.PushFragment(h.shapes.TopLeftCornerHighlight())
	}

	if h.info.HasPrevious {
		h.steps.Push(sp.H(c.NotchWidth))
		h.steps.PushFragment(h.shapes.NotchPathLeftHighlight())
	}
	h.steps.Push(sp.H(h.info.Edge() - c.HighlightOffset))
}

// DrawValueInput highlights the row of an external value input whose top
// is at cursorY.
func (h *Highlighter) DrawValueInput(row layout.Row, cursorY float64) {
	c := h.shapes.C
	if h.info.RTL {
		// Around the back of the tab.
		h.steps.Push(sp.VBy(c.TabOffsetFromTop - 3))
		h.steps.Push(sp.MoveBy(0, 2.5))
		h.steps.PushFragment(h.shapes.TabPathDownHighlightRTL())
		h.steps.Push(sp.VBy(row.Height - c.TabHeight))
		return
	}
	// Short glint at the bottom of the tab.
	h.steps.Push(
		sp.MoveTo(h.info.Edge()-5, cursorY+c.TabHeight-0.7),
		sp.LineBy(c.TabWidth*0.46, -2.1),
	)
}

// DrawStatementInput traces the inner corners of a statement slot starting
// at row.StatementEdge. Mirrored mode draws the top corner before the
// bottom one so the winding direction is preserved.
func (h *Highlighter) DrawStatementInput(row layout.Row, cursorY float64) {
	c := h.shapes.C
	x := row.StatementEdge
	d := c.Distance45Outside()
	if h.info.RTL {
		h.steps.Push(sp.MoveTo(x+d, cursorY+d))
		h.steps.PushFragment(h.shapes.InnerTopLeftCornerHighlightRTL())
		h.steps.Push(sp.VBy(row.Height - 2*c.CornerRadius))
		h.steps.PushFragment(h.shapes.InnerBottomLeftCornerHighlight(true))
	} else {
		h.steps.Push(sp.MoveTo(x+d, cursorY+row.Height-d))
		h.steps.PushFragment(h.shapes.InnerBottomLeftCornerHighlight(false))
	}
	h.steps.Push(sp.H(h.info.Edge() - c.HighlightOffset))
}

// DrawRightSideRow traces the right edge of a plain row. Only mirrored mode
// draws anything: in normal mode the right edge is in shadow.
func (h *Highlighter) DrawRightSideRow(row layout.Row) {
	if h.info.RTL {
		h.steps.Push(sp.VBy(row.Height))
	}
}

// DrawBottomCorner draws the bottom-left corner. Mirrored blocks have their
// bottom corner in shadow, so nothing is emitted for them.
func (h *Highlighter) DrawBottomCorner() {
	if h.info.RTL {
		return
	}
	c := h.shapes.C
	if h.info.SquareBottomLeft {
		h.steps.Push(sp.MoveTo(c.HighlightOffset, h.info.Height-c.HighlightOffset))
		return
	}
	h.steps.PushFragment(h.shapes.BottomLeftCornerHighlight(h.info.Height))
}

// DrawLeft draws the output tab, if any, and in normal mode runs the left
// edge up to where the top corner started.
func (h *Highlighter) DrawLeft() {
	if h.info.HasOutput {
		h.steps.PushFragment(h.shapes.OutputConnectionHighlight(h.info.RTL))
	}
	if h.info.RTL {
		return
	}
	c := h.shapes.C
	if h.info.SquareTopLeft {
		h.steps.Push(sp.V(c.HighlightOffset))
	} else {
		h.steps.Push(sp.V(c.CornerRadius))
	}
}

// DrawInlineInput highlights the hole of an inline value input at x within
// the row whose top is y, centred vertically on centerline.
func (h *Highlighter) DrawInlineInput(x, y float64, input layout.Element, centerline float64) {
	c := h.shapes.C
	width, height := input.Width, input.Height
	yPos := centerline - height/2

	if h.info.RTL {
		// Right edge, around the back of the tab, and bottom.
		h.inlineSteps.Push(sp.MoveTo(x+c.TabWidth-0.5, yPos+c.TabOffsetFromTop+5))
		h.inlineSteps.PushFragment(h.shapes.TabPathDownHighlightRTL())
		h.inlineSteps.Push(sp.VBy(height - c.TabHeight + 1.5))
		h.inlineSteps.Push(sp.HBy(width - c.TabWidth))
		return
	}
	// Right edge and bottom.
	h.inlineSteps.Push(sp.MoveTo(x+width+0.5, yPos+0.5))
	h.inlineSteps.Push(sp.VBy(height))
	h.inlineSteps.Push(sp.HBy(c.TabWidth - width))
	// Short glint at the bottom of the tab.
	h.inlineSteps.Push(
		sp.MoveTo(x+2.9, y+c.InlinePaddingY+c.TabHeight-0.7),
		sp.LineBy(c.TabWidth*0.46, -2.1),
	)
}
