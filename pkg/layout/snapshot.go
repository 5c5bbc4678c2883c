package layout

import "math"

// Snapshot is the measured shape of one block.
type Snapshot struct {
	Rows []Row

	// Width and Height are the overall block dimensions.
	Width, Height float64

	// RightEdge is the x position of the right edge, excluding any external
	// value tabs. Zero means Width.
	RightEdge float64

	// RTL selects mirrored (right-to-left) mode.
	RTL bool

	SquareTopLeft    bool
	SquareBottomLeft bool

	HasPrevious bool
	HasNext     bool
	HasOutput   bool

	// StartHat marks the rounded "hat" decoration on top-level event blocks.
	StartHat bool
}

// Edge returns the x position the top edge and statement returns run to.
func (s *Snapshot) Edge() float64 {
	if s.RightEdge == 0 {
		return s.Width
	}
	return s.RightEdge
}

// RowsHeight returns the sum of all row heights.
func (s *Snapshot) RowsHeight() float64 {
	var h float64
	for _, r := range s.Rows {
		h += r.Height
	}
	return h
}

// Consistent reports whether the declared dimensions match the sum of their
// parts within a small tolerance.
func (s *Snapshot) Consistent() bool {
	const eps = 1e-6
	if math.Abs(s.RowsHeight()-s.Height) > eps {
		return false
	}
	for _, r := range s.Rows {
		if len(r.Elements) > 0 && math.Abs(r.ElementsWidth()-r.Width) > eps {
			return false
		}
	}
	return true
}

// Row is one horizontal band of a block.
type Row struct {
	Height, Width float64
	Elements      []Element

	// Spacer marks a row with no visible content.
	Spacer bool

	// StatementEdge is the x offset where a nested statement slot begins.
	StatementEdge float64

	// HasNext marks the row carrying the block's next connector.
	HasNext bool
}

// ElementsWidth returns the sum of the row's element widths.
func (r Row) ElementsWidth() float64 {
	var w float64
	for _, e := range r.Elements {
		w += e.Width
	}
	return w
}

// CenterY returns the vertical center of the row given its top offset.
func (r Row) CenterY(top float64) float64 { return top + r.Height/2 }

// HasStatement reports whether the row contains a statement slot.
func (r Row) HasStatement() bool { return r.has(KindStatement) }

// HasExternalInput reports whether the row contains an external value slot.
func (r Row) HasExternalInput() bool { return r.has(KindExternalValue) }

func (r Row) has(k ElementKind) bool {
	for _, e := range r.Elements {
		if e.Kind == k {
			return true
		}
	}
	return false
}
