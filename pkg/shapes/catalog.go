package shapes

import (
	sp "github.com/matzehuels/blockoutline/pkg/svgpath"
)

// Fragment names used as catalog keys in instruction streams.
const (
	StartPoint         = "start-point"
	StartHat           = "start-hat"
	TopLeftCornerStart = "top-left-corner-start"
	TopLeftCorner      = "top-left-corner"
	NotchLeft          = "notch-left"
	TabDown            = "tab-down"
	InnerTopLeftCorner = "inner-top-left-corner"
	InnerBottomLeft    = "inner-bottom-left-corner"
	BottomLeftCorner   = "bottom-left-corner"
	OutputTab          = "output-tab"
	mirroredSuffix     = "-rtl"
)

// Catalog builds highlight fragments from a set of constants.
type Catalog struct {
	C Constants
}

// NewCatalog returns a catalog for c.
func NewCatalog(c Constants) Catalog { return Catalog{C: c} }

// DefaultCatalog returns a catalog built from Default constants.
func DefaultCatalog() Catalog { return NewCatalog(Default()) }

func named(name string, rtl bool, cmds ...sp.Command) sp.Fragment {
	if rtl {
		name += mirroredSuffix
	}
	return sp.Fragment{Name: name, Commands: cmds}
}

// StartPointHighlight moves the pen inside a square top-left corner.
func (k Catalog) StartPointHighlight() sp.Fragment {
	o := k.C.HighlightOffset
	return named(StartPoint, false, sp.MoveBy(o, o))
}

// StartHatHighlight traces the lit side of the start hat. Both variants end
// at the right foot of the hat.
func (k Catalog) StartHatHighlight(rtl bool) sp.Fragment {
	w := k.C.StartHatWidth
	s := k.C.StartHatHeight / 15
	o := k.C.HighlightOffset
	if rtl {
		return named(StartHat, true,
			sp.MoveBy(0.25*w, -8.7*s),
			sp.CurveBy(0.297*w, -6.2*s, 0.572*w, -0.5*s, 0.75*w, 8.7*s))
	}
	return named(StartHat, false,
		sp.CurveBy(0.178*w, -9.2*s, 0.453*w, -14.9*s, 0.75*w, -8.7*s),
		sp.MoveTo(w+o, o))
}

// TopLeftCornerStartHighlight positions the pen where the rounded top-left
// corner highlight begins.
func (k Catalog) TopLeftCornerStartHighlight(rtl bool) sp.Fragment {
	if rtl {
		d := k.C.Distance45Inside()
		return named(TopLeftCornerStart, true, sp.MoveBy(d, d))
	}
	return named(TopLeftCornerStart, false, sp.MoveBy(k.C.HighlightOffset, k.C.CornerRadius))
}

// TopLeftCornerHighlight is the quarter arc of the rounded top-left corner.
func (k Catalog) TopLeftCornerHighlight() sp.Fragment {
	r := k.C.CornerRadius - k.C.HighlightOffset
	return named(TopLeftCorner, false,
		sp.ArcTo(r, r, 0, false, true, k.C.CornerRadius, k.C.HighlightOffset))
}

// NotchPathLeftHighlight traces the previous-connector notch left to right.
func (k Catalog) NotchPathLeftHighlight() sp.Fragment {
	return named(NotchLeft, false, sp.LineBy(6.5, 4, 2, 0, 6.5, -4))
}

// TabPathDownHighlightRTL traces around the back of a value tab in
// mirrored mode. Its net horizontal movement is zero.
func (k Catalog) TabPathDownHighlightRTL() sp.Fragment {
	w := k.C.TabWidth
	return named(TabDown, true,
		sp.VBy(6.5),
		sp.MoveBy(-w*0.97, 3),
		sp.QuadBy(-w*0.05, 10, w*0.3, 9.5),
		sp.MoveBy(w*0.67, -1.9),
		sp.VBy(1.4))
}

// InnerTopLeftCornerHighlightRTL is the inner top corner of a statement
// slot in mirrored mode.
func (k Catalog) InnerTopLeftCornerHighlightRTL() sp.Fragment {
	r := k.C.CornerRadius
	d := k.C.Distance45Outside()
	return named(InnerTopLeftCorner, true,
		sp.ArcBy(r, r, 0, false, false, -d-k.C.HighlightOffset, r-d))
}

// InnerBottomLeftCornerHighlight is the inner bottom corner of a statement
// slot.
func (k Catalog) InnerBottomLeftCornerHighlight(rtl bool) sp.Fragment {
	r := k.C.CornerRadius + k.C.HighlightOffset
	if rtl {
		return named(InnerBottomLeft, true, sp.ArcBy(r, r, 0, false, false, r, r))
	}
	d := k.C.Distance45Outside()
	return named(InnerBottomLeft, false,
		sp.ArcBy(r, r, 0, false, false, k.C.CornerRadius-d, d+k.C.HighlightOffset))
}

// BottomLeftCornerHighlight is the rounded bottom-left corner of a block of
// the given total height.
func (k Catalog) BottomLeftCornerHighlight(height float64) sp.Fragment {
	d := k.C.Distance45Inside()
	r := k.C.CornerRadius - k.C.HighlightOffset
	return named(BottomLeftCorner, false,
		sp.MoveTo(d, height-d),
		sp.ArcTo(r, r, 0, false, true, k.C.HighlightOffset, height-k.C.CornerRadius))
}

// OutputConnectionHighlight traces the output tab on the left edge.
func (k Catalog) OutputConnectionHighlight(rtl bool) sp.Fragment {
	w := k.C.TabWidth
	if rtl {
		return named(OutputTab, true,
			sp.MoveTo(-0.25*w, 8.4),
			sp.LineBy(-0.45*w, -2.1))
	}
	return named(OutputTab, false,
		sp.V(k.C.TabHeight-1.5),
		sp.MoveBy(-0.92*w, -0.5),
		sp.QuadBy(-0.19*w, -5.5, 0, -11),
		sp.MoveBy(0.92*w, 1),
		sp.V(k.C.HighlightOffset))
}
