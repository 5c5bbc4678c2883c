package shapes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	sp "github.com/matzehuels/blockoutline/pkg/svgpath"
)

func traceFragment(f sp.Fragment, from ...sp.Command) sp.Trace {
	s := sp.NewStream()
	s.Push(from...)
	s.PushFragment(f)
	return sp.TraceOf(s)
}

func TestFragmentNames(t *testing.T) {
	k := DefaultCatalog()
	assert.Equal(t, TopLeftCornerStart, k.TopLeftCornerStartHighlight(false).Name)
	assert.Equal(t, TopLeftCornerStart+"-rtl", k.TopLeftCornerStartHighlight(true).Name)
	assert.Equal(t, TabDown+"-rtl", k.TabPathDownHighlightRTL().Name)
	assert.Equal(t, OutputTab, k.OutputConnectionHighlight(false).Name)
}

func TestTopLeftCornerIsQuarterArc(t *testing.T) {
	k := DefaultCatalog()
	s := sp.NewStream()
	s.PushFragment(k.TopLeftCornerStartHighlight(false))
	s.PushFragment(k.TopLeftCornerHighlight())

	tr := sp.TraceOf(s)
	assert.Equal(t, sp.Point{X: 0.5, Y: 8}, tr.Start)
	dx, dy := tr.Displacement()
	assert.InDelta(t, 7.5, dx, 1e-9)
	assert.InDelta(t, -7.5, dy, 1e-9)
}

func TestTabBackHasNoNetHorizontalMovement(t *testing.T) {
	tr := traceFragment(DefaultCatalog().TabPathDownHighlightRTL(), sp.MoveTo(40, 0))
	assert.InDelta(t, 40, tr.End.X, 1e-9)
	assert.InDelta(t, 18.5, tr.End.Y, 1e-9)
}

func TestOutputTabReturnsToLeftEdge(t *testing.T) {
	k := DefaultCatalog()
	tr := traceFragment(k.OutputConnectionHighlight(false), sp.MoveTo(0.5, 40))
	assert.InDelta(t, 0.5, tr.End.X, 1e-9)
	assert.InDelta(t, 0.5, tr.End.Y, 1e-9)
	assert.InDelta(t, -6.86, tr.Min.X, 1e-9)
}

func TestBottomLeftCornerEndsAboveRadius(t *testing.T) {
	k := DefaultCatalog()
	tr := traceFragment(k.BottomLeftCornerHighlight(60))
	assert.InDelta(t, 0.5, tr.End.X, 1e-9)
	assert.InDelta(t, 52, tr.End.Y, 1e-9)
}

func TestStartHatVariantsMeetAtRightFoot(t *testing.T) {
	k := DefaultCatalog()
	start := k.StartPointHighlight().Commands

	ltr := traceFragment(k.StartHatHighlight(false), start...)
	rtl := traceFragment(k.StartHatHighlight(true), start...)
	assert.InDelta(t, 100.5, ltr.End.X, 1e-9)
	assert.InDelta(t, 100.5, rtl.End.X, 1e-9)
	assert.InDelta(t, 0.5, rtl.End.Y, 1e-9)
}

func TestNotchString(t *testing.T) {
	assert.Equal(t, "l 6.5,4 2,0 6.5,-4", DefaultCatalog().NotchPathLeftHighlight().String())
}
