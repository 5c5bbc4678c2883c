package overlay

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/blockoutline/pkg/errors"
	"github.com/matzehuels/blockoutline/pkg/layout"
)

func spacer(w, h float64) layout.Row {
	return layout.Row{Width: w, Height: h, Spacer: true}
}

func valueInput(child *layout.ChildRef) layout.Element {
	return layout.Element{
		Kind:      layout.KindExternalValue,
		Width:     10,
		Height:    20,
		Connector: &layout.Connector{Type: layout.InputValue, Offset: layout.Point{X: 40, Y: 30}},
		Connected: child,
	}
}

func labelField(text string) layout.Element {
	return layout.Element{
		Kind:   layout.KindField,
		Width:  30,
		Height: 16,
		Field:  &layout.Field{NodeID: "f-" + text, Text: text, Kind: layout.FieldLabel},
	}
}

// twoRowSnapshot has a label row, a value-input row and the usual spacers.
func twoRowSnapshot() *layout.Snapshot {
	return &layout.Snapshot{
		Width:  50,
		Height: 60,
		Rows: []layout.Row{
			{Width: 50, Height: 20, Elements: []layout.Element{labelField("foo")}},
			{Width: 50, Height: 30, Elements: []layout.Element{valueInput(nil)}},
			spacer(50, 10),
		},
	}
}

func newTestBuilder(t *testing.T, opts ...Option) (*Builder, *MemorySurface) {
	t.Helper()
	surf := NewMemorySurface()
	b, err := NewBuilder(surf, opts...)
	require.NoError(t, err)
	return b, surf
}

func labelled(elems []Element) map[string]NavOrder {
	out := make(map[string]NavOrder)
	for _, e := range elems {
		if e.Label != "" && e.Order != nil {
			out[e.Label] = *e.Order
		}
	}
	return out
}

func TestNewBuilderNilSurface(t *testing.T) {
	_, err := NewBuilder(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodePrecondition))
}

func TestDrawDebugNilSnapshot(t *testing.T) {
	b, _ := newTestBuilder(t)
	_, err := b.DrawDebug(layout.Block{}, nil)
	require.Error(t, err)
	assert.Equal(t, StateIdle, b.State())
}

func TestDrawDebugLabels(t *testing.T) {
	b, surf := newTestBuilder(t)
	res, err := b.DrawDebug(layout.Block{ID: "b1", Type: "text_print"}, twoRowSnapshot())
	require.NoError(t, err)

	got := labelled(res.Elements)
	assert.Equal(t, NavOrder(1), got["foo. "])
	assert.Equal(t, NavOrder(999.5), got["Start of value connection. "])
	assert.Equal(t, NavOrder(1000.5), got["End of value connection. "])

	assert.Equal(t, StateRendered, b.State())
	assert.Equal(t, len(res.Elements), surf.Len())
	assert.NotEmpty(t, res.SessionID)
}

func TestDrawDebugRowOrders(t *testing.T) {
	b, _ := newTestBuilder(t)
	res, err := b.DrawDebug(layout.Block{Type: "text_print"}, twoRowSnapshot())
	require.NoError(t, err)

	var rows []NavOrder
	var spacers int
	for _, e := range res.Elements {
		switch e.Class {
		case ClassRowSpacer:
			spacers++
			assert.Nil(t, e.Order)
		case ClassRendering:
			if e.X == 0 && e.Width == 50 {
				rows = append(rows, *e.Order)
			}
		}
	}
	assert.Equal(t, []NavOrder{0, 1000}, rows)
	assert.Equal(t, 1, spacers)
}

func TestDrawDebugClearsPreviousPass(t *testing.T) {
	b, surf := newTestBuilder(t)
	first, err := b.DrawDebug(layout.Block{Type: "text_print"}, twoRowSnapshot())
	require.NoError(t, err)
	prev := b.Session()

	second, err := b.DrawDebug(layout.Block{Type: "text_print"}, twoRowSnapshot())
	require.NoError(t, err)

	assert.True(t, prev.Closed())
	assert.NotEqual(t, first.SessionID, second.SessionID)
	assert.Equal(t, len(second.Elements), surf.Len())

	ids := make(map[string]bool)
	for _, e := range surf.Elements() {
		ids[e.ID] = true
	}
	for _, e := range first.Elements {
		assert.False(t, ids[e.ID], "element %s from first pass still attached", e.ID)
	}
}

func TestClearElems(t *testing.T) {
	b, surf := newTestBuilder(t)
	_, err := b.DrawDebug(layout.Block{Type: "text_print"}, twoRowSnapshot())
	require.NoError(t, err)
	require.NotZero(t, surf.Len())

	b.ClearElems()
	assert.Zero(t, surf.Len())
	assert.Equal(t, StateIdle, b.State())
	assert.Nil(t, b.Session())

	b.ClearElems()
	assert.Equal(t, StateIdle, b.State())
}

func TestConnectorPairs(t *testing.T) {
	row := layout.Row{Width: 80, Height: 30, Elements: []layout.Element{
		labelField("a"),
		valueInput(nil),
		{Kind: layout.KindSpacer, Width: 4},
		{Kind: layout.KindStatement, Width: 20, Height: 30,
			Connector: &layout.Connector{Type: layout.NextStatement}},
	}}
	s := newSession(NewMemorySurface(), log.New(&bytes.Buffer{}))
	s.DrawRowWithElements(row, 0, 2)

	var starts, ends int
	for _, e := range s.Elements() {
		switch e.Label {
		case "Start of value connection. ", "Start of statement connection. ":
			starts++
		case "End of value connection. ", "End of statement connection. ":
			ends++
		}
	}
	assert.Equal(t, 2, starts)
	assert.Equal(t, 2, ends)

	got := labelled(s.Elements())
	assert.Equal(t, NavOrder(2002.5), got["Start of statement connection. "])
	assert.Equal(t, NavOrder(2003.5), got["End of statement connection. "])
}

func TestRenderedElemGeometry(t *testing.T) {
	s := newSession(NewMemorySurface(), log.New(&bytes.Buffer{}))
	s.DrawRenderedElem(labelField("x"), 12, 25, 0, 0)

	els := s.Elements()
	require.Len(t, els, 1)
	e := els[0]
	assert.Equal(t, ShapeRect, e.Shape)
	assert.Equal(t, 12.0, e.X)
	assert.Equal(t, 17.0, e.Y)
	assert.Equal(t, 3.0, e.RX)
	assert.Equal(t, 3.0, e.RY)
}

func TestNonLabelFieldsAreSkipped(t *testing.T) {
	s := newSession(NewMemorySurface(), log.New(&bytes.Buffer{}))
	s.DrawRenderedElem(layout.Element{
		Kind:  layout.KindField,
		Field: &layout.Field{Kind: layout.FieldDropdown, Text: "x"},
	}, 0, 0, 0, 0)
	s.DrawRenderedElem(layout.Element{Kind: layout.KindExternalValue}, 0, 0, 0, 1)
	s.DrawRenderedElem(layout.Element{Kind: layout.KindIcon}, 0, 0, 0, 2)
	s.DrawSpacerElem(layout.Element{}, 0, 0)
	assert.Empty(t, s.Elements())
}

func TestUnknownConnectorTypeIsLogged(t *testing.T) {
	var buf bytes.Buffer
	s := newSession(NewMemorySurface(), log.New(&buf))
	s.DrawRenderedElem(layout.Element{
		Kind:      layout.KindInlineValue,
		Connector: &layout.Connector{Type: layout.ConnectorType(9)},
	}, 0, 0, 0, 0)

	got := labelled(s.Elements())
	assert.Contains(t, got, "Start of ")
	assert.Contains(t, got, "End of ")
	assert.Contains(t, buf.String(), "unknown connection type")
}

func TestDrawConnection(t *testing.T) {
	tests := []struct {
		typ    layout.ConnectorType
		r      float64
		stroke string
		fill   string
	}{
		{layout.InputValue, 4, "magenta", "none"},
		{layout.OutputValue, 2, "magenta", "magenta"},
		{layout.NextStatement, 4, "goldenrod", "none"},
		{layout.PreviousStatement, 2, "goldenrod", "goldenrod"},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			s := newSession(NewMemorySurface(), log.New(&bytes.Buffer{}))
			s.DrawConnection(&layout.Connector{Type: tt.typ, Offset: layout.Point{X: 3, Y: 7}})
			els := s.Elements()
			require.Len(t, els, 1)
			e := els[0]
			assert.Equal(t, ShapeCircle, e.Shape)
			assert.Equal(t, ClassDebug, e.Class)
			assert.Equal(t, 3.0, e.CX)
			assert.Equal(t, 7.0, e.CY)
			assert.Equal(t, tt.r, e.R)
			assert.Equal(t, tt.stroke, e.Stroke)
			assert.Equal(t, tt.fill, e.Fill)
		})
	}
}

func TestDrawConnectionUnknownType(t *testing.T) {
	var buf bytes.Buffer
	s := newSession(NewMemorySurface(), log.New(&buf))
	s.DrawConnection(&layout.Connector{Type: 0})
	s.DrawConnection(nil)
	assert.Empty(t, s.Elements())
	assert.Contains(t, buf.String(), "unknown connection type")
}

func TestBlockConnectorsAreMarked(t *testing.T) {
	b, _ := newTestBuilder(t)
	block := layout.Block{
		Type:     "text_print",
		Previous: &layout.Connector{Type: layout.PreviousStatement},
		Next:     &layout.Connector{Type: layout.NextStatement, Offset: layout.Point{Y: 60}},
	}
	res, err := b.DrawDebug(block, twoRowSnapshot())
	require.NoError(t, err)

	var circles int
	for _, e := range res.Elements {
		if e.Shape == ShapeCircle {
			circles++
		}
	}
	assert.Equal(t, 2, circles)
}

func TestParenthesizedBlock(t *testing.T) {
	b, _ := newTestBuilder(t)
	snap := &layout.Snapshot{Rows: []layout.Row{
		spacer(40, 5),
		{Width: 40, Height: 20, Elements: []layout.Element{labelField("plus")}},
		spacer(40, 5),
	}}
	res, err := b.DrawDebug(layout.Block{Type: "math_arithmetic"}, snap)
	require.NoError(t, err)

	got := labelled(res.Elements)
	assert.Equal(t, OrderFirst, got["left parenthesis. "])
	assert.Equal(t, OrderLast, got["Right Parenthesis. "])
	assert.Equal(t, NavOrder(1001), got["plus. "])
}

func TestBottomRowOfNestingBlock(t *testing.T) {
	b, _ := newTestBuilder(t)
	snap := &layout.Snapshot{Rows: []layout.Row{
		{Width: 60, Height: 20, Elements: []layout.Element{labelField("repeat")}},
		{Width: 60, Height: 10, Spacer: true, HasNext: true},
	}}
	block := layout.Block{Type: "controls_whileUntil", Fields: []string{"repeat", "until"}}
	res, err := b.DrawDebug(block, snap)
	require.NoError(t, err)

	got := labelled(res.Elements)
	assert.Equal(t, OrderLast, got["End of repeat until block."])
}

func TestAnnotations(t *testing.T) {
	b, _ := newTestBuilder(t)
	snap := &layout.Snapshot{Rows: []layout.Row{
		spacer(90, 5),
		{Width: 90, Height: 30, Elements: []layout.Element{
			{Kind: layout.KindIcon, Width: 16, Height: 16, Icon: &layout.Icon{NodeID: "icon-1"}},
			{Kind: layout.KindField, Width: 30, Height: 16,
				Field: &layout.Field{NodeID: "var-1", Text: "item", Kind: layout.FieldVariable}},
			valueInput(&layout.ChildRef{ID: "num-1", Type: "math_number", Value: "42"}),
		}},
		spacer(90, 5),
	}}
	res, err := b.DrawDebug(layout.Block{Type: "controls_forEach"}, snap)
	require.NoError(t, err)

	byNode := make(map[NodeRef]Annotation)
	for _, a := range res.Annotations {
		byNode[a.Node] = a
	}
	require.Len(t, byNode, 3)

	icon := byNode[NodeRef{Kind: NodeIcon, ID: "icon-1"}]
	assert.Equal(t, "Modifier for for each block.", icon.Label)
	assert.Equal(t, NavOrder(1000), *icon.Order)

	v := byNode[NodeRef{Kind: NodeVariableField, ID: "var-1"}]
	assert.Equal(t, "editable droplist. item. ", v.Label)
	assert.Equal(t, NavOrder(1001), *v.Order)

	child := byNode[NodeRef{Kind: NodeChildBlock, ID: "num-1"}]
	assert.Equal(t, "42", child.Label)
	assert.Equal(t, NavOrder(1002), *child.Order)
}

func TestBandOverflowWarning(t *testing.T) {
	var buf bytes.Buffer
	elems := make([]layout.Element, OrderBand)
	for i := range elems {
		elems[i] = layout.Element{Kind: layout.KindSpacer, Width: 1}
	}
	s := newSession(NewMemorySurface(), log.New(&buf))
	s.DrawRowWithElements(layout.Row{Width: OrderBand, Height: 10, Elements: elems}, 0, 1)
	assert.Contains(t, buf.String(), "navigation band")
}

func TestWithLoggerNilKeepsDefault(t *testing.T) {
	b, _ := newTestBuilder(t, WithLogger(nil))
	assert.NotNil(t, b.logger)
}

func TestClosedSessionAttachesNothing(t *testing.T) {
	var buf bytes.Buffer
	b, surf := newTestBuilder(t, WithLogger(log.New(&buf)))
	_, err := b.DrawDebug(layout.Block{Type: "text_print"}, twoRowSnapshot())
	require.NoError(t, err)

	s := b.Session()
	b.ClearElems()
	require.True(t, s.Closed())

	s.DrawSpacerRow(spacer(50, 10), 0)
	s.DrawConnection(&layout.Connector{Type: layout.InputValue})
	assert.Zero(t, surf.Len())
	assert.Empty(t, s.Elements())
	assert.Contains(t, buf.String(), "closed session")

	b.ClearElems()
	assert.Zero(t, surf.Len())

	res, err := b.DrawDebug(layout.Block{Type: "text_print"}, twoRowSnapshot())
	require.NoError(t, err)
	assert.Equal(t, len(res.Elements), surf.Len())
}

func TestRectClassesAndCorners(t *testing.T) {
	s := newSession(NewMemorySurface(), log.New(&bytes.Buffer{}))
	row := layout.Row{Width: 60, Height: 30, Elements: []layout.Element{
		labelField("a"),
		valueInput(nil),
	}}
	s.DrawRowWithElements(row, 0, 1)
	s.DrawSpacerRow(spacer(60, 5), 30)
	s.DrawLeftParenthesis(row, 0)
	s.DrawRightParenthesis(row, 0)
	s.DrawBottomRow(row, 0, "repeat")

	classes := make(map[string]string)
	for _, e := range s.Elements() {
		key := e.Label
		if key == "" {
			key = e.Class
		}
		classes[key] = e.Class

		rowWide := e.X == 0 && e.Width == 60
		if rowWide {
			assert.Zero(t, e.RX, "row rect %q", key)
			assert.Zero(t, e.RY, "row rect %q", key)
		} else {
			assert.Equal(t, 3.0, e.RX, "element rect %q", key)
			assert.Equal(t, 3.0, e.RY, "element rect %q", key)
		}
	}

	assert.Equal(t, ClassRendering, classes["a. "])
	assert.Equal(t, ClassConnection, classes["Start of value connection. "])
	assert.Equal(t, ClassConnection, classes["End of value connection. "])
	assert.Equal(t, ClassRowSpacer, classes["left parenthesis. "])
	assert.Equal(t, ClassRowSpacer, classes["Right Parenthesis. "])
	assert.Equal(t, ClassRowSpacer, classes["End of repeat block."])
	assert.Equal(t, ClassRendering, classes[ClassRendering])
}
