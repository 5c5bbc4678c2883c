package overlay

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/blockoutline/pkg/layout"
)

const (
	cornerRadius = 3

	ringRadius = 4
	dotRadius  = 2

	colorValue     = "magenta"
	colorStatement = "goldenrod"
	colorRow       = "blue"
	colorElem      = "black"
	fillNone       = "none"
)

// Session is one debug pass. It owns every element it attaches and
// detaches them all on Close.
type Session struct {
	id      string
	surface Surface
	logger  *log.Logger

	elems  []Element
	annots annotations
	closed bool
}

func newSession(surface Surface, logger *log.Logger) *Session {
	id := uuid.NewString()
	return &Session{
		id:      id,
		surface: surface,
		logger:  logger.With("session", id[:8]),
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Elements returns the elements attached by this session, in creation order.
func (s *Session) Elements() []Element {
	return append([]Element(nil), s.elems...)
}

// Annotations returns the node annotations recorded by this session.
func (s *Session) Annotations() []Annotation { return s.annots.all() }

// Closed reports whether Close has been called.
func (s *Session) Closed() bool { return s.closed }

// Close detaches every element this session attached. It is idempotent.
func (s *Session) Close() {
	if s.closed {
		return
	}
	for _, e := range s.elems {
		s.surface.Detach(e.ID)
	}
	s.logger.Debug("overlay cleared", "elements", len(s.elems))
	s.elems = nil
	s.closed = true
}

// attach adds e to the surface. A closed session attaches nothing, since
// Close could never detach it again.
func (s *Session) attach(e Element) Element {
	if s.closed {
		s.logger.Warn("draw on closed session ignored", "class", e.Class)
		return e
	}
	e.ID = uuid.NewString()
	s.surface.Attach(e)
	s.elems = append(s.elems, e)
	return e
}

// rowRect is a square-cornered rectangle spanning a whole row.
func rowRect(class string, row layout.Row, cursorY float64) Element {
	return Element{
		Shape:  ShapeRect,
		Class:  class,
		Y:      cursorY,
		Width:  row.Width,
		Height: row.Height,
		Fill:   fillNone,
		Stroke: colorRow,
	}
}

// elemRect is a rounded rectangle around one element.
func elemRect(class string, elem layout.Element, x, y float64) Element {
	return Element{
		Shape:  ShapeRect,
		Class:  class,
		X:      x,
		Y:      y,
		Width:  elem.Width,
		Height: elem.Height,
		RX:     cornerRadius,
		RY:     cornerRadius,
		Fill:   fillNone,
		Stroke: colorElem,
	}
}

// DrawSpacerRow outlines a spacer row.
func (s *Session) DrawSpacerRow(row layout.Row, cursorY float64) {
	s.attach(rowRect(ClassRowSpacer, row, cursorY))
}

// DrawRenderedRow outlines a content row and gives it the row's base key.
func (s *Session) DrawRenderedRow(row layout.Row, cursorY float64, rowIndex int) {
	e := rowRect(ClassRendering, row, cursorY)
	e.Order = RowOrder(rowIndex).ptr()
	s.attach(e)
}

// DrawSpacerElem is a no-op; spacer elements get no overlay.
func (s *Session) DrawSpacerElem(layout.Element, float64, float64) {}

// DrawRenderedElem draws the overlay for one non-spacer element centered
// vertically on centerY. Label fields get a labelled rectangle; inputs get a
// pair of rectangles that bracket their position in navigation order.
func (s *Session) DrawRenderedElem(elem layout.Element, cursorX, centerY float64, rowIndex, elemIndex int) {
	y := centerY - elem.Height/2
	base := ElemOrder(rowIndex, elemIndex)

	switch {
	case elem.Kind == layout.KindField:
		if elem.Field == nil || elem.Field.Kind != layout.FieldLabel {
			return
		}
		e := elemRect(ClassRendering, elem, cursorX, y)
		e.Label = elem.Field.Text + ". "
		e.Order = (base + 1).ptr()
		s.attach(e)

	case elem.IsInput():
		if elem.Connector == nil {
			return
		}
		desc := s.connectionDescription(elem.Connector.Type)

		start := elemRect(ClassConnection, elem, cursorX, y)
		start.Label = "Start of " + desc
		start.Order = (base - 0.5).ptr()
		s.attach(start)

		end := elemRect(ClassConnection, elem, cursorX, y)
		end.Label = "End of " + desc
		end.Order = (base + 0.5).ptr()
		s.attach(end)

		if child := connectedChild(elem); child != nil && child.Type == "math_number" {
			s.annots.set(NodeRef{Kind: NodeChildBlock, ID: child.ID}, nil, child.Value)
		}
	}
}

func (s *Session) connectionDescription(t layout.ConnectorType) string {
	switch t {
	case layout.InputValue:
		return "value connection. "
	case layout.NextStatement:
		return "statement connection. "
	default:
		s.logger.Warn("unknown connection type", "type", int(t))
		return ""
	}
}

// DrawConnection marks a connector: rings for receiving sides, dots for
// the sides that plug in, magenta for values and goldenrod for statements.
func (s *Session) DrawConnection(conn *layout.Connector) {
	if conn == nil {
		return
	}
	var (
		r      float64
		color  string
		filled bool
	)
	switch conn.Type {
	case layout.InputValue:
		r, color = ringRadius, colorValue
	case layout.OutputValue:
		r, color, filled = dotRadius, colorValue, true
	case layout.NextStatement:
		r, color = ringRadius, colorStatement
	case layout.PreviousStatement:
		r, color, filled = dotRadius, colorStatement, true
	default:
		s.logger.Warn("unknown connection type", "type", int(conn.Type))
		return
	}
	e := Element{
		Shape:  ShapeCircle,
		Class:  ClassDebug,
		CX:     conn.Offset.X,
		CY:     conn.Offset.Y,
		R:      r,
		Stroke: color,
		Fill:   fillNone,
	}
	if filled {
		e.Fill = color
	}
	s.attach(e)
}

// DrawRowWithElements draws every element of a content row left to right,
// then the row rectangle itself.
func (s *Session) DrawRowWithElements(row layout.Row, cursorY float64, rowIndex int) {
	if len(row.Elements) >= OrderBand {
		s.logger.Warn("row overflows its navigation band",
			"row", rowIndex, "elements", len(row.Elements), "band", OrderBand)
	}
	centerY := row.CenterY(cursorY)
	cursorX := 0.0
	for i, elem := range row.Elements {
		if elem.IsSpacer() {
			s.DrawSpacerElem(elem, cursorX, centerY)
		} else {
			s.DrawRenderedElem(elem, cursorX, centerY, rowIndex, i)
		}
		cursorX += elem.Width
	}
	s.DrawRenderedRow(row, cursorY, rowIndex)
}

// DrawLeftParenthesis labels the first row of an operator block.
func (s *Session) DrawLeftParenthesis(row layout.Row, cursorY float64) {
	e := rowRect(ClassRowSpacer, row, cursorY)
	e.Label = "left parenthesis. "
	e.Order = OrderFirst.ptr()
	s.attach(e)
}

// DrawRightParenthesis labels the last row of an operator block.
func (s *Session) DrawRightParenthesis(row layout.Row, cursorY float64) {
	e := rowRect(ClassRowSpacer, row, cursorY)
	e.Label = "Right Parenthesis. "
	e.Order = OrderLast.ptr()
	s.attach(e)
}

// DrawBottomRow labels the closing row of a nesting block.
func (s *Session) DrawBottomRow(row layout.Row, cursorY float64, blockName string) {
	e := rowRect(ClassRowSpacer, row, cursorY)
	e.Label = "End of " + blockName + " block."
	e.Order = OrderLast.ptr()
	s.attach(e)
}

// annotateRow records order and label annotations for the real editor
// nodes in a content row.
func (s *Session) annotateRow(row layout.Row, rowIndex int, blockName string) {
	for i, elem := range row.Elements {
		order := ElemOrder(rowIndex, i).ptr()
		switch {
		case elem.Connector != nil:
			if child := connectedChild(elem); child != nil {
				s.annots.set(NodeRef{Kind: NodeChildBlock, ID: child.ID}, order, "")
			}
		case elem.Kind == layout.KindField && elem.Field != nil && elem.Field.Kind == layout.FieldVariable:
			s.annots.set(NodeRef{Kind: NodeVariableField, ID: elem.Field.NodeID}, order,
				"editable droplist. "+elem.Field.Text+". ")
		case elem.Kind == layout.KindIcon && elem.Icon != nil:
			s.annots.set(NodeRef{Kind: NodeIcon, ID: elem.Icon.NodeID}, order,
				"Modifier for "+blockName+" block.")
		}
	}
}

func connectedChild(elem layout.Element) *layout.ChildRef {
	if elem.Connected != nil {
		return elem.Connected
	}
	if elem.Connector != nil {
		return elem.Connector.Target
	}
	return nil
}
