package io

import (
	"github.com/matzehuels/blockoutline/pkg/errors"
	"github.com/matzehuels/blockoutline/pkg/layout"
)

// Document is a block together with its layout snapshot.
type Document struct {
	Block    layout.Block
	Snapshot layout.Snapshot
}

var elementKinds = map[string]layout.ElementKind{
	"spacer":         layout.KindSpacer,
	"field":          layout.KindField,
	"icon":           layout.KindIcon,
	"external_value": layout.KindExternalValue,
	"inline_value":   layout.KindInlineValue,
	"statement":      layout.KindStatement,
}

var fieldKinds = map[string]layout.FieldKind{
	"":         layout.FieldOther,
	"other":    layout.FieldOther,
	"label":    layout.FieldLabel,
	"variable": layout.FieldVariable,
	"dropdown": layout.FieldDropdown,
	"text":     layout.FieldText,
	"number":   layout.FieldNumber,
}

var connectorTypes = map[string]layout.ConnectorType{
	"input":    layout.InputValue,
	"output":   layout.OutputValue,
	"next":     layout.NextStatement,
	"previous": layout.PreviousStatement,
}

type document struct {
	Block  block    `json:"block" yaml:"block" toml:"block"`
	Layout snapshot `json:"layout" yaml:"layout" toml:"layout"`
}

type block struct {
	ID       string     `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	Type     string     `json:"type" yaml:"type" toml:"type"`
	Fields   []string   `json:"fields,omitempty" yaml:"fields,omitempty" toml:"fields,omitempty"`
	Previous *connector `json:"previous,omitempty" yaml:"previous,omitempty" toml:"previous,omitempty"`
	Next     *connector `json:"next,omitempty" yaml:"next,omitempty" toml:"next,omitempty"`
	Output   *connector `json:"output,omitempty" yaml:"output,omitempty" toml:"output,omitempty"`
}

type snapshot struct {
	Width            float64 `json:"width,omitempty" yaml:"width,omitempty" toml:"width,omitempty"`
	Height           float64 `json:"height,omitempty" yaml:"height,omitempty" toml:"height,omitempty"`
	RightEdge        float64 `json:"right_edge,omitempty" yaml:"right_edge,omitempty" toml:"right_edge,omitempty"`
	RTL              bool    `json:"rtl,omitempty" yaml:"rtl,omitempty" toml:"rtl,omitempty"`
	SquareTopLeft    bool    `json:"square_top_left,omitempty" yaml:"square_top_left,omitempty" toml:"square_top_left,omitempty"`
	SquareBottomLeft bool    `json:"square_bottom_left,omitempty" yaml:"square_bottom_left,omitempty" toml:"square_bottom_left,omitempty"`
	HasPrevious      bool    `json:"has_previous,omitempty" yaml:"has_previous,omitempty" toml:"has_previous,omitempty"`
	HasNext          bool    `json:"has_next,omitempty" yaml:"has_next,omitempty" toml:"has_next,omitempty"`
	HasOutput        bool    `json:"has_output,omitempty" yaml:"has_output,omitempty" toml:"has_output,omitempty"`
	StartHat         bool    `json:"start_hat,omitempty" yaml:"start_hat,omitempty" toml:"start_hat,omitempty"`
	Rows             []row   `json:"rows" yaml:"rows" toml:"rows"`
}

type row struct {
	Width         float64   `json:"width,omitempty" yaml:"width,omitempty" toml:"width,omitempty"`
	Height        float64   `json:"height,omitempty" yaml:"height,omitempty" toml:"height,omitempty"`
	Spacer        bool      `json:"spacer,omitempty" yaml:"spacer,omitempty" toml:"spacer,omitempty"`
	StatementEdge float64   `json:"statement_edge,omitempty" yaml:"statement_edge,omitempty" toml:"statement_edge,omitempty"`
	HasNext       bool      `json:"has_next,omitempty" yaml:"has_next,omitempty" toml:"has_next,omitempty"`
	Elements      []element `json:"elements,omitempty" yaml:"elements,omitempty" toml:"elements,omitempty"`
}

type element struct {
	Kind      string     `json:"kind" yaml:"kind" toml:"kind"`
	Width     float64    `json:"width,omitempty" yaml:"width,omitempty" toml:"width,omitempty"`
	Height    float64    `json:"height,omitempty" yaml:"height,omitempty" toml:"height,omitempty"`
	Field     *field     `json:"field,omitempty" yaml:"field,omitempty" toml:"field,omitempty"`
	Icon      *icon      `json:"icon,omitempty" yaml:"icon,omitempty" toml:"icon,omitempty"`
	Connector *connector `json:"connector,omitempty" yaml:"connector,omitempty" toml:"connector,omitempty"`
	Connected *child     `json:"connected,omitempty" yaml:"connected,omitempty" toml:"connected,omitempty"`
}

type field struct {
	ID   string `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	Text string `json:"text" yaml:"text" toml:"text"`
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty" toml:"kind,omitempty"`
}

type icon struct {
	ID string `json:"id" yaml:"id" toml:"id"`
}

type connector struct {
	Type   string  `json:"type" yaml:"type" toml:"type"`
	X      float64 `json:"x,omitempty" yaml:"x,omitempty" toml:"x,omitempty"`
	Y      float64 `json:"y,omitempty" yaml:"y,omitempty" toml:"y,omitempty"`
	Target *child  `json:"target,omitempty" yaml:"target,omitempty" toml:"target,omitempty"`
}

type child struct {
	ID    string `json:"id" yaml:"id" toml:"id"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
	Value string `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
}

func (d document) toDocument() (*Document, error) {
	b, err := d.Block.toBlock()
	if err != nil {
		return nil, err
	}
	snap, err := d.Layout.toSnapshot()
	if err != nil {
		return nil, err
	}
	snap.HasPrevious = snap.HasPrevious || b.Previous != nil
	snap.HasNext = snap.HasNext || b.Next != nil
	snap.HasOutput = snap.HasOutput || b.Output != nil
	return &Document{Block: b, Snapshot: snap}, nil
}

func (b block) toBlock() (layout.Block, error) {
	out := layout.Block{ID: b.ID, Type: b.Type, Fields: b.Fields}
	var err error
	if out.Previous, err = b.Previous.toConnector("block previous"); err != nil {
		return out, err
	}
	if out.Next, err = b.Next.toConnector("block next"); err != nil {
		return out, err
	}
	if out.Output, err = b.Output.toConnector("block output"); err != nil {
		return out, err
	}
	return out, nil
}

func (s snapshot) toSnapshot() (layout.Snapshot, error) {
	out := layout.Snapshot{
		Width:            s.Width,
		Height:           s.Height,
		RightEdge:        s.RightEdge,
		RTL:              s.RTL,
		SquareTopLeft:    s.SquareTopLeft,
		SquareBottomLeft: s.SquareBottomLeft,
		HasPrevious:      s.HasPrevious,
		HasNext:          s.HasNext,
		HasOutput:        s.HasOutput,
		StartHat:         s.StartHat,
		Rows:             make([]layout.Row, len(s.Rows)),
	}
	if s.Width < 0 || s.Height < 0 || s.RightEdge < 0 {
		return out, errors.New(errors.ErrCodeInvalidSnapshot, "layout: negative dimension")
	}

	var maxWidth, sumHeight float64
	for i, r := range s.Rows {
		lr, err := r.toRow(i)
		if err != nil {
			return out, err
		}
		out.Rows[i] = lr
		maxWidth = max(maxWidth, lr.Width)
		sumHeight += lr.Height
	}
	if out.Width == 0 {
		out.Width = maxWidth
	}
	if out.Height == 0 {
		out.Height = sumHeight
	}
	return out, nil
}

func (r row) toRow(idx int) (layout.Row, error) {
	out := layout.Row{
		Width:         r.Width,
		Height:        r.Height,
		Spacer:        r.Spacer,
		StatementEdge: r.StatementEdge,
		HasNext:       r.HasNext,
		Elements:      make([]layout.Element, len(r.Elements)),
	}
	if r.Width < 0 || r.Height < 0 || r.StatementEdge < 0 {
		return out, errors.New(errors.ErrCodeInvalidSnapshot, "row %d: negative dimension", idx)
	}

	var sumWidth, maxHeight float64
	for j, e := range r.Elements {
		le, err := e.toElement()
		if err != nil {
			return out, errors.Wrap(errors.GetCode(err), err, "row %d element %d", idx, j)
		}
		out.Elements[j] = le
		sumWidth += le.Width
		maxHeight = max(maxHeight, le.Height)
	}
	if out.Width == 0 {
		out.Width = sumWidth
	}
	if out.Height == 0 {
		out.Height = maxHeight
	}
	return out, nil
}

func (e element) toElement() (layout.Element, error) {
	kind, ok := elementKinds[e.Kind]
	if !ok {
		return layout.Element{}, errors.New(errors.ErrCodeInvalidFormat, "unknown element kind %q", e.Kind)
	}
	if e.Width < 0 || e.Height < 0 {
		return layout.Element{}, errors.New(errors.ErrCodeInvalidSnapshot, "negative dimension")
	}
	out := layout.Element{Kind: kind, Width: e.Width, Height: e.Height}

	switch kind {
	case layout.KindField:
		if e.Field == nil {
			return out, errors.New(errors.ErrCodeInvalidFormat, "field element without field")
		}
		fk, ok := fieldKinds[e.Field.Kind]
		if !ok {
			return out, errors.New(errors.ErrCodeInvalidFormat, "unknown field kind %q", e.Field.Kind)
		}
		out.Field = &layout.Field{NodeID: e.Field.ID, Text: e.Field.Text, Kind: fk}
	case layout.KindIcon:
		if e.Icon != nil {
			out.Icon = &layout.Icon{NodeID: e.Icon.ID}
		}
	case layout.KindExternalValue, layout.KindInlineValue, layout.KindStatement:
		conn, err := e.Connector.toConnector("input")
		if err != nil {
			return out, err
		}
		out.Connector = conn
		out.Connected = e.Connected.toChild()
	}
	return out, nil
}

func (c *connector) toConnector(what string) (*layout.Connector, error) {
	if c == nil {
		return nil, nil
	}
	t, ok := connectorTypes[c.Type]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "%s: unknown connector type %q", what, c.Type)
	}
	return &layout.Connector{
		Type:   t,
		Offset: layout.Point{X: c.X, Y: c.Y},
		Target: c.Target.toChild(),
	}, nil
}

func (c *child) toChild() *layout.ChildRef {
	if c == nil {
		return nil
	}
	return &layout.ChildRef{ID: c.ID, Type: c.Type, Value: c.Value}
}
