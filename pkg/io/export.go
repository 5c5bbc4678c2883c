package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/blockoutline/pkg/errors"
	"github.com/matzehuels/blockoutline/pkg/layout"
)

// invert reverses a name table, skipping the zero-valued alias.
func invert[K, V comparable](m map[K]V) map[V]K {
	var zero K
	out := make(map[V]K, len(m))
	for k, v := range m {
		if k == zero {
			continue
		}
		out[v] = k
	}
	return out
}

var (
	elementKindNames   = invert(elementKinds)
	fieldKindNames     = invert(fieldKinds)
	connectorTypeNames = invert(connectorTypes)
)

// WriteJSON encodes doc as indented JSON. Derived dimensions are written
// explicitly, so the output re-imports to an identical document.
func WriteJSON(doc *Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fromDocument(doc)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode json")
	}
	return nil
}

// ExportJSON writes doc to a JSON file at path.
func ExportJSON(doc *Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer f.Close()
	return WriteJSON(doc, f)
}

func fromDocument(doc *Document) document {
	b, s := doc.Block, doc.Snapshot
	out := document{
		Block: block{
			ID:       b.ID,
			Type:     b.Type,
			Fields:   b.Fields,
			Previous: fromConnector(b.Previous),
			Next:     fromConnector(b.Next),
			Output:   fromConnector(b.Output),
		},
		Layout: snapshot{
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
			Rows:             make([]row, len(s.Rows)),
		},
	}
	for i, r := range s.Rows {
		wr := row{
			Width:         r.Width,
			Height:        r.Height,
			Spacer:        r.Spacer,
			StatementEdge: r.StatementEdge,
			HasNext:       r.HasNext,
		}
		for _, e := range r.Elements {
			wr.Elements = append(wr.Elements, fromElement(e))
		}
		out.Layout.Rows[i] = wr
	}
	return out
}

func fromElement(e layout.Element) element {
	out := element{
		Kind:      elementKindNames[e.Kind],
		Width:     e.Width,
		Height:    e.Height,
		Connector: fromConnector(e.Connector),
		Connected: fromChild(e.Connected),
	}
	if e.Field != nil {
		out.Field = &field{ID: e.Field.NodeID, Text: e.Field.Text, Kind: fieldKindNames[e.Field.Kind]}
	}
	if e.Icon != nil {
		out.Icon = &icon{ID: e.Icon.NodeID}
	}
	return out
}

func fromConnector(c *layout.Connector) *connector {
	if c == nil {
		return nil
	}
	return &connector{
		Type:   connectorTypeNames[c.Type],
		X:      c.Offset.X,
		Y:      c.Offset.Y,
		Target: fromChild(c.Target),
	}
}

func fromChild(c *layout.ChildRef) *child {
	if c == nil {
		return nil
	}
	return &child{ID: c.ID, Type: c.Type, Value: c.Value}
}
