package sink

import (
	"bytes"
	"encoding/json"

	"github.com/matzehuels/blockoutline/pkg/errors"
	bio "github.com/matzehuels/blockoutline/pkg/io"
	"github.com/matzehuels/blockoutline/pkg/outline"
	"github.com/matzehuels/blockoutline/pkg/overlay"
	sp "github.com/matzehuels/blockoutline/pkg/svgpath"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	outline *outline.Result
	overlay *overlay.Result
}

// WithJSONOutline includes the highlight paths and their pen traces.
func WithJSONOutline(r *outline.Result) JSONOption { return func(j *jsonRenderer) { j.outline = r } }

// WithJSONOverlay includes the overlay elements and annotations.
func WithJSONOverlay(r *overlay.Result) JSONOption { return func(j *jsonRenderer) { j.overlay = r } }

type jsonOutput struct {
	Document  json.RawMessage `json:"document"`
	Highlight *jsonHighlight  `json:"highlight,omitempty"`
	Overlay   *overlay.Result `json:"overlay,omitempty"`
}

type jsonHighlight struct {
	Outer  jsonPath `json:"outer"`
	Inline jsonPath `json:"inline"`
}

type jsonPath struct {
	D         string      `json:"d"`
	Fragments []string    `json:"fragments,omitempty"`
	Closed    bool        `json:"closed"`
	Start     sp.Point    `json:"start"`
	End       sp.Point    `json:"end"`
	Segments  int         `json:"segments"`
	Bounds    [2]sp.Point `json:"bounds"`
}

// RenderJSON encodes doc and the supplied layers as indented JSON.
func RenderJSON(doc *bio.Document, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	var docBuf bytes.Buffer
	if err := bio.WriteJSON(doc, &docBuf); err != nil {
		return nil, err
	}

	out := jsonOutput{
		Document: json.RawMessage(bytes.TrimSpace(docBuf.Bytes())),
		Overlay:  r.overlay,
	}
	if r.outline != nil {
		out.Highlight = &jsonHighlight{
			Outer:  pathOf(r.outline.Outer),
			Inline: pathOf(r.outline.Inline),
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode json")
	}
	return append(data, '\n'), nil
}

func pathOf(s *sp.Stream) jsonPath {
	tr := sp.TraceOf(s)
	p := jsonPath{
		D:        s.String(),
		Closed:   tr.Closed(),
		Start:    tr.Start,
		End:      tr.End,
		Segments: tr.Segments,
		Bounds:   [2]sp.Point{tr.Min, tr.Max},
	}
	for _, in := range s.Instructions() {
		if in.IsFragment() {
			p.Fragments = append(p.Fragments, in.Fragment)
		}
	}
	return p
}
