package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"

	bio "github.com/matzehuels/blockoutline/pkg/io"
	"github.com/matzehuels/blockoutline/pkg/outline"
	"github.com/matzehuels/blockoutline/pkg/overlay"
)

const blockCSS = `
    .blockBody { fill: #5b80a5; stroke: #3f5973; }
    .blockHighlight { fill: none; stroke: #8ca6c0; stroke-width: 1; }
    .blockRenderDebug { stroke-width: 0.5; }
    .rowSpacerRect { stroke-dasharray: 3 2; }`

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	outline *outline.Result
	overlay *overlay.Result
	margin  float64
}

func WithOutline(r *outline.Result) SVGOption { return func(s *svgRenderer) { s.outline = r } }
func WithOverlay(r *overlay.Result) SVGOption { return func(s *svgRenderer) { s.overlay = r } }

// WithMargin sets the padding around the block. The default is 10.
func WithMargin(m float64) SVGOption { return func(s *svgRenderer) { s.margin = m } }

// RenderSVG draws doc as a standalone SVG document. Right-to-left blocks
// are mirrored about their vertical center.
func RenderSVG(doc *bio.Document, opts ...SVGOption) []byte {
	r := svgRenderer{margin: 10}
	for _, opt := range opts {
		opt(&r)
	}

	snap := doc.Snapshot
	w, h := snap.Width, snap.Height
	fullW, fullH := w+2*r.margin, h+2*r.margin

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%.0f" height="%.0f">`+"\n",
		num(-r.margin), num(-r.margin), num(fullW), num(fullH), fullW, fullH)
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", blockCSS)

	transform := ""
	if snap.RTL {
		transform = fmt.Sprintf(` transform="translate(%s,0) scale(-1 1)"`, num(w))
	}
	fmt.Fprintf(&buf, `  <g class="block" id="block-%s" data-type="%s"%s>`+"\n",
		escapeXML(doc.Block.ID), escapeXML(doc.Block.Type), transform)
	fmt.Fprintf(&buf, `    <rect class="blockBody" width="%s" height="%s"/>`+"\n", num(w), num(h))

	if r.outline != nil {
		renderPath(&buf, "blockHighlight", r.outline.Outer.String())
		renderPath(&buf, "blockHighlight inline", r.outline.Inline.String())
	}
	if r.overlay != nil {
		for _, e := range r.overlay.Elements {
			renderElement(&buf, e)
		}
	}

	buf.WriteString("  </g>\n</svg>\n")
	return buf.Bytes()
}

func renderPath(buf *bytes.Buffer, class, d string) {
	if d == "" {
		return
	}
	fmt.Fprintf(buf, `    <path class="%s" d="%s"/>`+"\n", class, escapeXML(d))
}

func renderElement(buf *bytes.Buffer, e overlay.Element) {
	switch e.Shape {
	case overlay.ShapeCircle:
		fmt.Fprintf(buf, `    <circle id="%s" class="%s" cx="%s" cy="%s" r="%s" fill="%s" stroke="%s"/>`+"\n",
			e.ID, escapeXML(e.Class), num(e.CX), num(e.CY), num(e.R), e.Fill, e.Stroke)
	default:
		fmt.Fprintf(buf, `    <rect id="%s" class="%s" x="%s" y="%s" width="%s" height="%s" rx="%s" ry="%s" fill="%s" stroke="%s"%s/>`+"\n",
			e.ID, escapeXML(e.Class), num(e.X), num(e.Y), num(e.Width), num(e.Height),
			num(e.RX), num(e.RY), e.Fill, e.Stroke, navAttrs(e))
	}
}

func navAttrs(e overlay.Element) string {
	var s string
	if e.Order != nil {
		s += fmt.Sprintf(` data-navigation-order="%s"`, num(float64(*e.Order)))
	}
	if e.Label != "" {
		s += fmt.Sprintf(` aria-label="%s"`, escapeXML(e.Label))
	}
	return s
}

// num formats a coordinate, printing negative zero as 0.
func num(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
