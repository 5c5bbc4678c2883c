package navgraph

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/blockoutline/pkg/errors"
	"github.com/matzehuels/blockoutline/pkg/overlay"
)

// Options configures diagram generation.
type Options struct {
	// Detailed adds the element geometry to each overlay node's label.
	Detailed bool
}

// Stop is one position in the navigation sequence.
type Stop struct {
	ID    string
	Order overlay.NavOrder
	Label string
	Node  *overlay.NodeRef
	Elem  *overlay.Element
}

// Stops merges the ordered overlay elements and annotations of res into a
// single sequence sorted by key.
func Stops(res *overlay.Result) []Stop {
	var stops []Stop
	for _, e := range overlay.SortByOrder(res.Elements) {
		stops = append(stops, Stop{ID: e.ID, Order: *e.Order, Label: e.Label, Elem: &e})
	}
	for _, a := range res.Annotations {
		if a.Order == nil {
			continue
		}
		node := a.Node
		stops = append(stops, Stop{
			ID:    node.Kind.String() + ":" + node.ID,
			Order: *a.Order,
			Label: a.Label,
			Node:  &node,
		})
	}
	slices.SortStableFunc(stops, func(a, b Stop) int { return cmp.Compare(a.Order, b.Order) })
	return stops
}

// ToDOT converts the navigation sequence of res to Graphviz DOT.
func ToDOT(res *overlay.Result, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph Navigation {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	stops := Stops(res)
	for _, s := range stops {
		fmt.Fprintf(&buf, "  %q [%s];\n", s.ID, strings.Join(fmtAttrs(s, opts.Detailed), ", "))
	}

	buf.WriteString("\n")
	for i := 1; i < len(stops); i++ {
		fmt.Fprintf(&buf, "  %q -> %q;\n", stops[i-1].ID, stops[i].ID)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(s Stop, detailed bool) string {
	label := strings.TrimSpace(s.Label)
	if label == "" && s.Node != nil {
		label = s.Node.Kind.String()
	}
	parts := []string{fmt.Sprintf("%s: %s", strconv.FormatFloat(float64(s.Order), 'f', -1, 64), label)}
	if detailed && s.Elem != nil {
		e := s.Elem
		parts = append(parts, fmt.Sprintf("x=%g y=%g w=%g h=%g", e.X, e.Y, e.Width, e.Height))
	}
	return strings.Join(parts, "\n")
}

func fmtAttrs(s Stop, detailed bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(s, detailed))}
	if s.Node != nil {
		attrs = append(attrs, "shape=ellipse", "style=\"filled,dashed\"", "fillcolor=lightgrey")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's root tag with one whose origin is
// zero and whose size matches the viewBox.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
