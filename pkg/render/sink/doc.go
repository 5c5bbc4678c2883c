// Package sink writes a rendered block document to its output formats.
//
// [RenderSVG] produces a standalone SVG: the block body, its highlight
// paths, and (when supplied) the debug overlay with navigation-order and
// label attributes on each shape. [RenderJSON] produces a machine-readable
// bundle of the normalized document, the highlight path data, and the
// overlay result including annotations.
//
// Both sinks take functional options so that either layer can be omitted:
//
//	svg := sink.RenderSVG(doc, sink.WithOutline(out), sink.WithOverlay(dbg))
//	js, err := sink.RenderJSON(doc, sink.WithJSONOutline(out))
package sink
