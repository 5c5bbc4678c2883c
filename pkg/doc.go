// Package pkg provides the libraries behind blockoutline.
//
// # Overview
//
// Blockoutline turns the measured layout of a visual-programming block into
// the SVG path that outlines it for highlighting, and optionally into a
// debug overlay that marks every row, element and connection and assigns
// each a keyboard navigation order.
//
// # Architecture
//
//	document (json / yaml / toml)
//	         ↓
//	    [io] package (decode into a layout snapshot)
//	         ↓
//	    [outline] package (walk rows, drive [highlight])
//	         ↓                      ↘
//	    [svgpath] streams        [overlay] package (debug elements + annotations)
//	         ↓                      ↙
//	    [render] packages (svg, json, navigation graph, png, pdf)
//
// [pipeline] orchestrates the stages with an artifact [cache] and reports
// stage timings through [observability].
//
// # Quick Start
//
//	doc, _ := io.Import("print.yaml")
//	res, _ := outline.Walk(&doc.Snapshot)
//	fmt.Println(res.Outer.String())
//
// # Main Packages
//
//   - [layout]: measured rows, elements and connectors of one block
//   - [shapes]: shape constants and the path fragments derived from them
//   - [svgpath]: path commands, streams and pen tracing
//   - [highlight]: the highlight path builder
//   - [outline]: the row walk that drives the builder
//   - [overlay]: the debug overlay builder and its navigation order
//   - [io]: document import and export
//   - [pipeline]: load → outline → overlay → render with caching
//
// [io]: github.com/matzehuels/blockoutline/pkg/io
// [layout]: github.com/matzehuels/blockoutline/pkg/layout
// [shapes]: github.com/matzehuels/blockoutline/pkg/shapes
// [svgpath]: github.com/matzehuels/blockoutline/pkg/svgpath
// [highlight]: github.com/matzehuels/blockoutline/pkg/highlight
// [outline]: github.com/matzehuels/blockoutline/pkg/outline
// [overlay]: github.com/matzehuels/blockoutline/pkg/overlay
// [render]: github.com/matzehuels/blockoutline/pkg/render
// [pipeline]: github.com/matzehuels/blockoutline/pkg/pipeline
// [cache]: github.com/matzehuels/blockoutline/pkg/cache
// [observability]: github.com/matzehuels/blockoutline/pkg/observability
package pkg
