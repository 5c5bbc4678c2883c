// Package navgraph draws the navigation order of a debug overlay as a
// Graphviz diagram: one node per ordered stop, chained in the sequence
// assistive traversal visits them.
//
// Overlay rectangles render as boxes; annotated editor nodes (child blocks,
// variable fields, icons) render as ellipses. Stops sharing a key are kept
// in creation order.
//
//	dot := navgraph.ToDOT(result, navgraph.Options{})
//	svg, err := navgraph.RenderSVG(ctx, dot)
package navgraph
