// Package overlay builds the diagnostic overlay of a rendered block: debug
// rectangles over rows and elements, rings and dots over connectors, and the
// navigation-order and label metadata accessibility tooling reads.
//
// # Lifecycle
//
// A [Builder] is bound to one [Surface] and is either [StateIdle] or
// [StateRendered]. Each call to [Builder.DrawDebug] opens a fresh [Session]
// that owns every element it creates; the previous session is closed first,
// which detaches all of its elements. There are no incremental updates.
//
//	b, _ := overlay.NewBuilder(surface, overlay.WithLogger(logger))
//	res, err := b.DrawDebug(block, snapshot)
//	// res.Elements: attached overlay shapes
//	// res.Annotations: order/label pairs for real editor nodes
//	b.ClearElems() // back to idle
//
// # Navigation order
//
// Keys reserve a band of [OrderBand] slots per row: a row's own rectangle is
// at 1000*row, a label field at 1000*row+index+1, and the two rectangles of
// an input bracket its position at 1000*row+index±0.5. Rows with 1000 or more
// elements would collide with the next band; the builder logs a warning when
// it sees one.
//
// # Annotations
//
// Rather than writing attributes onto editor nodes, the builder returns an
// [Annotation] list keyed by [NodeRef] (connected child blocks, variable
// fields, icons). Callers apply them to their own node graph.
package overlay
