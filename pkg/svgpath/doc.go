// Package svgpath models the append-only instruction streams produced by the
// highlighter.
//
// A [Stream] is an ordered list of [Instruction] values. Each instruction is
// either a literal drawing command with numeric arguments (for example
// "draw a horizontal line to x") or an embedded [Fragment] taken from the
// shape catalog (a notch, a tab, a corner). Streams serialise to the SVG path
// data syntax with [Stream.String].
//
// [TraceOf] replays a stream with a virtual pen, which lets tests and tools
// check that a finished outline returns to its starting point:
//
//	tr := svgpath.TraceOf(stream)
//	if !tr.Closed() {
//	    dx, dy := tr.Displacement()
//	    // the walk left the pen (dx, dy) away from where it started
//	}
package svgpath
