package svgpath

import "math"

// Point is a pen position.
type Point struct {
	X, Y float64
}

// closeEnough is the tolerance used by Closed.
const closeEnough = 1e-6

// Trace is the result of replaying a stream with a virtual pen that starts
// at the origin.
type Trace struct {
	// Start is the pen position where the first visible segment begins.
	Start Point
	// End is the final pen position.
	End Point
	// Min and Max bound every position the pen visited after Start.
	Min, Max Point
	// Segments counts drawing commands, Moves counts pen-up moves.
	Segments, Moves int
}

// Displacement returns the cumulative pen movement from Start to End.
func (t Trace) Displacement() (dx, dy float64) {
	return t.End.X - t.Start.X, t.End.Y - t.Start.Y
}

// Closed reports whether the pen returned to where drawing started.
func (t Trace) Closed() bool {
	dx, dy := t.Displacement()
	return math.Abs(dx) < closeEnough && math.Abs(dy) < closeEnough
}

// TraceOf replays every command of s.
func TraceOf(s *Stream) Trace {
	p := &pen{}
	for _, c := range s.Commands() {
		p.apply(c)
	}
	if !p.started {
		p.tr.Start = p.pos
		p.tr.Min, p.tr.Max = p.pos, p.pos
	}
	p.tr.End = p.pos
	return p.tr
}

type pen struct {
	pos, subpath Point
	started      bool
	tr           Trace
}

func (p *pen) apply(c Command) {
	if c.Op.upper() == ClosePath {
		p.draw(p.subpath)
		return
	}
	n := c.Op.arity()
	for i := 0; i+n <= len(c.Args); i += n {
		a := c.Args[i : i+n]
		op := c.Op
		// Coordinate pairs after the first in a moveto are implicit linetos.
		if i > 0 {
			switch op {
			case MoveAbs:
				op = LineAbs
			case MoveRel:
				op = LineRel
			}
		}
		p.step(op, a)
	}
}

func (p *pen) step(op Op, a []float64) {
	base := p.pos
	if op.Abs() {
		base = Point{}
	}
	switch op.upper() {
	case MoveAbs:
		p.pos = Point{base.X + a[0], base.Y + a[1]}
		p.subpath = p.pos
		p.tr.Moves++
	case LineAbs:
		p.draw(Point{base.X + a[0], base.Y + a[1]})
	case HAbs:
		if op.Abs() {
			p.draw(Point{a[0], p.pos.Y})
		} else {
			p.draw(Point{p.pos.X + a[0], p.pos.Y})
		}
	case VAbs:
		if op.Abs() {
			p.draw(Point{p.pos.X, a[0]})
		} else {
			p.draw(Point{p.pos.X, p.pos.Y + a[0]})
		}
	case ArcAbs:
		p.draw(Point{base.X + a[5], base.Y + a[6]})
	case QuadAbs, SmoothAbs:
		p.draw(Point{base.X + a[2], base.Y + a[3]})
	case CubicAbs:
		p.draw(Point{base.X + a[4], base.Y + a[5]})
	}
}

func (p *pen) draw(to Point) {
	if !p.started {
		p.started = true
		p.tr.Start = p.pos
		p.tr.Min, p.tr.Max = p.pos, p.pos
	}
	p.pos = to
	p.tr.Segments++
	p.tr.Min = Point{math.Min(p.tr.Min.X, to.X), math.Min(p.tr.Min.Y, to.Y)}
	p.tr.Max = Point{math.Max(p.tr.Max.X, to.X), math.Max(p.tr.Max.Y, to.Y)}
}
