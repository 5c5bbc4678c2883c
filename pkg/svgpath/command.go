package svgpath

import (
	"math"
	"strconv"
	"strings"
)

// Op is a single SVG path command letter. Upper case is absolute, lower
// case relative to the current pen position.
type Op byte

const (
	MoveAbs   Op = 'M'
	MoveRel   Op = 'm'
	LineAbs   Op = 'L'
	LineRel   Op = 'l'
	HAbs      Op = 'H'
	HRel      Op = 'h'
	VAbs      Op = 'V'
	VRel      Op = 'v'
	ArcAbs    Op = 'A'
	ArcRel    Op = 'a'
	QuadAbs   Op = 'Q'
	QuadRel   Op = 'q'
	CubicAbs  Op = 'C'
	CubicRel  Op = 'c'
	SmoothAbs Op = 'S'
	SmoothRel Op = 's'
	ClosePath Op = 'Z'
)

// groups lists how each command's argument tuple is split when written,
// e.g. an arc is "rx,ry rotation large,sweep x,y".
var groups = map[Op][]int{
	'M': {2}, 'L': {2},
	'H': {1}, 'V': {1},
	'A': {2, 1, 2, 2},
	'Q': {2, 2},
	'C': {2, 2, 2},
	'S': {2, 2},
	'Z': {},
}

// Abs reports whether the op uses absolute coordinates.
func (o Op) Abs() bool { return o >= 'A' && o <= 'Z' }

func (o Op) upper() Op {
	if o.Abs() {
		return o
	}
	return o - ('a' - 'A')
}

// arity returns the number of arguments one repetition of the op consumes.
func (o Op) arity() int {
	n := 0
	for _, g := range groups[o.upper()] {
		n += g
	}
	return n
}

// Command is one path command with its literal arguments. Args may hold
// several repetitions of the op's argument tuple, as in "l 6,4 3,0 6,-4".
type Command struct {
	Op   Op
	Args []float64
}

// MoveTo moves the pen to an absolute position without drawing.
func MoveTo(x, y float64) Command { return Command{MoveAbs, []float64{x, y}} }

// MoveBy moves the pen by a relative offset without drawing.
func MoveBy(dx, dy float64) Command { return Command{MoveRel, []float64{dx, dy}} }

// LineBy draws straight segments by relative offsets given as dx,dy pairs.
func LineBy(d ...float64) Command { return Command{LineRel, d} }

// H draws a horizontal line to an absolute x.
func H(x float64) Command { return Command{HAbs, []float64{x}} }

// HBy draws a horizontal line of relative length dx.
func HBy(dx float64) Command { return Command{HRel, []float64{dx}} }

// V draws a vertical line to an absolute y.
func V(y float64) Command { return Command{VAbs, []float64{y}} }

// VBy draws a vertical line of relative length dy.
func VBy(dy float64) Command { return Command{VRel, []float64{dy}} }

// ArcTo draws an elliptical arc ending at an absolute position.
func ArcTo(rx, ry, rotation float64, large, sweep bool, x, y float64) Command {
	return Command{ArcAbs, []float64{rx, ry, rotation, flag(large), flag(sweep), x, y}}
}

// ArcBy draws an elliptical arc ending at a relative offset.
func ArcBy(rx, ry, rotation float64, large, sweep bool, dx, dy float64) Command {
	return Command{ArcRel, []float64{rx, ry, rotation, flag(large), flag(sweep), dx, dy}}
}

// QuadBy draws a quadratic Bézier with relative control and end points.
func QuadBy(cx, cy, dx, dy float64) Command {
	return Command{QuadRel, []float64{cx, cy, dx, dy}}
}

// CurveBy draws a cubic Bézier with relative control and end points.
func CurveBy(c1x, c1y, c2x, c2y, dx, dy float64) Command {
	return Command{CubicRel, []float64{c1x, c1y, c2x, c2y, dx, dy}}
}

// SmoothCurveBy draws a smooth cubic Bézier with relative points.
func SmoothCurveBy(c2x, c2y, dx, dy float64) Command {
	return Command{SmoothRel, []float64{c2x, c2y, dx, dy}}
}

// Close closes the current subpath.
func Close() Command { return Command{Op: ClosePath} }

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// String writes the command in SVG path syntax, e.g. "A 7.5,7.5 0 0,1 8,0.5".
func (c Command) String() string {
	var sb strings.Builder
	sb.WriteByte(byte(c.Op))
	g := groups[c.Op.upper()]
	i := 0
	for i < len(c.Args) {
		for _, n := range g {
			if i >= len(c.Args) {
				break
			}
			sb.WriteByte(' ')
			for j := 0; j < n && i < len(c.Args); j++ {
				if j > 0 {
					sb.WriteByte(',')
				}
				sb.WriteString(formatNum(c.Args[i]))
				i++
			}
		}
		if len(g) == 0 {
			break
		}
	}
	return sb.String()
}

// formatNum rounds to four decimals so constants like 8*0.46 print cleanly.
func formatNum(v float64) string {
	v = math.Round(v*1e4) / 1e4
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
