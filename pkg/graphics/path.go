package graphics

import (
	"fmt"
	"math"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpArcTo                 // Draw arc of the oval in [l, t, r, b] from startAngle over sweepAngle
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpArcTo:
		return "arc_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // MoveTo/LineTo=[x,y], CubicTo=[x1,y1,x2,y2,x3,y3], ArcTo=[l,t,r,b,start,sweep]
}

// Path represents a vector path for drawing arbitrary shapes.
//
// Build paths using MoveTo, LineTo, CubicTo, ArcTo, and Close methods.
// Use with Canvas.DrawPath to fill or stroke.
type Path struct {
	Commands []PathCommand
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpMoveTo,
		Args: []float64{x, y},
	})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpLineTo,
		Args: []float64{x, y},
	})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpCubicTo,
		Args: []float64{x1, y1, x2, y2, x3, y3},
	})
}

// ArcTo adds an arc of the oval inscribed in bounds, beginning at
// startAngle and sweeping sweepAngle radians. Angle 0 points along +X
// and positive angles sweep toward +Y (clockwise on screen). If the
// path already has a current point, renderers connect it to the arc's
// start point with a straight line.
func (p *Path) ArcTo(bounds Rect, startAngle, sweepAngle float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpArcTo,
		Args: []float64{bounds.Left, bounds.Top, bounds.Right, bounds.Bottom, startAngle, sweepAngle},
	})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{
		Op: PathOpClose,
	})
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// Clear removes all commands from the path.
func (p *Path) Clear() {
	p.Commands = p.Commands[:0]
}

// Start returns the first subpath's starting point.
func (p *Path) Start() (Offset, bool) {
	for _, cmd := range p.Commands {
		if cmd.Op == PathOpMoveTo {
			return Offset{X: cmd.Args[0], Y: cmd.Args[1]}, true
		}
	}
	return Offset{}, false
}

// CurrentPoint returns the point at which the next segment would begin.
func (p *Path) CurrentPoint() (Offset, bool) {
	for i := len(p.Commands) - 1; i >= 0; i-- {
		cmd := p.Commands[i]
		switch cmd.Op {
		case PathOpMoveTo, PathOpLineTo:
			return Offset{X: cmd.Args[0], Y: cmd.Args[1]}, true
		case PathOpCubicTo:
			return Offset{X: cmd.Args[4], Y: cmd.Args[5]}, true
		case PathOpArcTo:
			bounds := Rect{Left: cmd.Args[0], Top: cmd.Args[1], Right: cmd.Args[2], Bottom: cmd.Args[3]}
			return ArcPoint(bounds, cmd.Args[4]+cmd.Args[5]), true
		case PathOpClose:
			return p.Start()
		}
	}
	return Offset{}, false
}

// ArcBounds returns the oval bounds of an arc_to command.
func (c PathCommand) ArcBounds() Rect {
	return Rect{Left: c.Args[0], Top: c.Args[1], Right: c.Args[2], Bottom: c.Args[3]}
}

// ArcPoint returns the point at the given angle (radians) on the oval
// inscribed in bounds.
func ArcPoint(bounds Rect, angle float64) Offset {
	c := bounds.Center()
	return Offset{
		X: c.X + bounds.Width()*0.5*math.Cos(angle),
		Y: c.Y + bounds.Height()*0.5*math.Sin(angle),
	}
}

// CubicSegment is one cubic bezier piece of a flattened arc.
type CubicSegment struct {
	C1 Offset
	C2 Offset
	To Offset
}

// ArcAsCubics approximates an arc with cubic beziers, one segment per
// quarter turn at most. Backends without native arc support replay the
// segments starting from the arc's start point.
func ArcAsCubics(bounds Rect, startAngle, sweepAngle float64) []CubicSegment {
	if sweepAngle == 0 {
		return nil
	}
	n := int(math.Ceil(math.Abs(sweepAngle) / (math.Pi / 2)))
	step := sweepAngle / float64(n)
	c := bounds.Center()
	rx := bounds.Width() * 0.5
	ry := bounds.Height() * 0.5

	// Control handle length for a circular arc segment of angle step.
	k := 4.0 / 3.0 * math.Tan(step/4)

	segs := make([]CubicSegment, 0, n)
	for i := 0; i < n; i++ {
		a0 := startAngle + float64(i)*step
		a1 := a0 + step
		p0 := Offset{X: c.X + rx*math.Cos(a0), Y: c.Y + ry*math.Sin(a0)}
		p1 := Offset{X: c.X + rx*math.Cos(a1), Y: c.Y + ry*math.Sin(a1)}
		d0 := Offset{X: -rx * math.Sin(a0), Y: ry * math.Cos(a0)}
		d1 := Offset{X: -rx * math.Sin(a1), Y: ry * math.Cos(a1)}
		segs = append(segs, CubicSegment{
			C1: Offset{X: p0.X + k*d0.X, Y: p0.Y + k*d0.Y},
			C2: Offset{X: p1.X - k*d1.X, Y: p1.Y - k*d1.Y},
			To: p1,
		})
	}
	return segs
}
