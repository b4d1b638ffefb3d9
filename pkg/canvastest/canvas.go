// Package canvastest provides a serializing Canvas for tests: every
// draw call is recorded as a named operation with both readable params
// and the typed path/paint for precise assertions.
package canvastest

import (
	"fmt"
	"math"

	"github.com/go-drift/isobox/pkg/graphics"
)

// Op is one recorded canvas operation.
type Op struct {
	Name   string
	Params map[string]any

	// Path and Paint are set for drawPath and drawRect operations.
	Path  *graphics.Path
	Paint graphics.Paint
}

// Canvas implements graphics.Canvas and records every call.
type Canvas struct {
	size graphics.Size
	ops  []Op
}

// New creates a recording canvas of the given pixel dimensions.
func New(width, height float64) *Canvas {
	return &Canvas{size: graphics.Size{Width: width, Height: height}}
}

func (c *Canvas) Save() {
	c.ops = append(c.ops, Op{Name: "save"})
}

func (c *Canvas) Restore() {
	c.ops = append(c.ops, Op{Name: "restore"})
}

func (c *Canvas) Translate(dx, dy float64) {
	c.ops = append(c.ops, Op{
		Name:   "translate",
		Params: map[string]any{"dx": round2(dx), "dy": round2(dy)},
	})
}

func (c *Canvas) Scale(sx, sy float64) {
	c.ops = append(c.ops, Op{
		Name:   "scale",
		Params: map[string]any{"sx": round2(sx), "sy": round2(sy)},
	})
}

func (c *Canvas) Clear(color graphics.Color) {
	c.ops = append(c.ops, Op{
		Name:   "clear",
		Params: map[string]any{"color": serializeColor(color)},
	})
}

func (c *Canvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	path := graphics.NewPath()
	path.MoveTo(rect.Left, rect.Top)
	path.LineTo(rect.Right, rect.Top)
	path.LineTo(rect.Right, rect.Bottom)
	path.LineTo(rect.Left, rect.Bottom)
	path.Close()
	c.ops = append(c.ops, Op{
		Name: "drawRect",
		Params: map[string]any{
			"rect":  fmt.Sprintf("%v,%v %vx%v", round2(rect.Left), round2(rect.Top), round2(rect.Width()), round2(rect.Height())),
			"color": serializeColor(paint.Color),
			"style": paint.Style.String(),
		},
		Path:  path,
		Paint: paint,
	})
}

func (c *Canvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	c.ops = append(c.ops, Op{
		Name: "drawPath",
		Params: map[string]any{
			"path":  serializePath(path),
			"color": serializeColor(paint.Color),
			"style": paint.Style.String(),
			"width": round2(paint.StrokeWidth),
		},
		Path:  path,
		Paint: paint,
	})
}

func (c *Canvas) Size() graphics.Size {
	return c.size
}

// Ops returns all recorded operations in call order.
func (c *Canvas) Ops() []Op {
	return c.ops
}

// Named returns the recorded operations with the given name, in order.
func (c *Canvas) Named(name string) []Op {
	var out []Op
	for _, op := range c.ops {
		if op.Name == name {
			out = append(out, op)
		}
	}
	return out
}

// Fills returns the draw operations whose paint fills.
func (c *Canvas) Fills() []Op {
	return c.drawsWhere(func(p graphics.Paint) bool {
		return p.Style == graphics.PaintStyleFill || p.Style == graphics.PaintStyleFillAndStroke
	})
}

// Strokes returns the draw operations whose paint strokes.
func (c *Canvas) Strokes() []Op {
	return c.drawsWhere(func(p graphics.Paint) bool {
		return p.Style == graphics.PaintStyleStroke || p.Style == graphics.PaintStyleFillAndStroke
	})
}

func (c *Canvas) drawsWhere(match func(graphics.Paint) bool) []Op {
	var out []Op
	for _, op := range c.ops {
		if op.Name != "drawPath" && op.Name != "drawRect" {
			continue
		}
		if match(op.Paint) {
			out = append(out, op)
		}
	}
	return out
}

// Vertices returns the distinct on-path points of an op's path:
// move_to and line_to targets, deduplicated within tolerance.
func (op Op) Vertices() []graphics.Offset {
	if op.Path == nil {
		return nil
	}
	var out []graphics.Offset
	for _, cmd := range op.Path.Commands {
		if cmd.Op != graphics.PathOpMoveTo && cmd.Op != graphics.PathOpLineTo {
			continue
		}
		p := graphics.Offset{X: cmd.Args[0], Y: cmd.Args[1]}
		dup := false
		for _, q := range out {
			if math.Abs(q.X-p.X) < 0.01 && math.Abs(q.Y-p.Y) < 0.01 {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}

// CountPathOps returns how many commands of the given kind the op's
// path contains.
func (op Op) CountPathOps(kind graphics.PathOp) int {
	if op.Path == nil {
		return 0
	}
	n := 0
	for _, cmd := range op.Path.Commands {
		if cmd.Op == kind {
			n++
		}
	}
	return n
}

func serializePath(path *graphics.Path) []string {
	out := make([]string, 0, len(path.Commands))
	for _, cmd := range path.Commands {
		s := cmd.Op.String()
		if len(cmd.Args) > 0 {
			s += "("
			for i, a := range cmd.Args {
				if i > 0 {
					s += ","
				}
				s += fmt.Sprintf("%v", round2(a))
			}
			s += ")"
		}
		out = append(out, s)
	}
	return out
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("#%08X", uint32(c))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
