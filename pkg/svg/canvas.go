// Package svg implements a Canvas backend that writes SVG documents.
//
// Transform state is kept as an internal affine stack and baked into
// the emitted coordinates, so the output contains plain absolute path
// data with no nested groups.
package svg

import (
	"fmt"
	"io"
	"math"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"github.com/go-drift/isobox/pkg/graphics"
)

// affine is a 2D affine transform: x' = a·x + c·y + e, y' = b·x + d·y + f.
type affine struct {
	a, b, c, d, e, f float64
}

var identity = affine{a: 1, d: 1}

func (m affine) apply(x, y float64) (float64, float64) {
	return m.a*x + m.c*y + m.e, m.b*x + m.d*y + m.f
}

func (m affine) translate(dx, dy float64) affine {
	m.e += m.a*dx + m.c*dy
	m.f += m.b*dx + m.d*dy
	return m
}

func (m affine) scale(sx, sy float64) affine {
	m.a *= sx
	m.b *= sx
	m.c *= sy
	m.d *= sy
	return m
}

// scaleFactors returns the transform's axis scale magnitudes.
func (m affine) scaleFactors() (float64, float64) {
	return math.Hypot(m.a, m.b), math.Hypot(m.c, m.d)
}

// Canvas writes draw calls as SVG elements. Call Close to finish the
// document. Not safe for concurrent use.
type Canvas struct {
	doc   *svgo.SVG
	size  graphics.Size
	ctm   affine
	stack []affine
}

// New starts an SVG document of the given pixel dimensions on w.
func New(w io.Writer, width, height int) *Canvas {
	doc := svgo.New(w)
	doc.Start(width, height)
	return &Canvas{
		doc:  doc,
		size: graphics.Size{Width: float64(width), Height: float64(height)},
		ctm:  identity,
	}
}

// Close ends the SVG document.
func (c *Canvas) Close() {
	c.doc.End()
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.ctm)
}

func (c *Canvas) Restore() {
	if n := len(c.stack); n > 0 {
		c.ctm = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

func (c *Canvas) Translate(dx, dy float64) {
	c.ctm = c.ctm.translate(dx, dy)
}

func (c *Canvas) Scale(sx, sy float64) {
	c.ctm = c.ctm.scale(sx, sy)
}

// Clear emits a full-surface background rectangle at the current
// position in the stream. The document is streaming, so anything drawn
// before Clear stays underneath it.
func (c *Canvas) Clear(color graphics.Color) {
	c.doc.Rect(0, 0, int(c.size.Width), int(c.size.Height), fillStyle(color))
}

func (c *Canvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	var d strings.Builder
	c.moveTo(&d, rect.Left, rect.Top)
	c.lineTo(&d, rect.Right, rect.Top)
	c.lineTo(&d, rect.Right, rect.Bottom)
	c.lineTo(&d, rect.Left, rect.Bottom)
	d.WriteString("Z")
	c.doc.Path(d.String(), c.style(paint))
}

func (c *Canvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	var d strings.Builder
	started := false
	for _, cmd := range path.Commands {
		switch cmd.Op {
		case graphics.PathOpMoveTo:
			c.moveTo(&d, cmd.Args[0], cmd.Args[1])
			started = true
		case graphics.PathOpLineTo:
			c.lineTo(&d, cmd.Args[0], cmd.Args[1])
			started = true
		case graphics.PathOpCubicTo:
			x1, y1 := c.ctm.apply(cmd.Args[0], cmd.Args[1])
			x2, y2 := c.ctm.apply(cmd.Args[2], cmd.Args[3])
			x3, y3 := c.ctm.apply(cmd.Args[4], cmd.Args[5])
			fmt.Fprintf(&d, "C%s,%s %s,%s %s,%s", fnum(x1), fnum(y1), fnum(x2), fnum(y2), fnum(x3), fnum(y3))
			started = true
		case graphics.PathOpArcTo:
			c.arcTo(&d, cmd, started)
			started = true
		case graphics.PathOpClose:
			d.WriteString("Z")
		}
	}
	c.doc.Path(d.String(), c.style(paint))
}

func (c *Canvas) Size() graphics.Size {
	return c.size
}

func (c *Canvas) moveTo(d *strings.Builder, x, y float64) {
	tx, ty := c.ctm.apply(x, y)
	fmt.Fprintf(d, "M%s,%s", fnum(tx), fnum(ty))
}

func (c *Canvas) lineTo(d *strings.Builder, x, y float64) {
	tx, ty := c.ctm.apply(x, y)
	fmt.Fprintf(d, "L%s,%s", fnum(tx), fnum(ty))
}

// arcTo converts a center-parameterized arc command to SVG endpoint
// parameterization.
func (c *Canvas) arcTo(d *strings.Builder, cmd graphics.PathCommand, started bool) {
	bounds := cmd.ArcBounds()
	startAngle, sweep := cmd.Args[4], cmd.Args[5]
	start := graphics.ArcPoint(bounds, startAngle)
	end := graphics.ArcPoint(bounds, startAngle+sweep)

	sx, sy := c.ctm.apply(start.X, start.Y)
	ex, ey := c.ctm.apply(end.X, end.Y)
	if started {
		fmt.Fprintf(d, "L%s,%s", fnum(sx), fnum(sy))
	} else {
		fmt.Fprintf(d, "M%s,%s", fnum(sx), fnum(sy))
	}

	// Zero-extent arcs would emit rx/ry of 0, which SVG treats as a
	// straight line to the endpoint; that matches the degenerate
	// geometry exactly.
	fx, fy := c.ctm.scaleFactors()
	rx := bounds.Width() * 0.5 * fx
	ry := bounds.Height() * 0.5 * fy
	largeArc := 0
	if math.Abs(sweep) > math.Pi {
		largeArc = 1
	}
	sweepFlag := 0
	if sweep > 0 {
		sweepFlag = 1
	}
	fmt.Fprintf(d, "A%s,%s 0 %d %d %s,%s", fnum(rx), fnum(ry), largeArc, sweepFlag, fnum(ex), fnum(ey))
}

// style renders the paint as SVG presentation attributes.
func (c *Canvas) style(p graphics.Paint) string {
	r, g, b, a := p.Color.RGBA8()
	rgb := fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)

	var parts []string
	switch p.Style {
	case graphics.PaintStyleStroke:
		parts = append(parts, "fill:none", "stroke:"+rgb)
	case graphics.PaintStyleFillAndStroke:
		parts = append(parts, "fill:"+rgb, "stroke:"+rgb)
	default:
		parts = append(parts, "fill:"+rgb, "stroke:none")
	}
	if a < 255 {
		opacity := fmt.Sprintf("%.3g", float64(a)/255)
		if p.Style != graphics.PaintStyleStroke {
			parts = append(parts, "fill-opacity:"+opacity)
		}
		if p.Style != graphics.PaintStyleFill {
			parts = append(parts, "stroke-opacity:"+opacity)
		}
	}
	if p.Style != graphics.PaintStyleFill {
		fx, fy := c.ctm.scaleFactors()
		width := p.StrokeWidth * (fx + fy) / 2
		parts = append(parts,
			"stroke-width:"+fnum(width),
			"stroke-linecap:"+p.StrokeCap.String(),
			"stroke-linejoin:"+p.StrokeJoin.String())
	}
	return strings.Join(parts, ";")
}

func fillStyle(color graphics.Color) string {
	r, g, b, _ := color.RGBA8()
	return fmt.Sprintf("fill:rgb(%d,%d,%d)", r, g, b)
}

// fnum formats a coordinate with two decimal places, trimming trailing
// zeros to keep documents compact.
func fnum(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
