// Package raster implements a CPU canvas backend that renders onto an
// in-memory RGBA image.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"

	"github.com/go-drift/isobox/pkg/graphics"
)

// Canvas renders draw calls onto an image.RGBA through draw2d.
// It is not safe for concurrent use.
type Canvas struct {
	img  *image.RGBA
	gc   *draw2dimg.GraphicContext
	size graphics.Size
}

// New creates a raster canvas of the given pixel dimensions.
func New(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Canvas{
		img:  img,
		gc:   draw2dimg.NewGraphicContext(img),
		size: graphics.Size{Width: float64(width), Height: float64(height)},
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

func (c *Canvas) Save() {
	c.gc.Save()
}

func (c *Canvas) Restore() {
	c.gc.Restore()
}

func (c *Canvas) Translate(dx, dy float64) {
	c.gc.Translate(dx, dy)
}

func (c *Canvas) Scale(sx, sy float64) {
	c.gc.Scale(sx, sy)
}

// Clear fills the whole image, ignoring the current transform.
func (c *Canvas) Clear(col graphics.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(toRGBA(col)), image.Point{}, draw.Src)
}

func (c *Canvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	c.gc.MoveTo(rect.Left, rect.Top)
	c.gc.LineTo(rect.Right, rect.Top)
	c.gc.LineTo(rect.Right, rect.Bottom)
	c.gc.LineTo(rect.Left, rect.Bottom)
	c.gc.Close()
	c.paint(paint)
}

func (c *Canvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	started := false
	for _, cmd := range path.Commands {
		switch cmd.Op {
		case graphics.PathOpMoveTo:
			c.gc.MoveTo(cmd.Args[0], cmd.Args[1])
			started = true
		case graphics.PathOpLineTo:
			c.gc.LineTo(cmd.Args[0], cmd.Args[1])
			started = true
		case graphics.PathOpCubicTo:
			c.gc.CubicCurveTo(cmd.Args[0], cmd.Args[1], cmd.Args[2], cmd.Args[3], cmd.Args[4], cmd.Args[5])
			started = true
		case graphics.PathOpArcTo:
			bounds := cmd.ArcBounds()
			start := graphics.ArcPoint(bounds, cmd.Args[4])
			// draw2d has no center-parameterized arcs; connect to the
			// arc start and replay it as cubic segments.
			if started {
				c.gc.LineTo(start.X, start.Y)
			} else {
				c.gc.MoveTo(start.X, start.Y)
				started = true
			}
			for _, seg := range graphics.ArcAsCubics(bounds, cmd.Args[4], cmd.Args[5]) {
				c.gc.CubicCurveTo(seg.C1.X, seg.C1.Y, seg.C2.X, seg.C2.Y, seg.To.X, seg.To.Y)
			}
		case graphics.PathOpClose:
			c.gc.Close()
		}
	}
	c.paint(paint)
}

func (c *Canvas) Size() graphics.Size {
	return c.size
}

// paint applies the paint to the path accumulated in the context and
// resets it.
func (c *Canvas) paint(p graphics.Paint) {
	c.gc.SetFillColor(toRGBA(p.Color))
	c.gc.SetStrokeColor(toRGBA(p.Color))
	c.gc.SetLineWidth(p.StrokeWidth)
	c.gc.SetLineCap(toCap(p.StrokeCap))
	c.gc.SetLineJoin(toJoin(p.StrokeJoin))
	switch p.Style {
	case graphics.PaintStyleStroke:
		c.gc.Stroke()
	case graphics.PaintStyleFillAndStroke:
		c.gc.FillStroke()
	default:
		c.gc.Fill()
	}
}

// EncodePNG writes an image as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func toRGBA(c graphics.Color) color.RGBA {
	r, g, b, a := c.RGBA8()
	return color.RGBA{R: r, G: g, B: b, A: a}
}

func toCap(c graphics.StrokeCap) draw2d.LineCap {
	switch c {
	case graphics.CapRound:
		return draw2d.RoundCap
	case graphics.CapSquare:
		return draw2d.SquareCap
	default:
		return draw2d.ButtCap
	}
}

func toJoin(j graphics.StrokeJoin) draw2d.LineJoin {
	switch j {
	case graphics.JoinRound:
		return draw2d.RoundJoin
	case graphics.JoinBevel:
		return draw2d.BevelJoin
	default:
		return draw2d.MiterJoin
	}
}
