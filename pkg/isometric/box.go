package isometric

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/go-drift/isobox/pkg/errors"
	"github.com/go-drift/isobox/pkg/graphics"
)

// Box describes one isometric cuboid to render.
type Box struct {
	// Origin in scene units.
	X float64
	Y float64
	Z float64

	// Extents in scene units.
	Width  float64
	Depth  float64
	Height float64

	// AngleDegrees is the oblique projection angle, conventionally 30.
	AngleDegrees float64

	// Scale converts projected scene units to pixels.
	Scale float64

	TopColor     graphics.Color
	SideColor    graphics.Color
	OutlineColor graphics.Color

	// OutlineWidth is the stroke width in pixels; <= 0 disables stroking.
	OutlineWidth float64

	// TopCornerRadius is the rounding radius of the top face in pixels.
	// It is clamped to half the shortest projected top edge.
	TopCornerRadius float64
}

// DefaultBox returns a box with the documented default parameters:
// a 3×3×2 cuboid at the origin, 30° projection, scale 40, gray top,
// black sides, rounding radius 6, no outline.
func DefaultBox() Box {
	return Box{
		Width:           3,
		Depth:           3,
		Height:          2,
		AngleDegrees:    30,
		Scale:           40,
		TopColor:        graphics.ColorGray,
		SideColor:       graphics.ColorBlack,
		OutlineColor:    graphics.ColorBlack,
		TopCornerRadius: 6,
	}
}

// Validate checks the entry contract: all numeric fields finite and
// extents non-negative. Negative extents would flip face windings and
// render inside-out, so they are rejected here rather than drawn.
func (b Box) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"x", b.X}, {"y", b.Y}, {"z", b.Z},
		{"width", b.Width}, {"depth", b.Depth}, {"height", b.Height},
		{"angle", b.AngleDegrees}, {"scale", b.Scale},
		{"outlineWidth", b.OutlineWidth}, {"topCornerRadius", b.TopCornerRadius},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return errors.Newf("isometric.Validate", errors.KindGeometry,
				"%s is not finite: %v", f.name, f.value)
		}
	}
	if b.Width < 0 || b.Depth < 0 || b.Height < 0 {
		return errors.Newf("isometric.Validate", errors.KindGeometry,
			"negative extents %g×%g×%g", b.Width, b.Depth, b.Height)
	}
	if b.Scale < 0 {
		return errors.Newf("isometric.Validate", errors.KindGeometry,
			"negative scale %g", b.Scale)
	}
	return nil
}

// Corner indices returned by Corners. The first four corners lie on the
// bottom plane (z), the last four on the top plane (z + height), each
// ring ordered back-left, back-right, front-right, front-left.
const (
	BottomBackLeft = iota
	BottomBackRight
	BottomFrontRight
	BottomFrontLeft
	TopBackLeft
	TopBackRight
	TopFrontRight
	TopFrontLeft
)

// Corners derives the eight 3D corners of the box.
func Corners(b Box) [8]mgl64.Vec3 {
	x0, x1 := b.X, b.X+b.Width
	y0, y1 := b.Y, b.Y+b.Depth
	z0, z1 := b.Z, b.Z+b.Height
	return [8]mgl64.Vec3{
		BottomBackLeft:   {x0, y0, z0},
		BottomBackRight:  {x1, y0, z0},
		BottomFrontRight: {x1, y1, z0},
		BottomFrontLeft:  {x0, y1, z0},
		TopBackLeft:      {x0, y0, z1},
		TopBackRight:     {x1, y0, z1},
		TopFrontRight:    {x1, y1, z1},
		TopFrontLeft:     {x0, y1, z1},
	}
}

// flatFaces lists the five straight faces in paint order. The top face
// is not listed: it is drawn last, rounded.
var flatFaces = [5][4]int{
	{BottomBackLeft, BottomBackRight, BottomFrontRight, BottomFrontLeft}, // bottom
	{BottomBackLeft, BottomFrontLeft, TopFrontLeft, TopBackLeft},         // left
	{BottomBackRight, BottomFrontRight, TopFrontRight, TopBackRight},     // right
	{BottomFrontLeft, BottomFrontRight, TopFrontRight, TopFrontLeft},     // front
	{BottomBackLeft, BottomBackRight, TopBackRight, TopBackLeft},         // back
}

// Render draws the box onto the canvas using the painter's algorithm:
// the five flat faces in fixed back-to-front order (bottom, left,
// right, front, back), then the rounded top face strictly last so it
// wins the shared edges against the adjoining sides.
//
// Each face is one fill call, plus one stroke call when OutlineWidth
// is positive. The viewport center comes from the canvas size; each
// projected corner maps to center + projected·Scale.
func Render(canvas graphics.Canvas, box Box) error {
	if err := box.Validate(); err != nil {
		return err
	}

	center := canvas.Size().Center()
	corners := Corners(box)
	var view [8]graphics.Offset
	for i, c := range corners {
		view[i] = center.Add(Project(c, box.AngleDegrees).Mul(box.Scale))
	}

	for _, face := range flatFaces {
		quad := [4]graphics.Offset{view[face[0]], view[face[1]], view[face[2]], view[face[3]]}
		drawQuad(canvas, quad, box.SideColor, box)
	}

	top := [4]graphics.Offset{view[TopBackLeft], view[TopBackRight], view[TopFrontRight], view[TopFrontLeft]}
	radius := clampRadius(box.TopCornerRadius, top)
	path := RoundedQuadPath(top, radius)
	fill := graphics.DefaultPaint()
	fill.Color = box.TopColor
	canvas.DrawPath(path, fill)
	if box.OutlineWidth > 0 {
		canvas.DrawPath(path, outlinePaint(box))
	}
	return nil
}

// drawQuad fills one straight quadrilateral face and optionally
// strokes its outline.
func drawQuad(canvas graphics.Canvas, quad [4]graphics.Offset, fillColor graphics.Color, box Box) {
	path := quadPath(quad)
	fill := graphics.DefaultPaint()
	fill.Color = fillColor
	canvas.DrawPath(path, fill)
	if box.OutlineWidth > 0 {
		canvas.DrawPath(path, outlinePaint(box))
	}
}

// quadPath builds a closed straight-edged path through the four points.
func quadPath(quad [4]graphics.Offset) *graphics.Path {
	path := graphics.NewPath()
	path.MoveTo(quad[0].X, quad[0].Y)
	for _, p := range quad[1:] {
		path.LineTo(p.X, p.Y)
	}
	path.Close()
	return path
}

func outlinePaint(box Box) graphics.Paint {
	paint := graphics.DefaultPaint()
	paint.Color = box.OutlineColor
	paint.Style = graphics.PaintStyleStroke
	paint.StrokeWidth = box.OutlineWidth
	paint.StrokeJoin = graphics.JoinRound
	return paint
}

// clampRadius limits the rounding radius to half the shortest edge of
// the projected quad, so arcs cannot overlap or invert.
func clampRadius(radius float64, quad [4]graphics.Offset) float64 {
	if radius <= 0 {
		return 0
	}
	shortest := math.Inf(1)
	for i := range quad {
		edge := quad[(i+1)%4].Sub(quad[i]).Length()
		if edge < shortest {
			shortest = edge
		}
	}
	if limit := shortest / 2; radius > limit {
		return limit
	}
	return radius
}
