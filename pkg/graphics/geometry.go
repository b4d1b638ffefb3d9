package graphics

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns the component-wise difference of two offsets.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Mul returns the offset scaled by a factor.
func (o Offset) Mul(f float64) Offset {
	return Offset{X: o.X * f, Y: o.Y * f}
}

// Dot returns the dot product of two offsets treated as vectors.
func (o Offset) Dot(other Offset) float64 {
	return o.X*other.X + o.Y*other.Y
}

// Cross returns the z component of the 2D cross product o × other.
// In screen coordinates (y down) a positive value is a clockwise turn.
func (o Offset) Cross(other Offset) float64 {
	return o.X*other.Y - o.Y*other.X
}

// Length returns the Euclidean length of the offset.
func (o Offset) Length() float64 {
	return math.Hypot(o.X, o.Y)
}

// Normalize returns a unit-length offset in the same direction,
// or the zero offset if the length is below tolerance.
func (o Offset) Normalize() Offset {
	l := o.Length()
	if l <= epsilon {
		return Offset{}
	}
	return Offset{X: o.X / l, Y: o.Y / l}
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Center returns the center point of a surface of this size.
func (s Size) Center() Offset {
	return Offset{X: s.Width * 0.5, Y: s.Height * 0.5}
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// RectFromCircle constructs the bounding square of a circle.
func RectFromCircle(center Offset, radius float64) Rect {
	return Rect{
		Left:   center.X - radius,
		Top:    center.Y - radius,
		Right:  center.X + radius,
		Bottom: center.Y + radius,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}
