// Package isometric renders stylized isometric cuboids onto a
// graphics.Canvas: an oblique projector, a face compositor drawing the
// five flat faces back to front, and a rounded-top path builder.
package isometric

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/go-drift/isobox/pkg/graphics"
)

// Project maps a 3D scene point to a 2D offset using the fixed oblique
// projection:
//
//	isoX = (x − y)·cos(rad)
//	isoY = (x + y)·sin(rad) − z
//
// Depth and height collapse asymmetrically: z only lifts the point on
// screen, while x and y contribute to both axes. Pure and total over
// finite inputs.
func Project(p mgl64.Vec3, angleDegrees float64) graphics.Offset {
	rad := angleDegrees * math.Pi / 180
	return graphics.Offset{
		X: (p.X() - p.Y()) * math.Cos(rad),
		Y: (p.X()+p.Y())*math.Sin(rad) - p.Z(),
	}
}
