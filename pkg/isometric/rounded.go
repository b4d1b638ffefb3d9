package isometric

import (
	"math"

	"github.com/go-drift/isobox/pkg/graphics"
)

// eps guards against degenerate edges and angles in corner rounding.
const eps = 1e-9

// roundedCorner is the arc replacing one sharp vertex.
type roundedCorner struct {
	entry  graphics.Offset // tangent point on the incoming edge
	bounds graphics.Rect   // bounding square of the arc circle
	start  float64         // arc start angle at the entry point
	sweep  float64         // signed sweep toward the outgoing edge
	sharp  bool            // degenerate corner kept as a plain vertex
	vertex graphics.Offset
}

// RoundedQuadPath builds a closed path tracing p[0]→p[1]→p[2]→p[3]
// with each corner replaced by a circular arc of the given radius,
// tangent to both adjacent edges.
//
// Arc placement follows the edge directions at each corner, so any
// convex quad in any orientation rounds correctly: the interior angle
// θ gives the tangent inset r/tan(θ/2) along each edge and the arc
// center at r/sin(θ/2) along the inward bisector, with a sweep of π−θ
// signed by the turn direction. A radius of 0 yields zero-extent arcs
// and the silhouette of the plain quad.
//
// The path always contains one move, four lines, four arcs and a
// close. Callers are responsible for keeping the radius small relative
// to the edge lengths (Render clamps it); oversized radii on violated
// preconditions produce overlapping geometry, not a failure.
func RoundedQuadPath(p [4]graphics.Offset, radius float64) *graphics.Path {
	if radius < 0 {
		radius = 0
	}

	var corners [4]roundedCorner
	for i := range p {
		corners[i] = roundCorner(p[(i+3)%4], p[i], p[(i+1)%4], radius)
	}

	path := graphics.NewPath()

	// Start just past p[0] on the p[0]→p[1] edge: the exit point of the
	// first corner's arc.
	if corners[0].sharp {
		path.MoveTo(corners[0].vertex.X, corners[0].vertex.Y)
	} else {
		start := graphics.ArcPoint(corners[0].bounds, corners[0].start+corners[0].sweep)
		path.MoveTo(start.X, start.Y)
	}

	// Walk the remaining corners and finish back at the first one, so
	// the final arc lands exactly on the starting point.
	for i := 1; i <= 4; i++ {
		c := corners[i%4]
		if c.sharp {
			path.LineTo(c.vertex.X, c.vertex.Y)
			continue
		}
		path.LineTo(c.entry.X, c.entry.Y)
		path.ArcTo(c.bounds, c.start, c.sweep)
	}
	path.Close()
	return path
}

// roundCorner computes the arc for the vertex cur between prev and next.
func roundCorner(prev, cur, next graphics.Offset, radius float64) roundedCorner {
	in := cur.Sub(prev)
	out := next.Sub(cur)
	lenIn := in.Length()
	lenOut := out.Length()
	if lenIn <= eps || lenOut <= eps {
		return roundedCorner{sharp: true, vertex: cur}
	}

	u := in.Mul(1 / lenIn)
	v := out.Mul(1 / lenOut)

	// Interior angle between the edge back toward prev and the edge
	// toward next.
	cosTheta := -u.Dot(v)
	cosTheta = math.Max(-1, math.Min(1, cosTheta))
	theta := math.Acos(cosTheta)
	if theta <= eps || math.Pi-theta <= eps {
		// Collinear or folded corner, nothing to round.
		return roundedCorner{sharp: true, vertex: cur}
	}

	inset := radius / math.Tan(theta/2)
	entry := cur.Sub(u.Mul(inset))
	bisector := v.Sub(u).Normalize()
	center := cur.Add(bisector.Mul(radius / math.Sin(theta/2)))

	sweep := math.Pi - theta
	if u.Cross(v) < 0 {
		sweep = -sweep
	}

	return roundedCorner{
		entry:  entry,
		bounds: graphics.RectFromCircle(center, radius),
		start:  math.Atan2(entry.Y-center.Y, entry.X-center.X),
		sweep:  sweep,
		vertex: cur,
	}
}
