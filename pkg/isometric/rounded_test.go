package isometric

import (
	"math"
	"testing"

	"github.com/go-drift/isobox/pkg/graphics"
)

func countOps(p *graphics.Path, kind graphics.PathOp) int {
	n := 0
	for _, cmd := range p.Commands {
		if cmd.Op == kind {
			n++
		}
	}
	return n
}

func TestRoundedQuadStructure(t *testing.T) {
	quad := [4]graphics.Offset{
		{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 60}, {X: 0, Y: 60},
	}
	path := RoundedQuadPath(quad, 8)

	if n := countOps(path, graphics.PathOpMoveTo); n != 1 {
		t.Errorf("move_to count: got %d, want 1", n)
	}
	if n := countOps(path, graphics.PathOpLineTo); n != 4 {
		t.Errorf("line_to count: got %d, want 4", n)
	}
	if n := countOps(path, graphics.PathOpArcTo); n != 4 {
		t.Errorf("arc_to count: got %d, want 4", n)
	}
	if n := countOps(path, graphics.PathOpClose); n != 1 {
		t.Errorf("close count: got %d, want 1", n)
	}
}

// pathEndBeforeClose returns the endpoint of the last drawing command,
// skipping the trailing close (whose implicit return to the start would
// make closure checks vacuous).
func pathEndBeforeClose(t *testing.T, path *graphics.Path) graphics.Offset {
	t.Helper()
	cmds := path.Commands
	if len(cmds) == 0 || cmds[len(cmds)-1].Op != graphics.PathOpClose {
		t.Fatal("expected a trailing close command")
	}
	trimmed := &graphics.Path{Commands: cmds[:len(cmds)-1]}
	end, ok := trimmed.CurrentPoint()
	if !ok {
		t.Fatal("no end point")
	}
	return end
}

func TestRoundedQuadClosure(t *testing.T) {
	quad := [4]graphics.Offset{
		{X: 10, Y: 10}, {X: 90, Y: 30}, {X: 110, Y: 80}, {X: 30, Y: 60},
	}
	path := RoundedQuadPath(quad, 5)

	start, ok := path.Start()
	if !ok {
		t.Fatal("no start point")
	}
	end := pathEndBeforeClose(t, path)
	if math.Abs(start.X-end.X) > 1e-9 || math.Abs(start.Y-end.Y) > 1e-9 {
		t.Errorf("path not closed: start (%v, %v), end (%v, %v)", start.X, start.Y, end.X, end.Y)
	}
}

func TestRoundedRectangleArcGeometry(t *testing.T) {
	// On an axis-aligned rectangle every corner is a right angle, so
	// tangent points sit exactly radius away from each vertex and each
	// sweep is a quarter turn.
	quad := [4]graphics.Offset{
		{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 60}, {X: 0, Y: 60},
	}
	const r = 10.0
	path := RoundedQuadPath(quad, r)

	// Start point: just past the first corner along the top edge.
	start, _ := path.Start()
	if math.Abs(start.X-r) > 1e-9 || math.Abs(start.Y) > 1e-9 {
		t.Errorf("start: got (%v, %v), want (%v, 0)", start.X, start.Y, r)
	}

	for _, cmd := range path.Commands {
		if cmd.Op != graphics.PathOpArcTo {
			continue
		}
		bounds := cmd.ArcBounds()
		if math.Abs(bounds.Width()-2*r) > 1e-9 || math.Abs(bounds.Height()-2*r) > 1e-9 {
			t.Errorf("arc bounds %vx%v, want %vx%v", bounds.Width(), bounds.Height(), 2*r, 2*r)
		}
		sweep := cmd.Args[5]
		if math.Abs(math.Abs(sweep)-math.Pi/2) > 1e-9 {
			t.Errorf("sweep: got %v, want ±π/2", sweep)
		}
	}
}

func TestRoundedQuadConvexSweepDirection(t *testing.T) {
	// For a clockwise traversal in screen coordinates all arcs must
	// sweep positively (outward rounding, not notching), and the
	// mirror traversal must flip every sweep.
	quad := [4]graphics.Offset{
		{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 60}, {X: 0, Y: 60},
	}
	path := RoundedQuadPath(quad, 6)
	for _, cmd := range path.Commands {
		if cmd.Op == graphics.PathOpArcTo && cmd.Args[5] <= 0 {
			t.Errorf("clockwise quad: got sweep %v, want > 0", cmd.Args[5])
		}
	}

	reversed := [4]graphics.Offset{quad[3], quad[2], quad[1], quad[0]}
	path = RoundedQuadPath(reversed, 6)
	for _, cmd := range path.Commands {
		if cmd.Op == graphics.PathOpArcTo && cmd.Args[5] >= 0 {
			t.Errorf("counter-clockwise quad: got sweep %v, want < 0", cmd.Args[5])
		}
	}
}

func TestRoundedQuadParallelogram(t *testing.T) {
	// A projected top face is a parallelogram; opposite corners share
	// interior angles so sweeps come in two magnitude pairs that total
	// a full turn.
	quad := [4]graphics.Offset{
		{X: 0, Y: 0}, {X: 80, Y: 20}, {X: 100, Y: 70}, {X: 20, Y: 50},
	}
	path := RoundedQuadPath(quad, 4)

	var sweeps []float64
	for _, cmd := range path.Commands {
		if cmd.Op == graphics.PathOpArcTo {
			sweeps = append(sweeps, cmd.Args[5])
		}
	}
	if len(sweeps) != 4 {
		t.Fatalf("got %d arcs", len(sweeps))
	}
	total := sweeps[0] + sweeps[1] + sweeps[2] + sweeps[3]
	if math.Abs(math.Abs(total)-2*math.Pi) > 1e-9 {
		t.Errorf("sweeps total %v, want ±2π", total)
	}
}

func TestRoundedQuadZeroRadius(t *testing.T) {
	quad := [4]graphics.Offset{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}
	path := RoundedQuadPath(quad, 0)

	// Arcs remain in the command stream but have zero extent: every
	// on-path point must coincide with a quad corner.
	if n := countOps(path, graphics.PathOpArcTo); n != 4 {
		t.Errorf("arc count: got %d, want 4", n)
	}
	start, _ := path.Start()
	if start != quad[0] {
		t.Errorf("start: got %+v, want %+v", start, quad[0])
	}
	for _, cmd := range path.Commands {
		if cmd.Op != graphics.PathOpLineTo {
			continue
		}
		p := graphics.Offset{X: cmd.Args[0], Y: cmd.Args[1]}
		found := false
		for _, q := range quad {
			if p == q {
				found = true
			}
		}
		if !found {
			t.Errorf("line target %+v is not a quad corner", p)
		}
	}
}

func TestRoundedQuadNegativeRadius(t *testing.T) {
	quad := [4]graphics.Offset{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}
	path := RoundedQuadPath(quad, -5)
	start, _ := path.Start()
	if start != quad[0] {
		t.Errorf("negative radius should behave like zero, start %+v", start)
	}
}

func TestRoundedQuadDegenerateCorners(t *testing.T) {
	// Coincident points collapse edges; the builder must fall back to
	// sharp vertices instead of producing NaNs.
	quad := [4]graphics.Offset{
		{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10},
	}
	path := RoundedQuadPath(quad, 3)
	for _, cmd := range path.Commands {
		for _, a := range cmd.Args {
			if math.IsNaN(a) {
				t.Fatalf("NaN in command %s args %v", cmd.Op, cmd.Args)
			}
		}
	}
}
