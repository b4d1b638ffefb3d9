package canvastest

import (
	"testing"

	"github.com/go-drift/isobox/pkg/graphics"
)

func drawSomething(c *Canvas) {
	c.Clear(graphics.ColorWhite)

	path := graphics.NewPath()
	path.MoveTo(0, 0)
	path.LineTo(10, 0)
	path.LineTo(10, 10)
	path.Close()

	fill := graphics.DefaultPaint()
	fill.Color = graphics.ColorRed
	c.DrawPath(path, fill)

	stroke := graphics.DefaultPaint()
	stroke.Style = graphics.PaintStyleStroke
	stroke.StrokeWidth = 2
	c.DrawPath(path, stroke)
}

func TestRecordsOpsInOrder(t *testing.T) {
	c := New(100, 100)
	drawSomething(c)

	ops := c.Ops()
	if len(ops) != 3 {
		t.Fatalf("got %d ops, want 3", len(ops))
	}
	want := []string{"clear", "drawPath", "drawPath"}
	for i, op := range ops {
		if op.Name != want[i] {
			t.Errorf("op %d: got %q, want %q", i, op.Name, want[i])
		}
	}
}

func TestFillsAndStrokes(t *testing.T) {
	c := New(100, 100)
	drawSomething(c)

	if fills := c.Fills(); len(fills) != 1 {
		t.Errorf("got %d fills, want 1", len(fills))
	}
	strokes := c.Strokes()
	if len(strokes) != 1 {
		t.Fatalf("got %d strokes, want 1", len(strokes))
	}
	if strokes[0].Paint.StrokeWidth != 2 {
		t.Errorf("stroke width: got %v", strokes[0].Paint.StrokeWidth)
	}
}

func TestVerticesDeduplicates(t *testing.T) {
	c := New(100, 100)
	path := graphics.NewPath()
	path.MoveTo(0, 0)
	path.LineTo(10, 0)
	path.LineTo(10, 0.001) // within tolerance of the previous point
	path.LineTo(0, 10)
	c.DrawPath(path, graphics.DefaultPaint())

	verts := c.Ops()[0].Vertices()
	if len(verts) != 3 {
		t.Errorf("got %d vertices, want 3: %v", len(verts), verts)
	}
}

func TestNamedAndCountPathOps(t *testing.T) {
	c := New(50, 50)
	c.Save()
	drawSomething(c)
	c.Restore()

	if saves := c.Named("save"); len(saves) != 1 {
		t.Errorf("got %d save ops", len(saves))
	}
	draw := c.Named("drawPath")[0]
	if n := draw.CountPathOps(graphics.PathOpLineTo); n != 2 {
		t.Errorf("line_to count: got %d, want 2", n)
	}
	if n := draw.CountPathOps(graphics.PathOpClose); n != 1 {
		t.Errorf("close count: got %d, want 1", n)
	}
}

func TestDrawRectRecordsQuadPath(t *testing.T) {
	c := New(50, 50)
	c.DrawRect(graphics.RectFromLTWH(5, 5, 10, 20), graphics.DefaultPaint())

	op := c.Ops()[0]
	if op.Name != "drawRect" {
		t.Fatalf("got %q", op.Name)
	}
	if verts := op.Vertices(); len(verts) != 4 {
		t.Errorf("got %d vertices, want 4", len(verts))
	}
}
