package raster

import (
	"bytes"
	"image/color"
	"math"
	"testing"

	"github.com/go-drift/isobox/pkg/graphics"
)

func TestClearFillsImage(t *testing.T) {
	c := New(20, 20)
	c.Clear(graphics.ColorRed)

	got := c.Image().RGBAAt(10, 10)
	want := color.RGBA{R: 255, A: 255}
	if got != want {
		t.Errorf("center pixel: got %+v, want %+v", got, want)
	}
	if corner := c.Image().RGBAAt(0, 0); corner != want {
		t.Errorf("corner pixel: got %+v, want %+v", corner, want)
	}
}

func TestDrawPathFill(t *testing.T) {
	c := New(40, 40)
	c.Clear(graphics.ColorWhite)

	path := graphics.NewPath()
	path.MoveTo(5, 5)
	path.LineTo(35, 5)
	path.LineTo(35, 35)
	path.LineTo(5, 35)
	path.Close()

	paint := graphics.DefaultPaint()
	paint.Color = graphics.ColorBlack
	c.DrawPath(path, paint)

	if got := c.Image().RGBAAt(20, 20); got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("interior pixel not filled: %+v", got)
	}
	if got := c.Image().RGBAAt(1, 1); got.R != 255 {
		t.Errorf("exterior pixel overwritten: %+v", got)
	}
}

func TestDrawRectStroke(t *testing.T) {
	c := New(40, 40)
	c.Clear(graphics.ColorWhite)

	paint := graphics.DefaultPaint()
	paint.Color = graphics.ColorBlack
	paint.Style = graphics.PaintStyleStroke
	paint.StrokeWidth = 4
	c.DrawRect(graphics.RectFromLTWH(10, 10, 20, 20), paint)

	// On the border: dark. In the middle: untouched.
	if got := c.Image().RGBAAt(10, 20); got.R > 128 {
		t.Errorf("border pixel not stroked: %+v", got)
	}
	if got := c.Image().RGBAAt(20, 20); got.R != 255 {
		t.Errorf("interior pixel filled by stroke: %+v", got)
	}
}

func TestDrawPathArc(t *testing.T) {
	c := New(40, 40)
	c.Clear(graphics.ColorWhite)

	// Full circle via two half-turn arcs, filled black.
	path := graphics.NewPath()
	bounds := graphics.RectFromCircle(graphics.Offset{X: 20, Y: 20}, 10)
	path.ArcTo(bounds, 0, math.Pi)
	path.ArcTo(bounds, math.Pi, math.Pi)
	path.Close()

	paint := graphics.DefaultPaint()
	paint.Color = graphics.ColorBlack
	c.DrawPath(path, paint)

	if got := c.Image().RGBAAt(20, 20); got.R != 0 {
		t.Errorf("circle center not filled: %+v", got)
	}
	if got := c.Image().RGBAAt(2, 2); got.R != 255 {
		t.Errorf("pixel outside circle filled: %+v", got)
	}
}

func TestTranslateAffectsDrawing(t *testing.T) {
	c := New(40, 40)
	c.Clear(graphics.ColorWhite)
	c.Save()
	c.Translate(20, 20)

	paint := graphics.DefaultPaint()
	paint.Color = graphics.ColorBlack
	c.DrawRect(graphics.RectFromLTWH(0, 0, 10, 10), paint)
	c.Restore()

	if got := c.Image().RGBAAt(25, 25); got.R != 0 {
		t.Errorf("translated rect missing: %+v", got)
	}
	if got := c.Image().RGBAAt(5, 5); got.R != 255 {
		t.Errorf("untranslated position filled: %+v", got)
	}
}

func TestEncodePNG(t *testing.T) {
	c := New(8, 8)
	c.Clear(graphics.ColorBlue)

	var buf bytes.Buffer
	if err := EncodePNG(&buf, c.Image()); err != nil {
		t.Fatal(err)
	}
	sig := []byte{0x89, 'P', 'N', 'G'}
	if !bytes.HasPrefix(buf.Bytes(), sig) {
		t.Error("output does not start with PNG signature")
	}
}

func TestDownsample(t *testing.T) {
	c := New(40, 40)
	c.Clear(graphics.ColorGreen)

	small := Downsample(c.Image(), 4)
	if b := small.Bounds(); b.Dx() != 10 || b.Dy() != 10 {
		t.Fatalf("got %dx%d, want 10x10", b.Dx(), b.Dy())
	}
	if got := small.RGBAAt(5, 5); got.G < 250 {
		t.Errorf("downsampled pixel lost color: %+v", got)
	}
}

func TestDownsampleFactorOne(t *testing.T) {
	c := New(10, 10)
	if got := Downsample(c.Image(), 1); got != c.Image() {
		t.Error("factor 1 should return the source image")
	}
}

func TestCanvasSize(t *testing.T) {
	c := New(123, 45)
	if c.Size() != (graphics.Size{Width: 123, Height: 45}) {
		t.Errorf("got %+v", c.Size())
	}
}
