package graphics

import (
	"math"
	"testing"
)

func TestOffsetArithmetic(t *testing.T) {
	a := Offset{X: 3, Y: 4}
	b := Offset{X: 1, Y: -2}

	if got := a.Add(b); got != (Offset{X: 4, Y: 2}) {
		t.Errorf("Add: got %+v", got)
	}
	if got := a.Sub(b); got != (Offset{X: 2, Y: 6}) {
		t.Errorf("Sub: got %+v", got)
	}
	if got := a.Mul(2); got != (Offset{X: 6, Y: 8}) {
		t.Errorf("Mul: got %+v", got)
	}
	if got := a.Length(); got != 5 {
		t.Errorf("Length: got %v, want 5", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot: got %v, want -5", got)
	}
	if got := a.Cross(b); got != -10 {
		t.Errorf("Cross: got %v, want -10", got)
	}
}

func TestOffsetNormalize(t *testing.T) {
	n := Offset{X: 0, Y: -7}.Normalize()
	if !floatEqual(n.X, 0) || !floatEqual(n.Y, -1) {
		t.Errorf("Normalize: got %+v, want (0, -1)", n)
	}
	if got := n.Length(); !floatEqual(got, 1) {
		t.Errorf("Normalize length: got %v", got)
	}
}

func TestOffsetNormalizeZero(t *testing.T) {
	if got := (Offset{}).Normalize(); got != (Offset{}) {
		t.Errorf("Normalize of zero vector: got %+v, want zero", got)
	}
}

func TestRectFromLTWH(t *testing.T) {
	r := RectFromLTWH(10, 20, 30, 40)
	if r.Right != 40 || r.Bottom != 60 {
		t.Errorf("got %+v", r)
	}
	if r.Width() != 30 || r.Height() != 40 {
		t.Errorf("dimensions: got %vx%v", r.Width(), r.Height())
	}
	if c := r.Center(); c != (Offset{X: 25, Y: 40}) {
		t.Errorf("Center: got %+v", c)
	}
}

func TestRectFromCircle(t *testing.T) {
	r := RectFromCircle(Offset{X: 5, Y: 5}, 2)
	want := Rect{Left: 3, Top: 3, Right: 7, Bottom: 7}
	if r != want {
		t.Errorf("got %+v, want %+v", r, want)
	}
	if r.IsEmpty() {
		t.Error("non-degenerate circle bounds reported empty")
	}
}

func TestRectIsEmpty(t *testing.T) {
	if !(Rect{}).IsEmpty() {
		t.Error("zero rect should be empty")
	}
	if (Rect{Right: 1, Bottom: 1}).IsEmpty() {
		t.Error("unit rect should not be empty")
	}
}

func TestSizeCenter(t *testing.T) {
	s := Size{Width: 200, Height: 100}
	if c := s.Center(); c != (Offset{X: 100, Y: 50}) {
		t.Errorf("got %+v", c)
	}
}

func TestFloatEqual(t *testing.T) {
	if !floatEqual(1.0, 1.0+epsilon/2) {
		t.Error("values within epsilon should compare equal")
	}
	if floatEqual(1.0, 1.0+math.Sqrt(epsilon)) {
		t.Error("values beyond epsilon should not compare equal")
	}
}
