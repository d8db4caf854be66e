package filltess

import (
	"math"
	"testing"
)

func TestCoordConverterCorners(t *testing.T) {
	bounds := Rect{Min: Pt(-2, 1), Max: Pt(6, 5)}
	c := newCoordConverter(bounds)

	tests := []struct {
		p    Point
		want ipoint
	}{
		{Pt(-2, 1), ipoint{x: 1, y: 1}},
		{Pt(6, 5), ipoint{x: boxDim + 1, y: boxDim + 1}},
		{Pt(2, 3), ipoint{x: halfBoxDim + 1, y: halfBoxDim + 1}},
	}
	for _, tt := range tests {
		if got := c.apply(tt.p); got != tt.want {
			t.Errorf("apply(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestCoordConverterClamps(t *testing.T) {
	c := newCoordConverter(Rect{Min: Pt(0, 0), Max: Pt(1, 1)})
	lo := c.apply(Pt(-100, -100))
	hi := c.apply(Pt(100, 100))
	if lo != (ipoint{x: 1, y: 1}) {
		t.Errorf("apply below min = %v, want (1, 1)", lo)
	}
	if hi != (ipoint{x: boxDim + 1, y: boxDim + 1}) {
		t.Errorf("apply above max = %v, want (%d, %d)", hi, boxDim+1, boxDim+1)
	}
}

func TestCoordConverterRoundTrip(t *testing.T) {
	bounds := Rect{Min: Pt(-10, 20), Max: Pt(30, 60)}
	c := newCoordConverter(bounds)

	pts := []Point{Pt(-10, 20), Pt(30, 60), Pt(0, 40), Pt(13.25, 21.5)}
	for _, p := range pts {
		ip := c.apply(p)
		back := c.unapply(float64(ip.x), float64(ip.y))
		// One integer grid step maps back to extent/boxDim.
		tol := 2 * bounds.Width() / boxDim
		if math.Abs(back.X-p.X) > tol || math.Abs(back.Y-p.Y) > tol {
			t.Errorf("round trip of %v = %v, drift above %v", p, back, tol)
		}
	}
}

func TestCoordConverterEmptyBoundsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for empty bounds")
		}
	}()
	newCoordConverter(EmptyRect())
}

func TestApplyFudgedPerturbsTowardInterior(t *testing.T) {
	h := newPointHoard(Rect{Min: Pt(0, 0), Max: Pt(1, 1)})
	lo := h.registerDiscretized(Pt(0, 0), 0)
	hi := h.registerDiscretized(Pt(1, 1), 0)

	x0, y0 := h.applyFudged(lo, 0)
	x1, y1 := h.applyFudged(lo, 3)
	if x1 <= x0 || y1 <= y0 {
		t.Errorf("min-corner fudge should grow: (%v,%v) -> (%v,%v)", x0, y0, x1, y1)
	}
	if x1-x0 != 3*h.conv.fudgeDelta {
		t.Errorf("fudge step = %v, want %v", x1-x0, 3*h.conv.fudgeDelta)
	}

	x0, y0 = h.applyFudged(hi, 0)
	x1, y1 = h.applyFudged(hi, 3)
	if x1 >= x0 || y1 >= y0 {
		t.Errorf("max-corner fudge should shrink: (%v,%v) -> (%v,%v)", x0, y0, x1, y1)
	}
}

func TestFudgeInvisibleAtFloat32(t *testing.T) {
	h := newPointHoard(Rect{Min: Pt(0, 0), Max: Pt(1, 1)})
	i := h.registerDiscretized(Pt(0.5, 0.5), 0)
	x0, _ := h.applyFudged(i, 0)
	x1, _ := h.applyFudged(i, 1)
	if x0 == x1 {
		t.Fatal("fudge must be visible in float64")
	}
	if float32(x0) != float32(x1) {
		t.Errorf("fudge visible at float32: %v vs %v", float32(x0), float32(x1))
	}
}
