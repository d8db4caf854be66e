package filltess

import (
	"math"
	"testing"
)

func TestPathLines(t *testing.T) {
	var p Path
	p.MoveTo(0, 0).LineTo(10, 0).LineTo(10, 10).Close()
	p.MoveTo(20, 20).LineTo(30, 20).LineTo(25, 30)

	got := p.Contours()
	if len(got) != 2 {
		t.Fatalf("contours = %d, want 2", len(got))
	}
	if len(got[0]) != 3 || got[0][0] != Pt(0, 0) || got[0][2] != Pt(10, 10) {
		t.Errorf("first contour = %v", got[0])
	}
	if len(got[1]) != 3 {
		t.Errorf("second contour = %v", got[1])
	}
}

func TestPathDropsDegenerateContours(t *testing.T) {
	var p Path
	p.MoveTo(5, 5) // a bare move contributes nothing
	p.MoveTo(0, 0).LineTo(1, 1)
	if got := p.Contours(); len(got) != 1 {
		t.Fatalf("contours = %v, want only the two-point one", got)
	}
}

func TestPathQuadTo(t *testing.T) {
	var p Path
	p.MoveTo(0, 0).QuadTo(5, 10, 10, 0)
	got := p.Contours()
	c := got[0]

	if c[0] != Pt(0, 0) {
		t.Errorf("start = %v, want (0, 0)", c[0])
	}
	if c[len(c)-1] != Pt(10, 0) {
		t.Errorf("end = %v, want (10, 0)", c[len(c)-1])
	}
	if len(c) < 4 {
		t.Errorf("curve flattened to %d points, want several", len(c))
	}

	// Every sample must lie on or below the apex of the parabola.
	for _, q := range c {
		if q.Y > 5+1e-9 {
			t.Errorf("point %v above the curve apex", q)
		}
	}
}

func TestPathCubicTo(t *testing.T) {
	var p Path
	p.MoveTo(0, 0).CubicTo(0, 10, 10, 10, 10, 0)
	c := p.Contours()[0]

	if c[len(c)-1] != Pt(10, 0) {
		t.Errorf("end = %v, want (10, 0)", c[len(c)-1])
	}
	if len(c) < 4 {
		t.Errorf("curve flattened to %d points, want several", len(c))
	}
}

func TestPathToleranceControlsDensity(t *testing.T) {
	coarse := Path{Tolerance: 1.0}
	coarse.MoveTo(0, 0).QuadTo(50, 100, 100, 0)
	fine := Path{Tolerance: 0.01}
	fine.MoveTo(0, 0).QuadTo(50, 100, 100, 0)

	nc := len(coarse.Contours()[0])
	nf := len(fine.Contours()[0])
	if nf <= nc {
		t.Errorf("fine tolerance gave %d points, coarse %d", nf, nc)
	}
}

func TestPathFeedsFilledPath(t *testing.T) {
	var p Path
	p.MoveTo(0, 0).LineTo(10, 0).QuadTo(10, 10, 0, 10).Close()

	fp := NewFilledPath(p.Contours())
	fd := fp.Subset(0).FillData()
	if fd.FillRuleRange(FillRuleNonZero).Len() == 0 {
		t.Fatal("no fill geometry from a built path")
	}
}

func TestDistanceToLine(t *testing.T) {
	tests := []struct {
		name    string
		p, a, b Point
		want    float64
	}{
		{"perpendicular", Pt(0, 1), Pt(-1, 0), Pt(1, 0), 1},
		{"on segment", Pt(0.5, 0), Pt(0, 0), Pt(1, 0), 0},
		{"beyond end", Pt(2, 0), Pt(0, 0), Pt(1, 0), 1},
		{"before start", Pt(-3, 4), Pt(0, 0), Pt(1, 0), 5},
		{"degenerate segment", Pt(3, 4), Pt(0, 0), Pt(0, 0), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := distanceToLine(tt.p, tt.a, tt.b); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("distanceToLine = %v, want %v", got, tt.want)
			}
		})
	}
}
