package filltess

import (
	"math"
	"testing"
)

func TestMat3Identity(t *testing.T) {
	m := IdentityMat3()
	p := Pt(3, -7)
	if got := m.TransformPoint(p); got != p {
		t.Errorf("identity transform = %v, want %v", got, p)
	}
	if got := m.Mul(IdentityMat3()); got != m {
		t.Errorf("I*I = %v, want identity", got)
	}
}

func TestMat3TransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Mat3
		p    Point
		want Point
	}{
		{"translate", TranslateMat3(2, 3), Pt(1, 1), Pt(3, 4)},
		{"scale", ScaleMat3(2, -1), Pt(3, 4), Pt(6, -4)},
		{"scale then translate", TranslateMat3(10, 0).Mul(ScaleMat3(2, 2)), Pt(1, 1), Pt(12, 2)},
		{"translate then scale", ScaleMat3(2, 2).Mul(TranslateMat3(10, 0)), Pt(1, 1), Pt(22, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.p); got != tt.want {
				t.Errorf("TransformPoint = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMat3ProjectiveDivide(t *testing.T) {
	// A matrix with a non-trivial bottom row must divide through by w.
	m := Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 2,
	}
	got := m.TransformPoint(Pt(4, 6))
	want := Pt(2, 3)
	if math.Abs(got.X-want.X) > 1e-12 || math.Abs(got.Y-want.Y) > 1e-12 {
		t.Errorf("TransformPoint = %v, want %v", got, want)
	}
}

// The defining property of the pull-back: evaluating the original plane
// at the transformed point equals evaluating the pulled-back plane at
// the original point.
func TestPullBackPlane(t *testing.T) {
	planes := []ClipPlane{
		{A: 1, B: 0, C: -5},
		{A: 0, B: -1, C: 2},
		{A: 0.5, B: 0.25, C: 1},
	}
	matrices := []Mat3{
		IdentityMat3(),
		TranslateMat3(3, -2),
		ScaleMat3(2, 0.5),
		TranslateMat3(1, 1).Mul(ScaleMat3(-1, 3)),
		{1, 0, 0, 0, 1, 0, 0.001, -0.002, 1},
	}
	points := []Point{Pt(0, 0), Pt(1, 2), Pt(-3, 7), Pt(100, -50)}

	for _, m := range matrices {
		for _, c := range planes {
			back := m.pullBackPlane(c)
			for _, p := range points {
				q := m.TransformPoint(p)
				w := m[6]*p.X + m[7]*p.Y + m[8]
				got := back.Eval(p)
				want := c.Eval(q) * w
				if math.Abs(got-want) > 1e-9*math.Max(1, math.Abs(want)) {
					t.Errorf("pullBackPlane mismatch: m=%v c=%v p=%v: got %v want %v",
						m, c, p, got, want)
				}
			}
		}
	}
}
