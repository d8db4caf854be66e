package filltess

import (
	"math"
	"testing"
)

func unitSquare() []Point {
	return []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}
}

func polygonArea(poly []Point) float64 {
	area := 0.0
	for i := range poly {
		area += poly[i].Cross(poly[(i+1)%len(poly)])
	}
	return area / 2
}

func TestClipPolygonPlaneHalf(t *testing.T) {
	// Keep x >= 0.5.
	plane := ClipPlane{A: 1, B: 0, C: -0.5}
	got := clipPolygonPlane(unitSquare(), plane, nil)
	if area := polygonArea(got); math.Abs(area-0.5) > 1e-12 {
		t.Errorf("clipped area = %v, want 0.5", area)
	}
	for _, p := range got {
		if plane.Eval(p) < -1e-12 {
			t.Errorf("clipped vertex %v on the discarded side", p)
		}
	}
}

func TestClipPolygonPlanes(t *testing.T) {
	tests := []struct {
		name          string
		planes        []ClipPlane
		wantArea      float64
		wantUnclipped bool
		wantEmpty     bool
	}{
		{
			name:          "no planes",
			planes:        nil,
			wantArea:      1,
			wantUnclipped: true,
		},
		{
			name:          "fully inside",
			planes:        []ClipPlane{{A: 1, B: 0, C: 1}, {A: 0, B: 1, C: 1}},
			wantArea:      1,
			wantUnclipped: true,
		},
		{
			name: "corner cut",
			planes: []ClipPlane{
				{A: 1, B: 0, C: -0.5},
				{A: 0, B: 1, C: -0.5},
			},
			wantArea: 0.25,
		},
		{
			name:      "fully outside",
			planes:    []ClipPlane{{A: 1, B: 0, C: -2}},
			wantEmpty: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, unclipped := clipPolygonPlanes(unitSquare(), tt.planes)
			if tt.wantEmpty {
				if len(got) != 0 {
					t.Fatalf("expected empty result, got %v", got)
				}
				return
			}
			if unclipped != tt.wantUnclipped {
				t.Errorf("unclipped = %v, want %v", unclipped, tt.wantUnclipped)
			}
			if area := polygonArea(got); math.Abs(area-tt.wantArea) > 1e-12 {
				t.Errorf("area = %v, want %v", area, tt.wantArea)
			}
		})
	}
}

func TestClipPolygonPlanesDoesNotMutateInput(t *testing.T) {
	poly := unitSquare()
	clipPolygonPlanes(poly, []ClipPlane{{A: 1, B: 0, C: -0.5}})
	want := unitSquare()
	for i := range poly {
		if poly[i] != want[i] {
			t.Fatalf("input polygon mutated: %v", poly)
		}
	}
}
