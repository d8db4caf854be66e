package filltess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMergeWindingLists(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want []int
	}{
		{"disjoint", []int{-1, 1}, []int{0, 2}, []int{-1, 0, 1, 2}},
		{"overlap", []int{0, 1}, []int{1, 2}, []int{0, 1, 2}},
		{"one empty", nil, []int{3}, []int{3}},
		{"equal", []int{1}, []int{1}, []int{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mergeWindingLists(tt.a, tt.b)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// fillDataFor builds a FillData the way the builder would, from one
// components map and an attribute count.
func fillDataFor(nAttrs int, comps map[int][]uint32) FillData {
	b := &builder{components: map[int]*windingComponent{}}
	for w, tris := range comps {
		b.components[w] = &windingComponent{triangles: tris}
	}
	var fd FillData
	b.fillIndices(&fd)
	fd.Attributes = make([]FillVertex, nAttrs)
	for i := range fd.Attributes {
		fd.Attributes[i] = FillVertex{X: float32(i), Y: float32(-i)}
	}
	return fd
}

func TestMergeFillOffsetsSecondChild(t *testing.T) {
	a := fillDataFor(3, map[int][]uint32{1: {0, 1, 2}})
	b := fillDataFor(4, map[int][]uint32{1: {0, 1, 3}, 2: {1, 2, 3}})

	var dst FillData
	mergeFill(&dst, &a, &b)

	if len(dst.Attributes) != 7 {
		t.Fatalf("attributes = %d, want 7", len(dst.Attributes))
	}
	if dst.Attributes[3] != b.Attributes[0] {
		t.Error("second child's attributes not appended after the first's")
	}

	// Winding 1 (odd) first: a's indices verbatim, then b's shifted by 3.
	want := []uint32{0, 1, 2, 3, 4, 6, 4, 5, 6}
	if diff := cmp.Diff(want, dst.Indices); diff != "" {
		t.Errorf("merged indices mismatch (-want +got):\n%s", diff)
	}

	if got := dst.Windings(); !cmp.Equal(got, []int{1, 2}) {
		t.Errorf("merged windings = %v, want [1 2]", got)
	}
	r, ok := dst.WindingRange(1)
	if !ok || r != (Range{Start: 0, End: 6}) {
		t.Errorf("WindingRange(1) = %v, want [0, 6)", r)
	}
	if dst.evenNonzeroStart != 6 || dst.zeroStart != 9 {
		t.Errorf("class starts = (%d, %d), want (6, 9)",
			dst.evenNonzeroStart, dst.zeroStart)
	}
}

func TestMergeFillRebuildsClassLayout(t *testing.T) {
	a := fillDataFor(2, map[int][]uint32{0: {0, 1, 0}})
	b := fillDataFor(2, map[int][]uint32{-1: {0, 0, 1}})

	var dst FillData
	mergeFill(&dst, &a, &b)

	// Odd winding -1 comes from b and must land before a's zero block.
	if dst.zeroStart != 3 || dst.evenNonzeroStart != 3 {
		t.Errorf("class starts = (%d, %d), want (3, 3)",
			dst.evenNonzeroStart, dst.zeroStart)
	}
	want := []uint32{2, 2, 3, 0, 1, 0}
	if diff := cmp.Diff(want, dst.Indices); diff != "" {
		t.Errorf("merged indices mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeMeshPropagatesFailure(t *testing.T) {
	ok := &meshData{}
	bad := &meshData{failed: true}
	if m := mergeMesh(ok, bad); !m.failed {
		t.Error("failure not propagated from second child")
	}
	if m := mergeMesh(bad, ok); !m.failed {
		t.Error("failure not propagated from first child")
	}
	if m := mergeMesh(ok, ok); m.failed {
		t.Error("spurious failure")
	}
}
