package filltess

import (
	"testing"
)

// edgeListWith builds a closed triangle boundary with the given drawn
// flags per edge.
func edgeListWith(drawn [3]bool) edgeList {
	var l edgeList
	l.beginBoundary()
	l.addEdge(0, 1, drawn[0])
	l.addEdge(1, 2, drawn[1])
	l.addEdge(2, 0, drawn[2])
	l.endBoundary()
	return l
}

func trianglePoints() []Point {
	return []Point{Pt(0, 0), Pt(4, 0), Pt(2, 3)}
}

func TestBuildFuzzSingleEdge(t *testing.T) {
	comps := map[int]*windingComponent{
		1: {edges: edgeListWith([3]bool{true, false, false})},
	}
	var fd FuzzData
	buildFuzz(&fd, []int{1}, trianglePoints(), comps)

	attr, index, ok := fd.WindingChunk(1)
	if !ok {
		t.Fatal("winding 1 chunk missing")
	}
	// The drawn edge packs a quad plus a bevel at its end joint, and
	// the preceding edge survives carrying the bevel at the start
	// joint: one quad plus two bevel wedges in total.
	wantAttrs := edgeQuadAttrs + 2*bevelAttrs
	wantIdx := edgeQuadIndices + 2*bevelIndices
	if attr.Len() != wantAttrs || index.Len() != wantIdx {
		t.Fatalf("chunk sizes = (%d, %d), want (%d, %d)",
			attr.Len(), index.Len(), wantAttrs, wantIdx)
	}

	// All indices must stay inside the chunk's attribute range.
	for _, i := range fd.Indices[index.Start:index.End] {
		if int(i) < attr.Start || int(i) >= attr.End {
			t.Errorf("index %d escapes attribute range %v", i, attr)
		}
	}
}

func TestBuildFuzzQuadGeometry(t *testing.T) {
	comps := map[int]*windingComponent{
		1: {edges: edgeListWith([3]bool{true, true, true})},
	}
	var fd FuzzData
	buildFuzz(&fd, []int{1}, trianglePoints(), comps)

	// First packed quad belongs to edge 0-1: two vertices at each
	// endpoint, displaced to opposite sides.
	q := fd.Attributes[:4]
	if q[0].X != 0 || q[0].Y != 0 || q[2].X != 4 || q[2].Y != 0 {
		t.Fatalf("quad endpoints wrong: %+v", q)
	}
	if q[0].Sign != -1 || q[1].Sign != 1 || q[2].Sign != 1 || q[3].Sign != -1 {
		t.Errorf("quad signs = (%v,%v,%v,%v), want (-1,1,1,-1)",
			q[0].Sign, q[1].Sign, q[2].Sign, q[3].Sign)
	}
	// Edge 0-1 runs along +x, so the normal is +y (unnormalized).
	for k, v := range q {
		if v.NX != 0 || v.NY != 4 {
			t.Errorf("quad vertex %d normal = (%v, %v), want (0, 4)", k, v.NX, v.NY)
		}
	}
}

func TestBuildFuzzDepthDecreases(t *testing.T) {
	comps := map[int]*windingComponent{
		1: {edges: edgeListWith([3]bool{true, true, true})},
	}
	var fd FuzzData
	buildFuzz(&fd, []int{1}, trianglePoints(), comps)

	// Depth runs from edgeCount-1 down to 0 in pack order.
	zs := []uint32{}
	for _, v := range fd.Attributes {
		zs = append(zs, v.Z)
	}
	for i := 1; i < len(zs); i++ {
		if zs[i] > zs[i-1] {
			t.Fatalf("depth increases at %d: %v", i, zs)
		}
	}
	if zs[0] != 2 || zs[len(zs)-1] != 0 {
		t.Errorf("depth endpoints = (%d, %d), want (2, 0)", zs[0], zs[len(zs)-1])
	}
}

func TestBuildFuzzChunkIndexing(t *testing.T) {
	comps := map[int]*windingComponent{
		-1: {edges: edgeListWith([3]bool{true, false, false})},
		2:  {edges: edgeListWith([3]bool{true, false, false})},
	}
	var fd FuzzData
	buildFuzz(&fd, []int{-1, 2}, trianglePoints(), comps)

	if len(fd.chunks) != FuzzChunkFromWinding(2)+1 {
		t.Errorf("chunk count = %d, want %d", len(fd.chunks), FuzzChunkFromWinding(2)+1)
	}
	if _, _, ok := fd.WindingChunk(-1); !ok {
		t.Error("chunk for winding -1 missing")
	}
	if _, _, ok := fd.WindingChunk(2); !ok {
		t.Error("chunk for winding 2 missing")
	}
	if _, _, ok := fd.WindingChunk(1); ok {
		t.Error("phantom chunk for winding 1")
	}
	if _, _, ok := fd.WindingChunk(5); ok {
		t.Error("chunk beyond the table reported present")
	}
}

func TestMergeFuzzShiftsDepth(t *testing.T) {
	mkFuzz := func() FuzzData {
		comps := map[int]*windingComponent{
			1: {edges: edgeListWith([3]bool{true, true, true})},
		}
		var fd FuzzData
		buildFuzz(&fd, []int{1}, trianglePoints(), comps)
		return fd
	}
	a, b := mkFuzz(), mkFuzz()

	var dst FuzzData
	mergeFuzz(&dst, &a, &b)

	attr, index, ok := dst.WindingChunk(1)
	if !ok {
		t.Fatal("merged chunk missing")
	}
	if attr.Len() != len(a.Attributes)+len(b.Attributes) {
		t.Errorf("merged attrs = %d, want %d", attr.Len(),
			len(a.Attributes)+len(b.Attributes))
	}
	if index.Len() != len(a.Indices)+len(b.Indices) {
		t.Errorf("merged indices = %d, want %d", index.Len(),
			len(a.Indices)+len(b.Indices))
	}

	// The first child draws on top: its depths are raised by the second
	// child's edge count, the second child's are unchanged.
	for i := 0; i < len(a.Attributes); i++ {
		if dst.Attributes[i].Z != a.Attributes[i].Z+3 {
			t.Fatalf("first child depth at %d = %d, want %d",
				i, dst.Attributes[i].Z, a.Attributes[i].Z+3)
		}
	}
	for i := 0; i < len(b.Attributes); i++ {
		if dst.Attributes[len(a.Attributes)+i].Z != b.Attributes[i].Z {
			t.Fatalf("second child depth at %d changed", i)
		}
	}

	// Indices must be rebased into the merged attribute positions.
	for _, idx := range dst.Indices[index.Start:index.End] {
		if int(idx) >= attr.End {
			t.Fatalf("merged index %d out of range %v", idx, attr)
		}
	}
	if got := dst.chunks[FuzzChunkFromWinding(1)].zEnd; got != 6 {
		t.Errorf("merged zEnd = %d, want 6", got)
	}
}

func TestPerp(t *testing.T) {
	if got := perp(Pt(3, 1)); got != Pt(-1, 3) {
		t.Errorf("perp = %v, want (-1, 3)", got)
	}
	v := Pt(2, 5)
	if d := v.Dot(perp(v)); d != 0 {
		t.Errorf("perp not orthogonal: dot = %v", d)
	}
}
