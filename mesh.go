package filltess

import (
	"sort"

	"github.com/gogpu/filltess/tess"
)

// Range is a half-open [Start, End) span of an attribute or index
// buffer.
type Range struct {
	Start, End int
}

// Len returns the number of elements in the range.
func (r Range) Len() int { return r.End - r.Start }

// FillVertex is one entry of a subset's fill attribute buffer: the
// position of one registered point.
type FillVertex struct {
	X, Y float32
}

// FillData is the fill geometry of one subset. The index buffer is
// partitioned into three contiguous regions laid out in the order
//
//	odd winding | even non-zero winding | zero winding
//
// so that each fill rule selects a single contiguous range:
// odd-even = odd; nonzero = odd + even non-zero; and the complements
// are the respective suffixes. Per-winding sub-ranges are exposed for
// explicit-winding fills.
type FillData struct {
	Attributes []FillVertex
	Indices    []uint32

	windings         []int // ascending
	perWinding       map[int]Range
	evenNonzeroStart int
	zeroStart        int
}

// Windings returns the winding numbers present, in ascending order.
// The returned slice must not be modified.
func (d *FillData) Windings() []int { return d.windings }

// FillRuleRange returns the contiguous index range covering the fill
// rule.
func (d *FillData) FillRuleRange(r FillRule) Range {
	switch r {
	case FillRuleNonZero:
		return Range{Start: 0, End: d.zeroStart}
	case FillRuleOddEven:
		return Range{Start: 0, End: d.evenNonzeroStart}
	case FillRuleComplementOddEven:
		return Range{Start: d.evenNonzeroStart, End: len(d.Indices)}
	case FillRuleComplementNonZero:
		return Range{Start: d.zeroStart, End: len(d.Indices)}
	default:
		panic("filltess: unknown fill rule")
	}
}

// WindingRange returns the index sub-range holding the triangles of one
// specific winding number.
func (d *FillData) WindingRange(w int) (Range, bool) {
	r, ok := d.perWinding[w]
	return r, ok
}

// largestIndexBlock returns the size of the biggest fill-rule range,
// the quantity checked against the caller's index budget.
func (d *FillData) largestIndexBlock() int {
	m := d.FillRuleRange(FillRuleNonZero).Len()
	for _, r := range []FillRule{FillRuleOddEven, FillRuleComplementOddEven, FillRuleComplementNonZero} {
		if n := d.FillRuleRange(r).Len(); n > m {
			m = n
		}
	}
	return m
}

// meshData is the finished renderable geometry of one subset node.
type meshData struct {
	fill   FillData
	fuzz   FuzzData
	failed bool
}

// buildMesh tessellates one sub-path into its mesh. This is the only
// place tessellation happens; internal nodes merge instead.
func buildMesh(oracle tess.Tessellator, sp *subPath) *meshData {
	b := newBuilder(oracle, sp)

	m := &meshData{failed: b.failed}
	m.fill.Attributes = make([]FillVertex, len(b.hoard.pts))
	for i, p := range b.hoard.pts {
		m.fill.Attributes[i] = FillVertex{X: float32(p.X), Y: float32(p.Y)}
	}
	b.fillIndices(&m.fill)
	buildFuzz(&m.fuzz, m.fill.windings, b.hoard.pts, b.components)

	if m.failed {
		Logger().Warn("triangulation failed; some triangles dropped",
			"points", sp.numPoints, "windings", len(m.fill.windings))
	}
	return m
}

// mergeMesh combines two children's meshes into their parent's mesh
// without re-tessellating: attributes are concatenated, indices from
// the second mesh are offset by the first mesh's attribute count, and
// the winding sets are unioned.
func mergeMesh(a, b *meshData) *meshData {
	m := &meshData{failed: a.failed || b.failed}
	mergeFill(&m.fill, &a.fill, &b.fill)
	mergeFuzz(&m.fuzz, &a.fuzz, &b.fuzz)
	return m
}

func mergeFill(dst, a, b *FillData) {
	dst.Attributes = make([]FillVertex, 0, len(a.Attributes)+len(b.Attributes))
	dst.Attributes = append(dst.Attributes, a.Attributes...)
	dst.Attributes = append(dst.Attributes, b.Attributes...)
	offset := uint32(len(a.Attributes))

	dst.windings = mergeWindingLists(a.windings, b.windings)
	dst.perWinding = make(map[int]Range, len(dst.windings))
	dst.Indices = make([]uint32, 0, len(a.Indices)+len(b.Indices))

	// Rebuild the class layout: odd, then even non-zero, then zero,
	// each class holding its windings in ascending order.
	appendWinding := func(w int) {
		start := len(dst.Indices)
		if r, ok := a.perWinding[w]; ok {
			dst.Indices = append(dst.Indices, a.Indices[r.Start:r.End]...)
		}
		if r, ok := b.perWinding[w]; ok {
			for _, idx := range b.Indices[r.Start:r.End] {
				dst.Indices = append(dst.Indices, idx+offset)
			}
		}
		dst.perWinding[w] = Range{Start: start, End: len(dst.Indices)}
	}
	for _, w := range dst.windings {
		if !isEven(w) {
			appendWinding(w)
		}
	}
	dst.evenNonzeroStart = len(dst.Indices)
	for _, w := range dst.windings {
		if isEven(w) && w != 0 {
			appendWinding(w)
		}
	}
	dst.zeroStart = len(dst.Indices)
	for _, w := range dst.windings {
		if w == 0 {
			appendWinding(w)
		}
	}
}

// mergeWindingLists returns the sorted union of two ascending winding
// lists.
func mergeWindingLists(a, b []int) []int {
	seen := make(map[int]struct{}, len(a)+len(b))
	out := make([]int, 0, len(a)+len(b))
	for _, w := range a {
		if _, ok := seen[w]; !ok {
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	for _, w := range b {
		if _, ok := seen[w]; !ok {
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	sort.Ints(out)
	return out
}
