package filltess

import (
	"sort"

	"github.com/gogpu/filltess/tess"
)

// builder runs one sub-path through registration and tessellation and
// holds the per-winding components until they are packed into buffers.
type builder struct {
	hoard         *pointHoard
	components    map[int]*windingComponent
	windingOffset int
	failed        bool
}

func newBuilder(oracle tess.Tessellator, sp *subPath) *builder {
	b := &builder{hoard: newPointHoard(sp.bounds)}

	path, offset := b.hoard.generatePath(sp)
	b.windingOffset = offset
	b.components, b.failed = runTesser(oracle, b.hoard, path, offset)

	for w, c := range b.components {
		if len(c.triangles) == 0 {
			delete(b.components, w)
		}
	}

	if len(b.components) == 0 {
		// Fully reducible path: the node is covered uniformly at the
		// winding offset. Synthesize two triangles spanning the
		// bounding rectangle so the node always has index data when
		// its winding is nonzero.
		c := &windingComponent{}
		c.triangles = append(c.triangles,
			b.hoard.fetchCorner(true, true),
			b.hoard.fetchCorner(true, false),
			b.hoard.fetchCorner(false, false),

			b.hoard.fetchCorner(true, true),
			b.hoard.fetchCorner(false, false),
			b.hoard.fetchCorner(false, true),
		)
		b.components[offset] = c
	}
	return b
}

// fillIndices packs every component's triangles into dst's index
// buffer: all odd windings first, then even non-zero, then zero, with
// windings ascending inside each class, and records the per-winding
// sub-ranges.
func (b *builder) fillIndices(dst *FillData) {
	windings := make([]int, 0, len(b.components))
	for w := range b.components {
		windings = append(windings, w)
	}
	sort.Ints(windings)

	var numOdd, numEvenNonzero, numZero int
	for _, w := range windings {
		n := len(b.components[w].triangles)
		switch {
		case w == 0:
			numZero += n
		case isEven(w):
			numEvenNonzero += n
		default:
			numOdd += n
		}
	}
	total := numOdd + numEvenNonzero + numZero

	dst.Indices = make([]uint32, total)
	dst.windings = windings
	dst.perWinding = make(map[int]Range, len(windings))
	dst.evenNonzeroStart = numOdd
	dst.zeroStart = numOdd + numEvenNonzero

	curOdd, curEvenNonzero, curZero := 0, numOdd, numOdd+numEvenNonzero
	for _, w := range windings {
		tris := b.components[w].triangles
		var at *int
		switch {
		case w == 0:
			at = &curZero
		case isEven(w):
			at = &curEvenNonzero
		default:
			at = &curOdd
		}
		copy(dst.Indices[*at:], tris)
		dst.perWinding[w] = Range{Start: *at, End: *at + len(tris)}
		*at += len(tris)
	}

	if curOdd != numOdd || curEvenNonzero != numOdd+numEvenNonzero || curZero != total {
		panic("filltess: index packing does not partition")
	}
}
