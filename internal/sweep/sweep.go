// Package sweep implements the built-in tessellation oracle: a
// trapezoidal decomposition by horizontal sweep.
//
// The working square is cut into horizontal slabs at every distinct
// vertex y and every pairwise edge intersection y, so that inside a
// slab no two active edges cross. Sorting the active edges of a slab by
// their x at the slab midline partitions the slab into trapezoidal
// regions of constant winding number; the winding accumulates left to
// right from zero at the wall, +1 per downward edge and -1 per upward
// edge. Every region, the zero-winding ones included, is reported as
// two fan triangles plus one monotone boundary loop whose per-edge
// neighbor windings are read from the adjacent regions.
//
// Cut vertices on slab lines are registered once per (edge, line) pair
// and shared by the regions on both sides, so region corners that
// coincide geometrically carry the same identifier.
package sweep

import (
	"math"
	"sort"

	"github.com/gogpu/filltess/tess"
)

const (
	workMin = 1.0
	workMax = 1.0 + float64(1<<24)

	// levelEps merges sweep lines closer than a quarter of the fudge
	// spacing; distinct perturbed vertices stay apart.
	levelEps = 1.0 / (1 << 22)

	// widthEps is the x extent below which a region is a sliver not
	// worth emitting.
	widthEps = 1.0 / (1 << 22)
)

// Tessellator is the trapezoidal-sweep oracle. The zero value is ready
// to use; one instance may serve many Tessellate calls but not
// concurrently with itself.
type Tessellator struct{}

// New returns the default oracle.
func New() *Tessellator { return &Tessellator{} }

// Tessellate implements tess.Tessellator.
func (*Tessellator) Tessellate(contours [][]tess.Vertex, sink tess.Sink) {
	r := &run{
		sink:  sink,
		cuts:  make(map[cutKey]uint32),
		walls: make(map[wallKey]uint32),
	}
	r.collect(contours)
	r.buildLevels()
	r.buildSlabs()
	for i := range r.slabs {
		r.emitSlab(i)
	}
}

// segment is one oriented contour edge. delta is the winding change
// when crossing the edge left to right: +1 when the edge runs downward.
type segment struct {
	x1, y1, x2, y2 float64
	id1, id2       uint32
	ymin, ymax     float64
	delta          int
}

func (s *segment) xAt(y float64) float64 {
	t := (y - s.y1) / (s.y2 - s.y1)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return s.x1 + t*(s.x2-s.x1)
}

// slab is the strip between two consecutive sweep lines. edges holds
// the indices of the segments spanning the strip, sorted by x at the
// midline; winding[j] is the winding number of the j-th region, with
// winding[0] the region against the left wall.
type slab struct {
	loIdx, hiIdx int
	edges        []int
	winding      []int
}

type cutKey struct {
	seg, level int
}

type wallKey struct {
	right bool
	level int
}

type run struct {
	sink   tess.Sink
	segs   []segment
	levels []float64
	slabs  []slab
	cuts   map[cutKey]uint32
	walls  map[wallKey]uint32
}

func (r *run) collect(contours [][]tess.Vertex) {
	for _, c := range contours {
		n := len(c)
		for i := 0; i < n; i++ {
			a, b := c[i], c[(i+1)%n]
			if a.ID == b.ID {
				continue
			}
			s := segment{
				x1: a.X, y1: a.Y, x2: b.X, y2: b.Y,
				id1: a.ID, id2: b.ID,
				ymin: math.Min(a.Y, b.Y),
				ymax: math.Max(a.Y, b.Y),
			}
			if a.Y > b.Y {
				s.delta = +1
			} else {
				s.delta = -1
			}
			r.segs = append(r.segs, s)
		}
	}
}

// buildLevels collects the sweep lines: the working square's top and
// bottom, every segment endpoint y, and every proper pairwise
// intersection y, merged within levelEps.
func (r *run) buildLevels() {
	ys := []float64{workMin, workMax}
	for i := range r.segs {
		ys = append(ys, r.segs[i].y1, r.segs[i].y2)
	}
	for i := 0; i < len(r.segs); i++ {
		for j := i + 1; j < len(r.segs); j++ {
			if y, ok := intersectY(&r.segs[i], &r.segs[j]); ok {
				ys = append(ys, y)
			}
		}
	}
	sort.Float64s(ys)
	for _, y := range ys {
		if n := len(r.levels); n == 0 || y-r.levels[n-1] > levelEps {
			r.levels = append(r.levels, y)
		}
	}
}

// intersectY returns the y of the proper crossing of two segments, if
// any. Crossings at shared endpoints contribute nothing new: endpoint
// ys are sweep lines already.
func intersectY(a, b *segment) (float64, bool) {
	d1x, d1y := a.x2-a.x1, a.y2-a.y1
	d2x, d2y := b.x2-b.x1, b.y2-b.y1
	den := d1x*d2y - d1y*d2x
	if den == 0 {
		return 0, false
	}
	ex, ey := b.x1-a.x1, b.y1-a.y1
	t := (ex*d2y - ey*d2x) / den
	u := (ex*d1y - ey*d1x) / den
	if t <= 0 || t >= 1 || u <= 0 || u >= 1 {
		return 0, false
	}
	return a.y1 + t*d1y, true
}

func (r *run) buildSlabs() {
	for i := 0; i+1 < len(r.levels); i++ {
		yLo, yHi := r.levels[i], r.levels[i+1]
		mid := (yLo + yHi) / 2
		var act []int
		for k := range r.segs {
			s := &r.segs[k]
			if s.ymax-s.ymin <= levelEps {
				continue
			}
			if s.ymin <= yLo+levelEps && s.ymax >= yHi-levelEps {
				act = append(act, k)
			}
		}
		sort.Slice(act, func(p, q int) bool {
			xp, xq := r.segs[act[p]].xAt(mid), r.segs[act[q]].xAt(mid)
			if xp != xq {
				return xp < xq
			}
			return r.segs[act[p]].xAt(yHi) < r.segs[act[q]].xAt(yHi)
		})
		winding := make([]int, len(act)+1)
		for j, k := range act {
			winding[j+1] = winding[j] + r.segs[k].delta
		}
		r.slabs = append(r.slabs, slab{loIdx: i, hiIdx: i + 1, edges: act, winding: winding})
	}
}

// cutID returns the vertex where a segment crosses a sweep line,
// registering it through the sink on first use. A line through an
// endpoint reuses the endpoint's own vertex.
func (r *run) cutID(segIdx, level int) uint32 {
	key := cutKey{segIdx, level}
	if id, ok := r.cuts[key]; ok {
		return id
	}
	s := &r.segs[segIdx]
	y := r.levels[level]
	d1, d2 := math.Abs(y-s.y1), math.Abs(y-s.y2)

	var id uint32
	switch {
	case d1 <= levelEps && d1 <= d2:
		id = s.id1
	case d2 <= levelEps:
		id = s.id2
	default:
		t := (y - s.y1) / (s.y2 - s.y1)
		x := s.x1 + t*(s.x2-s.x1)
		id = r.sink.Combine(x, y,
			[4]uint32{s.id1, s.id2, tess.NullVertex, tess.NullVertex},
			[4]float64{1 - t, t, 0, 0})
	}
	r.cuts[key] = id
	return id
}

// wallID returns the vertex where a sweep line meets the left or right
// wall of the working square; the square's corners come from the sink.
func (r *run) wallID(right bool, level int) uint32 {
	key := wallKey{right: right, level: level}
	if id, ok := r.walls[key]; ok {
		return id
	}
	var id uint32
	if level == 0 || level == len(r.levels)-1 {
		id = r.sink.BoundaryCorner(right, level == len(r.levels)-1)
	} else {
		x := workMin
		if right {
			x = workMax
		}
		id = r.sink.Combine(x, r.levels[level],
			[4]uint32{tess.NullVertex, tess.NullVertex, tess.NullVertex, tess.NullVertex},
			[4]float64{1, 0, 0, 0})
	}
	r.walls[key] = id
	return id
}

// boundaryX returns region boundary j's x at a sweep line. Boundary 0
// is the left wall and boundary len(edges) the right wall; the rest are
// the active edges shifted by one.
func (r *run) boundaryX(s *slab, j, level int) float64 {
	switch {
	case j == 0:
		return workMin
	case j > len(s.edges):
		return workMax
	default:
		return r.segs[s.edges[j-1]].xAt(r.levels[level])
	}
}

func (r *run) boundaryID(s *slab, j, level int) uint32 {
	switch {
	case j == 0:
		return r.wallID(false, level)
	case j > len(s.edges):
		return r.wallID(true, level)
	default:
		return r.cutID(s.edges[j-1], level)
	}
}

// regionWinding returns the winding of the region of s containing x at
// the given sweep line.
func (r *run) regionWinding(s *slab, level int, x float64) int {
	for j, k := range s.edges {
		if x < r.segs[k].xAt(r.levels[level]) {
			return s.winding[j]
		}
	}
	return s.winding[len(s.edges)]
}

// breakpoint is one interior vertex on a horizontal region boundary,
// contributed by the adjacent slab.
type breakpoint struct {
	x  float64
	id uint32
}

// piecesAcross splits the horizontal span [xa, xb] at the given sweep
// line by the adjacent slab's edge crossings. It returns the interior
// breakpoints left to right and one neighbor winding per piece
// (len(winds) == len(bps)+1), read from the adjacent slab's regions.
func (r *run) piecesAcross(ad *slab, level int, xa, xb float64) (bps []breakpoint, winds []int) {
	y := r.levels[level]
	for _, k := range ad.edges {
		x := r.segs[k].xAt(y)
		if x > xa+widthEps && x < xb-widthEps {
			bps = append(bps, breakpoint{x: x, id: r.cutID(k, level)})
		}
	}
	sort.Slice(bps, func(p, q int) bool { return bps[p].x < bps[q].x })

	// Touching edges cross the line at the same vertex; keep one.
	out := bps[:0]
	for _, b := range bps {
		if n := len(out); n == 0 || out[n-1].id != b.id {
			out = append(out, b)
		}
	}
	bps = out

	prev := xa
	for _, b := range bps {
		winds = append(winds, r.regionWinding(ad, level, (prev+b.x)/2))
		prev = b.x
	}
	winds = append(winds, r.regionWinding(ad, level, (prev+xb)/2))
	return bps, winds
}

// emitSlab reports every region of one slab: its winding triangles and
// its monotone boundary loop with per-edge neighbor windings.
func (r *run) emitSlab(si int) {
	s := &r.slabs[si]
	for j := 0; j <= len(s.edges); j++ {
		r.emitRegion(si, j)
	}
}

func (r *run) emitRegion(si, j int) {
	s := &r.slabs[si]
	lo, hi := s.loIdx, s.hiIdx

	blx := r.boundaryX(s, j, lo)
	brx := r.boundaryX(s, j+1, lo)
	tlx := r.boundaryX(s, j, hi)
	trx := r.boundaryX(s, j+1, hi)
	if brx-blx < widthEps && trx-tlx < widthEps {
		return
	}

	bl := r.boundaryID(s, j, lo)
	br := r.boundaryID(s, j+1, lo)
	tl := r.boundaryID(s, j, hi)
	tr := r.boundaryID(s, j+1, hi)

	w := s.winding[j]
	r.sink.BeginTriangles(w)
	for _, id := range [6]uint32{bl, br, tr, bl, tr, tl} {
		r.sink.TriangleVertex(id)
	}

	leftNb, rightNb := 0, 0
	if j > 0 {
		leftNb = s.winding[j-1]
	}
	if j < len(s.edges) {
		rightNb = s.winding[j+1]
	}

	// Boundary loop, counter-clockwise: bottom left to right, right
	// side up, top right to left, left side down.
	var vs []uint32
	var ns []int
	add := func(v uint32, nb int) {
		vs = append(vs, v)
		ns = append(ns, nb)
	}

	if si > 0 {
		bps, winds := r.piecesAcross(&r.slabs[si-1], lo, blx, brx)
		add(bl, winds[0])
		for k, b := range bps {
			add(b.id, winds[k+1])
		}
	} else {
		add(bl, 0)
	}
	add(br, rightNb)
	if si+1 < len(r.slabs) {
		bps, winds := r.piecesAcross(&r.slabs[si+1], hi, tlx, trx)
		add(tr, winds[len(winds)-1])
		for k := len(bps) - 1; k >= 0; k-- {
			add(bps[k].id, winds[k])
		}
	} else {
		add(tr, 0)
	}
	add(tl, leftNb)

	// Drop zero-length edges: a triangle region repeats a corner.
	var fvs []uint32
	var fns []int
	for i := range vs {
		if vs[i] != vs[(i+1)%len(vs)] {
			fvs = append(fvs, vs[i])
			fns = append(fns, ns[i])
		}
	}
	if len(fvs) >= 3 {
		r.sink.EmitMonotone(w, fvs, fns)
	}
}
