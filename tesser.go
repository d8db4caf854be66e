package filltess

import (
	"math"

	"github.com/gogpu/filltess/tess"
)

// edge is one consecutive edge of a monotone-polygon boundary. next is
// the vertex after end, used to build the bevel wedge at the joint.
type edge struct {
	start, end, next uint32
	drawEdge         bool
	drawBevel        bool
}

const (
	edgeQuadAttrs   = 4
	edgeQuadIndices = 6
	bevelAttrs      = 3
	bevelIndices    = 3
)

func (e edge) attributeCount() int {
	n := 0
	if e.drawEdge {
		n += edgeQuadAttrs
	}
	if e.drawBevel {
		n += bevelAttrs
	}
	return n
}

func (e edge) indexCount() int {
	n := 0
	if e.drawEdge {
		n += edgeQuadIndices
	}
	if e.drawBevel {
		n += bevelIndices
	}
	return n
}

// edgeList accumulates the drawable boundary edges of one winding
// component, boundary by boundary.
type edgeList struct {
	edges          []edge
	attributeCount int
	indexCount     int
	edgeCount      int

	current []edge
}

func (l *edgeList) beginBoundary() {
	if len(l.current) != 0 {
		panic("filltess: unterminated boundary")
	}
}

// addEdge appends the edge p0-p1 to the current boundary. An edge gets
// a bevel when it or the following edge is drawn, so adjacent drawn
// edges join without a crack.
func (l *edgeList) addEdge(p0, p1 uint32, drawn bool) {
	if n := len(l.current); n > 0 {
		if l.current[n-1].end != p0 {
			panic("filltess: discontinuous boundary")
		}
		l.current[n-1].next = p1
		l.current[n-1].drawBevel = drawn || l.current[n-1].drawEdge
	}
	l.current = append(l.current, edge{start: p0, end: p1, drawEdge: drawn})
}

func (l *edgeList) endBoundary() {
	n := len(l.current)
	if n == 0 {
		return
	}
	if l.current[n-1].end != l.current[0].start {
		panic("filltess: boundary does not close")
	}
	l.current[n-1].next = l.current[0].end
	l.current[n-1].drawBevel = l.current[0].drawEdge || l.current[n-1].drawEdge

	for _, e := range l.current {
		if e.drawEdge || e.drawBevel {
			l.edges = append(l.edges, e)
			l.edgeCount++
			l.attributeCount += e.attributeCount()
			l.indexCount += e.indexCount()
		}
	}
	l.current = l.current[:0]
}

// windingComponent holds all triangles and boundary edges whose
// corrected winding number is the component's key.
type windingComponent struct {
	triangles []uint32
	edges     edgeList
}

// tesser drives the tessellation oracle over one sub-path's registered
// contours and buckets the output by corrected winding number. It is
// the oracle adapter: all callback state lives here, nothing is global.
type tesser struct {
	hoard         *pointHoard
	windingOffset int
	components    map[int]*windingComponent

	fudgeCount     int
	currentWinding int
	tempVerts      [3]uint32
	tempCount      int
	failed         bool
}

func runTesser(oracle tess.Tessellator, hoard *pointHoard, path hoardPath, windingOffset int) (map[int]*windingComponent, bool) {
	t := &tesser{
		hoard:         hoard,
		windingOffset: windingOffset,
		components:    make(map[int]*windingComponent),
	}

	contours := make([][]tess.Vertex, 0, len(path))
	for _, c := range path {
		verts := make([]tess.Vertex, len(c))
		for i, q := range c {
			// The fudge grows with every point fed to the oracle,
			// not only points on truly overlapping edges. That is
			// over-broad but safe: under-perturbing reintroduces
			// oracle failures on coincident edges.
			x, y := hoard.applyFudged(q.vertex, t.fudgeCount)
			t.fudgeCount++
			verts[i] = tess.Vertex{X: x, Y: y, ID: q.vertex}
		}
		contours = append(contours, verts)
	}

	oracle.Tessellate(contours, t)
	return t.components, t.failed
}

func (t *tesser) component(winding int) *windingComponent {
	c, ok := t.components[winding]
	if !ok {
		c = &windingComponent{}
		t.components[winding] = c
	}
	return c
}

// BeginTriangles implements tess.Sink.
func (t *tesser) BeginTriangles(winding int) {
	t.tempCount = 0
	t.currentWinding = winding + t.windingOffset
}

// TriangleVertex implements tess.Sink. Vertices are cached in groups of
// three; a triangle is kept only if no vertex is the null sentinel and
// it passes the degeneracy checks.
func (t *tesser) TriangleVertex(id uint32) {
	if id == tess.NullVertex {
		t.failed = true
	}
	t.tempVerts[t.tempCount] = id
	t.tempCount++
	if t.tempCount < 3 {
		return
	}
	t.tempCount = 0
	if t.tempVerts[0] == tess.NullVertex ||
		t.tempVerts[1] == tess.NullVertex ||
		t.tempVerts[2] == tess.NullVertex {
		return
	}
	if !t.nonDegenerateTriangle() {
		return
	}
	c := t.component(t.currentWinding)
	c.triangles = append(c.triangles, t.tempVerts[0], t.tempVerts[1], t.tempVerts[2])
}

// nonDegenerateTriangle rejects triangles with repeated vertices, zero
// signed area, or any height-to-base ratio below the sub-pixel
// threshold. The test runs in 64-bit integer-domain arithmetic to avoid
// floating-point error.
func (t *tesser) nonDegenerateTriangle() bool {
	if t.tempVerts[0] == t.tempVerts[1] ||
		t.tempVerts[0] == t.tempVerts[2] ||
		t.tempVerts[1] == t.tempVerts[2] {
		return false
	}

	p0 := t.hoard.ipts[t.tempVerts[0]]
	p1 := t.hoard.ipts[t.tempVerts[1]]
	p2 := t.hoard.ipts[t.tempVerts[2]]

	vx, vy := int64(p1.x-p0.x), int64(p1.y-p0.y)
	wx, wy := int64(p2.x-p0.x), int64(p2.y-p0.y)
	twiceArea := vx*wy - vy*wx
	if twiceArea < 0 {
		twiceArea = -twiceArea
	}
	if twiceArea == 0 {
		return false
	}

	ux, uy := int64(p2.x-p1.x), int64(p2.y-p1.y)
	vmag := math.Sqrt(float64(vx*vx + vy*vy))
	wmag := math.Sqrt(float64(wx*wx + wy*wy))
	umag := math.Sqrt(float64(ux*ux + uy*uy))

	// The distance from an edge to the third point is twice the area
	// divided by the edge length; require at least minTriangleHeight.
	area2 := float64(twiceArea)
	if area2 < minTriangleHeight*vmag ||
		area2 < minTriangleHeight*wmag ||
		area2 < minTriangleHeight*umag {
		return false
	}
	return true
}

// Combine implements tess.Sink: register a vertex the oracle
// manufactured when splitting an edge.
func (t *tesser) Combine(x, y float64, src [4]uint32, weight [4]float64) uint32 {
	var pt Point
	useSum := true
	for i := 0; i < 4; i++ {
		if weight[i] != 0 && src[i] == tess.NullVertex {
			useSum = false
			break
		}
	}
	if useSum {
		for i := 0; i < 4; i++ {
			if weight[i] != 0 {
				pt = pt.Add(t.hoard.pts[src[i]].Mul(weight[i]))
			}
		}
	} else {
		pt = t.hoard.conv.unapply(x, y)
	}
	return t.hoard.registerRaw(pt)
}

// BoundaryCorner implements tess.Sink.
func (t *tesser) BoundaryCorner(isMaxX, isMaxY bool) uint32 {
	return t.hoard.fetchCorner(isMaxX, isMaxY)
}

// EmitMonotone implements tess.Sink. An edge is drawable only when it
// does not hug the working rectangle and the winding number differs
// across it; an edge between two regions of the same winding number
// contributes no visible boundary.
func (t *tesser) EmitMonotone(winding int, vertices []uint32, neighbors []int) {
	c := t.component(winding + t.windingOffset)
	c.edges.beginBoundary()
	n := len(vertices)
	for i := 0; i < n; i++ {
		va := vertices[i]
		vb := vertices[(i+1)%n]
		hugs := t.hoard.edgeHugsBoundary(va, vb)
		sameWinding := neighbors[i] == winding
		c.edges.addEdge(va, vb, !hugs && !sameWinding)
	}
	c.edges.endBoundary()
}
