// Package tess defines the contract between the filltess engine and a
// polygon tessellation oracle.
//
// An oracle receives closed contours of vertices in "general position"
// (no two edges overlapping along a positive-length segment) inside the
// working rectangle [1, 1+2^24] x [1, 1+2^24], and reports interior
// triangles for every bounded region together with the region's signed
// winding number. Classification by fill rule happens downstream: the
// oracle must report all windings, not filter by one.
//
// Vertices the oracle manufactures itself (edge-intersection splits,
// slab cuts) are registered through [Sink.Combine]; vertices needed to
// close a polygon against the working rectangle are obtained through
// [Sink.BoundaryCorner]. Boundaries of the oracle's monotone-polygon
// decomposition are reported through [Sink.EmitMonotone] so the engine
// can build anti-aliasing geometry for edges separating regions of
// different winding number.
package tess

// Vertex is an input contour vertex: a position in the working
// rectangle plus the caller's opaque identifier for the point.
type Vertex struct {
	X, Y float64
	ID   uint32
}

// NullVertex is the sentinel identifier an oracle reports for a vertex
// it failed to resolve. A triangle containing it is dropped by the
// caller and the failure surfaced as a diagnostic.
const NullVertex = ^uint32(0)

// Sink receives the oracle's output. All methods are invoked
// synchronously during [Tessellator.Tessellate].
type Sink interface {
	// BeginTriangles announces that subsequent TriangleVertex calls
	// belong to regions of the given winding number.
	BeginTriangles(winding int)

	// TriangleVertex supplies one vertex identifier. Identifiers
	// arrive in groups of three forming triangles; NullVertex marks a
	// failed vertex.
	TriangleVertex(id uint32)

	// Combine asks the caller to register a vertex the oracle
	// manufactured at (x, y) in working coordinates. src and weight
	// describe up to four contributing vertices (unused slots hold
	// NullVertex); if every contributor is a real vertex, the new
	// position is their weighted average in input coordinates,
	// otherwise the caller un-transforms (x, y).
	Combine(x, y float64, src [4]uint32, weight [4]float64) uint32

	// BoundaryCorner asks the caller for the vertex at one of the
	// four corners of the working rectangle.
	BoundaryCorner(isMaxX, isMaxY bool) uint32

	// EmitMonotone reports one boundary of the oracle's monotone
	// decomposition of a region with the given winding number.
	// vertices lists the boundary loop; neighbors[i] is the winding
	// number of the region on the other side of the edge from
	// vertices[i] to vertices[(i+1)%len].
	EmitMonotone(winding int, vertices []uint32, neighbors []int)
}

// Tessellator is the oracle itself. Implementations must be
// deterministic for a given input; they are driven from a single
// goroutine.
type Tessellator interface {
	Tessellate(contours [][]Vertex, sink Sink)
}
