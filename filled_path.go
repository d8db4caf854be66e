package filltess

// FilledPath is the tessellation of one fill path, organized as a
// binary spatial hierarchy of subsets. Construction only builds the
// hierarchy's geometry (pure splitting, no tessellation); each subset's
// mesh is materialized lazily on first access.
//
// A FilledPath is not safe for concurrent use: the lazy materialization
// mutates nodes.
type FilledPath struct {
	cfg     config
	root    *subset
	subsets []*subset
}

// NewFilledPath builds the spatial hierarchy over the given contours.
// Each contour is an ordered closed loop of polyline points (the last
// point connects back to the first); loops may self-intersect, overlap,
// or be disjoint. NewFilledPath panics if the contours contain no
// points.
func NewFilledPath(contours [][]Point, opts ...Option) *FilledPath {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	p := &FilledPath{cfg: cfg}
	p.root = newSubset(newRootSubPath(contours), cfg.maxRecursion, &cfg, &p.subsets)
	return p
}

// NumSubsets returns the number of nodes in the hierarchy. Subset IDs
// are in [0, NumSubsets).
func (p *FilledPath) NumSubsets() int { return len(p.subsets) }

// Bounds returns the root bounding box: the input bounds extended by a
// small margin.
func (p *FilledPath) Bounds() Rect { return p.root.bounds }

// Subset returns the subset with the given ID, materializing its mesh
// if necessary. Materialization of an internal node merges its
// children's meshes, building them first when needed.
func (p *FilledPath) Subset(id int) Subset {
	s := p.subsets[id]
	s.makeReady(p.cfg.oracle)
	return Subset{s: s}
}

// SelectSubsets returns the IDs of the subsets a renderer should draw:
// the smallest set of nodes that covers the clip region with every
// node's attribute count and largest index range within the given
// budgets. Clip planes are given in clip coordinates together with the
// matrix from local to clip coordinates; nil clipPlanes selects against
// an unbounded region.
//
// Selection may materialize meshes: a node's exact size is only known
// once built, and internal nodes fall back to safe over-estimates
// (sums of children) that can force recursion. SelectSubsets panics if
// a childless subset exceeds the budgets; budgets must accommodate the
// splitter's minimum granularity.
func (p *FilledPath) SelectSubsets(clipPlanes []ClipPlane, clipMatrix Mat3, maxAttributes, maxIndices int) []int {
	local := make([]ClipPlane, len(clipPlanes))
	for i, c := range clipPlanes {
		local[i] = clipMatrix.pullBackPlane(c)
	}
	var dst []int
	p.root.selectSubsets(local, maxAttributes, maxIndices, p.cfg.oracle, &dst)
	return dst
}

// Subset is a handle to one materialized node of the hierarchy.
type Subset struct {
	s *subset
}

// ID returns the subset's stable identifier.
func (s Subset) ID() int { return s.s.id }

// Bounds returns the subset's bounding rectangle.
func (s Subset) Bounds() Rect { return s.s.bounds }

// BoundingContour returns the subset's bounding rectangle as a closed
// 4-point contour, usable for clipping or hit testing.
func (s Subset) BoundingContour() []Point {
	c := s.s.bounds.Corners()
	return c[:]
}

// FillData returns the subset's fill attribute and index buffers.
func (s Subset) FillData() *FillData { return &s.s.mesh.fill }

// FuzzData returns the subset's anti-aliasing geometry.
func (s Subset) FuzzData() *FuzzData { return &s.s.mesh.fuzz }

// Windings returns the winding numbers present in the subset, in
// ascending order.
func (s Subset) Windings() []int { return s.s.mesh.fill.windings }

// TriangulationFailed reports whether the oracle failed on any triangle
// of this subset (or, for a merged subset, of any descendant). Failed
// triangles are dropped: the fill renders degraded but valid.
func (s Subset) TriangulationFailed() bool { return s.s.mesh.failed }
