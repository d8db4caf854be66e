package filltess

import "github.com/gogpu/filltess/tess"

// subset is one node of the spatial hierarchy. Exactly one of
// {subPath, children} is set before the mesh is built; exactly one of
// {subPath, mesh} afterwards. The sub-path is consumed the moment the
// mesh is built, so a node is never re-tessellated or re-split.
type subset struct {
	id        int
	bounds    Rect
	subPath   *subPath
	children  [2]*subset
	mesh      *meshData
	splitAxis int

	// Size bookkeeping for budget checks. Before children are built
	// these are upper bounds (sums over children); once a mesh exists
	// they are exact.
	sizesReady        bool
	numAttributes     int
	largestIndexBlock int
	fuzzLargestAttrs  int
	fuzzLargestIndex  int
}

// newSubset builds the hierarchy rooted at sp, registering every node
// in the arena so nodes have stable integer IDs. Splitting stops at the
// recursion bound, at the point threshold, or when a split fails to
// shrink both children below the parent (the degenerate split is
// discarded and the node stays a leaf).
func newSubset(sp *subPath, maxRecursion int, cfg *config, arena *[]*subset) *subset {
	s := &subset{
		id:        len(*arena),
		bounds:    sp.bounds,
		subPath:   sp,
		splitAxis: -1,
	}
	*arena = append(*arena, s)

	if maxRecursion > 0 && sp.numPoints > cfg.pointsPerSubset {
		children, axis := sp.split(cfg.maxAspect)
		if children[0].numPoints < sp.numPoints || children[1].numPoints < sp.numPoints {
			s.splitAxis = axis
			s.children[0] = newSubset(children[0], maxRecursion-1, cfg, arena)
			s.children[1] = newSubset(children[1], maxRecursion-1, cfg, arena)
			s.subPath = nil
		}
	}
	return s
}

func (s *subset) isLeaf() bool { return s.children[0] == nil }

// makeReady materializes the node's mesh. Idempotent: a second call is
// a no-op.
func (s *subset) makeReady(oracle tess.Tessellator) {
	if s.mesh != nil {
		return
	}
	if s.subPath != nil {
		s.makeReadyFromSubPath(oracle)
	} else {
		s.makeReadyFromChildren(oracle)
	}
}

func (s *subset) makeReadyFromSubPath(oracle tess.Tessellator) {
	if !s.isLeaf() || s.subPath == nil || s.mesh != nil {
		panic("filltess: subset state violation")
	}
	sp := s.subPath
	s.mesh = buildMesh(oracle, sp)
	s.subPath = nil
	s.readySizesFromMesh()

	Logger().Debug("subset tessellated",
		"id", s.id,
		"points", sp.numPoints,
		"attributes", s.numAttributes,
		"windings", len(s.mesh.fill.windings))
}

// makeReadyFromChildren merges the two children's meshes, avoiding
// re-tessellation when the whole node is inside the clip region.
func (s *subset) makeReadyFromChildren(oracle tess.Tessellator) {
	if s.isLeaf() || s.subPath != nil || s.mesh != nil {
		panic("filltess: subset state violation")
	}
	s.children[0].makeReady(oracle)
	s.children[1].makeReady(oracle)
	s.mesh = mergeMesh(s.children[0].mesh, s.children[1].mesh)
	s.readySizesFromMesh()
}

func (s *subset) readySizesFromMesh() {
	s.sizesReady = true
	s.numAttributes = len(s.mesh.fill.Attributes)
	s.largestIndexBlock = s.mesh.fill.largestIndexBlock()
	s.fuzzLargestAttrs, s.fuzzLargestIndex = s.mesh.fuzz.largestBlocks()
}

// readySizesFromChildren records upper bounds: the sums of the
// children's bounds never underestimate the merged mesh, so a budget
// check on them may recurse unnecessarily but never over-accepts.
func (s *subset) readySizesFromChildren() {
	if s.isLeaf() || s.sizesReady {
		panic("filltess: subset state violation")
	}
	if !s.children[0].sizesReady || !s.children[1].sizesReady {
		panic("filltess: children sizes not ready")
	}
	s.sizesReady = true
	s.numAttributes = s.children[0].numAttributes + s.children[1].numAttributes
	s.largestIndexBlock = s.children[0].largestIndexBlock + s.children[1].largestIndexBlock
	s.fuzzLargestAttrs = s.children[0].fuzzLargestAttrs + s.children[1].fuzzLargestAttrs
	s.fuzzLargestIndex = s.children[0].fuzzLargestIndex + s.children[1].fuzzLargestIndex
}

// selectSubsets clips the node's bounding rectangle against the
// half-planes (already pulled back into local coordinates) and recurses
// until every accepted node is unclipped-or-leaf and within budget.
func (s *subset) selectSubsets(planes []ClipPlane, maxAttrs, maxIndices int, oracle tess.Tessellator, dst *[]int) {
	corners := s.bounds.Corners()
	clipped, unclipped := clipPolygonPlanes(corners[:], planes)
	if len(clipped) == 0 {
		return
	}
	if unclipped || s.isLeaf() {
		s.selectAllUnculled(maxAttrs, maxIndices, oracle, dst)
		return
	}
	// Partially clipped internal node: always recurse, keeping the
	// returned geometry bounded by the clip region.
	s.children[0].selectSubsets(planes, maxAttrs, maxIndices, oracle, dst)
	s.children[1].selectSubsets(planes, maxAttrs, maxIndices, oracle, dst)
}

func (s *subset) selectAllUnculled(maxAttrs, maxIndices int, oracle tess.Tessellator, dst *[]int) {
	if !s.sizesReady && s.isLeaf() && s.subPath != nil {
		// The node is about to be selected; its exact sizes require
		// the build anyway.
		s.makeReadyFromSubPath(oracle)
	}

	if s.sizesReady &&
		s.numAttributes <= maxAttrs &&
		s.largestIndexBlock <= maxIndices &&
		s.fuzzLargestAttrs <= maxAttrs &&
		s.fuzzLargestIndex <= maxIndices {
		*dst = append(*dst, s.id)
		return
	}
	if !s.isLeaf() {
		s.children[0].selectAllUnculled(maxAttrs, maxIndices, oracle, dst)
		s.children[1].selectAllUnculled(maxAttrs, maxIndices, oracle, dst)
		if !s.sizesReady {
			s.readySizesFromChildren()
		}
		return
	}
	// A leaf that exceeds the budget has nothing to recurse into: the
	// budgets are smaller than the splitter's minimum granularity.
	panic("filltess: childless subset exceeds attribute or index budget")
}
