package filltess

// contourPoint pairs a registered vertex index with the boundary flags
// it carried into registration.
type contourPoint struct {
	vertex uint32
	flags  boundaryFlags
}

// hoardPath is a set of closed, loop-free contours expressed as
// registered vertex indices, ready to feed to the tessellation oracle.
type hoardPath [][]contourPoint

// pointHoard deduplicates and indexes the points of one sub-path in the
// discretized integer domain. Index values are stable: parallel arrays
// hold the pre-transform position (which becomes the fill attribute)
// and the integer-domain position (used for exact arithmetic).
type pointHoard struct {
	conv  coordConverter
	index map[ipoint]uint32
	ipts  []ipoint
	pts   []Point
}

func newPointHoard(bounds Rect) *pointHoard {
	return &pointHoard{
		conv:  newCoordConverter(bounds),
		index: make(map[ipoint]uint32),
	}
}

// registerDiscretized snaps p into the integer domain and returns its
// stable index, registering it on first sight. Boundary flags force the
// corresponding coordinate to the exact domain edge so that all
// boundary-lying points of the sub-path compare equal.
func (h *pointHoard) registerDiscretized(p Point, flags boundaryFlags) uint32 {
	if !flags.valid() {
		panic("filltess: invalid boundary flags")
	}
	ipt := h.conv.apply(p)
	if flags&onMinX != 0 {
		ipt.x = 1
	}
	if flags&onMaxX != 0 {
		ipt.x = boxDim + 1
	}
	if flags&onMinY != 0 {
		ipt.y = 1
	}
	if flags&onMaxY != 0 {
		ipt.y = boxDim + 1
	}
	if idx, ok := h.index[ipt]; ok {
		return idx
	}
	idx := uint32(len(h.pts))
	h.pts = append(h.pts, p)
	h.ipts = append(h.ipts, ipt)
	h.index[ipt] = idx
	return idx
}

// registerRaw registers a point the oracle synthesized mid-algorithm.
// Raw points are never deduplicated.
func (h *pointHoard) registerRaw(p Point) uint32 {
	idx := uint32(len(h.pts))
	h.pts = append(h.pts, p)
	h.ipts = append(h.ipts, h.conv.apply(p))
	return idx
}

// fetchCorner returns the index of one of the four bounding-box
// corners, registering it if needed.
func (h *pointHoard) fetchCorner(isMaxX, isMaxY bool) uint32 {
	ipt := ipoint{x: 1, y: 1}
	p := h.conv.bounds.Min
	if isMaxX {
		ipt.x = boxDim + 1
		p.X = h.conv.bounds.Max.X
	}
	if isMaxY {
		ipt.y = boxDim + 1
		p.Y = h.conv.bounds.Max.Y
	}
	if idx, ok := h.index[ipt]; ok {
		return idx
	}
	idx := uint32(len(h.pts))
	h.pts = append(h.pts, p)
	h.ipts = append(h.ipts, ipt)
	h.index[ipt] = idx
	return idx
}

// applyFudged returns vertex i's integer-domain position perturbed by
// fudgeCount * fudgeDelta, signed toward the interior of the working
// rectangle. The perturbation is visible in float64 but not at the
// float32 precision of the source data, and breaks exactly overlapping
// edges for the oracle.
func (h *pointHoard) applyFudged(i uint32, fudgeCount int) (x, y float64) {
	fudge := float64(fudgeCount) * h.conv.fudgeDelta
	ipt := h.ipts[i]
	x = float64(ipt.x)
	if ipt.x >= halfBoxDim {
		x -= fudge
	} else {
		x += fudge
	}
	y = float64(ipt.y)
	if ipt.y >= halfBoxDim {
		y -= fudge
	} else {
		y += fudge
	}
	return x, y
}

// edgeHugsBoundary reports whether the segment between two registered
// vertices runs along (within one integer unit of) the working
// rectangle boundary.
func (h *pointHoard) edgeHugsBoundary(a, b uint32) bool {
	pa, pb := h.ipts[a], h.ipts[b]
	if pa.x <= boundaryHugSlack && pb.x <= boundaryHugSlack {
		return true
	}
	if pa.x >= boxDim-boundaryHugSlack && pb.x >= boxDim-boundaryHugSlack {
		return true
	}
	if pa.y <= boundaryHugSlack && pb.y <= boundaryHugSlack {
		return true
	}
	if pa.y >= boxDim-boundaryHugSlack && pb.y >= boxDim-boundaryHugSlack {
		return true
	}
	return false
}

// generatePath registers every contour of the sub-path and returns the
// resulting closed loops together with the winding offset contributed
// by reducible contours.
func (h *pointHoard) generatePath(sp *subPath) (hoardPath, int) {
	var out hoardPath
	offset := 0
	for _, c := range sp.contours {
		loops, w := h.addContour(c)
		out = append(out, loops...)
		offset += w
	}
	return out, offset
}

func (h *pointHoard) addContour(c subContour) ([][]contourPoint, int) {
	registered := h.generateContour(c)
	w := 0
	var out [][]contourPoint
	for _, loop := range unloopContour(registered) {
		reduced, dw := reduceContour(loop)
		w += dw
		if len(reduced) > 0 {
			out = append(out, reduced)
		}
	}
	return out, w
}

// generateContour discretizes a sub-path contour, dropping edges that
// collapse to a single snapped point. Contours shorter than 3 distinct
// points after snapping are dropped entirely.
func (h *pointHoard) generateContour(c subContour) []contourPoint {
	if len(c) == 0 {
		panic("filltess: empty contour")
	}
	out := make([]contourPoint, 0, len(c))
	for _, q := range c {
		i := h.registerDiscretized(q.Point, q.flags)
		if len(out) == 0 || i != out[len(out)-1].vertex {
			out = append(out, contourPoint{vertex: i, flags: q.flags})
		}
	}
	for len(out) > 0 && out[len(out)-1].vertex == out[0].vertex {
		out = out[:len(out)-1]
	}
	if len(out) < 3 {
		return nil
	}
	return out
}

// unloopContour splits a closed point sequence at repeated vertex
// indices into independent loops, so every emitted loop visits each
// vertex at most once. Oracle tessellators fail on self-touching loops.
func unloopContour(c []contourPoint) [][]contourPoint {
	if len(c) == 0 {
		return nil
	}
	var out [][]contourPoint
	pos := make(map[uint32]int, len(c))
	var stack []contourPoint
	for _, q := range c {
		j, ok := pos[q.vertex]
		if !ok {
			pos[q.vertex] = len(stack)
			stack = append(stack, q)
			continue
		}
		// The cycle stack[j:] closes at q; hoist it out and keep the
		// touch point once.
		loop := make([]contourPoint, len(stack)-j)
		copy(loop, stack[j:])
		out = append(out, loop)
		for _, p := range stack[j+1:] {
			delete(pos, p.vertex)
		}
		stack = stack[:j+1]
	}
	if len(stack) > 0 {
		out = append(out, stack)
	}
	return out
}

// reduceContour collapses a loop that only walks the bounding-box
// corner cycle into a winding-number offset. It returns the surviving
// loop (nil if reduced or degenerate) and the offset contribution.
func reduceContour(c []contourPoint) ([]contourPoint, int) {
	if len(c) == 0 {
		panic("filltess: reduce of empty contour")
	}
	if len(c) <= 2 {
		// Two or fewer points have no edges, or two edges that
		// cancel each other.
		return nil, 0
	}
	prev := c[len(c)-1].flags
	count := 0
	for _, q := range c {
		r := boundaryProgress(prev, q.flags)
		if r == 0 {
			return c, 0
		}
		count += r
		prev = q.flags
	}
	if count%4 != 0 {
		panic("filltess: boundary walk does not close")
	}
	return nil, -count / 4
}
