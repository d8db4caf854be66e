package filltess

import "sort"

// subContourPoint is one polyline point of a sub-path contour together
// with the sides of the sub-path's bounding box it lies on.
type subContourPoint struct {
	Point
	flags boundaryFlags
}

// subContour is an ordered closed loop; the last point connects back to
// the first.
type subContour []subContourPoint

// subPath is one spatial node's geometric payload before tessellation:
// the contours of the original path restricted to the node's bounding
// box. It is consumed (dropped) once the node's mesh is built.
type subPath struct {
	bounds    Rect
	contours  []subContour
	gen       int
	numPoints int
}

// rootBoundsMargin is the fraction of the input bounding-box size added
// on every side of the root sub-path, so no input point lies exactly on
// the root boundary.
const rootBoundsMargin = 0.01

// newRootSubPath copies the input contours into the root sub-path. The
// bounding box is the union of the input extended by a small margin.
func newRootSubPath(contours [][]Point) *subPath {
	bounds := EmptyRect()
	for _, c := range contours {
		for _, p := range c {
			bounds = bounds.UnionPoint(p)
		}
	}
	if bounds.IsEmpty() {
		panic("filltess: path has no points")
	}
	bounds = bounds.Inflate(rootBoundsMargin*bounds.Width(), rootBoundsMargin*bounds.Height())

	sp := &subPath{bounds: bounds}
	for _, c := range contours {
		if len(c) == 0 {
			continue
		}
		dst := make(subContour, len(c))
		for i, p := range c {
			dst[i] = subContourPoint{Point: p}
		}
		sp.contours = append(sp.contours, dst)
	}
	sp.countPoints()
	return sp
}

func newChildSubPath(bounds Rect, contours []subContour, gen int) *subPath {
	sp := &subPath{bounds: bounds, contours: contours, gen: gen}
	sp.countPoints()
	return sp
}

// countPoints totals the points of the non-reducible contours; contours
// that only trace the bounding box contribute a winding offset, not
// tessellation work, so they do not count toward the split threshold.
func (sp *subPath) countPoints() {
	sp.numPoints = 0
	for _, c := range sp.contours {
		if len(c) == 0 {
			panic("filltess: empty sub-path contour")
		}
		if !contourIsReducible(c) {
			sp.numPoints += len(c)
		}
	}
}

func contourIsReducible(c subContour) bool {
	prev := c[len(c)-1].flags
	for _, q := range c {
		if boundaryProgress(prev, q.flags) == 0 {
			return false
		}
		prev = q.flags
	}
	return true
}

// computeSplitCost finds the median coordinate along axis and counts
// how many points each child would receive if split there, including
// the crossing points a split would insert.
func (sp *subPath) computeSplitCost(axis int, work []float64) (value float64, before, after int) {
	work = work[:0]
	for _, c := range sp.contours {
		for _, p := range c {
			work = append(work, p.coord(axis))
		}
	}
	sort.Float64s(work)
	value = work[len(work)/2]

	for _, c := range sp.contours {
		prev := c[len(c)-1].coord(axis)
		for _, q := range c {
			pt := q.coord(axis)
			prevB := prev < value
			b := pt < value

			if b || pt == value {
				before++
			}
			if !b || pt == value {
				after++
			}
			if prev != value && prevB != b {
				before++
				after++
			}
			prev = pt
		}
	}
	return value, before, after
}

// chooseSplittingCoordinate picks the axis whose split assigns the
// fewest total points to the two children. A bounding box whose aspect
// ratio exceeds maxAspect is always split across its long axis.
func (sp *subPath) chooseSplittingCoordinate(maxAspect float64) (axis int, value float64) {
	mid := sp.bounds.Center()
	if maxAspect > 0 {
		w, h := sp.bounds.Width(), sp.bounds.Height()
		if w >= maxAspect*h {
			return 0, mid.X
		}
		if h >= maxAspect*w {
			return 1, mid.Y
		}
	}

	var work []float64
	var value2 [2]float64
	var total [2]int
	for c := 0; c < 2; c++ {
		v, before, after := sp.computeSplitCost(c, work)
		value2[c] = v
		total[c] = before + after
	}
	if total[0] < total[1] {
		return 0, value2[0]
	}
	return 1, value2[1]
}

// computeSplitPoint interpolates the crossing of segment a-b with the
// splitting line.
func computeSplitPoint(a, b Point, axis int, value float64) Point {
	t := (value - a.coord(axis)) / (b.coord(axis) - a.coord(axis))
	r := a.Lerp(b, t)
	return r.setCoord(axis, value)
}

// splitContour distributes src between the two children of a split at
// value along axis, inserting interpolated crossing points where
// consecutive points straddle the cut. A crossing point's flags are the
// new splitting-side flag plus the AND of the straddling points' flags
// (minus the flag the new one replaces), so a flag only survives if
// both endpoints shared it.
func splitContour(src subContour, axis int, value float64) (minC, maxC subContour) {
	var newMaxFlag, newMinFlag boundaryFlags
	if axis == 0 {
		newMaxFlag, newMinFlag = onMaxX, onMinX
	} else {
		newMaxFlag, newMinFlag = onMaxY, onMinY
	}

	prev := src[len(src)-1]
	for _, pt := range src {
		prevB0 := prev.coord(axis) <= value
		b0 := pt.coord(axis) <= value
		prevB1 := prev.coord(axis) >= value
		b1 := pt.coord(axis) >= value

		var splitPt Point
		if prevB0 != b0 || prevB1 != b1 {
			splitPt = computeSplitPoint(prev.Point, pt.Point, axis, value)
		}

		if prevB0 != b0 {
			flags := newMaxFlag | (^newMinFlag & pt.flags & prev.flags)
			minC = append(minC, subContourPoint{Point: splitPt, flags: flags})
		}
		if b0 {
			minC = append(minC, pt)
		}
		if prevB1 != b1 {
			flags := newMinFlag | (^newMaxFlag & pt.flags & prev.flags)
			maxC = append(maxC, subContourPoint{Point: splitPt, flags: flags})
		}
		if b1 {
			maxC = append(maxC, pt)
		}
		prev = pt
	}
	return minC, maxC
}

// split partitions the sub-path into two half-extent children at the
// chosen splitting line. The children's boxes partition the parent box
// exactly at the split coordinate.
func (sp *subPath) split(maxAspect float64) (children [2]*subPath, axis int) {
	axis, value := sp.chooseSplittingCoordinate(maxAspect)

	minBounds := sp.bounds
	maxBounds := sp.bounds
	minBounds.Max = minBounds.Max.setCoord(axis, value)
	maxBounds.Min = maxBounds.Min.setCoord(axis, value)

	var minContours, maxContours []subContour
	for _, c := range sp.contours {
		minC, maxC := splitContour(c, axis, value)
		if len(minC) > 0 {
			minContours = append(minContours, minC)
		}
		if len(maxC) > 0 {
			maxContours = append(maxContours, maxC)
		}
	}

	children[0] = newChildSubPath(minBounds, minContours, sp.gen+1)
	children[1] = newChildSubPath(maxBounds, maxContours, sp.gen+1)
	return children, axis
}
