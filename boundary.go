package filltess

// boundaryFlags records which sides of a sub-path's bounding box a
// contour point lies on. A point may lie on two adjacent sides (a
// corner) but never on both the min and max side of the same axis.
type boundaryFlags uint8

const (
	onMinX boundaryFlags = 1 << iota
	onMaxX
	onMinY
	onMaxY

	onAnyX = onMinX | onMaxX
	onAnyY = onMinY | onMaxY
)

// valid reports whether the flag set satisfies the axis invariant.
func (f boundaryFlags) valid() bool {
	return f&onAnyX != onAnyX && f&onAnyY != onAnyY
}

// corner identifies which bounding-box corner a flag set names.
// The corner values are ordered so that advancing one step around the
// cycle corresponds to traversing the box clockwise, the direction
// that decrements the winding number of its interior:
//
//	(minX,minY) -> (minX,maxY) -> (maxX,maxY) -> (maxX,minY)
type corner int8

const (
	cornerMinXMinY corner = iota
	cornerMinXMaxY
	cornerMaxXMaxY
	cornerMaxXMinY

	notCorner
)

func (f boundaryFlags) corner() corner {
	if !f.valid() {
		panic("filltess: invalid boundary flags")
	}
	switch f {
	case onMinX | onMinY:
		return cornerMinXMinY
	case onMinX | onMaxY:
		return cornerMinXMaxY
	case onMaxX | onMaxY:
		return cornerMaxXMaxY
	case onMaxX | onMinY:
		return cornerMaxXMinY
	default:
		return notCorner
	}
}

func (c corner) next() corner {
	return (c + 1) % notCorner
}

// boundaryProgress measures movement between two corner flag sets along
// the corner cycle: +1 one step forward, -1 one step backward, 0 if
// either point is not a corner or the step is not adjacent.
func boundaryProgress(f0, f1 boundaryFlags) int {
	c0, c1 := f0.corner(), f1.corner()
	if c0 == notCorner || c1 == notCorner {
		return 0
	}
	switch {
	case c0 == c1.next():
		return -1
	case c1 == c0.next():
		return 1
	default:
		return 0
	}
}
