package filltess

import "math"

// Discretization constants. The working domain per axis is
// [1, 1+boxDim]. An IEEE single has a 23-bit significand and represents
// integers up to 2^24 exactly, so with log2BoxDim = 24 the grid is
// exact in float64 but saturates float32: a sub-integer perturbation of
// fudgeDelta = 2^-20 per point is visible to the tessellation oracle
// (which works in float64) yet invisible at the float32 precision of
// the source data. 24 + 20 leaves headroom in the 52-bit float64
// significand for the oracle's own intersection arithmetic.
const (
	log2BoxDim       = 24
	negLog2Fudge     = 20
	boxDim           = 1 << log2BoxDim
	halfBoxDim       = boxDim / 2
	boundaryHugSlack = 1

	// minTriangleHeight is roughly the height of one pixel in the
	// integer domain, assuming a target resolution of at most 2^13
	// and a subset zoomed in by up to 2^4: 24 - 13 - 4 = 7 bits.
	minTriangleHeight = float64(1 << 7)
)

// ipoint is a point in the discretized integer working domain, with
// coordinates in [1, 1+boxDim].
type ipoint struct {
	x, y int32
}

// coordConverter maps a double-precision bounding box onto the fixed
// integer working domain, reversibly, and supplies the per-point fudge
// epsilon used to break exactly overlapping edges.
type coordConverter struct {
	bounds     Rect
	scale      Point // boxDim / (max - min) per axis
	translate  Point // min corner
	fudgeDelta float64
}

func newCoordConverter(bounds Rect) coordConverter {
	if bounds.IsEmpty() {
		panic("filltess: empty bounding box")
	}
	return coordConverter{
		bounds: bounds,
		scale: Point{
			X: boxDim / (bounds.Max.X - bounds.Min.X),
			Y: boxDim / (bounds.Max.Y - bounds.Min.Y),
		},
		translate:  bounds.Min,
		fudgeDelta: math.Exp2(-negLog2Fudge),
	}
}

// apply maps p into the integer domain, clamping to [1, 1+boxDim].
func (c coordConverter) apply(p Point) ipoint {
	return ipoint{
		x: 1 + clampBoxDim((p.X-c.translate.X)*c.scale.X),
		y: 1 + clampBoxDim((p.Y-c.translate.Y)*c.scale.Y),
	}
}

// unapply maps integer-domain coordinates (possibly fractional, as
// produced by the oracle) back to input coordinates.
func (c coordConverter) unapply(x, y float64) Point {
	return Point{
		X: (x-1)/c.scale.X + c.translate.X,
		Y: (y-1)/c.scale.Y + c.translate.Y,
	}
}

func clampBoxDim(v float64) int32 {
	iv := int32(v)
	if iv < 0 {
		return 0
	}
	if iv > boxDim {
		return boxDim
	}
	return iv
}
