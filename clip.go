package filltess

// ClipPlane is a half-plane given by the equation A*x + B*y + C >= 0.
// Points satisfying the inequality are kept.
type ClipPlane struct {
	A, B, C float64
}

// Eval returns the signed value of the plane equation at p.
func (c ClipPlane) Eval(p Point) float64 {
	return c.A*p.X + c.B*p.Y + c.C
}

// clipPolygonPlane clips a convex polygon against a single half-plane
// (Sutherland-Hodgman step). dst is reset and returned.
func clipPolygonPlane(src []Point, c ClipPlane, dst []Point) []Point {
	dst = dst[:0]
	n := len(src)
	if n == 0 {
		return dst
	}
	prev := src[n-1]
	prevV := c.Eval(prev)
	for _, cur := range src {
		curV := c.Eval(cur)
		if prevV >= 0 {
			dst = append(dst, prev)
			if curV < 0 {
				t := prevV / (prevV - curV)
				dst = append(dst, prev.Lerp(cur, t))
			}
		} else if curV >= 0 {
			t := prevV / (prevV - curV)
			dst = append(dst, prev.Lerp(cur, t))
		}
		prev, prevV = cur, curV
	}
	return dst
}

// clipPolygonPlanes clips a convex polygon against a set of half-planes.
// It returns the clipped polygon and whether the polygon was entirely
// on the kept side of every plane (i.e. unclipped).
func clipPolygonPlanes(poly []Point, planes []ClipPlane) ([]Point, bool) {
	unclipped := true
	cur := append([]Point(nil), poly...)
	var next []Point
	for _, c := range planes {
		allIn := true
		for _, p := range cur {
			if c.Eval(p) < 0 {
				allIn = false
				break
			}
		}
		if allIn {
			continue
		}
		unclipped = false
		next = clipPolygonPlane(cur, c, next)
		cur, next = next, cur
		if len(cur) == 0 {
			return nil, false
		}
	}
	return cur, unclipped
}
