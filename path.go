package filltess

import "math"

// DefaultTolerance is the maximum distance a flattened polyline may
// deviate from its source curve.
const DefaultTolerance = 0.1

// Path accumulates contours from MoveTo/LineTo/curve commands and
// flattens curves into the polyline contours the tessellation engine
// consumes. It is a convenience for callers that do not already have a
// discretized path.
type Path struct {
	contours  [][]Point
	current   []Point
	start     Point
	cursor    Point
	Tolerance float64 // flattening tolerance; 0 means DefaultTolerance
}

func (p *Path) tolerance() float64 {
	if p.Tolerance > 0 {
		return p.Tolerance
	}
	return DefaultTolerance
}

// MoveTo begins a new contour at (x, y), closing any open one.
func (p *Path) MoveTo(x, y float64) *Path {
	p.Close()
	p.start = Pt(x, y)
	p.cursor = p.start
	p.current = append(p.current, p.start)
	return p
}

// LineTo draws a line from the current point to (x, y).
func (p *Path) LineTo(x, y float64) *Path {
	p.cursor = Pt(x, y)
	p.current = append(p.current, p.cursor)
	return p
}

// QuadTo draws a quadratic Bezier curve to (x, y) with control point
// (cx, cy).
func (p *Path) QuadTo(cx, cy, x, y float64) *Path {
	flattenQuadratic(p.cursor, Pt(cx, cy), Pt(x, y), p.tolerance(), &p.current)
	p.cursor = Pt(x, y)
	return p
}

// CubicTo draws a cubic Bezier curve to (x, y) with control points
// (c1x, c1y) and (c2x, c2y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	flattenCubic(p.cursor, Pt(c1x, c1y), Pt(c2x, c2y), Pt(x, y), p.tolerance(), &p.current)
	p.cursor = Pt(x, y)
	return p
}

// Close closes the current contour. Contours are implicitly closed (the
// last point connects to the first); Close only finishes accumulation.
func (p *Path) Close() *Path {
	if len(p.current) >= 2 {
		p.contours = append(p.contours, p.current)
	}
	p.current = nil
	return p
}

// Contours returns the accumulated polyline contours, closing any open
// one.
func (p *Path) Contours() [][]Point {
	p.Close()
	return p.contours
}

// flattenQuadratic recursively subdivides a quadratic Bezier curve
// until it is within tolerance of a straight line, appending the
// resulting points (excluding p0) to out.
func flattenQuadratic(p0, p1, p2 Point, tolerance float64, out *[]Point) {
	if distanceToLine(p1, p0, p2) < tolerance {
		*out = append(*out, p2)
		return
	}
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)
	flattenQuadratic(p0, q0, q2, tolerance, out)
	flattenQuadratic(q2, q1, p2, tolerance, out)
}

// flattenCubic recursively subdivides a cubic Bezier curve using
// de Casteljau's algorithm.
func flattenCubic(p0, p1, p2, p3 Point, tolerance float64, out *[]Point) {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	if math.Max(d1, d2) < tolerance {
		*out = append(*out, p3)
		return
	}
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)
	flattenCubic(p0, q0, r0, s, tolerance, out)
	flattenCubic(s, r1, q2, p3, tolerance, out)
}

// distanceToLine returns the distance from p to the segment a-b.
func distanceToLine(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLen := ab.Length()
	if abLen < 1e-10 {
		return p.Sub(a).Length()
	}
	t := p.Sub(a).Dot(ab) / (abLen * abLen)
	if t < 0 {
		return p.Sub(a).Length()
	}
	if t > 1 {
		return p.Sub(b).Length()
	}
	return p.Sub(a.Add(ab.Mul(t))).Length()
}
