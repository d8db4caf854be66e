package filltess

// Mat3 is a 3x3 matrix in row-major order. It carries the projective
// transformation from a subset's local coordinates to the renderer's
// clip coordinates, so clip planes given in clip coordinates can be
// pulled back into local coordinates.
type Mat3 [9]float64

// IdentityMat3 returns the identity matrix.
func IdentityMat3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// TranslateMat3 returns a matrix translating by (x, y).
func TranslateMat3(x, y float64) Mat3 {
	return Mat3{
		1, 0, x,
		0, 1, y,
		0, 0, 1,
	}
}

// ScaleMat3 returns a matrix scaling by (x, y).
func ScaleMat3(x, y float64) Mat3 {
	return Mat3{
		x, 0, 0,
		0, y, 0,
		0, 0, 1,
	}
}

// Mul returns the matrix product m * n.
func (m Mat3) Mul(n Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[3*i+j] = m[3*i]*n[j] + m[3*i+1]*n[3+j] + m[3*i+2]*n[6+j]
		}
	}
	return r
}

// TransformPoint applies the projective transformation to p.
func (m Mat3) TransformPoint(p Point) Point {
	w := m[6]*p.X + m[7]*p.Y + m[8]
	return Point{
		X: (m[0]*p.X + m[1]*p.Y + m[2]) / w,
		Y: (m[3]*p.X + m[4]*p.Y + m[5]) / w,
	}
}

// pullBackPlane transforms a clip plane given in the matrix's target
// coordinates into its source coordinates: if c·(M p) >= 0 then
// (Mᵀ c)·p >= 0.
func (m Mat3) pullBackPlane(c ClipPlane) ClipPlane {
	return ClipPlane{
		A: c.A*m[0] + c.B*m[3] + c.C*m[6],
		B: c.A*m[1] + c.B*m[4] + c.C*m[7],
		C: c.A*m[2] + c.B*m[5] + c.C*m[8],
	}
}
