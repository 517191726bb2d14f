package math

// Mat3 is a 3x3 matrix in column-major order.
type Mat3 [9]float32

// Mat3Identity returns a 3x3 identity matrix.
func Mat3Identity() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// NormalMatrix returns the inverse-transpose of the upper-left 3x3 of m,
// used to bring normals into world space. Translation does not contribute.
// Returns identity if the 3x3 part is singular.
func (m Mat4) NormalMatrix() Mat3 {
	at := func(row, col int) float32 { return m[col*4+row] }

	// Signed cofactors via cyclic indices; the cofactor matrix divided by the
	// determinant is exactly the inverse-transpose.
	var cof Mat3
	for row := 0; row < 3; row++ {
		r1, r2 := (row+1)%3, (row+2)%3
		for col := 0; col < 3; col++ {
			c1, c2 := (col+1)%3, (col+2)%3
			cof[col*3+row] = at(r1, c1)*at(r2, c2) - at(r1, c2)*at(r2, c1)
		}
	}

	det := at(0, 0)*cof[0] + at(0, 1)*cof[3] + at(0, 2)*cof[6]
	if det == 0 {
		return Mat3Identity()
	}
	for i := range cof {
		cof[i] /= det
	}
	return cof
}

// Ptr returns a pointer to the first element (for OpenGL uniform calls).
func (m *Mat3) Ptr() *float32 {
	return &m[0]
}
