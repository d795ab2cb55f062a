package camera

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Identity returns the 4x4 identity matrix.
func Identity() f32.Mat4 {
	return f32.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate returns a translation by (x, y, z).
func Translate(x, y, z float32) f32.Mat4 {
	m := Identity()
	m[3] = x
	m[7] = y
	m[11] = z
	return m
}

// RotateX returns a right-handed rotation about the x axis.
func RotateX(a float32) f32.Mat4 {
	s, c := math32.Sin(a), math32.Cos(a)
	return f32.Mat4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY returns a right-handed rotation about the y axis.
func RotateY(a float32) f32.Mat4 {
	s, c := math32.Sin(a), math32.Cos(a)
	return f32.Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// Perspective returns a right-handed perspective projection mapping view
// depth [-near, -far] to clip depth [0, 1], as WebGPU expects.
func Perspective(fovY, aspect, near, far float32) f32.Mat4 {
	f := 1 / math32.Tan(fovY/2)
	nf := 1 / (near - far)
	return f32.Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, far * nf, near * far * nf,
		0, 0, -1, 0,
	}
}

// Mul returns a*b.
func Mul(a, b f32.Mat4) f32.Mat4 {
	var out f32.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[4*r+k] * b[4*k+c]
			}
			out[4*r+c] = sum
		}
	}
	return out
}

// Apply transforms the point p (w = 1) by m and divides by w.
func Apply(m f32.Mat4, p f32.Vec3) f32.Vec3 {
	var out [4]float32
	for r := 0; r < 4; r++ {
		out[r] = m[4*r]*p[0] + m[4*r+1]*p[1] + m[4*r+2]*p[2] + m[4*r+3]
	}
	if out[3] != 0 && out[3] != 1 {
		return f32.Vec3{out[0] / out[3], out[1] / out[3], out[2] / out[3]}
	}
	return f32.Vec3{out[0], out[1], out[2]}
}

// NormalMatrix returns the inverse transpose of the upper-left 3x3 of m.
// A singular matrix yields the zero matrix.
func NormalMatrix(m f32.Mat4) f32.Mat3 {
	a00, a01, a02 := m[0], m[1], m[2]
	a10, a11, a12 := m[4], m[5], m[6]
	a20, a21, a22 := m[8], m[9], m[10]

	// Cofactors.
	c00 := a11*a22 - a12*a21
	c01 := a12*a20 - a10*a22
	c02 := a10*a21 - a11*a20
	c10 := a02*a21 - a01*a22
	c11 := a00*a22 - a02*a20
	c12 := a01*a20 - a00*a21
	c20 := a01*a12 - a02*a11
	c21 := a02*a10 - a00*a12
	c22 := a00*a11 - a01*a10

	det := a00*c00 + a01*c01 + a02*c02
	if det == 0 {
		return f32.Mat3{}
	}
	inv := 1 / det

	// inverse = adj/det = cofactor^T/det, so its transpose is cofactor/det.
	return f32.Mat3{
		c00 * inv, c01 * inv, c02 * inv,
		c10 * inv, c11 * inv, c12 * inv,
		c20 * inv, c21 * inv, c22 * inv,
	}
}

// ColumnMajor returns the elements of m column by column.
func ColumnMajor(m f32.Mat4) [16]float32 {
	var out [16]float32
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[4*c+r] = m[4*r+c]
		}
	}
	return out
}
