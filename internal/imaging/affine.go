package imaging

import (
	"golang.org/x/image/math/f64"
)

// Affine transforms use the x/image layout:
//
//  a00  a01  a02        x' = a00*x + a01*y + a02
//  a10  a11  a12        y' = a10*x + a11*y + a12
//  0    0    1
//

func identity() f64.Aff3 {
	return f64.Aff3{
		1, 0, 0,
		0, 1, 0,
	}
}

// Translation Matrix:
//
//  1  0  dx
//  0  1  dy
//  0  0  1
//
func translation(dx, dy float64) f64.Aff3 {
	m := identity()
	m[2] = dx
	m[5] = dy
	return m
}

// multiply combines two affine transforms; the result applies b first,
// then a.
func multiply(a, b f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		a[0]*b[0] + a[1]*b[3],
		a[0]*b[1] + a[1]*b[4],
		a[0]*b[2] + a[1]*b[5] + a[2],

		a[3]*b[0] + a[4]*b[3],
		a[3]*b[1] + a[4]*b[4],
		a[3]*b[2] + a[4]*b[5] + a[5],
	}
}

// determinant of the linear part; zero means the transform collapses the
// plane and cannot be inverted.
func determinant(m f64.Aff3) float64 {
	return m[0]*m[4] - m[1]*m[3]
}

// transform applies an affine transform to the given x,y point.
func transform(m f64.Aff3, x, y float64) (float64, float64) {
	tx := m[0]*x + m[1]*y + m[2]
	ty := m[3]*x + m[4]*y + m[5]
	return tx, ty
}
