package cssmatrix

import (
	"math"
)

const degToRad = math.Pi / 180

// Translate returns a translation matrix, the equivalent of the CSS
// translate3d() function.
func Translate(x, y, z float64) Matrix {
	m := Identity()
	m.m[i41] = x
	m.m[i42] = y
	m.m[i43] = z
	return m
}

// Scale returns a scale matrix, the equivalent of the CSS scale3d()
// function.
func Scale(x, y, z float64) Matrix {
	m := Identity()
	m.m[i11] = x
	m.m[i22] = y
	m.m[i33] = z
	return m
}

// Rotate returns a rotation matrix which rotates about the X axis, then
// the Y axis and then the Z axis. Angles are given in degrees.
//
// See http://en.wikipedia.org/wiki/Rotation_matrix
func Rotate(rx, ry, rz float64) Matrix {
	radX := rx * degToRad
	radY := ry * degToRad
	radZ := rz * degToRad

	// sine is negated for the right-handed CSS coordinate system
	cosx := math.Cos(radX)
	sinx := -math.Sin(radX)
	cosy := math.Cos(radY)
	siny := -math.Sin(radY)
	cosz := math.Cos(radZ)
	sinz := -math.Sin(radZ)

	m := Identity()
	m.m[i11] = cosy * cosz
	m.m[i12] = -cosy * sinz
	m.m[i13] = siny

	m.m[i21] = sinx*siny*cosz + cosx*sinz
	m.m[i22] = cosx*cosz - sinx*siny*sinz
	m.m[i23] = -sinx * cosy

	m.m[i31] = sinx*sinz - cosx*siny*cosz
	m.m[i32] = sinx*cosz + cosx*siny*sinz
	m.m[i33] = cosx * cosy

	return m
}

// RotateAxisAngle returns a matrix for a rotation of alpha degrees about
// the axis vector (x, y, z), the equivalent of the CSS rotate3d() function.
//
// The axis is normalized first. A zero-length axis yields the identity
// matrix.
func RotateAxisAngle(x, y, z, alpha float64) Matrix {
	m := Identity()
	length := math.Sqrt(x*x + y*y + z*z)
	if length == 0 {
		return m
	}

	X := x / length
	Y := y / length
	Z := z / length

	// half angle
	angle := alpha * (math.Pi / 360)
	sinA := math.Sin(angle)
	cosA := math.Cos(angle)
	sinA2 := sinA * sinA
	x2 := X * X
	y2 := Y * Y
	z2 := Z * Z

	m.m[i11] = 1 - 2*(y2+z2)*sinA2
	m.m[i12] = 2 * (X*Y*sinA2 + Z*sinA*cosA)
	m.m[i13] = 2 * (X*Z*sinA2 - Y*sinA*cosA)

	m.m[i21] = 2 * (Y*X*sinA2 - Z*sinA*cosA)
	m.m[i22] = 1 - 2*(z2+x2)*sinA2
	m.m[i23] = 2 * (Y*Z*sinA2 + X*sinA*cosA)

	m.m[i31] = 2 * (Z*X*sinA2 + Y*sinA*cosA)
	m.m[i32] = 2 * (Z*Y*sinA2 - X*sinA*cosA)
	m.m[i33] = 1 - 2*(x2+y2)*sinA2

	return m
}

// Skew returns a shear matrix for both axes, the equivalent of the CSS
// skew() function. Angles are given in degrees.
func Skew(angleX, angleY float64) Matrix {
	m := Identity()
	if angleX != 0 {
		m.m[i21] = math.Tan(angleX * degToRad)
	}
	if angleY != 0 {
		m.m[i12] = math.Tan(angleY * degToRad)
	}
	return m
}

// SkewX returns a shear matrix along the X axis.
func SkewX(angle float64) Matrix {
	return Skew(angle, 0)
}

// SkewY returns a shear matrix along the Y axis.
func SkewY(angle float64) Matrix {
	return Skew(0, angle)
}

// Multiply returns the row-major product m2 · m1. This is CSS composition
// order: m2 works in the coordinate system established by m1, so
// TransformPoint maps a point through m2 before m1. Neither operand is
// changed.
func Multiply(m1, m2 HasMatrixComponents) Matrix {
	a := components(m1)
	b := components(m2)
	var m Matrix

	m.m[i11] = b[i11]*a[i11] + b[i12]*a[i21] + b[i13]*a[i31] + b[i14]*a[i41]
	m.m[i12] = b[i11]*a[i12] + b[i12]*a[i22] + b[i13]*a[i32] + b[i14]*a[i42]
	m.m[i13] = b[i11]*a[i13] + b[i12]*a[i23] + b[i13]*a[i33] + b[i14]*a[i43]
	m.m[i14] = b[i11]*a[i14] + b[i12]*a[i24] + b[i13]*a[i34] + b[i14]*a[i44]

	m.m[i21] = b[i21]*a[i11] + b[i22]*a[i21] + b[i23]*a[i31] + b[i24]*a[i41]
	m.m[i22] = b[i21]*a[i12] + b[i22]*a[i22] + b[i23]*a[i32] + b[i24]*a[i42]
	m.m[i23] = b[i21]*a[i13] + b[i22]*a[i23] + b[i23]*a[i33] + b[i24]*a[i43]
	m.m[i24] = b[i21]*a[i14] + b[i22]*a[i24] + b[i23]*a[i34] + b[i24]*a[i44]

	m.m[i31] = b[i31]*a[i11] + b[i32]*a[i21] + b[i33]*a[i31] + b[i34]*a[i41]
	m.m[i32] = b[i31]*a[i12] + b[i32]*a[i22] + b[i33]*a[i32] + b[i34]*a[i42]
	m.m[i33] = b[i31]*a[i13] + b[i32]*a[i23] + b[i33]*a[i33] + b[i34]*a[i43]
	m.m[i34] = b[i31]*a[i14] + b[i32]*a[i24] + b[i33]*a[i34] + b[i34]*a[i44]

	m.m[i41] = b[i41]*a[i11] + b[i42]*a[i21] + b[i43]*a[i31] + b[i44]*a[i41]
	m.m[i42] = b[i41]*a[i12] + b[i42]*a[i22] + b[i43]*a[i32] + b[i44]*a[i42]
	m.m[i43] = b[i41]*a[i13] + b[i42]*a[i23] + b[i43]*a[i33] + b[i44]*a[i43]
	m.m[i44] = b[i41]*a[i14] + b[i42]*a[i24] + b[i43]*a[i34] + b[i44]*a[i44]

	return m
}

// Multiply returns m post-multiplied by other.
func (m Matrix) Multiply(other HasMatrixComponents) Matrix {
	return Multiply(m, other)
}

// Translate returns m post-multiplied by a translation.
// y and z are optional and default to 0.
func (m Matrix) Translate(x float64, yz ...float64) Matrix {
	y := optional(yz, 0, 0)
	z := optional(yz, 1, 0)
	return Multiply(m, Translate(x, y, z))
}

// Scale returns m post-multiplied by a scale transform.
// y is optional and defaults to x, z defaults to 1.
func (m Matrix) Scale(x float64, yz ...float64) Matrix {
	y := optional(yz, 0, x)
	z := optional(yz, 1, 1)
	return Multiply(m, Scale(x, y, z))
}

// Rotate returns m post-multiplied by rotations about the X, Y and Z axes.
//
// If only rx is given, it is used as rotation about the Z axis, like the
// single-argument CSS rotate() function. A missing or NaN ry or rz counts
// as 0.
func (m Matrix) Rotate(rx float64, ryz ...float64) Matrix {
	if len(ryz) == 0 {
		return Multiply(m, Rotate(0, 0, rx))
	}

	ry := zeroIfNaN(optional(ryz, 0, 0))
	rz := zeroIfNaN(optional(ryz, 1, 0))
	return Multiply(m, Rotate(rx, ry, rz))
}

// RotateAxisAngle returns m post-multiplied by a rotation of angle degrees
// about the axis (x, y, z). The right-hand rule determines the direction.
//
// Returns an InvalidArgument error if any value is NaN or infinite.
func (m Matrix) RotateAxisAngle(x, y, z, angle float64) (Matrix, error) {
	for _, v := range []float64{x, y, z, angle} {
		if !isFinite(v) {
			return m, NewInvalidArgument("cssmatrix: expecting 4 finite values, got %v, %v, %v, %v", x, y, z, angle)
		}
	}
	return Multiply(m, RotateAxisAngle(x, y, z, angle)), nil
}

// Skew returns m post-multiplied by a shear along both axes.
func (m Matrix) Skew(angleX, angleY float64) Matrix {
	return Multiply(m, Skew(angleX, angleY))
}

// SkewX returns m post-multiplied by a shear along the X axis.
func (m Matrix) SkewX(angle float64) Matrix {
	return Multiply(m, SkewX(angle))
}

// SkewY returns m post-multiplied by a shear along the Y axis.
func (m Matrix) SkewY(angle float64) Matrix {
	return Multiply(m, SkewY(angle))
}

func optional(values []float64, i int, fallback float64) float64 {
	if i < len(values) {
		return values[i]
	}
	return fallback
}

func zeroIfNaN(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
