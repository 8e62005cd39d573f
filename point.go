package cssmatrix

import (
	"golang.org/x/image/math/f64"
)

// Point is a homogeneous point or vector with x, y, z and w components.
//
// There is no implicit default for W. Use 1 for a position and 0 for a
// direction.
type Point struct {
	X, Y, Z, W float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y, z, w float64) Point {
	return Point{X: x, Y: y, Z: z, W: w}
}

// PointFromVec4 creates a Point from an x/image vector (x, y, z, w).
func PointFromVec4(v f64.Vec4) Point {
	return Point{X: v[0], Y: v[1], Z: v[2], W: v[3]}
}

// Vec4 returns p as an x/image vector.
func (p Point) Vec4() f64.Vec4 {
	return f64.Vec4{p.X, p.Y, p.Z, p.W}
}

// TransformPoint transforms p with m and returns the resulting point.
// Neither m nor p are changed.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.m[i11]*p.X + m.m[i21]*p.Y + m.m[i31]*p.Z + m.m[i41]*p.W,
		Y: m.m[i12]*p.X + m.m[i22]*p.Y + m.m[i32]*p.Z + m.m[i42]*p.W,
		Z: m.m[i13]*p.X + m.m[i23]*p.Y + m.m[i33]*p.Z + m.m[i43]*p.W,
		W: m.m[i14]*p.X + m.m[i24]*p.Y + m.m[i34]*p.Z + m.m[i44]*p.W,
	}
}
