package cssmatrix

import (
	"math"
	"strings"

	"golang.org/x/image/math/f64"
)

// HasMatrixComponents is implemented by anything that exposes the sixteen
// components of a 4x4 CSS transformation matrix.
//
// Matrix implements it, and so can any caller type (a wrapper around a
// native matrix, a decoded document, ...) that should be accepted by
// FromMatrix, Multiply or ToArray.
type HasMatrixComponents interface {
	M11() float64
	M12() float64
	M13() float64
	M14() float64
	M21() float64
	M22() float64
	M23() float64
	M24() float64
	M31() float64
	M32() float64
	M33() float64
	M34() float64
	M41() float64
	M42() float64
	M43() float64
	M44() float64
}

// components reads all sixteen values from src in row-major order.
func components(src HasMatrixComponents) [16]float64 {
	if m, ok := src.(Matrix); ok {
		return m.m
	}
	return [16]float64{
		src.M11(), src.M12(), src.M13(), src.M14(),
		src.M21(), src.M22(), src.M23(), src.M24(),
		src.M31(), src.M32(), src.M33(), src.M34(),
		src.M41(), src.M42(), src.M43(), src.M44(),
	}
}

// IsCompatibleArray reports whether values can be loaded with FromArray,
// that is, it has 6 or 16 elements and all of them are finite.
func IsCompatibleArray(values []float64) bool {
	if len(values) != 6 && len(values) != 16 {
		return false
	}
	for _, v := range values {
		if !isFinite(v) {
			return false
		}
	}
	return true
}

// IsCompatibleObject reports whether v can be loaded with FromMatrix.
func IsCompatibleObject(v interface{}) bool {
	if v == nil {
		return false
	}
	if p, ok := v.(*Matrix); ok {
		return p != nil
	}
	_, ok := v.(HasMatrixComponents)
	return ok
}

// FromArray creates a matrix from 6 or 16 values.
//
// Sixteen values are taken as m11..m44 in row-major order. Six values are
// taken as the 2D components a, b, c, d, e, f; all other components keep
// their identity value.
//
// Returns an InvalidArgument error if the length is wrong or a value is NaN
// or infinite.
func FromArray(values []float64) (Matrix, error) {
	m := Identity()
	if !IsCompatibleArray(values) {
		return m, NewInvalidArgument("cssmatrix: %q must be an array with 6/16 finite numbers", joinNumbers(values))
	}

	if len(values) == 16 {
		copy(m.m[:], values)
		return m, nil
	}

	m.m[i11] = values[0]
	m.m[i12] = values[1]
	m.m[i21] = values[2]
	m.m[i22] = values[3]
	m.m[i41] = values[4]
	m.m[i42] = values[5]
	return m, nil
}

// FromFloat32Array is like FromArray for single precision input.
func FromFloat32Array(values []float32) (Matrix, error) {
	wide := make([]float64, len(values))
	for i, v := range values {
		wide[i] = float64(v)
	}
	return FromArray(wide)
}

// FromMatrix creates a new matrix with a copy of the components of src.
func FromMatrix(src HasMatrixComponents) (Matrix, error) {
	if !IsCompatibleObject(src) {
		return Identity(), NewInvalidArgument("cssmatrix: %v is not a compatible matrix object", src)
	}
	c := components(src)
	return FromArray(c[:])
}

// ToArray returns the components of src as a slice.
//
// If as2D is set, the result holds the six 2D components a, b, c, d, e, f.
// Otherwise it holds all sixteen components m11..m44.
func ToArray(src HasMatrixComponents, as2D bool) []float64 {
	c := components(src)
	if as2D {
		return []float64{c[i11], c[i12], c[i21], c[i22], c[i41], c[i42]}
	}
	out := make([]float64, 16)
	copy(out, c[:])
	return out
}

// Mat4 returns m as an x/image 4x4 matrix. Both use row-major order.
func (m Matrix) Mat4() f64.Mat4 {
	return f64.Mat4(m.m)
}

// FromMat4 creates a matrix from an x/image 4x4 matrix.
func FromMat4(src f64.Mat4) (Matrix, error) {
	return FromArray(src[:])
}

// Aff3 returns the 2D part of m as an x/image affine transform, suitable
// for golang.org/x/image/draw.Transformer.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{
		m.A(), m.C(), m.E(),
		m.B(), m.D(), m.F(),
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func joinNumbers(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatNumber(v)
	}
	return strings.Join(parts, ",")
}
