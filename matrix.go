package cssmatrix

import (
	"fmt"
	"strings"
)

// Matrix is a 4x4 transformation matrix following the CSS Transforms / DOM
// model. Components are stored row-major, m11 first; the translation lives
// in the fourth row (m41, m42, m43).
//
// Matrix is a value type. All composition methods return a new Matrix and
// leave the receiver untouched. The zero value is the all-zero matrix, not
// the identity; use New or Identity to get a usable starting point.
type Matrix struct {
	m [16]float64
}

// index positions of the individual components in Matrix.m
const (
	i11 = iota
	i12
	i13
	i14
	i21
	i22
	i23
	i24
	i31
	i32
	i33
	i34
	i41
	i42
	i43
	i44
)

var identity = [16]float64{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{m: identity}
}

// New creates a matrix from an optional initial value.
//
// Without an argument (or with nil, "" or "none") the result is the identity
// matrix. Otherwise init is loaded with SetMatrixValue, see there for the
// accepted types.
func New(init ...interface{}) (Matrix, error) {
	m := Identity()
	if len(init) == 0 {
		return m, nil
	}
	if len(init) > 1 {
		return m, NewInvalidArgument("cssmatrix: expected at most one initial value, got %d", len(init))
	}

	err := m.SetMatrixValue(init[0])
	return m, err
}

// MustNew is like New but panics if the initial value is invalid.
func MustNew(init ...interface{}) Matrix {
	m, err := New(init...)
	if err != nil {
		panic(err)
	}
	return m
}

// SetMatrixValue replaces all sixteen components of m with values loaded
// from source. This is the only operation that modifies a Matrix in place.
//
// Accepted sources are a CSS transform list (string), a slice with 6 or 16
// values ([]float64 or []float32) and anything that implements
// HasMatrixComponents. nil, "" and "none" leave m unchanged.
//
// If the source is invalid, an InvalidArgument error is returned and m is
// not modified.
func (m *Matrix) SetMatrixValue(source interface{}) error {
	var (
		loaded Matrix
		err    error
	)

	switch s := source.(type) {
	case nil:
		return nil
	case string:
		if s == "" || s == "none" {
			return nil
		}
		loaded, err = FromString(s)
	case []float64:
		loaded, err = FromArray(s)
	case []float32:
		loaded, err = FromFloat32Array(s)
	case HasMatrixComponents:
		loaded, err = FromMatrix(s)
	default:
		err = NewInvalidArgument("cssmatrix: %v (%T) is not a transform string, array or matrix", source, source)
	}

	if err != nil {
		return err
	}
	m.m = loaded.m
	return nil
}

// M11 returns the component in row 1, column 1.
func (m Matrix) M11() float64 { return m.m[i11] }

// M12 returns the component in row 1, column 2.
func (m Matrix) M12() float64 { return m.m[i12] }

// M13 returns the component in row 1, column 3.
func (m Matrix) M13() float64 { return m.m[i13] }

// M14 returns the component in row 1, column 4.
func (m Matrix) M14() float64 { return m.m[i14] }

// M21 returns the component in row 2, column 1.
func (m Matrix) M21() float64 { return m.m[i21] }

// M22 returns the component in row 2, column 2.
func (m Matrix) M22() float64 { return m.m[i22] }

// M23 returns the component in row 2, column 3.
func (m Matrix) M23() float64 { return m.m[i23] }

// M24 returns the component in row 2, column 4.
func (m Matrix) M24() float64 { return m.m[i24] }

// M31 returns the component in row 3, column 1.
func (m Matrix) M31() float64 { return m.m[i31] }

// M32 returns the component in row 3, column 2.
func (m Matrix) M32() float64 { return m.m[i32] }

// M33 returns the component in row 3, column 3.
func (m Matrix) M33() float64 { return m.m[i33] }

// M34 returns the component in row 3, column 4.
func (m Matrix) M34() float64 { return m.m[i34] }

// M41 returns the component in row 4, column 1 (x translation).
func (m Matrix) M41() float64 { return m.m[i41] }

// M42 returns the component in row 4, column 2 (y translation).
func (m Matrix) M42() float64 { return m.m[i42] }

// M43 returns the component in row 4, column 3 (z translation).
func (m Matrix) M43() float64 { return m.m[i43] }

// M44 returns the component in row 4, column 4.
func (m Matrix) M44() float64 { return m.m[i44] }

// The 2D aliases read the same storage as their long-form counterparts,
// so they can never diverge.

// A is the 2D alias for M11.
func (m Matrix) A() float64 { return m.m[i11] }

// B is the 2D alias for M12.
func (m Matrix) B() float64 { return m.m[i12] }

// C is the 2D alias for M21.
func (m Matrix) C() float64 { return m.m[i21] }

// D is the 2D alias for M22.
func (m Matrix) D() float64 { return m.m[i22] }

// E is the 2D alias for M41.
func (m Matrix) E() float64 { return m.m[i41] }

// F is the 2D alias for M42.
func (m Matrix) F() float64 { return m.m[i42] }

// Components returns all sixteen components in row-major order.
func (m Matrix) Components() [16]float64 {
	return m.m
}

// IsIdentity reports whether m is exactly the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.m == identity
}

// Is2D reports whether m has no out-of-plane or perspective contribution.
func (m Matrix) Is2D() bool {
	return m.m[i31] == 0 &&
		m.m[i32] == 0 &&
		m.m[i33] == 1 &&
		m.m[i34] == 0 &&
		m.m[i43] == 0 &&
		m.m[i44] == 1
}

// ToFloat64Array returns the matrix as 6 (as2D) or 16 values.
func (m Matrix) ToFloat64Array(as2D bool) []float64 {
	return ToArray(m, as2D)
}

// ToFloat32Array is like ToFloat64Array but with float32 precision.
func (m Matrix) ToFloat32Array(as2D bool) []float32 {
	values := ToArray(m, as2D)
	out := make([]float32, len(values))
	for i, v := range values {
		out[i] = float32(v)
	}
	return out
}

// String renders m in CSS syntax; matrix(a, b, c, d, e, f) for a 2D matrix
// and matrix3d(m11, ..., m44) otherwise.
func (m Matrix) String() string {
	is2D := m.Is2D()
	name := "matrix3d"
	if is2D {
		name = "matrix"
	}

	values := m.ToFloat64Array(is2D)
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatNumber(v)
	}

	return fmt.Sprintf("%v(%v)", name, strings.Join(parts, ", "))
}
