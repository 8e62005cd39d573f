package cssmatrix

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsIdentity(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	assert.True(t, m.IsIdentity())
	assert.True(t, m.Is2D())
	assert.Equal(t, "matrix(1, 0, 0, 1, 0, 0)", m.String())
	assert.Equal(t, Identity(), m)
}

func TestNewFromInputs(t *testing.T) {
	want := Translate(10, 20, 0)
	tests := []struct {
		name string
		init interface{}
	}{
		{"transform string", "translate(10px, 20px)"},
		{"float64 array", []float64{1, 0, 0, 1, 10, 20}},
		{"float32 array", []float32{1, 0, 0, 1, 10, 20}},
		{"matrix", want},
		{"matrix pointer", &want},
		{"wrapped matrix", wrapped{want}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.init)
			require.NoError(t, err)
			assert.Equal(t, want.Components(), m.Components())
		})
	}
}

func TestNewWithoutValue(t *testing.T) {
	for _, init := range []interface{}{nil, "", "none"} {
		m, err := New(init)
		require.NoError(t, err)
		assert.True(t, m.IsIdentity(), "New(%#v) should be the identity", init)
	}
}

func TestNewInvalid(t *testing.T) {
	_, err := New(42)
	assert.True(t, IsInvalidArgument(err), "unsupported type must be rejected: %v", err)

	_, err = New("translate(1)", "scale(2)")
	assert.True(t, IsInvalidArgument(err))

	_, err = New([]float64{1, 2, 3})
	assert.True(t, IsInvalidArgument(err))

	assert.Panics(t, func() { MustNew("foo(1)") })
}

func TestSetMatrixValue(t *testing.T) {
	m := Identity()
	require.NoError(t, m.SetMatrixValue("scale(2)"))
	assert.Equal(t, Scale(2, 2, 1).Components(), m.Components())

	// invalid input leaves the matrix unchanged
	err := m.SetMatrixValue([]float64{1, 2, 3})
	assert.True(t, IsInvalidArgument(err))
	assert.Equal(t, Scale(2, 2, 1).Components(), m.Components())

	// "none" keeps the current value
	require.NoError(t, m.SetMatrixValue("none"))
	assert.Equal(t, Scale(2, 2, 1).Components(), m.Components())

	values := make([]float64, 16)
	for i := range values {
		values[i] = float64(i + 1)
	}
	require.NoError(t, m.SetMatrixValue(values))
	assert.Equal(t, values, m.ToFloat64Array(false))
}

func TestAliasMirroring(t *testing.T) {
	matrices := map[string]Matrix{
		"identity":    Identity(),
		"translate":   Identity().Translate(3, 4, 5),
		"scale":       Identity().Scale(2, 3),
		"rotate":      Identity().Rotate(10, 20, 30),
		"skew":        Identity().Skew(10, 20),
		"composed":    Identity().Translate(5, 6).Rotate(45).SkewX(10).Scale(0.5),
		"from string": MustParse("matrix(1, 2, 3, 4, 5, 6)"),
	}
	for name, m := range matrices {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, m.M11(), m.A())
			assert.Equal(t, m.M12(), m.B())
			assert.Equal(t, m.M21(), m.C())
			assert.Equal(t, m.M22(), m.D())
			assert.Equal(t, m.M41(), m.E())
			assert.Equal(t, m.M42(), m.F())
		})
	}
}

func TestIs2D(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want bool
	}{
		{"identity", Identity(), true},
		{"translate 2d", Translate(10, 20, 0), true},
		{"translate z", Translate(0, 0, 1), false},
		{"rotate z", Rotate(0, 0, 30), true},
		{"rotate x", Rotate(30, 0, 0), false},
		{"scale z", Scale(1, 1, 2), false},
		{"skew", Skew(10, 20), true},
		{"perspective", MustParse("perspective(100)"), false},
		{"zero matrix", Matrix{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.m.Is2D())
		})
	}
}

func TestIsIdentity(t *testing.T) {
	assert.True(t, Identity().IsIdentity())
	assert.True(t, Translate(0, 0, 0).IsIdentity())
	assert.True(t, RotateAxisAngle(0, 0, 0, 45).IsIdentity())
	assert.False(t, Translate(0, 0, 1e-12).IsIdentity(), "no tolerance")
	assert.False(t, Rotate(0, 0, 360).IsIdentity(), "no tolerance")
	assert.False(t, Matrix{}.IsIdentity())
}

func TestString(t *testing.T) {
	assert.Equal(t, "matrix(1, 0, 0, 1, 10, 20)", Translate(10, 20, 0).String())
	assert.Equal(t, "matrix(2, 0, 0, 0.5, 0, 0)", Scale(2, 0.5, 1).String())
	assert.Equal(t,
		"matrix3d(1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 1, 2, 3, 1)",
		Translate(1, 2, 3).String())

	s2 := Skew(10, 20).String()
	assert.True(t, strings.HasPrefix(s2, "matrix("))
	assert.Len(t, strings.Split(s2, ", "), 6)

	s3 := Rotate(10, 20, 30).String()
	assert.True(t, strings.HasPrefix(s3, "matrix3d("))
	assert.Len(t, strings.Split(s3, ", "), 16)
}

func TestStringRoundTrip(t *testing.T) {
	for _, m := range []Matrix{
		Identity().Translate(10, 20).Rotate(33).Scale(1.5),
		Identity().Rotate(10, 20, 30).Translate(1, 2, 3),
		Identity().Skew(15, 25),
	} {
		parsed, err := FromString(m.String())
		require.NoError(t, err)
		for i, v := range m.Components() {
			// values below 1e-6 are snapped to 0 by the parser
			assert.InDelta(t, v, parsed.Components()[i], 1e-6, "component %d of %v", i, m)
		}
	}
}

func TestToFloat32Array(t *testing.T) {
	m := Identity().Translate(1.5, 2.5)
	assert.Equal(t, []float32{1, 0, 0, 1, 1.5, 2.5}, m.ToFloat32Array(true))
	assert.Len(t, m.ToFloat32Array(false), 16)
}

func TestImmutableOperations(t *testing.T) {
	m := Translate(1, 2, 3)
	before := m.Components()

	m.Translate(5)
	m.Scale(2)
	m.Rotate(45)
	m.Skew(10, 10)
	m.SkewX(5)
	m.SkewY(5)
	m.Multiply(Scale(3, 3, 3))
	_, err := m.RotateAxisAngle(1, 0, 0, 30)
	require.NoError(t, err)

	assert.Equal(t, before, m.Components())
}

// wrapped is a foreign type that exposes matrix components.
type wrapped struct {
	Matrix
}

func assertMatrixInDelta(t *testing.T, expected, actual HasMatrixComponents, delta float64) {
	t.Helper()
	e := components(expected)
	a := components(actual)
	for i := range e {
		if math.Abs(e[i]-a[i]) > delta {
			t.Errorf("component %d: expected %v, got %v (expected %v, got %v)",
				i, e[i], a[i], e, a)
			return
		}
	}
}
