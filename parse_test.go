package cssmatrix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEquivalence(t *testing.T) {
	tests := []struct {
		source string
		want   Matrix
	}{
		{"translate(10,20)", Translate(10, 20, 0)},
		{"translate(10)", Translate(10, 0, 0)},
		{"translate(10px, 20px)", Translate(10, 20, 0)},
		{"translate3d(1, 2, 3)", Translate(1, 2, 3)},
		{"translateX(5)", Translate(5, 0, 0)},
		{"translateY(5)", Translate(0, 5, 0)},
		{"translateZ(5)", Translate(0, 0, 5)},
		{"scale(2)", Scale(2, 2, 1)},
		{"scale(2, 3)", Scale(2, 3, 1)},
		{"scale3d(2, 3, 4)", Scale(2, 3, 4)},
		{"scaleX(2)", Scale(2, 1, 1)},
		{"scaleY(2)", Scale(1, 2, 1)},
		{"scaleZ(2)", Scale(1, 1, 2)},
		{"rotate(90)", Rotate(0, 0, 90)},
		{"rotate(45deg)", Rotate(0, 0, 45)},
		{"rotate(0)", Identity().Rotate(0)},
		{"rotateX(30)", Rotate(30, 0, 0)},
		{"rotateY(30)", Rotate(0, 30, 0)},
		{"rotateZ(30)", Rotate(0, 0, 30)},
		{"rotate3d(1, 2, 3, 40)", RotateAxisAngle(1, 2, 3, 40)},
		{"skew(30)", Skew(30, 0)},
		{"skew(30, 20)", Skew(30, 20)},
		{"skew(0, 20)", Skew(0, 20)},
		{"skewX(30)", SkewX(30)},
		{"skewY(30)", SkewY(30)},
		{"matrix(1, 2, 3, 4, 5, 6)", mustArray(t, 1, 2, 3, 4, 5, 6)},
		{"matrix(1,0,0,1,10,20)", Translate(10, 20, 0)},
		{"", Identity()},
		{"   ", Identity()},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			m, err := FromString(tt.source)
			require.NoError(t, err)
			assert.Equal(t, tt.want.Components(), m.Components())
		})
	}
}

func TestParseWhitespace(t *testing.T) {
	m, err := FromString("  translate( 10 , 20 )\n\tscale( 2 )  ")
	require.NoError(t, err)
	assert.Equal(t, Identity().Translate(10, 20).Scale(2).Components(), m.Components())
}

func TestParseRadians(t *testing.T) {
	m, err := FromString("rotate(1.5707963267948966rad)")
	require.NoError(t, err)
	assertMatrixInDelta(t, Rotate(0, 0, 90), m, epsilon)

	m, err = FromString("skew(0.5rad, 0)")
	require.NoError(t, err)
	assert.InDelta(t, math.Tan(0.5), m.C(), epsilon)
}

func TestParseMatrix3d(t *testing.T) {
	m, err := FromString("matrix3d(1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, -0.01, 5, 6, 7, 1)")
	require.NoError(t, err)
	assert.False(t, m.Is2D())
	assert.Equal(t, -0.01, m.M34())
	assert.Equal(t, 7.0, m.M43())
}

func TestParseMatrixSnapsTinyValues(t *testing.T) {
	m, err := FromString("matrix(1, 0.0000001, -0.0000009, 1, 0.000001, 0)")
	require.NoError(t, err)
	assert.Equal(t, 0.0, m.B())
	assert.Equal(t, 0.0, m.C())
	assert.Equal(t, 0.000001, m.E())
}

func TestParsePerspective(t *testing.T) {
	m, err := FromString("perspective(100)")
	require.NoError(t, err)
	assert.Equal(t, -0.01, m.M34())

	// composed after the existing transform
	m, err = FromString("scale(2) perspective(100)")
	require.NoError(t, err)
	assert.Equal(t, Multiply(Scale(2, 2, 1), m34(-0.01)).Components(), m.Components())
}

func TestParseScaleFallback(t *testing.T) {
	// a second argument that is not a number falls back to x
	m, err := FromString("scale(2, abc)")
	require.NoError(t, err)
	assert.Equal(t, Scale(2, 2, 1).Components(), m.Components())

	m, err = FromString("scale(3,)")
	require.NoError(t, err)
	assert.Equal(t, Scale(3, 3, 1).Components(), m.Components())
}

func TestParseTranslateFallback(t *testing.T) {
	m, err := FromString("translate(3, abc)")
	require.NoError(t, err)
	assert.Equal(t, Translate(3, 0, 0).Components(), m.Components())
}

func TestParseCompositionOrder(t *testing.T) {
	a, err := FromString("translate(10,0) rotate(90)")
	require.NoError(t, err)
	b, err := FromString("rotate(90) translate(10,0)")
	require.NoError(t, err)

	assertMatrixInDelta(t, mustArray(t, 0, 1, -1, 0, 10, 0), a, epsilon)
	assertMatrixInDelta(t, mustArray(t, 0, 1, -1, 0, 0, 10), b, epsilon)
	assert.NotEqual(t, a.Components(), b.Components())
}

func TestParseMatchesChainedCalls(t *testing.T) {
	m, err := FromString("translate3d(1, 2, 3) rotateX(10) rotateY(20) scale(0.5) skewY(5) perspective(300)")
	require.NoError(t, err)

	want := Identity().
		Translate(1, 2, 3).
		Rotate(10, 0, 0).
		Rotate(0, 20, 0).
		Scale(0.5, 0.5, 1).
		SkewY(5).
		Multiply(m34(-1.0 / 300))
	assert.Equal(t, want.Components(), m.Components())
}

func TestParseInvalid(t *testing.T) {
	tests := []string{
		"foo(1,2,3)",
		"translate",
		"translate(",
		"translate()",
		"translate(1,2,3)",
		"translate(abc)",
		"translate3d(1,2)",
		"translate3d(1,2,abc)",
		"translateX(0)",
		"translateX(1,2)",
		"scaleY(0)",
		"rotate(1,2)",
		"rotate(abc)",
		"rotateZ(0)",
		"rotate3d(1,0,0,0)",
		"rotate3d(1,0,0)",
		"rotate3d(1,0,abc,30)",
		"scale(abc)",
		"scale(1,2,3)",
		"scale3d(1,1,1)",
		"scale3d(1,2)",
		"skew(0)",
		"skew(0,0)",
		"skew(1,2,3)",
		"skewX(0)",
		"skewY(1,2)",
		"perspective(0)",
		"perspective(1,2)",
		"matrix(1,2,3)",
		"matrix(1,0,0,1,0,abc)",
		"matrix3d(1,0,0,1,0,0,1)",
		"translate(10) bogus(1)",
		"(1,2)",
	}
	for _, source := range tests {
		t.Run(source, func(t *testing.T) {
			m, err := FromString(source)
			require.Error(t, err)
			assert.True(t, IsInvalidArgument(err), "expected InvalidArgument, got %v", err)
			assert.Contains(t, err.Error(), source)
			assert.True(t, m.IsIdentity(), "no partial result")
		})
	}
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, Scale(2, 2, 1).Components(), MustParse("scale(2)").Components())
	assert.Panics(t, func() { MustParse("scale()") })
}

func TestParseArguments(t *testing.T) {
	args := parseArguments("10px,abc,,1rad")
	require.Len(t, args, 4)
	assert.Equal(t, 10.0, args[0])
	assert.True(t, math.IsNaN(args[1]))
	assert.True(t, math.IsNaN(args[2]))
	assert.InDelta(t, 180/math.Pi, args[3], epsilon)
	assert.True(t, math.IsNaN(args.at(4)), "absent arguments are NaN")
}

func m34(v float64) Matrix {
	m := Identity()
	m.m[i34] = v
	return m
}
