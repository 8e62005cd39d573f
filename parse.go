package cssmatrix

import (
	"math"
	"strings"
	"unicode"

	"github.com/akeil/cssmatrix/internal/logging"
)

// snapEpsilon is the magnitude below which matrix() values are taken as 0.
const snapEpsilon = 1e-6

// transformFunc is a single "name(args)" element of a transform list.
type transformFunc struct {
	name string
	args arguments
}

// arguments holds the parsed numeric arguments of a transform function.
// Unparseable arguments are NaN; positions beyond the end are absent.
type arguments []float64

func (a arguments) at(i int) float64 {
	if i < len(a) {
		return a[i]
	}
	return math.NaN()
}

func (a arguments) allFinite() bool {
	for _, v := range a {
		if !isFinite(v) {
			return false
		}
	}
	return true
}

// orZero returns the i'th argument, or 0 if it is absent, zero or NaN.
func (a arguments) orZero(i int) float64 {
	v := a.at(i)
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// truthy reports whether v is neither zero nor NaN.
func truthy(v float64) bool {
	return v != 0 && !math.IsNaN(v)
}

// A rule validates the arguments for one transform function and applies it
// to the accumulated matrix. ok is false if the arguments are not valid
// for the function.
type rule func(m Matrix, args arguments) (result Matrix, ok bool)

var grammar = map[string]rule{
	"perspective": perspectiveRule,
	"matrix":      matrixRule,
	"matrix3d":    matrixRule,
	"translate3d": translate3dRule,
	"translate":   translateRule,
	"rotate3d":    rotate3dRule,
	"rotate":      rotateRule,
	"scale3d":     scale3dRule,
	"scale":       scaleRule,
	"skew":        skewRule,
	"skewX":       singleRule(func(m Matrix, v float64) Matrix { return m.SkewX(v) }),
	"skewY":       singleRule(func(m Matrix, v float64) Matrix { return m.SkewY(v) }),
	"translateX":  singleRule(func(m Matrix, v float64) Matrix { return m.Translate(v, 0, 0) }),
	"translateY":  singleRule(func(m Matrix, v float64) Matrix { return m.Translate(0, v, 0) }),
	"translateZ":  singleRule(func(m Matrix, v float64) Matrix { return m.Translate(0, 0, v) }),
	"rotateX":     singleRule(func(m Matrix, v float64) Matrix { return m.Rotate(v, 0, 0) }),
	"rotateY":     singleRule(func(m Matrix, v float64) Matrix { return m.Rotate(0, v, 0) }),
	"rotateZ":     singleRule(func(m Matrix, v float64) Matrix { return m.Rotate(0, 0, v) }),
	"scaleX":      singleRule(func(m Matrix, v float64) Matrix { return m.Scale(v, 1, 1) }),
	"scaleY":      singleRule(func(m Matrix, v float64) Matrix { return m.Scale(1, v, 1) }),
	"scaleZ":      singleRule(func(m Matrix, v float64) Matrix { return m.Scale(1, 1, v) }),
}

func perspectiveRule(m Matrix, args arguments) (Matrix, bool) {
	if len(args) != 1 || !truthy(args[0]) {
		return m, false
	}
	p := Identity()
	p.m[i34] = -1 / args[0]
	return Multiply(m, p), true
}

func matrixRule(m Matrix, args arguments) (Matrix, bool) {
	if (len(args) != 6 && len(args) != 16) || !args.allFinite() {
		return m, false
	}

	values := make([]float64, len(args))
	for i, v := range args {
		if math.Abs(v) >= snapEpsilon {
			values[i] = v
		}
	}

	other, err := FromArray(values)
	if err != nil {
		return m, false
	}
	return Multiply(m, other), true
}

func translate3dRule(m Matrix, args arguments) (Matrix, bool) {
	if len(args) != 3 || !args.allFinite() {
		return m, false
	}
	return m.Translate(args[0], args[1], args[2]), true
}

func translateRule(m Matrix, args arguments) (Matrix, bool) {
	if len(args) > 2 || math.IsNaN(args.at(0)) {
		return m, false
	}
	return m.Translate(args[0], args.orZero(1), 0), true
}

func rotate3dRule(m Matrix, args arguments) (Matrix, bool) {
	if len(args) != 4 || !args.allFinite() || args[3] == 0 {
		return m, false
	}
	result, err := m.RotateAxisAngle(args[0], args[1], args[2], args[3])
	return result, err == nil
}

func rotateRule(m Matrix, args arguments) (Matrix, bool) {
	if len(args) != 1 || math.IsNaN(args[0]) {
		return m, false
	}
	return m.Rotate(0, 0, args[0]), true
}

func scale3dRule(m Matrix, args arguments) (Matrix, bool) {
	if len(args) != 3 || !args.allFinite() {
		return m, false
	}
	if args[0] == 1 && args[1] == 1 && args[2] == 1 {
		return m, false
	}
	return m.Scale(args[0], args[1], args[2]), true
}

func scaleRule(m Matrix, args arguments) (Matrix, bool) {
	if len(args) > 2 || math.IsNaN(args.at(0)) {
		return m, false
	}
	x := args[0]
	y := args.at(1)
	// a second argument that is absent or not a number falls back to x
	if math.IsNaN(y) {
		y = x
	}
	return m.Scale(x, y, 1), true
}

func skewRule(m Matrix, args arguments) (Matrix, bool) {
	if len(args) > 2 {
		return m, false
	}
	x := args.at(0)
	if !(truthy(x) || (!math.IsNaN(x) && truthy(args.at(1)))) {
		return m, false
	}
	return m.Skew(x, args.orZero(1)), true
}

// singleRule builds a rule for the single-axis functions (translateX,
// rotateY, skewX, ...) which expect exactly one non-zero value.
func singleRule(apply func(m Matrix, v float64) Matrix) rule {
	return func(m Matrix, args arguments) (Matrix, bool) {
		if len(args) != 1 || !truthy(args[0]) {
			return m, false
		}
		return apply(m, args[0]), true
	}
}

// FromString creates a matrix from a CSS transform list like
// "translate(10px, 20px) rotate(45deg) scale(2)".
//
// The transform functions are applied left to right, each one
// post-multiplying the result of the previous ones. Length units are
// ignored, angles are in degrees unless they carry the "rad" unit.
//
// Returns an InvalidArgument error if any function is unknown or has
// invalid arguments. There is no partial result.
func FromString(source string) (Matrix, error) {
	funcs, err := tokenize(source)
	if err != nil {
		return Identity(), err
	}

	m := Identity()
	for _, tf := range funcs {
		apply, found := grammar[tf.name]
		var ok bool
		if found {
			m, ok = apply(m, tf.args)
		}
		if !ok {
			logging.Info("Reject transform function %q with arguments %v", tf.name, []float64(tf.args))
			return Identity(), invalidTransform(source)
		}
		logging.Debug("Applied %v%v", tf.name, []float64(tf.args))
	}

	return m, nil
}

// MustParse is like FromString but panics if source is invalid.
func MustParse(source string) Matrix {
	m, err := FromString(source)
	if err != nil {
		panic(err)
	}
	return m
}

// tokenize splits a transform list into its functions.
func tokenize(source string) ([]transformFunc, error) {
	str := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, source)

	funcs := make([]transformFunc, 0)
	for _, fragment := range strings.Split(str, ")") {
		if fragment == "" {
			continue
		}

		var name, raw string
		pos := strings.IndexByte(fragment, '(')
		if pos >= 0 {
			name = fragment[:pos]
			raw = fragment[pos+1:]
		}
		if raw == "" {
			logging.Info("Malformed transform function %q", fragment)
			return nil, invalidTransform(source)
		}

		funcs = append(funcs, transformFunc{
			name: name,
			args: parseArguments(raw),
		})
	}

	return funcs, nil
}

func parseArguments(raw string) arguments {
	parts := strings.Split(raw, ",")
	args := make(arguments, len(parts))
	for i, p := range parts {
		v := parseNumber(p)
		if strings.Contains(p, "rad") {
			v = v * (180 / math.Pi)
		}
		args[i] = v
	}
	return args
}

func invalidTransform(source string) error {
	return NewInvalidArgument("cssmatrix: invalid transform string %q", source)
}
