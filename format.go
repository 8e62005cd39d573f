package cssmatrix

import (
	"math"
	"strconv"
	"strings"
)

// formatNumber renders v the way CSS serializes numbers in script
// (ECMAScript Number#toString): shortest round-trip digits, no trailing
// zeros, exponent form only outside [1e-7, 1e21).
func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0" // also -0
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	pos := strings.IndexByte(s, 'e')
	digits := strings.Replace(s[:pos], ".", "", 1)
	exp, _ := strconv.Atoi(s[pos+1:])

	k := len(digits)
	n := exp + 1

	switch {
	case k <= n && n <= 21:
		return sign + digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		return sign + digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		return sign + "0." + strings.Repeat("0", -n) + digits
	}

	e := n - 1
	expSign := "+"
	if e < 0 {
		expSign = "-"
		e = -e
	}
	mantissa := digits[:1]
	if k > 1 {
		mantissa += "." + digits[1:]
	}
	return sign + mantissa + "e" + expSign + strconv.Itoa(e)
}

// parseNumber reads the longest numeric prefix of s, ignoring trailing
// units like "px" or "deg". Returns NaN if s does not start with a number.
func parseNumber(s string) float64 {
	i := 0
	negative := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		negative = s[i] == '-'
		i++
	}

	if strings.HasPrefix(s[i:], "Infinity") {
		if negative {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}

	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits+frac > 0 {
			i = j
			digits += frac
		}
	}

	if digits == 0 {
		return math.NaN()
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expDigits := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			expDigits++
		}
		if expDigits > 0 {
			i = j
		}
	}

	// out of range values come back as +/-Inf or 0, which is what we want
	v, _ := strconv.ParseFloat(s[:i], 64)
	return v
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
