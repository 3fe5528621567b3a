package value

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// FloatTolerance is the absolute difference accepted when comparing two
// canonical strings that both parse as floating point.
const FloatTolerance = 1e-9

// Canonical renders a Value as the single comparison string used to match
// program output against expected output: booleans as true/false, floats in
// general format, strings verbatim, lists comma-joined in brackets, maps
// with sorted keys.
func Canonical(v Value) string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	case KindList:
		parts := make([]string, len(v.list))
		for i, item := range v.list {
			parts[i] = Canonical(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMap:
		keys := v.MapKeys()
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + ": " + Canonical(v.m[k])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return ""
	}
}

// CanonicalEqual compares two canonical strings: direct equality first,
// then whitespace-insensitive equality, then a numeric-tolerant fallback
// where both sides parse as floating point.
func CanonicalEqual(actual, expected string) bool {
	a := strings.TrimSpace(actual)
	e := strings.TrimSpace(expected)
	if a == e {
		return true
	}
	if stripSpace(a) == stripSpace(e) {
		return true
	}
	return NumericEqual(a, e)
}

// NumericEqual reports whether both strings parse as floating point and
// differ by less than FloatTolerance.
func NumericEqual(actual, expected string) bool {
	af, errA := strconv.ParseFloat(strings.TrimSpace(actual), 64)
	ef, errE := strconv.ParseFloat(strings.TrimSpace(expected), 64)
	if errA != nil || errE != nil {
		return false
	}
	return math.Abs(af-ef) < FloatTolerance
}

// Equal performs a deep comparison of two values. Numeric kinds compare by
// widened float with tolerance so Int(2) equals Float(2.0).
func Equal(a, b Value) bool {
	if a.IsNumeric() && b.IsNumeric() {
		return math.Abs(a.AsFloat()-b.AsFloat()) < FloatTolerance
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindString:
		return a.s == b.s
	case KindList:
		if len(a.list) != len(b.list) {
			return false
		}
		for i := range a.list {
			if !Equal(a.list[i], b.list[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(a.m) != len(b.m) {
			return false
		}
		for k, av := range a.m {
			bv, ok := b.m[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// EqualUnordered compares two lists ignoring element order, falling back to
// Equal for non-list values. Elements are matched by sorted canonical form,
// mirroring the secondary check used for list-valued expected outputs.
func EqualUnordered(a, b Value) bool {
	if Equal(a, b) {
		return true
	}
	if a.kind != KindList || b.kind != KindList || len(a.list) != len(b.list) {
		return false
	}
	as := sortedCanonicals(a.list)
	bs := sortedCanonicals(b.list)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

func sortedCanonicals(items []Value) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = Canonical(item)
	}
	sort.Strings(out)
	return out
}

func stripSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
