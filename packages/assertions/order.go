package assertions

import (
	"strings"

	"github.com/abdul-hamid-achik/green/packages/value"
)

// compareOrder returns the native ordering of a and b. ok is false when
// the pair has no ordering: mixed non-numeric types, containers, opaque
// values, or a NaN operand.
func compareOrder(a, b value.Value) (c int, ok bool) {
	if a.IsNumber() && b.IsNumber() {
		if a.IsNaN() || b.IsNaN() {
			return 0, false
		}
		if a.Kind() == value.KindInt && b.Kind() == value.KindInt {
			return cmpInt(a.AsInt(), b.AsInt()), true
		}
		af, _ := a.Number()
		bf, _ := b.Number()
		switch {
		case af < bf:
			return -1, true
		case af > bf:
			return 1, true
		}
		return 0, true
	}

	if a.Kind() != b.Kind() {
		return 0, false
	}
	switch a.Kind() {
	case value.KindNull:
		return 0, true
	case value.KindBool:
		return cmpInt(boolInt(a.AsBool()), boolInt(b.AsBool())), true
	case value.KindString:
		return strings.Compare(a.AsString(), b.AsString()), true
	}
	return 0, false
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
