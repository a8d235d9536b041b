package assertions

import (
	"github.com/abdul-hamid-achik/green/packages/value"
)

// Target selects which facet of a container SmartExists searches.
type Target int

const (
	TargetKey Target = iota
	TargetValue
)

// SmartEquals reports whether a and b are equal under smart equality.
func SmartEquals(a, b value.Value) bool {
	if !value.SameType(a, b) {
		return false
	}

	switch a.Kind() {
	case value.KindFloat:
		if a.IsNaN() || b.IsNaN() {
			return a.IsNaN() && b.IsNaN()
		}
		return a.AsFloat() == b.AsFloat()
	case value.KindList, value.KindMap:
		if a.Len() != b.Len() {
			return false
		}
		equal := true
		a.Each(func(k, av value.Value) bool {
			bv, ok := b.Lookup(k)
			if !ok || !SmartEquals(av, bv) {
				equal = false
			}
			return equal
		})
		// Counts match, so b has no keys a lacks.
		return equal
	case value.KindOpaque:
		return a.Dump() == b.Dump()
	case value.KindNull:
		return true
	case value.KindBool:
		return a.AsBool() == b.AsBool()
	case value.KindInt:
		return a.AsInt() == b.AsInt()
	case value.KindString:
		return a.AsString() == b.AsString()
	}
	return false
}

// SmartExists reports whether any entry of container has a key (TargetKey)
// or value (TargetValue) smart-equal to needle. Non-containers never match.
func SmartExists(target Target, container, needle value.Value) bool {
	found := false
	container.Each(func(k, v value.Value) bool {
		candidate := v
		if target == TargetKey {
			candidate = k
		}
		found = SmartEquals(candidate, needle)
		return !found
	})
	return found
}
