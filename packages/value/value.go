package value

import (
	"math"
	"sort"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindMap
	KindOpaque
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindOpaque:
		return "opaque"
	default:
		return "unknown"
	}
}

// Value is an immutable dynamically-typed payload. The zero Value is Null.
type Value struct {
	kind  Kind
	b     bool
	i     int64
	f     float64
	s     string
	items []Value
	m     *mapData
	o     any
}

type mapKey struct {
	str bool
	s   string
	i   int64
}

type mapData struct {
	keys  []Value
	vals  []Value
	index map[mapKey]int
}

// Entry is a key/value pair used to build a Map.
type Entry struct {
	Key   Value
	Value Value
}

// Null returns the null Value.
func Null() Value { return Value{} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer Value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating-point Value. NaN and infinities are allowed.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// NaN returns the not-a-number Float.
func NaN() Value { return Float(math.NaN()) }

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// List returns an ordered sequence.
func List(items ...Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: KindList, items: cp}
}

// Pair builds a map Entry, converting both sides with Of.
func Pair(key, val any) Entry {
	return Entry{Key: Of(key), Value: Of(val)}
}

// NewMap returns an insertion-ordered mapping. Keys are normalized to Int
// or String; a repeated key overwrites the earlier value in place.
func NewMap(entries ...Entry) Value {
	m := &mapData{index: make(map[mapKey]int, len(entries))}
	for _, e := range entries {
		k := normalizeKey(e.Key)
		mk := k.mapKey()
		if pos, ok := m.index[mk]; ok {
			m.vals[pos] = e.Value
			continue
		}
		m.index[mk] = len(m.keys)
		m.keys = append(m.keys, k)
		m.vals = append(m.vals, e.Value)
	}
	return Value{kind: KindMap, m: m}
}

// Opaque wraps an arbitrary Go value. Opaque values compare through their
// canonical deep dump (see Dump).
func Opaque(x any) Value { return Value{kind: KindOpaque, o: x} }

func (v Value) Kind() Kind { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }
func (v Value) AsBool() bool { return v.b }
func (v Value) AsInt() int64 { return v.i }
func (v Value) AsFloat() float64 { return v.f }
func (v Value) AsString() string { return v.s }
func (v Value) Unwrap() any { return v.o }
func (v Value) IsNaN() bool { return v.kind == KindFloat && math.IsNaN(v.f) }
func (v Value) IsContainer() bool { return v.kind == KindList || v.kind == KindMap }

// IsNumber reports whether v is an Int or a Float.
func (v Value) IsNumber() bool { return v.kind == KindInt || v.kind == KindFloat }

// Number returns v as a float64 for Int and Float values.
func (v Value) Number() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	}
	return 0, false
}

// Len returns the number of entries of a container and 0 for anything else.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.items)
	case KindMap:
		return len(v.m.keys)
	}
	return 0
}

// Each calls fn for every entry of a container in order until fn returns
// false. List entries are keyed by their Int index.
func (v Value) Each(fn func(key, val Value) bool) {
	switch v.kind {
	case KindList:
		for i, item := range v.items {
			if !fn(Int(int64(i)), item) {
				return
			}
		}
	case KindMap:
		for i, k := range v.m.keys {
			if !fn(k, v.m.vals[i]) {
				return
			}
		}
	}
}

// Lookup returns the entry stored under key. A present key holding Null is
// reported as found.
func (v Value) Lookup(key Value) (Value, bool) {
	switch v.kind {
	case KindList:
		if key.kind != KindInt || key.i < 0 || key.i >= int64(len(v.items)) {
			return Value{}, false
		}
		return v.items[key.i], true
	case KindMap:
		if key.kind != KindInt && key.kind != KindString {
			return Value{}, false
		}
		pos, ok := v.m.index[key.mapKey()]
		if !ok {
			return Value{}, false
		}
		return v.m.vals[pos], true
	}
	return Value{}, false
}

// Items returns a copy of the elements of a List, or the values of a Map.
func (v Value) Items() []Value {
	switch v.kind {
	case KindList:
		cp := make([]Value, len(v.items))
		copy(cp, v.items)
		return cp
	case KindMap:
		cp := make([]Value, len(v.m.vals))
		copy(cp, v.m.vals)
		return cp
	}
	return nil
}

// Keys returns the keys of a container in order.
func (v Value) Keys() []Value {
	var keys []Value
	v.Each(func(k, _ Value) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

func (v Value) mapKey() mapKey {
	if v.kind == KindString {
		return mapKey{str: true, s: v.s}
	}
	return mapKey{i: v.i}
}

// normalizeKey restricts keys to Int or String.
func normalizeKey(k Value) Value {
	switch k.kind {
	case KindInt, KindString:
		return k
	case KindBool:
		if k.b {
			return Int(1)
		}
		return Int(0)
	case KindFloat:
		if math.IsNaN(k.f) || math.IsInf(k.f, 0) {
			return String(k.Export())
		}
		return Int(int64(k.f))
	case KindNull:
		return String("")
	default:
		return String(k.Export())
	}
}

// sortKeys orders Int keys before String keys, each ascending.
func sortKeys(keys []Value) {
	sort.SliceStable(keys, func(a, b int) bool {
		ka, kb := keys[a], keys[b]
		if ka.kind != kb.kind {
			return ka.kind == KindInt
		}
		if ka.kind == KindInt {
			return ka.i < kb.i
		}
		return ka.s < kb.s
	})
}
