package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, y int
}

func TestOf_Scalars(t *testing.T) {
	tests := []struct {
		name string
		in   any
		kind Kind
	}{
		{"nil", nil, KindNull},
		{"bool", true, KindBool},
		{"int", 42, KindInt},
		{"int8", int8(4), KindInt},
		{"uint16", uint16(4), KindInt},
		{"float32", float32(1.5), KindFloat},
		{"float64", 1.5, KindFloat},
		{"string", "s", KindString},
		{"bytes", []byte("s"), KindString},
		{"nil pointer", (*point)(nil), KindNull},
		{"struct", point{1, 2}, KindOpaque},
		{"pointer", &point{1, 2}, KindOpaque},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, Of(tt.in).Kind())
		})
	}
}

func TestOf_UnsignedOverflow(t *testing.T) {
	tests := []struct {
		name  string
		in    any
		kind  Kind
		float float64
		int   int64
	}{
		{"max int64 as uint64", uint64(math.MaxInt64), KindInt, 0, math.MaxInt64},
		{"max uint64", uint64(math.MaxUint64), KindFloat, float64(math.MaxUint64), 0},
		{"large uint", uint(1) << 63, KindFloat, float64(uint64(1) << 63), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Of(tt.in)
			require.Equal(t, tt.kind, v.Kind())
			if tt.kind == KindFloat {
				assert.Equal(t, tt.float, v.AsFloat())
				assert.Positive(t, v.AsFloat())
			} else {
				assert.Equal(t, tt.int, v.AsInt())
			}
		})
	}
}

func TestOf_Containers(t *testing.T) {
	list := Of([]int{1, 2, 3})
	require.Equal(t, KindList, list.Kind())
	assert.Equal(t, 3, list.Len())

	m := Of(map[string]int{"b": 2, "a": 1})
	require.Equal(t, KindMap, m.Kind())
	assert.Equal(t, "['a' => 1, 'b' => 2]", m.Export())

	v, ok := m.Lookup(String("b"))
	require.True(t, ok)
	assert.Equal(t, int64(2), v.AsInt())

	_, ok = m.Lookup(String("c"))
	assert.False(t, ok)
}

func TestNewMap_PreservesOrderAndOverwrites(t *testing.T) {
	m := NewMap(Pair(0, 1), Pair(1, "2"), Pair("k2", "v2"), Pair("k", "v"), Pair("k2", "v3"))

	assert.Equal(t, 4, m.Len())
	assert.Equal(t, "[0 => 1, 1 => '2', 'k2' => 'v3', 'k' => 'v']", m.Export())
}

func TestLookup_NullIsPresent(t *testing.T) {
	m := NewMap(Pair("k", nil))

	v, ok := m.Lookup(String("k"))
	assert.True(t, ok)
	assert.True(t, v.IsNull())
}

func TestLookup_List(t *testing.T) {
	l := List(String("a"), String("b"))

	v, ok := l.Lookup(Int(1))
	require.True(t, ok)
	assert.Equal(t, "b", v.AsString())

	_, ok = l.Lookup(Int(2))
	assert.False(t, ok)
	_, ok = l.Lookup(String("0"))
	assert.False(t, ok)
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "NULL", Null().TypeName())
	assert.Equal(t, "boolean", Bool(true).TypeName())
	assert.Equal(t, "integer", Int(1).TypeName())
	assert.Equal(t, "double", Float(1).TypeName())
	assert.Equal(t, "string", String("").TypeName())
	assert.Equal(t, "array", List().TypeName())
	assert.Equal(t, "array", NewMap().TypeName())
	assert.Equal(t, "object", Opaque(point{}).TypeName())
}

func TestExport(t *testing.T) {
	tests := []struct {
		in   Value
		want string
	}{
		{Null(), "NULL"},
		{Bool(false), "false"},
		{Int(-3), "-3"},
		{Float(1), "1.0"},
		{Float(0.25), "0.25"},
		{NaN(), "NAN"},
		{Float(math.Inf(-1)), "-INF"},
		{String(`it's \`), `'it\'s \\'`},
		{List(Int(1), String("2")), "[0 => 1, 1 => '2']"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Export())
		})
	}
}

type dumped struct{ id int }

func (d dumped) Dump() string { return "dumped" }

func TestDump(t *testing.T) {
	assert.Equal(t, Opaque(&point{1, 2}).Dump(), Opaque(&point{1, 2}).Dump())
	assert.NotEqual(t, Opaque(&point{1, 2}).Dump(), Opaque(&point{1, 3}).Dump())
	assert.Equal(t, "dumped", Opaque(dumped{id: 1}).Dump())
}

func TestText(t *testing.T) {
	s, ok := Bool(true).Text()
	assert.True(t, ok)
	assert.Equal(t, "1", s)

	s, ok = Int(12).Text()
	assert.True(t, ok)
	assert.Equal(t, "12", s)

	_, ok = List().Text()
	assert.False(t, ok)
}

func TestFromJSON(t *testing.T) {
	v, err := FromJSON(`{"b": [1, 2.5, "x"], "a": null, "t": true}`)
	require.NoError(t, err)
	require.Equal(t, KindMap, v.Kind())
	assert.Equal(t, "['b' => [0 => 1, 1 => 2.5, 2 => 'x'], 'a' => NULL, 't' => true]", v.Export())

	n, err := FromJSON("1e3")
	require.NoError(t, err)
	assert.Equal(t, KindFloat, n.Kind())

	_, err = FromJSON("{nope")
	assert.ErrorIs(t, err, ErrInvalidJSON)
}
