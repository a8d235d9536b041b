package value

import (
	"math"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Dumper is implemented by opaque values that provide their own canonical
// deep representation.
type Dumper interface {
	Dump() string
}

var dumpConfig = spew.ConfigState{
	Indent:                  " ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump returns the canonical deep representation of v. Two opaque values
// are smart-equal iff their dumps are identical.
func (v Value) Dump() string {
	if v.kind != KindOpaque {
		return v.Export()
	}
	if d, ok := v.o.(Dumper); ok {
		return d.Dump()
	}
	return dumpConfig.Sdump(v.o)
}

// TypeName returns the type tag shown next to values in failure reports.
func (v Value) TypeName() string {
	switch v.kind {
	case KindNull:
		return "NULL"
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindFloat:
		return "double"
	case KindString:
		return "string"
	case KindList, KindMap:
		return "array"
	default:
		return "object"
	}
}

// SameType reports whether a and b have the same runtime type. Lists and
// maps are both containers and share a type.
func SameType(a, b Value) bool {
	if a.IsContainer() && b.IsContainer() {
		return true
	}
	return a.kind == b.kind
}

// String implements fmt.Stringer.
func (v Value) String() string { return v.Export() }

// Export renders v as a single-line literal.
func (v Value) Export() string {
	var sb strings.Builder
	v.export(&sb)
	return sb.String()
}

func (v Value) export(sb *strings.Builder) {
	switch v.kind {
	case KindNull:
		sb.WriteString("NULL")
	case KindBool:
		sb.WriteString(strconv.FormatBool(v.b))
	case KindInt:
		sb.WriteString(strconv.FormatInt(v.i, 10))
	case KindFloat:
		sb.WriteString(formatFloat(v.f))
	case KindString:
		sb.WriteString(quote(v.s))
	case KindList, KindMap:
		sb.WriteByte('[')
		first := true
		v.Each(func(k, val Value) bool {
			if !first {
				sb.WriteString(", ")
			}
			first = false
			k.export(sb)
			sb.WriteString(" => ")
			val.export(sb)
			return true
		})
		sb.WriteByte(']')
	case KindOpaque:
		sb.WriteString(strings.Join(strings.Fields(v.Dump()), " "))
	}
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NAN"
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(s) + "'"
}

// Text converts a scalar to the string it would print as. ok is false for
// containers and opaque values.
func (v Value) Text() (s string, ok bool) {
	switch v.kind {
	case KindNull:
		return "", true
	case KindBool:
		if v.b {
			return "1", true
		}
		return "", true
	case KindInt:
		return strconv.FormatInt(v.i, 10), true
	case KindFloat:
		return formatFloat(v.f), true
	case KindString:
		return v.s, true
	}
	return "", false
}
