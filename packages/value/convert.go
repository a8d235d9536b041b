package value

import (
	"math"
	"reflect"
)

// Of converts a Go value into a Value.
//
// Integers of every width become Int, except unsigned values above
// math.MaxInt64 which become Float. Floats become Float, slices and
// arrays become List and maps become Map with their keys sorted. Nil
// pointers, interfaces, slices and maps become Null. Structs, non-nil
// pointers, channels and funcs are wrapped as Opaque.
func Of(x any) Value {
	switch t := x.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case bool:
		return Bool(t)
	case int:
		return Int(int64(t))
	case int64:
		return Int(t)
	case float64:
		return Float(t)
	case string:
		return String(t)
	case []byte:
		return String(string(t))
	case []any:
		items := make([]Value, len(t))
		for i, item := range t {
			items[i] = Of(item)
		}
		return Value{kind: KindList, items: items}
	}
	return ofReflect(reflect.ValueOf(x))
}

func ofReflect(rv reflect.Value) Value {
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Float(float64(u))
		}
		return Int(int64(u))
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float())
	case reflect.String:
		return String(rv.String())
	case reflect.Slice:
		if rv.IsNil() {
			return Null()
		}
		return listOf(rv)
	case reflect.Array:
		return listOf(rv)
	case reflect.Map:
		if rv.IsNil() {
			return Null()
		}
		return mapOf(rv)
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
		if rv.Kind() == reflect.Interface {
			return Of(rv.Elem().Interface())
		}
	}
	if !rv.IsValid() {
		return Null()
	}
	return Opaque(rv.Interface())
}

func listOf(rv reflect.Value) Value {
	items := make([]Value, rv.Len())
	for i := range items {
		items[i] = Of(rv.Index(i).Interface())
	}
	return Value{kind: KindList, items: items}
}

func mapOf(rv reflect.Value) Value {
	keys := make([]Value, 0, rv.Len())
	byKey := make(map[mapKey]reflect.Value, rv.Len())
	for _, k := range rv.MapKeys() {
		nk := normalizeKey(Of(k.Interface()))
		keys = append(keys, nk)
		byKey[nk.mapKey()] = rv.MapIndex(k)
	}
	sortKeys(keys)

	entries := make([]Entry, len(keys))
	for i, k := range keys {
		entries[i] = Entry{Key: k, Value: Of(byKey[k.mapKey()].Interface())}
	}
	return NewMap(entries...)
}
