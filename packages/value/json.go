package value

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned by FromJSON for malformed input.
var ErrInvalidJSON = errors.New("invalid JSON")

// FromJSON parses JSON text into a Value. Object key order is preserved and
// integral numbers without a fraction or exponent become Int.
func FromJSON(raw string) (Value, error) {
	raw = strings.TrimSpace(raw)
	if !gjson.Valid(raw) {
		return Value{}, fmt.Errorf("%w: %q", ErrInvalidJSON, raw)
	}
	return FromResult(gjson.Parse(raw)), nil
}

// FromResult converts an already parsed gjson result.
func FromResult(r gjson.Result) Value {
	switch r.Type {
	case gjson.Null:
		return Null()
	case gjson.False:
		return Bool(false)
	case gjson.True:
		return Bool(true)
	case gjson.Number:
		if !strings.ContainsAny(r.Raw, ".eE") {
			if i, err := strconv.ParseInt(r.Raw, 10, 64); err == nil {
				return Int(i)
			}
		}
		return Float(r.Num)
	case gjson.String:
		return String(r.Str)
	case gjson.JSON:
		if r.IsArray() {
			var items []Value
			r.ForEach(func(_, item gjson.Result) bool {
				items = append(items, FromResult(item))
				return true
			})
			return List(items...)
		}
		var entries []Entry
		r.ForEach(func(key, item gjson.Result) bool {
			entries = append(entries, Entry{Key: String(key.Str), Value: FromResult(item)})
			return true
		})
		return NewMap(entries...)
	}
	return Null()
}
