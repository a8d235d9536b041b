package recorder

import (
	"reflect"

	"github.com/abdul-hamid-achik/green/packages/assertions"
	"github.com/abdul-hamid-achik/green/packages/value"
)

// Kinder is implemented by errors that name their own kind.
type Kinder interface {
	Kind() string
}

// ExpectError calls fn and records whether it failed with one of the
// accepted kinds. kinds is a single name or a slice of names. A returned
// error or a panic counts as raised; nothing is re-raised. The recorded
// actual value is the raised kind name, or Null when fn succeeded.
func (r *Recorder) ExpectError(site *CallSite, kinds any, fn func() error) bool {
	accepted := value.Of(kinds)
	if accepted.Kind() == value.KindString {
		accepted = value.List(accepted)
	}
	passed, _ := r.That(site, accepted, assertions.OpAny, raisedKind(fn))
	return passed
}

func raisedKind(fn func() error) (kind value.Value) {
	defer func() {
		if p := recover(); p != nil {
			if err, ok := p.(error); ok {
				kind = value.String(KindOf(err))
				return
			}
			kind = value.String(typeName(p))
		}
	}()
	if err := fn(); err != nil {
		return value.String(KindOf(err))
	}
	return value.Null()
}

// KindOf names the kind of err: its Kind method when it has one, otherwise
// its dynamic type name without pointer indirection, e.g. "fs.PathError".
func KindOf(err error) string {
	if k, ok := err.(Kinder); ok {
		return k.Kind()
	}
	return typeName(err)
}

func typeName(x any) string {
	t := reflect.TypeOf(x)
	if t == nil {
		return "nil"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}
