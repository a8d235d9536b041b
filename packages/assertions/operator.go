package assertions

import (
	"errors"
	"fmt"
	"sort"

	"github.com/abdul-hamid-achik/green/packages/value"
)

// ErrInvalidOperator is returned for an operator symbol outside the
// supported set.
var ErrInvalidOperator = errors.New("invalid operator")

// Operator is the symbol selecting the comparison an assertion performs.
type Operator string

const (
	OpEquals         Operator = "="
	OpEqualsDouble   Operator = "=="
	OpIdentical      Operator = "==="
	OpNot            Operator = "!"
	OpNotEquals      Operator = "!="
	OpNotIdentical   Operator = "!=="
	OpDiamond        Operator = "<>"
	OpLessThan       Operator = "<"
	OpLessOrEqual    Operator = "<="
	OpGreaterThan    Operator = ">"
	OpGreaterOrEqual Operator = ">="
	OpMatches        Operator = "=~"
	OpNotMatches     Operator = "!~"
	OpInclude        Operator = "include"
	OpExclude        Operator = "exclude"
	OpAny            Operator = "any"
	OpHaveAny        Operator = "have_any"
	OpNone           Operator = "none"
	OpHaveNone       Operator = "have_none"
)

func (op Operator) String() string { return string(op) }

// Func evaluates one operator. Errors are reserved for operands the
// operator cannot interpret, such as a malformed pattern.
type Func func(expected, actual value.Value) (bool, error)

var operators = map[Operator]Func{
	OpEquals:         equals,
	OpEqualsDouble:   equals,
	OpIdentical:      equals,
	OpNot:            not(equals),
	OpNotEquals:      not(equals),
	OpNotIdentical:   not(equals),
	OpDiamond:        not(equals),
	OpLessThan:       ordered(func(c int) bool { return c < 0 }),
	OpLessOrEqual:    ordered(func(c int) bool { return c <= 0 }),
	OpGreaterThan:    ordered(func(c int) bool { return c > 0 }),
	OpGreaterOrEqual: ordered(func(c int) bool { return c >= 0 }),
	OpMatches:        matches,
	OpNotMatches:     not(matches),
	OpInclude:        exists(TargetKey),
	OpExclude:        not(exists(TargetKey)),
	OpAny:            exists(TargetValue),
	OpHaveAny:        exists(TargetValue),
	OpNone:           not(exists(TargetValue)),
	OpHaveNone:       not(exists(TargetValue)),
}

// Lookup resolves an operator symbol.
func Lookup(op Operator) (Func, error) {
	fn, ok := operators[op]
	if !ok {
		return nil, fmt.Errorf("%w: operator = %q", ErrInvalidOperator, string(op))
	}
	return fn, nil
}

// Evaluate applies op to expected and actual.
func Evaluate(expected value.Value, op Operator, actual value.Value) (bool, error) {
	fn, err := Lookup(op)
	if err != nil {
		return false, err
	}
	return fn(expected, actual)
}

// Operators returns every supported symbol, sorted.
func Operators() []Operator {
	ops := make([]Operator, 0, len(operators))
	for op := range operators {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}

func equals(expected, actual value.Value) (bool, error) {
	return SmartEquals(expected, actual), nil
}

func not(fn Func) Func {
	return func(expected, actual value.Value) (bool, error) {
		passed, err := fn(expected, actual)
		if err != nil {
			return false, err
		}
		return !passed, nil
	}
}

func ordered(accept func(int) bool) Func {
	return func(expected, actual value.Value) (bool, error) {
		c, ok := compareOrder(expected, actual)
		return ok && accept(c), nil
	}
}

// exists treats expected as the container and actual as the needle.
func exists(target Target) Func {
	return func(expected, actual value.Value) (bool, error) {
		return SmartExists(target, expected, actual), nil
	}
}

func matches(expected, actual value.Value) (bool, error) {
	re, err := CompilePattern(expected)
	if err != nil {
		return false, err
	}
	subject, ok := actual.Text()
	if !ok {
		return false, fmt.Errorf("%w: got %s", ErrNotString, actual.TypeName())
	}
	return re.MatchString(subject), nil
}
