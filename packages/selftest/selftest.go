// Package selftest contains the suites green runs against itself.
package selftest

import (
	"math"

	"github.com/abdul-hamid-achik/green/packages/core/runner"
	"github.com/abdul-hamid-achik/green/packages/value"
	"github.com/abdul-hamid-achik/green/packages/zn"
)

// All returns every self-test suite in run order.
func All() []runner.Suite {
	return []runner.Suite{
		{Name: "green", Run: Green},
		{Name: "zn", Run: Zn},
	}
}

// Names lists the suite names of All.
func Names() []string {
	var names []string
	for _, s := range All() {
		names = append(names, s.Name)
	}
	return names
}

type kindError string

func (e kindError) Error() string { return string(e) }
func (e kindError) Kind() string  { return string(e) }

type object struct {
	K string
}

type pair struct {
	v1 int
	V2 int
}

// Green exercises every comparison green offers.
func Green(a *runner.Asserter) {
	a.Assert(true)
	a.Assert(true, "!", false)
	a.Assert(nil, nil)
	a.Assert(math.Acos(8), math.Acos(8))
	a.Assert(math.Acos(8), "!", math.Acos(1))
	a.Assert(math.Log(0), math.Log(0))
	a.Assert(math.Log(0), "!", math.Log(1))

	a.Assert(
		value.NewMap(value.Pair(0, 1), value.Pair(1, "2"), value.Pair("k2", "v2"), value.Pair("k", "v")),
		value.NewMap(value.Pair(0, 1), value.Pair(1, "2"), value.Pair("k", "v"), value.Pair("k2", "v2")),
	)
	a.Assert(
		value.NewMap(value.Pair(0, 1), value.Pair(1, "2"), value.Pair("k2", "v2"), value.Pair("k", "v")),
		"!",
		value.NewMap(value.Pair(0, 1), value.Pair(1, "2"), value.Pair("k", "v"), value.Pair("k2", "v3")),
	)

	a.Assert(&object{K: "v"}, &object{K: "v"})
	a.Assert(pair{1, 2}, pair{1, 2})

	a.Assert(1, "<", 2)
	a.Assert("z", ">", "a")
	a.Assert("/^hoge/", "=~", "hogefuga")
	a.Assert("/^hage/", "!~", "hogefuga")
	a.Assert(map[string]int{"k": 1}, "include", "k")
	a.Assert(map[string]int{"k": 1}, "exclude", "v")
	a.Assert([]string{"k"}, "any", "k")
	a.Assert([]string{"k"}, "none", "v")

	a.Error("AError", func() error { return kindError("AError") })
	a.Error([]string{"AError", "BError"}, func() error { return kindError("AError") })
}

// Zn exercises the zn helpers.
func Zn(a *runner.Asserter) {
	a.Assert("integer", value.Of(zn.ElapsedTime()).TypeName())
	a.Assert(0, "<=", zn.ElapsedTime())

	arr := value.Of(map[string]string{"foo": "abc"})
	// existing key
	_, ok := arr.Lookup(value.String("foo"))
	if a.Assert(ok) {
		a.Assert("abc", zn.Get(arr, "foo", value.Null()))
	}
	a.Assert("abc", zn.Get(arr, "foo", value.String("iroha")))
	// missing key
	_, ok = arr.Lookup(value.String("hoge"))
	a.Assert(!ok)
	a.Assert(nil, zn.Get(arr, "hoge", value.Null()))
	a.Assert("iroha", zn.Get(arr, "hoge", value.String("iroha")))

	a.Assert("abc", zn.ArrayGet(map[string]string{"foo": "abc"}, "foo", "iroha"))
	a.Assert("&lt;p&gt;", zn.Escape("<p>"))
}
