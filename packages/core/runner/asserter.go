package runner

import (
	"github.com/abdul-hamid-achik/green/packages/assertions"
	"github.com/abdul-hamid-achik/green/packages/recorder"
)

// Asserter records assertions for one suite. Every assertion is recorded
// with the file and line of the statement that issued it.
type Asserter struct {
	rec   *recorder.Recorder
	suite string
}

// Suite returns the name of the suite being run.
func (a *Asserter) Suite() string {
	return a.suite
}

// Assert records an assertion in any of the recorder's accepted shapes.
// Invalid arguments or operators panic; the runner aborts the suite and
// reports the error without recording anything.
func (a *Asserter) Assert(args ...any) bool {
	passed, err := a.rec.Assert(recorder.Caller(1), args...)
	if err != nil {
		panic(err)
	}
	return passed
}

// That records expected <op> actual.
func (a *Asserter) That(expected any, op assertions.Operator, actual any) bool {
	passed, err := a.rec.That(recorder.Caller(1), expected, op, actual)
	if err != nil {
		panic(err)
	}
	return passed
}

// Error records whether fn fails with one of kinds.
func (a *Asserter) Error(kinds any, fn func() error) bool {
	return a.rec.ExpectError(recorder.Caller(1), kinds, fn)
}
