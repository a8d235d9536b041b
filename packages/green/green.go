package green

import (
	"os"
	"reflect"
	"sync"

	"github.com/abdul-hamid-achik/green/packages/core/env"
	"github.com/abdul-hamid-achik/green/packages/output"
	"github.com/abdul-hamid-achik/green/packages/recorder"
)

type marker struct{}

var (
	mu         sync.Mutex
	defaultRec *recorder.Recorder
)

func init() {
	recorder.MarkInternal(reflect.TypeOf(marker{}).PkgPath())
}

// Default returns the process-wide recorder, creating it on first use
// with a renderer for the detected host writing to stdout.
func Default() *recorder.Recorder {
	mu.Lock()
	defer mu.Unlock()
	if defaultRec == nil {
		defaultRec = recorder.New(
			recorder.WithRenderer(output.ForHost(env.DetectHost(), os.Stdout, false)),
		)
	}
	return defaultRec
}

// SetDefault replaces the process-wide recorder and returns the previous
// one. A nil rec makes the next Default call create a fresh recorder.
func SetDefault(rec *recorder.Recorder) *recorder.Recorder {
	mu.Lock()
	defer mu.Unlock()
	prev := defaultRec
	defaultRec = rec
	return prev
}

// Assert records an assertion on the default recorder. It accepts
// (actual), (expected, actual) or (expected, operator, actual). Invalid
// arguments, unknown operators and malformed patterns panic.
func Assert(args ...any) bool {
	passed, err := Default().Assert(recorder.ExternalCaller(), args...)
	if err != nil {
		panic(err)
	}
	return passed
}

// AssertError records whether fn fails with one of kinds, a kind name or
// a slice of kind names.
func AssertError(kinds any, fn func() error) bool {
	return Default().ExpectError(recorder.ExternalCaller(), kinds, fn)
}

// SetRenderer selects the renderer used by Finalize.
func SetRenderer(r recorder.Renderer) {
	Default().SetRenderer(r)
}

// Finalize renders the default recorder's results once.
func Finalize() error {
	return Default().Finalize()
}
