// Package recorder accumulates assertion outcomes.
//
// A Recorder keeps an ordered log of every executed assertion together with
// success and failure counters, and hands a Snapshot of that state to its
// Renderer exactly once when it is finalized.
//
// Lifecycle:
//
//	rec := recorder.New(recorder.WithRenderer(r))
//	rec.Assert(recorder.Caller(0), 1, "<", 2)
//	rec.Finalize()
package recorder
