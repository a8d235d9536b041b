// Package runner executes green suites against a recorder.
//
// It provides functionality for:
//   - Running suites sequentially with name filtering
//   - Converting a panicking suite into a failing assertion
//   - Finalizing the run through a renderer
//
// The lifecycle is explicit: create a Runner, run suites, then finalize.
package runner
