package recorder

import (
	"errors"
	"fmt"
	"sync"

	"github.com/abdul-hamid-achik/green/packages/assertions"
	"github.com/abdul-hamid-achik/green/packages/value"
	"github.com/google/uuid"
)

// ErrInvalidArguments is returned when an assertion is called with an
// argument count other than 1, 2 or 3.
var ErrInvalidArguments = errors.New("invalid arguments")

// WarnFunc is a function type for handling warnings
type WarnFunc func(format string, args ...any)

// Renderer consumes the final snapshot of a Recorder.
type Renderer interface {
	Render(snap Snapshot) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(snap Snapshot) error

func (f RendererFunc) Render(snap Snapshot) error { return f(snap) }

// Record is one executed assertion.
type Record struct {
	Expected value.Value
	Operator assertions.Operator
	Actual   value.Value
	Result   bool
	Site     *CallSite
}

// Snapshot is a read-only view of a Recorder's state.
// Success+Failure always equals len(Records) and len(Results).
type Snapshot struct {
	ID      string
	Results []bool
	Records []Record
	Success int
	Failure int
}

// Total returns the number of recorded assertions.
func (s Snapshot) Total() int { return s.Success + s.Failure }

// Recorder is safe for concurrent use. Appending a record and updating the
// counters happen in one critical section.
type Recorder struct {
	mu        sync.Mutex
	id        string
	records   []Record
	results   []bool
	success   int
	failure   int
	renderer  Renderer
	finalized bool
	warnFunc  WarnFunc
}

// Option is a functional option for configuring a Recorder.
type Option func(*Recorder)

// WithRenderer sets the renderer invoked by Finalize.
func WithRenderer(r Renderer) Option {
	return func(rec *Recorder) {
		rec.renderer = r
	}
}

// WithWarnFunc sets a function to be called when warnings occur.
func WithWarnFunc(fn WarnFunc) Option {
	return func(rec *Recorder) {
		rec.warnFunc = fn
	}
}

// New creates an empty Recorder with a random ID.
func New(opts ...Option) *Recorder {
	r := &Recorder{
		id: uuid.NewString(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ID identifies this recorder's run.
func (r *Recorder) ID() string { return r.id }

// SetRenderer assigns the renderer used by Finalize. The last assignment
// before Finalize wins.
func (r *Recorder) SetRenderer(renderer Renderer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renderer = renderer
}

// SetWarnFunc sets a function to be called when warnings occur.
func (r *Recorder) SetWarnFunc(fn WarnFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warnFunc = fn
}

func (r *Recorder) warn(format string, args ...any) {
	r.mu.Lock()
	fn := r.warnFunc
	r.mu.Unlock()
	if fn != nil {
		fn(format, args...)
	}
}

// Assert evaluates and records one assertion. It accepts
//
//	(actual)                      expected=true, operator="="
//	(expected, actual)            operator="="
//	(expected, operator, actual)
//
// Any other arity fails with ErrInvalidArguments and an unknown operator
// with assertions.ErrInvalidOperator; neither is recorded. Errors raised by
// the operator itself, such as a malformed pattern, are returned as-is.
func (r *Recorder) Assert(site *CallSite, args ...any) (bool, error) {
	var expected, actual any
	var op any = assertions.OpEquals

	switch len(args) {
	case 1:
		expected, actual = true, args[0]
	case 2:
		expected, actual = args[0], args[1]
	case 3:
		expected, op, actual = args[0], args[1], args[2]
	default:
		return false, fmt.Errorf("%w: want 1 to 3 arguments, got %d", ErrInvalidArguments, len(args))
	}

	operator, err := toOperator(op)
	if err != nil {
		return false, err
	}
	return r.That(site, expected, operator, actual)
}

// Check records actual == true.
func (r *Recorder) Check(site *CallSite, actual any) bool {
	passed, _ := r.That(site, true, assertions.OpEquals, actual)
	return passed
}

// Equal records expected == actual under smart equality.
func (r *Recorder) Equal(site *CallSite, expected, actual any) bool {
	passed, _ := r.That(site, expected, assertions.OpEquals, actual)
	return passed
}

// That evaluates expected <op> actual and records the outcome.
func (r *Recorder) That(site *CallSite, expected any, op assertions.Operator, actual any) (bool, error) {
	fn, err := assertions.Lookup(op)
	if err != nil {
		return false, err
	}

	exp, act := value.Of(expected), value.Of(actual)
	passed, err := fn(exp, act)
	if err != nil {
		return false, err
	}

	r.record(Record{
		Expected: exp,
		Operator: op,
		Actual:   act,
		Result:   passed,
		Site:     site,
	})
	return passed, nil
}

func (r *Recorder) record(rec Record) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, rec)
	r.results = append(r.results, rec.Result)
	if rec.Result {
		r.success++
	} else {
		r.failure++
	}
}

func toOperator(op any) (assertions.Operator, error) {
	switch o := op.(type) {
	case assertions.Operator:
		return o, nil
	case string:
		return assertions.Operator(o), nil
	}
	return "", fmt.Errorf("%w: operator = %s", assertions.ErrInvalidOperator, value.Of(op).Export())
}

// Snapshot returns a copy of the current state.
func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

func (r *Recorder) snapshotLocked() Snapshot {
	snap := Snapshot{
		ID:      r.id,
		Results: make([]bool, len(r.results)),
		Records: make([]Record, len(r.records)),
		Success: r.success,
		Failure: r.failure,
	}
	copy(snap.Results, r.results)
	copy(snap.Records, r.records)
	return snap
}

// Finalize hands the full snapshot to the renderer. Only the first call
// renders; without a renderer nothing is output.
func (r *Recorder) Finalize() error {
	r.mu.Lock()
	if r.finalized {
		r.mu.Unlock()
		return nil
	}
	r.finalized = true
	renderer := r.renderer
	snap := r.snapshotLocked()
	r.mu.Unlock()

	if renderer == nil {
		return nil
	}
	if err := renderer.Render(snap); err != nil {
		r.warn("failed to render results: %v", err)
		return fmt.Errorf("render results: %w", err)
	}
	return nil
}
