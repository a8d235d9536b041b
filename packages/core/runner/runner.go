package runner

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"time"

	"github.com/abdul-hamid-achik/green/packages/assertions"
	"github.com/abdul-hamid-achik/green/packages/recorder"
)

// Suite is a named group of assertions.
type Suite struct {
	Name string
	Run  func(*Asserter)
}

type Config struct {
	// NameFilter selects suites by name; a leading or trailing * matches
	// any suffix or prefix.
	NameFilter string
	// Bail stops the run after the first suite with a failure or an
	// aborted assertion.
	Bail bool
	Warn recorder.WarnFunc
}

type Runner struct {
	rec    *recorder.Recorder
	config *Config
}

// Summary is the outcome of one Run call.
type Summary struct {
	Suites   int
	Skipped  int
	Success  int
	Failure  int
	Duration time.Duration
	// Errors holds one entry per suite aborted by an assertion that could
	// not be evaluated. Nothing is recorded for those assertions.
	Errors []error
}

// Passed reports whether every recorded assertion passed and no suite
// was aborted.
func (s Summary) Passed() bool {
	return s.Failure == 0 && len(s.Errors) == 0
}

func NewRunner(cfg *Config, opts ...recorder.Option) *Runner {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.Warn != nil {
		opts = append(opts, recorder.WithWarnFunc(cfg.Warn))
	}

	return &Runner{
		rec:    recorder.New(opts...),
		config: cfg,
	}
}

// Recorder returns the recorder the runner records into.
func (r *Runner) Recorder() *recorder.Recorder {
	return r.rec
}

// Run executes the selected suites in order.
func (r *Runner) Run(suites ...Suite) Summary {
	start := time.Now()
	before := r.rec.Snapshot()
	summary := Summary{}

	for _, suite := range suites {
		if !matchesPattern(suite.Name, r.config.NameFilter) {
			summary.Skipped++
			continue
		}

		failed := r.rec.Snapshot().Failure
		err := r.runSuite(suite)
		summary.Suites++
		if err != nil {
			summary.Errors = append(summary.Errors, err)
		}

		if r.config.Bail && (err != nil || r.rec.Snapshot().Failure > failed) {
			break
		}
	}

	after := r.rec.Snapshot()
	summary.Success = after.Success - before.Success
	summary.Failure = after.Failure - before.Failure
	summary.Duration = time.Since(start)
	return summary
}

// runSuite runs one suite. An assertion that cannot be evaluated aborts
// the suite and is returned as an error. Any other panic is recorded as a
// failure located at the suite's Run function.
func (r *Runner) runSuite(suite Suite) (err error) {
	if suite.Run == nil {
		return nil
	}

	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if perr, ok := p.(error); ok && isUsageError(perr) {
			err = fmt.Errorf("suite %q aborted: %w", suite.Name, perr)
			r.warn("%v", err)
			return
		}
		r.warn("suite %q panicked: %v", suite.Name, p)
		_, _ = r.rec.That(suiteSite(suite), suite.Name, assertions.OpEquals, fmt.Sprintf("panic: %v", p))
	}()

	suite.Run(&Asserter{rec: r.rec, suite: suite.Name})
	return nil
}

// isUsageError reports whether err comes from a malformed assertion rather
// than from the code under test.
func isUsageError(err error) bool {
	return errors.Is(err, recorder.ErrInvalidArguments) ||
		errors.Is(err, assertions.ErrInvalidOperator) ||
		errors.Is(err, assertions.ErrInvalidPattern) ||
		errors.Is(err, assertions.ErrNotString)
}

// Finalize renders the run with renderer. It renders at most once.
func (r *Runner) Finalize(renderer recorder.Renderer) error {
	if renderer != nil {
		r.rec.SetRenderer(renderer)
	}
	return r.rec.Finalize()
}

func (r *Runner) warn(format string, args ...any) {
	if r.config.Warn != nil {
		r.config.Warn(format, args...)
	}
}

// suiteSite locates the suite's Run function.
func suiteSite(suite Suite) *recorder.CallSite {
	fn := runtime.FuncForPC(reflect.ValueOf(suite.Run).Pointer())
	if fn == nil {
		return nil
	}
	file, line := fn.FileLine(fn.Entry())
	return &recorder.CallSite{File: file, Line: line}
}

// Select returns the suites matching any of patterns, in suite order.
// No patterns selects every suite. Patterns that match nothing are
// returned as unmatched.
func Select(suites []Suite, patterns ...string) (selected []Suite, unmatched []string) {
	if len(patterns) == 0 {
		return suites, nil
	}

	used := make([]bool, len(patterns))
	for _, suite := range suites {
		hit := false
		for i, pattern := range patterns {
			if matchesPattern(suite.Name, pattern) {
				used[i] = true
				hit = true
			}
		}
		if hit {
			selected = append(selected, suite)
		}
	}

	for i, pattern := range patterns {
		if !used[i] {
			unmatched = append(unmatched, pattern)
		}
	}
	return selected, unmatched
}

func matchesPattern(name, pattern string) bool {
	if pattern == "" || pattern == "*" {
		return true
	}

	prefix := strings.HasPrefix(pattern, "*")
	suffix := strings.HasSuffix(pattern, "*")
	core := strings.Trim(pattern, "*")

	switch {
	case prefix && suffix:
		return strings.Contains(name, core)
	case prefix:
		return strings.HasSuffix(name, core)
	case suffix:
		return strings.HasPrefix(name, core)
	}
	return name == pattern
}
