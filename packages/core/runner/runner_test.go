package runner

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/abdul-hamid-achik/green/packages/assertions"
	"github.com/abdul-hamid-achik/green/packages/recorder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunner(t *testing.T) {
	t.Run("with nil config", func(t *testing.T) {
		r := NewRunner(nil)
		assert.NotNil(t, r)
		assert.NotNil(t, r.Recorder())
		assert.NotNil(t, r.config)
	})

	t.Run("with custom config", func(t *testing.T) {
		r := NewRunner(&Config{NameFilter: "zn", Bail: true})
		assert.Equal(t, "zn", r.config.NameFilter)
		assert.True(t, r.config.Bail)
	})
}

func TestRunner_Run(t *testing.T) {
	r := NewRunner(nil)
	summary := r.Run(
		Suite{Name: "math", Run: func(a *Asserter) {
			a.Assert(2, 1+1)
			a.Assert(1, "<", 2)
			a.That(3, assertions.OpGreaterThan, 4)
		}},
		Suite{Name: "errors", Run: func(a *Asserter) {
			a.Error("fs.PathError", func() error {
				_, err := os.Open("/definitely/not/here")
				return err
			})
		}},
	)

	assert.Equal(t, 2, summary.Suites)
	assert.Equal(t, 3, summary.Success)
	assert.Equal(t, 1, summary.Failure)
	assert.False(t, summary.Passed())

	snap := r.Recorder().Snapshot()
	require.Len(t, snap.Records, 4)
	for _, rec := range snap.Records {
		require.NotNil(t, rec.Site)
		assert.True(t, strings.HasSuffix(rec.Site.File, "runner_test.go"))
	}
}

func TestRunner_PanicIsRecorded(t *testing.T) {
	var warnings []string
	r := NewRunner(&Config{Warn: func(format string, args ...any) {
		warnings = append(warnings, format)
	}})

	summary := r.Run(
		Suite{Name: "boom", Run: func(a *Asserter) {
			a.Assert(true)
			panic(errors.New("exploded"))
		}},
		Suite{Name: "after", Run: func(a *Asserter) {
			a.Assert(true)
		}},
	)

	assert.Equal(t, 2, summary.Success)
	assert.Equal(t, 1, summary.Failure)
	assert.Len(t, warnings, 1)
	assert.Empty(t, summary.Errors)

	snap := r.Recorder().Snapshot()
	failed := snap.Records[1]
	assert.False(t, failed.Result)
	assert.Equal(t, "boom", failed.Expected.AsString())
	assert.Equal(t, "panic: exploded", failed.Actual.AsString())
	require.NotNil(t, failed.Site)
	assert.True(t, strings.HasSuffix(failed.Site.File, "runner_test.go"))
}

func TestRunner_InvalidAssertionAbortsSuite(t *testing.T) {
	tests := []struct {
		name string
		run  func(a *Asserter)
		err  error
	}{
		{
			name: "unknown operator",
			run:  func(a *Asserter) { a.Assert(1, "<=>", 1) },
			err:  assertions.ErrInvalidOperator,
		},
		{
			name: "too many arguments",
			run:  func(a *Asserter) { a.Assert(1, "=", 1, 1) },
			err:  recorder.ErrInvalidArguments,
		},
		{
			name: "bad pattern",
			run:  func(a *Asserter) { a.That("/a(/", assertions.OpMatches, "a") },
			err:  assertions.ErrInvalidPattern,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var warnings []string
			r := NewRunner(&Config{Warn: func(format string, args ...any) {
				warnings = append(warnings, fmt.Sprintf(format, args...))
			}})

			reached := false
			summary := r.Run(
				Suite{Name: "bad", Run: func(a *Asserter) {
					tt.run(a)
					reached = true
					a.Assert(true)
				}},
				Suite{Name: "good", Run: func(a *Asserter) { a.Assert(true) }},
			)

			assert.False(t, reached)
			assert.Equal(t, 2, summary.Suites)
			assert.Equal(t, 1, summary.Success)
			assert.Equal(t, 0, summary.Failure)
			require.Len(t, summary.Errors, 1)
			assert.ErrorIs(t, summary.Errors[0], tt.err)
			assert.Contains(t, summary.Errors[0].Error(), `suite "bad"`)
			assert.False(t, summary.Passed())
			assert.Len(t, r.Recorder().Snapshot().Records, 1)
			require.Len(t, warnings, 1)
			assert.Contains(t, warnings[0], "aborted")
		})
	}
}

func TestRunner_InvalidAssertionWithBail(t *testing.T) {
	ran := 0
	r := NewRunner(&Config{Bail: true})
	summary := r.Run(
		Suite{Name: "bad", Run: func(a *Asserter) { ran++; a.Assert() }},
		Suite{Name: "good", Run: func(a *Asserter) { ran++; a.Assert(true) }},
	)

	assert.Equal(t, 1, ran)
	assert.Equal(t, 1, summary.Suites)
	require.Len(t, summary.Errors, 1)
	assert.ErrorIs(t, summary.Errors[0], recorder.ErrInvalidArguments)
}

func TestRunner_FilterAndBail(t *testing.T) {
	var ran []string
	suite := func(name string, pass bool) Suite {
		return Suite{Name: name, Run: func(a *Asserter) {
			ran = append(ran, a.Suite())
			a.Assert(pass)
		}}
	}

	r := NewRunner(&Config{NameFilter: "zn*"})
	summary := r.Run(suite("green", true), suite("zn", true), suite("zn-lock", true))
	assert.Equal(t, []string{"zn", "zn-lock"}, ran)
	assert.Equal(t, 1, summary.Skipped)

	ran = nil
	r = NewRunner(&Config{Bail: true})
	summary = r.Run(suite("a", false), suite("b", true))
	assert.Equal(t, []string{"a"}, ran)
	assert.Equal(t, 1, summary.Suites)
}

func TestRunner_Finalize(t *testing.T) {
	calls := 0
	r := NewRunner(nil)
	r.Run(Suite{Name: "one", Run: func(a *Asserter) { a.Assert(true) }})

	render := recorder.RendererFunc(func(snap recorder.Snapshot) error {
		calls++
		assert.Equal(t, 1, snap.Success)
		return nil
	})
	require.NoError(t, r.Finalize(render))
	require.NoError(t, r.Finalize(render))
	assert.Equal(t, 1, calls)
}

func TestMatchesPattern(t *testing.T) {
	tests := []struct {
		name, pattern string
		want          bool
	}{
		{"green", "", true},
		{"green", "*", true},
		{"green", "green", true},
		{"green", "gre", false},
		{"green", "gr*", true},
		{"green", "*een", true},
		{"green", "*ree*", true},
		{"green", "*zz*", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, matchesPattern(tt.name, tt.pattern), "%s ~ %s", tt.name, tt.pattern)
	}
}

func TestSelect(t *testing.T) {
	suites := []Suite{{Name: "green"}, {Name: "zn"}, {Name: "zn-lock"}}

	all, unmatched := Select(suites)
	assert.Len(t, all, 3)
	assert.Empty(t, unmatched)

	picked, unmatched := Select(suites, "zn*", "nope", "green")
	require.Len(t, picked, 3)
	assert.Equal(t, "green", picked[0].Name)
	assert.Equal(t, []string{"nope"}, unmatched)
}
