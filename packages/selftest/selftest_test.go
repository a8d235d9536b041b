package selftest

import (
	"testing"

	"github.com/abdul-hamid-achik/green/packages/core/runner"
	"github.com/stretchr/testify/assert"
)

func TestSuitesPass(t *testing.T) {
	for _, suite := range All() {
		t.Run(suite.Name, func(t *testing.T) {
			r := runner.NewRunner(nil)
			summary := r.Run(suite)

			assert.Equal(t, 1, summary.Suites)
			assert.Positive(t, summary.Success)
			for i, rec := range r.Recorder().Snapshot().Records {
				assert.True(t, rec.Result, "assertion %d: %s %s %s", i+1, rec.Expected.Export(), rec.Operator, rec.Actual.Export())
			}
		})
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"green", "zn"}, Names())
}
