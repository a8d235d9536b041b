package output

import (
	"os"
	"strings"

	"github.com/abdul-hamid-achik/green/packages/assertions"
	"github.com/abdul-hamid-achik/green/packages/recorder"
	"github.com/abdul-hamid-achik/green/packages/value"
)

// Failure is one failing assertion prepared for display.
type Failure struct {
	// Index is the 1-based position among all recorded assertions.
	Index int
	// Source is the trimmed source line of the call site, nil when the
	// file or line could not be read.
	Source   *string
	File     string
	Line     int
	Expected value.Value
	Operator assertions.Operator
	Actual   value.Value
}

// SourceText returns the source line or "" when absent.
func (f Failure) SourceText() string {
	if f.Source == nil {
		return ""
	}
	return *f.Source
}

// ExtractFailures returns the failing assertions of snap in their original
// order. Source files are read at most once per call.
func ExtractFailures(snap recorder.Snapshot) []Failure {
	var failures []Failure
	files := make(map[string][]string)

	for i, rec := range snap.Records {
		if rec.Result {
			continue
		}
		f := Failure{
			Index:    i + 1,
			Expected: rec.Expected,
			Operator: rec.Operator,
			Actual:   rec.Actual,
		}
		if rec.Site != nil {
			f.File = rec.Site.File
			f.Line = rec.Site.Line
			f.Source = sourceLine(files, f.File, f.Line)
		}
		failures = append(failures, f)
	}

	return failures
}

func sourceLine(cache map[string][]string, file string, line int) *string {
	if file == "" {
		return nil
	}
	lines, ok := cache[file]
	if !ok {
		// Unreadable files are cached as nil so they are not retried.
		if data, err := os.ReadFile(file); err == nil {
			lines = strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
		}
		cache[file] = lines
	}
	if line < 1 || line > len(lines) {
		return nil
	}
	src := strings.TrimSpace(lines[line-1])
	return &src
}
