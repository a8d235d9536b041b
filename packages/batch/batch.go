// Package batch records assertions described in a JSON file.
//
// A batch file looks like
//
//	{"assertions": [
//	  {"expected": [1, 2], "operator": "include", "actual": 0, "line": 3},
//	  {"actual": true}
//	]}
//
// Entries follow the recorder's argument shapes: a missing expected means
// true and a missing operator means "=".
package batch

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abdul-hamid-achik/green/packages/recorder"
	"github.com/abdul-hamid-achik/green/packages/value"
	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schema []byte

var schemaLoader = gojsonschema.NewBytesLoader(schema)

// ErrInvalidBatch reports a document that does not match the batch schema.
var ErrInvalidBatch = errors.New("invalid batch file")

// Entry is one assertion of a batch file.
type Entry struct {
	Expected value.Value
	// HasExpected is false when the entry omits expected.
	HasExpected bool
	Operator    string
	Actual      value.Value
	Line        int
}

// Args returns the entry in recorder argument form.
func (e Entry) Args() []any {
	switch {
	case e.Operator != "":
		expected := e.Expected
		if !e.HasExpected {
			expected = value.Bool(true)
		}
		return []any{expected, e.Operator, e.Actual}
	case e.HasExpected:
		return []any{e.Expected, e.Actual}
	}
	return []any{e.Actual}
}

// Parse validates data against the batch schema and decodes its entries.
func Parse(data []byte) ([]Entry, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidBatch)
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("schema validation error: %w", err)
	}
	if !result.Valid() {
		var msgs []string
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidBatch, strings.Join(msgs, "; "))
	}

	var entries []Entry
	for i, item := range gjson.GetBytes(data, "assertions").Array() {
		entry := Entry{
			Operator: item.Get("operator").String(),
			Actual:   value.FromResult(item.Get("actual")),
			Line:     i + 1,
		}
		if exp := item.Get("expected"); exp.Exists() {
			entry.Expected = value.FromResult(exp)
			entry.HasExpected = true
		}
		if line := item.Get("line"); line.Exists() {
			entry.Line = int(line.Int())
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Load reads and parses the batch file at path.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}
	entries, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// Run records every entry of the batch file at path into rec, using the
// file and the entry's line as call site. It stops at the first entry the
// recorder rejects.
func Run(rec *recorder.Recorder, path string) error {
	entries, err := Load(path)
	if err != nil {
		return err
	}

	file, err := filepath.Abs(path)
	if err != nil {
		file = path
	}

	for i, entry := range entries {
		site := &recorder.CallSite{File: file, Line: entry.Line}
		if _, err := rec.Assert(site, entry.Args()...); err != nil {
			return fmt.Errorf("%s: entry %d: %w", path, i+1, err)
		}
	}
	return nil
}
