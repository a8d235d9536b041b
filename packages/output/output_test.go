package output

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abdul-hamid-achik/green/packages/assertions"
	"github.com/abdul-hamid-achik/green/packages/core/env"
	"github.com/abdul-hamid-achik/green/packages/recorder"
	"github.com/abdul-hamid-achik/green/packages/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.go")
	src := "package suite\n\tgreen.Assert(1, \"=\", 2)   \n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))
	return path
}

// scenario records 1=1, 1=2 (at line 2 of file) and [1,2] include 1.
func scenario(t *testing.T, file string) recorder.Snapshot {
	t.Helper()
	r := recorder.New()
	_, err := r.Assert(&recorder.CallSite{File: file, Line: 1}, 1, "=", 1)
	require.NoError(t, err)
	_, err = r.Assert(&recorder.CallSite{File: file, Line: 2}, 1, "=", 2)
	require.NoError(t, err)
	_, err = r.Assert(&recorder.CallSite{File: file, Line: 3}, []int{1, 2}, "include", 1)
	require.NoError(t, err)
	return r.Snapshot()
}

func TestExtractFailures(t *testing.T) {
	file := writeSource(t)
	failures := ExtractFailures(scenario(t, file))

	require.Len(t, failures, 1)
	f := failures[0]
	assert.Equal(t, 2, f.Index)
	assert.Equal(t, file, f.File)
	assert.Equal(t, 2, f.Line)
	require.NotNil(t, f.Source)
	assert.Equal(t, `green.Assert(1, "=", 2)`, *f.Source)
	assert.Equal(t, assertions.OpEquals, f.Operator)
	assert.Equal(t, int64(1), f.Expected.AsInt())
	assert.Equal(t, int64(2), f.Actual.AsInt())
}

func TestExtractFailures_MissingSource(t *testing.T) {
	r := recorder.New()
	r.Check(&recorder.CallSite{File: "/no/such/file.go", Line: 3}, false)
	r.Check(&recorder.CallSite{File: writeSource(t), Line: 99}, false)
	r.Check(nil, false)

	failures := ExtractFailures(r.Snapshot())

	require.Len(t, failures, 3)
	assert.Nil(t, failures[0].Source)
	assert.Nil(t, failures[1].Source)
	assert.Nil(t, failures[2].Source)
	assert.Equal(t, "", failures[2].File)
	assert.Equal(t, 0, failures[2].Line)
	assert.Equal(t, []int{1, 2, 3}, []int{failures[0].Index, failures[1].Index, failures[2].Index})
}

func TestExtractFailures_SourceLineBounds(t *testing.T) {
	file := writeSource(t)
	tests := []struct {
		name   string
		line   int
		source *string
	}{
		{"first line", 1, ptr("package suite")},
		{"last line", 2, ptr(`green.Assert(1, "=", 2)`)},
		{"after trailing newline", 3, nil},
		{"zero", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := recorder.New()
			r.Check(&recorder.CallSite{File: file, Line: tt.line}, false)

			failures := ExtractFailures(r.Snapshot())

			require.Len(t, failures, 1)
			assert.Equal(t, tt.source, failures[0].Source)
		})
	}
}

func ptr(s string) *string { return &s }

func TestTextRenderer_NoColor(t *testing.T) {
	file := writeSource(t)
	var buf bytes.Buffer
	r := NewTextRenderer(WithWriter(&buf), WithNoColor(true))

	require.NoError(t, r.Render(scenario(t, file)))

	want := "3 tests:\n" +
		".F.\n" +
		"\n2) green.Assert(1, \"=\", 2)\n" +
		"   1 (integer) = 2 (integer)\n" +
		"   " + file + ": 2\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestTextRenderer_Colors(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(WithWriter(&buf))

	snap := recorder.Snapshot{Results: []bool{true}, Records: []recorder.Record{{Result: true}}, Success: 1}
	require.NoError(t, r.Render(snap))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\x1b[42m1 tests"), out)
	assert.Contains(t, out, "\x1b[32m.")
	assert.NotContains(t, out, "\x1b[41m")
}

func TestTextRenderer_FailureCaption(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(WithWriter(&buf))

	r2 := recorder.New()
	r2.Check(nil, false)
	require.NoError(t, r.Render(r2.Snapshot()))

	assert.True(t, strings.HasPrefix(buf.String(), "\x1b[41m1 tests"))
	assert.Contains(t, buf.String(), "\x1b[31mF")
}

func TestRender_IndexAlignment(t *testing.T) {
	r := recorder.New()
	for i := 0; i < 9; i++ {
		r.Check(nil, true)
	}
	r.Equal(nil, "a", "b")

	var buf bytes.Buffer
	require.NoError(t, NewTextRenderer(WithWriter(&buf), WithNoColor(true)).Render(r.Snapshot()))

	assert.Contains(t, buf.String(), "\n10) \n    'a' (string) = 'b' (string)\n    : 0\n")
}

type countingStyler struct {
	TextRenderer
	failuresCalls int
	headerCalls   int
}

func (c *countingStyler) RenderHeader(*Printer) { c.headerCalls++ }

func (c *countingStyler) RenderFailures(p *Printer, failures []Failure) {
	c.failuresCalls++
	c.TextRenderer.RenderFailures(p, failures)
}

func TestRender_SkipsFailuresWhenAllPass(t *testing.T) {
	r := recorder.New()
	r.Check(nil, true)
	r.Equal(nil, value.NaN(), value.NaN())

	s := &countingStyler{TextRenderer: *NewTextRenderer(WithNoColor(true))}
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, s, r.Snapshot()))

	assert.Equal(t, 0, s.failuresCalls)
	assert.Equal(t, 1, s.headerCalls)
	assert.Equal(t, "2 tests:\n..\n", buf.String())
}

func TestRender_Idempotent(t *testing.T) {
	snap := scenario(t, writeSource(t))

	for _, name := range []string{NameText, NameHTML} {
		t.Run(name, func(t *testing.T) {
			var first, second bytes.Buffer
			r1, err := New(name, &first, false)
			require.NoError(t, err)
			r2, err := New(name, &second, false)
			require.NoError(t, err)

			require.NoError(t, r1.Render(snap))
			require.NoError(t, r2.Render(snap))
			assert.Equal(t, first.String(), second.String())
		})
	}
}

func TestHTMLRenderer(t *testing.T) {
	file := writeSource(t)
	snap := scenario(t, file)
	var buf bytes.Buffer

	require.NoError(t, NewHTMLRenderer(HTMLWithWriter(&buf)).Render(snap))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html><html><head>"))
	assert.Contains(t, out, `<meta name="green-run" content="`+snap.ID+`">`)
	assert.Contains(t, out, "<title>Tests</title>")
	assert.Contains(t, out, `<h1><span style="color:white;background-color:red">3 tests</span></h1>`)
	assert.Contains(t, out, `<p><span style="color:green">.</span><span style="color:red">F</span><span style="color:green">.</span></p>`)
	assert.Contains(t, out, "<p>\n2) green.Assert(1, &#34;=&#34;, 2)\n")
	assert.True(t, strings.HasSuffix(out, "</p></body></html>"))
}

func TestHTMLRenderer_PassingCaption(t *testing.T) {
	r := recorder.New()
	r.Check(nil, true)
	var buf bytes.Buffer

	require.NoError(t, NewHTMLRenderer(HTMLWithWriter(&buf), HTMLWithTitle("Suite")).Render(r.Snapshot()))

	assert.Contains(t, buf.String(), "background-color:green")
	assert.Contains(t, buf.String(), "<title>Suite</title>")
	assert.NotContains(t, buf.String(), "background-color:red")
}

func TestHTMLRenderer_EscapesContent(t *testing.T) {
	r := NewHTMLRenderer()
	assert.Equal(t, `<span style="a&#34;b">&lt;x&gt;</span>`, r.Styled(`a"b`, "<x>"))

	rec := recorder.New()
	rec.Equal(nil, "<script>", "x")
	var buf bytes.Buffer
	require.NoError(t, NewHTMLRenderer(HTMLWithWriter(&buf)).Render(rec.Snapshot()))
	assert.NotContains(t, buf.String(), "<script>")
	assert.Contains(t, buf.String(), "&#39;&lt;script&gt;&#39; (string)")
}

func TestNew_Unknown(t *testing.T) {
	_, err := New("json", &bytes.Buffer{}, false)
	assert.Error(t, err)
}

func TestForHost(t *testing.T) {
	assert.IsType(t, &HTMLRenderer{}, ForHost(env.HostWeb, &bytes.Buffer{}, false))
	assert.IsType(t, &TextRenderer{}, ForHost(env.HostCLI, &bytes.Buffer{}, false))

	r, err := New("cli", &bytes.Buffer{}, true)
	require.NoError(t, err)
	assert.IsType(t, &TextRenderer{}, r)
}
