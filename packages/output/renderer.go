package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abdul-hamid-achik/green/packages/recorder"
)

const (
	successGlyph = "."
	failureGlyph = "F"
)

// Styler is the capability set a concrete renderer implements. Embed Base
// to get no-op header and footer hooks.
type Styler interface {
	// Styled wraps text in the decoration denoted by style.
	Styled(style, text string) string
	RenderHeader(p *Printer)
	RenderFooter(p *Printer)
	RenderCaption(p *Printer, caption string)
	RenderResults(p *Printer, results []bool)
	RenderFailures(p *Printer, failures []Failure)
}

// Escaper is implemented by stylers whose output needs unstyled text
// escaped, such as HTML.
type Escaper interface {
	Escape(text string) string
}

// Base provides the optional Styler hooks.
type Base struct{}

func (Base) RenderHeader(*Printer) {}
func (Base) RenderFooter(*Printer) {}

// Render writes snap through s. It is a pure function of the snapshot and
// the styler's configuration.
func Render(w io.Writer, s Styler, snap recorder.Snapshot) error {
	failures := ExtractFailures(snap)
	p := &Printer{w: w, styler: s, snap: snap}

	s.RenderHeader(p)
	s.RenderCaption(p, fmt.Sprintf("%d tests", snap.Success+snap.Failure))
	s.RenderResults(p, snap.Results)
	if len(failures) > 0 {
		s.RenderFailures(p, failures)
	}
	s.RenderFooter(p)

	return p.err
}

// Printer is handed to every Styler hook. It writes to the render target
// and keeps the first write error.
type Printer struct {
	w      io.Writer
	styler Styler
	snap   recorder.Snapshot
	err    error
}

// Snapshot returns the snapshot being rendered.
func (p *Printer) Snapshot() recorder.Snapshot { return p.snap }

// Print writes s verbatim.
func (p *Printer) Print(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

// Fail records err as the render error unless one is already set.
func (p *Printer) Fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

// CaptionWithStyle prints caption styled with failureStyle if anything
// failed, else with successStyle.
func (p *Printer) CaptionWithStyle(caption, successStyle, failureStyle string) {
	style := successStyle
	if p.snap.Failure > 0 {
		style = failureStyle
	}
	p.Print(p.styler.Styled(style, caption))
}

// ResultsWithStyle prints one glyph per result with no separator.
func (p *Printer) ResultsWithStyle(results []bool, successStyle, failureStyle string) {
	var sb strings.Builder
	for _, r := range results {
		if r {
			sb.WriteString(p.styler.Styled(successStyle, successGlyph))
		} else {
			sb.WriteString(p.styler.Styled(failureStyle, failureGlyph))
		}
	}
	p.Print(sb.String())
}

// FailuresWithHeaderAndFooter prints one numbered block per failure:
//
//	9) green.Assert("foo", 1)
//	   'foo' (string) = 1 (integer)
//	   /src/app/suite_test.go: 4
//
// Index numbers are right-aligned to the widest one.
func (p *Printer) FailuresWithHeaderAndFooter(failures []Failure, header, footer string) {
	if len(failures) == 0 {
		return
	}
	width := len(strconv.Itoa(failures[len(failures)-1].Index))
	indent := strings.Repeat(" ", width)

	for _, f := range failures {
		p.Print(header)
		block := fmt.Sprintf("\n%*d) %s\n%s  %s (%s) %s %s (%s)\n%s  %s: %d\n",
			width, f.Index, f.SourceText(),
			indent, f.Expected.Export(), f.Expected.TypeName(), f.Operator,
			f.Actual.Export(), f.Actual.TypeName(),
			indent, f.File, f.Line,
		)
		p.Print(p.escape(block))
		p.Print(footer)
	}
}

func (p *Printer) escape(s string) string {
	if e, ok := p.styler.(Escaper); ok {
		return e.Escape(s)
	}
	return s
}
