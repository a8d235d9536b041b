package output

import (
	"html/template"
	"io"
	"os"
	"strings"

	"github.com/abdul-hamid-achik/green/packages/recorder"
)

const (
	captionBase = "color:white;background-color:"
)

var htmlHead = template.Must(template.New("head").Parse(
	`<!DOCTYPE html><html><head><meta charset="utf-8"><meta name="green-run" content="{{.ID}}">` +
		`<title>{{.Title}}</title>` +
		`<style>body{font-family:monospace}p{word-wrap:break-word;white-space:pre-wrap}</style>` +
		`</head><body>`,
))

// HTMLRenderer renders results as a standalone HTML document.
type HTMLRenderer struct {
	writer io.Writer
	title  string
}

// HTMLOption is a functional option for HTMLRenderer
type HTMLOption func(*HTMLRenderer)

// NewHTMLRenderer creates a new HTML renderer
func NewHTMLRenderer(opts ...HTMLOption) *HTMLRenderer {
	r := &HTMLRenderer{
		writer: os.Stdout,
		title:  "Tests",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// HTMLWithWriter sets the output writer
func HTMLWithWriter(w io.Writer) HTMLOption {
	return func(r *HTMLRenderer) {
		r.writer = w
	}
}

// HTMLWithTitle sets the document title
func HTMLWithTitle(title string) HTMLOption {
	return func(r *HTMLRenderer) {
		r.title = title
	}
}

// Render implements recorder.Renderer.
func (r *HTMLRenderer) Render(snap recorder.Snapshot) error {
	return Render(r.writer, r, snap)
}

// Styled puts style into an inline style attribute. Both are escaped.
func (r *HTMLRenderer) Styled(style, text string) string {
	return `<span style="` + r.Escape(style) + `">` + r.Escape(text) + `</span>`
}

// Escape implements Escaper.
func (r *HTMLRenderer) Escape(text string) string {
	return template.HTMLEscapeString(text)
}

// RenderHeader opens the document, tagging it with the snapshot ID.
func (r *HTMLRenderer) RenderHeader(p *Printer) {
	var sb strings.Builder
	data := struct{ ID, Title string }{p.Snapshot().ID, r.title}
	if err := htmlHead.Execute(&sb, data); err != nil {
		p.Fail(err)
		return
	}
	p.Print(sb.String())
}

// RenderFooter closes the document.
func (r *HTMLRenderer) RenderFooter(p *Printer) {
	p.Print("</body></html>")
}

// RenderCaption writes the caption as a colored heading.
func (r *HTMLRenderer) RenderCaption(p *Printer, caption string) {
	p.Print("<h1>")
	p.CaptionWithStyle(caption, captionBase+"green", captionBase+"red")
	p.Print("</h1>")
}

// RenderResults writes the glyph row as a paragraph.
func (r *HTMLRenderer) RenderResults(p *Printer, results []bool) {
	p.Print("<p>")
	p.ResultsWithStyle(results, "color:green", "color:red")
	p.Print("</p>")
}

// RenderFailures wraps each failure block in a paragraph.
func (r *HTMLRenderer) RenderFailures(p *Printer, failures []Failure) {
	p.FailuresWithHeaderAndFooter(failures, "<p>", "</p>")
}
