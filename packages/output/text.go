package output

import (
	"io"
	"os"
	"strconv"

	"github.com/abdul-hamid-achik/green/packages/recorder"
	"github.com/fatih/color"
)

var (
	captionSuccessStyle = attr(color.BgGreen)
	captionFailureStyle = attr(color.BgRed)
	glyphSuccessStyle   = attr(color.FgGreen)
	glyphFailureStyle   = attr(color.FgRed)
)

func attr(a color.Attribute) string { return strconv.Itoa(int(a)) }

// TextRenderer renders results as ANSI-colored text.
type TextRenderer struct {
	Base
	writer  io.Writer
	noColor bool
}

// TextOption configures a TextRenderer.
type TextOption func(*TextRenderer)

// NewTextRenderer returns a renderer writing to os.Stdout unless
// WithWriter says otherwise.
func NewTextRenderer(opts ...TextOption) *TextRenderer {
	r := &TextRenderer{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithWriter sets the destination of the report.
func WithWriter(w io.Writer) TextOption {
	return func(r *TextRenderer) {
		r.writer = w
	}
}

// WithNoColor disables escape sequences; text is emitted undecorated.
func WithNoColor(nc bool) TextOption {
	return func(r *TextRenderer) {
		r.noColor = nc
	}
}

// Render implements recorder.Renderer.
func (r *TextRenderer) Render(snap recorder.Snapshot) error {
	return Render(r.writer, r, snap)
}

// Styled wraps text in the escape sequence for the numeric SGR code in
// style. Colors are forced on regardless of the terminal so output does not
// depend on where it is written.
func (r *TextRenderer) Styled(style, text string) string {
	if r.noColor {
		return text
	}
	code, err := strconv.Atoi(style)
	if err != nil {
		return text
	}
	c := color.New(color.Attribute(code))
	c.EnableColor()
	return c.Sprint(text)
}

// RenderCaption writes the summary caption on a green or red background
// followed by a colon.
func (r *TextRenderer) RenderCaption(p *Printer, caption string) {
	p.CaptionWithStyle(caption, captionSuccessStyle, captionFailureStyle)
	p.Print(":\n")
}

// RenderResults writes one glyph per assertion on a single line.
func (r *TextRenderer) RenderResults(p *Printer, results []bool) {
	p.ResultsWithStyle(results, glyphSuccessStyle, glyphFailureStyle)
	p.Print("\n")
}

// RenderFailures writes the failure blocks without any surrounding markup.
func (r *TextRenderer) RenderFailures(p *Printer, failures []Failure) {
	p.FailuresWithHeaderAndFooter(failures, "", "")
	p.Print("\n")
}
