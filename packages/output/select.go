package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/abdul-hamid-achik/green/packages/core/env"
	"github.com/abdul-hamid-achik/green/packages/recorder"
)

const (
	NameAuto = "auto"
	NameText = "text"
	NameHTML = "html"
)

// New creates the renderer registered under name writing to w. "auto"
// (or an empty name) picks HTML for web hosts and text otherwise.
func New(name string, w io.Writer, noColor bool) (recorder.Renderer, error) {
	switch strings.ToLower(name) {
	case NameAuto, "":
		return ForHost(env.DetectHost(), w, noColor), nil
	case NameText, "console", "cli":
		return NewTextRenderer(WithWriter(w), WithNoColor(noColor)), nil
	case NameHTML:
		return NewHTMLRenderer(HTMLWithWriter(w)), nil
	}
	return nil, fmt.Errorf("unknown renderer %q (use %s, %s or %s)", name, NameAuto, NameText, NameHTML)
}

// ForHost returns the renderer suited to host.
func ForHost(host env.Host, w io.Writer, noColor bool) recorder.Renderer {
	if host == env.HostWeb {
		return NewHTMLRenderer(HTMLWithWriter(w))
	}
	return NewTextRenderer(WithWriter(w), WithNoColor(noColor))
}
