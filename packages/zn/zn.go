package zn

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/abdul-hamid-achik/green/packages/core/env"
	"github.com/abdul-hamid-achik/green/packages/value"
)

var startTime = time.Now()

// ElapsedTime returns the milliseconds elapsed since the process started.
func ElapsedTime() int64 {
	return time.Since(startTime).Milliseconds()
}

// ArrayGet returns m[key], or def when key is absent.
func ArrayGet[K comparable, V any](m map[K]V, key K, def V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

// Get returns the element of container under key, or def when the key is
// absent or its element is null.
func Get(container value.Value, key any, def value.Value) value.Value {
	v, ok := container.Lookup(value.Of(key))
	if !ok || v.IsNull() {
		return def
	}
	return v
}

// Escape returns s with HTML special characters escaped.
func Escape(s string) string {
	return template.HTMLEscapeString(s)
}

// Print writes the dump of each argument to w, one per line. On web hosts the output is
// wrapped in a preformatted block.
func Print(w io.Writer, host env.Host, args ...any) error {
	if host == env.HostWeb {
		if _, err := io.WriteString(w, `<pre style="white-space:pre-wrap;word-wrap:break-word">`); err != nil {
			return err
		}
	}
	for _, arg := range args {
		text := value.Of(arg).Dump()
		if host == env.HostWeb {
			text = Escape(text)
		}
		if _, err := fmt.Fprintln(w, text); err != nil {
			return err
		}
	}
	if host == env.HostWeb {
		_, err := io.WriteString(w, "</pre>")
		return err
	}
	return nil
}
