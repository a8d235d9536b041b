package zn

import (
	"fmt"
	"html/template"
	"io"
	"path/filepath"
)

// Include executes the template file at path with data and writes the
// result to w. Templates may call esc and elapsed.
func Include(w io.Writer, path string, data any) error {
	tmpl, err := template.New(filepath.Base(path)).Funcs(template.FuncMap{
		"esc":     Escape,
		"elapsed": ElapsedTime,
	}).ParseFiles(path)
	if err != nil {
		return fmt.Errorf("include %s: %w", path, err)
	}
	return tmpl.Execute(w, data)
}
