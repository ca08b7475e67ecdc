package view

import (
	"fmt"
	"html/template"
	"io"
	"strings"
)

var pageTmpl = template.Must(template.New("page").Funcs(template.FuncMap{
	"join": func(items []string) string { return strings.Join(items, ", ") },
}).Parse(pageTemplate))

// Render writes the page as HTML.
func Render(w io.Writer, p *Page) error {
	if err := pageTmpl.Execute(w, p); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}
