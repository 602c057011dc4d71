package render

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"
)

//go:embed templates/*.html
var defaultFS embed.FS

// HTML renders html/template templates by name with fallback resolution.
type HTML struct {
	tmpl *template.Template
}

// Default returns a renderer holding only the bundled generic templates.
func Default() *HTML {
	h, err := NewHTML(nil)
	if err != nil {
		// The embedded set is compiled into the binary; failing to parse
		// it is a build defect, not a runtime condition.
		panic(err)
	}
	return h
}

// NewHTML returns a renderer with the bundled generic templates plus the
// application's own templates from fsys (may be nil). Application
// templates are parsed last, so a template reusing a bundled name
// overrides it.
func NewHTML(fsys fs.FS, patterns ...string) (*HTML, error) {
	tmpl, err := template.ParseFS(defaultFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse default templates: %w", err)
	}
	if fsys != nil {
		if len(patterns) == 0 {
			patterns = []string{"*.html"}
		}
		tmpl, err = tmpl.ParseFS(fsys, patterns...)
		if err != nil {
			return nil, fmt.Errorf("parse templates: %w", err)
		}
	}
	return &HTML{tmpl: tmpl}, nil
}

func (h *HTML) Render(_ context.Context, w io.Writer, candidates []string, data any) error {
	for _, name := range candidates {
		if t := h.tmpl.Lookup(name); t != nil {
			return t.Execute(w, data)
		}
	}
	return fmt.Errorf("%w: tried %s", ErrTemplateNotFound, strings.Join(candidates, ", "))
}

// StarterTemplate returns the source of the bundled template for the given
// suffix ("_list", "_detail", "_form", "_confirm_delete"). Used by the
// scaffolding CLI to seed model-specific template files.
func StarterTemplate(suffix string) ([]byte, error) {
	name := "templates/object" + suffix + ".html"
	b, err := defaultFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("%w: no starter for suffix %q", ErrTemplateNotFound, suffix)
	}
	return b, nil
}
