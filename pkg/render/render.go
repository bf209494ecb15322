// Package render turns a documentation bundle into a static HTML page.
//
// It also provides the text filters used while building the bundle: Markdown
// rendering with goldmark and HTML sanitizing with bluemonday.
package render

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"strings"

	"github.com/blackcoderx/postdoc/pkg/docgen"
)

// PageTemplate is the template executed for the page.
const PageTemplate = "index.html.tmpl"

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed assets
var assetFS embed.FS

// Renderer renders bundles with the embedded page template.
type Renderer struct {
	tmpl  *template.Template
	style string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithHighlightStyle selects the chroma style used for example bodies.
// Unknown names fall back to chroma's default style.
func WithHighlightStyle(name string) Option {
	return func(r *Renderer) {
		if name != "" {
			r.style = name
		}
	}
}

// New parses the embedded templates.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{style: DefaultHighlightStyle}
	for _, opt := range opts {
		opt(r)
	}

	tmpl, err := template.New(PageTemplate).Funcs(r.funcs()).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// Render executes the page template for b.
func (r *Renderer) Render(b *docgen.Bundle) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, PageTemplate, b); err != nil {
		return nil, fmt.Errorf("failed to execute %s: %w", PageTemplate, err)
	}
	return buf.Bytes(), nil
}

// Assets returns the static files the page links to (css/, js/).
func (r *Renderer) Assets() fs.FS {
	sub, err := fs.Sub(assetFS, "assets")
	if err != nil {
		// the directory is embedded at build time
		panic(err)
	}
	return sub
}

type keyValueSection struct {
	Title   string
	Entries []docgen.KeyValue
}

type exampleView struct {
	Example docgen.Example
	First   bool
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		// safe marks already escaped or sanitized text as HTML.
		"safe": func(v any) template.HTML {
			return template.HTML(text(v))
		},
		"highlight": func(v any) template.HTML {
			return Highlight(text(v), r.style)
		},
		"treeJSON": func(tree []docgen.Node) (template.JS, error) {
			if tree == nil {
				tree = []docgen.Node{}
			}
			data, err := json.Marshal(tree)
			if err != nil {
				return "", err
			}
			return template.JS(data), nil
		},
		"method": func(m *string) string {
			if m == nil {
				return docgen.NoMethod
			}
			return *m
		},
		"lower": strings.ToLower,
		"section": func(title string, entries []docgen.KeyValue) keyValueSection {
			return keyValueSection{Title: title, Entries: entries}
		},
		"example": func(ex docgen.Example, first bool) exampleView {
			return exampleView{Example: ex, First: first}
		},
	}
}

func text(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case *string:
		if s == nil {
			return ""
		}
		return *s
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
