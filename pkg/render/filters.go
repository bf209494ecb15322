package render

import (
	"bytes"
	"html"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

var (
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		// raw HTML is let through here and cleaned up by Sanitize
		goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
	)

	policy = bluemonday.UGCPolicy()
)

// Markdown renders GitHub flavored Markdown to HTML. The output is not
// sanitized.
func Markdown(src string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return html.EscapeString(src)
	}
	return buf.String()
}

// Sanitize strips scripts, event handlers and any other markup not allowed in
// user generated content.
func Sanitize(s string) string {
	return policy.Sanitize(s)
}
