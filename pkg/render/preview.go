package render

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/blackcoderx/postdoc/pkg/docgen"
	"github.com/charmbracelet/glamour"
	"github.com/microcosm-cc/bluemonday"
)

// PreviewOptions configures the terminal preview.
type PreviewOptions struct {
	// Width wraps text at the given column. Zero keeps glamour's default.
	Width int
	// Style is a glamour standard style name ("dark", "light", "notty").
	// Empty picks one from the terminal background.
	Style string
}

var plain = bluemonday.StrictPolicy()

// PreviewMarkdown summarizes the bundle as Markdown: the collection header
// followed by one section per request with its examples.
func PreviewMarkdown(b *docgen.Bundle) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", b.Title)
	if b.Collection.Description != nil {
		if d := stripTags(*b.Collection.Description); d != "" {
			sb.WriteString(d + "\n\n")
		}
	}
	fmt.Fprintf(&sb, "%d requests, %d examples\n\n", len(b.Requests), b.ExampleCount())

	for _, r := range b.Requests {
		method := docgen.NoMethod
		if r.Method != nil {
			method = *r.Method
		}
		fmt.Fprintf(&sb, "## %s %s\n\n", method, r.Name)
		if r.URL != nil {
			fmt.Fprintf(&sb, "`%s`\n\n", *r.URL)
		}
		if r.Description != nil {
			if d := stripTags(*r.Description); d != "" {
				sb.WriteString(d + "\n\n")
			}
		}
		for _, ex := range r.Examples {
			sb.WriteString("- " + ex.Name)
			if ex.Code != nil {
				fmt.Fprintf(&sb, " (%d)", *ex.Code)
			}
			sb.WriteString("\n")
			if ex.ResponseBody != nil {
				sb.WriteString(fencedJSON(*ex.ResponseBody, "  "))
			}
		}
		if len(r.Examples) > 0 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Preview renders PreviewMarkdown for the terminal with glamour.
func Preview(b *docgen.Bundle, opts PreviewOptions) (string, error) {
	ropts := []glamour.TermRendererOption{}
	if opts.Style != "" {
		ropts = append(ropts, glamour.WithStandardStyle(opts.Style))
	} else {
		ropts = append(ropts, glamour.WithAutoStyle())
	}
	if opts.Width > 0 {
		ropts = append(ropts, glamour.WithWordWrap(opts.Width))
	}

	tr, err := glamour.NewTermRenderer(ropts...)
	if err != nil {
		return "", fmt.Errorf("failed to create preview renderer: %w", err)
	}
	out, err := tr.Render(PreviewMarkdown(b))
	if err != nil {
		return "", fmt.Errorf("failed to render preview: %w", err)
	}
	return out, nil
}

// fencedJSON pretty prints a JSON body as a fenced code block indented under
// a list item. Anything that is not JSON yields "".
func fencedJSON(body, indent string) string {
	var v any
	if json.Unmarshal([]byte(body), &v) != nil {
		return ""
	}
	pretty, err := json.MarshalIndent(v, indent, "  ")
	if err != nil {
		return ""
	}
	return "\n" + indent + "```json\n" + indent + string(pretty) + "\n" + indent + "```\n\n"
}

func stripTags(s string) string {
	return strings.TrimSpace(html.UnescapeString(plain.Sanitize(s)))
}
