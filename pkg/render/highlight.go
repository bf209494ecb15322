package render

import (
	"bytes"
	"encoding/json"
	"html"
	"html/template"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultHighlightStyle is the chroma style used unless configured otherwise.
const DefaultHighlightStyle = "github"

var formatter = chromahtml.New(chromahtml.PreventSurroundingPre(true))

// Highlight returns code as syntax-highlighted HTML for use inside a <pre>
// element. JSON is detected by validity; anything else is analysed by chroma
// and falls back to plain, escaped text.
func Highlight(code, style string) template.HTML {
	var lexer chroma.Lexer
	if json.Valid(bytes.TrimSpace([]byte(code))) {
		lexer = lexers.Get("json")
	} else {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return template.HTML(html.EscapeString(code))
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, styles.Get(style), iterator); err != nil {
		return template.HTML(html.EscapeString(code))
	}
	return template.HTML(buf.String())
}
