package docgen

import (
	"fmt"
	"html"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/blackcoderx/postdoc/pkg/collection"
	"github.com/blackcoderx/postdoc/pkg/environment"
)

// Builder walks a collection and produces the documentation model.
// Markdown and Sanitize apply to descriptions and default to the identity
// filter when nil. Preformat applies to raw body text shown in <pre> blocks;
// when nil the text is HTML-escaped, so tag-like content such as <string>
// is kept visible.
type Builder struct {
	Env       *environment.Environment
	Markdown  TextFilter
	Sanitize  TextFilter
	Preformat TextFilter
}

// Source names the files a bundle is built from.
type Source struct {
	CollectionFile  string
	EnvironmentFile string
}

// traversal is the numbering state of one build. Both counters are
// incremented before use, so the first leaf and the first example get 1.
type traversal struct {
	leafID     int
	responseID int
	requests   []Request
}

// Assemble builds the complete rendering bundle for c.
func (b *Builder) Assemble(c *collection.Collection, src Source) (*Bundle, error) {
	tree, requests, err := b.Build(c)
	if err != nil {
		return nil, err
	}

	meta := Collection{
		Name:     c.Info.Name,
		Schema:   c.Info.Schema,
		FileName: filepath.Base(src.CollectionFile),
	}
	if c.Info.Description != nil {
		meta.Description = b.describe(c.Info.Description.Content)
	}
	if src.EnvironmentFile != "" {
		name := filepath.Base(src.EnvironmentFile)
		meta.EnvFileName = &name
	}

	return &Bundle{
		Title:      c.Info.Name,
		Collection: meta,
		Tree:       tree,
		Requests:   requests,
	}, nil
}

// Build walks the items of c depth-first in source order and returns the
// navigation tree and the request records in leaf ID order.
func (b *Builder) Build(c *collection.Collection) ([]Node, []Request, error) {
	st := &traversal{}
	tree, err := b.addItems(st, c.Item)
	if err != nil {
		return nil, nil, err
	}
	return tree, st.requests, nil
}

func (b *Builder) addItems(st *traversal, items []collection.Item) ([]Node, error) {
	nodes := make([]Node, 0, len(items))
	for i := range items {
		item := &items[i]

		if item.IsFolder() {
			children, err := b.addItems(st, item.Item)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, &Folder{
				Text:     nameOf(item.Name),
				Icon:     FolderIcon,
				Children: children,
			})
			continue
		}

		st.leafID++
		method := NoMethod
		if item.Request != nil && item.Request.Method != nil {
			method = *item.Request.Method
		}
		nodes = append(nodes, &Leaf{
			Text:   nameOf(item.Name),
			ID:     st.leafID,
			Method: method,
		})

		req, err := b.newRequest(st, item)
		if err != nil {
			return nil, fmt.Errorf("request %q: %w", nameOf(item.Name), err)
		}
		st.requests = append(st.requests, req)
	}
	return nodes, nil
}

// newRequest builds the record of the leaf whose ID was just assigned.
func (b *Builder) newRequest(st *traversal, item *collection.Item) (Request, error) {
	rec := Request{
		ID:   st.leafID,
		Name: nameOf(item.Name),
	}

	src := item.Request
	if src == nil {
		src = &collection.Request{}
	}

	if src.Description != nil {
		rec.Description = b.describe(src.Description.Content)
	}
	if src.Body != nil {
		rec.Body = NewBody(src.Body)
		if rec.Body.Raw != nil {
			// leading line break lines JSON up under the heading in <pre> blocks
			formatted := "\n" + b.preformat(strings.TrimSpace(*rec.Body.Raw))
			rec.Body.Raw = &formatted
		}
	}
	rec.Method = src.Method
	if src.URL != nil {
		rec.URL = src.URL.Raw
		rec.Params = NewKeyValues(src.URL.Query)
		rec.PathVariables = NewKeyValues(src.URL.Variable)
	}
	rec.Headers = NewKeyValues(src.Header)

	examples, err := b.examples(st, &rec, src, item.Response)
	if err != nil {
		return Request{}, err
	}
	rec.Examples = examples
	return rec, nil
}

// examples converts the captured responses of a request. With no captured
// responses a single example is synthesized from the request itself.
func (b *Builder) examples(st *traversal, rec *Request, src *collection.Request, responses []collection.Response) ([]Example, error) {
	requestID := strconv.Itoa(rec.ID)

	if len(responses) > 0 && b.Env.Active() {
		substituted, err := environment.SubstituteStructure(responses, b.Env)
		if err != nil {
			return nil, err
		}
		responses = substituted
	}

	examples := make([]Example, 0, max(len(responses), 1))
	for _, res := range responses {
		st.responseID++
		ex := Example{
			ID:        responseID(st.responseID),
			RequestID: requestID,
			Name:      nameOf(res.Name),
			Status:    res.Status,
			Code:      res.Code,
		}

		var bodyRaw *string
		if orig := res.OriginalRequest; orig != nil {
			ex.Method = orig.Method
			if orig.URL != nil {
				ex.URL = orig.URL.Raw
			}
			if orig.Body != nil {
				bodyRaw = orig.Body.Raw
			}
		}
		ex.RequestBody = requestText(ex.Method, ex.URL, bodyRaw)

		if res.Body != nil {
			body := "\n" + *res.Body
			ex.ResponseBody = &body
		}
		examples = append(examples, ex)
	}

	if len(examples) > 0 {
		return examples, nil
	}

	st.responseID++
	ex := Example{
		ID:        responseID(st.responseID),
		RequestID: requestID,
		Name:      rec.Name,
		Method:    rec.Method,
	}
	if rec.URL != nil {
		url := environment.SubstituteText(*rec.URL, b.Env)
		ex.URL = &url
	}

	var bodyRaw *string
	if src.Body != nil && src.Body.Raw != nil {
		raw, err := environment.SubstituteStructure(strings.TrimSpace(*src.Body.Raw), b.Env)
		if err != nil {
			return nil, err
		}
		bodyRaw = &raw
	}
	ex.RequestBody = requestText(ex.Method, ex.URL, bodyRaw)

	return append(examples, ex), nil
}

func (b *Builder) describe(text string) *string {
	out := b.sanitize(b.markdown(text))
	return &out
}

func (b *Builder) markdown(s string) string {
	if b.Markdown == nil {
		return s
	}
	return b.Markdown(s)
}

func (b *Builder) preformat(s string) string {
	if b.Preformat == nil {
		return html.EscapeString(s)
	}
	return b.Preformat(s)
}

func (b *Builder) sanitize(s string) string {
	if b.Sanitize == nil {
		return s
	}
	return b.Sanitize(s)
}

// requestText renders the replay text of an example: a "METHOD URL" line when
// both are known, then the body. Absent parts are left out entirely.
func requestText(method, url, body *string) *string {
	var sb strings.Builder
	if method != nil && url != nil {
		sb.WriteString("\n" + *method + " " + *url)
	}
	if body != nil {
		sb.WriteString("\n" + *body)
	}
	if sb.Len() == 0 {
		return nil
	}
	text := sb.String()
	return &text
}

func responseID(n int) string {
	return "response_" + strconv.Itoa(n)
}

func nameOf(name *string) string {
	if name == nil {
		return NotFound
	}
	return *name
}
