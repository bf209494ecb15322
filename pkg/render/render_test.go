package render

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/blackcoderx/postdoc/pkg/docgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func sampleBundle() *docgen.Bundle {
	leaf := &docgen.Leaf{Text: "Create sample", ID: 1, Method: "POST"}
	return &docgen.Bundle{
		Title: "Sample API",
		Collection: docgen.Collection{
			Name:        "Sample API",
			Description: ptr("<p>Intro <strong>text</strong></p>"),
			FileName:    "collection.json",
		},
		Tree: []docgen.Node{
			&docgen.Folder{Text: "Samples", Icon: docgen.FolderIcon, Children: []docgen.Node{leaf}},
		},
		Requests: []docgen.Request{{
			ID:          1,
			Name:        "Create sample",
			Description: ptr("<p>Creates one.</p>"),
			Method:      ptr("POST"),
			URL:         ptr("https://api.example.com/samples?x=<y>"),
			Body:        &docgen.Body{Mode: "raw", Raw: ptr("\n{&#34;a&#34;: 1}")},
			Headers: []docgen.KeyValue{
				{Key: "Content-Type", Value: "application/json", Description: ptr("JSON")},
			},
			Examples: []docgen.Example{
				{ID: "response_1", RequestID: "1", Name: "Created", Code: ptr(201), Status: ptr("Created"), ResponseBody: ptr("\n{\"id\": 7}")},
				{ID: "response_2", RequestID: "1", Name: "Conflict", Code: ptr(409), Status: ptr("Conflict")},
			},
		}},
	}
}

func TestRender(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	page, err := r.Render(sampleBundle())
	require.NoError(t, err)
	html := string(page)

	assert.Contains(t, html, "<title>Sample API</title>")
	assert.Contains(t, html, "<p>Intro <strong>text</strong></p>")
	assert.Contains(t, html, `id="1"`)
	assert.Contains(t, html, `class="method method-post">POST</span>`)
	assert.Contains(t, html, "https://api.example.com/samples?x=&lt;y&gt;")
	assert.Contains(t, html, "<h3>Headers</h3>")
	assert.NotContains(t, html, "<h3>Query Parameters</h3>")
	assert.Contains(t, html, `data-id="response_1" data-request-id="1"`)
	assert.Contains(t, html, `data-response-info="response_2"`)
	assert.Contains(t, html, `"href":"#1"`)
	assert.Contains(t, html, `"selectable":false`)
	assert.Equal(t, 1, strings.Count(html, `style="display: none"`))
	assert.NotContains(t, html, "download>")
}

func TestRender_Download(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	b := sampleBundle()
	b.Download = true
	b.Collection.EnvFileName = ptr("environment.json")

	page, err := r.Render(b)
	require.NoError(t, err)
	assert.Contains(t, string(page), `href="collection.json" download`)
	assert.Contains(t, string(page), `href="environment.json" download`)
}

func TestRender_MissingMethod(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	b := sampleBundle()
	b.Requests[0].Method = nil
	b.Requests[0].Examples = nil

	page, err := r.Render(b)
	require.NoError(t, err)
	assert.Contains(t, string(page), `class="method method-none">None</span>`)
	assert.NotContains(t, string(page), "<h3>Examples</h3>")
}

func TestRender_EmptyTree(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	page, err := r.Render(&docgen.Bundle{Title: "Empty"})
	require.NoError(t, err)
	assert.Contains(t, string(page), "var sideTree = [];")
}

func TestAssets(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	for _, name := range []string{"css/style.css", "js/main.js"} {
		_, err := fs.Stat(r.Assets(), name)
		assert.NoError(t, err, name)
	}
}
