package render

import (
	"encoding/json"
	"testing"

	"github.com/blackcoderx/postdoc/pkg/collection"
	"github.com/blackcoderx/postdoc/pkg/docgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilters_RawBodyKeepsTypeMarkers(t *testing.T) {
	var c collection.Collection
	require.NoError(t, json.Unmarshal([]byte(`{
		"info": {"name": "Markers", "schema": "v2.1.0"},
		"item": [{
			"name": "Create",
			"request": {
				"method": "POST",
				"body": {"mode": "raw", "raw": "{\"name\": \"<string>\", \"n\": \"a & b\"}"},
				"description": "Takes a <script>alert(1)</script>*name*"
			}
		}]
	}`), &c))

	b := &docgen.Builder{Markdown: Markdown, Sanitize: Sanitize}
	_, requests, err := b.Build(&c)
	require.NoError(t, err)
	require.Len(t, requests, 1)

	rec := requests[0]
	assert.Equal(t, "\n{&#34;name&#34;: &#34;&lt;string&gt;&#34;, &#34;n&#34;: &#34;a &amp; b&#34;}", *rec.Body.Raw)
	assert.NotContains(t, *rec.Description, "<script>")
	assert.Contains(t, *rec.Description, "<em>name</em>")

	r, err := New()
	require.NoError(t, err)
	page, err := r.Render(&docgen.Bundle{Title: "Markers", Requests: requests})
	require.NoError(t, err)
	assert.Contains(t, string(page), "&lt;string&gt;")
}
